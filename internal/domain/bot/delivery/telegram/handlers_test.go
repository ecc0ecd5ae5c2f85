package telegram

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateMessage(t *testing.T) {
	short := "hello"
	assert.Equal(t, short, truncateMessage(short))

	long := strings.Repeat("a", MaxMessageLength+100)
	got := truncateMessage(long)
	assert.Len(t, []rune(got), MaxMessageLength)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestTruncateMessage_RuneBoundary(t *testing.T) {
	long := strings.Repeat("日本語", MaxMessageLength/2)

	got := truncateMessage(long)

	assert.True(t, utf8.ValidString(got))
	assert.Len(t, []rune(got), MaxMessageLength)
}
