package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/video-downloader-bot/internal/domain/bot/consts"
	boterrors "github.com/yourusername/video-downloader-bot/internal/domain/bot/errors"
)

func TestDecodeAction_Download(t *testing.T) {
	action, err := DecodeAction(encodeDownload(testKey, "137"))

	require.NoError(t, err)
	assert.Equal(t, consts.VerbDownload, action.Verb)
	assert.Equal(t, testKey, action.SessionKey)
	assert.Equal(t, "137", action.FormatID)
}

func TestDecodeAction_FormatIDWithUnderscores(t *testing.T) {
	// Resolver-assigned identifiers may contain the wire delimiter
	action, err := DecodeAction(encodeDownload(testKey, "hls_1080_v2"))

	require.NoError(t, err)
	assert.Equal(t, testKey, action.SessionKey)
	assert.Equal(t, "hls_1080_v2", action.FormatID)
}

func TestDecodeAction_Cancel(t *testing.T) {
	action, err := DecodeAction(encodeCancel(testKey))

	require.NoError(t, err)
	assert.Equal(t, consts.VerbCancel, action.Verb)
	assert.Equal(t, testKey, action.SessionKey)
	assert.Empty(t, action.FormatID)
}

func TestDecodeAction_Header(t *testing.T) {
	action, err := DecodeAction(encodeHeader("video", testKey))

	require.NoError(t, err)
	assert.Equal(t, consts.VerbHeader, action.Verb)
}

func TestDecodeAction_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown verb", "upload_" + testKey + "_137"},
		{"bare text", "hello"},
		{"empty", ""},
		{"download missing format", "download_" + testKey},
		{"download empty key", "download__137"},
		{"cancel missing key", "cancel_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeAction(tt.data)
			assert.ErrorIs(t, err, boterrors.ErrInvalidAction)
		})
	}
}

func TestEncodedPayloadFitsCallbackLimit(t *testing.T) {
	// Telegram caps callback_data at 64 bytes
	data := encodeDownload(testKey, "hls-1080p-avc1.640028")
	assert.LessOrEqual(t, len(data), 64)
}
