package workers

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/yourusername/video-downloader-bot/internal/domain/bot/entities"
	"github.com/yourusername/video-downloader-bot/internal/domain/bot/session"
)

func TestSessionSweeper_EvictsExpired(t *testing.T) {
	store := session.NewStore(time.Millisecond, zerolog.Nop())

	key := session.KeyFor("https://youtube.com/watch?v=abc")
	store.Put(key, &entities.Session{Key: key})

	sweeper := NewSessionSweeper(store, 5*time.Millisecond, zerolog.Nop())
	sweeper.Start()
	defer func() { _ = sweeper.Stop() }()

	assert.Eventually(t, func() bool {
		return store.Len() == 0
	}, time.Second, 5*time.Millisecond)
}

func TestSessionSweeper_StopIsClean(t *testing.T) {
	store := session.NewStore(time.Minute, zerolog.Nop())

	sweeper := NewSessionSweeper(store, 10*time.Millisecond, zerolog.Nop())
	sweeper.Start()

	assert.NoError(t, sweeper.Stop())
}
