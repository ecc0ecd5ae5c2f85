// Package workers contains background workers for the bot domain
package workers

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/yourusername/video-downloader-bot/internal/domain/bot/session"
)

// SessionSweeper periodically evicts expired sessions so the store cannot
// grow without bound.
type SessionSweeper struct {
	store    *session.Store
	interval time.Duration
	logger   zerolog.Logger
	done     chan struct{}
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewSessionSweeper creates a sweeper for the given store
func NewSessionSweeper(store *session.Store, interval time.Duration, logger zerolog.Logger) *SessionSweeper {
	ctx, cancel := context.WithCancel(context.Background())

	return &SessionSweeper{
		store:    store,
		interval: interval,
		logger:   logger,
		done:     make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start starts the sweep loop
func (w *SessionSweeper) Start() {
	w.logger.Info().Dur("interval", w.interval).Msg("Starting session sweeper...")

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.done:
				w.logger.Info().Msg("Session sweeper stopped by done signal")
				return
			case <-w.ctx.Done():
				w.logger.Info().Msg("Session sweeper stopped by context cancellation")
				return
			case <-ticker.C:
				w.store.Sweep()
			}
		}
	}()
}

// Stop stops the sweeper gracefully
func (w *SessionSweeper) Stop() error {
	w.logger.Info().Msg("Stopping session sweeper...")
	w.cancel()
	close(w.done)
	return nil
}
