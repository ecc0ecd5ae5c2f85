// Package downloader orchestrates a single download attempt against the
// external download executor.
package downloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yourusername/video-downloader-bot/internal/domain/bot/deps"
	"github.com/yourusername/video-downloader-bot/internal/domain/bot/entities"
	boterrors "github.com/yourusername/video-downloader-bot/internal/domain/bot/errors"
)

// State names the phases of one download attempt.
type State string

// Download states
const (
	StateIdle            State = "idle"
	StateResolvingFormat State = "resolving_format"
	StateFetching        State = "fetching"
	StateDelivered       State = "delivered"
	StateFailed          State = "failed"
)

// File is a downloaded media file inside its exclusive working directory.
// The caller must Discard it on every exit path once it has been handed
// to the outbound delivery step.
type File struct {
	Path string
	Size int64
	Ext  string

	dir string
}

// Discard removes the working directory and the file inside it.
func (f *File) Discard() {
	if f.dir != "" {
		_ = os.RemoveAll(f.dir)
	}
}

// Orchestrator runs downloads through the external executor, one exclusive
// working directory per attempt.
type Orchestrator struct {
	fetcher  deps.Fetcher
	workRoot string
	logger   zerolog.Logger
}

// NewOrchestrator creates a download orchestrator rooted at workRoot.
func NewOrchestrator(fetcher deps.Fetcher, workRoot string, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		fetcher:  fetcher,
		workRoot: workRoot,
		logger:   logger,
	}
}

// Download retrieves the selected format of a session. It never deletes the
// session; the caller deletes it only after the terminal outcome is known,
// so a retried selection on the same key still finds the session after a
// failed attempt.
func (o *Orchestrator) Download(ctx context.Context, sess *entities.Session, formatID string) (*File, error) {
	log := o.logger.With().
		Str("session_key", sess.Key).
		Str("format_id", formatID).
		Logger()

	log.Debug().Str("state", string(StateResolvingFormat)).Msg("Looking up selected format")

	format, ok := sess.FindFormat(formatID)
	if !ok {
		log.Warn().Str("state", string(StateFailed)).Msg("Selected format not in session")
		return nil, boterrors.ErrFormatNotFound
	}

	workDir := filepath.Join(o.workRoot, uuid.NewString())
	if err := os.MkdirAll(workDir, 0o700); err != nil {
		return nil, fmt.Errorf("%w: %v", boterrors.ErrFetchFailed, err)
	}

	log.Info().Str("state", string(StateFetching)).Str("work_dir", workDir).Msg("Fetching media")

	path, err := o.fetcher.Fetch(ctx, sess.URL, format.FormatID, workDir)
	if err != nil {
		_ = os.RemoveAll(workDir)
		log.Error().Err(err).Str("state", string(StateFailed)).Msg("Executor failed")
		return nil, fmt.Errorf("%w: %v", boterrors.ErrFetchFailed, err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		_ = os.RemoveAll(workDir)
		log.Error().Err(err).Str("state", string(StateFailed)).Msg("Downloaded file not readable")
		return nil, fmt.Errorf("%w: %v", boterrors.ErrFetchFailed, err)
	}

	log.Info().
		Str("state", string(StateDelivered)).
		Str("path", path).
		Int64("size", stat.Size()).
		Msg("Media fetched")

	ext := format.Ext
	if e := filepath.Ext(path); len(e) > 1 {
		ext = e[1:]
	}

	return &File{
		Path: path,
		Size: stat.Size(),
		Ext:  ext,
		dir:  workDir,
	}, nil
}
