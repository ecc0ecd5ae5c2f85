// Package deps contains interface definitions for the bot domain dependencies
package deps

import (
	"context"

	"github.com/yourusername/video-downloader-bot/internal/domain/bot/entities"
	"github.com/yourusername/video-downloader-bot/internal/domain/bot/menu"
)

// Messenger defines the outbound chat operations the bot needs.
// This interface is implemented by the Telegram delivery layer and is used
// to break the cyclic dependency between UseCase and the handlers.
type Messenger interface {
	// SendMessageAndGetID sends a text message and returns its message ID
	SendMessageAndGetID(ctx context.Context, chatID int64, text string) (messageID int, err error)

	// EditMessageText replaces the text of an existing message
	EditMessageText(ctx context.Context, chatID int64, messageID int, text string) error

	// EditMessageMenu replaces the text of an existing message and attaches a selection menu
	EditMessageMenu(ctx context.Context, chatID int64, messageID int, text string, m menu.Menu) error

	// SendAudioFile uploads a local file through the audio-send channel
	SendAudioFile(ctx context.Context, chatID int64, path, caption string) error

	// SendVideoFile uploads a local file through the video-send channel
	SendVideoFile(ctx context.Context, chatID int64, path, caption string) error

	// AnswerCallback acknowledges a callback query with a short toast
	AnswerCallback(ctx context.Context, callbackID, text string) error
}

// Resolver wraps the external media resolver: metadata and format discovery
// without downloading.
type Resolver interface {
	Resolve(ctx context.Context, url string) (*entities.VideoInfo, error)
}

// Fetcher wraps the external download executor: retrieves the media bytes
// for a chosen format into destDir and returns the file path.
type Fetcher interface {
	Fetch(ctx context.Context, url, formatID, destDir string) (string, error)
}

// SessionStore defines the process-wide session table.
type SessionStore interface {
	Put(key string, sess *entities.Session)
	Get(key string) (*entities.Session, bool)
	Delete(key string)
}

// DownloadEventProducer publishes download lifecycle events for external
// consumers. Implementations are best-effort; the user flow never depends
// on a publish succeeding.
type DownloadEventProducer interface {
	VideoResolved(ctx context.Context, userID int64, url string, formats int) error
	DownloadDelivered(ctx context.Context, userID int64, url, formatID string, size int64) error
	DownloadFailed(ctx context.Context, userID int64, url, formatID, reason string) error
	Close() error
}

// SystemProber reports host and process health for the /status command.
type SystemProber interface {
	Snapshot() (*entities.SystemStatus, error)
}
