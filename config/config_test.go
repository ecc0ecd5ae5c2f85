package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-token-123")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "test-token-123", cfg.Telegram.BotToken)
	assert.Equal(t, "yt-dlp", cfg.Downloader.BinPath)
	assert.Equal(t, 60*time.Second, cfg.Downloader.ResolveTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Downloader.DownloadTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 5*time.Minute, cfg.Session.SweepInterval)
	assert.Equal(t, "download-events", cfg.Kafka.Topic)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_MissingBotToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestLoad_InvalidAPIID(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-token-123")
	t.Setenv("API_ID", "not-a-number")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_ID")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-token-123")
	t.Setenv("API_ID", "12345")
	t.Setenv("KAFKA_BROKERS", "localhost:9092, localhost:9093")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("YTDLP_PATH", "/usr/local/bin/yt-dlp")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, int64(12345), cfg.Telegram.APIID)
	assert.Equal(t, []string{"localhost:9092", "localhost:9093"}, cfg.Kafka.Brokers)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "/usr/local/bin/yt-dlp", cfg.Downloader.BinPath)
}

func TestLoad_InvalidDurationFallsBackToDefault(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-token-123")
	t.Setenv("SESSION_TTL", "soon")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
}
