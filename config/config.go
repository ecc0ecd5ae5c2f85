package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds all configuration for the bot
type Config struct {
	Telegram   TelegramConfig
	Kafka      KafkaConfig
	Downloader DownloaderConfig
	Session    SessionConfig
	Logging    LoggingConfig
}

// TelegramConfig holds the bot credential triple
type TelegramConfig struct {
	BotToken string
	APIID    int64
	APIHash  string
}

// KafkaConfig holds Kafka configuration. Empty Brokers disables the
// download event stream.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// DownloaderConfig holds the external resolver/executor configuration
type DownloaderConfig struct {
	BinPath         string
	WorkDir         string
	ResolveTimeout  time.Duration
	DownloadTimeout time.Duration
}

// SessionConfig holds session store configuration
type SessionConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
}

// Result provides config parts for fx dependency injection using fx.Out pattern
type Result struct {
	fx.Out

	Config     *Config
	Telegram   *TelegramConfig
	Kafka      *KafkaConfig
	Downloader *DownloaderConfig
	Session    *SessionConfig
	Logging    *LoggingConfig
}

// Out loads configuration and returns Result for fx injection
func Out() (Result, error) {
	cfg, err := Load()
	if err != nil {
		return Result{}, err
	}

	return Result{
		Config:     cfg,
		Telegram:   &cfg.Telegram,
		Kafka:      &cfg.Kafka,
		Downloader: &cfg.Downloader,
		Session:    &cfg.Session,
		Logging:    &cfg.Logging,
	}, nil
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	apiID, err := getInt64Env("API_ID", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Telegram: TelegramConfig{
			BotToken: getEnv("BOT_TOKEN", ""),
			APIID:    apiID,
			APIHash:  getEnv("API_HASH", ""),
		},
		Kafka: KafkaConfig{
			Brokers: splitNonEmpty(getEnv("KAFKA_BROKERS", "")),
			Topic:   getEnv("KAFKA_TOPIC", "download-events"),
		},
		Downloader: DownloaderConfig{
			BinPath:         getEnv("YTDLP_PATH", "yt-dlp"),
			WorkDir:         getEnv("WORK_DIR", os.TempDir()),
			ResolveTimeout:  getDurationEnv("RESOLVE_TIMEOUT", 60*time.Second),
			DownloadTimeout: getDurationEnv("DOWNLOAD_TIMEOUT", 10*time.Minute),
		},
		Session: SessionConfig{
			TTL:           getDurationEnv("SESSION_TTL", 30*time.Minute),
			SweepInterval: getDurationEnv("SESSION_SWEEP_INTERVAL", 5*time.Minute),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration. A missing bot token is the only
// fatal startup condition.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}

	if c.Downloader.BinPath == "" {
		return fmt.Errorf("YTDLP_PATH cannot be empty")
	}

	return nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getInt64Env gets a numeric environment variable with default value
func getInt64Env(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be numeric: %w", key, err)
	}
	return parsed, nil
}

// getDurationEnv gets a duration environment variable with default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// splitNonEmpty splits a comma-separated list, dropping empty items
func splitNonEmpty(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
