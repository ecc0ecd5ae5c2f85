// Package resolver adapts the external yt-dlp binary as the media resolver
// and download executor.
package resolver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/yourusername/video-downloader-bot/config"
	"github.com/yourusername/video-downloader-bot/internal/domain/bot/entities"
	boterrors "github.com/yourusername/video-downloader-bot/internal/domain/bot/errors"
)

// Client drives the yt-dlp binary. It implements deps.Resolver and
// deps.Fetcher.
type Client struct {
	bin            string
	resolveTimeout time.Duration
	fetchTimeout   time.Duration
	logger         zerolog.Logger
}

// NewClient creates a yt-dlp client from config.
func NewClient(cfg *config.DownloaderConfig, logger zerolog.Logger) *Client {
	return &Client{
		bin:            cfg.BinPath,
		resolveTimeout: cfg.ResolveTimeout,
		fetchTimeout:   cfg.DownloadTimeout,
		logger:         logger,
	}
}

// Resolve extracts metadata and the format list for a URL without
// downloading. Every resolver failure collapses to ErrResolutionFailed;
// callers treat all resolution failures identically. The underlying cause
// is logged here.
func (c *Client) Resolve(ctx context.Context, url string) (*entities.VideoInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, c.resolveTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.bin, "-J", "--no-warnings", url)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("url", url).
			Str("stderr", stderr.String()).
			Msg("yt-dlp extraction failed")
		return nil, boterrors.ErrResolutionFailed
	}

	info, err := parseInfo(out)
	if err != nil {
		c.logger.Error().Err(err).Str("url", url).Msg("Failed to parse yt-dlp output")
		return nil, boterrors.ErrResolutionFailed
	}

	c.logger.Info().
		Str("url", url).
		Str("title", info.Title).
		Int("formats", len(info.Formats)).
		Msg("Video resolved")

	return info, nil
}

// Fetch downloads the selected format into destDir and returns the path of
// the produced file. The executor may retry internally; this layer does not.
func (c *Client) Fetch(ctx context.Context, url, formatID, destDir string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
	defer cancel()

	outTemplate := filepath.Join(destDir, "%(title)s.%(ext)s")
	cmd := exec.CommandContext(ctx, c.bin, "-f", formatID, "-o", outTemplate, "--no-warnings", url)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return "", fmt.Errorf("yt-dlp: %s", stderr.String())
		}
		return "", fmt.Errorf("yt-dlp: %w", err)
	}

	entries, err := os.ReadDir(destDir)
	if err != nil {
		return "", fmt.Errorf("read download dir: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			return filepath.Join(destDir, entry.Name()), nil
		}
	}

	return "", fmt.Errorf("yt-dlp produced no file")
}

// rawInfo mirrors the subset of the yt-dlp JSON dump the bot consumes.
type rawInfo struct {
	Title    string      `json:"title"`
	Uploader string      `json:"uploader"`
	Duration float64     `json:"duration"`
	Formats  []rawFormat `json:"formats"`
}

type rawFormat struct {
	FormatID   string   `json:"format_id"`
	Ext        string   `json:"ext"`
	Filesize   *int64   `json:"filesize"`
	Height     *int     `json:"height"`
	Width      *int     `json:"width"`
	FPS        *float64 `json:"fps"`
	Vcodec     string   `json:"vcodec"`
	Acodec     string   `json:"acodec"`
	FormatNote string   `json:"format_note"`
	URL        string   `json:"url"`
}

// parseInfo decodes a yt-dlp JSON dump. Format records without a retrieval
// URL or a container extension are unusable and dropped here, before the
// rest of the system sees them.
func parseInfo(data []byte) (*entities.VideoInfo, error) {
	var raw rawInfo
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	info := &entities.VideoInfo{
		Title:    raw.Title,
		Uploader: raw.Uploader,
		Duration: int(raw.Duration),
	}
	if info.Title == "" {
		info.Title = "Unknown Title"
	}
	if info.Uploader == "" {
		info.Uploader = "Unknown"
	}

	for _, f := range raw.Formats {
		if f.URL == "" || f.Ext == "" {
			continue
		}
		info.Formats = append(info.Formats, entities.Format{
			FormatID:   f.FormatID,
			Ext:        f.Ext,
			Filesize:   deref(f.Filesize),
			Height:     deref(f.Height),
			Width:      deref(f.Width),
			FPS:        deref(f.FPS),
			Vcodec:     f.Vcodec,
			Acodec:     f.Acodec,
			FormatNote: f.FormatNote,
			URL:        f.URL,
		})
	}

	return info, nil
}

func deref[T int | int64 | float64](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}
