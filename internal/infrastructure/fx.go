// Package infrastructure contains infrastructure layer components
package infrastructure

import (
	"go.uber.org/fx"

	"github.com/yourusername/video-downloader-bot/internal/infrastructure/logger"
	"github.com/yourusername/video-downloader-bot/internal/infrastructure/sysinfo"
	"github.com/yourusername/video-downloader-bot/internal/infrastructure/telegram"
)

// Module provides all infrastructure components for fx dependency injection
var Module = fx.Module("infrastructure",
	logger.Module,
	telegram.Module,
	fx.Provide(sysinfo.NewProber),
)
