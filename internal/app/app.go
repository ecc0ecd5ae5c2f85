// Package app contains application bootstrap
package app

import (
	"go.uber.org/fx"

	"github.com/yourusername/video-downloader-bot/config"
	"github.com/yourusername/video-downloader-bot/internal/domain"
	"github.com/yourusername/video-downloader-bot/internal/infrastructure"
)

// CreateApp creates fx application with all modules
func CreateApp() fx.Option {
	return fx.Options(
		// Configuration
		fx.Provide(config.Out),

		// Infrastructure (logger, telegram bot, sysinfo)
		infrastructure.Module,

		// Domain (bot business logic)
		domain.Module,
	)
}
