// Package bot contains the bot domain module
package bot

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/yourusername/video-downloader-bot/config"
	telegramDelivery "github.com/yourusername/video-downloader-bot/internal/domain/bot/delivery/telegram"
	"github.com/yourusername/video-downloader-bot/internal/domain/bot/deps"
	"github.com/yourusername/video-downloader-bot/internal/domain/bot/downloader"
	kafkaRepo "github.com/yourusername/video-downloader-bot/internal/domain/bot/repository/kafka"
	"github.com/yourusername/video-downloader-bot/internal/domain/bot/resolver"
	"github.com/yourusername/video-downloader-bot/internal/domain/bot/session"
	"github.com/yourusername/video-downloader-bot/internal/domain/bot/usecase"
	"github.com/yourusername/video-downloader-bot/internal/domain/bot/workers"
	"github.com/yourusername/video-downloader-bot/internal/infrastructure/sysinfo"
	"github.com/yourusername/video-downloader-bot/internal/infrastructure/telegram"
)

// Module provides bot domain components for fx dependency injection
var Module = fx.Module("bot",
	// Session store
	fx.Provide(provideStore),
	fx.Provide(func(s *session.Store) deps.SessionStore { return s }),

	// External resolver/executor
	fx.Provide(resolver.NewClient),
	fx.Provide(func(c *resolver.Client) deps.Resolver { return c }),
	fx.Provide(func(c *resolver.Client) deps.Fetcher { return c }),

	// Download events
	fx.Provide(provideEventProducer),

	// Orchestrator and use case
	fx.Provide(provideOrchestrator),
	fx.Provide(provideUseCase),

	// Delivery - Telegram (needs raw bot from infrastructure)
	fx.Provide(provideTelegramHandlers),
	fx.Provide(telegramDelivery.NewRouter),

	// Wire cyclic dependency, register routes and background workers
	fx.Invoke(wireAndRegister),
)

// provideStore creates the session store from config
func provideStore(cfg *config.SessionConfig, logger zerolog.Logger) *session.Store {
	return session.NewStore(cfg.TTL, logger.With().Str("component", "session-store").Logger())
}

// provideEventProducer creates the download event producer. Without
// configured brokers events are discarded.
func provideEventProducer(cfg *config.KafkaConfig, logger zerolog.Logger) (deps.DownloadEventProducer, error) {
	if len(cfg.Brokers) == 0 {
		logger.Info().Msg("No Kafka brokers configured, download events disabled")
		return kafkaRepo.NopProducer{}, nil
	}
	return kafkaRepo.NewProducer(cfg, logger.With().Str("component", "event-producer").Logger())
}

// provideOrchestrator creates the download orchestrator
func provideOrchestrator(fetcher deps.Fetcher, cfg *config.DownloaderConfig, logger zerolog.Logger) *downloader.Orchestrator {
	return downloader.NewOrchestrator(fetcher, cfg.WorkDir, logger.With().Str("component", "orchestrator").Logger())
}

// provideUseCase creates the use case
func provideUseCase(
	store deps.SessionStore,
	res deps.Resolver,
	orchestrator *downloader.Orchestrator,
	events deps.DownloadEventProducer,
	prober *sysinfo.Prober,
	logger zerolog.Logger,
) *usecase.UseCase {
	return usecase.NewUseCase(store, res, orchestrator, events, prober, logger)
}

// provideTelegramHandlers creates Telegram handlers with raw bot
func provideTelegramHandlers(uc *usecase.UseCase, bot *telegram.Bot, logger zerolog.Logger) *telegramDelivery.Handlers {
	return telegramDelivery.NewHandlers(uc, bot.Raw(), logger)
}

// wireAndRegister resolves the cyclic dependency, registers routes and
// starts background workers
func wireAndRegister(
	lc fx.Lifecycle,
	uc *usecase.UseCase,
	handlers *telegramDelivery.Handlers,
	router *telegramDelivery.Router,
	bot *telegram.Bot,
	store *session.Store,
	sessionCfg *config.SessionConfig,
	events deps.DownloadEventProducer,
	logger zerolog.Logger,
) {
	// Handlers implements deps.Messenger.
	// This resolves the cyclic dependency: UseCase -> Messenger <- Handlers -> UseCase
	uc.SetSender(handlers)

	// Register Telegram routes
	router.RegisterRoutes(bot.Raw())

	sweeper := workers.NewSessionSweeper(
		store,
		sessionCfg.SweepInterval,
		logger.With().Str("component", "session-sweeper").Logger(),
	)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			if err := sweeper.Stop(); err != nil {
				return err
			}
			return events.Close()
		},
	})
}
