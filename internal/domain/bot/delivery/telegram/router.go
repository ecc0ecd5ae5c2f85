// Package telegram contains Telegram delivery layer
package telegram

import (
	"strings"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"github.com/yourusername/video-downloader-bot/internal/domain/bot/consts"
)

// Router registers Telegram bot handlers
type Router struct {
	handlers *Handlers
	logger   zerolog.Logger
}

// NewRouter creates new Telegram router
func NewRouter(handlers *Handlers, logger zerolog.Logger) *Router {
	return &Router{
		handlers: handlers,
		logger:   logger,
	}
}

// RegisterRoutes registers all handlers on the bot
func (r *Router) RegisterRoutes(bot *tgbot.Bot) {
	bot.RegisterHandler(tgbot.HandlerTypeMessageText, consts.CommandStart, tgbot.MatchTypeExact, r.handlers.HandleStart)
	bot.RegisterHandler(tgbot.HandlerTypeMessageText, consts.CommandHelp, tgbot.MatchTypeExact, r.handlers.HandleHelp)
	bot.RegisterHandler(tgbot.HandlerTypeMessageText, consts.CommandStatus, tgbot.MatchTypeExact, r.handlers.HandleStatus)

	bot.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, consts.VerbDownload+"_", tgbot.MatchTypePrefix, r.handlers.HandleCallback)
	bot.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, consts.VerbCancel+"_", tgbot.MatchTypePrefix, r.handlers.HandleCallback)
	bot.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, consts.VerbHeader+"_", tgbot.MatchTypePrefix, r.handlers.HandleCallback)

	// Plain text messages (candidate URLs), everything that is not a command
	bot.RegisterHandlerMatchFunc(matchPlainText, r.handlers.HandleText)

	r.logger.Info().Msg("All Telegram handlers registered successfully")
}

// matchPlainText matches non-command text messages
func matchPlainText(update *models.Update) bool {
	return update.Message != nil &&
		update.Message.Text != "" &&
		!strings.HasPrefix(update.Message.Text, "/")
}
