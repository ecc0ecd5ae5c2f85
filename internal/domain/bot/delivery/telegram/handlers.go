// Package telegram contains Telegram delivery handlers
package telegram

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"github.com/yourusername/video-downloader-bot/internal/domain/bot/consts"
	"github.com/yourusername/video-downloader-bot/internal/domain/bot/dto"
	"github.com/yourusername/video-downloader-bot/internal/domain/bot/menu"
	"github.com/yourusername/video-downloader-bot/internal/domain/bot/usecase"
)

// Constants for Telegram API
const (
	MaxMessageLength = 4096
	RequestTimeout   = 30 * time.Second
	UploadTimeout    = 120 * time.Second
)

// Handlers contains Telegram update handlers.
// Implements deps.Messenger.
type Handlers struct {
	uc     *usecase.UseCase
	bot    *tgbot.Bot
	logger zerolog.Logger
}

// NewHandlers creates new Telegram handlers
func NewHandlers(uc *usecase.UseCase, bot *tgbot.Bot, logger zerolog.Logger) *Handlers {
	return &Handlers{
		uc:     uc,
		bot:    bot,
		logger: logger,
	}
}

// HandleStart handles /start command
func (h *Handlers) HandleStart(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	h.logCommand(update.Message.From.ID, "/start")
	h.uc.HandleStart(ctx, update.Message.Chat.ID)
}

// HandleHelp handles /help command
func (h *Handlers) HandleHelp(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	h.logCommand(update.Message.From.ID, "/help")
	h.uc.HandleHelp(ctx, update.Message.Chat.ID)
}

// HandleStatus handles /status command
func (h *Handlers) HandleStatus(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	h.logCommand(update.Message.From.ID, "/status")
	h.uc.HandleStatus(ctx, update.Message.Chat.ID)
}

// HandleText handles plain text messages carrying candidate video URLs
func (h *Handlers) HandleText(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	h.uc.HandleURL(ctx, &dto.URLRequest{
		ChatID:    update.Message.Chat.ID,
		UserID:    update.Message.From.ID,
		MessageID: update.Message.ID,
		URL:       update.Message.Text,
	})
}

// HandleCallback handles callback queries from the selection menu.
// The raw payload is decoded into a tagged action exactly once, here.
func (h *Handlers) HandleCallback(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	query := update.CallbackQuery
	if query == nil {
		return
	}

	action, err := menu.DecodeAction(query.Data)
	if err != nil {
		h.logger.Warn().Str("data", query.Data).Msg("Undecodable callback payload")
		_ = h.AnswerCallback(ctx, query.ID, "❌ An error occurred.")
		return
	}

	chatID, messageID := callbackOrigin(query)

	switch action.Verb {
	case consts.VerbDownload:
		h.uc.HandleDownload(ctx, &dto.SelectionRequest{
			ChatID:     chatID,
			UserID:     query.From.ID,
			MessageID:  messageID,
			CallbackID: query.ID,
			SessionKey: action.SessionKey,
			FormatID:   action.FormatID,
		})
	case consts.VerbCancel:
		h.uc.HandleCancel(ctx, &dto.CancelRequest{
			ChatID:     chatID,
			UserID:     query.From.ID,
			MessageID:  messageID,
			CallbackID: query.ID,
			SessionKey: action.SessionKey,
		})
	case consts.VerbHeader:
		h.uc.HandleHeader(ctx, query.ID)
	}
}

// callbackOrigin extracts the chat and message the tapped menu lives in
func callbackOrigin(query *models.CallbackQuery) (int64, int) {
	msg := query.Message.Message
	if msg == nil {
		return 0, 0
	}
	return msg.Chat.ID, msg.ID
}

// SendMessageAndGetID implements deps.Messenger
func (h *Handlers) SendMessageAndGetID(ctx context.Context, chatID int64, text string) (int, error) {
	if text == "" {
		return 0, fmt.Errorf("message text cannot be empty")
	}

	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	msg, err := h.bot.SendMessage(msgCtx, &tgbot.SendMessageParams{
		ChatID:    chatID,
		Text:      truncateMessage(text),
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		h.logger.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to send message")
		return 0, fmt.Errorf("failed to send message: %w", err)
	}

	return msg.ID, nil
}

// EditMessageText implements deps.Messenger
func (h *Handlers) EditMessageText(ctx context.Context, chatID int64, messageID int, text string) error {
	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := h.bot.EditMessageText(msgCtx, &tgbot.EditMessageTextParams{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      truncateMessage(text),
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		h.logger.Error().Err(err).Int64("chat_id", chatID).Int("message_id", messageID).Msg("Failed to edit message")
		return fmt.Errorf("failed to edit message: %w", err)
	}

	return nil
}

// EditMessageMenu implements deps.Messenger: edits a message and attaches
// the selection menu rendered as an inline keyboard.
func (h *Handlers) EditMessageMenu(ctx context.Context, chatID int64, messageID int, text string, m menu.Menu) error {
	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := h.bot.EditMessageText(msgCtx, &tgbot.EditMessageTextParams{
		ChatID:      chatID,
		MessageID:   messageID,
		Text:        truncateMessage(text),
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: toKeyboard(m),
	})
	if err != nil {
		h.logger.Error().Err(err).Int64("chat_id", chatID).Int("message_id", messageID).Msg("Failed to edit message with menu")
		return fmt.Errorf("failed to edit message with menu: %w", err)
	}

	return nil
}

// SendAudioFile implements deps.Messenger
func (h *Handlers) SendAudioFile(ctx context.Context, chatID int64, path, caption string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	msgCtx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	_, err = h.bot.SendAudio(msgCtx, &tgbot.SendAudioParams{
		ChatID:    chatID,
		Audio:     &models.InputFileUpload{Filename: filepath.Base(path), Data: file},
		Caption:   caption,
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		h.logger.Error().Err(err).Int64("chat_id", chatID).Str("path", path).Msg("Failed to send audio")
		return fmt.Errorf("failed to send audio: %w", err)
	}

	h.logger.Info().Int64("chat_id", chatID).Str("path", path).Msg("Audio delivered")
	return nil
}

// SendVideoFile implements deps.Messenger
func (h *Handlers) SendVideoFile(ctx context.Context, chatID int64, path, caption string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	msgCtx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	_, err = h.bot.SendVideo(msgCtx, &tgbot.SendVideoParams{
		ChatID:    chatID,
		Video:     &models.InputFileUpload{Filename: filepath.Base(path), Data: file},
		Caption:   caption,
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		h.logger.Error().Err(err).Int64("chat_id", chatID).Str("path", path).Msg("Failed to send video")
		return fmt.Errorf("failed to send video: %w", err)
	}

	h.logger.Info().Int64("chat_id", chatID).Str("path", path).Msg("Video delivered")
	return nil
}

// AnswerCallback implements deps.Messenger
func (h *Handlers) AnswerCallback(ctx context.Context, callbackID, text string) error {
	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := h.bot.AnswerCallbackQuery(msgCtx, &tgbot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
	})
	if err != nil {
		return fmt.Errorf("failed to answer callback: %w", err)
	}

	return nil
}

// toKeyboard renders a transport-agnostic menu into Telegram inline markup
func toKeyboard(m menu.Menu) models.ReplyMarkup {
	rows := make([][]models.InlineKeyboardButton, 0, len(m.Rows))
	for _, row := range m.Rows {
		buttons := make([]models.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, models.InlineKeyboardButton{
				Text:         b.Text,
				CallbackData: b.Data,
			})
		}
		rows = append(rows, buttons)
	}
	return models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// truncateMessage caps text at the Telegram message limit on a rune
// boundary; a byte slice could split a multi-byte character and produce
// invalid UTF-8, which the API rejects.
func truncateMessage(text string) string {
	runes := []rune(text)
	if len(runes) > MaxMessageLength {
		return string(runes[:MaxMessageLength-3]) + "..."
	}
	return text
}

// logCommand logs inbound commands
func (h *Handlers) logCommand(userID int64, command string) {
	h.logger.Info().Int64("user_id", userID).Str("command", command).Msg("Telegram command received")
}
