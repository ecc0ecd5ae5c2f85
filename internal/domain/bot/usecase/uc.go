// Package usecase contains business logic for the bot domain
package usecase

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yourusername/video-downloader-bot/internal/domain/bot/consts"
	"github.com/yourusername/video-downloader-bot/internal/domain/bot/deps"
	"github.com/yourusername/video-downloader-bot/internal/domain/bot/downloader"
	"github.com/yourusername/video-downloader-bot/internal/domain/bot/dto"
	"github.com/yourusername/video-downloader-bot/internal/domain/bot/entities"
	"github.com/yourusername/video-downloader-bot/internal/domain/bot/menu"
	"github.com/yourusername/video-downloader-bot/internal/domain/bot/session"
	"github.com/yourusername/video-downloader-bot/pkg/format"
)

// supportedDomains is the fixed whitelist of platform tokens a candidate
// URL must contain.
var supportedDomains = []string{
	"youtube", "youtu.be", "instagram", "tiktok", "twitter",
	"facebook", "reddit", "vimeo", "dailymotion",
}

// UseCase drives the session and download lifecycle for inbound chat events.
// Every error is converted to a user-visible message here; nothing
// propagates out of a handler.
type UseCase struct {
	store        deps.SessionStore
	resolver     deps.Resolver
	orchestrator *downloader.Orchestrator
	events       deps.DownloadEventProducer
	prober       deps.SystemProber
	sender       deps.Messenger
	logger       zerolog.Logger
}

// NewUseCase creates a new UseCase instance.
// Note: sender is not passed here to break the cyclic dependency with the
// Telegram handlers. Use SetSender after creating them.
func NewUseCase(
	store deps.SessionStore,
	resolver deps.Resolver,
	orchestrator *downloader.Orchestrator,
	events deps.DownloadEventProducer,
	prober deps.SystemProber,
	logger zerolog.Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		resolver:     resolver,
		orchestrator: orchestrator,
		events:       events,
		prober:       prober,
		logger:       logger,
	}
}

// SetSender sets the Messenger after construction.
// This is called by fx.Invoke to resolve the cyclic dependency.
func (uc *UseCase) SetSender(sender deps.Messenger) {
	uc.sender = sender
}

// HandleStart handles /start command
func (uc *UseCase) HandleStart(ctx context.Context, chatID int64) {
	uc.reply(ctx, chatID, welcomeText)
}

// HandleHelp handles /help command
func (uc *UseCase) HandleHelp(ctx context.Context, chatID int64) {
	uc.reply(ctx, chatID, helpText)
}

// HandleStatus handles /status command
func (uc *UseCase) HandleStatus(ctx context.Context, chatID int64) {
	status, err := uc.prober.Snapshot()
	if err != nil {
		uc.logger.Error().Err(err).Msg("Failed to collect system status")
		uc.reply(ctx, chatID, "🤖 <b>Bot Status</b>\n\n✅ Bot is running")
		return
	}

	text := fmt.Sprintf(`🤖 <b>Bot Status</b>

✅ <b>Bot is running</b>
✅ <b>yt-dlp is available</b>
✅ <b>Ready to download videos</b>

<b>Go version:</b> %s
<b>Goroutines:</b> %d
<b>CPU cores:</b> %d
<b>Memory:</b> %.1f%% of %s used

Send me a video URL to get started!`,
		status.GoVersion,
		status.Goroutines,
		status.CPUCount,
		status.MemoryUsedPercent,
		format.Size(int64(status.MemoryTotal)),
	)

	uc.reply(ctx, chatID, text)
}

// HandleURL handles an inbound text message carrying a candidate video URL:
// validate, resolve, store a session and present the format menu.
func (uc *UseCase) HandleURL(ctx context.Context, req *dto.URLRequest) {
	url := strings.TrimSpace(req.URL)

	if !isSupportedURL(url) {
		uc.logger.Debug().Int64("user_id", req.UserID).Msg("URL failed domain whitelist")
		uc.reply(ctx, req.ChatID, "❌ Please send a valid video URL from supported platforms.")
		return
	}

	processingID, err := uc.sender.SendMessageAndGetID(ctx, req.ChatID,
		"🔍 <b>Processing your video...</b>\n\nPlease wait while I extract the available formats.")
	if err != nil {
		uc.logger.Error().Err(err).Int64("chat_id", req.ChatID).Msg("Failed to send processing message")
		return
	}

	info, err := uc.resolver.Resolve(ctx, url)
	if err != nil {
		uc.logger.Warn().Err(err).Int64("user_id", req.UserID).Str("url", url).Msg("Resolution failed")
		uc.edit(ctx, req.ChatID, processingID,
			"❌ <b>Error:</b> Could not extract video information.\n\nPlease check if the URL is valid and the video is available.")
		return
	}

	if len(info.Formats) == 0 {
		uc.edit(ctx, req.ChatID, processingID,
			"❌ <b>Error:</b> No downloadable formats found for this video.")
		return
	}

	key := session.KeyFor(url)
	uc.store.Put(key, &entities.Session{
		Key:       key,
		URL:       url,
		Title:     info.Title,
		Uploader:  info.Uploader,
		Duration:  info.Duration,
		Formats:   info.Formats,
		UserID:    req.UserID,
		MessageID: req.MessageID,
	})

	text := fmt.Sprintf(`🎬 <b>Video Found!</b>

<b>Title:</b> %s
<b>Uploader:</b> %s
<b>Duration:</b> %s
<b>Available Formats:</b> %d

Choose your preferred format below:`,
		html.EscapeString(truncate(info.Title, 100)),
		html.EscapeString(info.Uploader),
		format.Duration(info.Duration), len(info.Formats))

	if err := uc.sender.EditMessageMenu(ctx, req.ChatID, processingID, text, menu.Build(info.Formats, key)); err != nil {
		uc.logger.Error().Err(err).Str("session_key", key).Msg("Failed to present format menu")
		return
	}

	uc.logger.Info().
		Int64("user_id", req.UserID).
		Str("session_key", key).
		Int("formats", len(info.Formats)).
		Msg("Session created")

	if err := uc.events.VideoResolved(ctx, req.UserID, url, len(info.Formats)); err != nil {
		uc.logger.Warn().Err(err).Msg("Failed to publish resolved event")
	}
}

// HandleDownload handles a decoded format selection action.
func (uc *UseCase) HandleDownload(ctx context.Context, req *dto.SelectionRequest) {
	sess, ok := uc.store.Get(req.SessionKey)
	if !ok {
		uc.answer(ctx, req.CallbackID, "❌ Video session expired. Please send the URL again.")
		return
	}

	// Sessions are mutable only by their owner. No state changes on denial.
	if sess.UserID != req.UserID {
		uc.logger.Warn().
			Int64("user_id", req.UserID).
			Int64("owner_id", sess.UserID).
			Str("session_key", req.SessionKey).
			Msg("Selection denied, not session owner")
		uc.answer(ctx, req.CallbackID, "❌ This download session is not yours.")
		return
	}

	selected, ok := sess.FindFormat(req.FormatID)
	if !ok {
		uc.answer(ctx, req.CallbackID, "❌ Format not found.")
		return
	}

	uc.answer(ctx, req.CallbackID, "")
	uc.edit(ctx, req.ChatID, req.MessageID, progressText(selected))

	file, err := uc.orchestrator.Download(ctx, sess, req.FormatID)
	if err != nil {
		// The session is kept so the user can re-select from the same menu.
		uc.edit(ctx, req.ChatID, req.MessageID,
			fmt.Sprintf("❌ <b>Download failed.</b>\n\nError: %s", err.Error()))
		uc.publishFailed(ctx, req, sess.URL, err.Error())
		return
	}
	defer file.Discard()

	caption := completionCaption(sess.Title, selected, file.Size)

	if consts.AudioExtensions[file.Ext] {
		err = uc.sender.SendAudioFile(ctx, req.ChatID, file.Path, caption)
	} else {
		err = uc.sender.SendVideoFile(ctx, req.ChatID, file.Path, caption)
	}
	if err != nil {
		uc.logger.Error().Err(err).Str("session_key", req.SessionKey).Msg("Failed to deliver file")
		uc.edit(ctx, req.ChatID, req.MessageID,
			"❌ <b>Download failed.</b>\n\nPlease try again or choose a different format.")
		uc.publishFailed(ctx, req, sess.URL, err.Error())
		return
	}

	// Terminal outcome reached, the session can go.
	uc.store.Delete(req.SessionKey)

	uc.edit(ctx, req.ChatID, req.MessageID,
		"✅ <b>Download completed successfully!</b>\n\nSend me another video URL to download more videos.")

	uc.logger.Info().
		Int64("user_id", req.UserID).
		Str("session_key", req.SessionKey).
		Str("format_id", req.FormatID).
		Int64("size", file.Size).
		Msg("Download delivered")

	if err := uc.events.DownloadDelivered(ctx, req.UserID, sess.URL, req.FormatID, file.Size); err != nil {
		uc.logger.Warn().Err(err).Msg("Failed to publish delivered event")
	}
}

// HandleCancel handles a decoded cancel action. Cancelling an absent
// session is not an error.
func (uc *UseCase) HandleCancel(ctx context.Context, req *dto.CancelRequest) {
	// Cancel mutates the session, so it is owner-only like download.
	if sess, ok := uc.store.Get(req.SessionKey); ok && sess.UserID != req.UserID {
		uc.logger.Warn().
			Int64("user_id", req.UserID).
			Int64("owner_id", sess.UserID).
			Str("session_key", req.SessionKey).
			Msg("Cancel denied, not session owner")
		uc.answer(ctx, req.CallbackID, "❌ This download session is not yours.")
		return
	}

	uc.store.Delete(req.SessionKey)

	uc.edit(ctx, req.ChatID, req.MessageID,
		"❌ <b>Download cancelled.</b>\n\nSend me another video URL to try again.")
	uc.answer(ctx, req.CallbackID, "Download cancelled")

	uc.logger.Info().Int64("user_id", req.UserID).Str("session_key", req.SessionKey).Msg("Session cancelled")
}

// HandleHeader acknowledges a tap on a non-interactive section label.
func (uc *UseCase) HandleHeader(ctx context.Context, callbackID string) {
	uc.answer(ctx, callbackID, "")
}

func (uc *UseCase) publishFailed(ctx context.Context, req *dto.SelectionRequest, url, reason string) {
	if err := uc.events.DownloadFailed(ctx, req.UserID, url, req.FormatID, reason); err != nil {
		uc.logger.Warn().Err(err).Msg("Failed to publish failed event")
	}
}

func (uc *UseCase) reply(ctx context.Context, chatID int64, text string) {
	if _, err := uc.sender.SendMessageAndGetID(ctx, chatID, text); err != nil {
		uc.logger.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to send message")
	}
}

func (uc *UseCase) edit(ctx context.Context, chatID int64, messageID int, text string) {
	if err := uc.sender.EditMessageText(ctx, chatID, messageID, text); err != nil {
		uc.logger.Error().Err(err).Int64("chat_id", chatID).Int("message_id", messageID).Msg("Failed to edit message")
	}
}

func (uc *UseCase) answer(ctx context.Context, callbackID, text string) {
	if err := uc.sender.AnswerCallback(ctx, callbackID, text); err != nil {
		uc.logger.Warn().Err(err).Msg("Failed to answer callback")
	}
}

func isSupportedURL(url string) bool {
	lower := strings.ToLower(url)
	for _, domain := range supportedDomains {
		if strings.Contains(lower, domain) {
			return true
		}
	}
	return false
}

// truncate caps a string at max characters. Slicing runes, not bytes,
// keeps the result valid UTF-8 for titles in any script.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func qualityLabel(f entities.Format) string {
	if f.Height <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%dp", f.Height)
}

func advertisedSize(f entities.Format) string {
	if f.Filesize <= 0 {
		return "Unknown"
	}
	return format.Size(f.Filesize)
}

func progressText(f entities.Format) string {
	return fmt.Sprintf(`⏳ <b>Downloading...</b>

<b>Format:</b> %s
<b>Quality:</b> %s
<b>Size:</b> %s

Please wait while I download your video...`,
		f.Ext, qualityLabel(f), advertisedSize(f))
}

// completionCaption renders the caption attached to the delivered file.
// Size is the final on-disk size, which may differ from the advertised
// estimate.
func completionCaption(title string, f entities.Format, size int64) string {
	return fmt.Sprintf(`✅ <b>Download Complete!</b>

<b>Title:</b> %s
<b>Format:</b> %s
<b>Quality:</b> %s
<b>Size:</b> %s`,
		html.EscapeString(truncate(title, 50)), f.Ext, qualityLabel(f), format.Size(size))
}

const welcomeText = `🎬 <b>Welcome to Video Downloader Bot!</b>

I can download videos from most popular websites including:
• YouTube
• Instagram
• TikTok
• Twitter/X
• Facebook
• And many more!

<b>How to use:</b>
1. Send me a video URL
2. Choose your preferred format
3. Download your video!

<b>Commands:</b>
/start - Show this message
/help - Show help information
/status - Check bot status`

const helpText = `📖 <b>Help Guide</b>

<b>Supported Sites:</b>
• YouTube (videos, shorts, live streams)
• Instagram (posts, reels, stories)
• TikTok (videos)
• Twitter/X (videos)
• Facebook (videos, reels)
• Reddit (videos)
• Vimeo
• Dailymotion

<b>How to download:</b>
1. Copy the video URL
2. Send it to me
3. Wait for format options
4. Select your preferred quality
5. Download the file

<b>Tips:</b>
• For better quality, choose higher resolution
• Audio-only formats are smaller in size
• Some videos may take time to process
• Large files might be split due to Telegram limits`
