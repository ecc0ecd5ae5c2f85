// Package menu builds the format selection menu and encodes the callback
// payloads bound to its buttons. It is transport-agnostic: the delivery
// layer renders Menu into the markup dialect of the chat platform.
package menu

import (
	"fmt"
	"sort"

	"github.com/yourusername/video-downloader-bot/internal/domain/bot/entities"
	"github.com/yourusername/video-downloader-bot/pkg/format"
)

// Fixed design constants, not configurable per call.
const (
	maxVideoRows = 5
	maxAudioRows = 3
)

// Button is a single tappable menu entry.
type Button struct {
	Text string
	Data string
}

// Menu is an ordered list of button rows.
type Menu struct {
	Rows [][]Button
}

// Build partitions formats into video and audio entries and renders the
// selection menu for one session. Video entries are sorted by descending
// height (stable, height is the sole key) and capped at 5; audio entries
// keep list order and are capped at 3. A cancel row is always appended,
// so menu construction never fails even for an empty format list.
func Build(formats []entities.Format, sessionKey string) Menu {
	var video, audio []entities.Format
	for _, f := range formats {
		if f.IsVideo() {
			video = append(video, f)
		}
		if f.IsAudio() {
			audio = append(audio, f)
		}
	}

	sort.SliceStable(video, func(i, j int) bool {
		return video[i].Height > video[j].Height
	})

	var rows [][]Button

	if len(video) > 0 {
		rows = append(rows, []Button{{
			Text: "📹 Video Formats",
			Data: encodeHeader("video", sessionKey),
		}})
		for _, f := range capped(video, maxVideoRows) {
			rows = append(rows, []Button{{
				Text: fmt.Sprintf("🎥 %dp (%s) - %s", f.Height, f.Ext, sizeLabel(f)),
				Data: encodeDownload(sessionKey, f.FormatID),
			}})
		}
	}

	if len(audio) > 0 {
		rows = append(rows, []Button{{
			Text: "🎵 Audio Formats",
			Data: encodeHeader("audio", sessionKey),
		}})
		for _, f := range capped(audio, maxAudioRows) {
			rows = append(rows, []Button{{
				Text: fmt.Sprintf("🎵 Audio (%s) - %s", f.Ext, sizeLabel(f)),
				Data: encodeDownload(sessionKey, f.FormatID),
			}})
		}
	}

	rows = append(rows, []Button{{
		Text: "❌ Cancel",
		Data: encodeCancel(sessionKey),
	}})

	return Menu{Rows: rows}
}

func capped(formats []entities.Format, n int) []entities.Format {
	if len(formats) > n {
		return formats[:n]
	}
	return formats
}

// sizeLabel renders the advertised size, or "Unknown" when the resolver
// did not report one.
func sizeLabel(f entities.Format) string {
	if f.Filesize <= 0 {
		return "Unknown"
	}
	return format.Size(f.Filesize)
}
