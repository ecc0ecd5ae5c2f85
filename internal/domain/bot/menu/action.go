package menu

import (
	"fmt"
	"strings"

	"github.com/yourusername/video-downloader-bot/internal/domain/bot/consts"
	boterrors "github.com/yourusername/video-downloader-bot/internal/domain/bot/errors"
)

// Action is the decoded form of a callback payload. Payloads are decoded
// exactly once, at the transport boundary, so the rest of the system never
// touches the wire encoding.
type Action struct {
	Verb       string
	SessionKey string
	FormatID   string
}

// Wire format: download_<key>_<formatID>, cancel_<key>, header_<section>_<key>.
// Format identifiers may themselves contain underscores, so the download
// payload is split at most twice and the identifier keeps the remainder.
// Session keys are hex digests and can never contain the delimiter.

func encodeDownload(sessionKey, formatID string) string {
	return fmt.Sprintf("%s_%s_%s", consts.VerbDownload, sessionKey, formatID)
}

func encodeCancel(sessionKey string) string {
	return fmt.Sprintf("%s_%s", consts.VerbCancel, sessionKey)
}

func encodeHeader(section, sessionKey string) string {
	return fmt.Sprintf("%s_%s_%s", consts.VerbHeader, section, sessionKey)
}

// DecodeAction parses a callback payload into a tagged Action.
func DecodeAction(data string) (Action, error) {
	switch {
	case strings.HasPrefix(data, consts.VerbDownload+"_"):
		parts := strings.SplitN(data, "_", 3)
		if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
			return Action{}, boterrors.ErrInvalidAction
		}
		return Action{Verb: consts.VerbDownload, SessionKey: parts[1], FormatID: parts[2]}, nil

	case strings.HasPrefix(data, consts.VerbCancel+"_"):
		key := strings.TrimPrefix(data, consts.VerbCancel+"_")
		if key == "" {
			return Action{}, boterrors.ErrInvalidAction
		}
		return Action{Verb: consts.VerbCancel, SessionKey: key}, nil

	case strings.HasPrefix(data, consts.VerbHeader+"_"):
		// Header taps carry no state; the key suffix is not needed.
		return Action{Verb: consts.VerbHeader}, nil

	default:
		return Action{}, boterrors.ErrInvalidAction
	}
}
