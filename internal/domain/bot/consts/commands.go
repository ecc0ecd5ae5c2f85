// Package consts contains bot command and callback constants
package consts

// Bot commands
const (
	CommandStart  = "/start"
	CommandHelp   = "/help"
	CommandStatus = "/status"
)

// Callback verbs encoded in inline keyboard payloads
const (
	VerbDownload = "download"
	VerbCancel   = "cancel"
	VerbHeader   = "header"
)

// AudioExtensions is the static set of containers delivered through the
// audio-send channel; everything else goes through the video-send channel.
var AudioExtensions = map[string]bool{
	"mp3": true,
	"m4a": true,
	"wav": true,
	"ogg": true,
}
