// Package entities contains domain entities
package entities

import "time"

// Format represents one downloadable variant of a resolved video.
// FormatID is assigned by the media resolver and is unique only within
// the format list of a single session.
type Format struct {
	FormatID   string  `json:"format_id"`
	Ext        string  `json:"ext"`
	Filesize   int64   `json:"filesize"`
	Height     int     `json:"height"`
	Width      int     `json:"width"`
	FPS        float64 `json:"fps"`
	Vcodec     string  `json:"vcodec"`
	Acodec     string  `json:"acodec"`
	FormatNote string  `json:"format_note"`
	URL        string  `json:"url"`
}

// IsVideo reports whether the format carries a video stream.
// The "none" codec tag is the resolver's sentinel for a missing stream.
func (f Format) IsVideo() bool {
	return f.Height > 0 && f.Vcodec != "" && f.Vcodec != "none"
}

// IsAudio reports whether the format carries an audio stream.
func (f Format) IsAudio() bool {
	return f.Acodec != "" && f.Acodec != "none"
}

// VideoInfo is the metadata produced by resolving a URL.
type VideoInfo struct {
	Title    string   `json:"title"`
	Uploader string   `json:"uploader"`
	Duration int      `json:"duration"`
	Formats  []Format `json:"formats"`
}

// Session correlates one resolved URL with its format choices and the
// owning user, until a format is selected or the session is cancelled.
// Immutable after creation.
type Session struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Uploader  string    `json:"uploader"`
	Duration  int       `json:"duration"`
	Formats   []Format  `json:"formats"`
	UserID    int64     `json:"userId"`
	MessageID int       `json:"messageId"`
	CreatedAt time.Time `json:"createdAt"`
}

// FindFormat looks up a format by exact identifier match.
func (s *Session) FindFormat(formatID string) (Format, bool) {
	for _, f := range s.Formats {
		if f.FormatID == formatID {
			return f, true
		}
	}
	return Format{}, false
}
