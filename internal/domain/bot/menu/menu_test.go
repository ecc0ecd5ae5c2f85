package menu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/video-downloader-bot/internal/domain/bot/entities"
)

const testKey = "deadbeefdeadbeef"

func videoFormat(id string, height int, size int64) entities.Format {
	return entities.Format{
		FormatID: id,
		Ext:      "mp4",
		Filesize: size,
		Height:   height,
		Vcodec:   "avc1",
		Acodec:   "mp4a",
		URL:      "https://cdn.example/" + id,
	}
}

func audioFormat(id string, size int64) entities.Format {
	return entities.Format{
		FormatID: id,
		Ext:      "m4a",
		Filesize: size,
		Vcodec:   "none",
		Acodec:   "mp4a",
		URL:      "https://cdn.example/" + id,
	}
}

func flatten(m Menu) []Button {
	var out []Button
	for _, row := range m.Rows {
		out = append(out, row...)
	}
	return out
}

func TestBuild_EmptyFormats(t *testing.T) {
	m := Build(nil, testKey)

	// Menu construction never fails: an empty list still yields a cancel row
	require.Len(t, m.Rows, 1)
	assert.Equal(t, "❌ Cancel", m.Rows[0][0].Text)
	assert.Equal(t, "cancel_"+testKey, m.Rows[0][0].Data)
}

func TestBuild_VideoSortedByHeightDesc(t *testing.T) {
	formats := []entities.Format{
		videoFormat("v360", 360, 1000),
		videoFormat("v1080", 1080, 9000),
		videoFormat("v720", 720, 5000),
	}

	m := Build(formats, testKey)

	// header + 3 video rows + cancel
	require.Len(t, m.Rows, 5)
	assert.Equal(t, "📹 Video Formats", m.Rows[0][0].Text)
	assert.Contains(t, m.Rows[1][0].Text, "1080p")
	assert.Contains(t, m.Rows[2][0].Text, "720p")
	assert.Contains(t, m.Rows[3][0].Text, "360p")
}

func TestBuild_SortIsStableOnEqualHeight(t *testing.T) {
	formats := []entities.Format{
		videoFormat("first", 720, 1000),
		videoFormat("second", 720, 9000),
	}

	m := Build(formats, testKey)

	// Height is the sole sort key, ties keep list order
	assert.Equal(t, fmt.Sprintf("download_%s_first", testKey), m.Rows[1][0].Data)
	assert.Equal(t, fmt.Sprintf("download_%s_second", testKey), m.Rows[2][0].Data)
}

func TestBuild_CapsVideoRowsAtFive(t *testing.T) {
	var formats []entities.Format
	for i := 1; i <= 8; i++ {
		formats = append(formats, videoFormat(fmt.Sprintf("v%d", i), i*100, 1000))
	}

	m := Build(formats, testKey)

	// header + 5 video rows + cancel
	require.Len(t, m.Rows, 7)
	// The five tallest survive the cap
	assert.Contains(t, m.Rows[1][0].Text, "800p")
	assert.Contains(t, m.Rows[5][0].Text, "400p")
}

func TestBuild_CapsAudioRowsAtThree(t *testing.T) {
	var formats []entities.Format
	for i := 1; i <= 5; i++ {
		formats = append(formats, audioFormat(fmt.Sprintf("a%d", i), int64(i*1000)))
	}

	m := Build(formats, testKey)

	// header + 3 audio rows + cancel
	require.Len(t, m.Rows, 5)
	assert.Equal(t, "🎵 Audio Formats", m.Rows[0][0].Text)
	// Audio keeps list order
	assert.Equal(t, fmt.Sprintf("download_%s_a1", testKey), m.Rows[1][0].Data)
	assert.Equal(t, fmt.Sprintf("download_%s_a3", testKey), m.Rows[3][0].Data)
}

func TestBuild_MixedSections(t *testing.T) {
	formats := []entities.Format{
		audioFormat("a1", 2000),
		videoFormat("v720", 720, 5000),
	}

	m := Build(formats, testKey)

	// video header, video row, audio header, audio row, cancel
	require.Len(t, m.Rows, 5)
	assert.Equal(t, "📹 Video Formats", m.Rows[0][0].Text)
	assert.Equal(t, "🎵 Audio Formats", m.Rows[2][0].Text)
	assert.Equal(t, "❌ Cancel", m.Rows[4][0].Text)
}

func TestBuild_MuxedFormatAppearsInBothSections(t *testing.T) {
	// A format with both streams is listed as video and as audio
	m := Build([]entities.Format{videoFormat("muxed", 720, 5000)}, testKey)

	var downloads int
	for _, b := range flatten(m) {
		if b.Data == fmt.Sprintf("download_%s_muxed", testKey) {
			downloads++
		}
	}
	assert.Equal(t, 2, downloads)
}

func TestBuild_UnknownSize(t *testing.T) {
	m := Build([]entities.Format{videoFormat("v720", 720, 0)}, testKey)

	assert.Contains(t, m.Rows[1][0].Text, "Unknown")
}

func TestBuild_SizeLabel(t *testing.T) {
	m := Build([]entities.Format{videoFormat("v720", 720, 10_000_000)}, testKey)

	assert.Equal(t, "🎥 720p (mp4) - 9.54 MB", m.Rows[1][0].Text)
}
