package model

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// CodecNone is the sentinel codec value meaning the stream lacks that track
const CodecNone = "none"

// Storyboard pseudo-format markers
const (
	StoryboardIDPrefix = "sb"
	StoryboardNote     = "storyboard"
)

// Premium quality markers looked up in format notes (case-insensitive)
var premiumMarkers = []string{"premium", "hdr", "dolby", "8k", "4320p"}

// Format is one selectable encoding variant of a probed video
type Format struct {
	ID         string  `json:"format_id"`
	Ext        string  `json:"ext"`
	Resolution string  `json:"resolution,omitempty"` // "WxH" when present
	Height     int     `json:"height,omitempty"`
	Width      int     `json:"width,omitempty"`
	VCodec     string  `json:"vcodec,omitempty"`
	ACodec     string  `json:"acodec,omitempty"`
	Note       string  `json:"format_note,omitempty"`
	Filesize   int64   `json:"filesize,omitempty"` // bytes
	TBR        float64 `json:"tbr,omitempty"`      // total bitrate
	FPS        float64 `json:"fps,omitempty"`
	IsPremium  bool    `json:"is_premium,omitempty"`
}

// HasVideo returns true if the format carries a video track
func (f *Format) HasVideo() bool {
	return f.VCodec != "" && f.VCodec != CodecNone
}

// HasAudio returns true if the format carries an audio track
func (f *Format) HasAudio() bool {
	return f.ACodec != "" && f.ACodec != CodecNone
}

// IsStoryboard returns true for storyboard pseudo-formats, which must be
// excluded from all selection logic
func (f *Format) IsStoryboard() bool {
	if strings.HasPrefix(strings.ToLower(f.ID), StoryboardIDPrefix) {
		return true
	}
	return strings.Contains(strings.ToLower(f.Note), StoryboardNote)
}

// Premium returns true if the format is flagged or labeled as a premium
// variant (HDR/Dolby/8K)
func (f *Format) Premium() bool {
	if f.IsPremium {
		return true
	}
	note := strings.ToLower(f.Note)
	for _, marker := range premiumMarkers {
		if strings.Contains(note, marker) {
			return true
		}
	}
	return false
}

// PixelHeight returns the vertical resolution, preferring the explicit height
// field, then the "WxH" resolution string, then a "<N>p" format note.
// Formats lacking any parsable resolution report 0 and sort last.
func (f *Format) PixelHeight() int {
	if f.Height > 0 {
		return f.Height
	}

	if f.Resolution != "" {
		parts := strings.SplitN(f.Resolution, "x", 2)
		if len(parts) == 2 {
			if h, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil && h > 0 {
				return h
			}
		}
	}

	note := strings.ToLower(f.Note)
	if idx := strings.Index(note, "p"); idx > 0 {
		if h, err := strconv.Atoi(note[:idx]); err == nil && h > 0 {
			return h
		}
	}

	return 0
}

// GetLabel builds a display label from the format fields
func (f *Format) GetLabel() string {
	var parts []string

	if f.Resolution != "" {
		parts = append(parts, f.Resolution)
	}
	if f.Ext != "" {
		parts = append(parts, "("+f.Ext+")")
	}
	if f.FPS > 0 {
		parts = append(parts, strconv.Itoa(int(f.FPS))+"fps")
	}
	if f.HasVideo() {
		parts = append(parts, "vcodec:"+f.VCodec)
	}
	if f.HasAudio() {
		parts = append(parts, "acodec:"+f.ACodec)
	}
	if f.Note != "" {
		parts = append(parts, f.Note)
	}
	if f.Filesize > 0 {
		parts = append(parts, humanize.Bytes(uint64(f.Filesize)))
	}

	if len(parts) == 0 {
		return "Unknown Format"
	}
	return strings.Join(parts, " - ")
}
