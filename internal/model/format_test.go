package model

import (
	"testing"
)

func TestFormatTracks(t *testing.T) {
	combined := Format{ID: "18", VCodec: "avc1", ACodec: "mp4a"}
	if !combined.HasVideo() || !combined.HasAudio() {
		t.Error("Expected combined format to have both tracks")
	}

	videoOnly := Format{ID: "137", VCodec: "avc1", ACodec: CodecNone}
	if !videoOnly.HasVideo() {
		t.Error("Expected video-only format to have video")
	}
	if videoOnly.HasAudio() {
		t.Error("Expected video-only format to not have audio")
	}

	audioOnly := Format{ID: "140", VCodec: CodecNone, ACodec: "mp4a"}
	if audioOnly.HasVideo() {
		t.Error("Expected audio-only format to not have video")
	}
	if !audioOnly.HasAudio() {
		t.Error("Expected audio-only format to have audio")
	}

	empty := Format{ID: "x"}
	if empty.HasVideo() || empty.HasAudio() {
		t.Error("Expected format without codecs to have no tracks")
	}
}

func TestFormatIsStoryboard(t *testing.T) {
	byID := Format{ID: "sb0"}
	if !byID.IsStoryboard() {
		t.Error("Expected sb-prefixed id to be a storyboard")
	}

	byNote := Format{ID: "600", Note: "Storyboard"}
	if !byNote.IsStoryboard() {
		t.Error("Expected storyboard note to be a storyboard")
	}

	regular := Format{ID: "137", Note: "1080p"}
	if regular.IsStoryboard() {
		t.Error("Expected regular format to not be a storyboard")
	}
}

func TestFormatPremium(t *testing.T) {
	tests := []struct {
		format   Format
		expected bool
	}{
		{Format{ID: "616", IsPremium: true}, true},
		{Format{ID: "616", Note: "Premium"}, true},
		{Format{ID: "700", Note: "HDR"}, true},
		{Format{ID: "701", Note: "Dolby Vision"}, true},
		{Format{ID: "702", Note: "8K"}, true},
		{Format{ID: "703", Note: "4320p"}, true},
		{Format{ID: "137", Note: "1080p"}, false},
	}

	for _, test := range tests {
		if test.format.Premium() != test.expected {
			t.Errorf("Format %s (note %q): expected premium=%v", test.format.ID, test.format.Note, test.expected)
		}
	}
}

func TestFormatPixelHeight(t *testing.T) {
	// Explicit height field wins
	explicit := Format{Height: 1080, Resolution: "1280x720", Note: "480p"}
	if explicit.PixelHeight() != 1080 {
		t.Errorf("Expected height 1080 from explicit field, got %d", explicit.PixelHeight())
	}

	// WxH resolution string is second choice
	fromResolution := Format{Resolution: "1920x1080", Note: "480p"}
	if fromResolution.PixelHeight() != 1080 {
		t.Errorf("Expected height 1080 from resolution, got %d", fromResolution.PixelHeight())
	}

	// "<N>p" format note is the last resort
	fromNote := Format{Note: "720p"}
	if fromNote.PixelHeight() != 720 {
		t.Errorf("Expected height 720 from note, got %d", fromNote.PixelHeight())
	}

	// Unparsable formats report zero
	unparsable := Format{ID: "140", Note: "medium"}
	if unparsable.PixelHeight() != 0 {
		t.Errorf("Expected height 0 for unparsable format, got %d", unparsable.PixelHeight())
	}

	malformed := Format{Resolution: "audio only"}
	if malformed.PixelHeight() != 0 {
		t.Errorf("Expected height 0 for malformed resolution, got %d", malformed.PixelHeight())
	}
}

func TestFormatGetLabel(t *testing.T) {
	format := Format{
		ID:         "137",
		Ext:        "mp4",
		Resolution: "1920x1080",
		VCodec:     "avc1",
		ACodec:     CodecNone,
		Note:       "1080p",
	}

	label := format.GetLabel()
	if label == "" || label == "Unknown Format" {
		t.Errorf("Expected descriptive label, got %q", label)
	}

	empty := Format{}
	if empty.GetLabel() != "Unknown Format" {
		t.Errorf("Expected fallback label, got %q", empty.GetLabel())
	}
}
