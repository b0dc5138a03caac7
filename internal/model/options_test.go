package model

import (
	"testing"
)

func TestNewDownloadOptions(t *testing.T) {
	opts := NewDownloadOptions()

	if opts.AudioFormat != DefaultAudioFormat {
		t.Errorf("Expected audio format %s, got %s", DefaultAudioFormat, opts.AudioFormat)
	}
	if opts.AudioQuality != DefaultAudioQuality {
		t.Errorf("Expected audio quality %s, got %s", DefaultAudioQuality, opts.AudioQuality)
	}
	if !opts.EmbedMetadata {
		t.Error("Expected metadata embedding to default on")
	}
	if !opts.EmbedThumbnail {
		t.Error("Expected thumbnail embedding to default on")
	}
	if len(opts.SubtitleLanguages) != 1 || opts.SubtitleLanguages[0] != DefaultSubtitleLanguage {
		t.Errorf("Expected default subtitle languages [en], got %v", opts.SubtitleLanguages)
	}
	if opts.Format != "" {
		t.Errorf("Expected no format selected by default, got %s", opts.Format)
	}
}

func TestCanStart(t *testing.T) {
	opts := NewDownloadOptions()
	if opts.CanStart() {
		t.Error("Expected CanStart false with no format and no audio extraction")
	}

	opts.Format = "137"
	if !opts.CanStart() {
		t.Error("Expected CanStart true with a format selected")
	}

	opts.Format = ""
	opts.ExtractAudio = true
	if !opts.CanStart() {
		t.Error("Expected CanStart true with audio extraction enabled")
	}
}

func TestAddSubtitleLanguage(t *testing.T) {
	opts := NewDownloadOptions()

	if !opts.AddSubtitleLanguage("de") {
		t.Error("Expected adding a new language to succeed")
	}
	if !opts.HasSubtitleLanguage("de") {
		t.Error("Expected 'de' to be present after add")
	}

	// Adding an already-present code is a no-op
	if opts.AddSubtitleLanguage("de") {
		t.Error("Expected duplicate add to be a no-op")
	}
	if len(opts.SubtitleLanguages) != 2 {
		t.Errorf("Expected 2 languages after duplicate add, got %d", len(opts.SubtitleLanguages))
	}

	if opts.AddSubtitleLanguage("") {
		t.Error("Expected empty code add to be a no-op")
	}
}

func TestRemoveSubtitleLanguage(t *testing.T) {
	opts := NewDownloadOptions()
	opts.AddSubtitleLanguage("fr")

	opts.RemoveSubtitleLanguage("en")
	if opts.HasSubtitleLanguage("en") {
		t.Error("Expected 'en' to be removed")
	}
	if !opts.HasSubtitleLanguage("fr") {
		t.Error("Expected 'fr' to remain")
	}

	// Removing a missing code is harmless
	opts.RemoveSubtitleLanguage("xx")
	if len(opts.SubtitleLanguages) != 1 {
		t.Errorf("Expected 1 language, got %d", len(opts.SubtitleLanguages))
	}
}

func TestExtractAudioLeavesFormatUntouched(t *testing.T) {
	// The format field and the audio fields are independent: toggling
	// extraction must not discard a previously chosen format.
	opts := NewDownloadOptions()
	opts.Format = "137"

	opts.ExtractAudio = true
	if opts.Format != "137" {
		t.Errorf("Expected format to survive enabling extraction, got %q", opts.Format)
	}

	opts.ExtractAudio = false
	if opts.Format != "137" {
		t.Errorf("Expected format to survive disabling extraction, got %q", opts.Format)
	}
}

func TestSetClientCookies(t *testing.T) {
	opts := NewDownloadOptions()

	first := []ClientCookie{{Name: "SID", Value: "a"}}
	opts.SetClientCookies(first)
	if len(opts.ClientCookies) != 1 {
		t.Fatalf("Expected 1 cookie, got %d", len(opts.ClientCookies))
	}

	// Re-extraction replaces the prior set wholesale
	second := []ClientCookie{{Name: "HSID", Value: "b"}, {Name: "SSID", Value: "c"}}
	opts.SetClientCookies(second)
	if len(opts.ClientCookies) != 2 {
		t.Fatalf("Expected 2 cookies after replacement, got %d", len(opts.ClientCookies))
	}
	if opts.ClientCookies[0].Name != "HSID" {
		t.Errorf("Expected replaced set, got %s", opts.ClientCookies[0].Name)
	}
}
