package config

import (
	"strings"

	"fyne.io/fyne/v2"

	"github.com/renbkna/yt-dlp-ui/internal/api"
	"github.com/renbkna/yt-dlp-ui/internal/model"
)

// ThemeMode selects how the app picks its color variant
type ThemeMode string

const (
	ThemeSystem ThemeMode = "system"
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
)

// Settings keys for Fyne preferences
const (
	KeyAPIBaseURL   = "api_base_url"
	KeyThemeMode    = "theme_mode"
	KeyLanguage     = "app_language"
	KeyAudioFormat  = "default_audio_format"
	KeyAudioQuality = "default_audio_quality"
)

// Default values
const (
	DefaultThemeMode = ThemeSystem
	DefaultLanguage  = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAPIBaseURL returns the configured backend base URL
func (s *Settings) GetAPIBaseURL() string {
	baseURL := s.app.Preferences().String(KeyAPIBaseURL)
	if baseURL == "" {
		s.SetAPIBaseURL(api.DefaultBaseURL)
		return api.DefaultBaseURL
	}
	return baseURL
}

// SetAPIBaseURL sets the backend base URL, trimming a trailing slash
func (s *Settings) SetAPIBaseURL(baseURL string) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = api.DefaultBaseURL
	}
	s.app.Preferences().SetString(KeyAPIBaseURL, baseURL)
}

// GetThemeMode returns the configured theme mode
func (s *Settings) GetThemeMode() ThemeMode {
	mode := ThemeMode(s.app.Preferences().String(KeyThemeMode))
	switch mode {
	case ThemeSystem, ThemeLight, ThemeDark:
		return mode
	}
	s.SetThemeMode(DefaultThemeMode)
	return DefaultThemeMode
}

// SetThemeMode sets the theme mode
func (s *Settings) SetThemeMode(mode ThemeMode) {
	s.app.Preferences().SetString(KeyThemeMode, string(mode))
}

// GetThemeModeOptions returns available theme modes
func (s *Settings) GetThemeModeOptions() []ThemeMode {
	return []ThemeMode{ThemeSystem, ThemeLight, ThemeDark}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAudioFormat returns the default audio extraction format
func (s *Settings) GetAudioFormat() string {
	format := s.app.Preferences().String(KeyAudioFormat)
	if format == "" {
		s.SetAudioFormat(model.DefaultAudioFormat)
		return model.DefaultAudioFormat
	}
	return format
}

// SetAudioFormat sets the default audio extraction format
func (s *Settings) SetAudioFormat(format string) {
	if format == "" {
		format = model.DefaultAudioFormat
	}
	s.app.Preferences().SetString(KeyAudioFormat, format)
}

// GetAudioQuality returns the default audio quality level ("0" = best)
func (s *Settings) GetAudioQuality() string {
	quality := s.app.Preferences().String(KeyAudioQuality)
	if quality == "" {
		s.SetAudioQuality(model.DefaultAudioQuality)
		return model.DefaultAudioQuality
	}
	return quality
}

// SetAudioQuality sets the default audio quality level
func (s *Settings) SetAudioQuality(quality string) {
	if quality == "" {
		quality = model.DefaultAudioQuality
	}
	s.app.Preferences().SetString(KeyAudioQuality, quality)
}

// GetAudioFormatOptions returns selectable audio extraction formats
func (s *Settings) GetAudioFormatOptions() []string {
	return []string{"mp3", "m4a", "opus", "flac", "wav"}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
