package model

// Default option values
const (
	DefaultAudioFormat      = "mp3"
	DefaultAudioQuality     = "0" // codec quality level, "0" = best
	DefaultSubtitleLanguage = "en"
)

// DownloadOptions is the flat record of download settings shared by all
// option editors. Fields are independent of each other; each editor updates
// exactly one field and leaves the rest untouched.
type DownloadOptions struct {
	Format               string
	ExtractAudio         bool
	AudioFormat          string
	AudioQuality         string
	EmbedMetadata        bool
	EmbedThumbnail       bool
	DownloadSubtitles    bool
	SubtitleLanguages    []string
	WriteDescription     bool
	WriteComments        bool
	WriteInfoJSON        bool
	UseBrowserCookies    bool
	ClientCookies        []ClientCookie
	Sponsorblock         bool
	ChaptersFromComments bool
}

// NewDownloadOptions returns an options record with default values
func NewDownloadOptions() *DownloadOptions {
	return &DownloadOptions{
		AudioFormat:       DefaultAudioFormat,
		AudioQuality:      DefaultAudioQuality,
		EmbedMetadata:     true,
		EmbedThumbnail:    true,
		SubtitleLanguages: []string{DefaultSubtitleLanguage},
	}
}

// CanStart reports whether a download may be started: either an explicit
// format has been chosen or audio extraction is enabled
func (o *DownloadOptions) CanStart() bool {
	return o.Format != "" || o.ExtractAudio
}

// HasSubtitleLanguage reports whether the given language code is selected
func (o *DownloadOptions) HasSubtitleLanguage(code string) bool {
	for _, lang := range o.SubtitleLanguages {
		if lang == code {
			return true
		}
	}
	return false
}

// AddSubtitleLanguage adds a language code to the selection. Adding an
// already-present code is a no-op; returns true if the set changed.
func (o *DownloadOptions) AddSubtitleLanguage(code string) bool {
	if code == "" || o.HasSubtitleLanguage(code) {
		return false
	}
	o.SubtitleLanguages = append(o.SubtitleLanguages, code)
	return true
}

// RemoveSubtitleLanguage removes a language code from the selection
func (o *DownloadOptions) RemoveSubtitleLanguage(code string) {
	for i, lang := range o.SubtitleLanguages {
		if lang == code {
			o.SubtitleLanguages = append(o.SubtitleLanguages[:i], o.SubtitleLanguages[i+1:]...)
			return
		}
	}
}

// SetClientCookies replaces the extracted cookie set wholesale
func (o *DownloadOptions) SetClientCookies(cookies []ClientCookie) {
	o.ClientCookies = cookies
}
