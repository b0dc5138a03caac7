package model

import (
	"fmt"
	"time"
)

// PlaylistEntry is a single item of a probed playlist
type PlaylistEntry struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	URL       string  `json:"url"`
	Duration  float64 `json:"duration,omitempty"`
	Thumbnail string  `json:"thumbnail,omitempty"`
}

// VideoInfo holds probed metadata for a single video or playlist.
// It is read-only once fetched; a new probe replaces it wholesale.
type VideoInfo struct {
	Title       string          `json:"title"`
	Duration    float64         `json:"duration,omitempty"` // seconds
	Thumbnail   string          `json:"thumbnail,omitempty"`
	Description string          `json:"description,omitempty"`
	Uploader    string          `json:"uploader,omitempty"`
	ViewCount   int64           `json:"view_count,omitempty"`
	UploadDate  string          `json:"upload_date,omitempty"` // YYYYMMDD
	IsPlaylist  bool            `json:"is_playlist"`
	Entries     []PlaylistEntry `json:"entries,omitempty"`
}

// GetDurationString returns duration formatted as hh:mm:ss, or "—" if unknown
func (vi *VideoInfo) GetDurationString() string {
	total := int(vi.Duration)
	if total <= 0 {
		return "—"
	}

	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// GetUploadDateString converts the raw YYYYMMDD upload date into a readable
// form, returning the raw value if it does not parse
func (vi *VideoInfo) GetUploadDateString() string {
	if vi.UploadDate == "" {
		return ""
	}
	t, err := time.Parse("20060102", vi.UploadDate)
	if err != nil {
		return vi.UploadDate
	}
	return t.Format("2 Jan 2006")
}
