package platform

import (
	"fmt"
	"net/url"
	"strings"
)

// URL parameters and separators
const (
	PlaylistParam  = "list"
	ParamSeparator = "&"
)

// ValidateURL checks that the string is a well-formed http(s) URL
func ValidateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return fmt.Errorf("URL is empty")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %v", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("URL must use http or https scheme")
	}
	if parsed.Host == "" {
		return fmt.Errorf("URL has no host")
	}
	return nil
}

// IsPlaylistURL reports whether the URL carries a playlist indicator
// (a "list" query parameter). Detection is purely local and requires no
// server round-trip.
func IsPlaylistURL(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return parsed.Query().Has(PlaylistParam)
}

// ExtractPlaylistID extracts the playlist ID from a playlist URL.
// Supported formats:
//   - https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID
//   - https://www.youtube.com/playlist?list=PLAYLIST_ID
func ExtractPlaylistID(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("could not parse URL: %v", err)
	}

	id := parsed.Query().Get(PlaylistParam)
	if id == "" {
		return "", fmt.Errorf("URL does not contain playlist parameter")
	}
	return id, nil
}
