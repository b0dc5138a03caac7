package formats

import (
	"sort"
	"strings"

	"github.com/renbkna/yt-dlp-ui/internal/model"
)

// Minimum height treated as high definition by the best-quality heuristic
const hdThreshold = 720

// Category selects which track kinds pass the filter
type Category int

const (
	// CategoryAll keeps every non-storyboard format
	CategoryAll Category = iota

	// CategoryVideo keeps formats carrying a video track
	CategoryVideo

	// CategoryAudio keeps audio-only formats
	CategoryAudio
)

// String returns the display name for a category
func (c Category) String() string {
	switch c {
	case CategoryVideo:
		return "Video only"
	case CategoryAudio:
		return "Audio only"
	default:
		return "All"
	}
}

// Filter returns the formats matching the search query and category.
// Storyboard pseudo-formats are excluded unconditionally. The search is a
// case-insensitive substring match over note, id, extension, and resolution.
func Filter(list []model.Format, query string, cat Category) []model.Format {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]model.Format, 0, len(list))
	for _, f := range list {
		if f.IsStoryboard() {
			continue
		}

		switch cat {
		case CategoryVideo:
			if !f.HasVideo() {
				continue
			}
		case CategoryAudio:
			if f.HasVideo() || !f.HasAudio() {
				continue
			}
		}

		if query != "" && !matchesQuery(&f, query) {
			continue
		}

		out = append(out, f)
	}
	return out
}

// matchesQuery checks the lowercased query against the searchable fields
func matchesQuery(f *model.Format, query string) bool {
	for _, field := range []string{f.Note, f.ID, f.Ext, f.Resolution} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// SortForDisplay returns a copy of the list in the default display order:
// premium formats first, then by height descending, combined audio+video
// formats before video-only ones, remaining ties by file size descending.
func SortForDisplay(list []model.Format) []model.Format {
	out := make([]model.Format, len(list))
	copy(out, list)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := &out[i], &out[j]

		if a.Premium() != b.Premium() {
			return a.Premium()
		}
		if a.PixelHeight() != b.PixelHeight() {
			return a.PixelHeight() > b.PixelHeight()
		}
		aCombined := a.HasVideo() && a.HasAudio()
		bCombined := b.HasVideo() && b.HasAudio()
		if aCombined != bCombined {
			return aCombined
		}
		return a.Filesize > b.Filesize
	})

	return out
}

// SelectBest picks the best encoding from the list. The precedence is fixed:
//
//  1. No usable video track: the highest-bitrate audio-only format, or the
//     first audio format if no bitrate is reported anywhere.
//  2. Any premium format present: the highest-resolution premium format.
//  3. Otherwise rank by vertical resolution. At or above 720p, prefer a
//     format at the top resolution that also carries audio, falling back to
//     the top video-only format at that resolution (audio is muxed
//     server-side). Below 720p, prefer combined audio+video formats ranked
//     by resolution, falling back to the single highest-resolution video.
//  4. Absolute fallback: the first format in the original list.
//
// The result is deterministic for an unchanged input list.
func SelectBest(list []model.Format) (model.Format, bool) {
	if len(list) == 0 {
		return model.Format{}, false
	}

	usable := make([]model.Format, 0, len(list))
	for _, f := range list {
		if !f.IsStoryboard() {
			usable = append(usable, f)
		}
	}
	if len(usable) == 0 {
		return list[0], true
	}

	videos := make([]model.Format, 0, len(usable))
	for _, f := range usable {
		if f.HasVideo() {
			videos = append(videos, f)
		}
	}

	// 1. Audio-only content
	if len(videos) == 0 {
		var best *model.Format
		for i := range usable {
			f := &usable[i]
			if !f.HasAudio() {
				continue
			}
			if best == nil || f.TBR > best.TBR {
				best = f
			}
		}
		if best != nil {
			return *best, true
		}
		return usable[0], true
	}

	// 2. Premium variants win outright
	var premium *model.Format
	for i := range videos {
		f := &videos[i]
		if !f.Premium() {
			continue
		}
		if premium == nil || f.PixelHeight() > premium.PixelHeight() {
			premium = f
		}
	}
	if premium != nil {
		return *premium, true
	}

	// 3. Rank by vertical resolution
	top := 0
	for i := range videos {
		if h := videos[i].PixelHeight(); h > top {
			top = h
		}
	}

	if top >= hdThreshold {
		for i := range videos {
			f := &videos[i]
			if f.PixelHeight() == top && f.HasAudio() {
				return *f, true
			}
		}
		for i := range videos {
			if videos[i].PixelHeight() == top {
				return videos[i], true
			}
		}
	} else {
		var combined *model.Format
		for i := range videos {
			f := &videos[i]
			if !f.HasAudio() {
				continue
			}
			if combined == nil || f.PixelHeight() > combined.PixelHeight() {
				combined = f
			}
		}
		if combined != nil {
			return *combined, true
		}

		var tallest *model.Format
		for i := range videos {
			f := &videos[i]
			if tallest == nil || f.PixelHeight() > tallest.PixelHeight() {
				tallest = f
			}
		}
		if tallest != nil {
			return *tallest, true
		}
	}

	// 4. Absolute fallback
	return usable[0], true
}
