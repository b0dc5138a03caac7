package formats

import (
	"testing"

	"github.com/renbkna/yt-dlp-ui/internal/model"
)

func TestFilterExcludesStoryboards(t *testing.T) {
	list := []model.Format{
		{ID: "sb0", Note: "storyboard"},
		{ID: "137", VCodec: "avc1", ACodec: model.CodecNone, Height: 1080},
	}

	result := Filter(list, "", CategoryAll)
	if len(result) != 1 {
		t.Fatalf("Expected 1 format after storyboard exclusion, got %d", len(result))
	}
	if result[0].ID != "137" {
		t.Errorf("Expected format 137, got %s", result[0].ID)
	}
}

func TestFilterSearch(t *testing.T) {
	list := []model.Format{
		{ID: "137", Ext: "mp4", Resolution: "1920x1080", Note: "1080p", VCodec: "avc1"},
		{ID: "248", Ext: "webm", Resolution: "1920x1080", Note: "1080p", VCodec: "vp9"},
		{ID: "140", Ext: "m4a", Note: "medium", VCodec: model.CodecNone, ACodec: "mp4a"},
	}

	// Search is case-insensitive and spans several fields
	if result := Filter(list, "WEBM", CategoryAll); len(result) != 1 || result[0].ID != "248" {
		t.Errorf("Expected ext search to match 248, got %v", result)
	}
	if result := Filter(list, "1080", CategoryAll); len(result) != 2 {
		t.Errorf("Expected resolution search to match 2 formats, got %d", len(result))
	}
	if result := Filter(list, "medium", CategoryAll); len(result) != 1 || result[0].ID != "140" {
		t.Errorf("Expected note search to match 140, got %v", result)
	}
	if result := Filter(list, "nothing-here", CategoryAll); len(result) != 0 {
		t.Errorf("Expected no matches, got %d", len(result))
	}
}

func TestFilterCategories(t *testing.T) {
	list := []model.Format{
		{ID: "18", VCodec: "avc1", ACodec: "mp4a"},
		{ID: "137", VCodec: "avc1", ACodec: model.CodecNone},
		{ID: "140", VCodec: model.CodecNone, ACodec: "mp4a"},
	}

	video := Filter(list, "", CategoryVideo)
	if len(video) != 2 {
		t.Errorf("Expected 2 video formats, got %d", len(video))
	}

	audio := Filter(list, "", CategoryAudio)
	if len(audio) != 1 || audio[0].ID != "140" {
		t.Errorf("Expected only 140 as audio-only, got %v", audio)
	}
}

func TestSortForDisplay(t *testing.T) {
	list := []model.Format{
		{ID: "18", VCodec: "avc1", ACodec: "mp4a", Height: 360},
		{ID: "616", VCodec: "vp9", ACodec: model.CodecNone, Height: 2160, Note: "Premium"},
		{ID: "137", VCodec: "avc1", ACodec: model.CodecNone, Height: 1080, Filesize: 100},
		{ID: "299", VCodec: "avc1", ACodec: "mp4a", Height: 1080, Filesize: 50},
	}

	sorted := SortForDisplay(list)

	if sorted[0].ID != "616" {
		t.Errorf("Expected premium format first, got %s", sorted[0].ID)
	}
	// At equal height, combined beats video-only regardless of size
	if sorted[1].ID != "299" {
		t.Errorf("Expected combined 1080p before video-only, got %s", sorted[1].ID)
	}
	if sorted[2].ID != "137" {
		t.Errorf("Expected video-only 1080p third, got %s", sorted[2].ID)
	}
	if sorted[3].ID != "18" {
		t.Errorf("Expected 360p last, got %s", sorted[3].ID)
	}

	// The input list is left untouched
	if list[0].ID != "18" {
		t.Error("Expected SortForDisplay to not mutate its input")
	}
}

func TestSelectBestPremiumWins(t *testing.T) {
	list := []model.Format{
		{ID: "315", VCodec: "vp9", ACodec: model.CodecNone, Height: 2160, TBR: 20000},
		{ID: "616", VCodec: "vp9", ACodec: model.CodecNone, Height: 2160, Note: "Premium", TBR: 12000},
		{ID: "137", VCodec: "avc1", ACodec: model.CodecNone, Height: 1080},
	}

	best, ok := SelectBest(list)
	if !ok {
		t.Fatal("Expected a selection")
	}
	// Premium outranks a higher-bitrate non-premium entry
	if best.ID != "616" {
		t.Errorf("Expected premium 616, got %s", best.ID)
	}
}

func TestSelectBestHighestPremiumResolution(t *testing.T) {
	list := []model.Format{
		{ID: "hdr1080", VCodec: "vp9", Height: 1080, Note: "HDR"},
		{ID: "hdr2160", VCodec: "vp9", Height: 2160, Note: "HDR"},
	}

	best, _ := SelectBest(list)
	if best.ID != "hdr2160" {
		t.Errorf("Expected highest-resolution premium, got %s", best.ID)
	}
}

func TestSelectBestAudioOnly(t *testing.T) {
	list := []model.Format{
		{ID: "139", VCodec: model.CodecNone, ACodec: "mp4a", TBR: 48},
		{ID: "140", VCodec: model.CodecNone, ACodec: "mp4a", TBR: 128},
		{ID: "249", VCodec: model.CodecNone, ACodec: "opus", TBR: 50},
	}

	best, ok := SelectBest(list)
	if !ok {
		t.Fatal("Expected a selection")
	}
	if best.ID != "140" {
		t.Errorf("Expected highest-bitrate audio 140, got %s", best.ID)
	}
}

func TestSelectBestAudioOnlyWithoutBitrate(t *testing.T) {
	list := []model.Format{
		{ID: "139", VCodec: model.CodecNone, ACodec: "mp4a"},
		{ID: "140", VCodec: model.CodecNone, ACodec: "mp4a"},
	}

	// Without any bitrate the first audio entry wins, deterministically
	for i := 0; i < 3; i++ {
		best, ok := SelectBest(list)
		if !ok {
			t.Fatal("Expected a selection")
		}
		if best.ID != "139" {
			t.Errorf("Expected first audio entry 139, got %s", best.ID)
		}
	}
}

func TestSelectBestHDVideoOnlyFallback(t *testing.T) {
	// No combined format exists at the top resolution, so the video-only
	// entry is chosen (audio gets muxed server-side).
	list := []model.Format{
		{ID: "137", Height: 1080, VCodec: "avc1", ACodec: model.CodecNone},
		{ID: "18", Height: 360, VCodec: "avc1", ACodec: "mp4a"},
	}

	best, _ := SelectBest(list)
	if best.ID != "137" {
		t.Errorf("Expected video-only 137 at top resolution, got %s", best.ID)
	}
}

func TestSelectBestHDPrefersCombinedAtTopResolution(t *testing.T) {
	list := []model.Format{
		{ID: "137", Height: 1080, VCodec: "avc1", ACodec: model.CodecNone},
		{ID: "custom", Height: 1080, VCodec: "avc1", ACodec: "mp4a"},
		{ID: "18", Height: 360, VCodec: "avc1", ACodec: "mp4a"},
	}

	best, _ := SelectBest(list)
	if best.ID != "custom" {
		t.Errorf("Expected combined format at top resolution, got %s", best.ID)
	}
}

func TestSelectBestSDPrefersCombined(t *testing.T) {
	// Below 720p a combined format wins even over a taller video-only one
	list := []model.Format{
		{ID: "135", Height: 480, VCodec: "avc1", ACodec: model.CodecNone},
		{ID: "18", Height: 360, VCodec: "avc1", ACodec: "mp4a"},
	}

	best, _ := SelectBest(list)
	if best.ID != "18" {
		t.Errorf("Expected combined 18 below HD threshold, got %s", best.ID)
	}
}

func TestSelectBestIgnoresStoryboards(t *testing.T) {
	list := []model.Format{
		{ID: "sb0", Note: "storyboard"},
		{ID: "140", VCodec: model.CodecNone, ACodec: "mp4a", TBR: 128},
	}

	best, _ := SelectBest(list)
	if best.ID != "140" {
		t.Errorf("Expected storyboard to be skipped, got %s", best.ID)
	}
}

func TestSelectBestResolutionFromNote(t *testing.T) {
	// Heights can come from the note when no explicit field is present
	list := []model.Format{
		{ID: "lo", VCodec: "avc1", Note: "360p", ACodec: "mp4a"},
		{ID: "hi", VCodec: "avc1", Note: "1080p", ACodec: model.CodecNone},
	}

	best, _ := SelectBest(list)
	if best.ID != "hi" {
		t.Errorf("Expected 1080p from note to win, got %s", best.ID)
	}
}

func TestSelectBestIdempotent(t *testing.T) {
	list := []model.Format{
		{ID: "137", Height: 1080, VCodec: "avc1", ACodec: model.CodecNone},
		{ID: "22", Height: 720, VCodec: "avc1", ACodec: "mp4a"},
		{ID: "140", VCodec: model.CodecNone, ACodec: "mp4a", TBR: 128},
	}

	first, ok1 := SelectBest(list)
	second, ok2 := SelectBest(list)
	if !ok1 || !ok2 {
		t.Fatal("Expected selections on both calls")
	}
	if first.ID != second.ID {
		t.Errorf("Expected identical selections, got %s then %s", first.ID, second.ID)
	}
}

func TestSelectBestEmptyList(t *testing.T) {
	if _, ok := SelectBest(nil); ok {
		t.Error("Expected no selection from an empty list")
	}
}
