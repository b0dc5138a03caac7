package ui

import (
	"context"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/dustin/go-humanize"

	"github.com/renbkna/yt-dlp-ui/internal/model"
)

// boundCheck ties a checkbox to one boolean field of the options record
type boundCheck struct {
	check *widget.Check
	get   func(o *model.DownloadOptions) bool
}

// optionsView is the option configuration step: the probed info header, the
// independent option editors, and the start action
type optionsView struct {
	root    *RootUI
	content fyne.CanvasObject

	titleLabel *widget.Label
	metaLabel  *widget.Label

	extractAudioCheck *widget.Check
	audioBox          *fyne.Container
	audioFormatSel    *widget.Select
	audioQualitySel   *widget.Select
	playlistNotice    *widget.Label
	picker            *formatPicker

	subtitlesCheck *widget.Check
	langEntry      *widget.Entry
	langChips      *fyne.Container

	cookieCard *cookieCard
	startBtn   *widget.Button

	checks []boundCheck
}

// newOptionsView builds the option configuration step
func newOptionsView(root *RootUI) *optionsView {
	v := &optionsView{root: root}

	v.titleLabel = widget.NewLabel("")
	v.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	v.titleLabel.Wrapping = fyne.TextWrapWord
	v.metaLabel = widget.NewLabel("")

	v.extractAudioCheck = v.newBoundCheck(root.loc.GetText(KeyExtractAudio),
		func(o *model.DownloadOptions) bool { return o.ExtractAudio },
		func(o *model.DownloadOptions, val bool) { o.ExtractAudio = val },
	)

	// Audio editors replace the format picker while extraction is on. The
	// chosen format id is left untouched so toggling back restores it.
	v.audioFormatSel = widget.NewSelect(root.settings.GetAudioFormatOptions(), func(selected string) {
		root.session.UpdateOptions(func(o *model.DownloadOptions) {
			o.AudioFormat = selected
		})
	})
	v.audioQualitySel = widget.NewSelect(AudioQualityLevels, func(selected string) {
		root.session.UpdateOptions(func(o *model.DownloadOptions) {
			o.AudioQuality = selected
		})
	})
	v.audioBox = container.NewVBox(
		widget.NewForm(
			widget.NewFormItem(root.loc.GetText(KeyAudioFormat), v.audioFormatSel),
			widget.NewFormItem(root.loc.GetText(KeyAudioQuality), v.audioQualitySel),
		),
	)

	v.playlistNotice = widget.NewLabel(IconList + " " + root.loc.GetText(KeyPlaylistNotice))
	v.playlistNotice.Wrapping = fyne.TextWrapWord

	v.picker = newFormatPicker(root)

	metadataBox := container.NewHBox(
		v.newBoundCheck(root.loc.GetText(KeyEmbedMetadata),
			func(o *model.DownloadOptions) bool { return o.EmbedMetadata },
			func(o *model.DownloadOptions, val bool) { o.EmbedMetadata = val }),
		v.newBoundCheck(root.loc.GetText(KeyEmbedThumbnail),
			func(o *model.DownloadOptions) bool { return o.EmbedThumbnail },
			func(o *model.DownloadOptions, val bool) { o.EmbedThumbnail = val }),
	)

	v.subtitlesCheck = v.newBoundCheck(root.loc.GetText(KeySubtitles),
		func(o *model.DownloadOptions) bool { return o.DownloadSubtitles },
		func(o *model.DownloadOptions, val bool) { o.DownloadSubtitles = val })

	v.langEntry = widget.NewEntry()
	v.langEntry.SetPlaceHolder("en")
	addLangBtn := widget.NewButton(root.loc.GetText(KeyAddLanguage), v.onAddLanguage)
	v.langEntry.OnSubmitted = func(string) {
		v.onAddLanguage()
	}
	v.langChips = container.NewHBox()
	subtitleBox := container.NewVBox(
		v.subtitlesCheck,
		container.NewBorder(nil, nil, nil, addLangBtn, v.langEntry),
		v.langChips,
	)

	featureBox := container.NewVBox(
		container.NewHBox(
			v.newBoundCheck(root.loc.GetText(KeyWriteDescription),
				func(o *model.DownloadOptions) bool { return o.WriteDescription },
				func(o *model.DownloadOptions, val bool) { o.WriteDescription = val }),
			v.newBoundCheck(root.loc.GetText(KeyWriteComments),
				func(o *model.DownloadOptions) bool { return o.WriteComments },
				func(o *model.DownloadOptions, val bool) { o.WriteComments = val }),
			v.newBoundCheck(root.loc.GetText(KeyWriteInfoJSON),
				func(o *model.DownloadOptions) bool { return o.WriteInfoJSON },
				func(o *model.DownloadOptions, val bool) { o.WriteInfoJSON = val }),
		),
		container.NewHBox(
			v.newBoundCheck(root.loc.GetText(KeySponsorblock),
				func(o *model.DownloadOptions) bool { return o.Sponsorblock },
				func(o *model.DownloadOptions, val bool) { o.Sponsorblock = val }),
			v.newBoundCheck(root.loc.GetText(KeyChapters),
				func(o *model.DownloadOptions) bool { return o.ChaptersFromComments },
				func(o *model.DownloadOptions, val bool) { o.ChaptersFromComments = val }),
		),
	)

	v.cookieCard = newCookieCard(root)

	v.startBtn = widget.NewButton(root.loc.GetText(KeyStartDownload), func() {
		go root.session.StartDownload(context.Background())
	})
	v.startBtn.Importance = widget.HighImportance
	v.startBtn.Disable()

	body := container.NewVBox(
		v.titleLabel,
		v.metaLabel,
		widget.NewSeparator(),
		v.extractAudioCheck,
		v.audioBox,
		v.playlistNotice,
		v.picker.content,
		widget.NewSeparator(),
		metadataBox,
		subtitleBox,
		featureBox,
		v.cookieCard.content,
		widget.NewSeparator(),
		v.startBtn,
	)
	v.content = container.NewVScroll(body)
	return v
}

// newBoundCheck creates a checkbox writing exactly one options field
func (v *optionsView) newBoundCheck(label string, get func(*model.DownloadOptions) bool, set func(*model.DownloadOptions, bool)) *widget.Check {
	check := widget.NewCheck(label, func(checked bool) {
		if get(v.root.session.Options()) == checked {
			return
		}
		v.root.session.UpdateOptions(func(o *model.DownloadOptions) {
			set(o, checked)
		})
	})
	v.checks = append(v.checks, boundCheck{check: check, get: get})
	return check
}

// onAddLanguage commits the buffered language code to the subtitle set.
// Adding a duplicate is a no-op.
func (v *optionsView) onAddLanguage() {
	code := strings.ToLower(strings.TrimSpace(v.langEntry.Text))
	if code == "" {
		return
	}
	v.langEntry.SetText("")
	v.root.session.UpdateOptions(func(o *model.DownloadOptions) {
		o.AddSubtitleLanguage(code)
	})
}

// refresh renders the probed info and current options into the editors
func (v *optionsView) refresh() {
	sess := v.root.session
	info := sess.Info()
	if info == nil {
		return
	}
	opts := sess.Options()

	v.titleLabel.SetText(info.Title)
	v.metaLabel.SetText(buildMetaLine(info))

	for _, bc := range v.checks {
		if bc.check.Checked != bc.get(opts) {
			bc.check.SetChecked(bc.get(opts))
		}
	}
	if v.audioFormatSel.Selected != opts.AudioFormat {
		v.audioFormatSel.SetSelected(opts.AudioFormat)
	}
	if v.audioQualitySel.Selected != opts.AudioQuality {
		v.audioQualitySel.SetSelected(opts.AudioQuality)
	}

	// Exactly one of audio options, playlist notice, or format picker shows
	v.audioBox.Hide()
	v.playlistNotice.Hide()
	v.picker.content.Hide()
	switch {
	case opts.ExtractAudio:
		v.audioBox.Show()
	case info.IsPlaylist:
		v.playlistNotice.Show()
	default:
		v.picker.content.Show()
		v.picker.refresh()
	}

	v.refreshLanguageChips(opts)
	v.cookieCard.refresh()

	if opts.CanStart() {
		v.startBtn.Enable()
	} else {
		v.startBtn.Disable()
	}
}

// refreshLanguageChips rebuilds the removable language chip row
func (v *optionsView) refreshLanguageChips(opts *model.DownloadOptions) {
	v.langChips.RemoveAll()
	for _, lang := range opts.SubtitleLanguages {
		code := lang
		chip := widget.NewButton(code+" "+IconClose, func() {
			v.root.session.UpdateOptions(func(o *model.DownloadOptions) {
				o.RemoveSubtitleLanguage(code)
			})
		})
		chip.Importance = widget.LowImportance
		v.langChips.Add(chip)
	}
	v.langChips.Refresh()
}

// buildMetaLine joins the available metadata fields for the header
func buildMetaLine(info *model.VideoInfo) string {
	var parts []string

	if info.IsPlaylist {
		parts = append(parts, IconList+" Playlist")
		if len(info.Entries) > 0 {
			parts = append(parts, humanize.Comma(int64(len(info.Entries)))+" entries")
		}
	}
	if info.Uploader != "" {
		parts = append(parts, info.Uploader)
	}
	if info.Duration > 0 {
		parts = append(parts, info.GetDurationString())
	}
	if info.ViewCount > 0 {
		parts = append(parts, humanize.Comma(info.ViewCount)+" views")
	}
	if date := info.GetUploadDateString(); date != "" {
		parts = append(parts, date)
	}

	if len(parts) == 0 {
		return DashPlaceholder
	}
	return strings.Join(parts, MiddleDotSeparator)
}
