package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/renbkna/yt-dlp-ui/internal/platform"
)

// urlView is the URL entry step: address input with validation, clipboard
// paste, playlist detection, and the probe trigger
type urlView struct {
	root    *RootUI
	content fyne.CanvasObject

	entry         *widget.Entry
	playlistCheck *widget.Check
	fetchBtn      *widget.Button
	loadingBox    *fyne.Container
}

// newURLView builds the URL entry step
func newURLView(root *RootUI) *urlView {
	v := &urlView{root: root}

	v.entry = widget.NewEntry()
	v.entry.SetPlaceHolder(root.loc.GetText(KeyEnterURL))
	v.entry.Validator = func(s string) error {
		if s == "" {
			return nil
		}
		return platform.ValidateURL(s)
	}
	v.entry.OnChanged = func(s string) {
		if root.session.URL() != s {
			root.session.SetURL(s)
		}
	}
	// Pressing Enter triggers the probe
	v.entry.OnSubmitted = func(string) {
		v.onFetch()
	}

	pasteBtn := widget.NewButton(IconPaste+" "+root.loc.GetText(KeyPaste), func() {
		if content := root.window.Clipboard().Content(); content != "" {
			v.entry.SetText(content)
		}
	})
	pasteBtn.Importance = widget.LowImportance

	v.fetchBtn = widget.NewButton(root.loc.GetText(KeyFetch), v.onFetch)
	v.fetchBtn.Importance = widget.HighImportance

	v.playlistCheck = widget.NewCheck(root.loc.GetText(KeyHandleAsPlaylist), func(checked bool) {
		if root.session.IsPlaylist() != checked {
			root.session.SetPlaylist(checked)
		}
	})

	spinner := widget.NewProgressBarInfinite()
	v.loadingBox = container.NewVBox(spinner, widget.NewLabel(root.loc.GetText(KeyFetching)))
	v.loadingBox.Hide()

	urlRow := container.NewBorder(nil, nil, pasteBtn, v.fetchBtn, v.entry)
	v.content = container.NewVBox(urlRow, v.playlistCheck, v.loadingBox)
	return v
}

// onFetch validates the URL locally and runs the concurrent probe
func (v *urlView) onFetch() {
	url := v.root.session.URL()
	if url == "" {
		v.root.session.SetURL(v.entry.Text)
		url = v.entry.Text
	}
	if url == "" {
		return
	}

	go v.root.session.FetchInfo(context.Background())
}

// refresh renders the current session state into the view
func (v *urlView) refresh() {
	sess := v.root.session

	if v.entry.Text != sess.URL() {
		v.entry.SetText(sess.URL())
	}
	if v.playlistCheck.Checked != sess.IsPlaylist() {
		v.playlistCheck.SetChecked(sess.IsPlaylist())
	}

	if sess.Loading() {
		v.fetchBtn.Disable()
		v.loadingBox.Show()
	} else {
		v.fetchBtn.Enable()
		v.loadingBox.Hide()
	}
}
