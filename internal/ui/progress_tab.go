package ui

import (
	"context"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/renbkna/yt-dlp-ui/internal/model"
)

// progressView renders the polled download status and the terminal
// retry/reset actions
type progressView struct {
	root    *RootUI
	content fyne.CanvasObject

	stateLabel    *widget.Label
	progressBar   *widget.ProgressBar
	filenameLabel *widget.Label
	telemetry     *widget.Label
	retryBtn      *widget.Button
	resetBtn      *widget.Button
}

// newProgressView builds the progress step
func newProgressView(root *RootUI) *progressView {
	v := &progressView{root: root}

	v.stateLabel = widget.NewLabel(DashPlaceholder)
	v.stateLabel.TextStyle = fyne.TextStyle{Bold: true}
	v.progressBar = widget.NewProgressBar()
	v.filenameLabel = widget.NewLabel("")
	v.filenameLabel.Wrapping = fyne.TextWrapWord
	v.telemetry = widget.NewLabel("")

	v.retryBtn = widget.NewButton(root.loc.GetText(KeyRetry), func() {
		root.session.DismissError()
		go root.session.StartDownload(context.Background())
	})
	v.retryBtn.Hide()

	v.resetBtn = widget.NewButton(root.loc.GetText(KeyDownloadAnother), func() {
		root.session.Reset()
	})

	v.content = container.NewVBox(
		v.stateLabel,
		v.progressBar,
		v.filenameLabel,
		v.telemetry,
		container.NewHBox(v.retryBtn, v.resetBtn),
	)
	return v
}

// refresh renders the latest polled snapshot
func (v *progressView) refresh() {
	status := v.root.session.Status()
	if status == nil {
		return
	}

	switch status.State {
	case model.StateCompleted:
		v.stateLabel.SetText(v.root.loc.GetText(KeyDownloadCompleted))
	case model.StateError:
		message := v.root.loc.GetText(KeyDownloadFailed)
		if status.Error != "" {
			message += ": " + status.Error
		}
		v.stateLabel.SetText(message)
	default:
		state := status.State.String()
		if state != "" {
			state = strings.ToUpper(state[:1]) + state[1:]
		}
		v.stateLabel.SetText(state + "...")
	}

	v.progressBar.SetValue(status.Progress)

	if status.Filename != "" {
		v.filenameLabel.SetText(status.Filename)
	}

	var parts []string
	if status.Speed != "" {
		parts = append(parts, status.Speed)
	}
	if status.ETASec > 0 {
		parts = append(parts, "ETA "+status.GetETAString())
	}
	v.telemetry.SetText(strings.Join(parts, MiddleDotSeparator))

	if status.State == model.StateError {
		v.retryBtn.Show()
	} else {
		v.retryBtn.Hide()
	}
}
