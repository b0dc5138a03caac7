package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/renbkna/yt-dlp-ui/internal/formats"
	"github.com/renbkna/yt-dlp-ui/internal/model"
)

// formatPicker renders the searchable, filterable encoding table and the
// one-click best-quality selection. Its only mutation is setting the chosen
// format id on the shared options record.
type formatPicker struct {
	root    *RootUI
	content fyne.CanvasObject

	search     *widget.Entry
	videoOnly  *widget.Check
	audioOnly  *widget.Check
	list       *widget.List
	emptyLabel *widget.Label

	visible []model.Format
}

// newFormatPicker builds the encoding selector
func newFormatPicker(root *RootUI) *formatPicker {
	p := &formatPicker{root: root}

	p.search = widget.NewEntry()
	p.search.SetPlaceHolder(root.loc.GetText(KeySearchFormats))
	p.search.OnChanged = func(string) {
		p.refresh()
	}

	// The two category toggles are mutually exclusive
	p.videoOnly = widget.NewCheck(root.loc.GetText(KeyVideoOnly), func(checked bool) {
		if checked && p.audioOnly.Checked {
			p.audioOnly.SetChecked(false)
		}
		p.refresh()
	})
	p.audioOnly = widget.NewCheck(root.loc.GetText(KeyAudioOnly), func(checked bool) {
		if checked && p.videoOnly.Checked {
			p.videoOnly.SetChecked(false)
		}
		p.refresh()
	})

	bestBtn := widget.NewButton(root.loc.GetText(KeySelectBest), p.onSelectBest)
	bestBtn.Importance = widget.HighImportance

	p.list = widget.NewList(
		func() int {
			return len(p.visible)
		},
		func() fyne.CanvasObject {
			id := widget.NewLabel("")
			id.TextStyle = fyne.TextStyle{Bold: true}
			desc := widget.NewLabel("")
			return container.NewBorder(nil, nil, id, nil, desc)
		},
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			if i >= len(p.visible) {
				return
			}
			f := p.visible[i]
			row := obj.(*fyne.Container)
			idLabel := row.Objects[1].(*widget.Label)
			descLabel := row.Objects[0].(*widget.Label)

			marker := ""
			if f.ID == p.root.session.Options().Format {
				marker = "✓ "
			}
			idLabel.SetText(marker + f.ID)
			descLabel.SetText(f.GetLabel())
		},
	)
	p.list.OnSelected = func(i widget.ListItemID) {
		if i >= len(p.visible) {
			return
		}
		id := p.visible[i].ID
		p.root.session.UpdateOptions(func(o *model.DownloadOptions) {
			o.Format = id
		})
	}

	p.emptyLabel = widget.NewLabel("")
	p.emptyLabel.Hide()

	// The spacer pins a usable height for the list inside the scrolling tab
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(0, FormatListMinHeight))
	listArea := container.NewStack(spacer, p.list)

	filterRow := container.NewBorder(nil, nil, container.NewHBox(p.videoOnly, p.audioOnly), bestBtn, p.search)
	p.content = container.NewVBox(filterRow, listArea, p.emptyLabel)
	return p
}

// category maps the toggle pair onto a filter category
func (p *formatPicker) category() formats.Category {
	switch {
	case p.videoOnly.Checked:
		return formats.CategoryVideo
	case p.audioOnly.Checked:
		return formats.CategoryAudio
	default:
		return formats.CategoryAll
	}
}

// onSelectBest applies the best-quality heuristic over the full format list
func (p *formatPicker) onSelectBest() {
	best, ok := formats.SelectBest(p.root.session.Formats())
	if !ok {
		return
	}
	p.root.session.UpdateOptions(func(o *model.DownloadOptions) {
		o.Format = best.ID
	})
}

// refresh recomputes the visible rows from the session formats
func (p *formatPicker) refresh() {
	all := p.root.session.Formats()
	filtered := formats.Filter(all, p.search.Text, p.category())
	p.visible = formats.SortForDisplay(filtered)

	if len(p.visible) == 0 {
		p.emptyLabel.SetText("No formats match " + p.category().String())
		p.emptyLabel.Show()
	} else {
		p.emptyLabel.Hide()
	}
	p.list.Refresh()
}
