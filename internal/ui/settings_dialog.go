package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/renbkna/yt-dlp-ui/internal/config"
)

// onShowSettings opens the settings dialog: backend URL, theme, language,
// and audio defaults. The theme applies immediately; a changed backend URL
// takes effect on the next launch.
func (ui *RootUI) onShowSettings() {
	urlEntry := widget.NewEntry()
	urlEntry.SetText(ui.settings.GetAPIBaseURL())

	themeOptions := ui.settings.GetThemeModeOptions()
	themeNames := make([]string, 0, len(themeOptions))
	for _, mode := range themeOptions {
		themeNames = append(themeNames, string(mode))
	}
	themeSel := widget.NewSelect(themeNames, nil)
	themeSel.SetSelected(string(ui.settings.GetThemeMode()))

	langCodes := make([]string, 0)
	for code := range ui.settings.GetLanguageOptions() {
		langCodes = append(langCodes, code)
	}
	sort.Strings(langCodes)
	langSel := widget.NewSelect(langCodes, nil)
	langSel.SetSelected(ui.settings.GetLanguage())

	audioSel := widget.NewSelect(ui.settings.GetAudioFormatOptions(), nil)
	audioSel.SetSelected(ui.settings.GetAudioFormat())

	items := []*widget.FormItem{
		widget.NewFormItem(ui.loc.GetText(KeyAPIBaseURL), urlEntry),
		widget.NewFormItem(ui.loc.GetText(KeyTheme), themeSel),
		widget.NewFormItem(ui.loc.GetText(KeyLanguage), langSel),
		widget.NewFormItem(ui.loc.GetText(KeyAudioFormat), audioSel),
	}

	form := dialog.NewForm(ui.loc.GetText(KeySettings), ui.loc.GetText(KeySave),
		ui.loc.GetText(KeyCancel), items, func(confirmed bool) {
			if !confirmed {
				return
			}

			ui.settings.SetAPIBaseURL(urlEntry.Text)
			ui.settings.SetAudioFormat(audioSel.Selected)

			mode := config.ThemeMode(themeSel.Selected)
			ui.settings.SetThemeMode(mode)
			ui.app.Settings().SetTheme(NewAppTheme(mode))

			ui.settings.SetLanguage(langSel.Selected)
			ui.loc.SetLanguage(langSel.Selected)
			ui.window.SetTitle(ui.loc.GetText(KeyAppTitle))
		}, ui.window)

	form.Resize(fyne.NewSize(420, 0))
	form.Show()
}
