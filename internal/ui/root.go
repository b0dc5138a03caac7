package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/renbkna/yt-dlp-ui/internal/api"
	"github.com/renbkna/yt-dlp-ui/internal/config"
	"github.com/renbkna/yt-dlp-ui/internal/session"
)

// RootUI represents the main UI structure: the three-step tabbed shell plus
// the shared error banner and settings entry point
type RootUI struct {
	window   fyne.Window
	app      fyne.App
	session  *session.Session
	backend  *api.Client
	settings *config.Settings
	loc      *Localization

	tabs        *container.AppTabs
	urlTab      *container.TabItem
	optionsTab  *container.TabItem
	progressTab *container.TabItem

	errorBanner *fyne.Container
	errorLabel  *widget.Label
	authHint    *widget.Label

	urlView      *urlView
	optionsView  *optionsView
	progressView *progressView
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, sess *session.Session, backend *api.Client) *RootUI {
	settings := config.NewSettings(app)

	loc := NewLocalization()
	loc.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:   window,
		app:      app,
		session:  sess,
		backend:  backend,
		settings: settings,
		loc:      loc,
	}

	window.SetTitle(loc.GetText(KeyAppTitle))

	// All session changes funnel into one refresh on the UI thread
	sess.SetUpdateCallback(ui.onSessionUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Error banner (hidden until a failure surfaces)
	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.authHint = widget.NewLabel(ui.loc.GetText(KeyAuthErrorHint))
	ui.authHint.Wrapping = fyne.TextWrapWord
	ui.authHint.TextStyle = fyne.TextStyle{Italic: true}
	ui.authHint.Hide()

	dismissBtn := widget.NewButton(IconClose, func() {
		ui.session.DismissError()
	})
	dismissBtn.Importance = widget.LowImportance
	ui.errorBanner = container.NewBorder(nil, nil, nil, dismissBtn,
		container.NewVBox(ui.errorLabel, ui.authHint))
	ui.errorBanner.Hide()

	// Step views
	ui.urlView = newURLView(ui)
	ui.optionsView = newOptionsView(ui)
	ui.progressView = newProgressView(ui)

	ui.urlTab = container.NewTabItem(ui.loc.GetText(KeyTabURL), ui.urlView.content)
	ui.optionsTab = container.NewTabItem(ui.loc.GetText(KeyTabOptions), ui.optionsView.content)
	ui.progressTab = container.NewTabItem(ui.loc.GetText(KeyTabProgress), ui.progressView.content)

	ui.tabs = container.NewAppTabs(ui.urlTab, ui.optionsTab, ui.progressTab)
	ui.tabs.OnSelected = ui.onTabSelected

	// Forward tabs stay disabled until their data exists
	ui.tabs.DisableItem(ui.optionsTab)
	ui.tabs.DisableItem(ui.progressTab)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topBar := container.NewHBox(layout.NewSpacer(), settingsBtn)
	top := container.NewVBox(topBar, ui.errorBanner)

	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, ui.tabs))
}

// onSessionUpdate marshals session change notifications onto the UI thread
func (ui *RootUI) onSessionUpdate() {
	fyne.Do(ui.refresh)
}

// onTabSelected keeps the session step in sync with user tab navigation.
// Backward navigation to the URL step never clears fetched state.
func (ui *RootUI) onTabSelected(item *container.TabItem) {
	var step session.Step
	switch item {
	case ui.optionsTab:
		step = session.StepOptions
	case ui.progressTab:
		step = session.StepProgress
	default:
		step = session.StepURL
	}

	if ui.session.Step() != step {
		ui.session.GoToStep(step)
	}
}

// refresh re-renders every view from the current session state
func (ui *RootUI) refresh() {
	if msg := ui.session.LastError(); msg != "" {
		ui.errorLabel.SetText(IconError + " " + msg)
		if session.IsAuthError(msg) {
			ui.authHint.Show()
		} else {
			ui.authHint.Hide()
		}
		ui.errorBanner.Show()
	} else {
		ui.errorBanner.Hide()
	}

	if ui.session.Info() != nil {
		ui.tabs.EnableItem(ui.optionsTab)
	} else {
		ui.tabs.DisableItem(ui.optionsTab)
	}
	if ui.session.Status() != nil {
		ui.tabs.EnableItem(ui.progressTab)
	} else {
		ui.tabs.DisableItem(ui.progressTab)
	}

	if want := int(ui.session.Step()); ui.tabs.SelectedIndex() != want {
		ui.tabs.SelectIndex(want)
	}

	ui.urlView.refresh()
	ui.optionsView.refresh()
	ui.progressView.refresh()
	ui.errorBanner.Refresh()
}
