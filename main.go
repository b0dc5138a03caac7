package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/renbkna/yt-dlp-ui/internal/api"
	"github.com/renbkna/yt-dlp-ui/internal/config"
	"github.com/renbkna/yt-dlp-ui/internal/session"
	"github.com/renbkna/yt-dlp-ui/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.renbkna.yt-dlp-ui"
	AppName = "yt-dlp UI"

	// EnvAPIBaseURL overrides the configured backend origin
	EnvAPIBaseURL = "YTDLP_UI_API_URL"

	WindowWidth  = 800
	WindowHeight = 600
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Initialize settings and apply the persisted theme
	settings := config.NewSettings(myApp)
	myApp.Settings().SetTheme(ui.NewAppTheme(settings.GetThemeMode()))

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	baseURL := settings.GetAPIBaseURL()
	if fromEnv := os.Getenv(EnvAPIBaseURL); fromEnv != "" {
		baseURL = fromEnv
	}
	backend := api.NewClient(baseURL)
	sess := session.NewSession(backend)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, sess, backend)

	// Show and run
	myWindow.ShowAndRun()
}
