package ui

import (
	"context"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/renbkna/yt-dlp-ui/internal/cookies"
	"github.com/renbkna/yt-dlp-ui/internal/model"
)

// cookieCard is the authentication helper: it extracts allow-listed cookies
// from pasted material, stores them on the options record, and registers
// them with the backend. Registration failure is a soft warning, never a
// blocking error.
type cookieCard struct {
	root      *RootUI
	content   fyne.CanvasObject
	extractor *cookies.Extractor

	enableCheck *widget.Check
	rawEntry    *widget.Entry
	extractBtn  *widget.Button
	statusLabel *widget.Label
	warnLabel   *widget.Label
	detailBox   *fyne.Container
}

// newCookieCard builds the cookie authentication card
func newCookieCard(root *RootUI) *cookieCard {
	c := &cookieCard{
		root:      root,
		extractor: cookies.NewExtractor(root.backend),
	}

	c.enableCheck = widget.NewCheck(IconCookie+" "+root.loc.GetText(KeyUseCookies), func(checked bool) {
		if root.session.Options().UseBrowserCookies == checked {
			return
		}
		root.session.UpdateOptions(func(o *model.DownloadOptions) {
			o.UseBrowserCookies = checked
		})
	})

	c.rawEntry = widget.NewMultiLineEntry()
	c.rawEntry.SetPlaceHolder(root.loc.GetText(KeyCookieHint))
	c.rawEntry.SetMinRowsVisible(CookieEntryMinLines)

	c.extractBtn = widget.NewButton(IconRefresh+" "+root.loc.GetText(KeyRefreshCookies), c.onExtract)

	c.statusLabel = widget.NewLabel("")
	c.statusLabel.Wrapping = fyne.TextWrapWord
	c.warnLabel = widget.NewLabel("")
	c.warnLabel.Wrapping = fyne.TextWrapWord
	c.warnLabel.TextStyle = fyne.TextStyle{Italic: true}
	c.warnLabel.Hide()

	c.detailBox = container.NewVBox(c.rawEntry, c.extractBtn, c.statusLabel, c.warnLabel)
	c.detailBox.Hide()

	c.content = container.NewVBox(widget.NewSeparator(), c.enableCheck, c.detailBox)

	// Backend cookie support is advisory only; fetch it off the UI thread
	go c.loadBackendStatus()
	return c
}

// loadBackendStatus asks the backend what authentication material it has
func (c *cookieCard) loadBackendStatus() {
	ctx := context.Background()

	status, err := c.root.backend.CookieStatus(ctx)
	if err != nil {
		return
	}
	line := status.Message
	if browser, err := c.root.backend.BrowserStatus(ctx); err == nil && browser.Message != "" {
		line += MiddleDotSeparator + browser.Message
	}

	fyne.Do(func() {
		c.statusLabel.SetText(line)
	})
}

// onExtract parses the pasted cookie material, replaces the extracted set
// wholesale, and registers it with the backend
func (c *cookieCard) onExtract() {
	raw := c.rawEntry.Text
	if strings.TrimSpace(raw) == "" {
		c.showWarning("No cookie data to extract")
		return
	}

	var extracted []model.ClientCookie
	if strings.Contains(raw, "\t") {
		parsed, err := cookies.ParseNetscapeFile(strings.NewReader(raw))
		if err != nil {
			c.showWarning(err.Error())
			return
		}
		extracted = parsed
	} else {
		extracted = cookies.ParseCookieHeader(raw)
	}

	if len(extracted) == 0 {
		c.showWarning("No authentication cookies found. Downloads may fail for restricted content.")
		return
	}

	c.root.session.UpdateOptions(func(o *model.DownloadOptions) {
		o.SetClientCookies(extracted)
	})
	c.warnLabel.Hide()
	c.statusLabel.SetText(strconv.Itoa(len(extracted)) + " cookies extracted")

	go func() {
		status, err := c.extractor.Register(context.Background(), extracted)
		fyne.Do(func() {
			if err != nil {
				// Non-fatal: the download proceeds with whatever the
				// backend already has
				c.showWarning(err.Error() + ". Your download will continue, but may not work for restricted content.")
				return
			}
			c.statusLabel.SetText(strconv.Itoa(len(extracted)) + " cookies registered" + MiddleDotSeparator + status.Message)
		})
	}()
}

// showWarning surfaces a soft warning inside the card
func (c *cookieCard) showWarning(message string) {
	c.warnLabel.SetText(message)
	c.warnLabel.Show()
}

// refresh syncs the card with the options record
func (c *cookieCard) refresh() {
	opts := c.root.session.Options()

	if c.enableCheck.Checked != opts.UseBrowserCookies {
		c.enableCheck.SetChecked(opts.UseBrowserCookies)
	}
	if opts.UseBrowserCookies {
		c.detailBox.Show()
	} else {
		c.detailBox.Hide()
	}
}
