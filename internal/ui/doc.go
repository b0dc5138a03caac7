package ui

// Package ui contains the Fyne-based desktop user interface: the tabbed
// shell (URL, Options, Progress), the option editors, the format picker, and
// the cookie authentication card. All views render session state and push
// changes back through the session; they hold no business state of their
// own. UI strings are localized via Localization.
