package platform

// Package platform contains URL handling helpers shared by the session and
// the UI: validation, playlist detection, and playlist ID extraction.
