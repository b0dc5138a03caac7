package api

// Package api implements the JSON-over-HTTP client for the download backend.
// All probing, downloading, transcoding, and file storage happens server
// side; this client only submits requests and consumes status snapshots.
