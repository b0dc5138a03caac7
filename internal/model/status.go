package model

import (
	"fmt"
)

// DownloadState represents the state of a server-side download job
type DownloadState string

const (
	// StateInitializing means the job was accepted but has not started yet
	StateInitializing DownloadState = "initializing"

	// StateDownloading means the download is in progress
	StateDownloading DownloadState = "downloading"

	// StateProcessing means the download finished and post-processing is running
	StateProcessing DownloadState = "processing"

	// StateCompleted means the job finished successfully
	StateCompleted DownloadState = "completed"

	// StateError means the job failed with an error
	StateError DownloadState = "error"
)

// String returns the string representation of DownloadState
func (ds DownloadState) String() string {
	return string(ds)
}

// IsActive returns true if the job is in an active state
func (ds DownloadState) IsActive() bool {
	return ds == StateInitializing || ds == StateDownloading || ds == StateProcessing
}

// IsTerminal returns true if the job reached a final state (completed or error)
func (ds DownloadState) IsTerminal() bool {
	return ds == StateCompleted || ds == StateError
}

// DownloadStatus is one polled snapshot of a download job. Each poll tick
// replaces the previous snapshot wholesale; fields are never merged.
type DownloadStatus struct {
	State    DownloadState `json:"status"`
	Progress float64       `json:"progress"` // 0.0 to 1.0
	Filename string        `json:"filename,omitempty"`
	Error    string        `json:"error,omitempty"`
	Speed    string        `json:"speed,omitempty"` // human readable speed (e.g., "1.2MB/s")
	ETASec   int           `json:"eta,omitempty"`   // ETA in seconds, 0 if unknown
}

// Percent returns progress as an integer percentage clamped to 0..100
func (ds *DownloadStatus) Percent() int {
	percent := int(ds.Progress * 100)
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// GetETAString returns ETA formatted as hh:mm:ss, or "—" if unknown
func (ds *DownloadStatus) GetETAString() string {
	if ds.ETASec <= 0 {
		return "—"
	}

	hours := ds.ETASec / 3600
	minutes := (ds.ETASec % 3600) / 60
	seconds := ds.ETASec % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
