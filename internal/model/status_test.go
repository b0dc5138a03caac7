package model

import (
	"testing"
)

func TestDownloadStateIsActive(t *testing.T) {
	activeStates := []DownloadState{StateInitializing, StateDownloading, StateProcessing}
	for _, state := range activeStates {
		if !state.IsActive() {
			t.Errorf("Expected state %s to be active", state)
		}
	}

	inactiveStates := []DownloadState{StateCompleted, StateError}
	for _, state := range inactiveStates {
		if state.IsActive() {
			t.Errorf("Expected state %s to not be active", state)
		}
	}
}

func TestDownloadStateIsTerminal(t *testing.T) {
	terminalStates := []DownloadState{StateCompleted, StateError}
	for _, state := range terminalStates {
		if !state.IsTerminal() {
			t.Errorf("Expected state %s to be terminal", state)
		}
	}

	activeStates := []DownloadState{StateInitializing, StateDownloading, StateProcessing}
	for _, state := range activeStates {
		if state.IsTerminal() {
			t.Errorf("Expected state %s to not be terminal", state)
		}
	}
}

func TestDownloadStatusPercent(t *testing.T) {
	status := &DownloadStatus{Progress: 0.5}
	if status.Percent() != 50 {
		t.Errorf("Expected 50 percent, got %d", status.Percent())
	}

	status.Progress = 0
	if status.Percent() != 0 {
		t.Errorf("Expected 0 percent, got %d", status.Percent())
	}

	status.Progress = 1.0
	if status.Percent() != 100 {
		t.Errorf("Expected 100 percent, got %d", status.Percent())
	}

	// Out-of-range values are clamped
	status.Progress = 1.5
	if status.Percent() != 100 {
		t.Errorf("Expected clamped 100 percent, got %d", status.Percent())
	}

	status.Progress = -0.5
	if status.Percent() != 0 {
		t.Errorf("Expected clamped 0 percent, got %d", status.Percent())
	}
}

func TestDownloadStatusGetETAString(t *testing.T) {
	tests := []struct {
		etaSec   int
		expected string
	}{
		{0, "—"},
		{-1, "—"},
		{45, "00:45"},
		{90, "01:30"},
		{3600, "01:00:00"},
		{3725, "01:02:05"},
	}

	for _, test := range tests {
		status := &DownloadStatus{ETASec: test.etaSec}
		result := status.GetETAString()
		if result != test.expected {
			t.Errorf("ETA %d: expected %s, got %s", test.etaSec, test.expected, result)
		}
	}
}
