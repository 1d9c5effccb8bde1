package checkin_test

import (
	"testing"
	"time"

	"gymdesk/internal/domain/checkin"
)

func TestKeystrokeMonitorClassification(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	var m checkin.KeystrokeMonitor
	if m.ScannerActive() {
		t.Error("fresh monitor should default to manual")
	}

	// First keystroke has no previous gap and changes nothing.
	m.RecordKey(base)
	if m.ScannerActive() {
		t.Error("single keystroke should not flag scanner")
	}

	// Burst at 10ms gaps: scanner.
	m.RecordKey(base.Add(10 * time.Millisecond))
	if !m.ScannerActive() {
		t.Error("10ms gap should flag scanner")
	}

	// A slow keystroke reverts to manual.
	m.RecordKey(base.Add(500 * time.Millisecond))
	if m.ScannerActive() {
		t.Error("500ms gap should revert to manual")
	}
}

func TestKeystrokeMonitorDeadZoneKeepsState(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	var m checkin.KeystrokeMonitor
	m.RecordKey(base)
	m.RecordKey(base.Add(10 * time.Millisecond)) // scanner on

	// Gaps between the two thresholds leave the flag untouched.
	m.RecordKey(base.Add(70 * time.Millisecond))
	if !m.ScannerActive() {
		t.Error("60ms gap should keep scanner flag")
	}

	m.RecordKey(base.Add(700 * time.Millisecond)) // manual again
	m.RecordKey(base.Add(760 * time.Millisecond))
	if m.ScannerActive() {
		t.Error("60ms gap should keep manual flag")
	}
}
