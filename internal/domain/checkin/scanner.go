package checkin

import "time"

// Keystroke-gap thresholds for the scanner heuristic. Card and barcode
// scanners type far faster than humans; a burst of keystrokes under
// ScannerGap apart flags the channel as scanner-originated, and a gap
// over ManualGap reverts it.
const (
	ScannerGap = 35 * time.Millisecond
	ManualGap  = 100 * time.Millisecond
)

// KeystrokeMonitor classifies the input channel as scanner or manual
// from keystroke timing. This is a soft heuristic used only to annotate
// the activity log; it never affects accept/reject decisions.
type KeystrokeMonitor struct {
	lastKey time.Time
	scanner bool
}

// RecordKey observes one keystroke at the given time.
// PRE: at is the wall-clock time of the keystroke
// POST: Scanner flag updated from the gap to the previous keystroke
func (m *KeystrokeMonitor) RecordKey(at time.Time) {
	if !m.lastKey.IsZero() {
		gap := at.Sub(m.lastKey)
		if gap < ScannerGap {
			m.scanner = true
		} else if gap > ManualGap {
			m.scanner = false
		}
	}
	m.lastKey = at
}

// ScannerActive reports whether the last burst looked scanner-fed.
func (m *KeystrokeMonitor) ScannerActive() bool {
	return m.scanner
}
