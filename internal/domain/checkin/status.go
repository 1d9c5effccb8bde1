package checkin

import (
	"time"

	"gymdesk/internal/domain/member"
)

// Status is the derived membership state shown at the reception desk.
type Status string

const (
	StatusActive   Status = "Active"
	StatusExpired  Status = "Expired"
	StatusFrozen   Status = "Frozen"
	StatusInactive Status = "Inactive"
)

// Advisory strings surfaced to reception staff. These are result data,
// never Go errors.
const (
	MsgNotRegistered = "البيانات المدخلة غير مسجلة في النظام"
	MsgInactive      = "العضوية غير نشطة حالياً"
	MsgExpired       = "الاشتراك منتهي"
	MsgFrozen        = "العضوية مجمدة"
)

// Resolve derives a member's current status from stored fields and now.
// Precedence, first match wins: deactivated members are Inactive even
// inside their paid window; an expired-and-frozen member is Expired,
// not Frozen.
// PRE: m is initialized
// POST: Returns exactly one of the four statuses
func Resolve(m member.Member, now time.Time) Status {
	if !m.IsActive {
		return StatusInactive
	}
	if m.RemainingDays(now) <= 0 {
		return StatusExpired
	}
	if m.IsFrozen {
		return StatusFrozen
	}
	return StatusActive
}

// Warning returns the advisory string for a non-blocking status, or ""
// when the status carries no warning.
func (s Status) Warning() string {
	switch s {
	case StatusExpired:
		return MsgExpired
	case StatusFrozen:
		return MsgFrozen
	}
	return ""
}

// Blocks reports whether the status prevents check-in. Only Inactive
// blocks; Expired and Frozen warn but still admit.
func (s Status) Blocks() bool {
	return s == StatusInactive
}
