package checkin

import (
	"errors"
	"fmt"
	"time"
)

// Ledger entry types.
const (
	EntryTypeMember   = "MEMBER"
	EntryTypeEmployee = "EMPLOYEE"
)

// LedgerEntry is one row of the day-scoped session ledger: a live view
// of today's scans for front-desk staff. It is derived observability
// data, not the system of record — the entity's own attendance history
// is.
type LedgerEntry struct {
	ID           string
	AttendanceID string // equals ID by construction
	TargetID     string
	TargetName   string
	PlanOrRole   string
	Date         string // YYYY-MM-DD
	Time         string // wall-clock display time
	Status       Status
	HasDebt      bool
	Type         string // MEMBER or EMPLOYEE
}

// NewEntryID builds the shared attendance/ledger identifier for a scan.
// The id keys both duplicate suppression and cancellation, so the
// format is load-bearing: "<entityId>-<unix millis>".
func NewEntryID(entityID string, at time.Time) string {
	return fmt.Sprintf("%s-%d", entityID, at.UnixMilli())
}

// Validate checks if the LedgerEntry has valid data.
// PRE: LedgerEntry struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: ID == AttendanceID, Date is set, Type is a known kind
func (e *LedgerEntry) Validate() error {
	if e.ID == "" {
		return errors.New("ledger entry id cannot be empty")
	}
	if e.ID != e.AttendanceID {
		return errors.New("ledger entry id must equal its attendance id")
	}
	if e.TargetID == "" {
		return errors.New("ledger entry must reference a target")
	}
	if e.Date == "" {
		return errors.New("ledger entry date cannot be empty")
	}
	if e.Type != EntryTypeMember && e.Type != EntryTypeEmployee {
		return errors.New("ledger entry type must be MEMBER or EMPLOYEE")
	}
	return nil
}

// IsToday reports whether the entry belongs to the given calendar day.
func (e *LedgerEntry) IsToday(now time.Time) bool {
	return e.Date == now.Format("2006-01-02")
}
