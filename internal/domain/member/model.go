package member

import (
	"errors"
	"strings"
	"time"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength = 100
)

// DateLayout is the calendar-date format used for join and subscription dates.
const DateLayout = "2006-01-02"

// Domain errors
var (
	ErrAlreadyFrozen   = errors.New("member subscription is already frozen")
	ErrNotFrozen       = errors.New("member subscription is not frozen")
	ErrAlreadyArchived = errors.New("member is already archived")
	ErrNotArchived     = errors.New("member is not archived")
)

// AttendanceEntry is one permanent check-in record for a member.
// Entries are never reordered; the newest entry is prepended.
type AttendanceEntry struct {
	ID   string
	Date string // YYYY-MM-DD
	Time string // wall-clock display time
}

// Member holds state for a gym member.
type Member struct {
	ID                    string
	Name                  string
	Email                 string
	Phone                 string
	JoinDate              string // YYYY-MM-DD
	Plan                  string
	SubscriptionEnd       string // YYYY-MM-DD, last day of the paid window
	IsActive              bool
	IsFrozen              bool
	IsArchived            bool
	RemainingDaysAtFreeze int
	LastFreezeDate        string
	Notes                 string
	TotalDebt             float64
	AttendanceHistory     []AttendanceEntry
}

// Validate checks if the Member has valid data.
// PRE: Member struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: ID and Name must not be empty, SubscriptionEnd must parse
func (m *Member) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return errors.New("member id cannot be empty")
	}
	if strings.TrimSpace(m.Name) == "" {
		return errors.New("member name cannot be empty")
	}
	if len(m.Name) > MaxNameLength {
		return errors.New("member name cannot exceed 100 characters")
	}
	if m.Email != "" && !strings.Contains(m.Email, "@") {
		return errors.New("member email must be valid")
	}
	if m.SubscriptionEnd != "" {
		if _, err := time.Parse(DateLayout, m.SubscriptionEnd); err != nil {
			return errors.New("subscription end date must be YYYY-MM-DD")
		}
	}
	return nil
}

// RemainingDays returns the number of paid days left relative to now.
// The end date is pinned to the end of its calendar day and now to the
// start of its calendar day, so a subscription ending today still
// reports 1 — the last calendar day is fully honored.
// PRE: SubscriptionEnd is YYYY-MM-DD (unparseable dates count as expired)
// POST: Returns days left; <= 0 means expired
func (m *Member) RemainingDays(now time.Time) int {
	end, err := time.ParseInLocation(DateLayout, m.SubscriptionEnd, now.Location())
	if err != nil {
		return 0
	}
	endOfDay := end.Add(24*time.Hour - time.Millisecond)
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	diff := endOfDay.Sub(startOfDay)
	days := diff / (24 * time.Hour)
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return int(days)
}

// HasDebt returns true if the member carries outstanding debt.
// INVARIANT: TotalDebt is not mutated
func (m *Member) HasDebt() bool {
	return m.TotalDebt > 0
}

// Freeze suspends the subscription, snapshotting the remaining days so
// they can be restored on unfreeze.
// PRE: Member is not already frozen
// POST: IsFrozen is true, RemainingDaysAtFreeze and LastFreezeDate set
func (m *Member) Freeze(now time.Time) error {
	if m.IsFrozen {
		return ErrAlreadyFrozen
	}
	remaining := m.RemainingDays(now)
	if remaining < 0 {
		remaining = 0
	}
	m.IsFrozen = true
	m.RemainingDaysAtFreeze = remaining
	m.LastFreezeDate = now.Format(DateLayout)
	return nil
}

// Unfreeze resumes the subscription, re-deriving the end date from the
// snapshot taken at freeze time. A snapshot of N days means the member
// can still train today plus N-1 further days.
// PRE: Member is currently frozen
// POST: IsFrozen is false, SubscriptionEnd recomputed
func (m *Member) Unfreeze(now time.Time) error {
	if !m.IsFrozen {
		return ErrNotFrozen
	}
	m.IsFrozen = false
	if m.RemainingDaysAtFreeze > 0 {
		end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
			AddDate(0, 0, m.RemainingDaysAtFreeze-1)
		m.SubscriptionEnd = end.Format(DateLayout)
	}
	m.RemainingDaysAtFreeze = 0
	return nil
}

// Archive moves the member out of the active pool.
// PRE: Member is not already archived
// POST: IsArchived is true
func (m *Member) Archive() error {
	if m.IsArchived {
		return ErrAlreadyArchived
	}
	m.IsArchived = true
	return nil
}

// Restore returns an archived member to the active pool.
// PRE: Member is currently archived
// POST: IsArchived is false
func (m *Member) Restore() error {
	if !m.IsArchived {
		return ErrNotArchived
	}
	m.IsArchived = false
	return nil
}
