package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"gymdesk/internal/domain/account"
	"gymdesk/internal/domain/audit"
	"gymdesk/internal/domain/checkin"
	"gymdesk/internal/domain/employee"
	"gymdesk/internal/domain/member"
)

// DuplicateScanWindow suppresses repeated reads of the same identifier.
// Card readers and barcode scanners can fire several read events for
// one physical swipe; a second scan of the same id inside this window
// is silently discarded.
const DuplicateScanWindow = 3000 * time.Millisecond

const dateLayout = "2006-01-02"

// DeskMemberStore defines the member store interface needed by the desk.
type DeskMemberStore interface {
	ListAll(ctx context.Context) ([]member.Member, error)
	AppendAttendance(ctx context.Context, memberID string, entry member.AttendanceEntry) error
	DeleteAttendance(ctx context.Context, memberID string, attendanceID string) error
}

// DeskEmployeeStore defines the employee store interface needed by the desk.
type DeskEmployeeStore interface {
	ListAll(ctx context.Context) ([]employee.Employee, error)
	UpsertAttendance(ctx context.Context, employeeID string, rec employee.AttendanceRecord) error
	DeleteAttendanceByDate(ctx context.Context, employeeID string, date string) error
}

// DeskLedgerStore defines the session-ledger store interface needed by the desk.
type DeskLedgerStore interface {
	Append(ctx context.Context, entry checkin.LedgerEntry) error
	Delete(ctx context.Context, id string) error
	ListByDate(ctx context.Context, date string) ([]checkin.LedgerEntry, error)
	DeleteOtherDates(ctx context.Context, date string) (int, error)
}

// DeskAuditStore defines the activity-log interface needed by the desk.
type DeskAuditStore interface {
	Save(ctx context.Context, entry audit.Entry) error
}

// DeskDeps holds dependencies for the check-in desk.
type DeskDeps struct {
	MemberStore   DeskMemberStore
	EmployeeStore DeskEmployeeStore
	LedgerStore   DeskLedgerStore
	AuditStore    DeskAuditStore   // optional: nil skips activity logging
	Now           func() time.Time // injectable for testing
}

// CheckInResult is the outcome of one scan, surfaced as data: advisory
// errors and warnings are fields, never Go errors. The returned error
// of CheckIn is reserved for storage failures.
type CheckInResult struct {
	Target     checkin.Target // zero Kind when unresolved
	Status     checkin.Status // member scans only
	Error      string
	Warning    string
	Success    bool
	HasDebt    bool
	Suppressed bool // duplicate scan discarded inside the window
	Entry      *checkin.LedgerEntry
}

// Desk orchestrates the front-desk check-in workflow. It owns the
// duplicate-scan and scanner-mode state explicitly — one instance per
// reception session, bound to the authenticated account as audit actor.
type Desk struct {
	deps  DeskDeps
	actor account.Account
	index *checkin.Index
	keys  checkin.KeystrokeMonitor

	// most recently accepted scan, for duplicate suppression;
	// per process, never persisted across restarts
	lastScanID string
	lastScanAt time.Time
}

// NewDesk creates a check-in desk for the given actor.
// PRE: deps stores are non-nil (AuditStore may be nil)
// POST: Returns a desk; call ReloadIndex before the first scan
func NewDesk(deps DeskDeps, actor account.Account) *Desk {
	return &Desk{deps: deps, actor: actor}
}

func (d *Desk) now() time.Time {
	if d.deps.Now != nil {
		return d.deps.Now()
	}
	return time.Now()
}

// ReloadIndex rebuilds the entity index from the stores. Call it after
// any change to the member or employee collections.
// PRE: stores are reachable
// POST: Index covers every member and employee id and phone
func (d *Desk) ReloadIndex(ctx context.Context) error {
	members, err := d.deps.MemberStore.ListAll(ctx)
	if err != nil {
		return err
	}
	employees, err := d.deps.EmployeeStore.ListAll(ctx)
	if err != nil {
		return err
	}
	d.index = checkin.NewIndex(members, employees)
	return nil
}

// RecordKeystroke feeds the scanner-mode heuristic with one keystroke
// timestamp. Affects only audit annotation, never accept/reject.
func (d *Desk) RecordKeystroke(at time.Time) {
	d.keys.RecordKey(at)
}

// ScannerActive reports the current input-channel classification.
func (d *Desk) ScannerActive() bool {
	return d.keys.ScannerActive()
}

// CheckIn processes one scan or manual submission.
// PRE: ReloadIndex has been called since the last collection change
// POST: On acceptance the permanent history and the session ledger each
// grew by one entry and the scan was logged; rejections mutate nothing
// INVARIANT: Only an Inactive status blocks a member; Expired and
// Frozen warn but admit. Unresolved inputs are never logged.
func (d *Desk) CheckIn(ctx context.Context, raw string) (CheckInResult, error) {
	key := checkin.NormalizeKey(raw)
	if key == "" {
		return CheckInResult{}, nil
	}

	if d.index == nil {
		if err := d.ReloadIndex(ctx); err != nil {
			return CheckInResult{}, err
		}
	}

	target, ok := d.index.Lookup(key)
	if !ok {
		return CheckInResult{Error: checkin.MsgNotRegistered}, nil
	}

	now := d.now()
	targetID := target.ID()

	// A suppressed scan does not refresh the window: the window is
	// anchored at the last accepted scan.
	if d.lastScanID == targetID && now.Sub(d.lastScanAt) < DuplicateScanWindow {
		return CheckInResult{Suppressed: true}, nil
	}
	d.lastScanID = targetID
	d.lastScanAt = now

	switch target.Kind {
	case checkin.TargetMember:
		return d.checkInMember(ctx, target, now)
	case checkin.TargetEmployee:
		return d.checkInEmployee(ctx, target, now)
	}
	return CheckInResult{Error: checkin.MsgNotRegistered}, nil
}

func (d *Desk) checkInMember(ctx context.Context, target checkin.Target, now time.Time) (CheckInResult, error) {
	m := target.Member
	status := checkin.Resolve(*m, now)

	result := CheckInResult{
		Target:  target,
		Status:  status,
		HasDebt: m.HasDebt(),
	}

	if status.Blocks() {
		// Rejected scans are not logged: reception gets no audit
		// trail of inactive-member attempts.
		result.Error = checkin.MsgInactive
		return result, nil
	}

	today := now.Format(dateLayout)
	clock := formatClock(now)
	entryID := checkin.NewEntryID(m.ID, now)

	if err := d.deps.MemberStore.AppendAttendance(ctx, m.ID, member.AttendanceEntry{
		ID:   entryID,
		Date: today,
		Time: clock,
	}); err != nil {
		return CheckInResult{}, err
	}

	entry := checkin.LedgerEntry{
		ID:           entryID,
		AttendanceID: entryID,
		TargetID:     m.ID,
		TargetName:   m.Name,
		PlanOrRole:   m.Plan,
		Date:         today,
		Time:         clock,
		Status:       status,
		HasDebt:      m.HasDebt(),
		Type:         checkin.EntryTypeMember,
	}
	if err := d.deps.LedgerStore.Append(ctx, entry); err != nil {
		return CheckInResult{}, err
	}

	d.addLog(ctx, audit.ActionMemberCheckIn, m.Name)
	slog.Info("checkin_event", "event", "member_checked_in", "member_id", m.ID, "name", m.Name, "status", status, "scanner", d.keys.ScannerActive())

	result.Warning = status.Warning()
	result.Success = true
	result.Entry = &entry
	return result, nil
}

func (d *Desk) checkInEmployee(ctx context.Context, target checkin.Target, now time.Time) (CheckInResult, error) {
	e := target.Employee
	today := now.Format(dateLayout)
	clock := formatClock(now)
	entryID := checkin.NewEntryID(e.ID, now)

	// Replace semantics: at most one attendance record per day, the
	// latest scan's time wins.
	if err := d.deps.EmployeeStore.UpsertAttendance(ctx, e.ID, employee.AttendanceRecord{
		Date:    today,
		CheckIn: clock,
		Status:  employee.StatusPresent,
	}); err != nil {
		return CheckInResult{}, err
	}

	entry := checkin.LedgerEntry{
		ID:           entryID,
		AttendanceID: entryID,
		TargetID:     e.ID,
		TargetName:   e.Name,
		PlanOrRole:   e.Role,
		Date:         today,
		Time:         clock,
		Status:       checkin.StatusActive,
		Type:         checkin.EntryTypeEmployee,
	}
	if err := d.deps.LedgerStore.Append(ctx, entry); err != nil {
		return CheckInResult{}, err
	}

	d.addLog(ctx, audit.ActionEmployeeCheckIn, e.Name)
	slog.Info("checkin_event", "event", "employee_checked_in", "employee_id", e.ID, "name", e.Name, "scanner", d.keys.ScannerActive())

	return CheckInResult{
		Target:  target,
		Status:  checkin.StatusActive,
		Success: true,
		Entry:   &entry,
	}, nil
}

// Cancel undoes a check-in after interactive confirmation: it removes
// the matching permanent record and the ledger entry. This is the only
// supported correction mechanism.
// PRE: entry came from the session ledger
// POST: With confirm, both records are removed and the undo is logged;
// without confirm, nothing changes
func (d *Desk) Cancel(ctx context.Context, entry checkin.LedgerEntry, confirm bool) error {
	if !confirm {
		return nil
	}

	switch entry.Type {
	case checkin.EntryTypeMember:
		if err := d.deps.MemberStore.DeleteAttendance(ctx, entry.TargetID, entry.AttendanceID); err != nil {
			return err
		}
		d.addLog(ctx, audit.ActionMemberCancel, entry.TargetName)
	case checkin.EntryTypeEmployee:
		if err := d.deps.EmployeeStore.DeleteAttendanceByDate(ctx, entry.TargetID, entry.Date); err != nil {
			return err
		}
		d.addLog(ctx, audit.ActionEmployeeCancel, entry.TargetName)
	}

	if err := d.deps.LedgerStore.Delete(ctx, entry.ID); err != nil {
		return err
	}

	slog.Info("checkin_event", "event", "checkin_cancelled", "entry_id", entry.ID, "target_id", entry.TargetID)
	return nil
}

// LoadLedger returns today's session ledger, newest first, pruning any
// persisted entries left over from prior days.
// PRE: ledger store is reachable
// POST: Every returned entry is dated today
func (d *Desk) LoadLedger(ctx context.Context) ([]checkin.LedgerEntry, error) {
	today := d.now().Format(dateLayout)
	pruned, err := d.deps.LedgerStore.DeleteOtherDates(ctx, today)
	if err != nil {
		return nil, err
	}
	if pruned > 0 {
		slog.Info("checkin_event", "event", "ledger_pruned", "stale_entries", pruned)
	}
	return d.deps.LedgerStore.ListByDate(ctx, today)
}

func (d *Desk) addLog(ctx context.Context, action, targetName string) {
	if d.deps.AuditStore == nil {
		return
	}
	details := "بواسطة " + d.actor.Username
	if d.keys.ScannerActive() {
		details += audit.ScannerNote
	}
	entry := audit.NewEntry(d.actor.ID, d.actor.Username, d.actor.Role, action, targetName, details)
	if err := d.deps.AuditStore.Save(ctx, entry); err != nil {
		slog.Error("checkin_event", "event", "audit_log_failed", "error", err.Error())
	}
}

// formatClock renders a wall-clock time the way the desk screen shows
// it: 12-hour with the Arabic meridiem.
func formatClock(t time.Time) string {
	if t.Hour() < 12 {
		return t.Format("03:04") + " ص"
	}
	return t.Format("03:04") + " م"
}
