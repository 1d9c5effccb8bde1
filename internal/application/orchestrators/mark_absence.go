package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"gymdesk/internal/domain/account"
	"gymdesk/internal/domain/audit"
	"gymdesk/internal/domain/employee"
	"gymdesk/internal/domain/payment"
	"gymdesk/internal/domain/plan"
)

// EmployeeStoreForAbsence defines the store interface needed by MarkAbsence.
type EmployeeStoreForAbsence interface {
	GetByID(ctx context.Context, id string) (employee.Employee, error)
	UpsertAttendance(ctx context.Context, employeeID string, rec employee.AttendanceRecord) error
}

// SettingsReader provides the gym settings row.
type SettingsReader interface {
	GetSettings(ctx context.Context) (plan.Settings, error)
}

// MarkAbsenceInput carries input for the absence orchestrator.
type MarkAbsenceInput struct {
	EmployeeID string
	Date       string // YYYY-MM-DD, defaults to today when empty
	Status     string // employee.StatusAbsent or employee.StatusHalfDay
}

// MarkAbsenceDeps holds dependencies for MarkAbsence.
type MarkAbsenceDeps struct {
	EmployeeStore  EmployeeStoreForAbsence
	DeductionStore DeductionRecorder
	SettingsStore  SettingsReader
	AuditStore     AuditRecorder // optional
	Actor          account.Account
	Now            func() time.Time
}

// ExecuteMarkAbsence records an employee as absent or on a half day
// and books the matching salary deduction from the gym settings.
// PRE: EmployeeID resolves; Status is ABSENT or HALF_DAY
// POST: Attendance for the date replaced with the given status; a
// SALARY deduction exists when the configured amount is positive
func ExecuteMarkAbsence(ctx context.Context, input MarkAbsenceInput, deps MarkAbsenceDeps) error {
	if input.Status != employee.StatusAbsent && input.Status != employee.StatusHalfDay {
		return errors.New("status must be ABSENT or HALF_DAY")
	}

	e, err := deps.EmployeeStore.GetByID(ctx, input.EmployeeID)
	if err != nil {
		return err
	}

	now := deps.Now()
	date := input.Date
	if date == "" {
		date = now.Format(employee.DateLayout)
	}

	if err := deps.EmployeeStore.UpsertAttendance(ctx, e.ID, employee.AttendanceRecord{
		Date:   date,
		Status: input.Status,
	}); err != nil {
		return err
	}

	settings, err := deps.SettingsStore.GetSettings(ctx)
	if err != nil {
		return err
	}
	amount := settings.AbsenceDeduction
	reason := "خصم غياب"
	if input.Status == employee.StatusHalfDay {
		amount = settings.HalfDayDeduction
		reason = "خصم نصف يوم"
	}

	if amount > 0 {
		d := payment.Deduction{
			ID:          uuid.New().String(),
			Amount:      amount,
			Reason:      fmt.Sprintf("%s - %s", reason, date),
			Date:        now.Format(employee.DateLayout),
			AdminID:     deps.Actor.ID,
			Category:    payment.CategorySalary,
			RelatedID:   e.ID,
			RelatedName: e.Name,
		}
		if err := deps.DeductionStore.SaveDeduction(ctx, d); err != nil {
			return err
		}
	}

	logAction(ctx, deps.AuditStore, deps.Actor, audit.ActionDeductionRecorded, e.Name)
	slog.Info("employee_event", "event", "absence_marked", "employee_id", e.ID, "date", date, "status", input.Status, "deduction", amount)
	return nil
}
