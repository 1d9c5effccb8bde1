// Package export builds spreadsheet snapshots of the gym's records for
// the export center.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"gymdesk/internal/domain/employee"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/payment"
)

// Snapshot carries the collections included in a workbook.
type Snapshot struct {
	Members   []member.Member
	Employees []employee.Employee
	Payments  []payment.Payment
}

// BuildWorkbook renders a snapshot as an xlsx workbook with one sheet
// per collection.
// PRE: snap is populated (empty collections are fine)
// POST: Returns an open workbook; the caller must Close it
func BuildWorkbook(snap Snapshot) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", "Members"); err != nil {
		return nil, fmt.Errorf("rename members sheet: %w", err)
	}
	if err := writeMembers(f, snap.Members); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet("Employees"); err != nil {
		return nil, fmt.Errorf("create employees sheet: %w", err)
	}
	if err := writeEmployees(f, snap.Employees); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet("Payments"); err != nil {
		return nil, fmt.Errorf("create payments sheet: %w", err)
	}
	if err := writePayments(f, snap.Payments); err != nil {
		return nil, err
	}

	return f, nil
}

// WriteWorkbook builds the workbook and streams it to w.
// PRE: w is writable
// POST: Workbook bytes are written and the file is closed
func WriteWorkbook(snap Snapshot, w io.Writer) error {
	f, err := BuildWorkbook(snap)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeMembers(f *excelize.File, members []member.Member) error {
	header := []any{"ID", "Name", "Phone", "Email", "Plan", "Subscription End", "Active", "Frozen", "Archived", "Total Debt", "Visits"}
	if err := writeRow(f, "Members", 1, header); err != nil {
		return err
	}
	for i, m := range members {
		row := []any{
			m.ID, m.Name, m.Phone, m.Email, m.Plan, m.SubscriptionEnd,
			m.IsActive, m.IsFrozen, m.IsArchived, m.TotalDebt, len(m.AttendanceHistory),
		}
		if err := writeRow(f, "Members", i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeEmployees(f *excelize.File, employees []employee.Employee) error {
	header := []any{"ID", "Name", "Role", "Phone", "Email", "Base Salary", "Join Date"}
	if err := writeRow(f, "Employees", 1, header); err != nil {
		return err
	}
	for i, e := range employees {
		row := []any{e.ID, e.Name, e.Role, e.Phone, e.Email, e.BaseSalary, e.JoinDate}
		if err := writeRow(f, "Employees", i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writePayments(f *excelize.File, payments []payment.Payment) error {
	header := []any{"ID", "Member", "Amount", "Date", "Type", "Recorded By"}
	if err := writeRow(f, "Payments", 1, header); err != nil {
		return err
	}
	for i, p := range payments {
		row := []any{p.ID, p.MemberName, p.Amount, p.Date, p.Type, p.RecordedBy}
		if err := writeRow(f, "Payments", i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
