package orchestrators

import (
	"context"
	"io"
	"log/slog"

	"gymdesk/internal/adapters/export"
	"gymdesk/internal/domain/account"
	"gymdesk/internal/domain/audit"
	"gymdesk/internal/domain/employee"
	"gymdesk/internal/domain/payment"
)

// EmployeeListerForExport defines the employee listing needed by the export.
type EmployeeListerForExport interface {
	ListAll(ctx context.Context) ([]employee.Employee, error)
}

// PaymentListerForExport defines the payment listing needed by the export.
type PaymentListerForExport interface {
	ListAllPayments(ctx context.Context) ([]payment.Payment, error)
}

// ExportDataDeps holds dependencies for ExportData.
type ExportDataDeps struct {
	MemberStore   MemberListerForReminders
	EmployeeStore EmployeeListerForExport
	PaymentStore  PaymentListerForExport
	AuditStore    AuditRecorder // optional
	Actor         account.Account
}

// ExecuteExportData writes the full gym snapshot as an Excel workbook
// to w. Used for the owner's periodic backup.
// PRE: all stores are reachable
// POST: Workbook with member, employee and payment sheets written to w
func ExecuteExportData(ctx context.Context, w io.Writer, deps ExportDataDeps) error {
	members, err := deps.MemberStore.ListAll(ctx)
	if err != nil {
		return err
	}
	employees, err := deps.EmployeeStore.ListAll(ctx)
	if err != nil {
		return err
	}
	payments, err := deps.PaymentStore.ListAllPayments(ctx)
	if err != nil {
		return err
	}

	snap := export.Snapshot{
		Members:   members,
		Employees: employees,
		Payments:  payments,
	}
	if err := export.WriteWorkbook(snap, w); err != nil {
		return err
	}

	logAction(ctx, deps.AuditStore, deps.Actor, audit.ActionDataExported, "")
	slog.Info("export_event", "event", "data_exported", "members", len(members), "employees", len(employees), "payments", len(payments))
	return nil
}
