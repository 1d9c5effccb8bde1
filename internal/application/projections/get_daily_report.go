package projections

import (
	"context"
	"time"

	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/payment"
)

// DailyReportMemberStore defines the attendance count for the daily report.
type DailyReportMemberStore interface {
	CountAttendanceByDate(ctx context.Context, date string) (int, error)
}

// DailyReportFinanceStore defines the money listings for the daily report.
type DailyReportFinanceStore interface {
	ListPaymentsByDate(ctx context.Context, date string) ([]payment.Payment, error)
	ListDeductionsByDate(ctx context.Context, date string) ([]payment.Deduction, error)
}

// DailyReportDeps holds dependencies for the daily report projection.
type DailyReportDeps struct {
	MemberStore  DailyReportMemberStore
	FinanceStore DailyReportFinanceStore
	Now          func() time.Time
}

// DailyReport is the end-of-day reconciliation sheet.
type DailyReport struct {
	Date             string
	MemberVisits     int
	NewSubscriptions int
	DebtCollected    float64
	Income           float64
	Expenses         float64
	Net              float64
	Payments         []payment.Payment
	Deductions       []payment.Deduction
}

// QueryDailyReport builds the reconciliation sheet for the given date,
// defaulting to today. MANUAL_DEBT rows book no money and are excluded
// from income.
// PRE: date is YYYY-MM-DD or empty
// POST: Net equals Income minus Expenses
func QueryDailyReport(ctx context.Context, date string, deps DailyReportDeps) (DailyReport, error) {
	if date == "" {
		date = deps.Now().Format(member.DateLayout)
	}

	report := DailyReport{Date: date}

	var err error
	report.MemberVisits, err = deps.MemberStore.CountAttendanceByDate(ctx, date)
	if err != nil {
		return DailyReport{}, err
	}

	report.Payments, err = deps.FinanceStore.ListPaymentsByDate(ctx, date)
	if err != nil {
		return DailyReport{}, err
	}
	for _, p := range report.Payments {
		switch p.Type {
		case payment.TypeManualDebt:
			continue
		case payment.TypeSubscription:
			report.NewSubscriptions++
		case payment.TypeDebtPayment:
			report.DebtCollected += p.Amount
		}
		report.Income += p.Amount
	}

	report.Deductions, err = deps.FinanceStore.ListDeductionsByDate(ctx, date)
	if err != nil {
		return DailyReport{}, err
	}
	for _, d := range report.Deductions {
		report.Expenses += d.Amount
	}

	report.Net = report.Income - report.Expenses
	return report, nil
}
