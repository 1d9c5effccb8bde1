package projections

import (
	"context"
	"time"

	"gymdesk/internal/domain/checkin"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/plan"
)

// DashboardMemberStore defines the member store interface for the dashboard.
type DashboardMemberStore interface {
	ListAll(ctx context.Context) ([]member.Member, error)
	CountAttendanceByDate(ctx context.Context, date string) (int, error)
}

// DashboardFinanceStore defines the money sums needed by the dashboard.
type DashboardFinanceStore interface {
	SumPaymentsBetween(ctx context.Context, startDate string, endDate string) (float64, error)
	SumDeductionsBetween(ctx context.Context, startDate string, endDate string) (float64, error)
}

// DashboardSettingsStore provides the gym settings row.
type DashboardSettingsStore interface {
	GetSettings(ctx context.Context) (plan.Settings, error)
}

// DashboardDeps holds dependencies for the dashboard projection.
type DashboardDeps struct {
	MemberStore   DashboardMemberStore
	FinanceStore  DashboardFinanceStore
	SettingsStore DashboardSettingsStore
	Now           func() time.Time
}

// DashboardSummary is the owner's at-a-glance view of the gym.
type DashboardSummary struct {
	TotalMembers     int
	ActiveMembers    int
	ExpiredMembers   int
	FrozenMembers    int
	InactiveMembers  int
	ArchivedMembers  int
	ExpiringSoon     int // active members with 7 days or fewer left
	CheckedInToday   int
	MonthRevenue     float64
	MonthDeductions  float64
	MonthNet         float64
	PlanDistribution map[string]int
	BackupOverdue    bool
}

// QueryDashboard aggregates membership, attendance and money figures
// for the current calendar month.
// PRE: stores are reachable
// POST: Returns a summary; archived members count only in their own bucket
func QueryDashboard(ctx context.Context, deps DashboardDeps) (DashboardSummary, error) {
	members, err := deps.MemberStore.ListAll(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}

	now := deps.Now()
	summary := DashboardSummary{PlanDistribution: make(map[string]int)}

	for _, m := range members {
		if m.IsArchived {
			summary.ArchivedMembers++
			continue
		}
		summary.TotalMembers++
		summary.PlanDistribution[m.Plan]++

		switch checkin.Resolve(m, now) {
		case checkin.StatusActive:
			summary.ActiveMembers++
			if m.RemainingDays(now) <= 7 {
				summary.ExpiringSoon++
			}
		case checkin.StatusExpired:
			summary.ExpiredMembers++
		case checkin.StatusFrozen:
			summary.FrozenMembers++
		case checkin.StatusInactive:
			summary.InactiveMembers++
		}
	}

	today := now.Format(member.DateLayout)
	summary.CheckedInToday, err = deps.MemberStore.CountAttendanceByDate(ctx, today)
	if err != nil {
		return DashboardSummary{}, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(member.DateLayout)
	summary.MonthRevenue, err = deps.FinanceStore.SumPaymentsBetween(ctx, monthStart, today)
	if err != nil {
		return DashboardSummary{}, err
	}
	summary.MonthDeductions, err = deps.FinanceStore.SumDeductionsBetween(ctx, monthStart, today)
	if err != nil {
		return DashboardSummary{}, err
	}
	summary.MonthNet = summary.MonthRevenue - summary.MonthDeductions

	settings, err := deps.SettingsStore.GetSettings(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	summary.BackupOverdue = settings.BackupOverdue(now)

	return summary, nil
}
