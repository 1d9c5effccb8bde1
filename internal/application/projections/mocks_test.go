package projections

import (
	"context"
	"errors"
	"time"

	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/payment"
	"gymdesk/internal/domain/plan"
)

var projClock = time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)

func projNow() time.Time { return projClock }

type fakeMemberStore struct {
	members    []member.Member
	countToday int
}

func (s *fakeMemberStore) ListAll(_ context.Context) ([]member.Member, error) {
	return s.members, nil
}

func (s *fakeMemberStore) GetByID(_ context.Context, id string) (member.Member, error) {
	for _, m := range s.members {
		if m.ID == id {
			return m, nil
		}
	}
	return member.Member{}, errors.New("not found")
}

func (s *fakeMemberStore) CountAttendanceByDate(_ context.Context, _ string) (int, error) {
	return s.countToday, nil
}

type fakeFinanceStore struct {
	payments   []payment.Payment
	deductions []payment.Deduction
}

func (s *fakeFinanceStore) ListPaymentsByDate(_ context.Context, date string) ([]payment.Payment, error) {
	var out []payment.Payment
	for _, p := range s.payments {
		if p.Date == date {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakeFinanceStore) ListAllPayments(_ context.Context) ([]payment.Payment, error) {
	return s.payments, nil
}

func (s *fakeFinanceStore) ListDeductionsByDate(_ context.Context, date string) ([]payment.Deduction, error) {
	var out []payment.Deduction
	for _, d := range s.deductions {
		if d.Date == date {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *fakeFinanceStore) SumPaymentsBetween(_ context.Context, start, end string) (float64, error) {
	var sum float64
	for _, p := range s.payments {
		if p.Date >= start && p.Date <= end {
			sum += p.Amount
		}
	}
	return sum, nil
}

func (s *fakeFinanceStore) SumDeductionsBetween(_ context.Context, start, end string) (float64, error) {
	var sum float64
	for _, d := range s.deductions {
		if d.Date >= start && d.Date <= end {
			sum += d.Amount
		}
	}
	return sum, nil
}

type fakeSettingsStore struct {
	settings plan.Settings
}

func (s *fakeSettingsStore) GetSettings(_ context.Context) (plan.Settings, error) {
	return s.settings, nil
}
