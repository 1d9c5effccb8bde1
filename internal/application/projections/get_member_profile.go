package projections

import (
	"context"
	"time"

	"gymdesk/internal/domain/checkin"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/payment"
)

// ProfileMemberStore defines the member lookup for the profile view.
type ProfileMemberStore interface {
	GetByID(ctx context.Context, id string) (member.Member, error)
}

// ProfilePaymentStore defines the payment listing for the profile view.
type ProfilePaymentStore interface {
	ListAllPayments(ctx context.Context) ([]payment.Payment, error)
}

// MemberProfileDeps holds dependencies for the member profile projection.
type MemberProfileDeps struct {
	MemberStore  ProfileMemberStore
	PaymentStore ProfilePaymentStore
	Now          func() time.Time
}

// MemberProfile is everything the desk shows when opening one member.
type MemberProfile struct {
	Member     member.Member
	Status     checkin.Status
	DaysLeft   int
	VisitCount int
	Payments   []payment.Payment
}

// QueryMemberProfile loads one member with derived status and their
// payment history.
// PRE: id resolves to a member
// POST: Status and DaysLeft are derived from the clock, never stored
func QueryMemberProfile(ctx context.Context, id string, deps MemberProfileDeps) (MemberProfile, error) {
	m, err := deps.MemberStore.GetByID(ctx, id)
	if err != nil {
		return MemberProfile{}, err
	}

	now := deps.Now()
	profile := MemberProfile{
		Member:     m,
		Status:     checkin.Resolve(m, now),
		DaysLeft:   m.RemainingDays(now),
		VisitCount: len(m.AttendanceHistory),
	}

	all, err := deps.PaymentStore.ListAllPayments(ctx)
	if err != nil {
		return MemberProfile{}, err
	}
	for _, p := range all {
		if p.MemberID == m.ID {
			profile.Payments = append(profile.Payments, p)
		}
	}
	return profile, nil
}
