package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"gymdesk/internal/domain/account"
	"gymdesk/internal/domain/audit"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/payment"
)

// RenewSubscriptionInput carries input for the renewal orchestrator.
type RenewSubscriptionInput struct {
	MemberID   string
	PlanName   string // empty keeps the current plan
	AmountPaid float64
}

// RenewSubscriptionDeps holds dependencies for RenewSubscription.
type RenewSubscriptionDeps struct {
	MemberStore  MemberStoreForRegister
	PlanStore    PlanStoreForRegister
	PaymentStore PaymentRecorder
	AuditStore   AuditRecorder // optional
	Actor        account.Account
	Now          func() time.Time
}

// ExecuteRenewSubscription extends a member's subscription by one plan
// period. A renewal while the current window is still running starts
// the day after the current end; an expired member restarts today.
// PRE: MemberID is non-empty and resolves to a member
// POST: Member is active and unfrozen with the new SubscriptionEnd;
// a SUBSCRIPTION payment exists when AmountPaid > 0
func ExecuteRenewSubscription(ctx context.Context, input RenewSubscriptionInput, deps RenewSubscriptionDeps) (member.Member, error) {
	if input.MemberID == "" {
		return member.Member{}, errors.New("member ID is required")
	}

	m, err := deps.MemberStore.GetByID(ctx, input.MemberID)
	if err != nil {
		return member.Member{}, err
	}

	planName := input.PlanName
	if planName == "" {
		planName = m.Plan
	}
	cfg, err := deps.PlanStore.GetConfig(ctx, planName)
	if err != nil {
		return member.Member{}, err
	}

	now := deps.Now()
	start := now
	if m.RemainingDays(now) > 0 {
		if end, perr := time.Parse(member.DateLayout, m.SubscriptionEnd); perr == nil {
			start = end.AddDate(0, 0, 1)
		}
	}

	m.Plan = cfg.Name
	m.SubscriptionEnd = cfg.EndDateFrom(start)
	m.IsActive = true
	m.IsFrozen = false
	m.RemainingDaysAtFreeze = 0
	if err := deps.MemberStore.Save(ctx, m); err != nil {
		return member.Member{}, err
	}

	if input.AmountPaid > 0 {
		p := payment.Payment{
			ID:         uuid.New().String(),
			MemberID:   m.ID,
			MemberName: m.Name,
			Amount:     input.AmountPaid,
			Date:       now.Format(member.DateLayout),
			Type:       payment.TypeSubscription,
			RecordedBy: deps.Actor.Username,
		}
		if err := deps.PaymentStore.SavePayment(ctx, p); err != nil {
			return member.Member{}, err
		}
	}

	logAction(ctx, deps.AuditStore, deps.Actor, audit.ActionMemberRenewed, m.Name)
	slog.Info("member_event", "event", "subscription_renewed", "member_id", m.ID, "plan", m.Plan, "end", m.SubscriptionEnd)
	return m, nil
}
