package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"gymdesk/internal/domain/account"
	"gymdesk/internal/domain/audit"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/payment"
	"gymdesk/internal/domain/plan"
)

// ErrMemberExists is returned when registering a member with an id
// that is already taken.
var ErrMemberExists = errors.New("member id is already registered")

// MemberStoreForRegister defines the store interface needed by RegisterMember.
type MemberStoreForRegister interface {
	GetByID(ctx context.Context, id string) (member.Member, error)
	Save(ctx context.Context, m member.Member) error
}

// PlanStoreForRegister defines the plan-config lookup needed by
// registration and renewal.
type PlanStoreForRegister interface {
	GetConfig(ctx context.Context, name string) (plan.Config, error)
}

// PaymentRecorder defines the payment side of the money ledger needed
// by registration and renewal.
type PaymentRecorder interface {
	SavePayment(ctx context.Context, p payment.Payment) error
}

// AuditRecorder defines the activity-log interface shared by the
// lifecycle orchestrators.
type AuditRecorder interface {
	Save(ctx context.Context, entry audit.Entry) error
}

// RegisterMemberInput carries input for the registration orchestrator.
type RegisterMemberInput struct {
	ID          string // card / membership number, assigned at the desk
	Name        string
	Email       string
	Phone       string
	PlanName    string
	StartDate   string // YYYY-MM-DD, defaults to today when empty
	AmountPaid  float64
	InitialDebt float64
	Notes       string
}

// RegisterMemberDeps holds dependencies for RegisterMember.
type RegisterMemberDeps struct {
	MemberStore  MemberStoreForRegister
	PlanStore    PlanStoreForRegister
	PaymentStore PaymentRecorder
	AuditStore   AuditRecorder // optional
	Actor        account.Account
	Now          func() time.Time
}

// ExecuteRegisterMember creates a member with a fresh subscription and
// records the opening payment.
// PRE: ID, Name and PlanName are non-empty; ID is not already taken
// POST: Member saved active with SubscriptionEnd derived from the plan;
// a SUBSCRIPTION payment exists when AmountPaid > 0
func ExecuteRegisterMember(ctx context.Context, input RegisterMemberInput, deps RegisterMemberDeps) (member.Member, error) {
	if strings.TrimSpace(input.ID) == "" {
		return member.Member{}, errors.New("member ID is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return member.Member{}, errors.New("member name is required")
	}

	if _, err := deps.MemberStore.GetByID(ctx, input.ID); err == nil {
		return member.Member{}, ErrMemberExists
	}

	cfg, err := deps.PlanStore.GetConfig(ctx, input.PlanName)
	if err != nil {
		return member.Member{}, err
	}

	now := deps.Now()
	start := now
	if input.StartDate != "" {
		start, err = time.Parse(member.DateLayout, input.StartDate)
		if err != nil {
			return member.Member{}, errors.New("start date must be YYYY-MM-DD")
		}
	}

	m := member.Member{
		ID:              strings.TrimSpace(input.ID),
		Name:            strings.TrimSpace(input.Name),
		Email:           strings.TrimSpace(input.Email),
		Phone:           strings.TrimSpace(input.Phone),
		JoinDate:        start.Format(member.DateLayout),
		Plan:            cfg.Name,
		SubscriptionEnd: cfg.EndDateFrom(start),
		IsActive:        true,
		TotalDebt:       input.InitialDebt,
		Notes:           input.Notes,
	}
	if err := m.Validate(); err != nil {
		return member.Member{}, err
	}
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

	logAction(ctx, deps.AuditStore, deps.Actor, audit.ActionMemberRegistered, m.Name)
	slog.Info("member_event", "event", "member_registered", "member_id", m.ID, "plan", m.Plan, "end", m.SubscriptionEnd)
	return m, nil
}

// logAction writes an activity-log entry for the actor, skipping
// silently when no audit store is wired.
func logAction(ctx context.Context, store AuditRecorder, actor account.Account, action, target string) {
	if store == nil {
		return
	}
	entry := audit.NewEntry(actor.ID, actor.Username, actor.Role, action, target, "بواسطة "+actor.Username)
	if err := store.Save(ctx, entry); err != nil {
		slog.Error("member_event", "event", "audit_log_failed", "action", action, "error", err.Error())
	}
}
