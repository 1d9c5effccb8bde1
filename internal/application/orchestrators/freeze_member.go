package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gymdesk/internal/domain/account"
	"gymdesk/internal/domain/audit"
	"gymdesk/internal/domain/member"
)

// FreezeMemberInput carries input for the freeze orchestrator.
type FreezeMemberInput struct {
	MemberID string
}

// FreezeMemberDeps holds dependencies for Freeze/Unfreeze.
type FreezeMemberDeps struct {
	MemberStore MemberStoreForRegister
	AuditStore  AuditRecorder // optional
	Actor       account.Account
	Now         func() time.Time
}

// ExecuteFreezeMember pauses a member's subscription clock, snapshotting
// the days still owed.
// PRE: MemberID resolves to a member that is not already frozen
// POST: Member is frozen with RemainingDaysAtFreeze captured
func ExecuteFreezeMember(ctx context.Context, input FreezeMemberInput, deps FreezeMemberDeps) (member.Member, error) {
	if input.MemberID == "" {
		return member.Member{}, errors.New("member ID is required")
	}

	m, err := deps.MemberStore.GetByID(ctx, input.MemberID)
	if err != nil {
		return member.Member{}, err
	}

	if err := m.Freeze(deps.Now()); err != nil {
		return member.Member{}, err
	}
	if err := deps.MemberStore.Save(ctx, m); err != nil {
		return member.Member{}, err
	}

	logAction(ctx, deps.AuditStore, deps.Actor, audit.ActionMemberFrozen, m.Name)
	slog.Info("member_event", "event", "member_frozen", "member_id", m.ID, "days_snapshot", m.RemainingDaysAtFreeze)
	return m, nil
}

// ExecuteUnfreezeMember resumes a frozen subscription, restoring the
// snapshotted days from today.
// PRE: MemberID resolves to a frozen member
// POST: Member is unfrozen with SubscriptionEnd recomputed from today
func ExecuteUnfreezeMember(ctx context.Context, input FreezeMemberInput, deps FreezeMemberDeps) (member.Member, error) {
	if input.MemberID == "" {
		return member.Member{}, errors.New("member ID is required")
	}

	m, err := deps.MemberStore.GetByID(ctx, input.MemberID)
	if err != nil {
		return member.Member{}, err
	}

	if err := m.Unfreeze(deps.Now()); err != nil {
		return member.Member{}, err
	}
	if err := deps.MemberStore.Save(ctx, m); err != nil {
		return member.Member{}, err
	}

	logAction(ctx, deps.AuditStore, deps.Actor, audit.ActionMemberUnfrozen, m.Name)
	slog.Info("member_event", "event", "member_unfrozen", "member_id", m.ID, "end", m.SubscriptionEnd)
	return m, nil
}
