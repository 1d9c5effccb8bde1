package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"gymdesk/internal/domain/account"
	"gymdesk/internal/domain/audit"
)

// ArchiveMemberInput carries input for the archive orchestrator.
type ArchiveMemberInput struct {
	MemberID string
}

// ArchiveMemberDeps holds dependencies for Archive/Restore.
type ArchiveMemberDeps struct {
	MemberStore MemberStoreForRegister
	AuditStore  AuditRecorder // optional
	Actor       account.Account
}

// ExecuteArchiveMember moves a member out of the active roster without
// deleting their history.
// PRE: MemberID resolves to a member that is not archived
// POST: Member is archived; subscription fields are untouched
func ExecuteArchiveMember(ctx context.Context, input ArchiveMemberInput, deps ArchiveMemberDeps) error {
	if input.MemberID == "" {
		return errors.New("member ID is required")
	}

	m, err := deps.MemberStore.GetByID(ctx, input.MemberID)
	if err != nil {
		return err
	}

	if err := m.Archive(); err != nil {
		return err
	}
	if err := deps.MemberStore.Save(ctx, m); err != nil {
		return err
	}

	logAction(ctx, deps.AuditStore, deps.Actor, audit.ActionMemberArchived, m.Name)
	slog.Info("member_event", "event", "member_archived", "member_id", m.ID)
	return nil
}

// ExecuteRestoreMember returns an archived member to the roster. The
// subscription clock is untouched: a long-archived member comes back
// expired, not active.
// PRE: MemberID resolves to an archived member
// POST: Member is no longer archived
func ExecuteRestoreMember(ctx context.Context, input ArchiveMemberInput, deps ArchiveMemberDeps) error {
	if input.MemberID == "" {
		return errors.New("member ID is required")
	}

	m, err := deps.MemberStore.GetByID(ctx, input.MemberID)
	if err != nil {
		return err
	}

	if err := m.Restore(); err != nil {
		return err
	}
	if err := deps.MemberStore.Save(ctx, m); err != nil {
		return err
	}

	slog.Info("member_event", "event", "member_restored", "member_id", m.ID)
	return nil
}
