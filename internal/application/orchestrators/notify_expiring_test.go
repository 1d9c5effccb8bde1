package orchestrators

import (
	"context"
	"strings"
	"testing"
	"time"

	emailAdapter "gymdesk/internal/adapters/email"
	"gymdesk/internal/domain/member"
)

type recordingSender struct {
	sent []emailAdapter.SendRequest
}

func (s *recordingSender) Send(_ context.Context, req emailAdapter.SendRequest) (emailAdapter.SendResult, error) {
	s.sent = append(s.sent, req)
	return emailAdapter.SendResult{MessageID: "msg-1", SentAt: time.Now()}, nil
}

func (s *recordingSender) SendBatch(_ context.Context, reqs []emailAdapter.SendRequest) ([]emailAdapter.SendResult, error) {
	s.sent = append(s.sent, reqs...)
	return make([]emailAdapter.SendResult, len(reqs)), nil
}

func TestExecuteNotifyExpiring(t *testing.T) {
	soon := activeMember() // M1
	soon.Email = "soon@example.com"
	soon.SubscriptionEnd = "2026-03-13" // 4 days left

	far := activeMember()
	far.ID, far.Phone = "M2", "0502222222"
	far.Email = "far@example.com"
	far.SubscriptionEnd = "2026-05-01"

	noEmail := activeMember()
	noEmail.ID, noEmail.Phone = "M3", "0503333333"
	noEmail.SubscriptionEnd = "2026-03-12"

	expired := activeMember()
	expired.ID, expired.Phone = "M4", "0504444444"
	expired.Email = "expired@example.com"
	expired.SubscriptionEnd = "2026-03-01"

	frozen := activeMember()
	frozen.ID, frozen.Phone = "M5", "0505555555"
	frozen.Email = "frozen@example.com"
	frozen.SubscriptionEnd = "2026-03-12"
	frozen.IsFrozen = true

	sender := &recordingSender{}
	deps := NotifyExpiringDeps{
		MemberStore: newMockMemberStore(soon, far, noEmail, expired, frozen),
		EmailSender: sender,
		FromAddress: "Gym <noreply@example.com>",
		Now:         func() time.Time { return time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC) },
	}

	count, err := ExecuteNotifyExpiring(context.Background(), deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one reminder, got %d", count)
	}
	req := sender.sent[0]
	if req.To[0] != "soon@example.com" {
		t.Errorf("recipient = %v", req.To)
	}
	if !strings.Contains(req.HTML, "<strong>") || !strings.Contains(req.HTML, "2026-03-13") {
		t.Errorf("body should be rendered HTML with the end date, got %q", req.HTML)
	}
}

func TestExecuteNotifyExpiringSkipsArchived(t *testing.T) {
	m := activeMember()
	m.Email = "archived@example.com"
	m.SubscriptionEnd = "2026-03-12"
	m.IsArchived = true

	sender := &recordingSender{}
	deps := NotifyExpiringDeps{
		MemberStore: newMockMemberStore(m),
		EmailSender: sender,
		Now:         func() time.Time { return time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC) },
	}

	count, err := ExecuteNotifyExpiring(context.Background(), deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 0 || len(sender.sent) != 0 {
		t.Error("archived members must never be emailed")
	}
}

func TestReminderBodyMentionsMemberAndPlan(t *testing.T) {
	m := member.Member{Name: "Ahmed", Plan: "خطة شهرية", SubscriptionEnd: "2026-03-13"}
	html, err := reminderBody(m, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Ahmed", "خطة شهرية", "2026-03-13"} {
		if !strings.Contains(html, want) {
			t.Errorf("body missing %q", want)
		}
	}
}
