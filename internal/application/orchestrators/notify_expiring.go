package orchestrators

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/yuin/goldmark"

	emailAdapter "gymdesk/internal/adapters/email"
	"gymdesk/internal/domain/checkin"
	"gymdesk/internal/domain/member"
)

// ExpiryReminderDays is how far ahead the reminder looks.
const ExpiryReminderDays = 7

// MemberListerForReminders defines the member listing needed by the
// reminder orchestrator.
type MemberListerForReminders interface {
	ListAll(ctx context.Context) ([]member.Member, error)
}

// NotifyExpiringDeps holds dependencies for NotifyExpiring.
type NotifyExpiringDeps struct {
	MemberStore MemberListerForReminders
	EmailSender emailAdapter.Sender
	FromAddress string
	ReplyTo     string
	Now         func() time.Time
}

// ExecuteNotifyExpiring emails every active member whose subscription
// ends within the reminder window. Members without an email address,
// frozen members and archived members are skipped.
// PRE: EmailSender is configured
// POST: One reminder sent per qualifying member; returns the send count
func ExecuteNotifyExpiring(ctx context.Context, deps NotifyExpiringDeps) (int, error) {
	members, err := deps.MemberStore.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	now := deps.Now()
	var reqs []emailAdapter.SendRequest
	for _, m := range members {
		if m.IsArchived || m.Email == "" {
			continue
		}
		if checkin.Resolve(m, now) != checkin.StatusActive {
			continue
		}
		days := m.RemainingDays(now)
		if days > ExpiryReminderDays {
			continue
		}

		html, err := reminderBody(m, days)
		if err != nil {
			slog.Error("reminder_event", "event", "body_render_failed", "member_id", m.ID, "error", err.Error())
			continue
		}
		reqs = append(reqs, emailAdapter.SendRequest{
			To:      []string{m.Email},
			From:    deps.FromAddress,
			Subject: fmt.Sprintf("تذكير: اشتراكك ينتهي خلال %d يوم", days),
			HTML:    html,
			ReplyTo: deps.ReplyTo,
		})
	}

	if len(reqs) == 0 {
		return 0, nil
	}

	if _, err := deps.EmailSender.SendBatch(ctx, reqs); err != nil {
		return 0, err
	}

	slog.Info("reminder_event", "event", "expiry_reminders_sent", "count", len(reqs))
	return len(reqs), nil
}

// reminderBody renders the reminder email. The template is authored in
// markdown and converted to HTML for the provider.
func reminderBody(m member.Member, days int) (string, error) {
	md := fmt.Sprintf(`# مرحباً %s

اشتراكك في **%s** ينتهي بتاريخ %s — متبقي **%d** يوم.

جدّد اشتراكك في الاستقبال لتجنب انقطاع الدخول.
`, m.Name, m.Plan, m.SubscriptionEnd, days)

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ReminderProcessor runs the expiry-reminder sweep on a schedule.
type ReminderProcessor struct {
	deps NotifyExpiringDeps
}

// NewReminderProcessor creates a reminder processor.
func NewReminderProcessor(deps NotifyExpiringDeps) *ReminderProcessor {
	return &ReminderProcessor{deps: deps}
}

// Run performs one reminder sweep.
func (p *ReminderProcessor) Run(ctx context.Context) error {
	_, err := ExecuteNotifyExpiring(ctx, p.deps)
	return err
}

// StartReminderWorker starts a background goroutine that periodically
// sends expiry reminders.
// PRE: stopCh is provided to signal shutdown
// POST: Worker runs until stopCh is closed
func StartReminderWorker(processor *ReminderProcessor, interval time.Duration, stopCh <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
				if err := processor.Run(ctx); err != nil {
					slog.Error("reminder_background_sweep_failed", "error", err.Error())
				}
				cancel()
			case <-stopCh:
				slog.Info("reminder_background_worker_stopped")
				return
			}
		}
	}()
}
