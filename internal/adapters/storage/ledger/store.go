package ledger

import (
	"context"

	"gymdesk/internal/domain/checkin"
)

// Store persists the day-scoped session ledger. Every mutation is
// written through immediately; stale entries from prior days are
// discarded on load.
type Store interface {
	Append(ctx context.Context, entry checkin.LedgerEntry) error
	Delete(ctx context.Context, id string) error
	ListByDate(ctx context.Context, date string) ([]checkin.LedgerEntry, error)
	DeleteOtherDates(ctx context.Context, date string) (int, error)
}
