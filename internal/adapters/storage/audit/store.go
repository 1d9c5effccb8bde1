package audit

import (
	"context"

	domain "gymdesk/internal/domain/audit"
)

// Store persists activity-log entries.
type Store interface {
	Save(ctx context.Context, entry domain.Entry) error
	ListRecent(ctx context.Context, limit int) ([]domain.Entry, error)
}
