package plan

import (
	"context"

	domain "gymdesk/internal/domain/plan"
)

// Store persists plan configs and the gym settings row.
type Store interface {
	GetConfig(ctx context.Context, name string) (domain.Config, error)
	SaveConfig(ctx context.Context, value domain.Config) error
	ListConfigs(ctx context.Context) ([]domain.Config, error)
	GetSettings(ctx context.Context) (domain.Settings, error)
	SaveSettings(ctx context.Context, value domain.Settings) error
}
