package orchestrators

import (
	"context"
	"log/slog"

	"gymdesk/internal/domain/account"
	"gymdesk/internal/domain/plan"
)

// ExecuteSeedOwner creates the initial owner account when the account
// table is empty. Idempotent: an existing account short-circuits.
// PRE: username and password are non-empty
// POST: At least one owner account exists
func ExecuteSeedOwner(ctx context.Context, deps CreateAccountDeps, username, password string) error {
	count, err := deps.AccountStore.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if _, err := ExecuteCreateAccount(ctx, CreateAccountInput{
		Username: username,
		Password: password,
		Role:     account.RoleOwner,
	}, deps); err != nil {
		return err
	}

	slog.Info("seed_event", "event", "owner_seeded", "username", username)
	return nil
}

// PlanStoreForSeed defines the plan store interface needed by SeedPlans.
type PlanStoreForSeed interface {
	ListConfigs(ctx context.Context) ([]plan.Config, error)
	SaveConfig(ctx context.Context, value plan.Config) error
}

// ExecuteSeedPlans installs the default plan catalogue when none is
// configured. Idempotent: any existing config short-circuits.
// POST: ListConfigs returns at least the default plans
func ExecuteSeedPlans(ctx context.Context, store PlanStoreForSeed) error {
	existing, err := store.ListConfigs(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, cfg := range plan.Defaults() {
		if err := store.SaveConfig(ctx, cfg); err != nil {
			return err
		}
	}

	slog.Info("seed_event", "event", "plans_seeded", "count", len(plan.Defaults()))
	return nil
}
