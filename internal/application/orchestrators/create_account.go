package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"gymdesk/internal/domain/account"
)

// ErrUsernameTaken is returned when creating an account with a
// username that already exists.
var ErrUsernameTaken = errors.New("an account with this username already exists")

// AccountStoreForCreate defines the store interface needed by CreateAccount.
type AccountStoreForCreate interface {
	GetByUsername(ctx context.Context, username string) (account.Account, error)
	Save(ctx context.Context, a account.Account) error
	Count(ctx context.Context) (int, error)
}

// CreateAccountInput carries input for the orchestrator.
type CreateAccountInput struct {
	Username string
	Password string
	Role     string
}

// CreateAccountDeps holds dependencies for CreateAccount.
type CreateAccountDeps struct {
	AccountStore AccountStoreForCreate
}

// ExecuteCreateAccount coordinates account creation. Permissions are
// derived from the role; owners get everything, reception a fixed
// front-desk subset.
// PRE: Username and Password non-empty, Role valid
// POST: Account created with hashed password
// INVARIANT: Username must be unique
func ExecuteCreateAccount(ctx context.Context, input CreateAccountInput, deps CreateAccountDeps) (string, error) {
	if input.Username == "" {
		return "", errors.New("username cannot be empty")
	}
	if input.Password == "" {
		return "", errors.New("password cannot be empty")
	}

	_, err := deps.AccountStore.GetByUsername(ctx, input.Username)
	if err == nil {
		return "", ErrUsernameTaken
	}

	acct := account.Account{
		ID:       uuid.New().String(),
		Username: input.Username,
		Role:     input.Role,
	}
	switch input.Role {
	case account.RoleOwner:
		acct.Permissions = account.OwnerPermissions()
	case account.RoleReception:
		acct.Permissions = account.ReceptionPermissions()
	}

	if err := acct.Validate(); err != nil {
		return "", err
	}
	if err := acct.SetPassword(input.Password); err != nil {
		return "", err
	}
	if err := deps.AccountStore.Save(ctx, acct); err != nil {
		return "", err
	}

	slog.Info("auth_event", "event", "account_created", "username", input.Username, "role", input.Role)
	return acct.ID, nil
}

// ChangePasswordInput carries input for the password-change orchestrator.
type ChangePasswordInput struct {
	Username        string
	CurrentPassword string
	NewPassword     string
}

// ExecuteChangePassword rotates an account password after verifying
// the current one.
// PRE: Current password matches the stored hash
// POST: New password hash persisted
func ExecuteChangePassword(ctx context.Context, input ChangePasswordInput, deps CreateAccountDeps) error {
	acct, err := deps.AccountStore.GetByUsername(ctx, input.Username)
	if err != nil {
		return ErrInvalidCredentials
	}
	if err := acct.CheckPassword(input.CurrentPassword); err != nil {
		return ErrInvalidCredentials
	}
	if err := acct.SetPassword(input.NewPassword); err != nil {
		return err
	}
	if err := deps.AccountStore.Save(ctx, acct); err != nil {
		return err
	}

	slog.Info("auth_event", "event", "password_changed", "username", acct.Username)
	return nil
}
