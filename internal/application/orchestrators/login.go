package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"gymdesk/internal/domain/account"
)

// ErrInvalidCredentials is returned for a bad username or password.
// The two cases are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AccountStoreForLogin defines the store interface needed by Login.
type AccountStoreForLogin interface {
	GetByUsername(ctx context.Context, username string) (account.Account, error)
}

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	Username string
	Password string
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	AccountStore AccountStoreForLogin
}

// ExecuteLogin authenticates a reception or owner account.
// PRE: Username and Password are non-empty
// POST: Returns the account on success; ErrInvalidCredentials otherwise
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (account.Account, error) {
	if input.Username == "" || input.Password == "" {
		return account.Account{}, ErrInvalidCredentials
	}

	acct, err := deps.AccountStore.GetByUsername(ctx, input.Username)
	if err != nil {
		slog.Info("auth_event", "event", "login_failed", "username", input.Username)
		return account.Account{}, ErrInvalidCredentials
	}

	if err := acct.CheckPassword(input.Password); err != nil {
		slog.Info("auth_event", "event", "login_failed", "username", input.Username)
		return account.Account{}, ErrInvalidCredentials
	}

	slog.Info("auth_event", "event", "login_succeeded", "username", acct.Username, "role", acct.Role)
	return acct, nil
}
