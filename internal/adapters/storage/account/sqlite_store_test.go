package account

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/account"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("init db: %v", err)
	}
	return NewSQLiteStore(db)
}

func TestSaveAndGetByUsername(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	acc := domain.Account{
		ID:       "acc-1",
		Username: "front",
		Role:     domain.RoleReception,
		Permissions: domain.Permissions{
			ManageMembers: true,
			ManageCheckIn: true,
			ViewReports:   true,
		},
	}
	if err := acc.SetPassword("desk123"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if err := store.Save(ctx, acc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.GetByUsername(ctx, "front")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if got.ID != "acc-1" || got.Role != domain.RoleReception {
		t.Errorf("unexpected account: %+v", got)
	}
	if err := got.CheckPassword("desk123"); err != nil {
		t.Errorf("password hash did not round-trip: %v", err)
	}
	if !got.Permissions.ManageCheckIn || got.Permissions.ManageSettings {
		t.Errorf("permissions did not round-trip: %+v", got.Permissions)
	}
}

func TestGetByUsernameMissing(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.GetByUsername(context.Background(), "ghost"); err == nil {
		t.Error("expected error for unknown username")
	}
}

func TestSaveUpdatesExistingAccount(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	acc := domain.Account{ID: "acc-1", Username: "front", Role: domain.RoleReception}
	if err := store.Save(ctx, acc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	acc.Permissions.ViewFinancials = true
	if err := store.Save(ctx, acc); err != nil {
		t.Fatalf("Save update: %v", err)
	}

	got, err := store.GetByUsername(ctx, "front")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if !got.Permissions.ViewFinancials {
		t.Error("expected updated permission flag")
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 account, got %d", n)
	}
}

func TestListReturnsAllAccounts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, a := range []domain.Account{
		{ID: "acc-1", Username: "owner", Role: domain.RoleOwner},
		{ID: "acc-2", Username: "front", Role: domain.RoleReception},
	} {
		if err := store.Save(ctx, a); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	accounts, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
}
