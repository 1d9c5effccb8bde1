package plan

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/plan"
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

func TestSaveAndGetConfig(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	c := domain.Config{Name: domain.Monthly, Price: 400, DurationMonths: 1, Rank: 2}
	if err := store.SaveConfig(ctx, c); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	got, err := store.GetConfig(ctx, domain.Monthly)
	if err != nil {
		t.Fatalf("GetConfig: %v", err)
	}
	if got.Price != 400 || got.DurationMonths != 1 {
		t.Errorf("unexpected config: %+v", got)
	}

	// Saving the same name again updates in place.
	c.Price = 450
	if err := store.SaveConfig(ctx, c); err != nil {
		t.Fatalf("SaveConfig update: %v", err)
	}
	got, err = store.GetConfig(ctx, domain.Monthly)
	if err != nil {
		t.Fatalf("GetConfig after update: %v", err)
	}
	if got.Price != 450 {
		t.Errorf("expected updated price 450, got %v", got.Price)
	}
}

func TestGetConfigMissing(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.GetConfig(context.Background(), "nope"); err == nil {
		t.Error("expected error for unknown plan")
	}
}

func TestListConfigsOrderedByRank(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, c := range []domain.Config{
		{Name: "c", Price: 3, Rank: 3},
		{Name: "a", Price: 1, Rank: 1},
		{Name: "b", Price: 2, Rank: 2},
	} {
		if err := store.SaveConfig(ctx, c); err != nil {
			t.Fatalf("SaveConfig %s: %v", c.Name, err)
		}
	}

	configs, err := store.ListConfigs(ctx)
	if err != nil {
		t.Fatalf("ListConfigs: %v", err)
	}
	if len(configs) != 3 {
		t.Fatalf("expected 3 configs, got %d", len(configs))
	}
	for i, want := range []string{"a", "b", "c"} {
		if configs[i].Name != want {
			t.Errorf("position %d: expected %s, got %s", i, want, configs[i].Name)
		}
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Unsaved settings read back as the zero value.
	got, err := store.GetSettings(ctx)
	if err != nil {
		t.Fatalf("GetSettings empty: %v", err)
	}
	if got != (domain.Settings{}) {
		t.Errorf("expected zero settings, got %+v", got)
	}

	v := domain.Settings{GymName: "Ka3ood GYM", AbsenceDeduction: 100, HalfDayDeduction: 50, LastBackupDate: "2026-03-01"}
	if err := store.SaveSettings(ctx, v); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	v.AbsenceDeduction = 120
	if err := store.SaveSettings(ctx, v); err != nil {
		t.Fatalf("SaveSettings update: %v", err)
	}

	got, err = store.GetSettings(ctx)
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if got.AbsenceDeduction != 120 || got.GymName != "Ka3ood GYM" {
		t.Errorf("settings did not round-trip: %+v", got)
	}
}
