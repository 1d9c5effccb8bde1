package audit

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/audit"
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

func TestSaveAndListRecentNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		entry := domain.Entry{
			ID:        fmt.Sprintf("LOG-%d", i),
			UserID:    "acc-1",
			Username:  "front",
			Role:      "reception",
			Action:    domain.ActionMemberCheckIn,
			Target:    fmt.Sprintf("عضو %d", i),
			Details:   "بواسطة front",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.Save(ctx, entry); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	entries, err := store.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != "LOG-2" || entries[1].ID != "LOG-1" {
		t.Errorf("expected newest first, got %s then %s", entries[0].ID, entries[1].ID)
	}
	if !entries[0].Timestamp.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("timestamp not round-tripped: %v", entries[0].Timestamp)
	}
}

func TestSaveTrimsToCap(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < domain.MaxEntries+3; i++ {
		entry := domain.Entry{
			ID:        fmt.Sprintf("LOG-%d", i),
			Username:  "front",
			Action:    domain.ActionMemberCheckIn,
			Timestamp: time.Now(),
		}
		if err := store.Save(ctx, entry); err != nil {
			t.Fatalf("Save %d: %v", i, err)
		}
	}

	entries, err := store.ListRecent(ctx, domain.MaxEntries+10)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(entries) != domain.MaxEntries {
		t.Fatalf("expected log trimmed to %d, got %d", domain.MaxEntries, len(entries))
	}
	// The oldest three entries were evicted.
	oldest := entries[len(entries)-1]
	if oldest.ID != "LOG-3" {
		t.Errorf("expected oldest surviving entry LOG-3, got %s", oldest.ID)
	}
}
