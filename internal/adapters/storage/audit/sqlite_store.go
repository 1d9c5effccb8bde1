package audit

import (
	"context"
	"time"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/audit"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new activity-log store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save persists an activity-log entry and trims the log to the cap.
// PRE: entry has a unique id
// POST: Entry is persisted; at most MaxEntries rows remain
func (s *SQLiteStore) Save(ctx context.Context, e domain.Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO activity_log (id, user_id, username, role, action, target, details, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.Username, e.Role, e.Action, e.Target, e.Details,
		e.Timestamp.Format(time.RFC3339Nano))
	if err != nil {
		return err
	}

	// Keep only the newest MaxEntries rows.
	_, err = s.db.ExecContext(ctx,
		`DELETE FROM activity_log WHERE rowid NOT IN
			(SELECT rowid FROM activity_log ORDER BY rowid DESC LIMIT ?)`,
		domain.MaxEntries)
	return err
}

// ListRecent retrieves the newest entries, newest first.
// PRE: limit > 0
// POST: Returns up to limit entries
func (s *SQLiteStore) ListRecent(ctx context.Context, limit int) ([]domain.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, username, role, action, target, details, timestamp
		FROM activity_log ORDER BY rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var e domain.Entry
		var ts string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Username, &e.Role, &e.Action, &e.Target, &e.Details, &ts); err != nil {
			return nil, err
		}
		if parsed, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			e.Timestamp = parsed
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
