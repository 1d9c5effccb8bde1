package ledger

import (
	"context"

	"gymdesk/internal/adapters/storage"
	"gymdesk/internal/domain/checkin"
)

const ledgerColumns = "id, attendance_id, target_id, target_name, plan_or_role, date, time, status, has_debt, target_type"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new session-ledger store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Append persists a new ledger entry.
// PRE: entry has been validated
// POST: Entry is persisted
func (s *SQLiteStore) Append(ctx context.Context, e checkin.LedgerEntry) error {
	hasDebt := 0
	if e.HasDebt {
		hasDebt = 1
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO checkin_ledger ("+ledgerColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		e.ID, e.AttendanceID, e.TargetID, e.TargetName, e.PlanOrRole,
		e.Date, e.Time, string(e.Status), hasDebt, e.Type)
	return err
}

// Delete removes a ledger entry by id.
// PRE: id is non-empty
// POST: Matching entry, if any, is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM checkin_ledger WHERE id = ?", id)
	return err
}

// ListByDate retrieves all entries for a calendar day, newest first.
// PRE: date is YYYY-MM-DD
// POST: Returns entries in reverse insertion order
func (s *SQLiteStore) ListByDate(ctx context.Context, date string) ([]checkin.LedgerEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+ledgerColumns+" FROM checkin_ledger WHERE date = ? ORDER BY rowid DESC", date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []checkin.LedgerEntry
	for rows.Next() {
		var e checkin.LedgerEntry
		var status string
		var hasDebt int
		if err := rows.Scan(&e.ID, &e.AttendanceID, &e.TargetID, &e.TargetName,
			&e.PlanOrRole, &e.Date, &e.Time, &status, &hasDebt, &e.Type); err != nil {
			return nil, err
		}
		e.Status = checkin.Status(status)
		e.HasDebt = hasDebt != 0
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteOtherDates prunes every entry not belonging to the given day.
// PRE: date is YYYY-MM-DD
// POST: Returns the number of pruned entries
func (s *SQLiteStore) DeleteOtherDates(ctx context.Context, date string) (int, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM checkin_ledger WHERE date != ?", date)
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	return int(n), err
}
