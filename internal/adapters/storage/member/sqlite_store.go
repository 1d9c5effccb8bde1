package member

import (
	"context"
	"database/sql"
	"fmt"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/member"
)

const memberColumns = "id, name, email, phone, join_date, plan, subscription_end, is_active, is_frozen, is_archived, remaining_days_at_freeze, last_freeze_date, notes, total_debt"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new member store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func scanMember(scan func(...any) error) (domain.Member, error) {
	var m domain.Member
	var active, frozen, archived int
	err := scan(
		&m.ID, &m.Name, &m.Email, &m.Phone, &m.JoinDate, &m.Plan, &m.SubscriptionEnd,
		&active, &frozen, &archived, &m.RemainingDaysAtFreeze, &m.LastFreezeDate,
		&m.Notes, &m.TotalDebt,
	)
	if err != nil {
		return domain.Member{}, err
	}
	m.IsActive = active != 0
	m.IsFrozen = frozen != 0
	m.IsArchived = archived != 0
	return m, nil
}

// GetByID retrieves a Member by its ID, including attendance history
// newest-first.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Member, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+memberColumns+" FROM member WHERE id = ?", id)
	m, err := scanMember(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Member{}, fmt.Errorf("member not found: %w", err)
	}
	if err != nil {
		return domain.Member{}, err
	}

	history, err := s.listAttendance(ctx, id)
	if err != nil {
		return domain.Member{}, err
	}
	m.AttendanceHistory = history
	return m, nil
}

// Save persists a Member row to the database. Attendance history is
// managed separately through AppendAttendance and DeleteAttendance.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, m domain.Member) error {
	query := `INSERT INTO member (` + memberColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name=excluded.name, email=excluded.email, phone=excluded.phone,
			join_date=excluded.join_date, plan=excluded.plan,
			subscription_end=excluded.subscription_end, is_active=excluded.is_active,
			is_frozen=excluded.is_frozen, is_archived=excluded.is_archived,
			remaining_days_at_freeze=excluded.remaining_days_at_freeze,
			last_freeze_date=excluded.last_freeze_date, notes=excluded.notes,
			total_debt=excluded.total_debt`

	_, err := s.db.ExecContext(ctx, query,
		m.ID, m.Name, m.Email, m.Phone, m.JoinDate, m.Plan, m.SubscriptionEnd,
		boolToInt(m.IsActive), boolToInt(m.IsFrozen), boolToInt(m.IsArchived),
		m.RemainingDaysAtFreeze, m.LastFreezeDate, m.Notes, m.TotalDebt,
	)
	return err
}

// Delete removes a Member and their attendance history.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM member_attendance WHERE member_id = ?", id); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, "DELETE FROM member WHERE id = ?", id)
	return err
}

// ListAll retrieves every member, archived included, with attendance
// history hydrated newest-first.
// PRE: none
// POST: Returns all members
func (s *SQLiteStore) ListAll(ctx context.Context) ([]domain.Member, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+memberColumns+" FROM member ORDER BY join_date, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	byID := make(map[string]int)
	for rows.Next() {
		m, err := scanMember(rows.Scan)
		if err != nil {
			return nil, err
		}
		byID[m.ID] = len(members)
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Hydrate attendance in one pass, newest entries first.
	attRows, err := s.db.QueryContext(ctx, "SELECT id, member_id, date, time FROM member_attendance ORDER BY rowid DESC")
	if err != nil {
		return nil, err
	}
	defer attRows.Close()
	for attRows.Next() {
		var entry domain.AttendanceEntry
		var memberID string
		if err := attRows.Scan(&entry.ID, &memberID, &entry.Date, &entry.Time); err != nil {
			return nil, err
		}
		if i, ok := byID[memberID]; ok {
			members[i].AttendanceHistory = append(members[i].AttendanceHistory, entry)
		}
	}
	return members, attRows.Err()
}

// AppendAttendance records a new permanent check-in for a member.
// PRE: entry has a unique id
// POST: Entry is the newest attendance record for the member
func (s *SQLiteStore) AppendAttendance(ctx context.Context, memberID string, entry domain.AttendanceEntry) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO member_attendance (id, member_id, date, time) VALUES (?, ?, ?, ?)",
		entry.ID, memberID, entry.Date, entry.Time)
	return err
}

// DeleteAttendance removes a single attendance record by its id.
// PRE: memberID and attendanceID are non-empty
// POST: Matching record, if any, is removed
func (s *SQLiteStore) DeleteAttendance(ctx context.Context, memberID string, attendanceID string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM member_attendance WHERE member_id = ? AND id = ?",
		memberID, attendanceID)
	return err
}

// CountAttendanceByDate counts member check-ins on a calendar day.
// PRE: date is YYYY-MM-DD
// POST: Returns the number of records for that date
func (s *SQLiteStore) CountAttendanceByDate(ctx context.Context, date string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM member_attendance WHERE date = ?", date).Scan(&n)
	return n, err
}

func (s *SQLiteStore) listAttendance(ctx context.Context, memberID string) ([]domain.AttendanceEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, date, time FROM member_attendance WHERE member_id = ? ORDER BY rowid DESC", memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.AttendanceEntry
	for rows.Next() {
		var e domain.AttendanceEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.Time); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
