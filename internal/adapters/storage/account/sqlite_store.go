package account

import (
	"context"
	"database/sql"
	"fmt"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/account"
)

const accountColumns = "id, username, password_hash, role, can_manage_members, can_manage_checkin, can_manage_employees, can_view_reports, can_view_financials, can_manage_settings, can_manage_payments"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new account store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func scanAccount(scan func(...any) error) (domain.Account, error) {
	var a domain.Account
	var p [7]int
	err := scan(&a.ID, &a.Username, &a.PasswordHash, &a.Role,
		&p[0], &p[1], &p[2], &p[3], &p[4], &p[5], &p[6])
	if err != nil {
		return domain.Account{}, err
	}
	a.Permissions = domain.Permissions{
		ManageMembers:   p[0] != 0,
		ManageCheckIn:   p[1] != 0,
		ManageEmployees: p[2] != 0,
		ViewReports:     p[3] != 0,
		ViewFinancials:  p[4] != 0,
		ManageSettings:  p[5] != 0,
		ManagePayments:  p[6] != 0,
	}
	return a, nil
}

// GetByUsername retrieves an Account by username.
// PRE: username is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByUsername(ctx context.Context, username string) (domain.Account, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+accountColumns+" FROM account WHERE username = ?", username)
	a, err := scanAccount(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Account{}, fmt.Errorf("account not found: %w", err)
	}
	return a, err
}

// Save persists an Account to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, a domain.Account) error {
	query := `INSERT INTO account (` + accountColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			username=excluded.username, password_hash=excluded.password_hash,
			role=excluded.role,
			can_manage_members=excluded.can_manage_members,
			can_manage_checkin=excluded.can_manage_checkin,
			can_manage_employees=excluded.can_manage_employees,
			can_view_reports=excluded.can_view_reports,
			can_view_financials=excluded.can_view_financials,
			can_manage_settings=excluded.can_manage_settings,
			can_manage_payments=excluded.can_manage_payments`

	p := a.Permissions
	_, err := s.db.ExecContext(ctx, query,
		a.ID, a.Username, a.PasswordHash, a.Role,
		boolToInt(p.ManageMembers), boolToInt(p.ManageCheckIn), boolToInt(p.ManageEmployees),
		boolToInt(p.ViewReports), boolToInt(p.ViewFinancials), boolToInt(p.ManageSettings),
		boolToInt(p.ManagePayments))
	return err
}

// List retrieves all accounts ordered by username.
// PRE: none
// POST: Returns all accounts
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Account, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+accountColumns+" FROM account ORDER BY username")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		a, err := scanAccount(rows.Scan)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// Count returns the number of accounts.
// PRE: none
// POST: Returns the row count
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM account").Scan(&n)
	return n, err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
