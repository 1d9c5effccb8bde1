package plan

import (
	"context"
	"database/sql"
	"fmt"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/plan"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new plan store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetConfig retrieves a plan config by name.
// PRE: name is non-empty
// POST: Returns the config or an error if not found
func (s *SQLiteStore) GetConfig(ctx context.Context, name string) (domain.Config, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT name, price, duration_months, duration_days, rank FROM plan_config WHERE name = ?", name)
	var c domain.Config
	err := row.Scan(&c.Name, &c.Price, &c.DurationMonths, &c.DurationDays, &c.Rank)
	if err == sql.ErrNoRows {
		return domain.Config{}, fmt.Errorf("plan config not found: %w", err)
	}
	return c, err
}

// SaveConfig persists a plan config.
// PRE: config has been validated
// POST: Config is persisted (insert or update)
func (s *SQLiteStore) SaveConfig(ctx context.Context, c domain.Config) error {
	query := `INSERT INTO plan_config (name, price, duration_months, duration_days, rank)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			price=excluded.price, duration_months=excluded.duration_months,
			duration_days=excluded.duration_days, rank=excluded.rank`

	_, err := s.db.ExecContext(ctx, query, c.Name, c.Price, c.DurationMonths, c.DurationDays, c.Rank)
	return err
}

// ListConfigs retrieves all plan configs ordered by rank.
// PRE: none
// POST: Returns all configs
func (s *SQLiteStore) ListConfigs(ctx context.Context) ([]domain.Config, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name, price, duration_months, duration_days, rank FROM plan_config ORDER BY rank")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []domain.Config
	for rows.Next() {
		var c domain.Config
		if err := rows.Scan(&c.Name, &c.Price, &c.DurationMonths, &c.DurationDays, &c.Rank); err != nil {
			return nil, err
		}
		configs = append(configs, c)
	}
	return configs, rows.Err()
}

// GetSettings retrieves the singleton settings row, returning zero
// settings when none has been saved yet.
// PRE: none
// POST: Returns the settings
func (s *SQLiteStore) GetSettings(ctx context.Context) (domain.Settings, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT gym_name, absence_deduction, half_day_deduction, last_backup_date FROM settings WHERE id = 1")
	var v domain.Settings
	err := row.Scan(&v.GymName, &v.AbsenceDeduction, &v.HalfDayDeduction, &v.LastBackupDate)
	if err == sql.ErrNoRows {
		return domain.Settings{}, nil
	}
	return v, err
}

// SaveSettings persists the singleton settings row.
// PRE: none
// POST: Settings row is persisted (insert or update)
func (s *SQLiteStore) SaveSettings(ctx context.Context, v domain.Settings) error {
	query := `INSERT INTO settings (id, gym_name, absence_deduction, half_day_deduction, last_backup_date)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			gym_name=excluded.gym_name, absence_deduction=excluded.absence_deduction,
			half_day_deduction=excluded.half_day_deduction,
			last_backup_date=excluded.last_backup_date`

	_, err := s.db.ExecContext(ctx, query, v.GymName, v.AbsenceDeduction, v.HalfDayDeduction, v.LastBackupDate)
	return err
}
