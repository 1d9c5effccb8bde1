package storage

import (
	"database/sql"
	"fmt"
)

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Create tables
	schema := `
	CREATE TABLE IF NOT EXISTS member (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		join_date TEXT NOT NULL DEFAULT '',
		plan TEXT NOT NULL DEFAULT '',
		subscription_end TEXT NOT NULL DEFAULT '',
		is_active INTEGER NOT NULL DEFAULT 1,
		is_frozen INTEGER NOT NULL DEFAULT 0,
		is_archived INTEGER NOT NULL DEFAULT 0,
		remaining_days_at_freeze INTEGER NOT NULL DEFAULT 0,
		last_freeze_date TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		total_debt REAL NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS member_attendance (
		id TEXT PRIMARY KEY,
		member_id TEXT NOT NULL,
		date TEXT NOT NULL,
		time TEXT NOT NULL,
		FOREIGN KEY (member_id) REFERENCES member(id)
	);

	CREATE TABLE IF NOT EXISTS employee (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		base_salary REAL NOT NULL DEFAULT 0,
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		join_date TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS employee_attendance (
		employee_id TEXT NOT NULL,
		date TEXT NOT NULL,
		check_in TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		PRIMARY KEY (employee_id, date),
		FOREIGN KEY (employee_id) REFERENCES employee(id)
	);

	CREATE TABLE IF NOT EXISTS checkin_ledger (
		id TEXT PRIMARY KEY,
		attendance_id TEXT NOT NULL,
		target_id TEXT NOT NULL,
		target_name TEXT NOT NULL,
		plan_or_role TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL,
		time TEXT NOT NULL,
		status TEXT NOT NULL,
		has_debt INTEGER NOT NULL DEFAULT 0,
		target_type TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS activity_log (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		username TEXT NOT NULL,
		role TEXT NOT NULL,
		action TEXT NOT NULL,
		target TEXT NOT NULL DEFAULT '',
		details TEXT NOT NULL DEFAULT '',
		timestamp TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS account (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL,
		can_manage_members INTEGER NOT NULL DEFAULT 0,
		can_manage_checkin INTEGER NOT NULL DEFAULT 0,
		can_manage_employees INTEGER NOT NULL DEFAULT 0,
		can_view_reports INTEGER NOT NULL DEFAULT 0,
		can_view_financials INTEGER NOT NULL DEFAULT 0,
		can_manage_settings INTEGER NOT NULL DEFAULT 0,
		can_manage_payments INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS payment (
		id TEXT PRIMARY KEY,
		member_id TEXT NOT NULL,
		member_name TEXT NOT NULL DEFAULT '',
		amount REAL NOT NULL,
		date TEXT NOT NULL,
		type TEXT NOT NULL,
		recorded_by TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS deduction (
		id TEXT PRIMARY KEY,
		amount REAL NOT NULL,
		reason TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL,
		admin_id TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL,
		related_id TEXT NOT NULL DEFAULT '',
		related_name TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS plan_config (
		name TEXT PRIMARY KEY,
		price REAL NOT NULL,
		duration_months INTEGER NOT NULL DEFAULT 0,
		duration_days INTEGER NOT NULL DEFAULT 0,
		rank INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		gym_name TEXT NOT NULL DEFAULT '',
		absence_deduction REAL NOT NULL DEFAULT 0,
		half_day_deduction REAL NOT NULL DEFAULT 0,
		last_backup_date TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_member_attendance_member ON member_attendance(member_id);
	CREATE INDEX IF NOT EXISTS idx_checkin_ledger_date ON checkin_ledger(date);
	CREATE INDEX IF NOT EXISTS idx_payment_date ON payment(date);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
