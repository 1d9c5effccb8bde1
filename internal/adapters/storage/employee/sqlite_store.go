package employee

import (
	"context"
	"database/sql"
	"fmt"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/employee"
)

const employeeColumns = "id, name, role, base_salary, email, phone, join_date"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new employee store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves an Employee by its ID, including attendance
// newest-first.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Employee, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+employeeColumns+" FROM employee WHERE id = ?", id)
	var e domain.Employee
	err := row.Scan(&e.ID, &e.Name, &e.Role, &e.BaseSalary, &e.Email, &e.Phone, &e.JoinDate)
	if err == sql.ErrNoRows {
		return domain.Employee{}, fmt.Errorf("employee not found: %w", err)
	}
	if err != nil {
		return domain.Employee{}, err
	}

	attendance, err := s.listAttendance(ctx, id)
	if err != nil {
		return domain.Employee{}, err
	}
	e.Attendance = attendance
	return e, nil
}

// Save persists an Employee row. Attendance is managed separately
// through UpsertAttendance and DeleteAttendanceByDate.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, e domain.Employee) error {
	query := `INSERT INTO employee (` + employeeColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name=excluded.name, role=excluded.role, base_salary=excluded.base_salary,
			email=excluded.email, phone=excluded.phone, join_date=excluded.join_date`

	_, err := s.db.ExecContext(ctx, query,
		e.ID, e.Name, e.Role, e.BaseSalary, e.Email, e.Phone, e.JoinDate)
	return err
}

// Delete removes an Employee and their attendance.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM employee_attendance WHERE employee_id = ?", id); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, "DELETE FROM employee WHERE id = ?", id)
	return err
}

// ListAll retrieves every employee with attendance hydrated newest-first.
// PRE: none
// POST: Returns all employees
func (s *SQLiteStore) ListAll(ctx context.Context) ([]domain.Employee, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+employeeColumns+" FROM employee ORDER BY join_date, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []domain.Employee
	byID := make(map[string]int)
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Role, &e.BaseSalary, &e.Email, &e.Phone, &e.JoinDate); err != nil {
			return nil, err
		}
		byID[e.ID] = len(employees)
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	attRows, err := s.db.QueryContext(ctx, "SELECT employee_id, date, check_in, status FROM employee_attendance ORDER BY date DESC")
	if err != nil {
		return nil, err
	}
	defer attRows.Close()
	for attRows.Next() {
		var rec domain.AttendanceRecord
		var employeeID string
		if err := attRows.Scan(&employeeID, &rec.Date, &rec.CheckIn, &rec.Status); err != nil {
			return nil, err
		}
		if i, ok := byID[employeeID]; ok {
			employees[i].Attendance = append(employees[i].Attendance, rec)
		}
	}
	return employees, attRows.Err()
}

// UpsertAttendance records attendance for a calendar day, replacing any
// existing record for that day.
// PRE: rec.Date is YYYY-MM-DD
// POST: Exactly one record exists for (employeeID, rec.Date)
func (s *SQLiteStore) UpsertAttendance(ctx context.Context, employeeID string, rec domain.AttendanceRecord) error {
	query := `INSERT INTO employee_attendance (employee_id, date, check_in, status)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(employee_id, date) DO UPDATE SET
			check_in=excluded.check_in, status=excluded.status`

	_, err := s.db.ExecContext(ctx, query, employeeID, rec.Date, rec.CheckIn, rec.Status)
	return err
}

// DeleteAttendanceByDate removes the attendance record for a day.
// PRE: employeeID and date are non-empty
// POST: Matching record, if any, is removed
func (s *SQLiteStore) DeleteAttendanceByDate(ctx context.Context, employeeID string, date string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM employee_attendance WHERE employee_id = ? AND date = ?",
		employeeID, date)
	return err
}

func (s *SQLiteStore) listAttendance(ctx context.Context, employeeID string) ([]domain.AttendanceRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT date, check_in, status FROM employee_attendance WHERE employee_id = ? ORDER BY date DESC", employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.AttendanceRecord
	for rows.Next() {
		var r domain.AttendanceRecord
		if err := rows.Scan(&r.Date, &r.CheckIn, &r.Status); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
