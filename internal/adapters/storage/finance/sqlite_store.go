package finance

import (
	"context"
	"database/sql"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/payment"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new finance store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// SavePayment persists a payment record.
// PRE: p has been validated
// POST: Payment is persisted (insert or update)
func (s *SQLiteStore) SavePayment(ctx context.Context, p domain.Payment) error {
	query := `INSERT INTO payment (id, member_id, member_name, amount, date, type, recorded_by)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			member_id=excluded.member_id, member_name=excluded.member_name,
			amount=excluded.amount, date=excluded.date, type=excluded.type,
			recorded_by=excluded.recorded_by`

	_, err := s.db.ExecContext(ctx, query,
		p.ID, p.MemberID, p.MemberName, p.Amount, p.Date, p.Type, p.RecordedBy)
	return err
}

// ListPaymentsByDate retrieves payments recorded on a calendar day.
// PRE: date is YYYY-MM-DD
// POST: Returns matching payments in insertion order
func (s *SQLiteStore) ListPaymentsByDate(ctx context.Context, date string) ([]domain.Payment, error) {
	return s.listPayments(ctx, "SELECT id, member_id, member_name, amount, date, type, recorded_by FROM payment WHERE date = ? ORDER BY rowid", date)
}

// ListAllPayments retrieves every payment in insertion order.
// PRE: none
// POST: Returns all payments
func (s *SQLiteStore) ListAllPayments(ctx context.Context) ([]domain.Payment, error) {
	return s.listPayments(ctx, "SELECT id, member_id, member_name, amount, date, type, recorded_by FROM payment ORDER BY rowid")
}

// SumPaymentsBetween totals payments whose date is within the inclusive range.
// PRE: startDate and endDate are YYYY-MM-DD
// POST: Returns the total (0 when no rows match)
func (s *SQLiteStore) SumPaymentsBetween(ctx context.Context, startDate string, endDate string) (float64, error) {
	var total sql.NullFloat64
	err := s.db.QueryRowContext(ctx,
		"SELECT SUM(amount) FROM payment WHERE date >= ? AND date <= ?",
		startDate, endDate).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total.Float64, nil
}

// SaveDeduction persists a deduction record.
// PRE: d has been validated
// POST: Deduction is persisted (insert or update)
func (s *SQLiteStore) SaveDeduction(ctx context.Context, d domain.Deduction) error {
	query := `INSERT INTO deduction (id, amount, reason, date, admin_id, category, related_id, related_name)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			amount=excluded.amount, reason=excluded.reason, date=excluded.date,
			admin_id=excluded.admin_id, category=excluded.category,
			related_id=excluded.related_id, related_name=excluded.related_name`

	_, err := s.db.ExecContext(ctx, query,
		d.ID, d.Amount, d.Reason, d.Date, d.AdminID, d.Category, d.RelatedID, d.RelatedName)
	return err
}

// ListDeductionsByDate retrieves deductions recorded on a calendar day.
// PRE: date is YYYY-MM-DD
// POST: Returns matching deductions in insertion order
func (s *SQLiteStore) ListDeductionsByDate(ctx context.Context, date string) ([]domain.Deduction, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, amount, reason, date, admin_id, category, related_id, related_name FROM deduction WHERE date = ? ORDER BY rowid", date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deductions []domain.Deduction
	for rows.Next() {
		var d domain.Deduction
		if err := rows.Scan(&d.ID, &d.Amount, &d.Reason, &d.Date, &d.AdminID, &d.Category, &d.RelatedID, &d.RelatedName); err != nil {
			return nil, err
		}
		deductions = append(deductions, d)
	}
	return deductions, rows.Err()
}

// SumDeductionsBetween totals deductions within the inclusive date range.
// PRE: startDate and endDate are YYYY-MM-DD
// POST: Returns the total (0 when no rows match)
func (s *SQLiteStore) SumDeductionsBetween(ctx context.Context, startDate string, endDate string) (float64, error) {
	var total sql.NullFloat64
	err := s.db.QueryRowContext(ctx,
		"SELECT SUM(amount) FROM deduction WHERE date >= ? AND date <= ?",
		startDate, endDate).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total.Float64, nil
}

// SumDeductionsByCategoryBetween totals one category of deductions
// within the inclusive date range.
// PRE: category is a valid deduction category
// POST: Returns the total (0 when no rows match)
func (s *SQLiteStore) SumDeductionsByCategoryBetween(ctx context.Context, category string, startDate string, endDate string) (float64, error) {
	var total sql.NullFloat64
	err := s.db.QueryRowContext(ctx,
		"SELECT SUM(amount) FROM deduction WHERE category = ? AND date >= ? AND date <= ?",
		category, startDate, endDate).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total.Float64, nil
}

func (s *SQLiteStore) listPayments(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.MemberID, &p.MemberName, &p.Amount, &p.Date, &p.Type, &p.RecordedBy); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
