package finance

import (
	"context"

	domain "gymdesk/internal/domain/payment"
)

// PaymentStore persists incoming money records.
type PaymentStore interface {
	SavePayment(ctx context.Context, p domain.Payment) error
	ListPaymentsByDate(ctx context.Context, date string) ([]domain.Payment, error)
	ListAllPayments(ctx context.Context) ([]domain.Payment, error)
	SumPaymentsBetween(ctx context.Context, startDate string, endDate string) (float64, error)
}

// DeductionStore persists outgoing money records.
type DeductionStore interface {
	SaveDeduction(ctx context.Context, d domain.Deduction) error
	ListDeductionsByDate(ctx context.Context, date string) ([]domain.Deduction, error)
	SumDeductionsBetween(ctx context.Context, startDate string, endDate string) (float64, error)
	SumDeductionsByCategoryBetween(ctx context.Context, category string, startDate string, endDate string) (float64, error)
}

// Store combines both sides of the money ledger.
type Store interface {
	PaymentStore
	DeductionStore
}
