package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"gymdesk/internal/domain/account"
	"gymdesk/internal/domain/audit"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/payment"
)

// RecordPaymentInput carries input for the payment orchestrator.
type RecordPaymentInput struct {
	MemberID string // empty for walk-in product sales
	Amount   float64
	Type     string // payment.Type* constant
}

// RecordPaymentDeps holds dependencies for RecordPayment.
type RecordPaymentDeps struct {
	MemberStore  MemberStoreForRegister
	PaymentStore PaymentRecorder
	AuditStore   AuditRecorder // optional
	Actor        account.Account
	Now          func() time.Time
}

// ExecuteRecordPayment writes one payment row and keeps the member's
// debt balance in step with it: a DEBT_PAYMENT reduces TotalDebt
// (never below zero) and a MANUAL_DEBT increases it without touching
// the till.
// PRE: Amount > 0; Type is a known payment type
// POST: Payment persisted; member debt adjusted for debt-typed payments
func ExecuteRecordPayment(ctx context.Context, input RecordPaymentInput, deps RecordPaymentDeps) (payment.Payment, error) {
	if input.Amount <= 0 {
		return payment.Payment{}, errors.New("payment amount must be positive")
	}

	now := deps.Now()
	p := payment.Payment{
		ID:         uuid.New().String(),
		MemberID:   input.MemberID,
		Amount:     input.Amount,
		Date:       now.Format(member.DateLayout),
		Type:       input.Type,
		RecordedBy: deps.Actor.Username,
	}

	var memberName string
	if input.MemberID != "" {
		m, err := deps.MemberStore.GetByID(ctx, input.MemberID)
		if err != nil {
			return payment.Payment{}, err
		}
		memberName = m.Name
		p.MemberName = m.Name

		switch input.Type {
		case payment.TypeDebtPayment:
			m.TotalDebt -= input.Amount
			if m.TotalDebt < 0 {
				m.TotalDebt = 0
			}
		case payment.TypeManualDebt:
			m.TotalDebt += input.Amount
		}
		if input.Type == payment.TypeDebtPayment || input.Type == payment.TypeManualDebt {
			if err := deps.MemberStore.Save(ctx, m); err != nil {
				return payment.Payment{}, err
			}
		}
	}

	if err := p.Validate(); err != nil {
		return payment.Payment{}, err
	}
	if err := deps.PaymentStore.SavePayment(ctx, p); err != nil {
		return payment.Payment{}, err
	}

	logAction(ctx, deps.AuditStore, deps.Actor, audit.ActionPaymentRecorded, memberName)
	slog.Info("finance_event", "event", "payment_recorded", "payment_id", p.ID, "type", p.Type, "amount", p.Amount)
	return p, nil
}

// DeductionRecorder defines the expense side of the money ledger.
type DeductionRecorder interface {
	SaveDeduction(ctx context.Context, d payment.Deduction) error
}

// RecordDeductionInput carries input for the deduction orchestrator.
type RecordDeductionInput struct {
	Amount      float64
	Reason      string
	Category    string // payment.Category* constant
	RelatedID   string // tied employee or member, when applicable
	RelatedName string
}

// RecordDeductionDeps holds dependencies for RecordDeduction.
type RecordDeductionDeps struct {
	DeductionStore DeductionRecorder
	AuditStore     AuditRecorder // optional
	Actor          account.Account
	Now            func() time.Time
}

// ExecuteRecordDeduction writes one outgoing-money row (expense,
// salary, refund).
// PRE: Amount > 0; Category is a known deduction category
// POST: Deduction persisted and logged
func ExecuteRecordDeduction(ctx context.Context, input RecordDeductionInput, deps RecordDeductionDeps) (payment.Deduction, error) {
	if input.Amount <= 0 {
		return payment.Deduction{}, errors.New("deduction amount must be positive")
	}

	d := payment.Deduction{
		ID:          uuid.New().String(),
		Amount:      input.Amount,
		Reason:      input.Reason,
		Date:        deps.Now().Format(member.DateLayout),
		AdminID:     deps.Actor.ID,
		Category:    input.Category,
		RelatedID:   input.RelatedID,
		RelatedName: input.RelatedName,
	}
	if err := d.Validate(); err != nil {
		return payment.Deduction{}, err
	}
	if err := deps.DeductionStore.SaveDeduction(ctx, d); err != nil {
		return payment.Deduction{}, err
	}

	logAction(ctx, deps.AuditStore, deps.Actor, audit.ActionDeductionRecorded, input.RelatedName)
	slog.Info("finance_event", "event", "deduction_recorded", "deduction_id", d.ID, "category", d.Category, "amount", d.Amount)
	return d, nil
}
