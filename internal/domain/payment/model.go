package payment

import (
	"errors"
	"strings"
)

// Payment types.
const (
	TypeSubscription = "SUBSCRIPTION"
	TypeProduct      = "PRODUCT"
	TypeUpgrade      = "UPGRADE"
	TypeExtension    = "EXTENSION"
	TypeDebtPayment  = "DEBT_PAYMENT"
	TypeManualDebt   = "MANUAL_DEBT"
	TypeOther        = "OTHER"
)

// Deduction categories.
const (
	CategoryExpense = "EXPENSE"
	CategorySalary  = "SALARY"
	CategoryRefund  = "REFUND"
	CategoryOther   = "OTHER"
)

var validTypes = map[string]bool{
	TypeSubscription: true,
	TypeProduct:      true,
	TypeUpgrade:      true,
	TypeExtension:    true,
	TypeDebtPayment:  true,
	TypeManualDebt:   true,
	TypeOther:        true,
}

var validCategories = map[string]bool{
	CategoryExpense: true,
	CategorySalary:  true,
	CategoryRefund:  true,
	CategoryOther:   true,
}

// Payment is money received from (or debt booked against) a member.
type Payment struct {
	ID         string
	MemberID   string
	MemberName string
	Amount     float64
	Date       string // YYYY-MM-DD
	Type       string
	RecordedBy string
}

// Validate checks if the Payment has valid data.
// PRE: Payment struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (p *Payment) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("payment id cannot be empty")
	}
	// Product and miscellaneous sales may come from walk-in customers;
	// everything else is tied to a member record.
	if strings.TrimSpace(p.MemberID) == "" && p.Type != TypeProduct && p.Type != TypeOther {
		return errors.New("payment must be associated with a member")
	}
	if p.Amount <= 0 {
		return errors.New("payment amount must be positive")
	}
	if p.Date == "" {
		return errors.New("payment date cannot be empty")
	}
	if !validTypes[p.Type] {
		return errors.New("unknown payment type")
	}
	return nil
}

// Deduction is money going out: expenses, salaries, refunds.
type Deduction struct {
	ID          string
	Amount      float64
	Reason      string
	Date        string // YYYY-MM-DD
	AdminID     string
	Category    string
	RelatedID   string
	RelatedName string
}

// Validate checks if the Deduction has valid data.
// PRE: Deduction struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (d *Deduction) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return errors.New("deduction id cannot be empty")
	}
	if d.Amount <= 0 {
		return errors.New("deduction amount must be positive")
	}
	if d.Date == "" {
		return errors.New("deduction date cannot be empty")
	}
	if !validCategories[d.Category] {
		return errors.New("unknown deduction category")
	}
	return nil
}
