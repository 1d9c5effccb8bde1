package finance

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/payment"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("init db: %v", err)
	}
	return NewSQLiteStore(db)
}

func seedPayments(t *testing.T, store *SQLiteStore) {
	t.Helper()
	ctx := context.Background()
	for _, p := range []domain.Payment{
		{ID: "p1", MemberID: "M1", MemberName: "Ahmed", Amount: 800, Date: "2026-03-09", Type: domain.TypeSubscription, RecordedBy: "front"},
		{ID: "p2", MemberID: "M2", MemberName: "Sara", Amount: 500, Date: "2026-03-10", Type: domain.TypeDebtPayment, RecordedBy: "front"},
		{ID: "p3", MemberName: "زبون", Amount: 60, Date: "2026-03-10", Type: domain.TypeProduct, RecordedBy: "front"},
	} {
		if err := store.SavePayment(ctx, p); err != nil {
			t.Fatalf("SavePayment %s: %v", p.ID, err)
		}
	}
}

func TestListPaymentsByDate(t *testing.T) {
	store := newTestStore(t)
	seedPayments(t, store)

	payments, err := store.ListPaymentsByDate(context.Background(), "2026-03-10")
	if err != nil {
		t.Fatalf("ListPaymentsByDate: %v", err)
	}
	if len(payments) != 2 {
		t.Fatalf("expected 2 payments on 2026-03-10, got %d", len(payments))
	}
	if payments[0].ID != "p2" || payments[1].ID != "p3" {
		t.Errorf("expected insertion order p2, p3; got %s, %s", payments[0].ID, payments[1].ID)
	}
	if payments[1].MemberID != "" {
		t.Errorf("walk-in payment should have empty member id, got %q", payments[1].MemberID)
	}
}

func TestSumPaymentsBetween(t *testing.T) {
	store := newTestStore(t)
	seedPayments(t, store)
	ctx := context.Background()

	total, err := store.SumPaymentsBetween(ctx, "2026-03-01", "2026-03-31")
	if err != nil {
		t.Fatalf("SumPaymentsBetween: %v", err)
	}
	if total != 1360 {
		t.Errorf("expected total 1360, got %v", total)
	}

	total, err = store.SumPaymentsBetween(ctx, "2026-04-01", "2026-04-30")
	if err != nil {
		t.Fatalf("SumPaymentsBetween empty range: %v", err)
	}
	if total != 0 {
		t.Errorf("expected 0 for empty range, got %v", total)
	}
}

func TestDeductionsByDateAndSums(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, d := range []domain.Deduction{
		{ID: "d1", Amount: 100, Reason: "غياب", Date: "2026-03-10", AdminID: "acc-1", Category: "SALARY", RelatedID: "E1", RelatedName: "Mona"},
		{ID: "d2", Amount: 40, Reason: "صيانة", Date: "2026-03-10", AdminID: "acc-1", Category: "EXPENSE"},
		{ID: "d3", Amount: 70, Reason: "غياب", Date: "2026-03-11", AdminID: "acc-1", Category: "SALARY", RelatedID: "E2", RelatedName: "Hany"},
	} {
		if err := store.SaveDeduction(ctx, d); err != nil {
			t.Fatalf("SaveDeduction %s: %v", d.ID, err)
		}
	}

	day, err := store.ListDeductionsByDate(ctx, "2026-03-10")
	if err != nil {
		t.Fatalf("ListDeductionsByDate: %v", err)
	}
	if len(day) != 2 {
		t.Fatalf("expected 2 deductions on 2026-03-10, got %d", len(day))
	}
	if day[0].RelatedName != "Mona" {
		t.Errorf("related fields not round-tripped: %+v", day[0])
	}

	total, err := store.SumDeductionsBetween(ctx, "2026-03-01", "2026-03-31")
	if err != nil {
		t.Fatalf("SumDeductionsBetween: %v", err)
	}
	if total != 210 {
		t.Errorf("expected total 210, got %v", total)
	}

	salary, err := store.SumDeductionsByCategoryBetween(ctx, "SALARY", "2026-03-01", "2026-03-31")
	if err != nil {
		t.Fatalf("SumDeductionsByCategoryBetween: %v", err)
	}
	if salary != 170 {
		t.Errorf("expected salary deductions 170, got %v", salary)
	}
}
