package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/fkhayef/tripsplit/internal/currency"
	"github.com/fkhayef/tripsplit/internal/settings"
)

var (
	testMembers    = []string{"Alice", "Bob", "Chan", "Dana"}
	testCategories = []string{"food", "lodging", "transport", "other"}
	testPair       = currency.Pair{Home: "KRW", Foreign: "JPY"}
)

func newTestService() (*Service, *settings.Store) {
	store := settings.NewStore(100, testPair)
	return NewService(NewRepository(), testMembers, testCategories, testPair, store), store
}

func validRequest() *CreateExpenseRequest {
	return &CreateExpenseRequest{
		Date:        "2026-08-21",
		Payer:       "Alice",
		Amount:      400,
		Currency:    "KRW",
		Category:    "food",
		Description: "lunch",
	}
}

func TestAddExpenseValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *CreateExpenseRequest)
		wantErr error
	}{
		{name: "valid request", mutate: func(r *CreateExpenseRequest) {}},
		{name: "zero amount", mutate: func(r *CreateExpenseRequest) { r.Amount = 0 }, wantErr: ErrInvalidAmount},
		{name: "negative amount", mutate: func(r *CreateExpenseRequest) { r.Amount = -5 }, wantErr: ErrInvalidAmount},
		{name: "empty description", mutate: func(r *CreateExpenseRequest) { r.Description = "  " }, wantErr: ErrEmptyDescription},
		{name: "unknown payer", mutate: func(r *CreateExpenseRequest) { r.Payer = "Mallory" }, wantErr: ErrUnknownPayer},
		{name: "unknown category", mutate: func(r *CreateExpenseRequest) { r.Category = "bribes" }, wantErr: ErrUnknownCategory},
		{name: "unknown currency", mutate: func(r *CreateExpenseRequest) { r.Currency = "USD" }, wantErr: ErrUnknownCurrency},
		{name: "malformed date", mutate: func(r *CreateExpenseRequest) { r.Date = "21/08/2026" }, wantErr: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService()
			req := validRequest()
			tt.mutate(req)

			_, err := svc.AddExpense(context.Background(), req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddExpense() error = %v, want %v", err, tt.wantErr)
			}

			// A rejected record must leave the ledger unchanged.
			wantLen := 0
			if tt.wantErr == nil {
				wantLen = 1
			}
			if got := len(svc.ListExpenses(context.Background())); got != wantLen {
				t.Errorf("ledger has %d records, want %d", got, wantLen)
			}
		})
	}
}

func TestAddExpenseNormalizesAtCreation(t *testing.T) {
	svc, _ := newTestService()

	req := validRequest()
	req.Amount = 10
	req.Currency = "JPY"

	e, err := svc.AddExpense(context.Background(), req)
	if err != nil {
		t.Fatalf("AddExpense() error = %v", err)
	}
	if e.NormalizedAmount != 1000 {
		t.Errorf("NormalizedAmount = %v, want 1000 (10 JPY at rate 100)", e.NormalizedAmount)
	}
	if e.Amount != 10 {
		t.Errorf("Amount = %v, want the entered 10", e.Amount)
	}
	if e.ID == "" {
		t.Error("expected an assigned ID")
	}
}

// Changing the exchange rate must never touch already-stored normalized
// amounts; only records created afterwards see the new rate.
func TestNormalizedAmountIsFrozen(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	req := validRequest()
	req.Amount = 10
	req.Currency = "JPY"
	before, err := svc.AddExpense(ctx, req)
	if err != nil {
		t.Fatalf("AddExpense() error = %v", err)
	}

	newRate := 200.0
	if _, err := store.Update(&newRate, nil); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	records := svc.ListExpenses(ctx)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].NormalizedAmount != 1000 {
		t.Errorf("stored NormalizedAmount = %v after rate change, want frozen 1000", records[0].NormalizedAmount)
	}
	if records[0].ID != before.ID {
		t.Errorf("record identity changed across rate update")
	}

	after, err := svc.AddExpense(ctx, req)
	if err != nil {
		t.Fatalf("AddExpense() error = %v", err)
	}
	if after.NormalizedAmount != 2000 {
		t.Errorf("new record NormalizedAmount = %v, want 2000 at rate 200", after.NormalizedAmount)
	}
}

func TestRemoveExpenseIsTolerant(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	e, err := svc.AddExpense(ctx, validRequest())
	if err != nil {
		t.Fatalf("AddExpense() error = %v", err)
	}

	if svc.RemoveExpense(ctx, "no-such-id") {
		t.Error("removing an unknown ID should report false")
	}
	if got := len(svc.ListExpenses(ctx)); got != 1 {
		t.Fatalf("ledger has %d records after no-op removal, want 1", got)
	}

	if !svc.RemoveExpense(ctx, e.ID) {
		t.Error("removing an existing ID should report true")
	}
	if got := len(svc.ListExpenses(ctx)); got != 0 {
		t.Fatalf("ledger has %d records after removal, want 0", got)
	}
}

func TestListExpensesOrderedByDate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for _, date := range []string{"2026-08-23", "2026-08-21", "2026-08-22"} {
		req := validRequest()
		req.Date = date
		if _, err := svc.AddExpense(ctx, req); err != nil {
			t.Fatalf("AddExpense() error = %v", err)
		}
	}

	records := svc.ListExpenses(ctx)
	want := []string{"2026-08-21", "2026-08-22", "2026-08-23"}
	for i, w := range want {
		if got := records[i].Date.Format("2006-01-02"); got != w {
			t.Errorf("records[%d].Date = %s, want %s", i, got, w)
		}
	}
}
