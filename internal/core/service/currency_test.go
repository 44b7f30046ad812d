package service

import (
	"context"
	"errors"
	"testing"

	"github.com/maidanad/phoneledger-go/internal/core/domain"
)

func TestCurrencyServiceCreate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tx, err := env.currency.Create(ctx, &CreateTransactionRequest{
		Date:         "2024-04-02",
		Counterparty: "Roberto Sanchez",
		Buyer:        "Cueva Centro",
		Quantity:     500,
		UnitCost:     1180,
		UnitSale:     1210,
		Channel:      "TRANSFERENCIA",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if tx.TotalCost != 590000 {
		t.Errorf("TotalCost = %v, want 590000", tx.TotalCost)
	}
	if tx.TotalSale != 605000 {
		t.Errorf("TotalSale = %v, want 605000", tx.TotalSale)
	}
	if tx.Profit != 15000 {
		t.Errorf("Profit = %v, want 15000", tx.Profit)
	}

	entries := env.audit.Entries(ctx, 1)
	if len(entries) != 1 {
		t.Fatalf("audit entries = %d, want 1", len(entries))
	}
	if want := "USD 500 - Roberto Sanchez"; entries[0].Details != want {
		t.Errorf("Details = %q, want %q", entries[0].Details, want)
	}
}

func TestCurrencyServiceUpdateAlwaysRecomputes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tx, err := env.currency.Create(ctx, &CreateTransactionRequest{
		Date:     "2024-04-02",
		Quantity: 100,
		UnitCost: 1000,
		UnitSale: 1050,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Price update reflows the totals.
	updated, err := env.currency.Update(ctx, tx.ID, &domain.TransactionPatch{UnitSale: f64Ptr(1100)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.TotalSale != 110000 || updated.Profit != 10000 {
		t.Errorf("totals = %v/%v, want 110000/10000", updated.TotalSale, updated.Profit)
	}

	// An unrelated-field update still recomputes.
	updated, err = env.currency.Update(ctx, tx.ID, &domain.TransactionPatch{Channel: strPtr("EFECTIVO")})
	if err != nil {
		t.Fatalf("update channel: %v", err)
	}
	if updated.TotalCost != 100000 || updated.TotalSale != 110000 {
		t.Errorf("totals after channel update = %v/%v", updated.TotalCost, updated.TotalSale)
	}

	entries := env.audit.Entries(ctx, 1)
	if want := "Actualizado: operacion"; entries[0].Details != want {
		t.Errorf("Details = %q, want %q", entries[0].Details, want)
	}
}

func TestCurrencyServiceDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tx, err := env.currency.Create(ctx, &CreateTransactionRequest{Date: "2024-04-02", Quantity: 50})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := env.currency.Delete(ctx, tx.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := env.currency.Get(ctx, tx.ID); !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Fatalf("get after delete: %v", err)
	}

	entries := env.audit.Entries(ctx, 1)
	if want := "Transacción eliminada"; entries[0].Details != want {
		t.Errorf("Details = %q, want %q", entries[0].Details, want)
	}

	if err := env.currency.Delete(ctx, tx.ID); !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Fatalf("second delete: %v", err)
	}
}
