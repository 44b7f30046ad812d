package service

import (
	"context"
	"testing"

	"github.com/maidanad/phoneledger-go/internal/core/domain"
	"github.com/maidanad/phoneledger-go/internal/storage/ledgerstore"
)

func TestSnapshotExport(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.sales.Create(ctx, &CreateSaleRequest{SaleDate: "2024-01-05", IMEI: "350777777777777"}); err != nil {
		t.Fatalf("create sale: %v", err)
	}
	if _, err := env.clients.Create(ctx, &CreateClientRequest{Name: "Ana Torres"}); err != nil {
		t.Fatalf("create client: %v", err)
	}
	if err := env.prefs.SetExchangeRate(ctx, 1350); err != nil {
		t.Fatalf("set rate: %v", err)
	}

	snap := env.snapshot.Export(ctx)
	if len(snap.Sales) != 1 || len(snap.Clients) != 1 || len(snap.Transactions) != 0 {
		t.Errorf("snapshot sizes = %d/%d/%d", len(snap.Sales), len(snap.Clients), len(snap.Transactions))
	}
	if snap.ExchangeRate != 1350 {
		t.Errorf("ExchangeRate = %v, want 1350", snap.ExchangeRate)
	}

	// The export is a copy; mutating it must not touch the store.
	snap.Sales[0].Customer = "changed"
	stored, err := env.sales.Get(ctx, snap.Sales[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Customer == "changed" {
		t.Error("export shares memory with the store")
	}
}

func TestSnapshotImportSales(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.sales.Create(ctx, &CreateSaleRequest{SaleDate: "2024-01-05", IMEI: "350888888888888"}); err != nil {
		t.Fatalf("create sale: %v", err)
	}

	// Imported rows carry stale derived values on purpose.
	incoming := []*domain.Sale{
		{ID: "vnt-import-1", SaleDate: "2024-06-01", CostARS: 100, SaleARS: 300, ProfitARS: 999},
		{ID: "vnt-import-2", SaleDate: "2024-07-01", CostARS: 200, SaleARS: 500},
	}
	if err := env.snapshot.ImportSales(ctx, incoming); err != nil {
		t.Fatalf("import: %v", err)
	}

	sales := env.sales.List(ctx)
	if len(sales) != 2 {
		t.Fatalf("sales after import = %d, want 2", len(sales))
	}
	for _, s := range sales {
		if s.ProfitARS != s.SaleARS-s.CostARS {
			t.Errorf("sale %s profit = %v, want %v", s.ID, s.ProfitARS, s.SaleARS-s.CostARS)
		}
		if s.Warranty == "" {
			t.Errorf("sale %s has no warranty date", s.ID)
		}
	}

	entries := env.audit.Entries(ctx, 1)
	if len(entries) != 1 {
		t.Fatalf("audit entries = %d, want 1", len(entries))
	}
	e := entries[0]
	if e.EntityID != "IMPORT" {
		t.Errorf("EntityID = %q, want IMPORT", e.EntityID)
	}
	if want := "Importados 2 registros"; e.Details != want {
		t.Errorf("Details = %q, want %q", e.Details, want)
	}
}

func TestSnapshotImportTransactions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	incoming := []*domain.CurrencyTransaction{
		{ID: "usd-import-1", Date: "2024-06-15", Quantity: 200, UnitCost: 1100, UnitSale: 1150},
	}
	if err := env.snapshot.ImportTransactions(ctx, incoming); err != nil {
		t.Fatalf("import: %v", err)
	}

	txs := env.currency.List(ctx)
	if len(txs) != 1 {
		t.Fatalf("transactions = %d, want 1", len(txs))
	}
	if txs[0].Profit != 10000 {
		t.Errorf("Profit = %v, want 10000", txs[0].Profit)
	}

	entries := env.audit.Entries(ctx, 1)
	if want := "Importados 1 registros"; entries[0].Details != want {
		t.Errorf("Details = %q, want %q", entries[0].Details, want)
	}
}

func TestSnapshotRoundTripWithSeed(t *testing.T) {
	// A seeded store exports the sample dataset unchanged.
	env := newTestEnv(t)
	ctx := context.Background()

	seedSales, err := ledgerstore.SampleSales()
	if err != nil {
		t.Fatalf("sample sales: %v", err)
	}
	if err := env.snapshot.ImportSales(ctx, seedSales); err != nil {
		t.Fatalf("import: %v", err)
	}

	snap := env.snapshot.Export(ctx)
	if len(snap.Sales) != len(seedSales) {
		t.Fatalf("exported %d sales, want %d", len(snap.Sales), len(seedSales))
	}
}
