package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/maidanad/phoneledger-go/internal/storage"
	"github.com/maidanad/phoneledger-go/internal/storage/ledgerstore"
)

// testEnv wires all services over an empty in-memory store.
type testEnv struct {
	store    *ledgerstore.Store
	audit    *AuditService
	sales    *SaleService
	clients  *ClientService
	currency *CurrencyService
	snapshot *SnapshotService
	prefs    *PreferenceService
	summary  *SummaryService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	kv := storage.NewMemoryEngine()
	t.Cleanup(func() { kv.Close() })

	store := ledgerstore.New(kv, logger, ledgerstore.WithSeed(false))
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("load store: %v", err)
	}

	audit := NewAuditService(store, "", logger)
	return &testEnv{
		store:    store,
		audit:    audit,
		sales:    NewSaleService(store, audit, nil),
		clients:  NewClientService(store, audit, nil),
		currency: NewCurrencyService(store, audit, nil),
		snapshot: NewSnapshotService(store, store, store, store, audit, nil),
		prefs:    NewPreferenceService(store, logger),
		summary:  NewSummaryService(store, store),
	}
}

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }
