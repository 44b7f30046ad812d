package service

import (
	"context"
	"fmt"

	"github.com/maidanad/phoneledger-go/internal/core/domain"
	"github.com/maidanad/phoneledger-go/internal/telemetry/metric"
)

// Snapshot is the full-dataset export payload. Audit entries and the
// dark-mode flag are deliberately left out: the log is operational
// history, not ledger data, and the theme belongs to the device.
type Snapshot struct {
	Sales        []*domain.Sale                `json:"sales"`
	Transactions []*domain.CurrencyTransaction `json:"usdTransactions"`
	Clients      []*domain.Client              `json:"clients"`
	ExchangeRate float64                       `json:"exchangeRate"`
}

// SnapshotService assembles exports and performs wholesale imports.
type SnapshotService struct {
	sales   SaleRepository
	clients ClientRepository
	txs     TransactionRepository
	prefs   PreferenceRepository
	audit   *AuditService
	metrics *metric.Metrics
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(sales SaleRepository, clients ClientRepository, txs TransactionRepository, prefs PreferenceRepository, audit *AuditService, metrics *metric.Metrics) *SnapshotService {
	return &SnapshotService{
		sales:   sales,
		clients: clients,
		txs:     txs,
		prefs:   prefs,
		audit:   audit,
		metrics: metrics,
	}
}

// Export returns a point-in-time copy of the whole dataset.
func (s *SnapshotService) Export(ctx context.Context) *Snapshot {
	return &Snapshot{
		Sales:        s.sales.Sales(ctx),
		Transactions: s.txs.Transactions(ctx),
		Clients:      s.clients.Clients(ctx),
		ExchangeRate: s.prefs.ExchangeRate(ctx),
	}
}

// ImportSales replaces the whole sales collection. Derived fields are
// recomputed on the way in so imported rows can never carry stale
// profit or warranty values. One audit entry covers the batch.
func (s *SnapshotService) ImportSales(ctx context.Context, sales []*domain.Sale) error {
	for _, sale := range sales {
		sale.Recompute()
	}
	if err := s.sales.ReplaceSales(ctx, sales); err != nil {
		return err
	}

	s.audit.Record(ctx, domain.ActionCreate, domain.EntitySale, "IMPORT",
		fmt.Sprintf("Importados %d registros", len(sales)))
	s.metrics.RecordMutation(string(domain.EntitySale), string(domain.ActionCreate))

	return nil
}

// ImportTransactions replaces the whole currency transaction collection.
// Totals are recomputed on the way in. One audit entry covers the batch.
func (s *SnapshotService) ImportTransactions(ctx context.Context, txs []*domain.CurrencyTransaction) error {
	for _, tx := range txs {
		tx.Recompute()
	}
	if err := s.txs.ReplaceTransactions(ctx, txs); err != nil {
		return err
	}

	s.audit.Record(ctx, domain.ActionCreate, domain.EntityCurrencyTx, "IMPORT",
		fmt.Sprintf("Importados %d registros", len(txs)))
	s.metrics.RecordMutation(string(domain.EntityCurrencyTx), string(domain.ActionCreate))

	return nil
}
