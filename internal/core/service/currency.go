package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/maidanad/phoneledger-go/internal/core/domain"
	"github.com/maidanad/phoneledger-go/internal/telemetry/metric"
)

// CurrencyService handles foreign-currency transactions.
type CurrencyService struct {
	repo    TransactionRepository
	audit   *AuditService
	metrics *metric.Metrics
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(repo TransactionRepository, audit *AuditService, metrics *metric.Metrics) *CurrencyService {
	return &CurrencyService{repo: repo, audit: audit, metrics: metrics}
}

// CreateTransactionRequest contains the transaction payload minus the
// generated and derived fields (id, costoPesos, ventaPesos, ganancia).
type CreateTransactionRequest struct {
	Date         string  `json:"fecha"`
	Counterparty string  `json:"cliente"`
	Buyer        string  `json:"clienteVenta"`
	Quantity     float64 `json:"cantidad"`
	UnitCost     float64 `json:"precioCosto"`
	UnitSale     float64 `json:"precioVenta"`
	Channel      string  `json:"operacion"`
}

// List returns a snapshot of all transactions.
func (s *CurrencyService) List(ctx context.Context) []*domain.CurrencyTransaction {
	return s.repo.Transactions(ctx)
}

// Get returns one transaction by ID.
func (s *CurrencyService) Get(ctx context.Context, id string) (*domain.CurrencyTransaction, error) {
	return s.repo.TransactionByID(ctx, id)
}

// Create adds a new transaction with its totals derived from quantity
// and unit prices.
func (s *CurrencyService) Create(ctx context.Context, req *CreateTransactionRequest) (*domain.CurrencyTransaction, error) {
	id, err := domain.NewTransactionID()
	if err != nil {
		return nil, err
	}

	tx := &domain.CurrencyTransaction{
		ID:           id,
		Date:         req.Date,
		Counterparty: req.Counterparty,
		Buyer:        req.Buyer,
		Quantity:     req.Quantity,
		UnitCost:     req.UnitCost,
		UnitSale:     req.UnitSale,
		Channel:      req.Channel,
	}
	tx.Recompute()

	if err := s.repo.AppendTransaction(ctx, tx); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.ActionCreate, domain.EntityCurrencyTx, tx.ID,
		fmt.Sprintf("USD %.0f - %s", tx.Quantity, tx.Counterparty))
	s.metrics.RecordMutation(string(domain.EntityCurrencyTx), string(domain.ActionCreate))

	return tx, nil
}

// Update merges a partial payload onto the transaction. Totals are
// recomputed unconditionally, even when only unrelated fields changed.
// Returns domain.ErrTransactionNotFound for an unknown ID.
func (s *CurrencyService) Update(ctx context.Context, id string, patch *domain.TransactionPatch) (*domain.CurrencyTransaction, error) {
	tx, err := s.repo.TransactionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := patch.Apply(tx)
	tx.Recompute()

	if err := s.repo.ReplaceTransaction(ctx, tx); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.ActionEdit, domain.EntityCurrencyTx, id,
		"Actualizado: "+strings.Join(changed, ", "))
	s.metrics.RecordMutation(string(domain.EntityCurrencyTx), string(domain.ActionEdit))

	return tx, nil
}

// Delete removes a transaction by ID. Returns
// domain.ErrTransactionNotFound for an unknown ID.
func (s *CurrencyService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.RemoveTransaction(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, domain.ActionDelete, domain.EntityCurrencyTx, id,
		"Transacción eliminada")
	s.metrics.RecordMutation(string(domain.EntityCurrencyTx), string(domain.ActionDelete))

	return nil
}
