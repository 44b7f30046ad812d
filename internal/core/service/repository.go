package service

import (
	"context"

	"github.com/maidanad/phoneledger-go/internal/core/domain"
)

// SaleRepository defines the storage interface for the sales collection.
type SaleRepository interface {
	// Sales returns a snapshot of the whole collection.
	Sales(ctx context.Context) []*domain.Sale

	// SaleByID returns one sale or domain.ErrSaleNotFound.
	SaleByID(ctx context.Context, id string) (*domain.Sale, error)

	// AppendSale adds a new sale.
	AppendSale(ctx context.Context, sale *domain.Sale) error

	// ReplaceSale swaps the stored sale with the same ID.
	ReplaceSale(ctx context.Context, sale *domain.Sale) error

	// RemoveSale deletes by ID and returns the removed record.
	RemoveSale(ctx context.Context, id string) (*domain.Sale, error)

	// ReplaceSales swaps the whole collection (bulk import).
	ReplaceSales(ctx context.Context, sales []*domain.Sale) error
}

// ClientRepository defines the storage interface for the client directory.
type ClientRepository interface {
	Clients(ctx context.Context) []*domain.Client
	ClientByID(ctx context.Context, id string) (*domain.Client, error)
	AppendClient(ctx context.Context, c *domain.Client) error
	ReplaceClient(ctx context.Context, c *domain.Client) error
	RemoveClient(ctx context.Context, id string) (*domain.Client, error)
}

// TransactionRepository defines the storage interface for currency
// transactions.
type TransactionRepository interface {
	Transactions(ctx context.Context) []*domain.CurrencyTransaction
	TransactionByID(ctx context.Context, id string) (*domain.CurrencyTransaction, error)
	AppendTransaction(ctx context.Context, tx *domain.CurrencyTransaction) error
	ReplaceTransaction(ctx context.Context, tx *domain.CurrencyTransaction) error
	RemoveTransaction(ctx context.Context, id string) (*domain.CurrencyTransaction, error)
	ReplaceTransactions(ctx context.Context, txs []*domain.CurrencyTransaction) error
}

// AuditRepository defines the storage interface for the audit log.
type AuditRepository interface {
	// AuditEntries returns the newest-first log, optionally limited.
	AuditEntries(ctx context.Context, limit int) []*domain.AuditEntry

	// PrependAuditEntry inserts at the head and truncates to the cap.
	PrependAuditEntry(ctx context.Context, entry *domain.AuditEntry) error
}

// PreferenceRepository defines the storage interface for session
// preferences.
type PreferenceRepository interface {
	ExchangeRate(ctx context.Context) float64
	SetExchangeRate(ctx context.Context, rate float64) error
	DarkMode(ctx context.Context) bool
	SetDarkMode(ctx context.Context, dark bool) error
}
