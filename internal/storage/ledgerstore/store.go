package ledgerstore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"sync"

	"github.com/maidanad/phoneledger-go/internal/core/domain"
	"github.com/maidanad/phoneledger-go/internal/storage"
)

// Persisted slice keys. Unchanged from the original data layout so an
// existing data set keeps working.
const (
	KeySales        = "iphone-sales-v2"
	KeyClients      = "iphone-clients"
	KeyTransactions = "iphone-usd-tx"
	KeyAudit        = "iphone-logs"
	KeyRate         = "iphone-rate"
	KeyDark         = "iphone-dark"
)

// DefaultExchangeRate is the seed value used when no rate was persisted.
const DefaultExchangeRate = 1200

// Store is the in-memory ledger state, mirrored to a KV engine after
// every mutation.
type Store struct {
	mu     sync.RWMutex
	kv     storage.KVEngine
	logger *slog.Logger

	sales        []*domain.Sale
	clients      []*domain.Client
	transactions []*domain.CurrencyTransaction
	audit        []*domain.AuditEntry
	rate         float64
	dark         bool

	seedOnEmpty    bool
	defaultRate    float64
	onPersistError func(key string)
}

// Option configures the Store.
type Option func(*Store)

// WithSeed controls whether missing or unparseable slices are seeded
// with the built-in sample dataset. Defaults to true.
func WithSeed(enabled bool) Option {
	return func(s *Store) {
		s.seedOnEmpty = enabled
	}
}

// WithDefaultRate sets the exchange rate used when none is persisted.
func WithDefaultRate(rate float64) Option {
	return func(s *Store) {
		s.defaultRate = rate
	}
}

// WithPersistErrorHook installs a callback invoked whenever mirroring a
// slice to the KV engine fails. Used to feed the failure counter.
func WithPersistErrorHook(fn func(key string)) Option {
	return func(s *Store) {
		s.onPersistError = fn
	}
}

// New creates a Store over the given KV engine. Call Load before use.
func New(kv storage.KVEngine, logger *slog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		kv:          kv,
		logger:      logger,
		seedOnEmpty: true,
		defaultRate: DefaultExchangeRate,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads every slice from the KV engine into memory. Missing or
// corrupted slices fall back to the sample dataset (when seeding is
// enabled) or to empty collections, and the fallback is written back.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := loadSlice(ctx, s, KeySales, &s.sales, SampleSales); err != nil {
		return err
	}
	if err := loadSlice(ctx, s, KeyClients, &s.clients, SampleClients); err != nil {
		return err
	}
	if err := loadSlice(ctx, s, KeyTransactions, &s.transactions, SampleTransactions); err != nil {
		return err
	}

	// The audit log is never seeded with samples.
	if err := loadSlice(ctx, s, KeyAudit, &s.audit, func() ([]*domain.AuditEntry, error) {
		return []*domain.AuditEntry{}, nil
	}); err != nil {
		return err
	}

	s.rate = s.loadRate(ctx)
	s.dark = s.loadDark(ctx)

	s.logger.Info("ledger loaded",
		"sales", len(s.sales),
		"clients", len(s.clients),
		"transactions", len(s.transactions),
		"audit_entries", len(s.audit),
		"exchange_rate", s.rate)

	return nil
}

// loadSlice reads one JSON collection, seeding on absence or corruption.
// Generic over the record type; caller holds the write lock.
func loadSlice[T any](ctx context.Context, s *Store, key string, dst *[]*T, seed func() ([]*T, error)) error {
	raw, err := s.kv.Get(ctx, []byte(key))
	if err == nil {
		var records []*T
		if jsonErr := json.Unmarshal(raw, &records); jsonErr == nil {
			*dst = records
			return nil
		}
		s.logger.Warn("persisted slice is corrupted, reseeding", "key", key)
	} else if !errors.Is(err, storage.ErrKeyNotFound) {
		return domain.ErrStorage.WithDetails("read "+key).WithCause(err)
	}

	if !s.seedOnEmpty {
		*dst = []*T{}
		s.persistLocked(ctx, key, *dst)
		return nil
	}

	records, err := seed()
	if err != nil {
		return err
	}
	*dst = records
	s.persistLocked(ctx, key, *dst)
	return nil
}

// loadRate reads the persisted exchange rate, falling back to the
// default. The rate is stored as plain decimal text.
func (s *Store) loadRate(ctx context.Context) float64 {
	raw, err := s.kv.Get(ctx, []byte(KeyRate))
	if err != nil {
		return s.defaultRate
	}
	rate, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		s.logger.Warn("persisted exchange rate is corrupted", "value", string(raw))
		return s.defaultRate
	}
	return rate
}

// loadDark reads the persisted dark-mode flag, stored as "true"/"false".
func (s *Store) loadDark(ctx context.Context) bool {
	raw, err := s.kv.Get(ctx, []byte(KeyDark))
	if err != nil {
		return false
	}
	return string(raw) == "true"
}

// persistLocked mirrors one slice to the KV engine. Best-effort: a
// failure is logged and counted, never propagated. Caller holds at
// least the read lock over the data being marshaled.
func (s *Store) persistLocked(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.persistFailed(key, err)
		return
	}
	if err := s.kv.Set(ctx, []byte(key), raw); err != nil {
		s.persistFailed(key, err)
	}
}

// persistRawLocked mirrors a scalar slice stored as plain text.
func (s *Store) persistRawLocked(ctx context.Context, key, value string) {
	if err := s.kv.Set(ctx, []byte(key), []byte(value)); err != nil {
		s.persistFailed(key, err)
	}
}

func (s *Store) persistFailed(key string, err error) {
	s.logger.Error("persist failed, in-memory state unaffected", "key", key, "error", err)
	if s.onPersistError != nil {
		s.onPersistError(key)
	}
}

// ----------------------------------------------------------------------------
// Sales
// ----------------------------------------------------------------------------

// Sales returns a snapshot of the sales collection.
func (s *Store) Sales(_ context.Context) []*domain.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Sale, len(s.sales))
	for i, sale := range s.sales {
		out[i] = sale.Clone()
	}
	return out
}

// SaleByID returns one sale or ErrSaleNotFound.
func (s *Store) SaleByID(_ context.Context, id string) (*domain.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sale := range s.sales {
		if sale.ID == id {
			return sale.Clone(), nil
		}
	}
	return nil, domain.ErrSaleNotFound
}

// AppendSale adds a sale and mirrors the collection.
func (s *Store) AppendSale(ctx context.Context, sale *domain.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sales = append(s.sales, sale.Clone())
	s.persistLocked(ctx, KeySales, s.sales)
	return nil
}

// ReplaceSale swaps the stored sale with the same ID.
func (s *Store) ReplaceSale(ctx context.Context, sale *domain.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.sales {
		if existing.ID == sale.ID {
			s.sales[i] = sale.Clone()
			s.persistLocked(ctx, KeySales, s.sales)
			return nil
		}
	}
	return domain.ErrSaleNotFound
}

// RemoveSale deletes a sale by ID and returns the removed record.
func (s *Store) RemoveSale(ctx context.Context, id string) (*domain.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.sales {
		if existing.ID == id {
			removed := existing
			s.sales = append(s.sales[:i], s.sales[i+1:]...)
			s.persistLocked(ctx, KeySales, s.sales)
			return removed, nil
		}
	}
	return nil, domain.ErrSaleNotFound
}

// ReplaceSales swaps the whole collection (bulk import).
func (s *Store) ReplaceSales(ctx context.Context, sales []*domain.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	replacement := make([]*domain.Sale, len(sales))
	for i, sale := range sales {
		replacement[i] = sale.Clone()
	}
	s.sales = replacement
	s.persistLocked(ctx, KeySales, s.sales)
	return nil
}

// ----------------------------------------------------------------------------
// Clients
// ----------------------------------------------------------------------------

// Clients returns a snapshot of the client directory.
func (s *Store) Clients(_ context.Context) []*domain.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Client, len(s.clients))
	for i, c := range s.clients {
		out[i] = c.Clone()
	}
	return out
}

// ClientByID returns one client or ErrClientNotFound.
func (s *Store) ClientByID(_ context.Context, id string) (*domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		if c.ID == id {
			return c.Clone(), nil
		}
	}
	return nil, domain.ErrClientNotFound
}

// AppendClient adds a client and mirrors the collection.
func (s *Store) AppendClient(ctx context.Context, c *domain.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = append(s.clients, c.Clone())
	s.persistLocked(ctx, KeyClients, s.clients)
	return nil
}

// ReplaceClient swaps the stored client with the same ID.
func (s *Store) ReplaceClient(ctx context.Context, c *domain.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.clients {
		if existing.ID == c.ID {
			s.clients[i] = c.Clone()
			s.persistLocked(ctx, KeyClients, s.clients)
			return nil
		}
	}
	return domain.ErrClientNotFound
}

// RemoveClient deletes a client by ID and returns the removed record.
func (s *Store) RemoveClient(ctx context.Context, id string) (*domain.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.clients {
		if existing.ID == id {
			removed := existing
			s.clients = append(s.clients[:i], s.clients[i+1:]...)
			s.persistLocked(ctx, KeyClients, s.clients)
			return removed, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

// ----------------------------------------------------------------------------
// Currency transactions
// ----------------------------------------------------------------------------

// Transactions returns a snapshot of the currency transactions.
func (s *Store) Transactions(_ context.Context) []*domain.CurrencyTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.CurrencyTransaction, len(s.transactions))
	for i, tx := range s.transactions {
		out[i] = tx.Clone()
	}
	return out
}

// TransactionByID returns one transaction or ErrTransactionNotFound.
func (s *Store) TransactionByID(_ context.Context, id string) (*domain.CurrencyTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, tx := range s.transactions {
		if tx.ID == id {
			return tx.Clone(), nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

// AppendTransaction adds a transaction and mirrors the collection.
func (s *Store) AppendTransaction(ctx context.Context, tx *domain.CurrencyTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, tx.Clone())
	s.persistLocked(ctx, KeyTransactions, s.transactions)
	return nil
}

// ReplaceTransaction swaps the stored transaction with the same ID.
func (s *Store) ReplaceTransaction(ctx context.Context, tx *domain.CurrencyTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.transactions {
		if existing.ID == tx.ID {
			s.transactions[i] = tx.Clone()
			s.persistLocked(ctx, KeyTransactions, s.transactions)
			return nil
		}
	}
	return domain.ErrTransactionNotFound
}

// RemoveTransaction deletes a transaction by ID.
func (s *Store) RemoveTransaction(ctx context.Context, id string) (*domain.CurrencyTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.transactions {
		if existing.ID == id {
			removed := existing
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			s.persistLocked(ctx, KeyTransactions, s.transactions)
			return removed, nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

// ReplaceTransactions swaps the whole collection (bulk import).
func (s *Store) ReplaceTransactions(ctx context.Context, txs []*domain.CurrencyTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	replacement := make([]*domain.CurrencyTransaction, len(txs))
	for i, tx := range txs {
		replacement[i] = tx.Clone()
	}
	s.transactions = replacement
	s.persistLocked(ctx, KeyTransactions, s.transactions)
	return nil
}

// ----------------------------------------------------------------------------
// Audit log
// ----------------------------------------------------------------------------

// AuditEntries returns the newest-first audit log. A limit <= 0 returns
// everything.
func (s *Store) AuditEntries(_ context.Context, limit int) []*domain.AuditEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.audit)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]*domain.AuditEntry, n)
	for i := 0; i < n; i++ {
		out[i] = s.audit[i].Clone()
	}
	return out
}

// PrependAuditEntry inserts an entry at the head and truncates the log
// to domain.MaxAuditEntries.
func (s *Store) PrependAuditEntry(ctx context.Context, entry *domain.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audit = append([]*domain.AuditEntry{entry.Clone()}, s.audit...)
	if len(s.audit) > domain.MaxAuditEntries {
		s.audit = s.audit[:domain.MaxAuditEntries]
	}
	s.persistLocked(ctx, KeyAudit, s.audit)
	return nil
}

// ----------------------------------------------------------------------------
// Preferences
// ----------------------------------------------------------------------------

// ExchangeRate returns the stored exchange rate.
func (s *Store) ExchangeRate(_ context.Context) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rate
}

// SetExchangeRate stores the exchange rate. No range validation: zero
// and negative values are accepted, matching the original behavior.
func (s *Store) SetExchangeRate(ctx context.Context, rate float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rate = rate
	s.persistRawLocked(ctx, KeyRate, strconv.FormatFloat(rate, 'f', -1, 64))
	return nil
}

// DarkMode returns the stored dark-mode flag.
func (s *Store) DarkMode(_ context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dark
}

// SetDarkMode stores the dark-mode flag.
func (s *Store) SetDarkMode(ctx context.Context, dark bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dark = dark
	s.persistRawLocked(ctx, KeyDark, strconv.FormatBool(dark))
	return nil
}
