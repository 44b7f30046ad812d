package service

import (
	"context"
	"sort"

	"github.com/maidanad/phoneledger-go/internal/core/domain"
)

// DefaultWarrantyWindow is how many days ahead the warranty widget
// looks when no window is given.
const DefaultWarrantyWindow = 7

// SummaryService derives the dashboard aggregates from the live sales
// collection. Summaries are computed on demand, never stored.
type SummaryService struct {
	sales SaleRepository
	txs   TransactionRepository
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(sales SaleRepository, txs TransactionRepository) *SummaryService {
	return &SummaryService{sales: sales, txs: txs}
}

// Monthly returns the twelve per-month sales aggregates.
func (s *SummaryService) Monthly(ctx context.Context) [12]domain.MonthlySummary {
	return domain.SummarizeMonths(s.sales.Sales(ctx))
}

// Annual returns the whole-collection sales aggregate.
func (s *SummaryService) Annual(ctx context.Context) domain.AnnualSummary {
	return domain.SummarizeYear(s.sales.Sales(ctx))
}

// CurrencyTotals aggregates all currency transactions.
type CurrencyTotals struct {
	Count     int     `json:"transacciones"`
	Quantity  float64 `json:"cantidad"`
	TotalCost float64 `json:"costoPesos"`
	TotalSale float64 `json:"ventaPesos"`
	Profit    float64 `json:"ganancia"`
}

// WarrantyAlert flags a sale whose warranty window closes within the
// requested number of days.
type WarrantyAlert struct {
	Sale     *domain.Sale `json:"venta"`
	DaysLeft int          `json:"diasRestantes"`
}

// ExpiringWarranties returns the sales whose warranty expires within
// the next days days, soonest first. Already-expired warranties and
// sales without a parseable warranty date are excluded. A window of
// zero or less falls back to DefaultWarrantyWindow.
func (s *SummaryService) ExpiringWarranties(ctx context.Context, days int) []WarrantyAlert {
	if days <= 0 {
		days = DefaultWarrantyWindow
	}

	var out []WarrantyAlert
	for _, sale := range s.sales.Sales(ctx) {
		if _, err := domain.ParseDate(sale.Warranty); err != nil {
			continue
		}
		left := domain.DaysUntil(sale.Warranty)
		if left < 0 || left > days {
			continue
		}
		out = append(out, WarrantyAlert{Sale: sale, DaysLeft: left})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].DaysLeft < out[j].DaysLeft })
	return out
}

// Currency returns the aggregate across all currency transactions.
func (s *SummaryService) Currency(ctx context.Context) CurrencyTotals {
	var out CurrencyTotals
	for _, tx := range s.txs.Transactions(ctx) {
		out.Count++
		out.Quantity += tx.Quantity
		out.TotalCost += tx.TotalCost
		out.TotalSale += tx.TotalSale
		out.Profit += tx.Profit
	}
	return out
}
