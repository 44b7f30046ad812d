package report

import (
	"context"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/maidanad/phoneledger-go/internal/core/domain"
	"github.com/maidanad/phoneledger-go/internal/core/service"
)

// Sheet names fixed by the historical export format.
const (
	SheetSummary      = "RESUMEN"
	SheetTransactions = "TRANS USD"
	SheetClients      = "Clientes"
)

// Service assembles Excel workbooks from the live collections.
type Service struct {
	sales   service.SaleRepository
	txs     service.TransactionRepository
	clients service.ClientRepository
}

// NewService creates a report Service over the given repositories.
func NewService(sales service.SaleRepository, txs service.TransactionRepository, clients service.ClientRepository) *Service {
	return &Service{sales: sales, txs: txs, clients: clients}
}

// yearSaleHeaders are the columns of the per-month sheets in the
// full-year workbook.
var yearSaleHeaders = []string{
	"FECHA VENTA", "GARANTIA", "PROVEEDOR", "CLIENTE", "IPHONE", "ESTADO",
	"CAPACIDAD", "BATERIA %", "COLOR", "COSTO USD", "COSTO ARS",
	"VENTA USD", "VENTA ARS", "GANANCIA ARS", "PAGADO", "ACCESORIOS",
	"ENTREGADO", "IMEI",
}

// monthSaleHeaders are the columns of the single-month workbook. The
// month download carries the contact and payment detail columns the
// year workbook omits.
var monthSaleHeaders = []string{
	"FECHA VENTA", "GARANTIA", "PROVEEDOR", "CLIENTE", "TELEFONO",
	"IPHONE", "ESTADO", "CAPACIDAD", "BATERIA %", "COLOR", "COSTO USD",
	"COSTO ARS", "VENTA USD", "VENTA ARS", "GANANCIA ARS", "PAGADO",
	"METODO PAGO", "ACCESORIOS", "ENTREGADO", "IMEI", "NOTAS",
}

var transactionHeaders = []string{
	"FECHA", "CLIENTE", "CLIENTE VENTA", "CANTIDAD", "PRECIO COSTO",
	"PRECIO VENTA", "COSTO PESOS", "VENTA PESOS", "GANANCIA", "OPERACION",
}

var clientHeaders = []string{
	"NOMBRE", "TELEFONO", "EMAIL", "DIRECCION", "INSTAGRAM", "NOTAS",
	"COMPRAS", "FECHA REGISTRO",
}

var summaryHeaders = []string{
	"MES", "TRANSACCIONES", "COSTO USD", "COSTO ARS", "VENTA USD",
	"VENTA ARS", "GANANCIA ARS",
}

// YearWorkbook builds the full-year workbook: the RESUMEN sheet, one
// sheet per month that has sales, and the TRANS USD sheet when any
// currency transactions exist.
func (s *Service) YearWorkbook(ctx context.Context) (*excelize.File, error) {
	sales := s.sales.Sales(ctx)
	txs := s.txs.Transactions(ctx)

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		f.Close()
		return nil, err
	}

	if err := s.writeSummarySheet(f, sales); err != nil {
		f.Close()
		return nil, err
	}

	// One sheet per month with sales, named after the month (trimmed to
	// the historical 10-character sheet name limit).
	for i, name := range domain.Months {
		var monthly []*domain.Sale
		for _, sale := range sales {
			if sale.Month == i {
				monthly = append(monthly, sale)
			}
		}
		if len(monthly) == 0 {
			continue
		}

		sheet := name
		if len(sheet) > 10 {
			sheet = sheet[:10]
		}
		if _, err := f.NewSheet(sheet); err != nil {
			f.Close()
			return nil, err
		}
		if err := writeSaleRows(f, sheet, yearSaleHeaders, monthly, yearSaleRow); err != nil {
			f.Close()
			return nil, err
		}
	}

	if len(txs) > 0 {
		if err := s.writeTransactionSheet(f, txs); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

// MonthWorkbook builds a workbook with a single sheet holding the given
// month's sales (zero-based month index) and a total row.
func (s *Service) MonthWorkbook(ctx context.Context, month int) (*excelize.File, error) {
	if month < 0 || month > 11 {
		return nil, domain.ErrInvalidArgument.WithDetails("month out of range")
	}

	var monthly []*domain.Sale
	for _, sale := range s.sales.Sales(ctx) {
		if sale.Month == month {
			monthly = append(monthly, sale)
		}
	}

	f := excelize.NewFile()
	sheet := domain.Months[month]
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, err
	}

	if err := writeSaleRows(f, sheet, monthSaleHeaders, monthly, monthSaleRow); err != nil {
		f.Close()
		return nil, err
	}

	// Total row under the listing.
	var profit, saleUSD float64
	for _, sale := range monthly {
		profit += sale.ProfitARS
		saleUSD += sale.SaleUSD
	}
	totalRow := len(monthly) + 2
	cell := fmt.Sprintf("A%d", totalRow)
	if err := f.SetSheetRow(sheet, cell, &[]any{
		"TOTAL", "", "", "", "", "", "", len(monthly), "", "", "",
		"", displayUSD(saleUSD), "", displayARS(profit),
	}); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

// ClientsWorkbook builds the client directory workbook. The COMPRAS
// column counts each client's sales by name match.
func (s *Service) ClientsWorkbook(ctx context.Context) (*excelize.File, error) {
	clients := s.clients.Clients(ctx)
	sales := s.sales.Sales(ctx)

	countByName := make(map[string]int, len(clients))
	for _, sale := range sales {
		countByName[sale.Customer]++
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetClients); err != nil {
		f.Close()
		return nil, err
	}

	header := toAnySlice(clientHeaders)
	if err := f.SetSheetRow(SheetClients, "A1", &header); err != nil {
		f.Close()
		return nil, err
	}
	for i, c := range clients {
		cell := fmt.Sprintf("A%d", i+2)
		row := []any{
			c.Name, c.Phone, c.Email, c.Address, c.Instagram, c.Notes,
			countByName[c.Name], c.CreatedAt,
		}
		if err := f.SetSheetRow(SheetClients, cell, &row); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

// writeSummarySheet writes the RESUMEN sheet: one row per month plus a
// TOTAL row.
func (s *Service) writeSummarySheet(f *excelize.File, sales []*domain.Sale) error {
	header := toAnySlice(summaryHeaders)
	if err := f.SetSheetRow(SheetSummary, "A1", &header); err != nil {
		return err
	}

	monthly := domain.SummarizeMonths(sales)
	for i, m := range monthly {
		cell := fmt.Sprintf("A%d", i+2)
		row := []any{m.Name, m.Count, m.CostUSD, m.CostARS, m.SaleUSD, m.SaleARS, m.ProfitARS}
		if err := f.SetSheetRow(SheetSummary, cell, &row); err != nil {
			return err
		}
	}

	annual := domain.SummarizeYear(sales)
	totalCell := fmt.Sprintf("A%d", len(monthly)+2)
	totalRow := []any{
		"TOTAL", annual.Count, annual.CostUSD, annual.CostARS,
		annual.SaleUSD, annual.SaleARS, annual.ProfitARS,
	}
	return f.SetSheetRow(SheetSummary, totalCell, &totalRow)
}

// writeTransactionSheet writes the TRANS USD sheet.
func (s *Service) writeTransactionSheet(f *excelize.File, txs []*domain.CurrencyTransaction) error {
	if _, err := f.NewSheet(SheetTransactions); err != nil {
		return err
	}
	header := toAnySlice(transactionHeaders)
	if err := f.SetSheetRow(SheetTransactions, "A1", &header); err != nil {
		return err
	}

	for i, tx := range txs {
		cell := fmt.Sprintf("A%d", i+2)
		row := []any{
			tx.Date, tx.Counterparty, tx.Buyer, tx.Quantity, tx.UnitCost,
			tx.UnitSale, tx.TotalCost, tx.TotalSale, tx.Profit, tx.Channel,
		}
		if err := f.SetSheetRow(SheetTransactions, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// writeSaleRows writes a header row followed by one row per sale.
func writeSaleRows(f *excelize.File, sheet string, headers []string, sales []*domain.Sale, toRow func(*domain.Sale) []any) error {
	header := toAnySlice(headers)
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, sale := range sales {
		cell := fmt.Sprintf("A%d", i+2)
		row := toRow(sale)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func yearSaleRow(s *domain.Sale) []any {
	return []any{
		s.SaleDate, s.Warranty, s.Supplier, s.Customer, s.Model,
		s.Condition, s.Capacity, strconv.Itoa(s.Battery) + "%", s.Color,
		s.CostUSD, s.CostARS, s.SaleUSD, s.SaleARS, s.ProfitARS,
		yesNo(s.Paid), s.Accessories, yesNo(s.Delivered), s.IMEI,
	}
}

func monthSaleRow(s *domain.Sale) []any {
	return []any{
		s.SaleDate, s.Warranty, s.Supplier, s.Customer, s.CustomerPhone,
		s.Model, s.Condition, s.Capacity, strconv.Itoa(s.Battery) + "%",
		s.Color, s.CostUSD, s.CostARS, s.SaleUSD, s.SaleARS, s.ProfitARS,
		yesNo(s.Paid), s.PaymentMethod, s.Accessories, yesNo(s.Delivered),
		s.IMEI, s.Notes,
	}
}

func yesNo(b bool) string {
	if b {
		return "SI"
	}
	return "NO"
}

func toAnySlice(in []string) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
