package report

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/maidanad/phoneledger-go/internal/core/domain"
	"github.com/maidanad/phoneledger-go/internal/storage"
	"github.com/maidanad/phoneledger-go/internal/storage/ledgerstore"
)

func newTestService(t *testing.T) (*Service, *ledgerstore.Store) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	kv := storage.NewMemoryEngine()
	t.Cleanup(func() { kv.Close() })

	store := ledgerstore.New(kv, logger, ledgerstore.WithSeed(false))
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("load store: %v", err)
	}

	return NewService(store, store, store), store
}

func seedSale(t *testing.T, store *ledgerstore.Store, date, customer, imei string, costARS, saleARS float64) *domain.Sale {
	t.Helper()
	sale := &domain.Sale{
		SaleDate: date,
		Customer: customer,
		Model:    "13 Pro",
		Capacity: 128,
		Battery:  95,
		CostARS:  costARS,
		SaleARS:  saleARS,
		IMEI:     imei,
		Paid:     true,
	}
	id, err := domain.NewSaleID()
	if err != nil {
		t.Fatalf("sale id: %v", err)
	}
	sale.ID = id
	sale.Recompute()
	if err := store.AppendSale(context.Background(), sale); err != nil {
		t.Fatalf("append sale: %v", err)
	}
	return sale
}

func TestYearWorkbook(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	seedSale(t, store, "2024-01-15", "Lucia Paz", "350000000000021", 500000, 620000)
	seedSale(t, store, "2024-01-20", "Mario Vega", "350000000000022", 300000, 390000)
	seedSale(t, store, "2024-04-02", "Lucia Paz", "350000000000023", 700000, 810000)

	tx := &domain.CurrencyTransaction{
		ID: "usd-report-1", Date: "2024-02-10", Counterparty: "Roberto",
		Quantity: 500, UnitCost: 1180, UnitSale: 1210, Channel: "TRANSFERENCIA",
	}
	tx.Recompute()
	if err := store.AppendTransaction(ctx, tx); err != nil {
		t.Fatalf("append tx: %v", err)
	}

	f, err := svc.YearWorkbook(ctx)
	if err != nil {
		t.Fatalf("year workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := map[string]bool{SheetSummary: false, "ENERO": false, "ABRIL": false, SheetTransactions: false}
	for _, s := range sheets {
		if _, ok := want[s]; ok {
			want[s] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("sheet %q missing, got %v", name, sheets)
		}
	}
	for _, s := range sheets {
		if s == "FEBRERO" {
			t.Error("empty month got a sheet")
		}
	}

	// RESUMEN: header, january row, total row.
	if got, _ := f.GetCellValue(SheetSummary, "A1"); got != "MES" {
		t.Errorf("summary A1 = %q, want MES", got)
	}
	if got, _ := f.GetCellValue(SheetSummary, "B2"); got != "2" {
		t.Errorf("enero transacciones = %q, want 2", got)
	}
	if got, _ := f.GetCellValue(SheetSummary, "G2"); got != "210000" {
		t.Errorf("enero ganancia = %q, want 210000", got)
	}
	if got, _ := f.GetCellValue(SheetSummary, "A14"); got != "TOTAL" {
		t.Errorf("summary A14 = %q, want TOTAL", got)
	}
	if got, _ := f.GetCellValue(SheetSummary, "B14"); got != "3" {
		t.Errorf("total transacciones = %q, want 3", got)
	}

	// ENERO sheet rows.
	if got, _ := f.GetCellValue("ENERO", "A1"); got != "FECHA VENTA" {
		t.Errorf("enero A1 = %q", got)
	}
	if got, _ := f.GetCellValue("ENERO", "D2"); got != "Lucia Paz" {
		t.Errorf("enero D2 = %q, want Lucia Paz", got)
	}
	if got, _ := f.GetCellValue("ENERO", "H2"); got != "95%" {
		t.Errorf("enero battery cell = %q, want 95%%", got)
	}
	if got, _ := f.GetCellValue("ENERO", "O2"); got != "SI" {
		t.Errorf("enero pagado = %q, want SI", got)
	}

	// TRANS USD sheet.
	if got, _ := f.GetCellValue(SheetTransactions, "G2"); got != "590000" {
		t.Errorf("trans usd costo pesos = %q, want 590000", got)
	}
}

func TestMonthWorkbook(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	seedSale(t, store, "2024-03-05", "Carla Nieto", "350000000000031", 600000, 730000)
	seedSale(t, store, "2024-03-18", "Bruno Sosa", "350000000000032", 400000, 470000)
	seedSale(t, store, "2024-05-01", "Otro Mes", "350000000000033", 100000, 120000)

	f, err := svc.MonthWorkbook(ctx, 2)
	if err != nil {
		t.Fatalf("month workbook: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetList(); len(got) != 1 || got[0] != "MARZO" {
		t.Fatalf("sheets = %v, want [MARZO]", got)
	}

	rows, err := f.GetRows("MARZO")
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	// Header + 2 sales + total row.
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(rows))
	}
	if rows[0][4] != "TELEFONO" {
		t.Errorf("header col 5 = %q, want TELEFONO", rows[0][4])
	}
	if rows[3][0] != "TOTAL" {
		t.Errorf("last row = %q, want TOTAL", rows[3][0])
	}
}

func TestMonthWorkbookOutOfRange(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.MonthWorkbook(context.Background(), 12); !domain.IsDomainError(err, "PL-ARG-1002") {
		t.Fatalf("err = %v, want invalid argument", err)
	}
}

func TestClientsWorkbook(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	client := &domain.Client{
		ID: "cli-report-1", Name: "Lucia Paz", Phone: "+54 11 5555-0303",
		Instagram: "@lucia.paz", CreatedAt: "2024-01-02",
	}
	if err := store.AppendClient(ctx, client); err != nil {
		t.Fatalf("append client: %v", err)
	}
	seedSale(t, store, "2024-02-01", "Lucia Paz", "350000000000041", 100000, 150000)
	seedSale(t, store, "2024-02-02", "Lucia Paz", "350000000000042", 100000, 150000)

	f, err := svc.ClientsWorkbook(ctx)
	if err != nil {
		t.Fatalf("clients workbook: %v", err)
	}
	defer f.Close()

	if got, _ := f.GetCellValue(SheetClients, "A2"); got != "Lucia Paz" {
		t.Errorf("A2 = %q, want Lucia Paz", got)
	}
	if got, _ := f.GetCellValue(SheetClients, "G2"); got != "2" {
		t.Errorf("compras = %q, want 2", got)
	}
	if got, _ := f.GetCellValue(SheetClients, "H2"); got != "2024-01-02" {
		t.Errorf("fecha registro = %q", got)
	}
}
