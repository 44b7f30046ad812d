package ledgerstore

import (
	"fmt"

	"github.com/maidanad/phoneledger-go/internal/core/domain"
)

// Sample dataset written on first run so the dashboard is not empty.
// Contents mirror the demo data the ledger originally shipped with,
// with the randomized bits (IMEIs, paid/delivered flags) made
// deterministic.

// SampleClients builds the demo client directory.
func SampleClients() ([]*domain.Client, error) {
	seed := []domain.Client{
		{Name: "Juan García", Phone: "+54 11 5555-1001", Email: "juan.garcia@email.com", Address: "Palermo, CABA", Instagram: "@juangarcia", Notes: "Cliente frecuente", CreatedAt: "2026-01-01"},
		{Name: "María López", Phone: "+54 11 5555-1002", Email: "maria.lopez@email.com", Address: "Belgrano, CABA", Instagram: "@marialopez", CreatedAt: "2026-01-02"},
		{Name: "Carlos Rodríguez", Phone: "+54 11 5555-1003", Email: "carlos@email.com", Address: "Recoleta, CABA", Notes: "Prefiere efectivo", CreatedAt: "2026-01-05"},
		{Name: "Ana Martínez", Phone: "+54 11 5555-1004", Email: "ana.m@email.com", Address: "San Isidro, GBA", Instagram: "@anamartinez", CreatedAt: "2026-01-10"},
		{Name: "Pedro Sánchez", Phone: "+54 11 5555-1005", Address: "Caballito, CABA", CreatedAt: "2026-01-15"},
		{Name: "Lucía Fernández", Phone: "+54 11 5555-1006", Email: "lucia.f@email.com", Address: "Núñez, CABA", Instagram: "@luciafernandez", Notes: "Interesada en Pro Max", CreatedAt: "2026-02-01"},
		{Name: "Diego Torres", Phone: "+54 11 5555-1007", Address: "Flores, CABA", Instagram: "@diegotorres", CreatedAt: "2026-02-10"},
		{Name: "Valentina Ruiz", Phone: "+54 11 5555-1008", Email: "vale.ruiz@email.com", Address: "Olivos, GBA", CreatedAt: "2026-03-01"},
		{Name: "Matías Gómez", Phone: "+54 11 5555-1009", Address: "Quilmes, GBA", Instagram: "@matiasgomez", Notes: "Pagó con crypto", CreatedAt: "2026-03-15"},
		{Name: "Sofía Díaz", Phone: "+54 11 5555-1010", Email: "sofia.diaz@email.com", Address: "Almagro, CABA", Instagram: "@sofiadiaz", CreatedAt: "2026-04-01"},
		{Name: "Nicolás Castro", Phone: "+54 11 5555-1011", Address: "Villa Urquiza, CABA", CreatedAt: "2026-04-10"},
		{Name: "Camila Morales", Phone: "+54 11 5555-1012", Email: "camila@email.com", Address: "Pilar, GBA", Instagram: "@camilamorales", CreatedAt: "2026-05-01"},
		{Name: "Facundo Álvarez", Phone: "+54 11 5555-1013", Address: "San Telmo, CABA", CreatedAt: "2026-05-10"},
		{Name: "Florencia Romero", Phone: "+54 11 5555-1014", Email: "flor.romero@email.com", Address: "Tigre, GBA", Instagram: "@florromero", Notes: "Quiere iPhone 16 cuando llegue", CreatedAt: "2026-06-01"},
	}

	out := make([]*domain.Client, len(seed))
	for i := range seed {
		id, err := domain.NewClientID()
		if err != nil {
			return nil, err
		}
		c := seed[i]
		c.ID = id
		out[i] = &c
	}
	return out, nil
}

// sampleSaleSeed is the per-sale variable part of the demo dataset.
type sampleSaleSeed struct {
	date      string
	model     string
	condition string
	capacity  int
	battery   int
	color     string
	costUSD   float64
	saleUSD   float64
	notes     string
}

// SampleSales builds the demo sales collection at the default exchange
// rate.
func SampleSales() ([]*domain.Sale, error) {
	suppliers := []string{"TechStore BA", "iWorld Mendoza", "AppleCenter CABA", "MobileShop Córdoba", "PhoneMax Rosario"}
	customers := []string{
		"Juan García", "María López", "Carlos Rodríguez", "Ana Martínez",
		"Pedro Sánchez", "Lucía Fernández", "Diego Torres", "Valentina Ruiz",
		"Matías Gómez", "Sofía Díaz", "Nicolás Castro", "Camila Morales",
		"Facundo Álvarez", "Florencia Romero",
	}
	accessories := []string{
		"VIDRIO TEMPLADO, FUNDA SILICONA", "FUNDA RIGIDA", "VIDRIO TEMPLADO",
		"CARGADOR, FUNDA SILICONA", "VIDRIO TEMPLADO, FUNDA SILICONA, CARGADOR",
		"CAJA ORIGINAL, CABLE USB-C",
	}
	paymentMethods := []string{"EFECTIVO", "TRANSFERENCIA", "MERCADO PAGO", "CRYPTO", "MIXTO"}

	seed := []sampleSaleSeed{
		{"2026-01-05", "13 Pro Max", domain.ConditionUsed, 256, 88, "NEGRO", 580, 720, "Pequeño rayón en esquina"},
		{"2026-01-12", "14 Pro", domain.ConditionNew, 128, 100, "AZUL", 820, 980, ""},
		{"2026-01-20", "12", domain.ConditionUsed, 64, 82, "BLANCO", 320, 430, "Cliente referido por María"},
		{"2026-01-28", "15 Pro", domain.ConditionNew, 256, 100, "TITANIO NATURAL", 1050, 1250, ""},
		{"2026-02-03", "15 Pro Max", domain.ConditionNew, 512, 100, "TITANIO NEGRO", 1250, 1480, ""},
		{"2026-02-10", "13", domain.ConditionUsed, 128, 90, "ROJO", 420, 560, ""},
		{"2026-02-18", "14 Pro Max", domain.ConditionUsed, 256, 92, "MORADO", 750, 920, "Incluye AirPods como bonus"},
		{"2026-03-02", "14 Pro Max", domain.ConditionNew, 512, 100, "DORADO", 1100, 1350, ""},
		{"2026-03-08", "12 Pro", domain.ConditionUsed, 128, 85, "PLATEADO", 380, 500, ""},
		{"2026-03-15", "15", domain.ConditionNew, 128, 100, "AZUL", 720, 880, ""},
		{"2026-03-22", "11", domain.ConditionUsed, 64, 78, "NEGRO", 230, 340, "Batería por debajo del 80%"},
		{"2026-04-01", "16 Pro", domain.ConditionNew, 256, 100, "TITANIO NATURAL", 1150, 1380, ""},
		{"2026-04-10", "14", domain.ConditionUsed, 128, 91, "BLANCO", 520, 670, ""},
		{"2026-04-18", "13 Pro", domain.ConditionUsed, 256, 87, "VERDE", 550, 700, ""},
		{"2026-05-05", "16 Pro Max", domain.ConditionNew, 512, 100, "TITANIO BLANCO", 1350, 1600, "Entrega especial a domicilio"},
		{"2026-05-12", "15 Plus", domain.ConditionNew, 256, 100, "ROSA", 850, 1020, ""},
		{"2026-05-20", "12 Mini", domain.ConditionUsed, 64, 80, "ROJO", 280, 380, ""},
		{"2026-06-03", "15 Pro", domain.ConditionUsed, 256, 94, "TITANIO AZUL", 900, 1100, ""},
		{"2026-06-15", "14 Plus", domain.ConditionNew, 128, 100, "AMARILLO", 700, 850, ""},
	}

	out := make([]*domain.Sale, len(seed))
	for i, row := range seed {
		id, err := domain.NewSaleID()
		if err != nil {
			return nil, err
		}

		delivered := i%6 != 5
		deliveryDate := ""
		if delivered {
			deliveryDate = row.date
		}

		sale := &domain.Sale{
			ID:            id,
			SaleDate:      row.date,
			Supplier:      suppliers[i%len(suppliers)],
			Customer:      customers[i%len(customers)],
			CustomerPhone: fmt.Sprintf("+54 11 5555-10%02d", i%len(customers)+1),
			Model:         row.model,
			Condition:     row.condition,
			Capacity:      row.capacity,
			Battery:       row.battery,
			Color:         row.color,
			CostUSD:       row.costUSD,
			CostARS:       row.costUSD * DefaultExchangeRate,
			SaleUSD:       row.saleUSD,
			SaleARS:       row.saleUSD * DefaultExchangeRate,
			Paid:          i%4 != 3,
			PaymentMethod: paymentMethods[i%len(paymentMethods)],
			Accessories:   accessories[i%len(accessories)],
			Delivered:     delivered,
			DeliveryDate:  deliveryDate,
			IMEI:          fmt.Sprintf("%d", 350000000000000+int64(i)*4111111),
			Notes:         row.notes,
		}
		sale.Recompute()
		out[i] = sale
	}
	return out, nil
}

// SampleTransactions builds the demo currency transactions.
func SampleTransactions() ([]*domain.CurrencyTransaction, error) {
	seed := []domain.CurrencyTransaction{
		{Date: "2026-01-10", Counterparty: "Exchange House A", Buyer: "Juan García", Quantity: 500, UnitCost: 1180, UnitSale: 1210, Channel: "TRANSFERENCIA"},
		{Date: "2026-02-05", Counterparty: "Crypto Exchange", Buyer: "María López", Quantity: 1000, UnitCost: 1190, UnitSale: 1225, Channel: "CRYPTO"},
		{Date: "2026-03-12", Counterparty: "Exchange House B", Buyer: "Carlos Rodríguez", Quantity: 750, UnitCost: 1200, UnitSale: 1240, Channel: "EFECTIVO"},
		{Date: "2026-04-08", Counterparty: "Exchange House A", Buyer: "Ana Martínez", Quantity: 300, UnitCost: 1210, UnitSale: 1250, Channel: "MERCADO PAGO"},
	}

	out := make([]*domain.CurrencyTransaction, len(seed))
	for i := range seed {
		id, err := domain.NewTransactionID()
		if err != nil {
			return nil, err
		}
		tx := seed[i]
		tx.ID = id
		tx.Recompute()
		out[i] = &tx
	}
	return out, nil
}
