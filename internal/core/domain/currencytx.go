package domain

// CurrencyTransaction is a foreign-currency buy/sell operation,
// independent of device sales. Totals and profit are derived from the
// quantity and unit prices on every write; no uniqueness constraint.
type CurrencyTransaction struct {
	ID string `json:"id"`

	// Date is the operation date (date-only string).
	Date string `json:"fecha"`

	// Counterparty is the party the currency was bought from.
	Counterparty string `json:"cliente"`

	// Buyer is the party the currency was sold to.
	Buyer string `json:"clienteVenta"`

	// Quantity is the amount of foreign currency traded.
	Quantity float64 `json:"cantidad"`

	// UnitCost and UnitSale are the per-unit prices in local currency.
	UnitCost float64 `json:"precioCosto"`
	UnitSale float64 `json:"precioVenta"`

	// Derived: TotalCost = Quantity * UnitCost, TotalSale = Quantity *
	// UnitSale, Profit = TotalSale - TotalCost.
	TotalCost float64 `json:"costoPesos"`
	TotalSale float64 `json:"ventaPesos"`
	Profit    float64 `json:"ganancia"`

	// Channel is the operation channel (TRANSFERENCIA, EFECTIVO, ...).
	Channel string `json:"operacion"`
}

// Recompute refreshes the derived totals from quantity and unit prices.
func (t *CurrencyTransaction) Recompute() {
	t.TotalCost = t.Quantity * t.UnitCost
	t.TotalSale = t.Quantity * t.UnitSale
	t.Profit = t.TotalSale - t.TotalCost
}

// Clone returns a copy of the transaction.
func (t *CurrencyTransaction) Clone() *CurrencyTransaction {
	c := *t
	return &c
}

// TransactionPatch is a partial update for a CurrencyTransaction.
// Derived totals have no patch fields.
type TransactionPatch struct {
	Date         *string  `json:"fecha,omitempty"`
	Counterparty *string  `json:"cliente,omitempty"`
	Buyer        *string  `json:"clienteVenta,omitempty"`
	Quantity     *float64 `json:"cantidad,omitempty"`
	UnitCost     *float64 `json:"precioCosto,omitempty"`
	UnitSale     *float64 `json:"precioVenta,omitempty"`
	Channel      *string  `json:"operacion,omitempty"`
}

// Apply merges the patch onto the transaction and returns the names of
// the fields that were set. The caller recomputes totals afterwards,
// even when only unrelated fields changed.
func (p *TransactionPatch) Apply(t *CurrencyTransaction) []string {
	var changed []string
	setStr := func(dst *string, src *string, name string) {
		if src != nil {
			*dst = *src
			changed = append(changed, name)
		}
	}
	setF64 := func(dst *float64, src *float64, name string) {
		if src != nil {
			*dst = *src
			changed = append(changed, name)
		}
	}
	setStr(&t.Date, p.Date, "fecha")
	setStr(&t.Counterparty, p.Counterparty, "cliente")
	setStr(&t.Buyer, p.Buyer, "clienteVenta")
	setF64(&t.Quantity, p.Quantity, "cantidad")
	setF64(&t.UnitCost, p.UnitCost, "precioCosto")
	setF64(&t.UnitSale, p.UnitSale, "precioVenta")
	setStr(&t.Channel, p.Channel, "operacion")
	return changed
}
