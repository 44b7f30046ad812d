package domain

// Device condition values.
const (
	ConditionNew  = "NUEVO"
	ConditionUsed = "USADO"
)

// Sale represents one completed device resale transaction.
//
// JSON field names match the persisted layout of the ledger files, which
// keeps the stored data self-describing and directly inspectable.
type Sale struct {
	// ID is the unique identifier for the sale.
	ID string `json:"id"`

	// Month is the zero-based month index (0-11), derived from SaleDate.
	Month int `json:"month"`

	// SaleDate is the sale date (date-only string).
	SaleDate string `json:"fechaVenta"`

	// Warranty is the warranty expiry date, always SaleDate + 45 days.
	Warranty string `json:"garantia"`

	// Supplier is the name of the supplier the device was bought from.
	Supplier string `json:"proveedor"`

	// Customer identification, denormalized by value. Deleting the
	// matching Client entry does not touch these fields.
	Customer      string `json:"cliente"`
	CustomerPhone string `json:"clienteTelefono"`
	CustomerEmail string `json:"clienteEmail"`

	// Model is the device model (e.g. "13 Pro Max").
	Model string `json:"iphone"`

	// Condition is NUEVO or USADO.
	Condition string `json:"estado"`

	// Capacity is the storage capacity in GB.
	Capacity int `json:"capacidad"`

	// Battery is the battery health percentage.
	Battery int `json:"bateria"`

	Color string `json:"color"`

	// Cost and sale price in both currencies. ProfitARS is always
	// SaleARS - CostARS and never settable independently.
	CostUSD   float64 `json:"costoUSD"`
	CostARS   float64 `json:"costoARS"`
	SaleUSD   float64 `json:"ventaUSD"`
	SaleARS   float64 `json:"ventaARS"`
	ProfitARS float64 `json:"gananciaARS"`

	Paid          bool   `json:"pagado"`
	PaymentMethod string `json:"metodoPago"`

	// Accessories is a free-text, comma-separated list.
	Accessories string `json:"accesorios"`

	Delivered    bool   `json:"entregado"`
	DeliveryDate string `json:"fechaEntrega"`

	// IMEI is the device identifier, unique across all sales.
	IMEI string `json:"imei"`

	Notes string `json:"notas"`
}

// Recompute refreshes every derived field from its inputs: profit from
// the ARS amounts, warranty and month index from the sale date. Called
// on every create and update path so the invariants hold structurally.
func (s *Sale) Recompute() {
	s.ProfitARS = s.SaleARS - s.CostARS
	if s.SaleDate != "" {
		s.Warranty = AddDays(s.SaleDate, WarrantyDays)
		if m := MonthIndex(s.SaleDate); m >= 0 {
			s.Month = m
		}
	}
}

// Clone returns a deep copy of the sale.
func (s *Sale) Clone() *Sale {
	c := *s
	return &c
}

// SalePatch is a partial update for a Sale. Nil fields are left
// untouched. Derived fields (garantia, gananciaARS) and the ID are
// deliberately absent; they cannot be patched directly.
type SalePatch struct {
	SaleDate      *string  `json:"fechaVenta,omitempty"`
	Supplier      *string  `json:"proveedor,omitempty"`
	Customer      *string  `json:"cliente,omitempty"`
	CustomerPhone *string  `json:"clienteTelefono,omitempty"`
	CustomerEmail *string  `json:"clienteEmail,omitempty"`
	Model         *string  `json:"iphone,omitempty"`
	Condition     *string  `json:"estado,omitempty"`
	Capacity      *int     `json:"capacidad,omitempty"`
	Battery       *int     `json:"bateria,omitempty"`
	Color         *string  `json:"color,omitempty"`
	CostUSD       *float64 `json:"costoUSD,omitempty"`
	CostARS       *float64 `json:"costoARS,omitempty"`
	SaleUSD       *float64 `json:"ventaUSD,omitempty"`
	SaleARS       *float64 `json:"ventaARS,omitempty"`
	Paid          *bool    `json:"pagado,omitempty"`
	PaymentMethod *string  `json:"metodoPago,omitempty"`
	Accessories   *string  `json:"accesorios,omitempty"`
	Delivered     *bool    `json:"entregado,omitempty"`
	DeliveryDate  *string  `json:"fechaEntrega,omitempty"`
	IMEI          *string  `json:"imei,omitempty"`
	Notes         *string  `json:"notas,omitempty"`
}

// Apply merges the patch onto the sale and returns the persisted-layout
// names of the fields that were set, in declaration order. The caller is
// responsible for calling Recompute afterwards.
func (p *SalePatch) Apply(s *Sale) []string {
	var changed []string

	setStr := func(dst *string, src *string, name string) {
		if src != nil {
			*dst = *src
			changed = append(changed, name)
		}
	}
	setInt := func(dst *int, src *int, name string) {
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
	setBool := func(dst *bool, src *bool, name string) {
		if src != nil {
			*dst = *src
			changed = append(changed, name)
		}
	}

	setStr(&s.SaleDate, p.SaleDate, "fechaVenta")
	setStr(&s.Supplier, p.Supplier, "proveedor")
	setStr(&s.Customer, p.Customer, "cliente")
	setStr(&s.CustomerPhone, p.CustomerPhone, "clienteTelefono")
	setStr(&s.CustomerEmail, p.CustomerEmail, "clienteEmail")
	setStr(&s.Model, p.Model, "iphone")
	setStr(&s.Condition, p.Condition, "estado")
	setInt(&s.Capacity, p.Capacity, "capacidad")
	setInt(&s.Battery, p.Battery, "bateria")
	setStr(&s.Color, p.Color, "color")
	setF64(&s.CostUSD, p.CostUSD, "costoUSD")
	setF64(&s.CostARS, p.CostARS, "costoARS")
	setF64(&s.SaleUSD, p.SaleUSD, "ventaUSD")
	setF64(&s.SaleARS, p.SaleARS, "ventaARS")
	setBool(&s.Paid, p.Paid, "pagado")
	setStr(&s.PaymentMethod, p.PaymentMethod, "metodoPago")
	setStr(&s.Accessories, p.Accessories, "accesorios")
	setBool(&s.Delivered, p.Delivered, "entregado")
	setStr(&s.DeliveryDate, p.DeliveryDate, "fechaEntrega")
	setStr(&s.IMEI, p.IMEI, "imei")
	setStr(&s.Notes, p.Notes, "notas")

	return changed
}
