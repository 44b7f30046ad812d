package domain

// Months holds the Spanish month names used in summaries and exports.
var Months = [12]string{
	"ENERO", "FEBRERO", "MARZO", "ABRIL", "MAYO", "JUNIO",
	"JULIO", "AGOSTO", "SEPTIEMBRE", "OCTUBRE", "NOVIEMBRE", "DICIEMBRE",
}

// MonthsShort holds the abbreviated Spanish month names.
var MonthsShort = [12]string{
	"ENE", "FEB", "MAR", "ABR", "MAY", "JUN",
	"JUL", "AGO", "SEP", "OCT", "NOV", "DIC",
}

// MonthlySummary aggregates the sales of one month.
type MonthlySummary struct {
	Month     int     `json:"month"`
	Name      string  `json:"name"`
	ShortName string  `json:"abrev"`
	Count     int     `json:"transacciones"`
	CostUSD   float64 `json:"costoUSD"`
	CostARS   float64 `json:"costoARS"`
	SaleUSD   float64 `json:"ventaUSD"`
	SaleARS   float64 `json:"ventaARS"`
	ProfitARS float64 `json:"gananciaARS"`
}

// AnnualSummary aggregates the full sales collection.
type AnnualSummary struct {
	Count     int     `json:"transacciones"`
	CostUSD   float64 `json:"costoUSD"`
	CostARS   float64 `json:"costoARS"`
	SaleUSD   float64 `json:"ventaUSD"`
	SaleARS   float64 `json:"ventaARS"`
	ProfitARS float64 `json:"gananciaARS"`
	New       int     `json:"nuevos"`
	Used      int     `json:"usados"`
}

// SummarizeMonths buckets sales into the twelve monthly summaries.
// Sales with an out-of-range month index are ignored.
func SummarizeMonths(sales []*Sale) [12]MonthlySummary {
	var out [12]MonthlySummary
	for i := range out {
		out[i].Month = i
		out[i].Name = Months[i]
		out[i].ShortName = MonthsShort[i]
	}
	for _, s := range sales {
		if s.Month < 0 || s.Month > 11 {
			continue
		}
		m := &out[s.Month]
		m.Count++
		m.CostUSD += s.CostUSD
		m.CostARS += s.CostARS
		m.SaleUSD += s.SaleUSD
		m.SaleARS += s.SaleARS
		m.ProfitARS += s.ProfitARS
	}
	return out
}

// SummarizeYear aggregates all sales into one annual summary.
func SummarizeYear(sales []*Sale) AnnualSummary {
	var out AnnualSummary
	for _, s := range sales {
		out.Count++
		out.CostUSD += s.CostUSD
		out.CostARS += s.CostARS
		out.SaleUSD += s.SaleUSD
		out.SaleARS += s.SaleARS
		out.ProfitARS += s.ProfitARS
		switch s.Condition {
		case ConditionNew:
			out.New++
		case ConditionUsed:
			out.Used++
		}
	}
	return out
}
