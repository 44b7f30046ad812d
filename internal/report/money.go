package report

import "github.com/Rhymond/go-money"

// displayARS renders an ARS amount with currency symbol and thousands
// separators for the total rows.
func displayARS(v float64) string {
	return money.NewFromFloat(v, "ARS").Display()
}

// displayUSD renders a USD amount the same way.
func displayUSD(v float64) string {
	return money.NewFromFloat(v, money.USD).Display()
}
