package domain

import "testing"

func TestCurrencyTransactionRecompute(t *testing.T) {
	tx := &CurrencyTransaction{
		Quantity: 500,
		UnitCost: 1180,
		UnitSale: 1210,
	}
	tx.Recompute()

	if tx.TotalCost != 590000 {
		t.Errorf("TotalCost = %v, want 590000", tx.TotalCost)
	}
	if tx.TotalSale != 605000 {
		t.Errorf("TotalSale = %v, want 605000", tx.TotalSale)
	}
	if tx.Profit != 15000 {
		t.Errorf("Profit = %v, want 15000", tx.Profit)
	}
}

func TestTransactionPatchAlwaysAllowsRecompute(t *testing.T) {
	tx := &CurrencyTransaction{
		Quantity:  100,
		UnitCost:  1000,
		UnitSale:  1100,
		TotalCost: 0, // stale on purpose
	}

	channel := "EFECTIVO"
	changed := (&TransactionPatch{Channel: &channel}).Apply(tx)
	tx.Recompute()

	if len(changed) != 1 || changed[0] != "operacion" {
		t.Errorf("changed = %v, want [operacion]", changed)
	}
	// Totals refresh even when only an unrelated field changed.
	if tx.TotalCost != 100000 || tx.TotalSale != 110000 || tx.Profit != 10000 {
		t.Errorf("totals = %v/%v/%v, want 100000/110000/10000",
			tx.TotalCost, tx.TotalSale, tx.Profit)
	}
}
