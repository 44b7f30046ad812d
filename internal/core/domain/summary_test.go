package domain

import "testing"

func TestSummarizeMonths(t *testing.T) {
	sales := []*Sale{
		{Month: 0, CostUSD: 580, CostARS: 696000, SaleUSD: 720, SaleARS: 864000, ProfitARS: 168000},
		{Month: 0, CostUSD: 320, CostARS: 384000, SaleUSD: 430, SaleARS: 516000, ProfitARS: 132000},
		{Month: 5, CostUSD: 700, CostARS: 840000, SaleUSD: 850, SaleARS: 1020000, ProfitARS: 180000},
		{Month: 99}, // out of range, ignored
	}

	months := SummarizeMonths(sales)

	if months[0].Count != 2 {
		t.Errorf("january count = %d, want 2", months[0].Count)
	}
	if months[0].Name != "ENERO" {
		t.Errorf("january name = %q, want ENERO", months[0].Name)
	}
	if months[0].ProfitARS != 300000 {
		t.Errorf("january profit = %v, want 300000", months[0].ProfitARS)
	}
	if months[5].Count != 1 || months[5].SaleARS != 1020000 {
		t.Errorf("june = %+v, want count 1, saleARS 1020000", months[5])
	}
	if months[3].Count != 0 {
		t.Errorf("april count = %d, want 0", months[3].Count)
	}
}

func TestSummarizeYear(t *testing.T) {
	sales := []*Sale{
		{Condition: ConditionNew, CostARS: 100, SaleARS: 150, ProfitARS: 50},
		{Condition: ConditionUsed, CostARS: 200, SaleARS: 260, ProfitARS: 60},
		{Condition: ConditionUsed, CostARS: 300, SaleARS: 390, ProfitARS: 90},
	}

	year := SummarizeYear(sales)

	if year.Count != 3 {
		t.Errorf("Count = %d, want 3", year.Count)
	}
	if year.ProfitARS != 200 {
		t.Errorf("ProfitARS = %v, want 200", year.ProfitARS)
	}
	if year.New != 1 || year.Used != 2 {
		t.Errorf("New/Used = %d/%d, want 1/2", year.New, year.Used)
	}
}
