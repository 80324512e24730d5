package charts

import (
	"bytes"
	"testing"

	"finwise/internal/finance"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G'}

func TestMonthlyExpensesRendersPNG(t *testing.T) {
	viz := &finance.Visualization{
		MonthlyTotals: []finance.MonthTotal{
			{Month: "2024-04", Amount: 1200},
			{Month: "2024-05", Amount: 800},
			{Month: "2024-06", Amount: 1500.50},
		},
	}

	png, err := NewRenderer().MonthlyExpenses(viz)
	if err != nil {
		t.Fatalf("MonthlyExpenses: %v", err)
	}
	if !bytes.HasPrefix(png, pngHeader) {
		t.Error("output is not a PNG")
	}
}

func TestMonthlyExpensesEmptySeries(t *testing.T) {
	png, err := NewRenderer().MonthlyExpenses(&finance.Visualization{})
	if err != nil {
		t.Fatalf("MonthlyExpenses: %v", err)
	}
	if png != nil {
		t.Error("expected nil output for empty series")
	}
}

func TestCategoryBreakdownRendersPNG(t *testing.T) {
	viz := &finance.Visualization{
		CategoryTotals: map[string]float64{
			"food":      300,
			"rent":      1500,
			"transport": 120,
		},
	}

	png, err := NewRenderer().CategoryBreakdown(viz)
	if err != nil {
		t.Fatalf("CategoryBreakdown: %v", err)
	}
	if !bytes.HasPrefix(png, pngHeader) {
		t.Error("output is not a PNG")
	}
}

func TestCategoryBreakdownEmpty(t *testing.T) {
	png, err := NewRenderer().CategoryBreakdown(&finance.Visualization{CategoryTotals: map[string]float64{}})
	if err != nil {
		t.Fatalf("CategoryBreakdown: %v", err)
	}
	if png != nil {
		t.Error("expected nil output for empty totals")
	}
}
