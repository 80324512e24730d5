package finance

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"
)

var asOf = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func income(amount float64, freq Frequency) IncomeRecord {
	return IncomeRecord{Source: "salary", Amount: amount, Frequency: freq, Date: asOf}
}

func expense(category string, amount float64, date time.Time) ExpenseRecord {
	return ExpenseRecord{Category: category, Amount: amount, Date: date}
}

func kinds(recs []Recommendation) []RecommendationKind {
	out := make([]RecommendationKind, len(recs))
	for i, r := range recs {
		out[i] = r.Kind
	}
	return out
}

func TestComputeSummaryHealthySaver(t *testing.T) {
	incomes := []IncomeRecord{income(50000, FrequencyMonthly)}
	expenses := []ExpenseRecord{
		expense("food", 3000, asOf),
		expense("rent", 15000, asOf),
	}

	s, err := ComputeSummary(incomes, expenses, asOf)
	if err != nil {
		t.Fatalf("ComputeSummary: %v", err)
	}

	if s.MonthlyIncome != 50000 {
		t.Errorf("MonthlyIncome = %v, want 50000", s.MonthlyIncome)
	}
	if s.MonthlyExpenses != 18000 {
		t.Errorf("MonthlyExpenses = %v, want 18000", s.MonthlyExpenses)
	}
	if s.MonthlySavings != 32000 {
		t.Errorf("MonthlySavings = %v, want 32000", s.MonthlySavings)
	}
	if s.SavingsRate != 64.0 {
		t.Errorf("SavingsRate = %v, want 64.0", s.SavingsRate)
	}
	if got, want := kinds(s.Recommendations), []RecommendationKind{KindInvestment}; !reflect.DeepEqual(got, want) {
		t.Errorf("recommendation kinds = %v, want %v", got, want)
	}
}

func TestComputeSummaryOverspender(t *testing.T) {
	incomes := []IncomeRecord{income(20000, FrequencyMonthly)}
	expenses := []ExpenseRecord{
		expense("rent", 15000, asOf),
		expense("shopping", 10000, asOf),
	}

	s, err := ComputeSummary(incomes, expenses, asOf)
	if err != nil {
		t.Fatalf("ComputeSummary: %v", err)
	}

	if s.SavingsRate != -25.0 {
		t.Errorf("SavingsRate = %v, want -25.0", s.SavingsRate)
	}
	// Ordering is fixed: warning, then alert, then the category alert
	// (rent is 15000 > 0.3*20000).
	want := []RecommendationKind{KindWarning, KindAlert, KindCategoryAlert}
	if got := kinds(s.Recommendations); !reflect.DeepEqual(got, want) {
		t.Errorf("recommendation kinds = %v, want %v", got, want)
	}
}

func TestComputeSummaryZeroIncomeStillFiresCategoryAlert(t *testing.T) {
	expenses := []ExpenseRecord{expense("misc", 1000, asOf)}

	s, err := ComputeSummary(nil, expenses, asOf)
	if err != nil {
		t.Fatalf("ComputeSummary: %v", err)
	}

	if s.SavingsRate != 0 {
		t.Errorf("SavingsRate = %v, want 0 for zero income", s.SavingsRate)
	}
	want := []RecommendationKind{KindWarning, KindAlert, KindCategoryAlert}
	if got := kinds(s.Recommendations); !reflect.DeepEqual(got, want) {
		t.Errorf("recommendation kinds = %v, want %v", got, want)
	}
	last := s.Recommendations[len(s.Recommendations)-1]
	if last.Title != "High misc Spending" {
		t.Errorf("category alert title = %q", last.Title)
	}
}

func TestComputeSummaryIncomeFrequencies(t *testing.T) {
	incomes := []IncomeRecord{
		income(30000, FrequencyMonthly),
		income(120000, FrequencyYearly),  // contributes 10000/month
		income(500000, FrequencyOneTime), // never contributes
	}

	s, err := ComputeSummary(incomes, nil, asOf)
	if err != nil {
		t.Fatalf("ComputeSummary: %v", err)
	}
	if s.MonthlyIncome != 40000 {
		t.Errorf("MonthlyIncome = %v, want 40000", s.MonthlyIncome)
	}
}

func TestComputeSummaryMonthBucketing(t *testing.T) {
	expenses := []ExpenseRecord{
		expense("food", 100, asOf),
		expense("food", 200, time.Date(2024, time.May, 31, 23, 59, 0, 0, time.UTC)),
		expense("food", 400, time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)),
	}

	s, err := ComputeSummary([]IncomeRecord{income(10000, FrequencyMonthly)}, expenses, asOf)
	if err != nil {
		t.Fatalf("ComputeSummary: %v", err)
	}
	// Only the exact month+year of asOf counts, not a rolling window
	// and not the same month of another year.
	if s.MonthlyExpenses != 100 {
		t.Errorf("MonthlyExpenses = %v, want 100", s.MonthlyExpenses)
	}
	if s.CategoryTotals["food"] != 100 {
		t.Errorf("CategoryTotals[food] = %v, want 100", s.CategoryTotals["food"])
	}
}

func TestComputeSummaryEmptyInputs(t *testing.T) {
	s, err := ComputeSummary(nil, nil, asOf)
	if err != nil {
		t.Fatalf("ComputeSummary: %v", err)
	}
	if s.MonthlyIncome != 0 || s.MonthlyExpenses != 0 || s.SavingsRate != 0 {
		t.Errorf("expected zero-valued summary, got %+v", s)
	}
	// Zero income and zero expenses: rate < 20 fires the warning, the
	// strict > comparisons keep the alert and category alert silent.
	if got, want := kinds(s.Recommendations), []RecommendationKind{KindWarning}; !reflect.DeepEqual(got, want) {
		t.Errorf("recommendation kinds = %v, want %v", got, want)
	}
}

func TestComputeSummaryRejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name     string
		incomes  []IncomeRecord
		expenses []ExpenseRecord
	}{
		{"negative income amount", []IncomeRecord{income(-1, FrequencyMonthly)}, nil},
		{"NaN expense amount", nil, []ExpenseRecord{expense("food", math.NaN(), asOf)}},
		{"infinite expense amount", nil, []ExpenseRecord{expense("food", math.Inf(1), asOf)}},
		{"zero expense date", nil, []ExpenseRecord{{Category: "food", Amount: 10}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeSummary(tt.incomes, tt.expenses, asOf)
			if !errors.Is(err, ErrInvalidRecord) {
				t.Errorf("err = %v, want ErrInvalidRecord", err)
			}
		})
	}
}

func TestComputeSummaryIdempotent(t *testing.T) {
	incomes := []IncomeRecord{income(20000, FrequencyMonthly)}
	expenses := []ExpenseRecord{
		expense("rent", 9000, asOf),
		expense("food", 9000, asOf), // tie with rent, deterministic pick
		expense("transport", 1000, asOf),
	}

	first, err := ComputeSummary(incomes, expenses, asOf)
	if err != nil {
		t.Fatalf("ComputeSummary: %v", err)
	}
	second, err := ComputeSummary(incomes, expenses, asOf)
	if err != nil {
		t.Fatalf("ComputeSummary: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different summaries:\n%+v\n%+v", first, second)
	}
}

func TestComputeVisualizationWindowBoundary(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	onBoundary := now.Add(-180 * 24 * time.Hour)
	outside := now.Add(-181 * 24 * time.Hour)

	expenses := []ExpenseRecord{
		expense("food", 100, onBoundary),
		expense("food", 999, outside),
		expense("rent", 500, now),
	}

	v, err := ComputeVisualization(expenses, now)
	if err != nil {
		t.Fatalf("ComputeVisualization: %v", err)
	}

	var total float64
	for _, mt := range v.MonthlyTotals {
		total += mt.Amount
	}
	if total != 600 {
		t.Errorf("windowed total = %v, want 600 (boundary inclusive, 181 days excluded)", total)
	}
	if v.CategoryTotals["food"] != 100 {
		t.Errorf("CategoryTotals[food] = %v, want 100", v.CategoryTotals["food"])
	}
}

func TestComputeVisualizationMonthOrdering(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	expenses := []ExpenseRecord{
		expense("food", 30, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)),
		expense("food", 10, time.Date(2024, time.February, 2, 0, 0, 0, 0, time.UTC)),
		expense("food", 20, time.Date(2024, time.April, 3, 0, 0, 0, 0, time.UTC)),
		expense("food", 15, time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC)),
	}

	v, err := ComputeVisualization(expenses, now)
	if err != nil {
		t.Fatalf("ComputeVisualization: %v", err)
	}

	want := []MonthTotal{
		{Month: "2024-02", Amount: 25},
		{Month: "2024-04", Amount: 20},
		{Month: "2024-06", Amount: 30},
	}
	if !reflect.DeepEqual(v.MonthlyTotals, want) {
		t.Errorf("MonthlyTotals = %+v, want %+v", v.MonthlyTotals, want)
	}
}

func TestComputeVisualizationEmpty(t *testing.T) {
	v, err := ComputeVisualization(nil, asOf)
	if err != nil {
		t.Fatalf("ComputeVisualization: %v", err)
	}
	if len(v.MonthlyTotals) != 0 || len(v.CategoryTotals) != 0 {
		t.Errorf("expected empty series, got %+v", v)
	}
}

func TestParseFrequency(t *testing.T) {
	for _, valid := range []string{"monthly", "yearly", "one-time"} {
		if _, err := ParseFrequency(valid); err != nil {
			t.Errorf("ParseFrequency(%q) = %v, want nil", valid, err)
		}
	}
	if _, err := ParseFrequency("weekly"); !errors.Is(err, ErrInvalidRecord) {
		t.Errorf("ParseFrequency(weekly) = %v, want ErrInvalidRecord", err)
	}
}
