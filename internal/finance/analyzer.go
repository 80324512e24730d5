package finance

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"
)

// ErrInvalidRecord is returned when an input record carries a
// non-finite or negative amount, or a zero date. Callers should treat
// it as a validation failure, not a computation error.
var ErrInvalidRecord = errors.New("invalid record")

// Frequency classifies how an income record recurs and therefore how it
// contributes to the monthly income figure.
type Frequency string

const (
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
	FrequencyOneTime Frequency = "one-time"
)

// ParseFrequency validates a user-supplied frequency value.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case FrequencyMonthly, FrequencyYearly, FrequencyOneTime:
		return Frequency(s), nil
	}
	return "", fmt.Errorf("%w: unknown frequency %q", ErrInvalidRecord, s)
}

// IncomeRecord is a single income entry as seen by the analyzer.
type IncomeRecord struct {
	Source      string
	Amount      float64
	Frequency   Frequency
	Date        time.Time
	Description string
}

// ExpenseRecord is a single expense entry as seen by the analyzer.
type ExpenseRecord struct {
	Category    string
	Amount      float64
	Date        time.Time
	Description string
	Merchant    string
}

// RecommendationKind labels the rule that produced a recommendation.
type RecommendationKind string

const (
	KindWarning       RecommendationKind = "warning"
	KindAlert         RecommendationKind = "alert"
	KindInvestment    RecommendationKind = "investment"
	KindCategoryAlert RecommendationKind = "category_alert"
)

// Recommendation is a generated budgeting hint. Recommendations are
// derived on every call and never persisted.
type Recommendation struct {
	Kind       RecommendationKind
	Title      string
	Message    string
	Suggestion string
}

// Summary holds the derived monthly figures for a user.
type Summary struct {
	MonthlyIncome   float64
	MonthlyExpenses float64
	MonthlySavings  float64
	SavingsRate     float64
	Recommendations []Recommendation
	CategoryTotals  map[string]float64
}

// MonthTotal is one point of the monthly expense series.
type MonthTotal struct {
	Month  string // YYYY-MM
	Amount float64
}

// Visualization holds chart-ready series over a trailing 180-day window.
type Visualization struct {
	MonthlyTotals  []MonthTotal
	CategoryTotals map[string]float64
}

// visualizationWindow is the fixed lookback for chart data.
const visualizationWindow = 180 * 24 * time.Hour

func validateAmount(amount float64, date time.Time) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return fmt.Errorf("%w: amount %v", ErrInvalidRecord, amount)
	}
	if date.IsZero() {
		return fmt.Errorf("%w: zero date", ErrInvalidRecord)
	}
	return nil
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// ComputeSummary derives monthly income, expenses, savings rate,
// per-category totals and rule-based recommendations from a user's full
// record history. Months are compared by calendar month and year of
// asOf, not by a rolling window. The function is pure: identical inputs
// and asOf produce identical output.
func ComputeSummary(income []IncomeRecord, expenses []ExpenseRecord, asOf time.Time) (*Summary, error) {
	var monthlyIncome float64
	for _, rec := range income {
		if err := validateAmount(rec.Amount, rec.Date); err != nil {
			return nil, fmt.Errorf("income record %q: %w", rec.Source, err)
		}
		// One-time income never counts toward the recurring monthly
		// baseline, only monthly and annualized yearly amounts do.
		switch rec.Frequency {
		case FrequencyMonthly:
			monthlyIncome += rec.Amount
		case FrequencyYearly:
			monthlyIncome += rec.Amount / 12
		}
	}

	var monthlyExpenses float64
	categoryTotals := make(map[string]float64)
	for _, rec := range expenses {
		if err := validateAmount(rec.Amount, rec.Date); err != nil {
			return nil, fmt.Errorf("expense record %q: %w", rec.Category, err)
		}
		if !sameMonth(rec.Date, asOf) {
			continue
		}
		monthlyExpenses += rec.Amount
		categoryTotals[rec.Category] += rec.Amount
	}

	monthlySavings := monthlyIncome - monthlyExpenses
	var savingsRate float64
	if monthlyIncome > 0 {
		savingsRate = monthlySavings / monthlyIncome * 100
	}

	summary := &Summary{
		MonthlyIncome:   monthlyIncome,
		MonthlyExpenses: monthlyExpenses,
		MonthlySavings:  monthlySavings,
		SavingsRate:     savingsRate,
		CategoryTotals:  categoryTotals,
	}
	summary.Recommendations = buildRecommendations(summary)

	return summary, nil
}

// buildRecommendations evaluates the rules in a fixed order; every rule
// whose condition holds emits, there is no severity reordering. Exactly
// one of the warning/investment pair fires since the thresholds are
// complementary at 20%.
func buildRecommendations(s *Summary) []Recommendation {
	var recs []Recommendation

	if s.SavingsRate < 20 {
		recs = append(recs, Recommendation{
			Kind:       KindWarning,
			Title:      "Low Savings Rate",
			Message:    fmt.Sprintf("Your current savings rate is %.1f%%. Aim for at least 20%% of your income.", s.SavingsRate),
			Suggestion: "Review your expenses and identify areas where you can cut back.",
		})
	}

	if s.MonthlyExpenses > s.MonthlyIncome {
		recs = append(recs, Recommendation{
			Kind:       KindAlert,
			Title:      "Overspending Alert",
			Message:    fmt.Sprintf("You are spending ₹%.2f more than your income this month.", s.MonthlyExpenses-s.MonthlyIncome),
			Suggestion: "Reduce discretionary spending and focus on essential expenses only.",
		})
	}

	if s.SavingsRate >= 20 {
		recs = append(recs, Recommendation{
			Kind:       KindInvestment,
			Title:      "Investment Opportunity",
			Message:    fmt.Sprintf("Great job! You're saving %.1f%% of your income.", s.SavingsRate),
			Suggestion: "Consider investing in SIP mutual funds or PPF for long-term wealth building.",
		})
	}

	if category, amount, ok := topCategory(s.CategoryTotals); ok && amount > s.MonthlyIncome*0.3 {
		// The comparison is strict and there is no special case for
		// zero income: any positive spending trips the alert for a
		// user with no recorded income.
		recs = append(recs, Recommendation{
			Kind:       KindCategoryAlert,
			Title:      fmt.Sprintf("High %s Spending", category),
			Message:    fmt.Sprintf("You're spending ₹%.2f on %s this month.", amount, category),
			Suggestion: fmt.Sprintf("Consider reducing %s expenses by 10-15%%.", category),
		})
	}

	return recs
}

// topCategory returns the category with the largest total. Ties pick
// the lexicographically smallest name so output stays deterministic.
func topCategory(totals map[string]float64) (string, float64, bool) {
	var (
		best   string
		amount float64
		found  bool
	)
	for category, total := range totals {
		if !found || total > amount || (total == amount && category < best) {
			best, amount, found = category, total, true
		}
	}
	return best, amount, found
}

// ComputeVisualization buckets expenses from the trailing 180-day
// window into a chronologically sorted monthly series and per-category
// totals. The window boundary is inclusive: a record dated exactly 180
// days before now is counted.
func ComputeVisualization(expenses []ExpenseRecord, now time.Time) (*Visualization, error) {
	cutoff := now.Add(-visualizationWindow)

	monthly := make(map[string]float64)
	categories := make(map[string]float64)
	for _, rec := range expenses {
		if err := validateAmount(rec.Amount, rec.Date); err != nil {
			return nil, fmt.Errorf("expense record %q: %w", rec.Category, err)
		}
		if rec.Date.Before(cutoff) {
			continue
		}
		monthly[rec.Date.Format("2006-01")] += rec.Amount
		categories[rec.Category] += rec.Amount
	}

	// Lexicographic order on YYYY-MM keys is chronological order.
	months := make([]string, 0, len(monthly))
	for month := range monthly {
		months = append(months, month)
	}
	sort.Strings(months)

	totals := make([]MonthTotal, len(months))
	for i, month := range months {
		totals[i] = MonthTotal{Month: month, Amount: monthly[month]}
	}

	return &Visualization{
		MonthlyTotals:  totals,
		CategoryTotals: categories,
	}, nil
}
