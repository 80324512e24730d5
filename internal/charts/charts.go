package charts

import (
	"bytes"
	"fmt"

	"finwise/internal/finance"

	"github.com/wcharczuk/go-chart/v2"
)

// Renderer turns visualization series into PNG charts for export.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// MonthlyExpenses renders the monthly expense series as a bar chart.
// Returns nil when the series is empty.
func (r *Renderer) MonthlyExpenses(viz *finance.Visualization) ([]byte, error) {
	if len(viz.MonthlyTotals) == 0 {
		return nil, nil
	}

	bars := make([]chart.Value, len(viz.MonthlyTotals))
	for i, mt := range viz.MonthlyTotals {
		bars[i] = chart.Value{
			Label: mt.Month,
			Value: mt.Amount,
		}
	}

	graph := chart.BarChart{
		Title:  "Monthly Expenses",
		Width:  900,
		Height: 500,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   30,
				Right:  30,
				Bottom: 30,
			},
		},
		BarWidth: 60,
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("₹%.0f", f)
				}
				return ""
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render monthly chart: %w", err)
	}
	return buf.Bytes(), nil
}

// CategoryBreakdown renders the per-category totals as a pie chart.
// Returns nil when there is nothing to chart.
func (r *Renderer) CategoryBreakdown(viz *finance.Visualization) ([]byte, error) {
	if len(viz.CategoryTotals) == 0 {
		return nil, nil
	}

	values := make([]chart.Value, 0, len(viz.CategoryTotals))
	for category, amount := range viz.CategoryTotals {
		if amount <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: category,
			Value: amount,
		})
	}
	if len(values) == 0 {
		return nil, nil
	}

	graph := chart.PieChart{
		Title:  "Expenses by Category",
		Width:  600,
		Height: 600,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render category chart: %w", err)
	}
	return buf.Bytes(), nil
}
