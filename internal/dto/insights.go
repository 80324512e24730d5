package dto

type RecommendationResponse struct {
	Type       string `json:"type"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
}

type SummaryResponse struct {
	MonthlyIncome     float64                  `json:"monthly_income"`
	MonthlyExpenses   float64                  `json:"monthly_expenses"`
	MonthlySavings    float64                  `json:"monthly_savings"`
	SavingsRate       float64                  `json:"savings_rate"`
	Recommendations   []RecommendationResponse `json:"recommendations"`
	ExpenseCategories map[string]float64       `json:"expense_categories"`
}

type ChartData struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

type VisualizationResponse struct {
	MonthlyChart  ChartData `json:"monthly_chart"`
	CategoryChart ChartData `json:"category_chart"`
}
