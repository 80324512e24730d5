package service

import (
	"context"
	"sort"
	"time"

	"finwise/internal/dto"
	"finwise/internal/finance"
	"finwise/internal/models"
	"finwise/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// chartWindowDays is the trailing lookback for visualization data.
const chartWindowDays = 180

// InsightsService feeds stored records through the finance analyzer
// and shapes the results for clients. The analyzer itself is pure; all
// I/O happens here.
type InsightsService struct {
	incomeRepo  *repository.IncomeRepository
	expenseRepo *repository.ExpenseRepository
	logger      *zap.Logger
}

func NewInsightsService(incomeRepo *repository.IncomeRepository, expenseRepo *repository.ExpenseRepository, logger *zap.Logger) *InsightsService {
	return &InsightsService{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

// Summary computes the user's monthly figures and recommendations as
// of now.
func (s *InsightsService) Summary(ctx context.Context, userID uuid.UUID) (*dto.SummaryResponse, error) {
	incomes, err := s.incomeRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary, err := finance.ComputeSummary(toFinanceIncome(incomes), toFinanceExpenses(expenses), time.Now())
	if err != nil {
		return nil, err
	}

	recs := make([]dto.RecommendationResponse, len(summary.Recommendations))
	for i, rec := range summary.Recommendations {
		recs[i] = dto.RecommendationResponse{
			Type:       string(rec.Kind),
			Title:      rec.Title,
			Message:    rec.Message,
			Suggestion: rec.Suggestion,
		}
	}

	return &dto.SummaryResponse{
		MonthlyIncome:     summary.MonthlyIncome,
		MonthlyExpenses:   summary.MonthlyExpenses,
		MonthlySavings:    summary.MonthlySavings,
		SavingsRate:       summary.SavingsRate,
		Recommendations:   recs,
		ExpenseCategories: summary.CategoryTotals,
	}, nil
}

// Visualization computes chart-ready series over the trailing 180-day
// window.
func (s *InsightsService) Visualization(ctx context.Context, userID uuid.UUID) (*dto.VisualizationResponse, error) {
	viz, err := s.computeVisualization(ctx, userID)
	if err != nil {
		return nil, err
	}

	monthly := dto.ChartData{
		Labels: make([]string, len(viz.MonthlyTotals)),
		Data:   make([]float64, len(viz.MonthlyTotals)),
	}
	for i, mt := range viz.MonthlyTotals {
		monthly.Labels[i] = mt.Month
		monthly.Data[i] = mt.Amount
	}

	// Category totals are an unordered mapping; sort the labels so the
	// JSON arrays come out stable.
	categories := make([]string, 0, len(viz.CategoryTotals))
	for category := range viz.CategoryTotals {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	category := dto.ChartData{
		Labels: categories,
		Data:   make([]float64, len(categories)),
	}
	for i, name := range categories {
		category.Data[i] = viz.CategoryTotals[name]
	}

	return &dto.VisualizationResponse{
		MonthlyChart:  monthly,
		CategoryChart: category,
	}, nil
}

// VisualizationSeries exposes the raw analyzer output for PNG chart
// rendering.
func (s *InsightsService) VisualizationSeries(ctx context.Context, userID uuid.UUID) (*finance.Visualization, error) {
	return s.computeVisualization(ctx, userID)
}

func (s *InsightsService) computeVisualization(ctx context.Context, userID uuid.UUID) (*finance.Visualization, error) {
	now := time.Now()
	since := now.Add(-chartWindowDays * 24 * time.Hour)

	expenses, err := s.expenseRepo.ListByUserIDSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	return finance.ComputeVisualization(toFinanceExpenses(expenses), now)
}

func toFinanceIncome(records []*models.IncomeRecord) []finance.IncomeRecord {
	out := make([]finance.IncomeRecord, len(records))
	for i, rec := range records {
		out[i] = finance.IncomeRecord{
			Source:      rec.Source,
			Amount:      rec.Amount,
			Frequency:   rec.Frequency,
			Date:        rec.Date,
			Description: rec.Description,
		}
	}
	return out
}

func toFinanceExpenses(records []*models.ExpenseRecord) []finance.ExpenseRecord {
	out := make([]finance.ExpenseRecord, len(records))
	for i, rec := range records {
		out[i] = finance.ExpenseRecord{
			Category:    rec.Category,
			Amount:      rec.Amount,
			Date:        rec.Date,
			Description: rec.Description,
			Merchant:    rec.Merchant,
		}
	}
	return out
}
