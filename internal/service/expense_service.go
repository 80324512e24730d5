package service

import (
	"context"
	"fmt"
	"time"

	"finwise/internal/dto"
	"finwise/internal/models"
	"finwise/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ExpenseService struct {
	expenseRepo *repository.ExpenseRepository
	logger      *zap.Logger
}

func NewExpenseService(expenseRepo *repository.ExpenseRepository, logger *zap.Logger) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (s *ExpenseService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	date, err := validateExpense(req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rec := &models.ExpenseRecord{
		ID:          uuid.New(),
		UserID:      userID,
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
		Merchant:    req.Merchant,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.expenseRepo.Create(ctx, rec); err != nil {
		return nil, err
	}

	resp := expenseResponse(rec)
	return &resp, nil
}

func (s *ExpenseService) List(ctx context.Context, userID uuid.UUID) (*dto.ExpenseListResponse, error) {
	records, err := s.expenseRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ExpenseListResponse{Expenses: make([]dto.ExpenseResponse, len(records))}
	for i, rec := range records {
		resp.Expenses[i] = expenseResponse(rec)
	}
	return resp, nil
}

func (s *ExpenseService) Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateExpenseRequest) error {
	date, err := validateExpense(req)
	if err != nil {
		return err
	}

	rec := &models.ExpenseRecord{
		ID:          id,
		UserID:      userID,
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
		Merchant:    req.Merchant,
		UpdatedAt:   time.Now(),
	}

	affected, err := s.expenseRepo.Update(ctx, rec)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (s *ExpenseService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	affected, err := s.expenseRepo.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func validateExpense(req *dto.CreateExpenseRequest) (time.Time, error) {
	if req.Category == "" {
		return time.Time{}, fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if req.Amount < 0 {
		return time.Time{}, fmt.Errorf("%w: amount must be non-negative", ErrInvalidInput)
	}
	date, err := time.Parse(recordDateLayout, req.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	return date, nil
}

func expenseResponse(rec *models.ExpenseRecord) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:          rec.ID.String(),
		Category:    rec.Category,
		Amount:      rec.Amount,
		Date:        rec.Date.Format(recordDateLayout),
		Description: rec.Description,
		Merchant:    rec.Merchant,
		CreatedAt:   rec.CreatedAt.Format(time.RFC3339),
	}
}
