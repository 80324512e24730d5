package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finwise/internal/dto"
	"finwise/internal/finance"
	"finwise/internal/models"
	"finwise/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrInvalidInput   = errors.New("invalid input")
)

const recordDateLayout = "2006-01-02"

type IncomeService struct {
	incomeRepo *repository.IncomeRepository
	logger     *zap.Logger
}

func NewIncomeService(incomeRepo *repository.IncomeRepository, logger *zap.Logger) *IncomeService {
	return &IncomeService{
		incomeRepo: incomeRepo,
		logger:     logger,
	}
}

func (s *IncomeService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateIncomeRequest) (*dto.IncomeResponse, error) {
	freq, date, err := validateIncome(req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rec := &models.IncomeRecord{
		ID:          uuid.New(),
		UserID:      userID,
		Source:      req.Source,
		Amount:      req.Amount,
		Frequency:   freq,
		Date:        date,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.incomeRepo.Create(ctx, rec); err != nil {
		return nil, err
	}

	resp := incomeResponse(rec)
	return &resp, nil
}

func (s *IncomeService) List(ctx context.Context, userID uuid.UUID) (*dto.IncomeListResponse, error) {
	records, err := s.incomeRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.IncomeListResponse{Income: make([]dto.IncomeResponse, len(records))}
	for i, rec := range records {
		resp.Income[i] = incomeResponse(rec)
	}
	return resp, nil
}

func (s *IncomeService) Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateIncomeRequest) error {
	freq, date, err := validateIncome(req)
	if err != nil {
		return err
	}

	rec := &models.IncomeRecord{
		ID:          id,
		UserID:      userID,
		Source:      req.Source,
		Amount:      req.Amount,
		Frequency:   freq,
		Date:        date,
		Description: req.Description,
		UpdatedAt:   time.Now(),
	}

	affected, err := s.incomeRepo.Update(ctx, rec)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (s *IncomeService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	affected, err := s.incomeRepo.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// validateIncome rejects bad records at the boundary so the analyzer
// only ever sees well-formed input.
func validateIncome(req *dto.CreateIncomeRequest) (finance.Frequency, time.Time, error) {
	if req.Source == "" {
		return "", time.Time{}, fmt.Errorf("%w: source is required", ErrInvalidInput)
	}
	if req.Amount < 0 {
		return "", time.Time{}, fmt.Errorf("%w: amount must be non-negative", ErrInvalidInput)
	}
	freq, err := finance.ParseFrequency(req.Frequency)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	date, err := time.Parse(recordDateLayout, req.Date)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	return freq, date, nil
}

func incomeResponse(rec *models.IncomeRecord) dto.IncomeResponse {
	return dto.IncomeResponse{
		ID:          rec.ID.String(),
		Source:      rec.Source,
		Amount:      rec.Amount,
		Frequency:   string(rec.Frequency),
		Date:        rec.Date.Format(recordDateLayout),
		Description: rec.Description,
		CreatedAt:   rec.CreatedAt.Format(time.RFC3339),
	}
}
