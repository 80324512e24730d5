package main

import (
	"context"
	"errors"
	"log"
	"time"

	"finwise/internal/finance"
	"finwise/internal/models"
	"finwise/internal/repository"
	"finwise/pkg/auth"
	"finwise/pkg/config"
	"finwise/pkg/logger"
	"finwise/pkg/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	demoEmail    = "demo@finwise.local"
	demoPassword = "demo-password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	if err := postgres.RunMigrations(&cfg.Database); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	incomeRepo := repository.NewIncomeRepository(db, appLogger)
	expenseRepo := repository.NewExpenseRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")

	user, err := seedDemoUser(ctx, userRepo, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to seed demo user", zap.Error(err))
	}

	if err := seedDemoRecords(ctx, user.ID, incomeRepo, expenseRepo, appLogger); err != nil {
		appLogger.Fatal("Failed to seed demo records", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!",
		zap.String("email", demoEmail),
		zap.String("password", demoPassword),
	)
}

func seedDemoUser(ctx context.Context, repo *repository.UserRepository, logger *zap.Logger) (*models.User, error) {
	existing, err := repo.GetByEmail(ctx, demoEmail)
	if err == nil {
		logger.Info("Demo user already exists, reusing", zap.String("id", existing.ID.String()))
		return existing, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(demoPassword)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:          uuid.New(),
		FirstName:   "Demo",
		LastName:    "User",
		Email:       demoEmail,
		Phone:       "+91 98765 43210",
		DateOfBirth: "1995-04-12",
		Gender:      "other",
		Password:    hash,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("Created demo user", zap.String("id", user.ID.String()))
	return user, nil
}

func seedDemoRecords(
	ctx context.Context,
	userID uuid.UUID,
	incomeRepo *repository.IncomeRepository,
	expenseRepo *repository.ExpenseRepository,
	logger *zap.Logger,
) error {
	existing, err := incomeRepo.ListByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Info("Demo records already exist, skipping", zap.Int("income_records", len(existing)))
		return nil
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	incomes := []struct {
		source    string
		amount    float64
		frequency finance.Frequency
		date      time.Time
		desc      string
	}{
		{"Salary", 55000, finance.FrequencyMonthly, monthStart.AddDate(0, 0, 4), "Monthly salary"},
		{"Annual bonus", 120000, finance.FrequencyYearly, monthStart.AddDate(0, -2, 14), "Performance bonus"},
		{"Freelance project", 18000, finance.FrequencyOneTime, monthStart.AddDate(0, -1, 9), "One-off contract"},
	}
	for _, in := range incomes {
		rec := &models.IncomeRecord{
			ID:          uuid.New(),
			UserID:      userID,
			Source:      in.source,
			Amount:      in.amount,
			Frequency:   in.frequency,
			Date:        in.date,
			Description: in.desc,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := incomeRepo.Create(ctx, rec); err != nil {
			return err
		}
	}

	expenses := []struct {
		category string
		amount   float64
		date     time.Time
		desc     string
		merchant string
	}{
		{"rent", 18000, monthStart.AddDate(0, 0, 1), "Apartment rent", "Landlord"},
		{"groceries", 6200, monthStart.AddDate(0, 0, 6), "Weekly groceries", "Big Bazaar"},
		{"groceries", 5400, monthStart.AddDate(0, 0, 13), "Weekly groceries", "Big Bazaar"},
		{"transport", 2100, monthStart.AddDate(0, 0, 8), "Metro card top-up", "DMRC"},
		{"dining", 3300, monthStart.AddDate(0, 0, 10), "Dinner out", "Cafe Coffee Day"},
		{"utilities", 2650, monthStart.AddDate(0, 0, 5), "Electricity bill", "BSES"},
		{"rent", 18000, monthStart.AddDate(0, -1, 1), "Apartment rent", "Landlord"},
		{"groceries", 11800, monthStart.AddDate(0, -1, 12), "Monthly groceries", "Big Bazaar"},
		{"entertainment", 1500, monthStart.AddDate(0, -1, 20), "Streaming subscriptions", "Netflix"},
		{"rent", 18000, monthStart.AddDate(0, -2, 1), "Apartment rent", "Landlord"},
		{"travel", 9200, monthStart.AddDate(0, -2, 18), "Weekend trip", "IRCTC"},
		{"shopping", 4700, monthStart.AddDate(0, -3, 7), "Clothes", "Myntra"},
	}
	for _, ex := range expenses {
		rec := &models.ExpenseRecord{
			ID:          uuid.New(),
			UserID:      userID,
			Category:    ex.category,
			Amount:      ex.amount,
			Date:        ex.date,
			Description: ex.desc,
			Merchant:    ex.merchant,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := expenseRepo.Create(ctx, rec); err != nil {
			return err
		}
	}

	logger.Info("Created demo records",
		zap.Int("income_records", len(incomes)),
		zap.Int("expense_records", len(expenses)),
	)
	return nil
}
