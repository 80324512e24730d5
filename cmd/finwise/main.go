package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"finwise/internal/api"
	"finwise/internal/api/handlers"
	"finwise/internal/charts"
	"finwise/internal/repository"
	"finwise/internal/service"
	"finwise/pkg/auth"
	"finwise/pkg/config"
	"finwise/pkg/logger"
	"finwise/pkg/postgres"

	"go.uber.org/zap"
)

// @title FinWise API
// @version 1.0
// @description Personal finance tracking API: income/expense records, receipt parsing and budgeting recommendations

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting FinWise service")

	if err := postgres.RunMigrations(&cfg.Database); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	adminRepo := repository.NewAdminRepository(db, appLogger)
	incomeRepo := repository.NewIncomeRepository(db, appLogger)
	expenseRepo := repository.NewExpenseRepository(db, appLogger)

	// JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	adminService := service.NewAdminService(adminRepo, userRepo, jwtManager, appLogger)
	incomeService := service.NewIncomeService(incomeRepo, appLogger)
	expenseService := service.NewExpenseService(expenseRepo, appLogger)
	ocrService := service.NewOCRService(appLogger)
	receiptService := service.NewReceiptService(ocrService, cfg.Upload.Dir, cfg.Upload.MaxBytes, appLogger)
	insightsService := service.NewInsightsService(incomeRepo, expenseRepo, appLogger)

	// Handlers
	h := api.Handlers{
		Auth:     handlers.NewAuthHandler(authService, appLogger),
		Income:   handlers.NewIncomeHandler(incomeService, appLogger),
		Expense:  handlers.NewExpenseHandler(expenseService, appLogger),
		Receipt:  handlers.NewReceiptHandler(receiptService, appLogger),
		Insights: handlers.NewInsightsHandler(insightsService, charts.NewRenderer(), appLogger),
		Admin:    handlers.NewAdminHandler(adminService, appLogger),
	}

	// Multipart overhead on top of the raw file limit
	bodyLimit := int(cfg.Upload.MaxBytes) + 1024*1024
	app := api.SetupRouter(h, jwtManager, bodyLimit, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
