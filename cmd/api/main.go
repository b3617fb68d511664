// Package main is the entry point for the Household Ledger API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/household-ledger/backend/config"
	"github.com/household-ledger/backend/internal/application/usecase/balance"
	"github.com/household-ledger/backend/internal/application/usecase/budget"
	"github.com/household-ledger/backend/internal/application/usecase/category"
	"github.com/household-ledger/backend/internal/application/usecase/savings"
	"github.com/household-ledger/backend/internal/application/usecase/summary"
	"github.com/household-ledger/backend/internal/application/usecase/transaction"
	"github.com/household-ledger/backend/internal/infra/db"
	"github.com/household-ledger/backend/internal/infra/server/router"
	"github.com/household-ledger/backend/internal/integration/adapters"
	"github.com/household-ledger/backend/internal/integration/cache"
	"github.com/household-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/household-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/household-ledger/backend/internal/integration/persistence"
	"github.com/household-ledger/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Household Ledger API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.CategoryModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
		&model.SavingsGoalModel{},
		&model.DailyBalanceModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize Redis client for the summary cache
	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.Error("Invalid Redis URL", "error", err)
		os.Exit(1)
	}
	if cfg.Redis.Password != "" {
		redisOpts.Password = cfg.Redis.Password
	}
	redisClient := redis.NewClient(redisOpts)
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close Redis connection", "error", err)
		}
	}()

	// Create health controller with database health checker
	healthController := controller.NewHealthController(database.HealthCheck)

	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	budgetRepo := persistence.NewBudgetRepository(database.DB())
	goalRepo := persistence.NewSavingsGoalRepository(database.DB())
	dailyBalanceRepo := persistence.NewDailyBalanceRepository(database.DB())
	summaryRepo := persistence.NewSummaryRepository(database.DB())

	// Create adapters/services
	summaryCache := cache.NewSummaryCache(redisClient, cfg.Cache.SummaryTTL, logger)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, summaryCache)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, summaryCache)

	// Create category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create budget use cases
	upsertBudgetUseCase := budget.NewUpsertBudgetUseCase(budgetRepo, categoryRepo)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)

	// Create savings goal use cases
	createGoalUseCase := savings.NewCreateGoalUseCase(goalRepo)
	listGoalsUseCase := savings.NewListGoalsUseCase(goalRepo)
	updateGoalUseCase := savings.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := savings.NewDeleteGoalUseCase(goalRepo)
	depositUseCase := savings.NewDepositUseCase(goalRepo, summaryCache)
	setPrimaryGoalUseCase := savings.NewSetPrimaryGoalUseCase(goalRepo)

	// Create summary use case
	getMonthlySummaryUseCase := summary.NewGetMonthlySummaryUseCase(summaryRepo, budgetRepo, goalRepo, summaryCache, logger)

	// Create balance use cases
	getRecentBalancesUseCase := balance.NewGetRecentBalancesUseCase(dailyBalanceRepo)
	getMonthlyBalancesUseCase := balance.NewGetMonthlyBalancesUseCase(dailyBalanceRepo, transactionRepo)
	resyncBalancesUseCase := balance.NewResyncBalancesUseCase(dailyBalanceRepo, summaryCache, logger)

	// Create controllers
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		deleteTransactionUseCase,
	)
	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)
	budgetController := controller.NewBudgetController(upsertBudgetUseCase, listBudgetsUseCase)
	savingsGoalController := controller.NewSavingsGoalController(
		createGoalUseCase,
		listGoalsUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		depositUseCase,
		setPrimaryGoalUseCase,
	)
	summaryController := controller.NewSummaryController(getMonthlySummaryUseCase)
	balanceController := controller.NewBalanceController(
		getRecentBalancesUseCase,
		getMonthlyBalancesUseCase,
		resyncBalancesUseCase,
	)

	// Create middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Setup router
	r := router.NewRouter(
		healthController,
		transactionController,
		categoryController,
		budgetController,
		savingsGoalController,
		summaryController,
		balanceController,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
