// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/household-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/household-ledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	transactionController *controller.TransactionController
	categoryController    *controller.CategoryController
	budgetController      *controller.BudgetController
	savingsGoalController *controller.SavingsGoalController
	summaryController     *controller.SummaryController
	balanceController     *controller.BalanceController
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	categoryController *controller.CategoryController,
	budgetController *controller.BudgetController,
	savingsGoalController *controller.SavingsGoalController,
	summaryController *controller.SummaryController,
	balanceController *controller.BalanceController,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		transactionController: transactionController,
		categoryController:    categoryController,
		budgetController:      budgetController,
		savingsGoalController: savingsGoalController,
		summaryController:     summaryController,
		balanceController:     balanceController,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		// Category routes (require authentication)
		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.PATCH("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		// Budget routes (require authentication)
		if r.budgetController != nil && r.authMiddleware != nil {
			budgets := v1.Group("/budgets")
			budgets.Use(r.authMiddleware.Authenticate())
			{
				budgets.GET("", r.budgetController.List)
				budgets.PUT("", r.budgetController.Upsert)
			}
		}

		// Savings goal routes (require authentication)
		if r.savingsGoalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/savings-goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("", r.savingsGoalController.List)
				goals.POST("", r.savingsGoalController.Create)
				goals.PATCH("/:id", r.savingsGoalController.Update)
				goals.DELETE("/:id", r.savingsGoalController.Delete)
				goals.POST("/:id/deposit", r.savingsGoalController.Deposit)
				goals.PATCH("/:id/primary", r.savingsGoalController.SetPrimary)
			}
		}

		// Summary routes (require authentication)
		if r.summaryController != nil && r.authMiddleware != nil {
			summaries := v1.Group("/summary")
			summaries.Use(r.authMiddleware.Authenticate())
			{
				summaries.GET("/:year/:month", r.summaryController.GetMonthly)
			}
		}

		// Balance routes (require authentication)
		if r.balanceController != nil && r.authMiddleware != nil {
			balances := v1.Group("/balances")
			balances.Use(r.authMiddleware.Authenticate())
			{
				balances.GET("", r.balanceController.GetRecent)
				balances.GET("/:year/:month", r.balanceController.GetMonthly)
				balances.POST("/resync", r.balanceController.Resync)
			}
		}
	}
}
