package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/application/usecase/savings"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/household-ledger/backend/internal/integration/entrypoint/middleware"
)

// SavingsGoalController handles savings goal endpoints.
type SavingsGoalController struct {
	createUseCase     *savings.CreateGoalUseCase
	listUseCase       *savings.ListGoalsUseCase
	updateUseCase     *savings.UpdateGoalUseCase
	deleteUseCase     *savings.DeleteGoalUseCase
	depositUseCase    *savings.DepositUseCase
	setPrimaryUseCase *savings.SetPrimaryGoalUseCase
}

// NewSavingsGoalController creates a new savings goal controller instance.
func NewSavingsGoalController(
	createUseCase *savings.CreateGoalUseCase,
	listUseCase *savings.ListGoalsUseCase,
	updateUseCase *savings.UpdateGoalUseCase,
	deleteUseCase *savings.DeleteGoalUseCase,
	depositUseCase *savings.DepositUseCase,
	setPrimaryUseCase *savings.SetPrimaryGoalUseCase,
) *SavingsGoalController {
	return &SavingsGoalController{
		createUseCase:     createUseCase,
		listUseCase:       listUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		depositUseCase:    depositUseCase,
		setPrimaryUseCase: setPrimaryUseCase,
	}
}

// Create handles POST /savings-goals requests.
func (c *SavingsGoalController) Create(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse request body
	var req dto.CreateSavingsGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	// Build input
	input := savings.CreateGoalInput{
		UserID:       userID,
		Name:         req.Name,
		TargetAmount: decimal.NewFromInt(*req.TargetAmount),
		TargetYear:   req.TargetYear,
		TargetMonth:  req.TargetMonth,
		IsPrimary:    req.IsPrimary,
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSavingsError(ctx, err)
		return
	}

	// Build response
	response := dto.ToSavingsGoalResponse(output.Goal)
	ctx.JSON(http.StatusCreated, response)
}

// List handles GET /savings-goals requests.
func (c *SavingsGoalController) List(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Execute use case
	output, err := c.listUseCase.Execute(ctx.Request.Context(), savings.ListGoalsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve savings goals",
		})
		return
	}

	// Build response
	response := dto.ToSavingsGoalListResponse(output.Goals)
	ctx.JSON(http.StatusOK, response)
}

// Update handles PATCH /savings-goals/:id requests.
func (c *SavingsGoalController) Update(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse goal ID from URL
	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	// Parse request body
	var req dto.UpdateSavingsGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	// Build input
	input := savings.UpdateGoalInput{
		GoalID:      goalID,
		UserID:      userID,
		Name:        req.Name,
		TargetYear:  req.TargetYear,
		TargetMonth: req.TargetMonth,
	}
	if req.TargetAmount != nil {
		amount := decimal.NewFromInt(*req.TargetAmount)
		input.TargetAmount = &amount
	}
	if req.CurrentAmount != nil {
		amount := decimal.NewFromInt(*req.CurrentAmount)
		input.CurrentAmount = &amount
	}

	// Execute use case
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSavingsError(ctx, err)
		return
	}

	// Build response
	response := dto.ToSavingsGoalResponse(output.Goal)
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /savings-goals/:id requests. Deposit transactions
// recorded against the goal stay in the ledger.
func (c *SavingsGoalController) Delete(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse goal ID from URL
	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	// Execute use case
	err = c.deleteUseCase.Execute(ctx.Request.Context(), savings.DeleteGoalInput{
		GoalID: goalID,
		UserID: userID,
	})
	if err != nil {
		c.handleSavingsError(ctx, err)
		return
	}

	// Return no content on success
	ctx.Status(http.StatusNoContent)
}

// Deposit handles POST /savings-goals/:id/deposit requests.
func (c *SavingsGoalController) Deposit(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse goal ID from URL
	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	// Parse request body
	var req dto.DepositRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidDepositAmount),
		})
		return
	}

	// Build input
	input := savings.DepositInput{
		GoalID:      goalID,
		UserID:      userID,
		Amount:      decimal.NewFromInt(req.Amount),
		Description: req.Description,
	}

	// Execute use case
	output, err := c.depositUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSavingsError(ctx, err)
		return
	}

	// Build response
	response := dto.DepositResponse{
		Goal:        dto.ToSavingsGoalResponse(output.Goal),
		Transaction: dto.ToTransactionResponse(output.Transaction),
	}
	ctx.JSON(http.StatusCreated, response)
}

// SetPrimary handles PATCH /savings-goals/:id/primary requests.
func (c *SavingsGoalController) SetPrimary(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse goal ID from URL
	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	// Parse request body
	var req dto.SetPrimaryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	// Execute use case
	output, err := c.setPrimaryUseCase.Execute(ctx.Request.Context(), savings.SetPrimaryGoalInput{
		GoalID:    goalID,
		UserID:    userID,
		IsPrimary: *req.IsPrimary,
	})
	if err != nil {
		c.handleSavingsError(ctx, err)
		return
	}

	// Build response
	response := dto.ToSavingsGoalResponse(output.Goal)
	ctx.JSON(http.StatusOK, response)
}

// handleSavingsError handles savings goal errors and returns appropriate HTTP responses.
func (c *SavingsGoalController) handleSavingsError(ctx *gin.Context, err error) {
	var savingsErr *domainerror.SavingsError
	if errors.As(err, &savingsErr) {
		statusCode := c.getStatusCodeForSavingsError(savingsErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: savingsErr.Message,
			Code:  string(savingsErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSavingsError maps savings goal error codes to HTTP status codes.
func (c *SavingsGoalController) getStatusCodeForSavingsError(code domainerror.SavingsErrorCode) int {
	switch code {
	case domainerror.ErrCodeSavingsGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedGoal:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidTargetAmount,
		domainerror.ErrCodeInvalidDepositAmount,
		domainerror.ErrCodeInvalidTargetMonth,
		domainerror.ErrCodeMissingGoalFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
