package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/household-ledger/backend/internal/application/usecase/balance"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/household-ledger/backend/internal/integration/entrypoint/middleware"
)

// BalanceController handles daily balance snapshot endpoints.
type BalanceController struct {
	getRecentUseCase  *balance.GetRecentBalancesUseCase
	getMonthlyUseCase *balance.GetMonthlyBalancesUseCase
	resyncUseCase     *balance.ResyncBalancesUseCase
}

// NewBalanceController creates a new balance controller instance.
func NewBalanceController(
	getRecentUseCase *balance.GetRecentBalancesUseCase,
	getMonthlyUseCase *balance.GetMonthlyBalancesUseCase,
	resyncUseCase *balance.ResyncBalancesUseCase,
) *BalanceController {
	return &BalanceController{
		getRecentUseCase:  getRecentUseCase,
		getMonthlyUseCase: getMonthlyUseCase,
		resyncUseCase:     resyncUseCase,
	}
}

// GetRecent handles GET /balances requests. The optional days query parameter
// bounds the window; it defaults to the last seven days.
func (c *BalanceController) GetRecent(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse optional days parameter; zero means the default window
	days := 0
	if daysStr := ctx.Query("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid days parameter",
				Code:  string(domainerror.ErrCodeInvalidDayCount),
			})
			return
		}
		days = parsed
	}

	// Execute use case
	output, err := c.getRecentUseCase.Execute(ctx.Request.Context(), balance.GetRecentBalancesInput{
		UserID: userID,
		Days:   days,
	})
	if err != nil {
		c.handleBalanceError(ctx, err)
		return
	}

	// Build response
	response := dto.ToDailyBalanceListResponse(output.Balances)
	ctx.JSON(http.StatusOK, response)
}

// GetMonthly handles GET /balances/:year/:month requests.
func (c *BalanceController) GetMonthly(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse period from URL
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid year parameter",
			Code:  string(domainerror.ErrCodeInvalidPeriod),
		})
		return
	}
	month, err := strconv.Atoi(ctx.Param("month"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid month parameter",
			Code:  string(domainerror.ErrCodeInvalidPeriod),
		})
		return
	}

	// Execute use case
	output, err := c.getMonthlyUseCase.Execute(ctx.Request.Context(), balance.GetMonthlyBalancesInput{
		UserID: userID,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		c.handleBalanceError(ctx, err)
		return
	}

	// Build response
	response := dto.ToDailyBalanceListResponse(output.Balances)
	ctx.JSON(http.StatusOK, response)
}

// Resync handles POST /balances/resync requests. It recomputes every snapshot
// from the given date through today.
func (c *BalanceController) Resync(ctx *gin.Context) {
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
	var req dto.ResyncBalancesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidResyncDate),
		})
		return
	}

	// Parse start date
	fromDate, err := time.Parse("2006-01-02", req.FromDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid from_date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidResyncDate),
		})
		return
	}

	// Execute use case
	output, err := c.resyncUseCase.Execute(ctx.Request.Context(), balance.ResyncBalancesInput{
		UserID:   userID,
		FromDate: fromDate,
	})
	if err != nil {
		c.handleBalanceError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ResyncBalancesResponse{
		DaysRecomputed: output.DaysRecomputed,
	})
}

// handleBalanceError handles balance errors and returns appropriate HTTP responses.
func (c *BalanceController) handleBalanceError(ctx *gin.Context, err error) {
	var sumErr *domainerror.SummaryError
	if errors.As(err, &sumErr) {
		statusCode := http.StatusInternalServerError
		switch sumErr.Code {
		case domainerror.ErrCodeInvalidPeriod,
			domainerror.ErrCodeInvalidDayCount,
			domainerror.ErrCodeInvalidResyncDate:
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: sumErr.Message,
			Code:  string(sumErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
