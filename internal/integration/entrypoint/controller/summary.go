package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/household-ledger/backend/internal/application/usecase/summary"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/household-ledger/backend/internal/integration/entrypoint/middleware"
)

// SummaryController handles monthly summary endpoints.
type SummaryController struct {
	getMonthlySummaryUseCase *summary.GetMonthlySummaryUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(getMonthlySummaryUseCase *summary.GetMonthlySummaryUseCase) *SummaryController {
	return &SummaryController{
		getMonthlySummaryUseCase: getMonthlySummaryUseCase,
	}
}

// GetMonthly handles GET /summary/:year/:month requests.
func (c *SummaryController) GetMonthly(ctx *gin.Context) {
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
	output, err := c.getMonthlySummaryUseCase.Execute(ctx.Request.Context(), summary.GetMonthlySummaryInput{
		UserID: userID,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		c.handleSummaryError(ctx, err)
		return
	}

	// The use case output already carries the response shape
	ctx.JSON(http.StatusOK, output)
}

// handleSummaryError handles summary errors and returns appropriate HTTP responses.
func (c *SummaryController) handleSummaryError(ctx *gin.Context, err error) {
	var sumErr *domainerror.SummaryError
	if errors.As(err, &sumErr) {
		statusCode := http.StatusInternalServerError
		if sumErr.Code == domainerror.ErrCodeInvalidPeriod {
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
