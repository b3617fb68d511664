package dto

import (
	"time"

	"github.com/household-ledger/backend/internal/domain/entity"
)

// UpsertBudgetRequest represents the request body for setting a monthly
// budget. A missing category_id targets the overall monthly budget.
type UpsertBudgetRequest struct {
	CategoryID *string `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Year       int     `json:"year" binding:"required"`
	Month      int     `json:"month" binding:"required"`
	Amount     *int64  `json:"amount" binding:"required,gte=0"`
}

// BudgetResponse represents a single budget row in API responses.
type BudgetResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	CategoryID *string   `json:"category_id,omitempty"`
	Year       int       `json:"year"`
	Month      int       `json:"month"`
	Amount     int64     `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BudgetListResponse represents the response for listing a month's budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	response := BudgetResponse{
		ID:        b.ID.String(),
		UserID:    b.UserID.String(),
		Year:      b.Month.Year(),
		Month:     int(b.Month.Month()),
		Amount:    b.Amount.IntPart(),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}

	if b.CategoryID != nil {
		id := b.CategoryID.String()
		response.CategoryID = &id
	}

	return response
}

// ToBudgetListResponse converts a slice of budgets to the list DTO.
func ToBudgetListResponse(budgets []*entity.Budget) BudgetListResponse {
	out := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		out[i] = ToBudgetResponse(b)
	}
	return BudgetListResponse{Budgets: out}
}
