package dto

import (
	"time"

	"github.com/household-ledger/backend/internal/domain/entity"
)

// CreateSavingsGoalRequest represents the request body for goal creation.
type CreateSavingsGoalRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	TargetAmount *int64 `json:"target_amount" binding:"required,gte=0"`
	TargetYear   int    `json:"target_year" binding:"required"`
	TargetMonth  int    `json:"target_month" binding:"required"`
	IsPrimary    bool   `json:"is_primary,omitempty"`
}

// UpdateSavingsGoalRequest represents the request body for goal update.
// Omitted fields are left unchanged.
type UpdateSavingsGoalRequest struct {
	Name          *string `json:"name,omitempty" binding:"omitempty,max=100"`
	TargetAmount  *int64  `json:"target_amount,omitempty" binding:"omitempty,gte=0"`
	CurrentAmount *int64  `json:"current_amount,omitempty" binding:"omitempty,gte=0"`
	TargetYear    *int    `json:"target_year,omitempty"`
	TargetMonth   *int    `json:"target_month,omitempty"`
}

// DepositRequest represents the request body for a savings deposit.
type DepositRequest struct {
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Description string `json:"description,omitempty" binding:"max=255"`
}

// SetPrimaryRequest represents the request body for the primary-goal toggle.
type SetPrimaryRequest struct {
	IsPrimary *bool `json:"is_primary" binding:"required"`
}

// SavingsGoalResponse represents a single savings goal in API responses.
type SavingsGoalResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Name            string    `json:"name"`
	TargetAmount    int64     `json:"target_amount"`
	CurrentAmount   int64     `json:"current_amount"`
	TargetYear      int       `json:"target_year"`
	TargetMonth     int       `json:"target_month"`
	IsPrimary       bool      `json:"is_primary"`
	ProgressPercent int       `json:"progress_percent"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// SavingsGoalListResponse represents the response for listing savings goals.
type SavingsGoalListResponse struct {
	Goals []SavingsGoalResponse `json:"goals"`
}

// DepositResponse represents the response for a savings deposit.
type DepositResponse struct {
	Goal        SavingsGoalResponse `json:"goal"`
	Transaction TransactionResponse `json:"transaction"`
}

// ToSavingsGoalResponse converts a domain SavingsGoal entity to a SavingsGoalResponse DTO.
func ToSavingsGoalResponse(g *entity.SavingsGoal) SavingsGoalResponse {
	return SavingsGoalResponse{
		ID:              g.ID.String(),
		UserID:          g.UserID.String(),
		Name:            g.Name,
		TargetAmount:    g.TargetAmount.IntPart(),
		CurrentAmount:   g.CurrentAmount.IntPart(),
		TargetYear:      g.TargetYear,
		TargetMonth:     g.TargetMonth,
		IsPrimary:       g.IsPrimary,
		ProgressPercent: g.ProgressPercent(),
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
	}
}

// ToSavingsGoalListResponse converts a slice of savings goals to the list DTO.
func ToSavingsGoalListResponse(goals []*entity.SavingsGoal) SavingsGoalListResponse {
	out := make([]SavingsGoalResponse, len(goals))
	for i, g := range goals {
		out[i] = ToSavingsGoalResponse(g)
	}
	return SavingsGoalListResponse{Goals: out}
}
