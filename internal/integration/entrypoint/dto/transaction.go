package dto

import (
	"time"

	"github.com/household-ledger/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type        string  `json:"type" binding:"required,oneof=income expense"`
	Amount      int64   `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description" binding:"max=255"`
	CategoryID  *string `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Type          string    `json:"type"`
	Amount        int64     `json:"amount"`
	Description   string    `json:"description"`
	CategoryID    *string   `json:"category_id,omitempty"`
	SavingsGoalID *string   `json:"savings_goal_id,omitempty"`
	Date          string    `json:"date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:          t.ID.String(),
		UserID:      t.UserID.String(),
		Type:        string(t.Type),
		Amount:      t.Amount.IntPart(),
		Description: t.Description,
		Date:        t.Date.Format("2006-01-02"),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}

	if t.CategoryID != nil {
		id := t.CategoryID.String()
		response.CategoryID = &id
	}
	if t.SavingsGoalID != nil {
		id := t.SavingsGoalID.String()
		response.SavingsGoalID = &id
	}

	return response
}

// ToTransactionListResponse converts a slice of transactions to the list DTO.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	out := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		out[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{Transactions: out}
}
