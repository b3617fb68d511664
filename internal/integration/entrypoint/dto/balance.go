package dto

import (
	"github.com/household-ledger/backend/internal/domain/entity"
)

// DailyBalanceResponse represents a single daily balance snapshot in API responses.
type DailyBalanceResponse struct {
	Date    string `json:"date"`
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
	Balance int64  `json:"balance"`
}

// DailyBalanceListResponse represents the response for listing daily balances.
type DailyBalanceListResponse struct {
	Balances []DailyBalanceResponse `json:"balances"`
}

// ResyncBalancesRequest represents the request body for a balance re-sync.
type ResyncBalancesRequest struct {
	FromDate string `json:"from_date" binding:"required,datetime=2006-01-02"`
}

// ResyncBalancesResponse represents the response for a balance re-sync.
type ResyncBalancesResponse struct {
	DaysRecomputed int `json:"days_recomputed"`
}

// ToDailyBalanceResponse converts a domain DailyBalance entity to a DailyBalanceResponse DTO.
func ToDailyBalanceResponse(b *entity.DailyBalance) DailyBalanceResponse {
	return DailyBalanceResponse{
		Date:    b.Date.Format("2006-01-02"),
		Income:  b.Income.IntPart(),
		Expense: b.Expense.IntPart(),
		Balance: b.Balance.IntPart(),
	}
}

// ToDailyBalanceListResponse converts a slice of snapshots to the list DTO.
func ToDailyBalanceListResponse(balances []*entity.DailyBalance) DailyBalanceListResponse {
	out := make([]DailyBalanceResponse, len(balances))
	for i, b := range balances {
		out[i] = ToDailyBalanceResponse(b)
	}
	return DailyBalanceListResponse{Balances: out}
}
