// Package balance contains daily-balance read and re-sync use cases.
package balance

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

// DefaultRecentDays is used when a recent-balance request omits the day count.
const DefaultRecentDays = 7

// MaxRecentDays bounds a recent-balance request.
const MaxRecentDays = 90

// GetRecentBalancesInput represents the input for reading recent snapshots.
type GetRecentBalancesInput struct {
	UserID uuid.UUID
	Days   int
}

// GetRecentBalancesOutput represents the output of reading recent snapshots.
type GetRecentBalancesOutput struct {
	Balances []*entity.DailyBalance
}

// GetRecentBalancesUseCase returns the user's newest snapshot rows.
type GetRecentBalancesUseCase struct {
	dailyBalanceRepo adapter.DailyBalanceRepository
}

// NewGetRecentBalancesUseCase creates a new GetRecentBalancesUseCase instance.
func NewGetRecentBalancesUseCase(dailyBalanceRepo adapter.DailyBalanceRepository) *GetRecentBalancesUseCase {
	return &GetRecentBalancesUseCase{
		dailyBalanceRepo: dailyBalanceRepo,
	}
}

// Execute reads the most recent daily balance snapshots.
func (uc *GetRecentBalancesUseCase) Execute(ctx context.Context, input GetRecentBalancesInput) (*GetRecentBalancesOutput, error) {
	days := input.Days
	if days == 0 {
		days = DefaultRecentDays
	}
	if days < 1 || days > MaxRecentDays {
		return nil, domainerror.NewSummaryError(
			domainerror.ErrCodeInvalidDayCount,
			fmt.Sprintf("day count must be between 1 and %d", MaxRecentDays),
			domainerror.ErrInvalidDayCount,
		)
	}

	balances, err := uc.dailyBalanceRepo.FindRecent(ctx, input.UserID, days)
	if err != nil {
		return nil, fmt.Errorf("failed to read recent balances: %w", err)
	}

	return &GetRecentBalancesOutput{Balances: balances}, nil
}
