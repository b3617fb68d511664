package balance

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/application/usecase/period"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

// GetMonthlyBalancesInput represents the input for reading a month's snapshots.
type GetMonthlyBalancesInput struct {
	UserID uuid.UUID
	Year   int
	Month  int
}

// GetMonthlyBalancesOutput represents the output of reading a month's snapshots.
type GetMonthlyBalancesOutput struct {
	Balances []*entity.DailyBalance
}

// GetMonthlyBalancesUseCase returns the month's snapshot rows. When the
// snapshot table has no rows for the month, the balances are derived from the
// ledger on the fly, carrying the cumulative balance from before the month,
// without persisting anything.
type GetMonthlyBalancesUseCase struct {
	dailyBalanceRepo adapter.DailyBalanceRepository
	transactionRepo  adapter.TransactionRepository
}

// NewGetMonthlyBalancesUseCase creates a new GetMonthlyBalancesUseCase instance.
func NewGetMonthlyBalancesUseCase(
	dailyBalanceRepo adapter.DailyBalanceRepository,
	transactionRepo adapter.TransactionRepository,
) *GetMonthlyBalancesUseCase {
	return &GetMonthlyBalancesUseCase{
		dailyBalanceRepo: dailyBalanceRepo,
		transactionRepo:  transactionRepo,
	}
}

// Execute reads or derives the month's daily balances.
func (uc *GetMonthlyBalancesUseCase) Execute(ctx context.Context, input GetMonthlyBalancesInput) (*GetMonthlyBalancesOutput, error) {
	if !period.ValidYearMonth(input.Year, input.Month) {
		return nil, domainerror.NewSummaryError(
			domainerror.ErrCodeInvalidPeriod,
			"year and month must denote a valid calendar month",
			domainerror.ErrInvalidPeriod,
		)
	}

	start, end := period.MonthRange(input.Year, time.Month(input.Month))

	balances, err := uc.dailyBalanceRepo.FindRange(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to read monthly balances: %w", err)
	}
	if len(balances) > 0 {
		return &GetMonthlyBalancesOutput{Balances: balances}, nil
	}

	derived, err := uc.deriveFromLedger(ctx, input.UserID, start, end)
	if err != nil {
		return nil, err
	}

	return &GetMonthlyBalancesOutput{Balances: derived}, nil
}

func (uc *GetMonthlyBalancesUseCase) deriveFromLedger(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.DailyBalance, error) {
	totals, err := uc.transactionRepo.SumByDay(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum ledger by day: %w", err)
	}
	if len(totals) == 0 {
		return nil, nil
	}

	cumulative, err := uc.transactionRepo.CumulativeBalanceBefore(ctx, userID, start)
	if err != nil {
		return nil, fmt.Errorf("failed to read cumulative balance: %w", err)
	}

	sort.Slice(totals, func(i, j int) bool { return totals[i].Date.Before(totals[j].Date) })

	balances := make([]*entity.DailyBalance, 0, len(totals))
	for _, day := range totals {
		cumulative = cumulative.Add(day.Income).Sub(day.Expense)
		balances = append(balances, &entity.DailyBalance{
			UserID:  userID,
			Date:    entity.TruncateToDay(day.Date),
			Income:  day.Income,
			Expense: day.Expense,
			Balance: cumulative,
		})
	}

	return balances, nil
}
