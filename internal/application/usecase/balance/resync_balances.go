package balance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

// ResyncBalancesInput represents the input for a balance re-sync.
type ResyncBalancesInput struct {
	UserID   uuid.UUID
	FromDate time.Time
}

// ResyncBalancesOutput represents the output of a balance re-sync.
type ResyncBalancesOutput struct {
	DaysRecomputed int
}

// ResyncBalancesUseCase recomputes every snapshot from a start date through
// today. Ledger mutations only refresh the mutated day's snapshot, so a
// backdated edit leaves later cumulative balances stale until this runs.
type ResyncBalancesUseCase struct {
	dailyBalanceRepo adapter.DailyBalanceRepository
	summaryCache     adapter.SummaryCache
	logger           *slog.Logger
}

// NewResyncBalancesUseCase creates a new ResyncBalancesUseCase instance.
func NewResyncBalancesUseCase(
	dailyBalanceRepo adapter.DailyBalanceRepository,
	summaryCache adapter.SummaryCache,
	logger *slog.Logger,
) *ResyncBalancesUseCase {
	return &ResyncBalancesUseCase{
		dailyBalanceRepo: dailyBalanceRepo,
		summaryCache:     summaryCache,
		logger:           logger,
	}
}

// Execute recomputes snapshots day by day from FromDate through today.
func (uc *ResyncBalancesUseCase) Execute(ctx context.Context, input ResyncBalancesInput) (*ResyncBalancesOutput, error) {
	today := entity.TruncateToDay(time.Now())
	from := entity.TruncateToDay(input.FromDate)

	if input.FromDate.IsZero() || from.After(today) {
		return nil, domainerror.NewSummaryError(
			domainerror.ErrCodeInvalidResyncDate,
			"re-sync start date must be today or earlier",
			domainerror.ErrInvalidResyncDate,
		)
	}

	days := 0
	for day := from; !day.After(today); day = day.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, err := uc.dailyBalanceRepo.Recompute(ctx, input.UserID, day); err != nil {
			return nil, fmt.Errorf("failed to recompute balance for %s: %w", day.Format("2006-01-02"), err)
		}
		days++
	}

	uc.summaryCache.InvalidateUser(ctx, input.UserID)

	uc.logger.Info("re-synced daily balances",
		"user_id", input.UserID,
		"from", from.Format("2006-01-02"),
		"days", days,
	)

	return &ResyncBalancesOutput{DaysRecomputed: days}, nil
}
