package savings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

// DepositInput represents the input for a savings deposit. An empty
// description defaults to "<goal name> savings".
type DepositInput struct {
	GoalID      uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Description string
}

// DepositOutput represents the output of a savings deposit.
type DepositOutput struct {
	Goal        *entity.SavingsGoal
	Transaction *entity.Transaction
}

// DepositUseCase records a savings deposit: one expense transaction linked to
// the goal, the goal's current amount incremented, and the day's balance
// snapshot refreshed, all inside a single store transaction. Either every
// effect lands or none does.
type DepositUseCase struct {
	goalRepo     adapter.SavingsGoalRepository
	summaryCache adapter.SummaryCache
}

// NewDepositUseCase creates a new DepositUseCase instance.
func NewDepositUseCase(goalRepo adapter.SavingsGoalRepository, summaryCache adapter.SummaryCache) *DepositUseCase {
	return &DepositUseCase{
		goalRepo:     goalRepo,
		summaryCache: summaryCache,
	}
}

// Execute performs the deposit.
func (uc *DepositUseCase) Execute(ctx context.Context, input DepositInput) (*DepositOutput, error) {
	if !input.Amount.IsPositive() || !input.Amount.IsInteger() {
		return nil, domainerror.NewSavingsError(
			domainerror.ErrCodeInvalidDepositAmount,
			"deposit amount must be a positive integral value",
			domainerror.ErrInvalidDepositAmount,
		)
	}

	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	description := input.Description
	if description == "" {
		description = goal.Name + " savings"
	}

	goal, txn, err := uc.goalRepo.Deposit(ctx, goal.ID, input.UserID, input.Amount, description, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to deposit into savings goal: %w", err)
	}

	uc.summaryCache.InvalidateUser(ctx, input.UserID)

	return &DepositOutput{Goal: goal, Transaction: txn}, nil
}
