// Package savings contains savings-goal use cases, including the deposit
// coordinator and primary-goal enforcement.
package savings

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/application/usecase/period"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

// CreateGoalInput represents the input for savings goal creation.
type CreateGoalInput struct {
	UserID       uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	TargetYear   int
	TargetMonth  int
	IsPrimary    bool
}

// CreateGoalOutput represents the output of savings goal creation.
type CreateGoalOutput struct {
	Goal *entity.SavingsGoal
}

// CreateGoalUseCase handles savings goal creation. When the new goal is
// primary, the repository clears the flag on the user's other live goals in
// the same store transaction.
type CreateGoalUseCase struct {
	goalRepo adapter.SavingsGoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.SavingsGoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the savings goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewSavingsError(
			domainerror.ErrCodeMissingGoalFields,
			"name is required",
			nil,
		)
	}

	if input.TargetAmount.IsNegative() || !input.TargetAmount.IsInteger() {
		return nil, domainerror.NewSavingsError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be a non-negative integral value",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	if !period.ValidYearMonth(input.TargetYear, input.TargetMonth) {
		return nil, domainerror.NewSavingsError(
			domainerror.ErrCodeInvalidTargetMonth,
			"target year and month must denote a valid calendar month",
			domainerror.ErrInvalidTargetMonth,
		)
	}

	goal := entity.NewSavingsGoal(input.UserID, input.Name, input.TargetAmount, input.TargetYear, input.TargetMonth, input.IsPrimary)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create savings goal: %w", err)
	}

	return &CreateGoalOutput{Goal: goal}, nil
}
