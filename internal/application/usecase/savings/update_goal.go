package savings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/application/usecase/period"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for updating a savings goal. Nil
// pointers leave the corresponding field unchanged. CurrentAmount is a
// full-field correction that bypasses the deposit coordinator.
type UpdateGoalInput struct {
	GoalID        uuid.UUID
	UserID        uuid.UUID
	Name          *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	TargetYear    *int
	TargetMonth   *int
}

// UpdateGoalOutput represents the output of updating a savings goal.
type UpdateGoalOutput struct {
	Goal *entity.SavingsGoal
}

// UpdateGoalUseCase handles savings goal updates.
type UpdateGoalUseCase struct {
	goalRepo adapter.SavingsGoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.SavingsGoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the savings goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewSavingsError(
				domainerror.ErrCodeMissingGoalFields,
				"name cannot be empty",
				nil,
			)
		}
		goal.Name = *input.Name
	}

	if input.TargetAmount != nil {
		if input.TargetAmount.IsNegative() || !input.TargetAmount.IsInteger() {
			return nil, domainerror.NewSavingsError(
				domainerror.ErrCodeInvalidTargetAmount,
				"target amount must be a non-negative integral value",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		goal.TargetAmount = *input.TargetAmount
	}

	if input.CurrentAmount != nil {
		if input.CurrentAmount.IsNegative() || !input.CurrentAmount.IsInteger() {
			return nil, domainerror.NewSavingsError(
				domainerror.ErrCodeInvalidTargetAmount,
				"current amount must be a non-negative integral value",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		goal.CurrentAmount = *input.CurrentAmount
	}

	targetYear := goal.TargetYear
	targetMonth := goal.TargetMonth
	if input.TargetYear != nil {
		targetYear = *input.TargetYear
	}
	if input.TargetMonth != nil {
		targetMonth = *input.TargetMonth
	}
	if !period.ValidYearMonth(targetYear, targetMonth) {
		return nil, domainerror.NewSavingsError(
			domainerror.ErrCodeInvalidTargetMonth,
			"target year and month must denote a valid calendar month",
			domainerror.ErrInvalidTargetMonth,
		)
	}
	goal.TargetYear = targetYear
	goal.TargetMonth = targetMonth

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update savings goal: %w", err)
	}

	return &UpdateGoalOutput{Goal: goal}, nil
}

// findOwnedGoal loads a live goal and verifies ownership.
func findOwnedGoal(ctx context.Context, repo adapter.SavingsGoalRepository, goalID, userID uuid.UUID) (*entity.SavingsGoal, error) {
	goal, err := repo.FindByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSavingsGoalNotFound) {
			return nil, domainerror.NewSavingsError(
				domainerror.ErrCodeSavingsGoalNotFound,
				"savings goal not found",
				domainerror.ErrSavingsGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find savings goal: %w", err)
	}
	if goal.UserID != userID {
		return nil, domainerror.NewSavingsError(
			domainerror.ErrCodeNotAuthorizedGoal,
			"not authorized to modify this savings goal",
			domainerror.ErrNotAuthorizedToModifyGoal,
		)
	}
	return goal, nil
}
