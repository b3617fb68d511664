package savings

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
)

// SetPrimaryGoalInput represents the input for toggling a goal's primary flag.
type SetPrimaryGoalInput struct {
	GoalID    uuid.UUID
	UserID    uuid.UUID
	IsPrimary bool
}

// SetPrimaryGoalOutput represents the output of toggling a goal's primary flag.
type SetPrimaryGoalOutput struct {
	Goal *entity.SavingsGoal
}

// SetPrimaryGoalUseCase marks a goal as the user's primary goal or clears the
// flag. Promoting a goal demotes every other live goal of the same user in one
// store transaction, so the single-primary invariant holds even under
// concurrent promotions.
type SetPrimaryGoalUseCase struct {
	goalRepo adapter.SavingsGoalRepository
}

// NewSetPrimaryGoalUseCase creates a new SetPrimaryGoalUseCase instance.
func NewSetPrimaryGoalUseCase(goalRepo adapter.SavingsGoalRepository) *SetPrimaryGoalUseCase {
	return &SetPrimaryGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the primary flag change.
func (uc *SetPrimaryGoalUseCase) Execute(ctx context.Context, input SetPrimaryGoalInput) (*SetPrimaryGoalOutput, error) {
	if _, err := findOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID); err != nil {
		return nil, err
	}

	goal, err := uc.goalRepo.SetPrimary(ctx, input.GoalID, input.UserID, input.IsPrimary)
	if err != nil {
		return nil, fmt.Errorf("failed to set primary goal: %w", err)
	}

	return &SetPrimaryGoalOutput{Goal: goal}, nil
}
