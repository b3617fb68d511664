package savings

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

func TestSetPrimaryGoalUseCase_Execute_DemotesOtherGoals(t *testing.T) {
	userID := uuid.New()
	repo := newFakeGoalRepo()
	first := entity.NewSavingsGoal(userID, "Vacation", decimal.NewFromInt(100000), 2026, 12, true)
	second := entity.NewSavingsGoal(userID, "New car", decimal.NewFromInt(2000000), 2028, 1, false)
	_ = repo.Create(context.Background(), first)
	_ = repo.Create(context.Background(), second)

	uc := NewSetPrimaryGoalUseCase(repo)

	output, err := uc.Execute(context.Background(), SetPrimaryGoalInput{
		GoalID:    second.ID,
		UserID:    userID,
		IsPrimary: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Goal.IsPrimary {
		t.Error("expected promoted goal to be primary")
	}
	if first.IsPrimary {
		t.Error("expected previous primary goal to be demoted")
	}

	primaries := 0
	goals, _ := repo.FindByUser(context.Background(), userID)
	for _, g := range goals {
		if g.IsPrimary {
			primaries++
		}
	}
	if primaries != 1 {
		t.Errorf("expected exactly one primary goal, got %d", primaries)
	}
}

func TestSetPrimaryGoalUseCase_Execute_ClearFlag(t *testing.T) {
	userID := uuid.New()
	repo := newFakeGoalRepo()
	goal := entity.NewSavingsGoal(userID, "Vacation", decimal.NewFromInt(100000), 2026, 12, true)
	_ = repo.Create(context.Background(), goal)

	uc := NewSetPrimaryGoalUseCase(repo)

	output, err := uc.Execute(context.Background(), SetPrimaryGoalInput{
		GoalID:    goal.ID,
		UserID:    userID,
		IsPrimary: false,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Goal.IsPrimary {
		t.Error("expected primary flag cleared")
	}
}

func TestSetPrimaryGoalUseCase_Execute_NotFound(t *testing.T) {
	uc := NewSetPrimaryGoalUseCase(newFakeGoalRepo())

	_, err := uc.Execute(context.Background(), SetPrimaryGoalInput{
		GoalID:    uuid.New(),
		UserID:    uuid.New(),
		IsPrimary: true,
	})

	var savingsErr *domainerror.SavingsError
	if !errors.As(err, &savingsErr) {
		t.Fatalf("expected SavingsError, got %v", err)
	}
	if savingsErr.Code != domainerror.ErrCodeSavingsGoalNotFound {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeSavingsGoalNotFound, savingsErr.Code)
	}
}

func TestCreateGoalUseCase_Execute_Validation(t *testing.T) {
	uc := NewCreateGoalUseCase(newFakeGoalRepo())

	tests := []struct {
		name     string
		input    CreateGoalInput
		wantCode domainerror.SavingsErrorCode
	}{
		{
			name:     "missing name",
			input:    CreateGoalInput{UserID: uuid.New(), TargetAmount: decimal.NewFromInt(1000), TargetYear: 2026, TargetMonth: 12},
			wantCode: domainerror.ErrCodeMissingGoalFields,
		},
		{
			name:     "negative target",
			input:    CreateGoalInput{UserID: uuid.New(), Name: "Vacation", TargetAmount: decimal.NewFromInt(-1), TargetYear: 2026, TargetMonth: 12},
			wantCode: domainerror.ErrCodeInvalidTargetAmount,
		},
		{
			name:     "fractional target",
			input:    CreateGoalInput{UserID: uuid.New(), Name: "Vacation", TargetAmount: decimal.NewFromFloat(9.99), TargetYear: 2026, TargetMonth: 12},
			wantCode: domainerror.ErrCodeInvalidTargetAmount,
		},
		{
			name:     "month out of range",
			input:    CreateGoalInput{UserID: uuid.New(), Name: "Vacation", TargetAmount: decimal.NewFromInt(1000), TargetYear: 2026, TargetMonth: 13},
			wantCode: domainerror.ErrCodeInvalidTargetMonth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			var savingsErr *domainerror.SavingsError
			if !errors.As(err, &savingsErr) {
				t.Fatalf("expected SavingsError, got %v", err)
			}
			if savingsErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, savingsErr.Code)
			}
		})
	}
}

func TestCreateGoalUseCase_Execute_ZeroTargetAllowed(t *testing.T) {
	repo := newFakeGoalRepo()
	uc := NewCreateGoalUseCase(repo)

	output, err := uc.Execute(context.Background(), CreateGoalInput{
		UserID:       uuid.New(),
		Name:         "Rainy day",
		TargetAmount: decimal.Zero,
		TargetYear:   2026,
		TargetMonth:  12,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Goal.ProgressPercent() != 0 {
		t.Errorf("expected zero progress for a zero target, got %d", output.Goal.ProgressPercent())
	}
}
