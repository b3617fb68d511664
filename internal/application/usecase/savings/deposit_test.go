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

func TestDepositUseCase_Execute_InvalidAmount(t *testing.T) {
	userID := uuid.New()
	repo := newFakeGoalRepo()
	cache := &fakeSummaryCache{}
	goal := entity.NewSavingsGoal(userID, "Vacation", decimal.NewFromInt(100000), 2026, 12, false)
	_ = repo.Create(context.Background(), goal)

	uc := NewDepositUseCase(repo, cache)

	tests := []struct {
		name   string
		amount decimal.Decimal
	}{
		{"zero amount", decimal.Zero},
		{"negative amount", decimal.NewFromInt(-500)},
		{"fractional amount", decimal.NewFromFloat(10.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), DepositInput{
				GoalID: goal.ID,
				UserID: userID,
				Amount: tt.amount,
			})
			var savingsErr *domainerror.SavingsError
			if !errors.As(err, &savingsErr) {
				t.Fatalf("expected SavingsError, got %v", err)
			}
			if savingsErr.Code != domainerror.ErrCodeInvalidDepositAmount {
				t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidDepositAmount, savingsErr.Code)
			}
			if !goal.CurrentAmount.IsZero() {
				t.Errorf("expected current amount unchanged, got %s", goal.CurrentAmount)
			}
			if len(cache.invalidated) != 0 {
				t.Error("expected no cache invalidation on validation failure")
			}
		})
	}
}

func TestDepositUseCase_Execute_GoalNotFound(t *testing.T) {
	repo := newFakeGoalRepo()
	uc := NewDepositUseCase(repo, &fakeSummaryCache{})

	_, err := uc.Execute(context.Background(), DepositInput{
		GoalID: uuid.New(),
		UserID: uuid.New(),
		Amount: decimal.NewFromInt(1000),
	})

	var savingsErr *domainerror.SavingsError
	if !errors.As(err, &savingsErr) {
		t.Fatalf("expected SavingsError, got %v", err)
	}
	if savingsErr.Code != domainerror.ErrCodeSavingsGoalNotFound {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeSavingsGoalNotFound, savingsErr.Code)
	}
}

func TestDepositUseCase_Execute_ForeignGoal(t *testing.T) {
	repo := newFakeGoalRepo()
	owner := uuid.New()
	goal := entity.NewSavingsGoal(owner, "Vacation", decimal.NewFromInt(100000), 2026, 12, false)
	_ = repo.Create(context.Background(), goal)

	uc := NewDepositUseCase(repo, &fakeSummaryCache{})

	_, err := uc.Execute(context.Background(), DepositInput{
		GoalID: goal.ID,
		UserID: uuid.New(),
		Amount: decimal.NewFromInt(1000),
	})

	var savingsErr *domainerror.SavingsError
	if !errors.As(err, &savingsErr) {
		t.Fatalf("expected SavingsError, got %v", err)
	}
	if savingsErr.Code != domainerror.ErrCodeNotAuthorizedGoal {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeNotAuthorizedGoal, savingsErr.Code)
	}
}

func TestDepositUseCase_Execute_Success(t *testing.T) {
	userID := uuid.New()
	repo := newFakeGoalRepo()
	cache := &fakeSummaryCache{}
	goal := entity.NewSavingsGoal(userID, "Emergency fund", decimal.NewFromInt(500000), 2027, 6, true)
	_ = repo.Create(context.Background(), goal)

	uc := NewDepositUseCase(repo, cache)

	output, err := uc.Execute(context.Background(), DepositInput{
		GoalID:      goal.ID,
		UserID:      userID,
		Amount:      decimal.NewFromInt(25000),
		Description: "August top-up",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Goal.CurrentAmount.Equal(decimal.NewFromInt(25000)) {
		t.Errorf("expected current amount 25000, got %s", output.Goal.CurrentAmount)
	}
	if output.Transaction.Type != entity.TransactionTypeExpense {
		t.Errorf("expected expense transaction, got %s", output.Transaction.Type)
	}
	if output.Transaction.SavingsGoalID == nil || *output.Transaction.SavingsGoalID != goal.ID {
		t.Error("expected transaction linked to the goal")
	}
	if output.Transaction.Description != "August top-up" {
		t.Errorf("unexpected description %q", output.Transaction.Description)
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != userID {
		t.Error("expected summary cache invalidation for the user")
	}
}

func TestDepositUseCase_Execute_DefaultDescription(t *testing.T) {
	userID := uuid.New()
	repo := newFakeGoalRepo()
	goal := entity.NewSavingsGoal(userID, "New car", decimal.NewFromInt(2000000), 2028, 1, false)
	_ = repo.Create(context.Background(), goal)

	uc := NewDepositUseCase(repo, &fakeSummaryCache{})

	output, err := uc.Execute(context.Background(), DepositInput{
		GoalID: goal.ID,
		UserID: userID,
		Amount: decimal.NewFromInt(5000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Transaction.Description != "New car savings" {
		t.Errorf("expected default description %q, got %q", "New car savings", output.Transaction.Description)
	}
}

func TestDepositUseCase_Execute_RepositoryFailure(t *testing.T) {
	userID := uuid.New()
	repo := newFakeGoalRepo()
	cache := &fakeSummaryCache{}
	goal := entity.NewSavingsGoal(userID, "Vacation", decimal.NewFromInt(100000), 2026, 12, false)
	_ = repo.Create(context.Background(), goal)
	repo.depositErr = errors.New("store unavailable")

	uc := NewDepositUseCase(repo, cache)

	_, err := uc.Execute(context.Background(), DepositInput{
		GoalID: goal.ID,
		UserID: userID,
		Amount: decimal.NewFromInt(1000),
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(cache.invalidated) != 0 {
		t.Error("expected no cache invalidation when the deposit fails")
	}
}
