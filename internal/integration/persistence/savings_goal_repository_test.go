package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/integration/persistence/model"
)

func TestSavingsGoalRepository_Deposit(t *testing.T) {
	db := openTestDB(t)
	goalRepo := NewSavingsGoalRepository(db)
	balanceRepo := NewDailyBalanceRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	goal := entity.NewSavingsGoal(userID, "Vacation", decimal.NewFromInt(300000), 2026, 12, false)
	goal.CurrentAmount = decimal.NewFromInt(100000)
	if err := goalRepo.Create(ctx, goal); err != nil {
		t.Fatalf("failed to create goal: %v", err)
	}
	if err := goalRepo.Update(ctx, goal); err != nil {
		t.Fatalf("failed to store starting amount: %v", err)
	}

	now := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)
	updated, txn, err := goalRepo.Deposit(ctx, goal.ID, userID, decimal.NewFromInt(50000), "Vacation savings", now)
	if err != nil {
		t.Fatalf("deposit failed: %v", err)
	}

	if !updated.CurrentAmount.Equal(decimal.NewFromInt(150000)) {
		t.Errorf("expected current amount 150000, got %s", updated.CurrentAmount)
	}
	if updated.ProgressPercent() != 50 {
		t.Errorf("expected 50%% progress, got %d", updated.ProgressPercent())
	}

	if txn.Type != entity.TransactionTypeExpense {
		t.Errorf("expected expense transaction, got %s", txn.Type)
	}
	if txn.SavingsGoalID == nil || *txn.SavingsGoalID != goal.ID {
		t.Error("expected transaction linked to the goal")
	}
	if !txn.Amount.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("expected transaction amount 50000, got %s", txn.Amount)
	}

	var count int64
	db.Model(&model.TransactionModel{}).Where("savings_goal_id = ?", goal.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one linked transaction, got %d", count)
	}

	day := entity.TruncateToDay(now)
	snapshots, err := balanceRepo.FindRange(ctx, userID, day, day)
	if err != nil {
		t.Fatalf("failed to read snapshot: %v", err)
	}
	if len(snapshots) != 1 {
		t.Fatalf("expected the day's snapshot to exist, got %d rows", len(snapshots))
	}
	if !snapshots[0].Expense.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("expected day expense 50000, got %s", snapshots[0].Expense)
	}
	if !snapshots[0].Balance.Equal(decimal.NewFromInt(-50000)) {
		t.Errorf("expected balance -50000, got %s", snapshots[0].Balance)
	}
}

func TestSavingsGoalRepository_Deposit_UnknownGoalLeavesNoTrace(t *testing.T) {
	db := openTestDB(t)
	goalRepo := NewSavingsGoalRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	_, _, err := goalRepo.Deposit(ctx, uuid.New(), userID, decimal.NewFromInt(50000), "savings", time.Now().UTC())
	if !errors.Is(err, domainerror.ErrSavingsGoalNotFound) {
		t.Fatalf("expected ErrSavingsGoalNotFound, got %v", err)
	}

	var transactions int64
	db.Model(&model.TransactionModel{}).Count(&transactions)
	if transactions != 0 {
		t.Errorf("expected no transaction rows after failed deposit, got %d", transactions)
	}
	var balances int64
	db.Model(&model.DailyBalanceModel{}).Count(&balances)
	if balances != 0 {
		t.Errorf("expected no snapshot rows after failed deposit, got %d", balances)
	}
}

func TestSavingsGoalRepository_Deposit_ForeignGoalRollsBack(t *testing.T) {
	db := openTestDB(t)
	goalRepo := NewSavingsGoalRepository(db)
	ctx := context.Background()
	owner := uuid.New()

	goal := entity.NewSavingsGoal(owner, "Vacation", decimal.NewFromInt(300000), 2026, 12, false)
	if err := goalRepo.Create(ctx, goal); err != nil {
		t.Fatalf("failed to create goal: %v", err)
	}

	_, _, err := goalRepo.Deposit(ctx, goal.ID, uuid.New(), decimal.NewFromInt(50000), "savings", time.Now().UTC())
	if !errors.Is(err, domainerror.ErrSavingsGoalNotFound) {
		t.Fatalf("expected ErrSavingsGoalNotFound, got %v", err)
	}

	stored, err := goalRepo.FindByID(ctx, goal.ID)
	if err != nil {
		t.Fatalf("failed to reload goal: %v", err)
	}
	if !stored.CurrentAmount.Equal(decimal.Zero) {
		t.Errorf("expected current amount unchanged, got %s", stored.CurrentAmount)
	}
}

func TestSavingsGoalRepository_SetPrimary(t *testing.T) {
	db := openTestDB(t)
	goalRepo := NewSavingsGoalRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	goalA := entity.NewSavingsGoal(userID, "A", decimal.NewFromInt(100000), 2026, 12, true)
	if err := goalRepo.Create(ctx, goalA); err != nil {
		t.Fatalf("failed to create goal A: %v", err)
	}
	goalB := entity.NewSavingsGoal(userID, "B", decimal.NewFromInt(200000), 2027, 6, false)
	if err := goalRepo.Create(ctx, goalB); err != nil {
		t.Fatalf("failed to create goal B: %v", err)
	}

	promoted, err := goalRepo.SetPrimary(ctx, goalB.ID, userID, true)
	if err != nil {
		t.Fatalf("promotion failed: %v", err)
	}
	if !promoted.IsPrimary {
		t.Error("expected goal B to be primary")
	}

	demoted, err := goalRepo.FindByID(ctx, goalA.ID)
	if err != nil {
		t.Fatalf("failed to reload goal A: %v", err)
	}
	if demoted.IsPrimary {
		t.Error("expected goal A to be demoted")
	}

	var primaries int64
	db.Model(&model.SavingsGoalModel{}).Where("user_id = ? AND is_primary = ?", userID, true).Count(&primaries)
	if primaries != 1 {
		t.Errorf("expected exactly one primary goal, got %d", primaries)
	}
}

func TestSavingsGoalRepository_Create_PrimaryDemotesExisting(t *testing.T) {
	db := openTestDB(t)
	goalRepo := NewSavingsGoalRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	first := entity.NewSavingsGoal(userID, "First", decimal.NewFromInt(100000), 2026, 12, true)
	if err := goalRepo.Create(ctx, first); err != nil {
		t.Fatalf("failed to create first goal: %v", err)
	}
	second := entity.NewSavingsGoal(userID, "Second", decimal.NewFromInt(200000), 2027, 1, true)
	if err := goalRepo.Create(ctx, second); err != nil {
		t.Fatalf("failed to create second goal: %v", err)
	}

	var primaries int64
	db.Model(&model.SavingsGoalModel{}).Where("user_id = ? AND is_primary = ?", userID, true).Count(&primaries)
	if primaries != 1 {
		t.Errorf("expected exactly one primary goal after creation, got %d", primaries)
	}
}

func TestSavingsGoalRepository_FindActiveByUser(t *testing.T) {
	db := openTestDB(t)
	goalRepo := NewSavingsGoalRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	past := entity.NewSavingsGoal(userID, "Past", decimal.NewFromInt(100000), 2023, 6, false)
	sameMonth := entity.NewSavingsGoal(userID, "Same month", decimal.NewFromInt(100000), 2024, 3, false)
	future := entity.NewSavingsGoal(userID, "Future", decimal.NewFromInt(100000), 2025, 1, false)
	for _, g := range []*entity.SavingsGoal{past, sameMonth, future} {
		if err := goalRepo.Create(ctx, g); err != nil {
			t.Fatalf("failed to create goal: %v", err)
		}
	}

	active, err := goalRepo.FindActiveByUser(ctx, userID, 2024, 3)
	if err != nil {
		t.Fatalf("failed to list active goals: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active goals, got %d", len(active))
	}
	for _, g := range active {
		if g.Name == "Past" {
			t.Error("expected past goal to be excluded")
		}
	}
}
