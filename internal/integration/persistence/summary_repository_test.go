package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/application/usecase/period"
	"github.com/household-ledger/backend/internal/domain/entity"
)

func TestSummaryRepository_Aggregates(t *testing.T) {
	db := openTestDB(t)
	transactionRepo := NewTransactionRepository(db)
	categoryRepo := NewCategoryRepository(db)
	goalRepo := NewSavingsGoalRepository(db)
	summaryRepo := NewSummaryRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	food := entity.NewCategory(userID, "Food", entity.CategoryTypeExpense, "#FF0000", "utensils", nil)
	if err := categoryRepo.Create(ctx, food); err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	goal := entity.NewSavingsGoal(userID, "Vacation", decimal.NewFromInt(300000), 2026, 12, false)
	if err := goalRepo.Create(ctx, goal); err != nil {
		t.Fatalf("failed to create goal: %v", err)
	}

	mid := time.Date(2024, 4, 15, 12, 0, 0, 0, time.UTC)
	_ = transactionRepo.CreateWithBalance(ctx, entity.NewTransaction(userID, entity.TransactionTypeIncome, decimal.NewFromInt(1000000), "salary", nil, nil, mid))
	_ = transactionRepo.CreateWithBalance(ctx, entity.NewTransaction(userID, entity.TransactionTypeExpense, decimal.NewFromInt(200000), "groceries", &food.ID, nil, mid))
	_ = transactionRepo.CreateWithBalance(ctx, entity.NewTransaction(userID, entity.TransactionTypeExpense, decimal.NewFromInt(100000), "more groceries", &food.ID, nil, mid.AddDate(0, 0, 1)))
	// A savings contribution must not count as a plain expense.
	_ = transactionRepo.CreateWithBalance(ctx, entity.NewTransaction(userID, entity.TransactionTypeExpense, decimal.NewFromInt(50000), "Vacation savings", nil, &goal.ID, mid))
	// Outside the queried month.
	_ = transactionRepo.CreateWithBalance(ctx, entity.NewTransaction(userID, entity.TransactionTypeExpense, decimal.NewFromInt(999999), "rent", &food.ID, nil, mid.AddDate(0, 1, 0)))

	start, end := period.MonthRange(2024, time.April)

	totals, err := summaryRepo.MonthTotals(ctx, userID, start, end)
	if err != nil {
		t.Fatalf("month totals failed: %v", err)
	}
	if !totals.Income.Equal(decimal.NewFromInt(1000000)) || totals.IncomeCount != 1 {
		t.Errorf("expected income 1000000/1, got %s/%d", totals.Income, totals.IncomeCount)
	}
	if !totals.Expense.Equal(decimal.NewFromInt(300000)) || totals.ExpenseCount != 2 {
		t.Errorf("expected expense 300000/2 excluding savings, got %s/%d", totals.Expense, totals.ExpenseCount)
	}

	spend, err := summaryRepo.CategorySpend(ctx, userID, start, end)
	if err != nil {
		t.Fatalf("category spend failed: %v", err)
	}
	if len(spend) != 1 {
		t.Fatalf("expected 1 category row, got %d", len(spend))
	}
	if spend[0].CategoryID != food.ID || !spend[0].Total.Equal(decimal.NewFromInt(300000)) || spend[0].Count != 2 {
		t.Errorf("unexpected category aggregate: %+v", spend[0])
	}

	contributions, err := summaryRepo.SavingsContributions(ctx, userID, start, end)
	if err != nil {
		t.Fatalf("savings contributions failed: %v", err)
	}
	if !contributions.Total.Equal(decimal.NewFromInt(50000)) || contributions.Count != 1 {
		t.Errorf("expected contributions 50000/1, got %s/%d", contributions.Total, contributions.Count)
	}
}
