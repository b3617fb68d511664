package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
)

func TestDailyBalanceRepository_Recompute_Idempotent(t *testing.T) {
	db := openTestDB(t)
	transactionRepo := NewTransactionRepository(db)
	balanceRepo := NewDailyBalanceRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	income := entity.NewTransaction(userID, entity.TransactionTypeIncome, decimal.NewFromInt(100000), "salary", nil, nil, day)
	expense := entity.NewTransaction(userID, entity.TransactionTypeExpense, decimal.NewFromInt(30000), "groceries", nil, nil, day)
	if err := transactionRepo.CreateWithBalance(ctx, income); err != nil {
		t.Fatalf("failed to create income: %v", err)
	}
	if err := transactionRepo.CreateWithBalance(ctx, expense); err != nil {
		t.Fatalf("failed to create expense: %v", err)
	}

	first, err := balanceRepo.Recompute(ctx, userID, day)
	if err != nil {
		t.Fatalf("first recompute failed: %v", err)
	}
	second, err := balanceRepo.Recompute(ctx, userID, day)
	if err != nil {
		t.Fatalf("second recompute failed: %v", err)
	}

	if !first.Income.Equal(second.Income) || !first.Expense.Equal(second.Expense) || !first.Balance.Equal(second.Balance) {
		t.Error("expected identical snapshots from repeated recomputes")
	}
	if first.ID != second.ID {
		t.Error("expected the same snapshot row, not a duplicate")
	}

	rows, err := balanceRepo.FindRange(ctx, userID, day, day)
	if err != nil {
		t.Fatalf("failed to read snapshots: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected exactly one snapshot row, got %d", len(rows))
	}
	if !rows[0].Income.Equal(decimal.NewFromInt(100000)) {
		t.Errorf("expected income 100000, got %s", rows[0].Income)
	}
	if !rows[0].Expense.Equal(decimal.NewFromInt(30000)) {
		t.Errorf("expected expense 30000, got %s", rows[0].Expense)
	}
	if !rows[0].Balance.Equal(decimal.NewFromInt(70000)) {
		t.Errorf("expected balance 70000, got %s", rows[0].Balance)
	}
}

func TestDailyBalanceRepository_Recompute_CumulativeAcrossDays(t *testing.T) {
	db := openTestDB(t)
	transactionRepo := NewTransactionRepository(db)
	balanceRepo := NewDailyBalanceRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	dayOne := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	dayTwo := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	_ = transactionRepo.CreateWithBalance(ctx, entity.NewTransaction(userID, entity.TransactionTypeIncome, decimal.NewFromInt(500000), "salary", nil, nil, dayOne))
	_ = transactionRepo.CreateWithBalance(ctx, entity.NewTransaction(userID, entity.TransactionTypeExpense, decimal.NewFromInt(120000), "rent", nil, nil, dayTwo))

	snapshot, err := balanceRepo.Recompute(ctx, userID, dayTwo)
	if err != nil {
		t.Fatalf("recompute failed: %v", err)
	}

	if !snapshot.Income.Equal(decimal.Zero) {
		t.Errorf("expected no income on day two, got %s", snapshot.Income)
	}
	if !snapshot.Balance.Equal(decimal.NewFromInt(380000)) {
		t.Errorf("expected cumulative balance 380000, got %s", snapshot.Balance)
	}
}

func TestTransactionRepository_DeleteWithBalance_RefreshesOwnDateOnly(t *testing.T) {
	db := openTestDB(t)
	transactionRepo := NewTransactionRepository(db)
	balanceRepo := NewDailyBalanceRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	dayOne := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	dayTwo := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	victim := entity.NewTransaction(userID, entity.TransactionTypeExpense, decimal.NewFromInt(40000), "dining", nil, nil, dayOne)
	_ = transactionRepo.CreateWithBalance(ctx, entity.NewTransaction(userID, entity.TransactionTypeIncome, decimal.NewFromInt(100000), "salary", nil, nil, dayOne))
	_ = transactionRepo.CreateWithBalance(ctx, victim)
	_ = transactionRepo.CreateWithBalance(ctx, entity.NewTransaction(userID, entity.TransactionTypeIncome, decimal.NewFromInt(10000), "refund", nil, nil, dayTwo))

	if err := transactionRepo.DeleteWithBalance(ctx, victim.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	rows, err := balanceRepo.FindRange(ctx, userID, dayOne, dayTwo)
	if err != nil {
		t.Fatalf("failed to read snapshots: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 snapshot rows, got %d", len(rows))
	}

	// The deleted transaction's own date is refreshed.
	if !rows[0].Expense.Equal(decimal.Zero) {
		t.Errorf("expected day-one expense 0 after delete, got %s", rows[0].Expense)
	}
	if !rows[0].Balance.Equal(decimal.NewFromInt(100000)) {
		t.Errorf("expected day-one balance 100000 after delete, got %s", rows[0].Balance)
	}

	// Later snapshots stay stale until an explicit re-sync.
	if !rows[1].Balance.Equal(decimal.NewFromInt(70000)) {
		t.Errorf("expected day-two balance still 70000, got %s", rows[1].Balance)
	}

	if _, err := balanceRepo.Recompute(ctx, userID, dayTwo); err != nil {
		t.Fatalf("re-sync recompute failed: %v", err)
	}
	rows, _ = balanceRepo.FindRange(ctx, userID, dayTwo, dayTwo)
	if !rows[0].Balance.Equal(decimal.NewFromInt(110000)) {
		t.Errorf("expected day-two balance 110000 after re-sync, got %s", rows[0].Balance)
	}
}

func TestDailyBalanceRepository_FindRecent(t *testing.T) {
	db := openTestDB(t)
	transactionRepo := NewTransactionRepository(db)
	balanceRepo := NewDailyBalanceRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	for d := 1; d <= 5; d++ {
		day := time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
		_ = transactionRepo.CreateWithBalance(ctx, entity.NewTransaction(userID, entity.TransactionTypeIncome, decimal.NewFromInt(1000), "daily", nil, nil, day))
	}

	rows, err := balanceRepo.FindRecent(ctx, userID, 3)
	if err != nil {
		t.Fatalf("failed to read recent snapshots: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if !rows[0].Date.After(rows[1].Date) || !rows[1].Date.After(rows[2].Date) {
		t.Error("expected rows ordered by date descending")
	}
	if !rows[0].Balance.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("expected newest balance 5000, got %s", rows[0].Balance)
	}
}
