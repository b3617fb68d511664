package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

func TestCreateTransaction_Validation(t *testing.T) {
	userID := uuid.New()
	otherUserID := uuid.New()

	catRepo := newFakeCategoryRepo()
	expenseCat := entity.NewCategory(userID, "Food", entity.CategoryTypeExpense, "", "", nil)
	incomeCat := entity.NewCategory(userID, "Salary", entity.CategoryTypeIncome, "", "", nil)
	foreignCat := entity.NewCategory(otherUserID, "Rent", entity.CategoryTypeExpense, "", "", nil)
	_ = catRepo.Create(context.Background(), expenseCat)
	_ = catRepo.Create(context.Background(), incomeCat)
	_ = catRepo.Create(context.Background(), foreignCat)

	date := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    CreateTransactionInput
		wantCode domainerror.TransactionErrorCode
	}{
		{
			name: "invalid type",
			input: CreateTransactionInput{
				UserID: userID, Type: "transfer", Amount: decimal.NewFromInt(1000), Date: date,
			},
			wantCode: domainerror.ErrCodeInvalidTransactionType,
		},
		{
			name: "zero amount",
			input: CreateTransactionInput{
				UserID: userID, Type: entity.TransactionTypeExpense, Amount: decimal.Zero, Date: date,
			},
			wantCode: domainerror.ErrCodeInvalidTransactionAmount,
		},
		{
			name: "negative amount",
			input: CreateTransactionInput{
				UserID: userID, Type: entity.TransactionTypeExpense, Amount: decimal.NewFromInt(-500), Date: date,
			},
			wantCode: domainerror.ErrCodeInvalidTransactionAmount,
		},
		{
			name: "fractional amount",
			input: CreateTransactionInput{
				UserID: userID, Type: entity.TransactionTypeExpense, Amount: decimal.NewFromFloat(10.5), Date: date,
			},
			wantCode: domainerror.ErrCodeInvalidTransactionAmount,
		},
		{
			name: "zero date",
			input: CreateTransactionInput{
				UserID: userID, Type: entity.TransactionTypeExpense, Amount: decimal.NewFromInt(1000),
			},
			wantCode: domainerror.ErrCodeInvalidTransactionDate,
		},
		{
			name: "unknown category",
			input: CreateTransactionInput{
				UserID: userID, Type: entity.TransactionTypeExpense, Amount: decimal.NewFromInt(1000),
				CategoryID: ptr(uuid.New()), Date: date,
			},
			wantCode: domainerror.ErrCodeTxnCategoryNotFound,
		},
		{
			name: "foreign category",
			input: CreateTransactionInput{
				UserID: userID, Type: entity.TransactionTypeExpense, Amount: decimal.NewFromInt(1000),
				CategoryID: ptr(foreignCat.ID), Date: date,
			},
			wantCode: domainerror.ErrCodeTxnCategoryNotOwned,
		},
		{
			name: "income category on expense transaction",
			input: CreateTransactionInput{
				UserID: userID, Type: entity.TransactionTypeExpense, Amount: decimal.NewFromInt(1000),
				CategoryID: ptr(incomeCat.ID), Date: date,
			},
			wantCode: domainerror.ErrCodeTxnCategoryTypeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txnRepo := newFakeTransactionRepo()
			cache := &fakeSummaryCache{}
			uc := NewCreateTransactionUseCase(txnRepo, catRepo, cache)

			_, err := uc.Execute(context.Background(), tt.input)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var txnErr *domainerror.TransactionError
			if !errors.As(err, &txnErr) {
				t.Fatalf("expected TransactionError, got %T", err)
			}
			if txnErr.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", txnErr.Code, tt.wantCode)
			}

			// Validation must reject before any write or invalidation.
			if len(txnRepo.transactions) != 0 {
				t.Error("transaction was persisted despite validation failure")
			}
			if len(cache.invalidated) != 0 {
				t.Error("cache was invalidated despite validation failure")
			}
		})
	}
}

func TestCreateTransaction_Success(t *testing.T) {
	userID := uuid.New()
	catRepo := newFakeCategoryRepo()
	cat := entity.NewCategory(userID, "Food", entity.CategoryTypeExpense, "", "", nil)
	_ = catRepo.Create(context.Background(), cat)

	txnRepo := newFakeTransactionRepo()
	cache := &fakeSummaryCache{}
	uc := NewCreateTransactionUseCase(txnRepo, catRepo, cache)

	out, err := uc.Execute(context.Background(), CreateTransactionInput{
		UserID:      userID,
		Type:        entity.TransactionTypeExpense,
		Amount:      decimal.NewFromInt(30000),
		Description: "groceries",
		CategoryID:  ptr(cat.ID),
		Date:        time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Transaction.Amount.Cmp(decimal.NewFromInt(30000)) != 0 {
		t.Errorf("amount = %s", out.Transaction.Amount)
	}
	if out.Transaction.SavingsGoalID != nil {
		t.Error("plain transaction must not reference a savings goal")
	}
	if out.Category == nil || out.Category.ID != cat.ID {
		t.Error("expected category in output")
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != userID {
		t.Error("expected one cache invalidation for the user")
	}
}

func TestDeleteTransaction(t *testing.T) {
	userID := uuid.New()
	txnRepo := newFakeTransactionRepo()
	cache := &fakeSummaryCache{}

	txn := entity.NewTransaction(userID, entity.TransactionTypeExpense, decimal.NewFromInt(5000), "coffee", nil, nil, time.Now().UTC())
	_ = txnRepo.CreateWithBalance(context.Background(), txn)

	uc := NewDeleteTransactionUseCase(txnRepo, cache)

	t.Run("not found", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), DeleteTransactionInput{TransactionID: uuid.New(), UserID: userID})
		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeTransactionNotFound {
			t.Errorf("expected not-found error, got %v", err)
		}
	})

	t.Run("foreign user", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), DeleteTransactionInput{TransactionID: txn.ID, UserID: uuid.New()})
		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeNotAuthorizedTransaction {
			t.Errorf("expected authorization error, got %v", err)
		}
	})

	t.Run("soft delete", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), DeleteTransactionInput{TransactionID: txn.ID, UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Success {
			t.Error("expected success")
		}
		if txnRepo.transactions[txn.ID].DeletedAt == nil {
			t.Error("expected soft-delete marker")
		}
		if len(cache.invalidated) != 1 {
			t.Error("expected cache invalidation")
		}
	})
}

func ptr[T any](v T) *T {
	return &v
}
