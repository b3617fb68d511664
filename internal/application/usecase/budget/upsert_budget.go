// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/application/usecase/period"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

// UpsertBudgetInput represents the input for setting a monthly budget.
// A nil CategoryID targets the overall monthly budget.
type UpsertBudgetInput struct {
	UserID     uuid.UUID
	CategoryID *uuid.UUID
	Year       int
	Month      int
	Amount     decimal.Decimal
}

// UpsertBudgetOutput represents the output of setting a monthly budget.
type UpsertBudgetOutput struct {
	Budget *entity.Budget
}

// UpsertBudgetUseCase creates or updates the explicit budget row for a
// (user, category, month). The write is unique-constraint-backed, so two
// concurrent calls converge on one row.
type UpsertBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpsertBudgetUseCase creates a new UpsertBudgetUseCase instance.
func NewUpsertBudgetUseCase(budgetRepo adapter.BudgetRepository, categoryRepo adapter.CategoryRepository) *UpsertBudgetUseCase {
	return &UpsertBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the budget upsert.
func (uc *UpsertBudgetUseCase) Execute(ctx context.Context, input UpsertBudgetInput) (*UpsertBudgetOutput, error) {
	if !period.ValidYearMonth(input.Year, input.Month) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"year and month must denote a valid calendar month",
			domainerror.ErrInvalidBudgetMonth,
		)
	}

	if input.Amount.IsNegative() || !input.Amount.IsInteger() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"amount must be a non-negative integral value",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	if input.CategoryID != nil {
		category, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil {
			if errors.Is(err, domainerror.ErrCategoryNotFound) {
				return nil, domainerror.NewBudgetError(
					domainerror.ErrCodeBudgetCategoryNotFound,
					"category not found",
					domainerror.ErrCategoryNotFound,
				)
			}
			return nil, fmt.Errorf("failed to find category: %w", err)
		}
		if category.UserID != input.UserID {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		if category.Type != entity.CategoryTypeExpense {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetCategoryNotExpense,
				"budgets apply to expense categories only",
				domainerror.ErrBudgetCategoryNotExpense,
			)
		}
	}

	month := time.Date(input.Year, time.Month(input.Month), 1, 0, 0, 0, 0, time.UTC)
	budget := entity.NewBudget(input.UserID, input.CategoryID, month, input.Amount)

	if err := uc.budgetRepo.Upsert(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to upsert budget: %w", err)
	}

	return &UpsertBudgetOutput{Budget: budget}, nil
}
