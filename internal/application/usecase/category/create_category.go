// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID        uuid.UUID
	Name          string
	Type          entity.CategoryType
	Color         string
	Icon          string
	DefaultBudget *decimal.Decimal
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryFields,
			"name is required",
			nil,
		)
	}

	if !isValidCategoryType(input.Type) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be 'income' or 'expense'",
			domainerror.ErrInvalidCategoryType,
		)
	}

	if err := validateDefaultBudget(input.Type, input.DefaultBudget); err != nil {
		return nil, err
	}

	// Uniqueness among live categories: (user, name, type).
	existing, err := uc.categoryRepo.FindByNameTypeAndUser(ctx, input.UserID, input.Name, input.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to check category uniqueness: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameExists,
			"a category with this name and type already exists",
			domainerror.ErrCategoryNameExists,
		)
	}

	color := input.Color
	if color == "" {
		color = entity.DefaultCategoryColor
	}
	icon := input.Icon
	if icon == "" {
		icon = entity.DefaultCategoryIcon
	}

	category := entity.NewCategory(input.UserID, input.Name, input.Type, color, icon, input.DefaultBudget)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{Category: category}, nil
}

// isValidCategoryType validates the category type.
func isValidCategoryType(categoryType entity.CategoryType) bool {
	return categoryType == entity.CategoryTypeIncome || categoryType == entity.CategoryTypeExpense
}

// validateDefaultBudget rejects negative or fractional default budgets.
// Income categories never carry one; the entity constructor drops it.
func validateDefaultBudget(categoryType entity.CategoryType, defaultBudget *decimal.Decimal) error {
	if defaultBudget == nil || categoryType == entity.CategoryTypeIncome {
		return nil
	}
	if defaultBudget.IsNegative() || !defaultBudget.IsInteger() {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidDefaultBudget,
			"default budget must be a non-negative integral value",
			domainerror.ErrInvalidDefaultBudget,
		)
	}
	return nil
}
