// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryType represents the type of category (income or expense).
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#6366F1"

// DefaultCategoryIcon is the default icon for categories.
const DefaultCategoryIcon = "tag"

// Category represents a named transaction bucket owned by one user.
// DefaultBudget is the monthly cap applied when no explicit Budget row
// exists for a month; it is only meaningful for expense categories and
// is forced nil for income categories.
type Category struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Type          CategoryType
	Color         string
	Icon          string
	DefaultBudget *decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewCategory creates a new Category entity. DefaultBudget is dropped for
// income categories regardless of the input.
func NewCategory(userID uuid.UUID, name string, categoryType CategoryType, color, icon string, defaultBudget *decimal.Decimal) *Category {
	now := time.Now().UTC()

	if categoryType == CategoryTypeIncome {
		defaultBudget = nil
	}

	return &Category{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		Type:          categoryType,
		Color:         color,
		Icon:          icon,
		DefaultBudget: defaultBudget,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
