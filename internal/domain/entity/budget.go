// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget represents a per-month spending cap. A nil CategoryID denotes the
// overall monthly budget rather than a per-category one. Month is always the
// first instant of the month in UTC, which backs the (user, category, month)
// uniqueness invariant.
type Budget struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID *uuid.UUID
	Month      time.Time
	Amount     decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time // Soft-delete support
}

// NewBudget creates a new Budget entity. The month is normalized to its
// first instant in UTC.
func NewBudget(userID uuid.UUID, categoryID *uuid.UUID, month time.Time, amount decimal.Decimal) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: categoryID,
		Month:      NormalizeMonth(month),
		Amount:     amount,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// NormalizeMonth truncates a timestamp to the first instant of its month in UTC.
func NormalizeMonth(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}
