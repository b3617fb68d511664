// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsGoal represents a named savings target. CurrentAmount only advances
// through the deposit coordinator (or an explicit full-field correction) and
// is reversed when a linked transaction is deleted. At most one live goal per
// user carries IsPrimary, enforced by the write path rather than the store.
type SavingsGoal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetYear    int
	TargetMonth   int
	IsPrimary     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewSavingsGoal creates a new SavingsGoal entity with a zero current amount.
func NewSavingsGoal(userID uuid.UUID, name string, targetAmount decimal.Decimal, targetYear, targetMonth int, isPrimary bool) *SavingsGoal {
	now := time.Now().UTC()

	return &SavingsGoal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		TargetYear:    targetYear,
		TargetMonth:   targetMonth,
		IsPrimary:     isPrimary,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsActive reports whether the goal's target month is the given month or later.
func (g *SavingsGoal) IsActive(year, month int) bool {
	if g.TargetYear != year {
		return g.TargetYear > year
	}
	return g.TargetMonth >= month
}

// ProgressPercent returns the rounded percentage of the target reached,
// or 0 when the target amount is zero.
func (g *SavingsGoal) ProgressPercent() int {
	if g.TargetAmount.IsZero() {
		return 0
	}
	return int(g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}
