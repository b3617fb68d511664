// Package adapter defines the interfaces consumed by the application layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
)

// SavingsGoalRepository provides access to savings goals.
//
// Create and Update clear the primary flag on the user's other live goals in
// the same store transaction whenever the written goal is primary, keeping
// the at-most-one-primary invariant without a partial unique index.
type SavingsGoalRepository interface {
	Create(ctx context.Context, goal *entity.SavingsGoal) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SavingsGoal, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SavingsGoal, error)

	// FindActiveByUser returns live goals whose target month is the given
	// month or later.
	FindActiveByUser(ctx context.Context, userID uuid.UUID, year, month int) ([]*entity.SavingsGoal, error)

	Update(ctx context.Context, goal *entity.SavingsGoal) error
	Delete(ctx context.Context, id uuid.UUID) error

	// SetPrimary toggles the primary flag. Setting it true bulk-clears the
	// flag on the user's other live goals first, inside one transaction.
	SetPrimary(ctx context.Context, goalID, userID uuid.UUID, isPrimary bool) (*entity.SavingsGoal, error)

	// Deposit atomically increments the goal's current amount, creates the
	// linked expense transaction, and recomputes the daily balance snapshot
	// for the transaction's date. All three persist or none do.
	Deposit(ctx context.Context, goalID, userID uuid.UUID, amount decimal.Decimal, description string, at time.Time) (*entity.SavingsGoal, *entity.Transaction, error)
}
