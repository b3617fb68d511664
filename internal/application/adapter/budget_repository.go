// Package adapter defines the interfaces consumed by the application layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/domain/entity"
)

// BudgetRepository provides access to per-month budget rows.
//
// Upsert and InstantiateDefaults are unique-constraint-backed so that two
// concurrent calls with the same logical inputs never produce duplicate rows.
type BudgetRepository interface {
	// Upsert creates the (user, category, month) row or updates its amount.
	Upsert(ctx context.Context, budget *entity.Budget) error

	FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month time.Time) ([]*entity.Budget, error)

	// InstantiateDefaults creates a budget row for every live expense
	// category that has a default budget and no explicit row for the
	// month yet. Returns the number of rows created.
	InstantiateDefaults(ctx context.Context, userID uuid.UUID, month time.Time) (int, error)
}
