// Package adapter defines the interfaces consumed by the application layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/domain/entity"
)

// DailyBalanceRepository maintains and reads the per-day snapshot table.
type DailyBalanceRepository interface {
	// Recompute rebuilds the (user, date) snapshot from the ledger and
	// upserts it. Safe to call repeatedly with the same inputs.
	Recompute(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DailyBalance, error)

	// FindRecent returns the newest snapshot rows, at most one per day,
	// ordered by date descending.
	FindRecent(ctx context.Context, userID uuid.UUID, days int) ([]*entity.DailyBalance, error)

	// FindRange returns snapshot rows with start <= date <= end, ordered
	// by date ascending.
	FindRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.DailyBalance, error)
}
