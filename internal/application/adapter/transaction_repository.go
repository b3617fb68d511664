// Package adapter defines the interfaces consumed by the application layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
)

// DayTotals holds one calendar day's income and expense sums from the ledger.
type DayTotals struct {
	Date    time.Time
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// TransactionRepository provides access to the transaction ledger.
//
// CreateWithBalance and DeleteWithBalance pair the ledger mutation with the
// daily balance snapshot recompute for the affected date inside a single
// store transaction, so a failed recompute rolls the mutation back.
type TransactionRepository interface {
	CreateWithBalance(ctx context.Context, transaction *entity.Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	FindByUserAndRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error)
	DeleteWithBalance(ctx context.Context, id uuid.UUID) error

	// SumByDay returns per-day income/expense totals over [start, end],
	// days without transactions omitted. Used by the snapshot-free
	// monthly balance fallback.
	SumByDay(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]DayTotals, error)

	// CumulativeBalanceBefore returns income minus expense over all live
	// transactions dated strictly before the given instant.
	CumulativeBalanceBefore(ctx context.Context, userID uuid.UUID, before time.Time) (decimal.Decimal, error)
}
