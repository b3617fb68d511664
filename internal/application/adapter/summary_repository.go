package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthTotals holds a month's ledger sums. Expense figures exclude savings
// contributions, which are reported separately via SavingsContributions.
type MonthTotals struct {
	Income       decimal.Decimal
	IncomeCount  int
	Expense      decimal.Decimal
	ExpenseCount int
}

// CategorySpend is a per-category expense aggregate joined with the category's
// display fields and default budget. Rows whose category no longer exists are
// never produced.
type CategorySpend struct {
	CategoryID    uuid.UUID
	Name          string
	Color         string
	Icon          string
	DefaultBudget *decimal.Decimal
	Total         decimal.Decimal
	Count         int
}

// SavingsContributions holds the month's goal-linked transaction aggregate.
type SavingsContributions struct {
	Total decimal.Decimal
	Count int
}

// SummaryRepository provides the read-side aggregates behind the monthly
// summary. All queries cover live transactions within [start, end].
type SummaryRepository interface {
	MonthTotals(ctx context.Context, userID uuid.UUID, start, end time.Time) (*MonthTotals, error)
	CategorySpend(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]CategorySpend, error)
	SavingsContributions(ctx context.Context, userID uuid.UUID, start, end time.Time) (*SavingsContributions, error)
}
