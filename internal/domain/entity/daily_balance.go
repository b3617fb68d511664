// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailyBalance is the materialized per-day snapshot of a user's ledger:
// that day's income and expense sums plus the cumulative balance of all
// transactions up to and including the day. It is derived data and can
// always be rebuilt from the ledger; the snapshot maintainer owns its
// consistency.
type DailyBalance struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Date      time.Time // Truncated to midnight UTC
	Income    decimal.Decimal
	Expense   decimal.Decimal
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TruncateToDay drops the time-of-day component, keeping midnight UTC.
func TruncateToDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
