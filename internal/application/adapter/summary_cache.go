// Package adapter defines the interfaces consumed by the application layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// SummaryCache caches assembled monthly summaries per (user, year, month).
// Payloads are opaque to the cache; the summary use case owns the encoding.
// A cache failure must never fail the read path, so implementations log and
// degrade instead of returning errors for Get/Set.
type SummaryCache interface {
	// Get returns the cached payload and true, or nil and false on a miss.
	Get(ctx context.Context, userID uuid.UUID, year, month int) ([]byte, bool)

	Set(ctx context.Context, userID uuid.UUID, year, month int, payload []byte)

	// InvalidateUser drops every cached month for the user. Called after
	// any ledger mutation.
	InvalidateUser(ctx context.Context, userID uuid.UUID)
}
