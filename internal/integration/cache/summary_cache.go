// Package cache implements the redis-backed summary cache.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/household-ledger/backend/internal/application/adapter"
)

// summaryCache stores one hash per user keyed "summary:<user-id>", with one
// field per month ("2006-01"). Invalidation drops the whole hash, so any
// ledger mutation clears every cached month at once. Cache failures are
// logged and degrade to a recompute, never an error.
type summaryCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewSummaryCache creates a new redis-backed summary cache.
func NewSummaryCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) adapter.SummaryCache {
	return &summaryCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the cached summary payload for the month, if present.
func (c *summaryCache) Get(ctx context.Context, userID uuid.UUID, year, month int) ([]byte, bool) {
	payload, err := c.client.HGet(ctx, userKey(userID), monthField(year, month)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("summary cache read failed", "user_id", userID, "error", err)
		}
		return nil, false
	}
	return payload, true
}

// Set stores the summary payload for the month and refreshes the key's TTL.
func (c *summaryCache) Set(ctx context.Context, userID uuid.UUID, year, month int, payload []byte) {
	key := userKey(userID)
	if err := c.client.HSet(ctx, key, monthField(year, month), payload).Err(); err != nil {
		c.logger.Warn("summary cache write failed", "user_id", userID, "error", err)
		return
	}
	if err := c.client.Expire(ctx, key, c.ttl).Err(); err != nil {
		c.logger.Warn("summary cache expire failed", "user_id", userID, "error", err)
	}
}

// InvalidateUser drops every cached month for the user.
func (c *summaryCache) InvalidateUser(ctx context.Context, userID uuid.UUID) {
	if err := c.client.Del(ctx, userKey(userID)).Err(); err != nil {
		c.logger.Warn("summary cache invalidation failed", "user_id", userID, "error", err)
	}
}

func userKey(userID uuid.UUID) string {
	return "summary:" + userID.String()
}

func monthField(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
