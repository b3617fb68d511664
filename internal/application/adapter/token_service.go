// Package adapter defines the interfaces consumed by the application layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the validated claims of an access token.
type TokenClaims struct {
	UserID    uuid.UUID
	ExpiresAt time.Time
}

// TokenService validates the bearer tokens issued by the external auth
// system. Signing is exposed for the middleware's own tests and tooling.
type TokenService interface {
	GenerateAccessToken(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
