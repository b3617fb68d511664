// Package adapter defines the interfaces consumed by the application layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/domain/entity"
)

// CategoryRepository provides access to category definitions.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// FindByNameTypeAndUser returns nil, nil when no live category matches.
	FindByNameTypeAndUser(ctx context.Context, userID uuid.UUID, name string, categoryType entity.CategoryType) (*entity.Category, error)

	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}
