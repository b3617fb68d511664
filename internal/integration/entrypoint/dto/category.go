package dto

import (
	"time"

	"github.com/household-ledger/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name          string `json:"name" binding:"required,max=100"`
	Type          string `json:"type" binding:"required,oneof=income expense"`
	Color         string `json:"color" binding:"omitempty,hexcolor"`
	Icon          string `json:"icon" binding:"omitempty,max=50"`
	DefaultBudget *int64 `json:"default_budget,omitempty" binding:"omitempty,gte=0"`
}

// UpdateCategoryRequest represents the request body for category update.
// Omitted fields are left unchanged; clear_default_budget removes the default.
type UpdateCategoryRequest struct {
	Name               *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Color              *string `json:"color,omitempty" binding:"omitempty,hexcolor"`
	Icon               *string `json:"icon,omitempty" binding:"omitempty,max=50"`
	DefaultBudget      *int64  `json:"default_budget,omitempty" binding:"omitempty,gte=0"`
	ClearDefaultBudget bool    `json:"clear_default_budget,omitempty"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Color         string    `json:"color"`
	Icon          string    `json:"icon"`
	DefaultBudget *int64    `json:"default_budget,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(c *entity.Category) CategoryResponse {
	response := CategoryResponse{
		ID:        c.ID.String(),
		UserID:    c.UserID.String(),
		Name:      c.Name,
		Type:      string(c.Type),
		Color:     c.Color,
		Icon:      c.Icon,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}

	if c.DefaultBudget != nil {
		amount := c.DefaultBudget.IntPart()
		response.DefaultBudget = &amount
	}

	return response
}

// ToCategoryListResponse converts a slice of categories to the list DTO.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	out := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = ToCategoryResponse(c)
	}
	return CategoryListResponse{Categories: out}
}
