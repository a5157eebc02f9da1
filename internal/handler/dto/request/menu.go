package request

import (
	"signage-sync/internal/usecase/commands"

	"github.com/google/uuid"
)

// SortOrderRequest is a pointer so that zero is a valid position.
type SortOrderRequest struct {
	SortOrder *int `json:"sort_order" binding:"required,min=0"`
}

type UpdateMenuItemRequest struct {
	CategoryID  *uuid.UUID `json:"category_id"`
	Name        *string    `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string    `json:"description" binding:"omitempty,max=500"`
	PriceCents  *int64     `json:"price_cents" binding:"omitempty,min=0"`
	ImageURL    *string    `json:"image_url" binding:"omitempty,max=2048"`
	Tags        *[]string  `json:"tags" binding:"omitempty,max=10"`
	IsActive    *bool      `json:"is_active"`
}

func (r *UpdateMenuItemRequest) ToCommand() commands.UpdateMenuItemRequest {
	return commands.UpdateMenuItemRequest{
		CategoryID:  r.CategoryID,
		Name:        r.Name,
		Description: r.Description,
		PriceCents:  r.PriceCents,
		ImageURL:    r.ImageURL,
		Tags:        r.Tags,
		IsActive:    r.IsActive,
	}
}
