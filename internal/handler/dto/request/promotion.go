package request

import (
	"time"

	"signage-sync/internal/pkg/patch"
	"signage-sync/internal/usecase/commands"

	"github.com/google/uuid"
)

type PromotionRequest struct {
	Title         string      `json:"title" binding:"required,max=100"`
	Description   string      `json:"description" binding:"max=500"`
	StartTime     time.Time   `json:"start_time" binding:"required"`
	EndTime       time.Time   `json:"end_time" binding:"required"`
	DiscountType  string      `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue float64     `json:"discount_value" binding:"required,gt=0"`
	ItemIDs       []uuid.UUID `json:"item_ids"`
	IsActive      *bool       `json:"is_active"`
}

type CreatePromotionRequest struct {
	StoreID uuid.UUID `json:"store_id" binding:"required"`
	PromotionRequest
}

// ToInput treats a missing is_active as active.
func (r *PromotionRequest) ToInput() commands.PromotionInput {
	return commands.PromotionInput{
		Title:         r.Title,
		Description:   r.Description,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		DiscountType:  r.DiscountType,
		DiscountValue: r.DiscountValue,
		ItemIDs:       r.ItemIDs,
		IsActive:      patch.Coalesce(r.IsActive, true),
	}
}
