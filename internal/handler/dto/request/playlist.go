package request

import (
	"signage-sync/internal/domain/layout"
	"signage-sync/internal/usecase/commands"

	"github.com/google/uuid"
)

type SlideRequest struct {
	Label       string            `json:"label" binding:"max=60"`
	DurationSec int               `json:"duration_sec" binding:"omitempty,min=3,max=300"`
	Layout      layout.Config     `json:"layout"`
	ItemIDs     []uuid.UUID       `json:"item_ids"`
	ItemStyles  layout.ItemStyles `json:"item_styles"`
}

type PlaylistRequest struct {
	Name   string         `json:"name" binding:"required,max=100"`
	Slides []SlideRequest `json:"slides" binding:"required,min=1,max=50,dive"`
}

type CreatePlaylistRequest struct {
	StoreID uuid.UUID `json:"store_id" binding:"required"`
	PlaylistRequest
}

func (r *PlaylistRequest) ToInput() commands.PlaylistInput {
	slides := make([]commands.SlideInput, len(r.Slides))
	for i, s := range r.Slides {
		slides[i] = commands.SlideInput{
			Label:       s.Label,
			DurationSec: s.DurationSec,
			Layout:      s.Layout,
			ItemIDs:     s.ItemIDs,
			ItemStyles:  s.ItemStyles,
		}
	}
	return commands.PlaylistInput{Name: r.Name, Slides: slides}
}
