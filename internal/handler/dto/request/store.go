package request

import (
	"signage-sync/internal/usecase/commands"

	"github.com/google/uuid"
)

type UpdateStoreRequest struct {
	Name              *string    `json:"name" binding:"omitempty,min=1,max=100"`
	LogoURL           *string    `json:"logo_url" binding:"omitempty,max=2048"`
	IsActive          *bool      `json:"is_active"`
	TemplateID        *uuid.UUID `json:"template_id"`
	DefaultPlaylistID *uuid.UUID `json:"default_playlist_id"`
}

func (r *UpdateStoreRequest) ToCommand() commands.UpdateStoreRequest {
	return commands.UpdateStoreRequest{
		Name:              r.Name,
		LogoURL:           r.LogoURL,
		IsActive:          r.IsActive,
		TemplateID:        r.TemplateID,
		DefaultPlaylistID: r.DefaultPlaylistID,
	}
}
