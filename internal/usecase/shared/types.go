package shared

import (
	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of the display read model.

type MenuItemSnapshot struct {
	ID          uuid.UUID
	StoreID     uuid.UUID
	CategoryID  *uuid.UUID
	Name        string
	Description string
	PriceCents  int64
	ImageURL    string
	Tags        []string
	IsActive    bool
	SortOrder   int
}

type PromotionSnapshot struct {
	ID      uuid.UUID
	StoreID uuid.UUID
}

type StoreSnapshot struct {
	ID                uuid.UUID
	Name              string
	LogoURL           string
	IsActive          bool
	TemplateID        *uuid.UUID
	DefaultPlaylistID *uuid.UUID
}

type PlaylistSnapshot struct {
	ID      uuid.UUID
	StoreID uuid.UUID
}
