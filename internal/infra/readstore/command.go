package readstore

import (
	"context"

	"signage-sync/internal/infra"
	"signage-sync/internal/infra/db"
	"signage-sync/internal/pkg/pgconv"
	"signage-sync/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Rows read for a read-modify-write are locked until the transaction ends.
const (
	menuItemForUpdateSQL = `
SELECT id, store_id, category_id, name, description, price_cents, image_url, tags, is_active, sort_order
FROM menu_items WHERE id = $1
FOR UPDATE`

	storeForUpdateSQL = `
SELECT id, name, logo_url, is_active, template_id, default_playlist_id
FROM stores WHERE id = $1
FOR UPDATE`

	promotionOwnerSQL = `SELECT id, store_id FROM promotions WHERE id = $1`
	playlistOwnerSQL  = `SELECT id, store_id FROM playlists WHERE id = $1`
)

// CommandReadStore serves the write side's lookups inside a transaction.
type CommandReadStore struct {
	db db.DBTX
}

func NewCommandReadStore(q db.DBTX) *CommandReadStore {
	return &CommandReadStore{db: q}
}

func (r *CommandReadStore) MenuItemByID(ctx context.Context, id uuid.UUID) (*shared.MenuItemSnapshot, error) {
	var (
		s          shared.MenuItemSnapshot
		categoryID pgtype.UUID
	)
	err := r.db.QueryRow(ctx, menuItemForUpdateSQL, id).Scan(
		&s.ID, &s.StoreID, &categoryID, &s.Name, &s.Description, &s.PriceCents, &s.ImageURL, &s.Tags, &s.IsActive, &s.SortOrder)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("menu item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get menu item", err)
	}
	s.CategoryID = pgconv.UUIDPtrFromPgtype(categoryID)
	return &s, nil
}

func (r *CommandReadStore) StoreByID(ctx context.Context, id uuid.UUID) (*shared.StoreSnapshot, error) {
	var (
		s                     shared.StoreSnapshot
		templateID, defaultID pgtype.UUID
	)
	err := r.db.QueryRow(ctx, storeForUpdateSQL, id).Scan(&s.ID, &s.Name, &s.LogoURL, &s.IsActive, &templateID, &defaultID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("store not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get store", err)
	}
	s.TemplateID = pgconv.UUIDPtrFromPgtype(templateID)
	s.DefaultPlaylistID = pgconv.UUIDPtrFromPgtype(defaultID)
	return &s, nil
}

func (r *CommandReadStore) PromotionByID(ctx context.Context, id uuid.UUID) (*shared.PromotionSnapshot, error) {
	var s shared.PromotionSnapshot
	if err := r.db.QueryRow(ctx, promotionOwnerSQL, id).Scan(&s.ID, &s.StoreID); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promotion not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get promotion", err)
	}
	return &s, nil
}

func (r *CommandReadStore) PlaylistByID(ctx context.Context, id uuid.UUID) (*shared.PlaylistSnapshot, error) {
	var s shared.PlaylistSnapshot
	if err := r.db.QueryRow(ctx, playlistOwnerSQL, id).Scan(&s.ID, &s.StoreID); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("playlist not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get playlist", err)
	}
	return &s, nil
}
