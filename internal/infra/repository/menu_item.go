package repository

import (
	"context"

	"signage-sync/internal/domain/menu"
	"signage-sync/internal/infra"
	"signage-sync/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	updateMenuItemSortOrderSQL = `
UPDATE menu_items SET sort_order = $2, updated_at = now()
WHERE id = $1
RETURNING store_id`

	updateMenuItemSQL = `
UPDATE menu_items SET
    category_id = $2,
    name = $3,
    description = $4,
    price_cents = $5,
    image_url = $6,
    tags = $7,
    is_active = $8,
    sort_order = $9,
    updated_at = now()
WHERE id = $1`
)

type MenuItemRepository struct{}

func NewMenuItemRepository() *MenuItemRepository {
	return &MenuItemRepository{}
}

func (r *MenuItemRepository) UpdateSortOrder(ctx context.Context, tx db.DBTX, id uuid.UUID, order menu.SortOrder) (uuid.UUID, error) {
	var storeID uuid.UUID
	if err := tx.QueryRow(ctx, updateMenuItemSortOrderSQL, id, order.Value()).Scan(&storeID); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to update menu item sort order", err)
	}
	return storeID, nil
}

func (r *MenuItemRepository) Update(ctx context.Context, tx db.DBTX, item *menu.Item) error {
	tag, err := tx.Exec(ctx, updateMenuItemSQL,
		item.ID(),
		item.CategoryID(),
		item.Name(),
		item.Description(),
		item.PriceCents(),
		item.ImageURL(),
		item.Tags(),
		item.IsActive(),
		item.SortOrder().Value(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update menu item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("menu item not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
