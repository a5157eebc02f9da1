package repository

import (
	"context"

	"signage-sync/internal/domain/promotion"
	"signage-sync/internal/infra"
	"signage-sync/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	createPromotionSQL = `
INSERT INTO promotions (id, store_id, title, description, start_time, end_time, discount_type, discount_value, item_ids, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`

	updatePromotionSQL = `
UPDATE promotions SET
    title = $2,
    description = $3,
    start_time = $4,
    end_time = $5,
    discount_type = $6,
    discount_value = $7,
    item_ids = $8,
    is_active = $9,
    updated_at = now()
WHERE id = $1`

	deletePromotionSQL = `DELETE FROM promotions WHERE id = $1 RETURNING store_id`
)

type PromotionRepository struct{}

func NewPromotionRepository() *PromotionRepository {
	return &PromotionRepository{}
}

func (r *PromotionRepository) Create(ctx context.Context, tx db.DBTX, p *promotion.Promotion) (uuid.UUID, error) {
	w := p.Window()
	d := p.Discount()
	var id uuid.UUID
	err := tx.QueryRow(ctx, createPromotionSQL,
		p.ID(),
		p.StoreID(),
		p.Title(),
		p.Description(),
		w.Start,
		w.End,
		string(d.Kind()),
		d.Value(),
		targetIDs(p),
		p.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create promotion", err)
	}
	return id, nil
}

func (r *PromotionRepository) Update(ctx context.Context, tx db.DBTX, p *promotion.Promotion) error {
	w := p.Window()
	d := p.Discount()
	tag, err := tx.Exec(ctx, updatePromotionSQL,
		p.ID(),
		p.Title(),
		p.Description(),
		w.Start,
		w.End,
		string(d.Kind()),
		d.Value(),
		targetIDs(p),
		p.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update promotion", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("promotion not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *PromotionRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) (uuid.UUID, error) {
	var storeID uuid.UUID
	if err := tx.QueryRow(ctx, deletePromotionSQL, id).Scan(&storeID); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to delete promotion", err)
	}
	return storeID, nil
}

// item_ids is NOT NULL; a nil slice would be sent as NULL.
func targetIDs(p *promotion.Promotion) []uuid.UUID {
	ids := p.ItemIDs()
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
