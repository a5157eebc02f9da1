package repository

import (
	"context"

	"signage-sync/internal/domain/store"
	"signage-sync/internal/infra"
	"signage-sync/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

const updateStoreSQL = `
UPDATE stores SET
    name = $2,
    logo_url = $3,
    is_active = $4,
    template_id = $5,
    default_playlist_id = $6,
    updated_at = now()
WHERE id = $1`

type StoreRepository struct{}

func NewStoreRepository() *StoreRepository {
	return &StoreRepository{}
}

func (r *StoreRepository) Update(ctx context.Context, tx db.DBTX, s *store.Store) error {
	tag, err := tx.Exec(ctx, updateStoreSQL,
		s.ID(),
		s.Name(),
		s.LogoURL(),
		s.IsActive(),
		s.TemplateID(),
		s.DefaultPlaylistID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update store", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("store not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
