package repository

import (
	"context"
	"encoding/json"

	"signage-sync/internal/domain/playlist"
	"signage-sync/internal/infra"
	"signage-sync/internal/infra/db"
	"signage-sync/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	createPlaylistSQL = `
INSERT INTO playlists (id, store_id, name, slides)
VALUES ($1, $2, $3, $4)
RETURNING id`

	updatePlaylistSQL = `
UPDATE playlists SET name = $2, slides = $3, updated_at = now()
WHERE id = $1`

	deletePlaylistSQL = `DELETE FROM playlists WHERE id = $1 RETURNING store_id`
)

type PlaylistRepository struct{}

func NewPlaylistRepository() *PlaylistRepository {
	return &PlaylistRepository{}
}

func (r *PlaylistRepository) Create(ctx context.Context, tx db.DBTX, p *playlist.Playlist) (uuid.UUID, error) {
	slides, err := encodeSlides(p)
	if err != nil {
		return uuid.Nil, err
	}
	var id uuid.UUID
	if err := tx.QueryRow(ctx, createPlaylistSQL, p.ID(), p.StoreID(), p.Name(), slides).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create playlist", err)
	}
	return id, nil
}

func (r *PlaylistRepository) Update(ctx context.Context, tx db.DBTX, p *playlist.Playlist) error {
	slides, err := encodeSlides(p)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, updatePlaylistSQL, p.ID(), p.Name(), slides)
	if err != nil {
		return infra.WrapRepoErr("failed to update playlist", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("playlist not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *PlaylistRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) (uuid.UUID, error) {
	var storeID uuid.UUID
	if err := tx.QueryRow(ctx, deletePlaylistSQL, id).Scan(&storeID); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to delete playlist", err)
	}
	return storeID, nil
}

func encodeSlides(p *playlist.Playlist) ([]byte, error) {
	raw, err := json.Marshal(p.Slides())
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode playlist slides")
	}
	return raw, nil
}
