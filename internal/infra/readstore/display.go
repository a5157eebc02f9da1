package readstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"signage-sync/internal/domain/layout"
	"signage-sync/internal/domain/playlist"
	"signage-sync/internal/infra"
	"signage-sync/internal/infra/db"
	"signage-sync/internal/pkg/pgconv"
	"signage-sync/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	displayStoreSQL = `
SELECT id, name, logo_url, is_active, template_id, default_playlist_id
FROM stores WHERE id = $1`

	templateLayoutSQL = `SELECT layout FROM layout_templates WHERE id = $1`

	categoriesSQL = `
SELECT id, name, sort_order
FROM categories WHERE store_id = $1
ORDER BY sort_order, name`

	activeMenuItemsSQL = `
SELECT id, category_id, name, description, price_cents, image_url, tags, sort_order
FROM menu_items WHERE store_id = $1 AND is_active
ORDER BY sort_order, id`

	currentPromotionsSQL = `
SELECT id, title, description, start_time, end_time, discount_type, discount_value::float8, item_ids
FROM promotions WHERE store_id = $1 AND is_active AND end_time > $2
ORDER BY start_time, id`

	playlistSQL = `SELECT id, store_id, name, slides FROM playlists WHERE id = $1`
)

type DisplayReadStore struct {
	logger *slog.Logger
}

func NewDisplayReadStore(logger *slog.Logger) *DisplayReadStore {
	return &DisplayReadStore{logger: logger}
}

func (r *DisplayReadStore) StoreByID(ctx context.Context, q db.DBTX, id uuid.UUID) (*queries.StoreView, error) {
	var (
		v                     queries.StoreView
		templateID, defaultID pgtype.UUID
	)
	err := q.QueryRow(ctx, displayStoreSQL, id).Scan(&v.ID, &v.Name, &v.LogoURL, &v.IsActive, &templateID, &defaultID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("store not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get store", err)
	}
	v.TemplateID = pgconv.UUIDPtrFromPgtype(templateID)
	v.DefaultPlaylistID = pgconv.UUIDPtrFromPgtype(defaultID)
	return &v, nil
}

func (r *DisplayReadStore) TemplateLayout(ctx context.Context, q db.DBTX, id uuid.UUID) (layout.Config, error) {
	var raw []byte
	if err := q.QueryRow(ctx, templateLayoutSQL, id).Scan(&raw); err != nil {
		if pgconv.IsNoRows(err) {
			return layout.Config{}, infra.WrapRepoErr("layout template not found", err, infra.KindNotFound)
		}
		return layout.Config{}, infra.WrapRepoErr("failed to get layout template", err)
	}
	return layout.Parse(raw), nil
}

func (r *DisplayReadStore) Categories(ctx context.Context, q db.DBTX, storeID uuid.UUID) ([]queries.CategoryView, error) {
	rows, err := q.Query(ctx, categoriesSQL, storeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}
	return collect(rows, "failed to list categories", func(row pgx.Rows) (queries.CategoryView, error) {
		var v queries.CategoryView
		err := row.Scan(&v.ID, &v.Name, &v.SortOrder)
		return v, err
	})
}

func (r *DisplayReadStore) ActiveMenuItems(ctx context.Context, q db.DBTX, storeID uuid.UUID) ([]queries.MenuItemView, error) {
	rows, err := q.Query(ctx, activeMenuItemsSQL, storeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu items", err)
	}
	return collect(rows, "failed to list menu items", func(row pgx.Rows) (queries.MenuItemView, error) {
		var (
			v          queries.MenuItemView
			categoryID pgtype.UUID
		)
		err := row.Scan(&v.ID, &categoryID, &v.Name, &v.Description, &v.PriceCents, &v.ImageURL, &v.Tags, &v.SortOrder)
		v.CategoryID = pgconv.UUIDPtrFromPgtype(categoryID)
		if v.Tags == nil {
			v.Tags = []string{}
		}
		return v, err
	})
}

func (r *DisplayReadStore) CurrentPromotions(ctx context.Context, q db.DBTX, storeID uuid.UUID, now time.Time) ([]queries.PromotionView, error) {
	rows, err := q.Query(ctx, currentPromotionsSQL, storeID, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list promotions", err)
	}
	return collect(rows, "failed to list promotions", func(row pgx.Rows) (queries.PromotionView, error) {
		var v queries.PromotionView
		err := row.Scan(&v.ID, &v.Title, &v.Description, &v.StartTime, &v.EndTime, &v.DiscountType, &v.DiscountValue, &v.ItemIDs)
		v.StartTime = v.StartTime.UTC()
		v.EndTime = v.EndTime.UTC()
		if v.ItemIDs == nil {
			v.ItemIDs = []uuid.UUID{}
		}
		return v, err
	})
}

func (r *DisplayReadStore) PlaylistByID(ctx context.Context, q db.DBTX, id uuid.UUID) (*queries.PlaylistView, error) {
	var (
		v   queries.PlaylistView
		raw []byte
	)
	if err := q.QueryRow(ctx, playlistSQL, id).Scan(&v.ID, &v.StoreID, &v.Name, &raw); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("playlist not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get playlist", err)
	}
	v.Slides = r.decodeSlides(v.ID, raw)
	return &v, nil
}

// decodeSlides keeps every slide that decodes and drops the rest, so one
// broken slide does not take the whole playlist off screen.
func (r *DisplayReadStore) decodeSlides(playlistID uuid.UUID, raw []byte) []playlist.Slide {
	var docs []json.RawMessage
	if err := json.Unmarshal(raw, &docs); err != nil {
		r.logger.Warn("playlist slides are not an array", "playlist_id", playlistID, "error", err)
		return []playlist.Slide{}
	}
	slides := make([]playlist.Slide, 0, len(docs))
	for i, doc := range docs {
		var s playlist.Slide
		if err := json.Unmarshal(doc, &s); err != nil {
			r.logger.Warn("skipping malformed slide", "playlist_id", playlistID, "index", i, "error", err)
			continue
		}
		slides = append(slides, s)
	}
	return slides
}

func collect[T any](rows pgx.Rows, msg string, scan func(pgx.Rows) (T, error)) ([]T, error) {
	defer rows.Close()
	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(msg, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	return out, nil
}
