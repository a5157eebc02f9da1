package queries

import (
	"context"
	"time"

	"signage-sync/internal/domain/layout"
	"signage-sync/internal/domain/playlist"
	"signage-sync/internal/infra"
	"signage-sync/internal/infra/db"
	"signage-sync/internal/pkg/clock"
	"signage-sync/internal/pkg/errs"
	"signage-sync/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrStoreNotFound    = errs.ErrStoreNotFound
	ErrPlaylistNotFound = errs.ErrPlaylistNotFound
)

type StoreView struct {
	ID                uuid.UUID     `json:"id"`
	Name              string        `json:"name"`
	LogoURL           string        `json:"logo_url"`
	IsActive          bool          `json:"is_active"`
	TemplateID        *uuid.UUID    `json:"template_id,omitempty"`
	DefaultPlaylistID *uuid.UUID    `json:"default_playlist_id,omitempty"`
	Template          layout.Config `json:"template"`
}

type CategoryView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"`
}

type MenuItemView struct {
	ID          uuid.UUID  `json:"id"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	PriceCents  int64      `json:"price_cents"`
	ImageURL    string     `json:"image_url"`
	Tags        []string   `json:"tags"`
	SortOrder   int        `json:"sort_order"`
}

type PromotionView struct {
	ID            uuid.UUID   `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	StartTime     time.Time   `json:"start_time"`
	EndTime       time.Time   `json:"end_time"`
	DiscountType  string      `json:"discount_type"`
	DiscountValue float64     `json:"discount_value"`
	ItemIDs       []uuid.UUID `json:"item_ids"`
}

type PlaylistView struct {
	ID      uuid.UUID        `json:"id"`
	StoreID uuid.UUID        `json:"-"`
	Name    string           `json:"name"`
	Slides  []playlist.Slide `json:"slides"`
}

// SnapshotView is everything a display needs to render a store. When Offline
// is set every other field is empty.
type SnapshotView struct {
	Offline     bool            `json:"offline"`
	Store       *StoreView      `json:"store"`
	Categories  []CategoryView  `json:"categories"`
	MenuItems   []MenuItemView  `json:"menu_items"`
	Promotions  []PromotionView `json:"promotions"`
	Playlist    *PlaylistView   `json:"playlist,omitempty"`
	GeneratedAt time.Time       `json:"generated_at"`
}

//go:generate mockgen -source=display.go -destination=../../../tests/mock/queries/display_mock.go -package=queriesmock

type DisplayReadStore interface {
	StoreByID(ctx context.Context, q db.DBTX, id uuid.UUID) (*StoreView, error)
	TemplateLayout(ctx context.Context, q db.DBTX, id uuid.UUID) (layout.Config, error)
	Categories(ctx context.Context, q db.DBTX, storeID uuid.UUID) ([]CategoryView, error)
	ActiveMenuItems(ctx context.Context, q db.DBTX, storeID uuid.UUID) ([]MenuItemView, error)
	// CurrentPromotions returns active promotions that have not ended, running or upcoming.
	CurrentPromotions(ctx context.Context, q db.DBTX, storeID uuid.UUID, now time.Time) ([]PromotionView, error)
	PlaylistByID(ctx context.Context, q db.DBTX, id uuid.UUID) (*PlaylistView, error)
}

type DisplayQueries interface {
	// GetSnapshot reads a store's display snapshot in one consistent
	// transaction. A nil playlistID selects the store's default playlist.
	GetSnapshot(ctx context.Context, storeID uuid.UUID, playlistID *uuid.UUID) (*SnapshotView, error)
}

type displayQueriesImpl struct {
	uow   shared.UnitOfWork
	store DisplayReadStore
	clock clock.Clock
}

func NewDisplayQueries(uow shared.UnitOfWork, store DisplayReadStore, clk clock.Clock) DisplayQueries {
	return &displayQueriesImpl{uow: uow, store: store, clock: clk}
}

func (q *displayQueriesImpl) GetSnapshot(ctx context.Context, storeID uuid.UUID, playlistID *uuid.UUID) (*SnapshotView, error) {
	now := q.clock.Now()
	var snap *SnapshotView

	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx db.DBTX) error {
		st, err := q.store.StoreByID(ctx, tx, storeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrStoreNotFound
			}
			return err
		}
		if !st.IsActive {
			snap = &SnapshotView{Offline: true, GeneratedAt: now}
			return nil
		}

		if st.TemplateID != nil {
			tpl, err := q.store.TemplateLayout(ctx, tx, *st.TemplateID)
			if err != nil && !infra.IsKind(err, infra.KindNotFound) {
				return err
			}
			st.Template = tpl
		}

		categories, err := q.store.Categories(ctx, tx, storeID)
		if err != nil {
			return err
		}
		items, err := q.store.ActiveMenuItems(ctx, tx, storeID)
		if err != nil {
			return err
		}
		promotions, err := q.store.CurrentPromotions(ctx, tx, storeID, now)
		if err != nil {
			return err
		}
		pl, err := q.resolvePlaylist(ctx, tx, st, playlistID)
		if err != nil {
			return err
		}

		snap = &SnapshotView{
			Store:       st,
			Categories:  categories,
			MenuItems:   items,
			Promotions:  promotions,
			Playlist:    pl,
			GeneratedAt: now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// An explicitly requested playlist must exist and belong to the store. A
// dangling default playlist falls back to flat mode.
func (q *displayQueriesImpl) resolvePlaylist(ctx context.Context, tx db.DBTX, st *StoreView, requested *uuid.UUID) (*PlaylistView, error) {
	id := requested
	if id == nil {
		id = st.DefaultPlaylistID
	}
	if id == nil {
		return nil, nil
	}

	pl, err := q.store.PlaylistByID(ctx, tx, *id)
	switch {
	case err == nil && pl.StoreID == st.ID:
		return pl, nil
	case err != nil && !infra.IsKind(err, infra.KindNotFound):
		return nil, err
	case requested != nil:
		return nil, ErrPlaylistNotFound
	default:
		return nil, nil
	}
}
