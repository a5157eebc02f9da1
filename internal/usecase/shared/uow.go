package shared

import (
	"context"

	"signage-sync/internal/domain/menu"
	"signage-sync/internal/domain/playlist"
	"signage-sync/internal/domain/promotion"
	"signage-sync/internal/domain/store"
	"signage-sync/internal/infra/db"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only repeatable-read transaction, every read sees the same snapshot
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	MenuItems() MenuItemRepository
	Promotions() PromotionRepository
	Stores() StoreRepository
	Playlists() PlaylistRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	MenuItemByID(ctx context.Context, id uuid.UUID) (*MenuItemSnapshot, error)
	PromotionByID(ctx context.Context, id uuid.UUID) (*PromotionSnapshot, error)
	StoreByID(ctx context.Context, id uuid.UUID) (*StoreSnapshot, error)
	PlaylistByID(ctx context.Context, id uuid.UUID) (*PlaylistSnapshot, error)
}

type MenuItemRepository interface {
	// UpdateSortOrder returns the owning store id.
	UpdateSortOrder(ctx context.Context, tx db.DBTX, id uuid.UUID, order menu.SortOrder) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, item *menu.Item) error
}

type PromotionRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *promotion.Promotion) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, p *promotion.Promotion) error
	// Delete returns the owning store id.
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) (uuid.UUID, error)
}

type StoreRepository interface {
	Update(ctx context.Context, tx db.DBTX, s *store.Store) error
}

type PlaylistRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *playlist.Playlist) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, p *playlist.Playlist) error
	// Delete returns the owning store id.
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) (uuid.UUID, error)
}
