package commands

import (
	"context"

	"signage-sync/internal/domain/change"
	"signage-sync/internal/domain/store"
	"signage-sync/internal/pkg/clock"
	"signage-sync/internal/pkg/patch"
	"signage-sync/internal/usecase/shared"

	"github.com/google/uuid"
)

type UpdateStoreRequest struct {
	Name              *string
	LogoURL           *string
	IsActive          *bool
	TemplateID        *uuid.UUID
	DefaultPlaylistID *uuid.UUID
}

//go:generate mockgen -source=store.go -destination=../../../tests/mock/commands/store_mock.go -package=commandsmock

type StoreCommands interface {
	UpdateStore(ctx context.Context, storeID uuid.UUID, req UpdateStoreRequest) error
}

type storeUseCaseImpl struct {
	uow       shared.UnitOfWork
	publisher shared.ChangePublisher
	clock     clock.Clock
}

func NewStoreUseCase(uow shared.UnitOfWork, publisher shared.ChangePublisher, clk clock.Clock) StoreCommands {
	return &storeUseCaseImpl{uow: uow, publisher: publisher, clock: clk}
}

func (uc *storeUseCaseImpl) UpdateStore(ctx context.Context, storeID uuid.UUID, req UpdateStoreRequest) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().StoreByID(ctx, storeID)
		if derr != nil {
			return translate(derr, ErrStoreNotFound)
		}

		if req.DefaultPlaylistID != nil {
			pl, derr := tx.Reads().PlaylistByID(ctx, *req.DefaultPlaylistID)
			if derr != nil {
				return translate(derr, ErrPlaylistNotFound)
			}
			if pl.StoreID != snap.ID {
				return ErrPlaylistNotFound
			}
		}

		s, derr := store.NewStore(store.Params{
			ID:                snap.ID,
			Name:              patch.Coalesce(req.Name, snap.Name),
			LogoURL:           patch.Coalesce(req.LogoURL, snap.LogoURL),
			Active:            patch.Coalesce(req.IsActive, snap.IsActive),
			TemplateID:        patch.Ref(req.TemplateID, snap.TemplateID),
			DefaultPlaylistID: patch.Ref(req.DefaultPlaylistID, snap.DefaultPlaylistID),
		})
		if derr != nil {
			return derr
		}
		return translate(tx.Stores().Update(ctx, tx.DB(), s), ErrStoreNotFound)
	})
	if err != nil {
		return err
	}

	uc.publisher.Publish(ctx, change.NewSignal(change.StoreUpdate, storeID, uc.clock.Now()))
	return nil
}
