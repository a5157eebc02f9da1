package commands

import (
	"context"

	"signage-sync/internal/domain/change"
	"signage-sync/internal/domain/menu"
	"signage-sync/internal/pkg/clock"
	"signage-sync/internal/pkg/patch"
	"signage-sync/internal/usecase/shared"

	"github.com/google/uuid"
)

type UpdateMenuItemRequest struct {
	CategoryID  *uuid.UUID
	Name        *string
	Description *string
	PriceCents  *int64
	ImageURL    *string
	Tags        *[]string
	IsActive    *bool
}

//go:generate mockgen -source=menu.go -destination=../../../tests/mock/commands/menu_mock.go -package=commandsmock

type MenuCommands interface {
	UpdateSortOrder(ctx context.Context, itemID uuid.UUID, sortOrder int) error
	UpdateMenuItem(ctx context.Context, itemID uuid.UUID, req UpdateMenuItemRequest) error
}

type menuUseCaseImpl struct {
	uow       shared.UnitOfWork
	publisher shared.ChangePublisher
	clock     clock.Clock
}

func NewMenuUseCase(uow shared.UnitOfWork, publisher shared.ChangePublisher, clk clock.Clock) MenuCommands {
	return &menuUseCaseImpl{uow: uow, publisher: publisher, clock: clk}
}

func (uc *menuUseCaseImpl) UpdateSortOrder(ctx context.Context, itemID uuid.UUID, sortOrder int) error {
	order, err := menu.NewSortOrder(sortOrder)
	if err != nil {
		return err
	}

	var storeID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.MenuItems().UpdateSortOrder(ctx, tx.DB(), itemID, order)
		if derr != nil {
			return translate(derr, ErrMenuItemNotFound)
		}
		storeID = id
		return nil
	})
	if err != nil {
		return err
	}

	uc.publisher.Publish(ctx, change.NewSignal(change.MenuUpdate, storeID, uc.clock.Now()))
	return nil
}

func (uc *menuUseCaseImpl) UpdateMenuItem(ctx context.Context, itemID uuid.UUID, req UpdateMenuItemRequest) error {
	var storeID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().MenuItemByID(ctx, itemID)
		if derr != nil {
			return translate(derr, ErrMenuItemNotFound)
		}

		categoryID := snap.CategoryID
		if req.CategoryID != nil {
			categoryID = req.CategoryID
		}
		item, derr := menu.NewItem(menu.ItemParams{
			ID:          snap.ID,
			StoreID:     snap.StoreID,
			CategoryID:  categoryID,
			Name:        patch.Coalesce(req.Name, snap.Name),
			Description: patch.Coalesce(req.Description, snap.Description),
			PriceCents:  patch.Coalesce(req.PriceCents, snap.PriceCents),
			ImageURL:    patch.Coalesce(req.ImageURL, snap.ImageURL),
			Tags:        patch.Coalesce(req.Tags, snap.Tags),
			Active:      patch.Coalesce(req.IsActive, snap.IsActive),
			SortOrder:   snap.SortOrder,
		})
		if derr != nil {
			return derr
		}
		if derr = tx.MenuItems().Update(ctx, tx.DB(), item); derr != nil {
			return translate(derr, ErrMenuItemNotFound)
		}
		storeID = snap.StoreID
		return nil
	})
	if err != nil {
		return err
	}

	uc.publisher.Publish(ctx, change.NewSignal(change.MenuUpdate, storeID, uc.clock.Now()))
	return nil
}
