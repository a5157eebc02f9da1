package commands

import (
	"context"
	"time"

	"signage-sync/internal/domain/change"
	"signage-sync/internal/domain/promotion"
	"signage-sync/internal/pkg/clock"
	"signage-sync/internal/usecase/shared"

	"github.com/google/uuid"
)

type PromotionInput struct {
	Title         string
	Description   string
	StartTime     time.Time
	EndTime       time.Time
	DiscountType  string
	DiscountValue float64
	ItemIDs       []uuid.UUID
	IsActive      bool
}

type CreatePromotionResult struct {
	PromotionID uuid.UUID
}

//go:generate mockgen -source=promotion.go -destination=../../../tests/mock/commands/promotion_mock.go -package=commandsmock

type PromotionCommands interface {
	CreatePromotion(ctx context.Context, storeID uuid.UUID, in PromotionInput) (*CreatePromotionResult, error)
	UpdatePromotion(ctx context.Context, promotionID uuid.UUID, in PromotionInput) error
	DeletePromotion(ctx context.Context, promotionID uuid.UUID) error
}

type promotionUseCaseImpl struct {
	uow       shared.UnitOfWork
	publisher shared.ChangePublisher
	clock     clock.Clock
}

func NewPromotionUseCase(uow shared.UnitOfWork, publisher shared.ChangePublisher, clk clock.Clock) PromotionCommands {
	return &promotionUseCaseImpl{uow: uow, publisher: publisher, clock: clk}
}

func buildPromotion(id, storeID uuid.UUID, in PromotionInput) (*promotion.Promotion, error) {
	discount, err := promotion.NewDiscount(promotion.DiscountKind(in.DiscountType), in.DiscountValue)
	if err != nil {
		return nil, err
	}
	return promotion.NewPromotion(promotion.Params{
		ID:          id,
		StoreID:     storeID,
		Title:       in.Title,
		Description: in.Description,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Discount:    discount,
		ItemIDs:     in.ItemIDs,
		Active:      in.IsActive,
	})
}

func (uc *promotionUseCaseImpl) CreatePromotion(ctx context.Context, storeID uuid.UUID, in PromotionInput) (*CreatePromotionResult, error) {
	p, err := buildPromotion(uuid.New(), storeID, in)
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Promotions().Create(ctx, tx.DB(), p)
		if derr != nil {
			return translate(derr, ErrStoreNotFound)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publisher.Publish(ctx, change.NewSignal(change.PromotionUpdate, storeID, uc.clock.Now()))
	return &CreatePromotionResult{PromotionID: createdID}, nil
}

func (uc *promotionUseCaseImpl) UpdatePromotion(ctx context.Context, promotionID uuid.UUID, in PromotionInput) error {
	var storeID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().PromotionByID(ctx, promotionID)
		if derr != nil {
			return translate(derr, ErrPromotionNotFound)
		}
		p, derr := buildPromotion(snap.ID, snap.StoreID, in)
		if derr != nil {
			return derr
		}
		if derr = tx.Promotions().Update(ctx, tx.DB(), p); derr != nil {
			return translate(derr, ErrPromotionNotFound)
		}
		storeID = snap.StoreID
		return nil
	})
	if err != nil {
		return err
	}

	uc.publisher.Publish(ctx, change.NewSignal(change.PromotionUpdate, storeID, uc.clock.Now()))
	return nil
}

func (uc *promotionUseCaseImpl) DeletePromotion(ctx context.Context, promotionID uuid.UUID) error {
	var storeID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Promotions().Delete(ctx, tx.DB(), promotionID)
		if derr != nil {
			return translate(derr, ErrPromotionNotFound)
		}
		storeID = id
		return nil
	})
	if err != nil {
		return err
	}

	uc.publisher.Publish(ctx, change.NewSignal(change.PromotionUpdate, storeID, uc.clock.Now()))
	return nil
}
