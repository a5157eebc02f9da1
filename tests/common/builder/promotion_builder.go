//go:build unit || e2e

package builder

import (
	"time"

	"signage-sync/internal/domain/promotion"
	reqdto "signage-sync/internal/handler/dto/request"
	"signage-sync/internal/usecase/queries"

	"github.com/google/uuid"
)

type PromotionBuilder struct {
	StoreID       uuid.UUID
	Title         string
	Description   string
	StartTime     time.Time
	EndTime       time.Time
	DiscountKind  promotion.DiscountKind
	DiscountValue float64
	ItemIDs       []uuid.UUID
	Active        bool
}

func NewPromotionBuilder() *PromotionBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &PromotionBuilder{
		StoreID:       uuid.New(),
		Title:         fake.Lorem().Word() + " special",
		Description:   fake.Lorem().Sentence(6),
		StartTime:     now.Add(-time.Hour),
		EndTime:       now.Add(time.Hour),
		DiscountKind:  promotion.DiscountPercentage,
		DiscountValue: float64(fake.IntBetween(5, 50)),
		ItemIDs:       []uuid.UUID{uuid.New(), uuid.New()},
		Active:        true,
	}
}

func (b *PromotionBuilder) With(mutate func(*PromotionBuilder)) *PromotionBuilder {
	mutate(b)
	return b
}

func (b *PromotionBuilder) WithWindow(start, end time.Time) *PromotionBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *PromotionBuilder) BuildDomain() (*promotion.Promotion, error) {
	discount, err := promotion.NewDiscount(b.DiscountKind, b.DiscountValue)
	if err != nil {
		return nil, err
	}
	return promotion.NewPromotion(promotion.Params{
		StoreID:     b.StoreID,
		Title:       b.Title,
		Description: b.Description,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Discount:    discount,
		ItemIDs:     b.ItemIDs,
		Active:      b.Active,
	})
}

func (b *PromotionBuilder) BuildCreateRequestDTO() reqdto.CreatePromotionRequest {
	return reqdto.CreatePromotionRequest{
		StoreID:          b.StoreID,
		PromotionRequest: b.BuildUpdateRequestDTO(),
	}
}

func (b *PromotionBuilder) BuildUpdateRequestDTO() reqdto.PromotionRequest {
	active := b.Active
	return reqdto.PromotionRequest{
		Title:         b.Title,
		Description:   b.Description,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		DiscountType:  string(b.DiscountKind),
		DiscountValue: b.DiscountValue,
		ItemIDs:       b.ItemIDs,
		IsActive:      &active,
	}
}

func (b *PromotionBuilder) BuildView() queries.PromotionView {
	return queries.PromotionView{
		ID:            uuid.New(),
		Title:         b.Title,
		Description:   b.Description,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		DiscountType:  string(b.DiscountKind),
		DiscountValue: b.DiscountValue,
		ItemIDs:       b.ItemIDs,
	}
}
