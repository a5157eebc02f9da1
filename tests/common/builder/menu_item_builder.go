//go:build unit || e2e

package builder

import (
	"signage-sync/internal/domain/menu"
	reqdto "signage-sync/internal/handler/dto/request"
	"signage-sync/internal/usecase/queries"

	"github.com/google/uuid"
)

type MenuItemBuilder struct {
	ID          uuid.UUID
	StoreID     uuid.UUID
	CategoryID  *uuid.UUID
	Name        string
	Description string
	PriceCents  int64
	ImageURL    string
	Tags        []string
	Active      bool
	SortOrder   int
}

func NewMenuItemBuilder() *MenuItemBuilder {
	categoryID := uuid.New()
	return &MenuItemBuilder{
		ID:          uuid.New(),
		StoreID:     uuid.New(),
		CategoryID:  &categoryID,
		Name:        fake.Lorem().Word() + " bowl",
		Description: fake.Lorem().Sentence(8),
		PriceCents:  int64(fake.IntBetween(100, 3000)),
		ImageURL:    "https://cdn.example.com/items/" + fake.Lorem().Word() + ".jpg",
		Tags:        []string{"house"},
		Active:      true,
		SortOrder:   fake.IntBetween(0, 50),
	}
}

func (b *MenuItemBuilder) With(mutate func(*MenuItemBuilder)) *MenuItemBuilder {
	mutate(b)
	return b
}

func (b *MenuItemBuilder) BuildDomain() (*menu.Item, error) {
	return menu.NewItem(menu.ItemParams{
		ID:          b.ID,
		StoreID:     b.StoreID,
		CategoryID:  b.CategoryID,
		Name:        b.Name,
		Description: b.Description,
		PriceCents:  b.PriceCents,
		ImageURL:    b.ImageURL,
		Tags:        b.Tags,
		Active:      b.Active,
		SortOrder:   b.SortOrder,
	})
}

func (b *MenuItemBuilder) BuildUpdateRequestDTO() reqdto.UpdateMenuItemRequest {
	name, description, price, image, tags, active := b.Name, b.Description, b.PriceCents, b.ImageURL, b.Tags, b.Active
	return reqdto.UpdateMenuItemRequest{
		CategoryID:  b.CategoryID,
		Name:        &name,
		Description: &description,
		PriceCents:  &price,
		ImageURL:    &image,
		Tags:        &tags,
		IsActive:    &active,
	}
}

func (b *MenuItemBuilder) BuildView() queries.MenuItemView {
	return queries.MenuItemView{
		ID:          b.ID,
		CategoryID:  b.CategoryID,
		Name:        b.Name,
		Description: b.Description,
		PriceCents:  b.PriceCents,
		ImageURL:    b.ImageURL,
		Tags:        b.Tags,
		SortOrder:   b.SortOrder,
	}
}
