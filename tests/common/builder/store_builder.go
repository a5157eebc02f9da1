//go:build unit || e2e

package builder

import (
	"signage-sync/internal/domain/store"
	reqdto "signage-sync/internal/handler/dto/request"
	"signage-sync/internal/usecase/queries"

	"github.com/google/uuid"
)

type StoreBuilder struct {
	ID                uuid.UUID
	Name              string
	LogoURL           string
	Active            bool
	TemplateID        *uuid.UUID
	DefaultPlaylistID *uuid.UUID
}

func NewStoreBuilder() *StoreBuilder {
	return &StoreBuilder{
		ID:      uuid.New(),
		Name:    fake.Company().Name(),
		LogoURL: "https://cdn.example.com/logos/" + fake.Lorem().Word() + ".png",
		Active:  true,
	}
}

func (b *StoreBuilder) With(mutate func(*StoreBuilder)) *StoreBuilder {
	mutate(b)
	return b
}

func (b *StoreBuilder) BuildDomain() (*store.Store, error) {
	return store.NewStore(store.Params{
		ID:                b.ID,
		Name:              b.Name,
		LogoURL:           b.LogoURL,
		Active:            b.Active,
		TemplateID:        b.TemplateID,
		DefaultPlaylistID: b.DefaultPlaylistID,
	})
}

func (b *StoreBuilder) BuildUpdateRequestDTO() reqdto.UpdateStoreRequest {
	name, logo, active := b.Name, b.LogoURL, b.Active
	return reqdto.UpdateStoreRequest{
		Name:              &name,
		LogoURL:           &logo,
		IsActive:          &active,
		TemplateID:        b.TemplateID,
		DefaultPlaylistID: b.DefaultPlaylistID,
	}
}

func (b *StoreBuilder) BuildView() *queries.StoreView {
	return &queries.StoreView{
		ID:                b.ID,
		Name:              b.Name,
		LogoURL:           b.LogoURL,
		IsActive:          b.Active,
		TemplateID:        b.TemplateID,
		DefaultPlaylistID: b.DefaultPlaylistID,
	}
}
