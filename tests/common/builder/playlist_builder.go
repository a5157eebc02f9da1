//go:build unit || e2e

package builder

import (
	"signage-sync/internal/domain/layout"
	"signage-sync/internal/domain/playlist"
	reqdto "signage-sync/internal/handler/dto/request"
	"signage-sync/internal/usecase/queries"

	"github.com/google/uuid"
)

type PlaylistBuilder struct {
	ID      uuid.UUID
	StoreID uuid.UUID
	Name    string
	Slides  []playlist.Slide
}

func NewPlaylistBuilder() *PlaylistBuilder {
	theme := layout.ThemeWarm
	return &PlaylistBuilder{
		ID:      uuid.New(),
		StoreID: uuid.New(),
		Name:    fake.Lorem().Word() + " rotation",
		Slides: []playlist.Slide{
			{
				Label:       "Mains",
				DurationSec: 12,
				Layout:      layout.Config{Theme: &theme},
				ItemIDs:     []uuid.UUID{uuid.New(), uuid.New()},
			},
			{
				Label:       "Drinks",
				DurationSec: playlist.DefaultSlideDurationSec,
				ItemIDs:     []uuid.UUID{},
			},
		},
	}
}

func (b *PlaylistBuilder) With(mutate func(*PlaylistBuilder)) *PlaylistBuilder {
	mutate(b)
	return b
}

func (b *PlaylistBuilder) BuildDomain() (*playlist.Playlist, error) {
	return playlist.NewPlaylist(b.ID, b.StoreID, b.Name, b.Slides)
}

func (b *PlaylistBuilder) BuildCreateRequestDTO() reqdto.CreatePlaylistRequest {
	return reqdto.CreatePlaylistRequest{
		StoreID:         b.StoreID,
		PlaylistRequest: b.BuildUpdateRequestDTO(),
	}
}

func (b *PlaylistBuilder) BuildUpdateRequestDTO() reqdto.PlaylistRequest {
	slides := make([]reqdto.SlideRequest, len(b.Slides))
	for i, s := range b.Slides {
		slides[i] = reqdto.SlideRequest{
			Label:       s.Label,
			DurationSec: s.DurationSec,
			Layout:      s.Layout,
			ItemIDs:     s.ItemIDs,
			ItemStyles:  s.ItemStyles,
		}
	}
	return reqdto.PlaylistRequest{Name: b.Name, Slides: slides}
}

func (b *PlaylistBuilder) BuildView() *queries.PlaylistView {
	return &queries.PlaylistView{
		ID:      b.ID,
		StoreID: b.StoreID,
		Name:    b.Name,
		Slides:  b.Slides,
	}
}
