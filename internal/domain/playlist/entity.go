package playlist

import (
	"strings"

	"signage-sync/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxNameLength = 100
	MaxSlides     = 50
)

var (
	ErrEmptyName     = errs.Validation("playlist name is required")
	ErrNameTooLong   = errs.Validation("playlist name is too long")
	ErrNoSlides      = errs.Validation("playlist needs at least one slide")
	ErrTooManySlides = errs.Validation("playlist has too many slides")
	ErrMissingStore  = errs.Validation("playlist must belong to a store")
)

type Playlist struct {
	id      uuid.UUID
	storeID uuid.UUID
	name    string
	slides  []Slide
}

func NewPlaylist(id, storeID uuid.UUID, name string, slides []Slide) (*Playlist, error) {
	if storeID == uuid.Nil {
		return nil, ErrMissingStore
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len([]rune(name)) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if len(slides) == 0 {
		return nil, ErrNoSlides
	}
	if len(slides) > MaxSlides {
		return nil, ErrTooManySlides
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Playlist{
		id:      id,
		storeID: storeID,
		name:    name,
		slides:  append([]Slide(nil), slides...),
	}, nil
}

func (p *Playlist) ID() uuid.UUID      { return p.id }
func (p *Playlist) StoreID() uuid.UUID { return p.storeID }
func (p *Playlist) Name() string       { return p.name }

func (p *Playlist) Slides() []Slide {
	return append([]Slide(nil), p.slides...)
}
