package store

import (
	"net/url"
	"strings"

	"signage-sync/internal/domain/layout"
	"signage-sync/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxNameLength = 100

var (
	ErrEmptyName   = errs.Validation("store name is required")
	ErrNameTooLong = errs.Validation("store name is too long")
	ErrInvalidLogo = errs.Validation("store logo must be an absolute http(s) url")
)

type Store struct {
	id                uuid.UUID
	name              string
	logoURL           string
	active            bool
	templateID        *uuid.UUID
	defaultPlaylistID *uuid.UUID
}

type Params struct {
	ID                uuid.UUID
	Name              string
	LogoURL           string
	Active            bool
	TemplateID        *uuid.UUID
	DefaultPlaylistID *uuid.UUID
}

func NewStore(p Params) (*Store, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len([]rune(name)) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if err := validateLogo(p.LogoURL); err != nil {
		return nil, err
	}
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Store{
		id:                id,
		name:              name,
		logoURL:           p.LogoURL,
		active:            p.Active,
		templateID:        p.TemplateID,
		defaultPlaylistID: p.DefaultPlaylistID,
	}, nil
}

func validateLogo(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidLogo
	}
	return nil
}

func (s *Store) ID() uuid.UUID                 { return s.id }
func (s *Store) Name() string                  { return s.name }
func (s *Store) LogoURL() string               { return s.logoURL }
func (s *Store) IsActive() bool                { return s.active }
func (s *Store) TemplateID() *uuid.UUID        { return s.templateID }
func (s *Store) DefaultPlaylistID() *uuid.UUID { return s.defaultPlaylistID }

// Template is a named layout a store can point at. It sits between a slide's
// own layout and the built-in default.
type Template struct {
	ID     uuid.UUID     `json:"id"`
	Name   string        `json:"name"`
	Layout layout.Config `json:"layout"`
}
