package menu

import (
	"strings"

	"signage-sync/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
	MaxTags              = 10
)

var (
	ErrEmptyName          = errs.Validation("menu item name is required")
	ErrNameTooLong        = errs.Validation("menu item name is too long")
	ErrDescriptionTooLong = errs.Validation("menu item description is too long")
	ErrNegativePrice      = errs.Validation("menu item price must not be negative")
	ErrTooManyTags        = errs.Validation("menu item has too many tags")
)

type Item struct {
	id          uuid.UUID
	storeID     uuid.UUID
	categoryID  *uuid.UUID
	name        string
	description string
	priceCents  int64
	imageURL    string
	tags        []string
	active      bool
	sortOrder   SortOrder
}

type ItemParams struct {
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

func NewItem(p ItemParams) (*Item, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len([]rune(name)) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if len([]rune(p.Description)) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}
	if p.PriceCents < 0 {
		return nil, ErrNegativePrice
	}
	if len(p.Tags) > MaxTags {
		return nil, ErrTooManyTags
	}
	order, err := NewSortOrder(p.SortOrder)
	if err != nil {
		return nil, err
	}
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	tags := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return &Item{
		id:          id,
		storeID:     p.StoreID,
		categoryID:  p.CategoryID,
		name:        name,
		description: p.Description,
		priceCents:  p.PriceCents,
		imageURL:    p.ImageURL,
		tags:        tags,
		active:      p.Active,
		sortOrder:   order,
	}, nil
}

func (i *Item) ID() uuid.UUID          { return i.id }
func (i *Item) StoreID() uuid.UUID     { return i.storeID }
func (i *Item) CategoryID() *uuid.UUID { return i.categoryID }
func (i *Item) Name() string           { return i.name }
func (i *Item) Description() string    { return i.description }
func (i *Item) PriceCents() int64      { return i.priceCents }
func (i *Item) ImageURL() string       { return i.imageURL }
func (i *Item) Tags() []string         { return i.tags }
func (i *Item) IsActive() bool         { return i.active }
func (i *Item) SortOrder() SortOrder   { return i.sortOrder }
