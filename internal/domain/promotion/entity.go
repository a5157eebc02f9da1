package promotion

import (
	"strings"
	"time"

	"signage-sync/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
)

var (
	ErrEmptyTitle          = errs.Validation("promotion title is required")
	ErrTitleTooLong        = errs.Validation("promotion title is too long")
	ErrDescriptionTooLong  = errs.Validation("promotion description is too long")
	ErrMissingStore        = errs.Validation("promotion must belong to a store")
	ErrDuplicateItemTarget = errs.Validation("promotion item ids must be unique")
)

type Promotion struct {
	id          uuid.UUID
	storeID     uuid.UUID
	title       string
	description string
	window      Window
	discount    Discount
	itemIDs     []uuid.UUID
	active      bool
}

type Params struct {
	ID          uuid.UUID
	StoreID     uuid.UUID
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Discount    Discount
	ItemIDs     []uuid.UUID
	Active      bool
}

func NewPromotion(p Params) (*Promotion, error) {
	if p.StoreID == uuid.Nil {
		return nil, ErrMissingStore
	}
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len([]rune(title)) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	if len([]rune(p.Description)) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}
	window, err := NewWindow(p.StartTime, p.EndTime)
	if err != nil {
		return nil, err
	}
	if p.Discount.IsZero() {
		return nil, ErrInvalidDiscountKind
	}
	seen := make(map[uuid.UUID]struct{}, len(p.ItemIDs))
	for _, id := range p.ItemIDs {
		if _, dup := seen[id]; dup {
			return nil, ErrDuplicateItemTarget
		}
		seen[id] = struct{}{}
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Promotion{
		id:          id,
		storeID:     p.StoreID,
		title:       title,
		description: p.Description,
		window:      window,
		discount:    p.Discount,
		itemIDs:     append([]uuid.UUID(nil), p.ItemIDs...),
		active:      p.Active,
	}, nil
}

func (p *Promotion) ID() uuid.UUID       { return p.id }
func (p *Promotion) StoreID() uuid.UUID  { return p.storeID }
func (p *Promotion) Title() string       { return p.title }
func (p *Promotion) Description() string { return p.description }
func (p *Promotion) Window() Window      { return p.window }
func (p *Promotion) Discount() Discount  { return p.discount }
func (p *Promotion) IsActive() bool      { return p.active }

func (p *Promotion) ItemIDs() []uuid.UUID {
	return append([]uuid.UUID(nil), p.itemIDs...)
}

func (p *Promotion) Status(now time.Time) Status {
	return StatusAt(now, p.window, p.active)
}

func (p *Promotion) AppliesTo(itemID uuid.UUID) bool {
	return AppliesTo(p.itemIDs, itemID)
}
