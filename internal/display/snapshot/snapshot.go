// Package snapshot is the display-side model of what the server renders for a
// store. A snapshot is replaced wholesale on every fetch and never patched.
package snapshot

import (
	"encoding/json"
	"time"

	"signage-sync/internal/domain/layout"
	"signage-sync/internal/domain/playlist"
	"signage-sync/internal/domain/promotion"
	"signage-sync/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrMalformed = errs.New("malformed display snapshot")

type Store struct {
	ID       uuid.UUID     `json:"id"`
	Name     string        `json:"name"`
	LogoURL  string        `json:"logo_url"`
	Template layout.Config `json:"template"`
}

type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"`
}

type MenuItem struct {
	ID          uuid.UUID  `json:"id"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	PriceCents  int64      `json:"price_cents"`
	ImageURL    string     `json:"image_url"`
	Tags        []string   `json:"tags"`
	SortOrder   int        `json:"sort_order"`
}

// Promotion is always active: the server only sends active promotions that
// have not ended, so running means the window contains now.
type Promotion struct {
	ID            uuid.UUID              `json:"id"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	StartTime     time.Time              `json:"start_time"`
	EndTime       time.Time              `json:"end_time"`
	DiscountType  promotion.DiscountKind `json:"discount_type"`
	DiscountValue float64                `json:"discount_value"`
	ItemIDs       []uuid.UUID            `json:"item_ids"`
}

func (p Promotion) Window() promotion.Window {
	return promotion.Window{Start: p.StartTime, End: p.EndTime}
}

func (p Promotion) Running(now time.Time) bool {
	return promotion.Visible(now, p.Window(), true)
}

func (p Promotion) AppliesTo(itemID uuid.UUID) bool {
	return promotion.AppliesTo(p.ItemIDs, itemID)
}

// Apply returns the discounted price. A discount the domain would reject
// leaves the price unchanged.
func (p Promotion) Apply(priceCents int64) int64 {
	d, err := promotion.NewDiscount(p.DiscountType, p.DiscountValue)
	if err != nil {
		return priceCents
	}
	return d.Apply(priceCents)
}

type Playlist struct {
	ID     uuid.UUID        `json:"id"`
	Name   string           `json:"name"`
	Slides []playlist.Slide `json:"slides"`
}

type Snapshot struct {
	Offline     bool        `json:"offline"`
	Store       *Store      `json:"store"`
	Categories  []Category  `json:"categories"`
	MenuItems   []MenuItem  `json:"menu_items"`
	Promotions  []Promotion `json:"promotions"`
	Playlist    *Playlist   `json:"playlist,omitempty"`
	GeneratedAt time.Time   `json:"generated_at"`
}

// Decode reads a snapshot response body. An online snapshot without a store
// is rejected.
func Decode(raw []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, errs.Mark(err, ErrMalformed)
	}
	if !s.Offline && s.Store == nil {
		return nil, ErrMalformed
	}
	return &s, nil
}

// HasPlaylist reports whether the snapshot cycles slides instead of pages.
func (s *Snapshot) HasPlaylist() bool {
	return s != nil && s.Playlist != nil && len(s.Playlist.Slides) > 0
}

func (s *Snapshot) Running(now time.Time) []Promotion {
	if s == nil {
		return nil
	}
	var out []Promotion
	for _, p := range s.Promotions {
		if p.Running(now) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Snapshot) CategoryName(id *uuid.UUID) string {
	if s == nil || id == nil {
		return ""
	}
	for _, c := range s.Categories {
		if c.ID == *id {
			return c.Name
		}
	}
	return ""
}

func (s *Snapshot) Template() *layout.Config {
	if s == nil || s.Store == nil {
		return nil
	}
	return &s.Store.Template
}

// NextBoundary returns the earliest promotion start or end strictly after now.
func NextBoundary(promotions []Promotion, now time.Time) (time.Time, bool) {
	windows := make([]promotion.Window, len(promotions))
	for i, p := range promotions {
		windows[i] = p.Window()
	}
	return promotion.NextBoundary(now, windows...)
}

// PromoPrice is the lowest price any running promotion gives the item. ok is
// false when no running promotion lowers it.
func PromoPrice(item MenuItem, running []Promotion) (int64, bool) {
	best := item.PriceCents
	for _, p := range running {
		if !p.AppliesTo(item.ID) {
			continue
		}
		if price := p.Apply(item.PriceCents); price < best {
			best = price
		}
	}
	return best, best < item.PriceCents
}
