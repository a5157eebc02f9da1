// Package cycle decides what a display shows at any moment. Compose is a pure
// function of snapshot, cycling state and time; Engine drives the state with
// timers.
package cycle

import (
	"time"

	"signage-sync/internal/display/snapshot"
	"signage-sync/internal/domain/layout"

	"github.com/google/uuid"
)

type Mode string

const (
	ModeNone     Mode = ""
	ModePlaylist Mode = "playlist"
	ModeFlat     Mode = "flat"
)

const clockFormat = "15:04"

// State is the cycling position. Indices are taken modulo the current
// content, so a stale index never points past the end.
type State struct {
	SlideIndex  int
	PageIndex   int
	BannerIndex int
	// Visible is false during a crossfade.
	Visible bool
	// RenderKey changes whenever the content behind the crossfade changes.
	RenderKey int
}

type Frame struct {
	Offline bool
	// Empty means there is no snapshot yet.
	Empty bool
	// Placeholder means the layout has no items to show.
	Placeholder bool

	Mode   Mode
	Layout layout.Resolved
	Header Header
	Label  string
	Items  []Item
	Banner *Banner

	// Index and Count locate the slide or page in the rotation.
	Index int
	Count int

	Visible   bool
	RenderKey int
}

type Header struct {
	Visible  bool
	Name     string
	LogoURL  string
	Clock    string
	NameSize layout.NameSize
}

type Item struct {
	ID              uuid.UUID
	Name            string
	Description     string
	Category        string
	PriceCents      int64
	PromoPriceCents *int64
	ImageURL        string
	Tags            []string
	Style           layout.ResolvedItemStyle
}

type Banner struct {
	Title       string
	Description string
	Position    layout.BannerPosition
	Index       int
	Count       int
}

// Compose computes the frame for snap at now.
func Compose(snap *snapshot.Snapshot, st State, now time.Time) Frame {
	switch {
	case snap == nil:
		return Frame{Empty: true}
	case snap.Offline:
		return Frame{Offline: true}
	}

	var (
		f      Frame
		styles layout.ItemStyles
		items  []snapshot.MenuItem
	)
	if snap.HasPlaylist() {
		slides := snap.Playlist.Slides
		idx := mod(st.SlideIndex, len(slides))
		slide := slides[idx]

		f.Mode = ModePlaylist
		f.Layout = layout.Resolve(&slide.Layout, snap.Template())
		f.Label = slide.Label
		f.Index, f.Count = idx, len(slides)
		styles = slide.ItemStyles
		items = truncate(selectItems(snap.MenuItems, slide.ItemIDs), f.Layout.Capacity())
	} else {
		f.Mode = ModeFlat
		f.Layout = layout.Resolve(nil, snap.Template())
		pages := pageCount(len(snap.MenuItems), f.Layout.Capacity())
		idx := mod(st.PageIndex, pages)
		f.Index, f.Count = idx, pages
		items = page(snap.MenuItems, idx, f.Layout.Capacity())
	}

	running := snap.Running(now)
	f.Items = make([]Item, len(items))
	for i, it := range items {
		f.Items[i] = composeItem(snap, it, styles.For(it.ID), running, f.Layout.Grid.ShowCategoryLabels)
	}
	f.Placeholder = len(f.Items) == 0

	f.Header = composeHeader(snap.Store, f.Layout.Header, now)
	if len(running) > 0 && f.Layout.Banner.Visible {
		bi := mod(st.BannerIndex, len(running))
		p := running[bi]
		f.Banner = &Banner{
			Title:       p.Title,
			Description: p.Description,
			Position:    f.Layout.Banner.Position,
			Index:       bi,
			Count:       len(running),
		}
	}

	f.Visible = st.Visible
	f.RenderKey = st.RenderKey
	return f
}

func composeItem(snap *snapshot.Snapshot, it snapshot.MenuItem, style layout.ResolvedItemStyle, running []snapshot.Promotion, labels bool) Item {
	out := Item{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		PriceCents:  it.PriceCents,
		ImageURL:    it.ImageURL,
		Tags:        it.Tags,
		Style:       style,
	}
	if labels {
		out.Category = snap.CategoryName(it.CategoryID)
	}
	if price, ok := snapshot.PromoPrice(it, running); ok {
		out.PromoPriceCents = &price
	}
	if !style.ShowTags {
		out.Tags = nil
	}
	return out
}

func composeHeader(store *snapshot.Store, h layout.ResolvedHeader, now time.Time) Header {
	out := Header{Visible: h.Visible, NameSize: h.NameSize}
	if !h.Visible || store == nil {
		return out
	}
	if h.ShowName {
		out.Name = store.Name
	}
	if h.ShowLogo {
		out.LogoURL = store.LogoURL
	}
	if h.ShowClock {
		out.Clock = now.Format(clockFormat)
	}
	return out
}

// selectItems keeps the selection order and drops ids that are not in the
// active menu. An empty selection means every active item.
func selectItems(active []snapshot.MenuItem, ids []uuid.UUID) []snapshot.MenuItem {
	if len(ids) == 0 {
		return active
	}
	byID := make(map[uuid.UUID]snapshot.MenuItem, len(active))
	for _, it := range active {
		byID[it.ID] = it
	}
	out := make([]snapshot.MenuItem, 0, len(ids))
	for _, id := range ids {
		if it, ok := byID[id]; ok {
			out = append(out, it)
		}
	}
	return out
}

func truncate(items []snapshot.MenuItem, n int) []snapshot.MenuItem {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func pageCount(items, capacity int) int {
	if items == 0 || capacity <= 0 {
		return 1
	}
	return (items + capacity - 1) / capacity
}

func page(items []snapshot.MenuItem, idx, capacity int) []snapshot.MenuItem {
	start := idx * capacity
	if start >= len(items) {
		return nil
	}
	end := start + capacity
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func mod(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
