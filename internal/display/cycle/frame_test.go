//go:build unit

package cycle_test

import (
	"testing"
	"time"

	"signage-sync/internal/display/cycle"
	"signage-sync/internal/display/snapshot"
	"signage-sync/internal/domain/layout"
	"signage-sync/internal/domain/playlist"
	"signage-sync/internal/domain/promotion"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func items(n int) []snapshot.MenuItem {
	out := make([]snapshot.MenuItem, n)
	for i := range out {
		out[i] = snapshot.MenuItem{ID: uuid.New(), Name: "item", PriceCents: 1000, Tags: []string{"spicy"}, SortOrder: i}
	}
	return out
}

func runningPromo(title string, targets ...uuid.UUID) snapshot.Promotion {
	return snapshot.Promotion{
		ID:            uuid.New(),
		Title:         title,
		StartTime:     t0.Add(-time.Hour),
		EndTime:       t0.Add(time.Hour),
		DiscountType:  promotion.DiscountPercentage,
		DiscountValue: 20,
		ItemIDs:       targets,
	}
}

func flatSnapshot(menu []snapshot.MenuItem) *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Store:     &snapshot.Store{ID: uuid.New(), Name: "Noodle Bar", LogoURL: "https://cdn.example.com/logo.png"},
		MenuItems: menu,
	}
}

func TestCompose_NoContent(t *testing.T) {
	assert.Equal(t, cycle.Frame{Empty: true}, cycle.Compose(nil, cycle.State{}, t0))
	assert.Equal(t, cycle.Frame{Offline: true}, cycle.Compose(&snapshot.Snapshot{Offline: true}, cycle.State{SlideIndex: 3}, t0))
}

func TestCompose_FlatMode(t *testing.T) {
	menu := items(10)
	snap := flatSnapshot(menu)

	f := cycle.Compose(snap, cycle.State{Visible: true}, t0)
	assert.Equal(t, cycle.ModeFlat, f.Mode)
	assert.Equal(t, 2, f.Count, "ten items on a 3x3 grid")
	require.Len(t, f.Items, 9)
	assert.Equal(t, menu[0].ID, f.Items[0].ID)
	assert.False(t, f.Placeholder)

	f = cycle.Compose(snap, cycle.State{PageIndex: 5}, t0)
	assert.Equal(t, 1, f.Index)
	require.Len(t, f.Items, 1)
	assert.Equal(t, menu[9].ID, f.Items[0].ID)

	t.Run("template grid sets the page size", func(t *testing.T) {
		snap := flatSnapshot(menu)
		snap.Store.Template = layout.Config{Grid: &layout.GridConfig{Columns: ptr(2), Rows: ptr(2)}}
		f := cycle.Compose(snap, cycle.State{}, t0)
		assert.Equal(t, 3, f.Count)
		assert.Len(t, f.Items, 4)
	})

	t.Run("no items is a placeholder frame", func(t *testing.T) {
		f := cycle.Compose(flatSnapshot(nil), cycle.State{}, t0)
		assert.True(t, f.Placeholder)
		assert.Equal(t, 1, f.Count)
		assert.Empty(t, f.Items)
	})
}

func TestCompose_PlaylistMode(t *testing.T) {
	menu := items(5)
	missing := uuid.New()
	style := layout.ItemStyle{Color: ptr("#FF0000"), ShowTags: ptr(false)}

	snap := flatSnapshot(menu)
	snap.Store.Template = layout.Config{Theme: ptr(layout.ThemeSlate)}
	snap.Playlist = &snapshot.Playlist{ID: uuid.New(), Slides: []playlist.Slide{
		{
			Label:      "Picks",
			Layout:     layout.Config{Grid: &layout.GridConfig{Columns: ptr(2), Rows: ptr(1)}},
			ItemIDs:    []uuid.UUID{menu[3].ID, missing, menu[1].ID, menu[0].ID},
			ItemStyles: layout.ItemStyles{menu[3].ID: style},
		},
		{Label: "All"},
		{Label: "Gone", ItemIDs: []uuid.UUID{missing}},
	}}

	t.Run("selection order, inactive items dropped, capped at capacity", func(t *testing.T) {
		f := cycle.Compose(snap, cycle.State{}, t0)
		assert.Equal(t, cycle.ModePlaylist, f.Mode)
		assert.Equal(t, "Picks", f.Label)
		assert.Equal(t, layout.ThemeSlate, f.Layout.Theme, "template fills fields the slide leaves out")
		require.Len(t, f.Items, 2)

		want := cycle.Item{
			ID:         menu[3].ID,
			Name:       "item",
			PriceCents: 1000,
			Style: layout.ResolvedItemStyle{
				Color:      "#FF0000",
				Size:       layout.ItemSizeMedium,
				ShowTags:   false,
				ImageFocus: layout.Focus{X: 0.5, Y: 0.5},
			},
		}
		if diff := cmp.Diff(want, f.Items[0]); diff != "" {
			t.Errorf("styled item mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, menu[1].ID, f.Items[1].ID)
		assert.Equal(t, layout.DefaultItemStyle(), f.Items[1].Style)
		assert.Equal(t, []string{"spicy"}, f.Items[1].Tags)
	})

	t.Run("empty selection shows every active item", func(t *testing.T) {
		f := cycle.Compose(snap, cycle.State{SlideIndex: 1}, t0)
		assert.Len(t, f.Items, 5)
		assert.Equal(t, 3, f.Count)
	})

	t.Run("selection with nothing active is a placeholder", func(t *testing.T) {
		f := cycle.Compose(snap, cycle.State{SlideIndex: 2}, t0)
		assert.True(t, f.Placeholder)
	})

	t.Run("index wraps", func(t *testing.T) {
		f := cycle.Compose(snap, cycle.State{SlideIndex: 4}, t0)
		assert.Equal(t, "All", f.Label)
		assert.Equal(t, 1, f.Index)
	})
}

func TestCompose_BannerAndPrices(t *testing.T) {
	menu := items(2)
	snap := flatSnapshot(menu)
	snap.Promotions = []snapshot.Promotion{
		runningPromo("Lunch deal", menu[0].ID),
		runningPromo("Happy hour", menu[0].ID),
		{Title: "Tomorrow", StartTime: t0.Add(24 * time.Hour), EndTime: t0.Add(25 * time.Hour)},
	}

	f := cycle.Compose(snap, cycle.State{BannerIndex: 3}, t0)
	require.NotNil(t, f.Banner)
	assert.Equal(t, "Happy hour", f.Banner.Title)
	assert.Equal(t, 2, f.Banner.Count, "upcoming promotions are not on the banner")
	assert.Equal(t, layout.BannerBottom, f.Banner.Position)

	require.NotNil(t, f.Items[0].PromoPriceCents)
	assert.Equal(t, int64(800), *f.Items[0].PromoPriceCents)
	assert.Nil(t, f.Items[1].PromoPriceCents)

	t.Run("hidden banner", func(t *testing.T) {
		snap.Store.Template = layout.Config{Banner: &layout.BannerConfig{Visible: ptr(false)}}
		defer func() { snap.Store.Template = layout.Config{} }()
		assert.Nil(t, cycle.Compose(snap, cycle.State{}, t0).Banner)
	})

	t.Run("no running promotion", func(t *testing.T) {
		f := cycle.Compose(snap, cycle.State{}, t0.Add(2*time.Hour))
		assert.Nil(t, f.Banner)
		assert.Nil(t, f.Items[0].PromoPriceCents)
	})
}

func TestCompose_Header(t *testing.T) {
	menu := items(1)
	categoryID := uuid.New()
	menu[0].CategoryID = &categoryID
	snap := flatSnapshot(menu)
	snap.Categories = []snapshot.Category{{ID: categoryID, Name: "Noodles"}}

	f := cycle.Compose(snap, cycle.State{}, t0.Add(5*time.Minute))
	assert.Equal(t, cycle.Header{
		Visible:  true,
		Name:     "Noodle Bar",
		LogoURL:  "https://cdn.example.com/logo.png",
		Clock:    "12:05",
		NameSize: layout.NameSizeLarge,
	}, f.Header)
	assert.Equal(t, "Noodles", f.Items[0].Category)

	snap.Store.Template = layout.Config{
		Header: &layout.HeaderConfig{ShowClock: ptr(false), NameSize: ptr(layout.NameSize("huge"))},
		Grid:   &layout.GridConfig{ShowCategoryLabels: ptr(false)},
	}
	f = cycle.Compose(snap, cycle.State{}, t0)
	assert.Empty(t, f.Header.Clock)
	assert.Equal(t, layout.NameSizeLarge, f.Header.NameSize, "invalid size falls back")
	assert.Empty(t, f.Items[0].Category)
}
