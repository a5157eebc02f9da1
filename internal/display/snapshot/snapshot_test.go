//go:build unit

package snapshot_test

import (
	"testing"
	"time"

	"signage-sync/internal/display/snapshot"
	"signage-sync/internal/domain/layout"
	"signage-sync/internal/domain/promotion"
	"signage-sync/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func promo(start, end time.Duration, kind promotion.DiscountKind, value float64, items ...uuid.UUID) snapshot.Promotion {
	return snapshot.Promotion{
		ID:            uuid.New(),
		Title:         "promo",
		StartTime:     t0.Add(start),
		EndTime:       t0.Add(end),
		DiscountType:  kind,
		DiscountValue: value,
		ItemIDs:       items,
	}
}

func TestDecode(t *testing.T) {
	t.Run("online snapshot keeps lenient layout", func(t *testing.T) {
		storeID := uuid.New()
		raw := `{"offline":false,"store":{"id":"` + storeID.String() + `","name":"Noodle Bar","template":{"grid":{"columns":"wide","rows":2},"theme":"warm"}},` +
			`"categories":[],"menu_items":[],"promotions":[],"generated_at":"2025-06-01T12:00:00Z"}`

		s, err := snapshot.Decode([]byte(raw))
		require.NoError(t, err)
		assert.Equal(t, storeID, s.Store.ID)
		assert.Nil(t, s.Store.Template.Grid.Columns)
		assert.Equal(t, 2, *s.Store.Template.Grid.Rows)
		assert.Equal(t, layout.ThemeWarm, *s.Store.Template.Theme)
		assert.False(t, s.HasPlaylist())
	})

	t.Run("offline marker", func(t *testing.T) {
		s, err := snapshot.Decode([]byte(`{"offline":true}`))
		require.NoError(t, err)
		assert.True(t, s.Offline)
	})

	t.Run("rejects garbage and storeless snapshots", func(t *testing.T) {
		_, err := snapshot.Decode([]byte(`<html>`))
		assert.True(t, errs.Is(err, snapshot.ErrMalformed))
		_, err = snapshot.Decode([]byte(`{"menu_items":[]}`))
		assert.True(t, errs.Is(err, snapshot.ErrMalformed))
	})
}

func TestNextBoundary(t *testing.T) {
	t.Run("earliest future edge of any promotion", func(t *testing.T) {
		promos := []snapshot.Promotion{
			promo(-time.Hour, 70*time.Second, promotion.DiscountFixed, 100),
			promo(10*time.Second, time.Hour, promotion.DiscountPercentage, 10),
		}
		next, ok := snapshot.NextBoundary(promos, t0)
		require.True(t, ok)
		assert.Equal(t, t0.Add(10*time.Second), next)

		next, ok = snapshot.NextBoundary(promos, t0.Add(10*time.Second))
		require.True(t, ok)
		assert.Equal(t, t0.Add(70*time.Second), next, "an edge equal to now is already past")
	})

	t.Run("none left", func(t *testing.T) {
		_, ok := snapshot.NextBoundary([]snapshot.Promotion{promo(-2*time.Hour, -time.Hour, promotion.DiscountFixed, 1)}, t0)
		assert.False(t, ok)
		_, ok = snapshot.NextBoundary(nil, t0)
		assert.False(t, ok)
	})
}

func TestPromoPrice(t *testing.T) {
	itemID := uuid.New()
	item := snapshot.MenuItem{ID: itemID, PriceCents: 1000}

	t.Run("best discount wins", func(t *testing.T) {
		running := []snapshot.Promotion{
			promo(-time.Hour, time.Hour, promotion.DiscountPercentage, 10),
			promo(-time.Hour, time.Hour, promotion.DiscountFixed, 250, itemID),
		}
		price, ok := snapshot.PromoPrice(item, running)
		assert.True(t, ok)
		assert.Equal(t, int64(750), price)
	})

	t.Run("promotion for other items does not apply", func(t *testing.T) {
		running := []snapshot.Promotion{promo(-time.Hour, time.Hour, promotion.DiscountFixed, 250, uuid.New())}
		price, ok := snapshot.PromoPrice(item, running)
		assert.False(t, ok)
		assert.Equal(t, int64(1000), price)
	})

	t.Run("never below zero", func(t *testing.T) {
		running := []snapshot.Promotion{promo(-time.Hour, time.Hour, promotion.DiscountFixed, 5000)}
		price, ok := snapshot.PromoPrice(item, running)
		assert.True(t, ok)
		assert.Equal(t, int64(0), price)
	})

	t.Run("invalid discount is ignored", func(t *testing.T) {
		running := []snapshot.Promotion{promo(-time.Hour, time.Hour, "bogo", 50)}
		_, ok := snapshot.PromoPrice(item, running)
		assert.False(t, ok)
	})
}

func TestRunning(t *testing.T) {
	s := &snapshot.Snapshot{Promotions: []snapshot.Promotion{
		promo(-time.Hour, time.Hour, promotion.DiscountFixed, 1),
		promo(time.Minute, time.Hour, promotion.DiscountFixed, 1),
		promo(-time.Hour, 0, promotion.DiscountFixed, 1),
	}}
	assert.Len(t, s.Running(t0), 2, "the window is closed at both ends")
	assert.Len(t, s.Running(t0.Add(time.Minute)), 2)
	assert.Nil(t, (*snapshot.Snapshot)(nil).Running(t0))
}
