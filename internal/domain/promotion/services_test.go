//go:build unit

package promotion_test

import (
	"testing"
	"time"

	"signage-sync/internal/domain/promotion"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusAt(t *testing.T) {
	start := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	w, err := promotion.NewWindow(start, end)
	require.NoError(t, err)

	testCases := []struct {
		name   string
		now    time.Time
		active bool
		want   promotion.Status
	}{
		{name: "before start", now: start.Add(-time.Second), active: true, want: promotion.StatusScheduled},
		{name: "at start is inclusive", now: start, active: true, want: promotion.StatusRunning},
		{name: "inside window", now: start.Add(30 * time.Minute), active: true, want: promotion.StatusRunning},
		{name: "at end is inclusive", now: end, active: true, want: promotion.StatusRunning},
		{name: "after end", now: end.Add(time.Nanosecond), active: true, want: promotion.StatusExpired},
		{name: "paused inside window", now: start.Add(time.Minute), active: false, want: promotion.StatusPaused},
		{name: "paused before start", now: start.Add(-time.Minute), active: false, want: promotion.StatusPaused},
		{name: "paused after end is expired", now: end.Add(time.Minute), active: false, want: promotion.StatusExpired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, promotion.StatusAt(tc.now, w, tc.active))
			assert.Equal(t, tc.want == promotion.StatusRunning, promotion.Visible(tc.now, w, tc.active))
		})
	}

	t.Run("instants compare across zones", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		assert.Equal(t, promotion.StatusRunning, promotion.StatusAt(start.In(tokyo), w, true))
	})
}

func TestDiscount(t *testing.T) {
	t.Run("construction", func(t *testing.T) {
		testCases := []struct {
			name  string
			kind  promotion.DiscountKind
			value float64
			errIs error
		}{
			{name: "percentage lower bound excluded", kind: promotion.DiscountPercentage, value: 0, errIs: promotion.ErrInvalidDiscountPercent},
			{name: "percentage small", kind: promotion.DiscountPercentage, value: 0.5},
			{name: "percentage full", kind: promotion.DiscountPercentage, value: 100},
			{name: "percentage over", kind: promotion.DiscountPercentage, value: 100.1, errIs: promotion.ErrInvalidDiscountPercent},
			{name: "fixed positive", kind: promotion.DiscountFixed, value: 150},
			{name: "fixed zero", kind: promotion.DiscountFixed, value: 0, errIs: promotion.ErrInvalidDiscountAmount},
			{name: "fixed fractional cents", kind: promotion.DiscountFixed, value: 1.5, errIs: promotion.ErrInvalidDiscountAmount},
			{name: "unknown kind", kind: "bogo", value: 1, errIs: promotion.ErrInvalidDiscountKind},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := promotion.NewDiscount(tc.kind, tc.value)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
					return
				}
				assert.NoError(t, err)
			})
		}
	})

	t.Run("apply", func(t *testing.T) {
		pct, _ := promotion.NewDiscount(promotion.DiscountPercentage, 25)
		fixed, _ := promotion.NewDiscount(promotion.DiscountFixed, 300)
		all, _ := promotion.NewDiscount(promotion.DiscountPercentage, 100)

		assert.Equal(t, int64(750), pct.Apply(1000))
		assert.Equal(t, int64(750), pct.Apply(999))
		assert.Equal(t, int64(700), fixed.Apply(1000))
		assert.Equal(t, int64(0), fixed.Apply(200))
		assert.Equal(t, int64(0), all.Apply(1234))
	})
}

func TestAppliesTo(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	assert.True(t, promotion.AppliesTo(nil, a))
	assert.True(t, promotion.AppliesTo([]uuid.UUID{a}, a))
	assert.False(t, promotion.AppliesTo([]uuid.UUID{a}, b))
}

func TestNextBoundary(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	window := func(start, end time.Duration) promotion.Window {
		return promotion.Window{Start: now.Add(start), End: now.Add(end)}
	}

	t.Run("no windows", func(t *testing.T) {
		_, ok := promotion.NextBoundary(now)
		assert.False(t, ok)
	})

	t.Run("upcoming start wins over later end", func(t *testing.T) {
		next, ok := promotion.NextBoundary(now, window(10*time.Second, 70*time.Second))
		require.True(t, ok)
		assert.Equal(t, now.Add(10*time.Second), next)
	})

	t.Run("running promotion yields its end", func(t *testing.T) {
		next, ok := promotion.NextBoundary(now, window(-time.Minute, time.Minute), window(5*time.Minute, 6*time.Minute))
		require.True(t, ok)
		assert.Equal(t, now.Add(time.Minute), next)
	})

	t.Run("boundary equal to now is not in the future", func(t *testing.T) {
		next, ok := promotion.NextBoundary(now, window(0, 2*time.Minute))
		require.True(t, ok)
		assert.Equal(t, now.Add(2*time.Minute), next)
	})

	t.Run("all in the past", func(t *testing.T) {
		_, ok := promotion.NextBoundary(now, window(-2*time.Hour, -time.Hour))
		assert.False(t, ok)
	})
}
