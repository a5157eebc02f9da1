//go:build unit

package clock_test

import (
	"testing"
	"time"

	"signage-sync/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestSlot(t *testing.T) {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("arming replaces the pending timer", func(t *testing.T) {
		clk := clock.NewMockClock(base)
		slot := clock.NewSlot(clk)
		var fired []string

		slot.Arm(time.Second, func() { fired = append(fired, "first") })
		slot.Arm(2*time.Second, func() { fired = append(fired, "second") })

		assert.Equal(t, 1, clk.PendingTimers())
		clk.Add(5 * time.Second)

		assert.Equal(t, []string{"second"}, fired)
		assert.False(t, slot.Pending())
	})

	t.Run("stop defuses the timer", func(t *testing.T) {
		clk := clock.NewMockClock(base)
		slot := clock.NewSlot(clk)
		fired := 0

		slot.Arm(time.Second, func() { fired++ })
		assert.True(t, slot.Stop())
		assert.False(t, slot.Stop())

		clk.Add(time.Minute)
		assert.Equal(t, 0, fired)
	})

	t.Run("callback may re-arm the same slot", func(t *testing.T) {
		clk := clock.NewMockClock(base)
		slot := clock.NewSlot(clk)
		var at []time.Time

		var tick func()
		tick = func() {
			at = append(at, clk.Now())
			if len(at) < 3 {
				slot.Arm(time.Second, tick)
			}
		}
		slot.Arm(time.Second, tick)
		clk.Add(10 * time.Second)

		assert.Equal(t, []time.Time{
			base.Add(1 * time.Second),
			base.Add(2 * time.Second),
			base.Add(3 * time.Second),
		}, at)
	})

	t.Run("negative delay fires immediately on next advance", func(t *testing.T) {
		clk := clock.NewMockClock(base)
		slot := clock.NewSlot(clk)
		fired := false

		slot.Arm(-time.Second, func() { fired = true })
		clk.Add(0)

		assert.True(t, fired)
	})
}
