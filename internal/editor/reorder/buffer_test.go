//go:build unit

package reorder_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"signage-sync/internal/editor/reorder"
	"signage-sync/internal/pkg/clock"
	"signage-sync/internal/pkg/errs"
	reordermock "signage-sync/tests/mock/reorder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type harness struct {
	buffer    *reorder.Buffer
	writer    *reordermock.MockWriter
	clock     *clock.MockClock
	refetches int
	orders    [][]uuid.UUID
}

func newHarness(t *testing.T, baseline map[uuid.UUID]int) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &harness{
		writer: reordermock.NewMockWriter(ctrl),
		clock:  clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h.buffer = reorder.NewBuffer(h.writer, func(context.Context) { h.refetches++ }, h.clock, logger)
	h.buffer.Reset(baseline)
	h.buffer.OnLocal(func(order []uuid.UUID) { h.orders = append(h.orders, order) })
	t.Cleanup(h.buffer.Close)
	return h
}

func (h *harness) lastOrder() []uuid.UUID {
	if len(h.orders) == 0 {
		return nil
	}
	return h.orders[len(h.orders)-1]
}

func ids(n int) []uuid.UUID {
	out := make([]uuid.UUID, n)
	for i := range out {
		out[i] = uuid.New()
	}
	return out
}

func TestBuffer_DragsCoalesceIntoOneBatch(t *testing.T) {
	it := ids(3)
	a, b, c := it[0], it[1], it[2]
	h := newHarness(t, map[uuid.UUID]int{a: 0, b: 1, c: 2})

	h.buffer.Reorder([]uuid.UUID{b, a, c})
	h.clock.Add(200 * time.Millisecond)
	h.buffer.Reorder([]uuid.UUID{b, c, a})
	h.clock.Add(200 * time.Millisecond)
	h.buffer.Reorder([]uuid.UUID{c, b, a})

	assert.Equal(t, []uuid.UUID{c, b, a}, h.lastOrder(), "local order applies before any write")
	assert.Len(t, h.orders, 3)
	assert.Equal(t, 2, h.buffer.Pending(), "b ends where it started")

	h.clock.Add(reorder.DefaultDebounce - time.Millisecond)

	gomock.InOrder(
		h.writer.EXPECT().UpdateSortOrder(gomock.Any(), c, 0).Return(nil),
		h.writer.EXPECT().UpdateSortOrder(gomock.Any(), a, 2).Return(nil),
	)
	h.clock.Add(time.Millisecond)

	assert.Zero(t, h.buffer.Pending())
	assert.Zero(t, h.clock.PendingTimers())
	assert.Zero(t, h.refetches)
}

func TestBuffer_Idempotent(t *testing.T) {
	it := ids(3)
	a, b, c := it[0], it[1], it[2]
	h := newHarness(t, map[uuid.UUID]int{a: 0, b: 1, c: 2})

	t.Run("reordering into the confirmed order writes nothing", func(t *testing.T) {
		h.buffer.Reorder([]uuid.UUID{b, a})
		h.buffer.Reorder([]uuid.UUID{a, b})
		assert.Zero(t, h.buffer.Pending())
		h.clock.Add(time.Second)
	})

	t.Run("flushing twice sends the diff once", func(t *testing.T) {
		h.writer.EXPECT().UpdateSortOrder(gomock.Any(), c, 1).Return(nil)
		h.writer.EXPECT().UpdateSortOrder(gomock.Any(), b, 2).Return(nil)
		h.buffer.Reorder([]uuid.UUID{c, b})
		require.NoError(t, h.buffer.Flush(context.Background()))
		require.NoError(t, h.buffer.Flush(context.Background()))

		h.buffer.Reorder([]uuid.UUID{c, b})
		assert.Zero(t, h.buffer.Pending())
		h.clock.Add(time.Second)
	})
}

func TestBuffer_FailureDiscardsAndRefetches(t *testing.T) {
	it := ids(3)
	a, b, c := it[0], it[1], it[2]
	h := newHarness(t, map[uuid.UUID]int{a: 0, b: 1, c: 2})

	h.buffer.Reorder([]uuid.UUID{c, b, a})
	h.writer.EXPECT().UpdateSortOrder(gomock.Any(), c, 0).Return(errors.New("409 conflict"))

	err := h.buffer.Flush(context.Background())

	require.Error(t, err)
	assert.True(t, errs.Is(err, reorder.ErrConflict))
	assert.Equal(t, 1, h.refetches)
	assert.Zero(t, h.buffer.Pending(), "pending edits are not retried")
	assert.Zero(t, h.clock.PendingTimers())

	// The refetch result becomes the new baseline.
	h.buffer.Reset(map[uuid.UUID]int{a: 0, b: 1, c: 2})
	assert.Equal(t, []uuid.UUID{a, b, c}, h.lastOrder())
}

func TestBuffer_PartialFailureKeepsConfirmedWrites(t *testing.T) {
	it := ids(3)
	a, b, c := it[0], it[1], it[2]
	h := newHarness(t, map[uuid.UUID]int{a: 0, b: 1, c: 2})

	h.buffer.Reorder([]uuid.UUID{c, b, a})
	gomock.InOrder(
		h.writer.EXPECT().UpdateSortOrder(gomock.Any(), c, 0).Return(nil),
		h.writer.EXPECT().UpdateSortOrder(gomock.Any(), a, 2).Return(errors.New("timeout")),
	)
	h.clock.Add(reorder.DefaultDebounce)
	assert.Equal(t, 1, h.refetches)

	// c was confirmed at 0 and a never moved, so both now share 0.
	h.buffer.Reorder([]uuid.UUID{a, c})
	assert.Equal(t, 1, h.buffer.Pending())
}

func TestBuffer_ValueAssignment(t *testing.T) {
	t.Run("subset keeps its slots", func(t *testing.T) {
		it := ids(4)
		a, b, c, d := it[0], it[1], it[2], it[3]
		h := newHarness(t, map[uuid.UUID]int{a: 10, b: 20, c: 30, d: 40})

		h.buffer.Reorder([]uuid.UUID{c, b})

		assert.Equal(t, []uuid.UUID{a, c, b, d}, h.lastOrder())
		gomock.InOrder(
			h.writer.EXPECT().UpdateSortOrder(gomock.Any(), c, 20).Return(nil),
			h.writer.EXPECT().UpdateSortOrder(gomock.Any(), b, 30).Return(nil),
		)
		require.NoError(t, h.buffer.Flush(context.Background()))
	})

	t.Run("duplicate values are renumbered from the minimum", func(t *testing.T) {
		it := ids(3)
		a, b, c := it[0], it[1], it[2]
		h := newHarness(t, map[uuid.UUID]int{a: 1, b: 1, c: 5})

		h.buffer.Reorder([]uuid.UUID{c, a, b})

		assert.Equal(t, []uuid.UUID{c, a, b}, h.lastOrder())
		gomock.InOrder(
			h.writer.EXPECT().UpdateSortOrder(gomock.Any(), c, 1).Return(nil),
			h.writer.EXPECT().UpdateSortOrder(gomock.Any(), a, 2).Return(nil),
			h.writer.EXPECT().UpdateSortOrder(gomock.Any(), b, 3).Return(nil),
		)
		require.NoError(t, h.buffer.Flush(context.Background()))
	})

	t.Run("renumbering skips values held outside the subset", func(t *testing.T) {
		it := ids(4)
		a, b, c, d := it[0], it[1], it[2], it[3]
		h := newHarness(t, map[uuid.UUID]int{a: 1, b: 1, d: 2, c: 5})

		h.buffer.Reorder([]uuid.UUID{c, a, b})

		assert.Equal(t, []uuid.UUID{c, d, a, b}, h.lastOrder())
		gomock.InOrder(
			h.writer.EXPECT().UpdateSortOrder(gomock.Any(), c, 1).Return(nil),
			h.writer.EXPECT().UpdateSortOrder(gomock.Any(), a, 3).Return(nil),
			h.writer.EXPECT().UpdateSortOrder(gomock.Any(), b, 4).Return(nil),
		)
		require.NoError(t, h.buffer.Flush(context.Background()))
	})

	t.Run("unknown ids are ignored", func(t *testing.T) {
		h := newHarness(t, map[uuid.UUID]int{uuid.New(): 0})
		before := len(h.orders)

		h.buffer.Reorder(ids(2))

		assert.Len(t, h.orders, before)
		assert.Zero(t, h.clock.PendingTimers())
	})
}
