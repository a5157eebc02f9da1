// Package reorder turns rapid drag reorders into a short, sequential chain of
// sort order writes. Local order changes apply at once; persistence waits
// for the drags to settle.
package reorder

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"signage-sync/internal/pkg/clock"
	"signage-sync/internal/pkg/errs"

	"github.com/google/uuid"
)

const DefaultDebounce = 600 * time.Millisecond

// ErrConflict marks a flush that stopped on a rejected write. Pending edits
// are gone by the time it is returned.
var ErrConflict = errs.New("reorder write failed")

//go:generate mockgen -source=buffer.go -destination=../../../tests/mock/reorder/buffer_mock.go -package=reordermock

type Writer interface {
	UpdateSortOrder(ctx context.Context, itemID uuid.UUID, sortOrder int) error
}

// Buffer holds the last confirmed sort order per item and the locally
// proposed one. Only entries that differ are ever written.
type Buffer struct {
	writer   Writer
	refetch  func(ctx context.Context)
	logger   *slog.Logger
	debounce *clock.Slot

	ctx    context.Context
	cancel context.CancelFunc

	// flushMu keeps batches from overlapping.
	flushMu sync.Mutex

	mu        sync.Mutex
	baseline  map[uuid.UUID]int
	proposed  map[uuid.UUID]int
	listeners []func([]uuid.UUID)
}

func NewBuffer(writer Writer, refetch func(ctx context.Context), clk clock.Clock, logger *slog.Logger) *Buffer {
	ctx, cancel := context.WithCancel(context.Background())
	return &Buffer{
		writer:   writer,
		refetch:  refetch,
		logger:   logger,
		debounce: clock.NewSlot(clk),
		ctx:      ctx,
		cancel:   cancel,
		baseline: map[uuid.UUID]int{},
		proposed: map[uuid.UUID]int{},
	}
}

// OnLocal registers fn to receive the full item order after every local
// change, before anything is persisted.
func (b *Buffer) OnLocal(fn func(order []uuid.UUID)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, fn)
}

// Reset replaces the baseline with server state and drops pending edits.
func (b *Buffer) Reset(baseline map[uuid.UUID]int) {
	b.debounce.Stop()
	b.mu.Lock()
	b.baseline = make(map[uuid.UUID]int, len(baseline))
	for id, v := range baseline {
		b.baseline[id] = v
	}
	b.proposed = map[uuid.UUID]int{}
	b.notifyLocked()
}

// Reorder takes a visible subset of items in their new order. The subset
// keeps the sort order values it already occupied, handed out again in the
// new order. Ids the buffer does not know are ignored.
func (b *Buffer) Reorder(ids []uuid.UUID) {
	b.mu.Lock()
	known := make([]uuid.UUID, 0, len(ids))
	values := make([]int, 0, len(ids))
	for _, id := range ids {
		v, ok := b.currentLocked(id)
		if !ok {
			continue
		}
		known = append(known, id)
		values = append(values, v)
	}
	if len(known) == 0 {
		b.mu.Unlock()
		return
	}

	sort.Ints(values)
	if hasDuplicates(values) {
		values = b.renumberLocked(known, values[0])
	}
	for i, id := range known {
		b.proposed[id] = values[i]
	}

	b.debounce.Arm(DefaultDebounce, b.fire)
	b.notifyLocked()
}

// Pending reports how many items differ from the confirmed baseline.
func (b *Buffer) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.diffLocked())
}

// Flush writes the pending diff now, one item at a time in ascending order.
// On the first failure the rest of the batch and every local edit are
// dropped and a refetch is requested.
func (b *Buffer) Flush(ctx context.Context) error {
	b.flushMu.Lock()
	defer b.flushMu.Unlock()

	b.debounce.Stop()
	b.mu.Lock()
	batch := b.diffLocked()
	b.mu.Unlock()
	if len(batch) == 0 {
		return nil
	}

	for i, w := range batch {
		if err := b.writer.UpdateSortOrder(ctx, w.id, w.value); err != nil {
			b.logger.Warn("reorder write failed, discarding pending edits",
				"item_id", w.id, "written", i, "batch", len(batch), "error", err)
			b.mu.Lock()
			b.proposed = map[uuid.UUID]int{}
			b.mu.Unlock()
			b.refetch(ctx)
			return errs.Mark(errs.Wrap(err, "update sort order"), ErrConflict)
		}
		b.mu.Lock()
		b.baseline[w.id] = w.value
		if v, ok := b.proposed[w.id]; ok && v == w.value {
			delete(b.proposed, w.id)
		}
		b.mu.Unlock()
	}
	b.logger.Debug("reorder flushed", "writes", len(batch))
	return nil
}

// Close defuses the debounce timer and cancels an in-flight timed flush.
// Unflushed edits are lost.
func (b *Buffer) Close() {
	b.debounce.Stop()
	b.cancel()
}

func (b *Buffer) fire() {
	_ = b.Flush(b.ctx)
}

type write struct {
	id    uuid.UUID
	value int
}

func (b *Buffer) currentLocked(id uuid.UUID) (int, bool) {
	if v, ok := b.proposed[id]; ok {
		return v, true
	}
	v, ok := b.baseline[id]
	return v, ok
}

func (b *Buffer) diffLocked() []write {
	var out []write
	for id, v := range b.proposed {
		if base, ok := b.baseline[id]; ok && base == v {
			continue
		}
		out = append(out, write{id: id, value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].value != out[j].value {
			return out[i].value < out[j].value
		}
		return out[i].id.String() < out[j].id.String()
	})
	return out
}

// notifyLocked releases mu before calling listeners.
func (b *Buffer) notifyLocked() {
	type entry struct {
		id    uuid.UUID
		value int
	}
	entries := make([]entry, 0, len(b.baseline))
	for id := range b.baseline {
		v, _ := b.currentLocked(id)
		entries = append(entries, entry{id: id, value: v})
	}
	listeners := append([]func([]uuid.UUID){}, b.listeners...)
	b.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].value != entries[j].value {
			return entries[i].value < entries[j].value
		}
		return entries[i].id.String() < entries[j].id.String()
	})
	order := make([]uuid.UUID, len(entries))
	for i, e := range entries {
		order[i] = e.id
	}
	for _, fn := range listeners {
		fn(order)
	}
}

// renumberLocked hands out distinct values from start upward, skipping
// values held by items outside subset so no two items end up tied.
func (b *Buffer) renumberLocked(subset []uuid.UUID, start int) []int {
	inSubset := make(map[uuid.UUID]bool, len(subset))
	for _, id := range subset {
		inSubset[id] = true
	}
	taken := map[int]bool{}
	for id := range b.baseline {
		if inSubset[id] {
			continue
		}
		v, _ := b.currentLocked(id)
		taken[v] = true
	}

	out := make([]int, 0, len(subset))
	for v := start; len(out) < len(subset); v++ {
		if !taken[v] {
			out = append(out, v)
		}
	}
	return out
}

func hasDuplicates(sorted []int) bool {
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return true
		}
	}
	return false
}
