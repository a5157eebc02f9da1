// Package lifecycle turns the passage of time into change signals: when a
// promotion's window opens or closes, displays of the owning store are told
// to refetch.
package lifecycle

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"signage-sync/internal/domain/change"
	"signage-sync/internal/pkg/clock"
	"signage-sync/internal/usecase/shared"

	"github.com/google/uuid"
)

const DefaultInterval = 30 * time.Second

type TransitionKind string

const (
	Started TransitionKind = "started"
	Ended   TransitionKind = "ended"
)

type Transition struct {
	PromotionID uuid.UUID
	StoreID     uuid.UUID
	Kind        TransitionKind
	At          time.Time
}

//go:generate mockgen -source=scheduler.go -destination=../../../tests/mock/lifecycle/scheduler_mock.go -package=lifecyclemock

// TransitionFinder queries promotion boundaries inside the half-open
// interval (from, to].
type TransitionFinder interface {
	// EndedBetween only reports promotions that are active.
	EndedBetween(ctx context.Context, from, to time.Time) ([]Transition, error)
	StartedBetween(ctx context.Context, from, to time.Time) ([]Transition, error)
}

// Scheduler polls for promotion boundaries and publishes at most one
// promotion_update per store per tick. A window that opens and closes
// between two ticks is never seen; displays cover it with their own
// boundary timers.
type Scheduler struct {
	finder    TransitionFinder
	publisher shared.ChangePublisher
	clock     clock.Clock
	interval  time.Duration
	logger    *slog.Logger

	mu       sync.Mutex
	lastTick time.Time
	running  atomic.Bool
}

func NewScheduler(finder TransitionFinder, publisher shared.ChangePublisher, clk clock.Clock, interval time.Duration, logger *slog.Logger) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		finder:    finder,
		publisher: publisher,
		clock:     clk,
		interval:  interval,
		logger:    logger,
		lastTick:  clk.Now(),
	}
}

// Run ticks every interval until ctx is done. A failing or panicking tick
// is logged and the loop goes on.
func (s *Scheduler) Run(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		return
	}
	defer s.running.Store(false)

	fire := make(chan struct{}, 1)
	slot := clock.NewSlot(s.clock)
	defer slot.Stop()
	arm := func() {
		slot.Arm(s.interval, func() {
			select {
			case fire <- struct{}{}:
			default:
			}
		})
	}

	s.logger.Info("promotion scheduler started", "interval", s.interval)
	arm()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("promotion scheduler stopped")
			return
		case <-fire:
			s.safeTick(ctx)
			arm()
		}
	}
}

func (s *Scheduler) safeTick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("promotion scheduler tick panicked", "panic", r)
		}
	}()
	s.Tick(ctx)
}

// Tick scans (lastTick, now] and returns the number of stores signalled.
// lastTick advances even when the queries fail, so a transient error never
// causes the same interval to be scanned twice.
func (s *Scheduler) Tick(ctx context.Context) int {
	s.mu.Lock()
	from := s.lastTick
	now := s.clock.Now()
	if now.After(from) {
		s.lastTick = now
	}
	s.mu.Unlock()

	if !now.After(from) {
		return 0
	}

	var found []Transition
	ended, err := s.finder.EndedBetween(ctx, from, now)
	if err != nil {
		s.logger.Error("failed to query ended promotions", "from", from, "to", now, "error", err)
	}
	found = append(found, ended...)

	started, err := s.finder.StartedBetween(ctx, from, now)
	if err != nil {
		s.logger.Error("failed to query started promotions", "from", from, "to", now, "error", err)
	}
	found = append(found, started...)

	stores := affectedStores(found)
	for _, storeID := range stores {
		s.publisher.Publish(ctx, change.NewSignal(change.PromotionUpdate, storeID, now))
	}
	if len(stores) > 0 {
		s.logger.Info("promotion transitions published",
			"transitions", len(found),
			"stores", len(stores),
			"from", from,
			"to", now)
	}
	return len(stores)
}

// affectedStores returns each store once, in first-seen order.
func affectedStores(ts []Transition) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ts))
	out := make([]uuid.UUID, 0, len(ts))
	for _, t := range ts {
		if _, ok := seen[t.StoreID]; ok {
			continue
		}
		seen[t.StoreID] = struct{}{}
		out = append(out, t.StoreID)
	}
	return out
}
