// Package display keeps one unattended screen in sync with its store: it
// loads the snapshot, refetches whenever the bus says the store changed, and
// refetches on its own when a promotion window opens or closes.
package display

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"signage-sync/internal/display/snapshot"
	"signage-sync/internal/domain/change"
	"signage-sync/internal/pkg/clock"
	"signage-sync/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

const (
	DefaultBoundaryMargin  = 500 * time.Millisecond
	DefaultInitialAttempts = 5
)

var (
	ErrNotFound    = errs.New("store or playlist not found")
	ErrUnreachable = errs.New("initial snapshot could not be loaded")
)

type State string

const (
	StateInitializing State = "initializing"
	StateSynced       State = "synced"
	StateResyncing    State = "resyncing"
	StateOffline      State = "offline"
	StateUnavailable  State = "unavailable"
	StateUnreachable  State = "unreachable"
)

// Terminal states end Run.
func (s State) Terminal() bool {
	return s == StateUnavailable || s == StateUnreachable
}

type View struct {
	State     State
	Snapshot  *snapshot.Snapshot
	FetchedAt time.Time
}

//go:generate mockgen -source=client.go -destination=../../tests/mock/display/client_mock.go -package=displaymock

type Fetcher interface {
	// Fetch returns ErrNotFound when the store or playlist does not exist.
	// An offline store is a snapshot with Offline set, not an error.
	Fetch(ctx context.Context, storeID uuid.UUID, playlistID *uuid.UUID) (*snapshot.Snapshot, error)
}

type Subscriber interface {
	// Subscribe streams signals for storeID until ctx is done. The channel
	// is closed when the subscription ends.
	Subscribe(ctx context.Context, storeID uuid.UUID) <-chan change.Signal
}

type Config struct {
	StoreID    uuid.UUID
	PlaylistID *uuid.UUID
	// BoundaryMargin is added to promotion boundaries so the server already
	// sees the new status when the refetch lands.
	BoundaryMargin  time.Duration
	InitialAttempts int
	// NewBackOff paces initial load retries. Nil uses exponential backoff.
	NewBackOff func() backoff.BackOff
}

type Client struct {
	cfg        Config
	fetcher    Fetcher
	subscriber Subscriber
	clock      clock.Clock
	logger     *slog.Logger
	boundary   *clock.Slot
	fire       chan struct{}

	mu        sync.Mutex
	view      View
	stale     int
	listeners []func(View)
}

func NewClient(cfg Config, fetcher Fetcher, subscriber Subscriber, clk clock.Clock, logger *slog.Logger) *Client {
	if cfg.BoundaryMargin <= 0 {
		cfg.BoundaryMargin = DefaultBoundaryMargin
	}
	if cfg.InitialAttempts <= 0 {
		cfg.InitialAttempts = DefaultInitialAttempts
	}
	if cfg.NewBackOff == nil {
		cfg.NewBackOff = defaultBackOff
	}
	return &Client{
		cfg:        cfg,
		fetcher:    fetcher,
		subscriber: subscriber,
		clock:      clk,
		logger:     logger.With("store_id", cfg.StoreID),
		boundary:   clock.NewSlot(clk),
		fire:       make(chan struct{}, 1),
		view:       View{State: StateInitializing},
	}
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 10 * time.Second
	b.MaxElapsedTime = 0
	return b
}

// OnUpdate registers fn to be called with the new view after every state
// change. Listeners run on the client's goroutine.
func (c *Client) OnUpdate(fn func(View)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

func (c *Client) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Stale counts refetches that failed while an older snapshot stayed on screen.
func (c *Client) Stale() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stale
}

// BoundaryPending reports whether a promotion boundary refetch is armed.
func (c *Client) BoundaryPending() bool {
	return c.boundary.Pending()
}

// Run loads the snapshot and keeps it fresh until ctx is done. It returns
// ErrNotFound or ErrUnreachable when the client reaches a terminal state,
// and nil on cancellation.
func (c *Client) Run(ctx context.Context) error {
	defer c.boundary.Stop()

	if err := c.initialLoad(ctx); err != nil {
		return err
	}

	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	signals := c.subscriber.Subscribe(subCtx, c.cfg.StoreID)

	for {
		select {
		case <-ctx.Done():
			return nil
		case sig, ok := <-signals:
			if !ok {
				signals = nil
				c.logger.Warn("change subscription closed, relying on boundary timer")
				continue
			}
			if sig.StoreID != c.cfg.StoreID {
				continue
			}
			c.logger.Debug("change signal received", "type", sig.Type)
			if err := c.refetch(ctx); err != nil {
				return err
			}
		case <-c.fire:
			c.logger.Debug("promotion boundary reached")
			if err := c.refetch(ctx); err != nil {
				return err
			}
		}
	}
}

func (c *Client) initialLoad(ctx context.Context) error {
	c.transition(StateInitializing, nil, false)

	var snap *snapshot.Snapshot
	op := func() error {
		s, err := c.fetcher.Fetch(ctx, c.cfg.StoreID, c.cfg.PlaylistID)
		if err != nil {
			if errs.Is(err, ErrNotFound) {
				return backoff.Permanent(err)
			}
			return err
		}
		snap = s
		return nil
	}
	attempts := uint64(c.cfg.InitialAttempts - 1)
	b := backoff.WithContext(backoff.WithMaxRetries(c.cfg.NewBackOff(), attempts), ctx)
	err := backoff.RetryNotify(op, b, func(err error, wait time.Duration) {
		c.logger.Warn("initial snapshot fetch failed, retrying", "error", err, "wait", wait)
	})

	switch {
	case err == nil:
		c.apply(snap)
		return nil
	case errs.Is(err, ErrNotFound):
		c.logger.Error("display target does not exist")
		c.transition(StateUnavailable, nil, false)
		return ErrNotFound
	case ctx.Err() != nil:
		return nil
	default:
		c.logger.Error("giving up on initial snapshot", "attempts", c.cfg.InitialAttempts, "error", err)
		c.transition(StateUnreachable, nil, false)
		return errs.Mark(err, ErrUnreachable)
	}
}

func (c *Client) refetch(ctx context.Context) error {
	prev := c.View()
	c.transition(StateResyncing, prev.Snapshot, false)

	snap, err := c.fetcher.Fetch(ctx, c.cfg.StoreID, c.cfg.PlaylistID)
	switch {
	case err == nil:
		c.apply(snap)
		return nil
	case errs.Is(err, ErrNotFound):
		c.logger.Error("display target was removed")
		c.clearBoundary()
		c.transition(StateUnavailable, nil, false)
		return ErrNotFound
	default:
		// The timer that triggered this refetch may be gone; later
		// boundaries in the kept snapshot still need one.
		if prev.Snapshot != nil && !prev.Snapshot.Offline {
			c.armBoundary(prev.Snapshot)
		}
		c.mu.Lock()
		c.stale++
		stale := c.stale
		c.mu.Unlock()
		c.logger.Warn("refetch failed, keeping last snapshot", "error", err, "stale", stale)
		c.transition(prev.State, prev.Snapshot, false)
		return nil
	}
}

func (c *Client) apply(snap *snapshot.Snapshot) {
	if snap.Offline {
		c.clearBoundary()
		c.transition(StateOffline, snap, true)
		return
	}
	c.armBoundary(snap)
	c.transition(StateSynced, snap, true)
}

func (c *Client) armBoundary(snap *snapshot.Snapshot) {
	now := c.clock.Now()
	next, ok := snapshot.NextBoundary(snap.Promotions, now)
	c.clearBoundary()
	if !ok {
		return
	}
	c.boundary.Arm(next.Sub(now)+c.cfg.BoundaryMargin, func() {
		select {
		case c.fire <- struct{}{}:
		default:
		}
	})
}

// clearBoundary disarms the timer and drops a fire that was not handled yet.
func (c *Client) clearBoundary() {
	c.boundary.Stop()
	select {
	case <-c.fire:
	default:
	}
}

func (c *Client) transition(state State, snap *snapshot.Snapshot, fetched bool) {
	c.mu.Lock()
	c.view.State = state
	c.view.Snapshot = snap
	if fetched {
		c.view.FetchedAt = c.clock.Now()
	}
	view := c.view
	listeners := append([]func(View){}, c.listeners...)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(view)
	}
}
