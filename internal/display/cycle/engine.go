package cycle

import (
	"log/slog"
	"sync"
	"time"

	"signage-sync/internal/display/snapshot"
	"signage-sync/internal/pkg/clock"
)

const (
	CrossfadeDuration   = 420 * time.Millisecond
	DefaultPageInterval = 10 * time.Second
	BannerInterval      = 8 * time.Second
)

// Engine advances the cycling state of one display. Three slots hold the
// content cycle, the crossfade and the banner rotation; each has at most one
// pending timer.
type Engine struct {
	clock        clock.Clock
	pageInterval time.Duration
	logger       *slog.Logger

	cycle  *clock.Slot
	fade   *clock.Slot
	banner *clock.Slot

	mu        sync.Mutex
	snap      *snapshot.Snapshot
	state     State
	listeners []func(Frame)
}

func NewEngine(clk clock.Clock, pageInterval time.Duration, logger *slog.Logger) *Engine {
	if pageInterval <= 0 {
		pageInterval = DefaultPageInterval
	}
	return &Engine{
		clock:        clk,
		pageInterval: pageInterval,
		logger:       logger,
		cycle:        clock.NewSlot(clk),
		fade:         clock.NewSlot(clk),
		banner:       clock.NewSlot(clk),
		state:        State{Visible: true},
	}
}

func (e *Engine) OnFrame(fn func(Frame)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, fn)
}

func (e *Engine) Frame() Frame {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Compose(e.snap, e.state, e.clock.Now())
}

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Load swaps in a new snapshot and clamps indices to its content. When the
// content count is unchanged a pending dwell or crossfade keeps running, so
// frequent refetches do not pin the display to one slide. Loading the
// snapshot already shown is a no-op. A nil or offline snapshot leaves no
// timer armed.
func (e *Engine) Load(snap *snapshot.Snapshot) {
	e.mu.Lock()
	if snap != nil && snap == e.snap {
		e.mu.Unlock()
		return
	}
	prevCount := -1
	if e.snap != nil && !e.snap.Offline {
		prevCount = e.contentCountLocked()
	}
	e.snap = snap

	if snap == nil || snap.Offline {
		e.cycle.Stop()
		e.fade.Stop()
		e.banner.Stop()
		e.state.Visible = true
		e.emitLocked()
		return
	}

	now := e.clock.Now()
	count := e.contentCountLocked()
	if snap.HasPlaylist() {
		e.state.SlideIndex = mod(e.state.SlideIndex, count)
	} else {
		e.state.PageIndex = mod(e.state.PageIndex, count)
	}
	e.state.BannerIndex = mod(e.state.BannerIndex, len(snap.Running(now)))

	if count != prevCount || (!e.cycle.Pending() && !e.fade.Pending()) {
		e.fade.Stop()
		e.state.Visible = true
		e.armCycleLocked(count)
	}
	if len(snap.Running(now)) < 2 {
		e.banner.Stop()
	} else if !e.banner.Pending() {
		e.banner.Arm(BannerInterval, e.rotateBanner)
	}
	e.emitLocked()
}

// Stop defuses every timer. The last frame stays as it is.
func (e *Engine) Stop() {
	e.cycle.Stop()
	e.fade.Stop()
	e.banner.Stop()
}

func (e *Engine) contentCountLocked() int {
	if e.snap.HasPlaylist() {
		return len(e.snap.Playlist.Slides)
	}
	return Compose(e.snap, e.state, e.clock.Now()).Count
}

func (e *Engine) dwellLocked() time.Duration {
	if e.snap.HasPlaylist() {
		slides := e.snap.Playlist.Slides
		return slides[mod(e.state.SlideIndex, len(slides))].Duration()
	}
	return e.pageInterval
}

func (e *Engine) armCycleLocked(count int) {
	if count < 2 {
		e.cycle.Stop()
		return
	}
	e.cycle.Arm(e.dwellLocked(), e.startCrossfade)
}

func (e *Engine) armBannerLocked(now time.Time) {
	if len(e.snap.Running(now)) < 2 {
		e.banner.Stop()
		return
	}
	e.banner.Arm(BannerInterval, e.rotateBanner)
}

func (e *Engine) startCrossfade() {
	e.mu.Lock()
	if e.snap == nil || e.snap.Offline {
		e.mu.Unlock()
		return
	}
	e.state.Visible = false
	e.fade.Arm(CrossfadeDuration, e.advance)
	e.emitLocked()
}

func (e *Engine) advance() {
	e.mu.Lock()
	if e.snap == nil || e.snap.Offline {
		e.mu.Unlock()
		return
	}
	count := e.contentCountLocked()
	if e.snap.HasPlaylist() {
		e.state.SlideIndex = mod(e.state.SlideIndex+1, count)
	} else {
		e.state.PageIndex = mod(e.state.PageIndex+1, count)
	}
	e.state.RenderKey++
	e.state.Visible = true
	e.armCycleLocked(count)
	e.emitLocked()
}

func (e *Engine) rotateBanner() {
	e.mu.Lock()
	if e.snap == nil || e.snap.Offline {
		e.mu.Unlock()
		return
	}
	now := e.clock.Now()
	if n := len(e.snap.Running(now)); n > 0 {
		e.state.BannerIndex = mod(e.state.BannerIndex+1, n)
	}
	e.armBannerLocked(now)
	e.emitLocked()
}

// emitLocked composes the frame and notifies listeners after releasing mu.
func (e *Engine) emitLocked() {
	frame := Compose(e.snap, e.state, e.clock.Now())
	listeners := append([]func(Frame){}, e.listeners...)
	e.mu.Unlock()

	for _, fn := range listeners {
		fn(frame)
	}
}
