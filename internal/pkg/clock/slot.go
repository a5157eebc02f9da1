package clock

import (
	"sync"
	"time"
)

// Slot holds at most one pending timer for a logical clock. Arm always cancels
// the previous timer before arming the new one, and a callback whose timer was
// replaced after it started firing is discarded.
type Slot struct {
	clock Clock

	mu    sync.Mutex
	timer Timer
	gen   uint64
}

func NewSlot(c Clock) *Slot {
	return &Slot{clock: c}
}

func (s *Slot) Arm(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.gen++
	gen := s.gen
	s.timer = s.clock.AfterFunc(d, func() {
		s.mu.Lock()
		if gen != s.gen {
			s.mu.Unlock()
			return
		}
		s.timer = nil
		s.mu.Unlock()
		fn()
	})
}

// Stop defuses the pending timer, if any, and reports whether one was pending.
func (s *Slot) Stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	if s.timer == nil {
		return false
	}
	s.timer.Stop()
	s.timer = nil
	return true
}

func (s *Slot) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}
