package clock

import (
	"sort"
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type Timer interface {
	Stop() bool
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

func (c *RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// MockClock only moves when told to. Timers fire synchronously inside Add/Set,
// in due order, on the caller's goroutine.
type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
	timers      []*mockTimer
	seq         int
}

type mockTimer struct {
	clock *MockClock
	due   time.Time
	seq   int
	fn    func()
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentTime
}

func (c *MockClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &mockTimer{clock: c, due: c.currentTime.Add(d), seq: c.seq, fn: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *MockClock) Set(t time.Time) {
	c.advanceTo(t)
}

func (c *MockClock) Add(d time.Duration) {
	c.advanceTo(c.Now().Add(d))
}

// PendingTimers reports how many timers are armed and not yet fired.
func (c *MockClock) PendingTimers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

func (c *MockClock) advanceTo(target time.Time) {
	for {
		c.mu.Lock()
		next := c.nextDueLocked(target)
		if next == nil {
			if target.After(c.currentTime) {
				c.currentTime = target
			}
			c.mu.Unlock()
			return
		}
		c.removeLocked(next)
		if next.due.After(c.currentTime) {
			c.currentTime = next.due
		}
		c.mu.Unlock()
		next.fn()
	}
}

func (c *MockClock) nextDueLocked(target time.Time) *mockTimer {
	if len(c.timers) == 0 {
		return nil
	}
	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].due.Equal(c.timers[j].due) {
			return c.timers[i].seq < c.timers[j].seq
		}
		return c.timers[i].due.Before(c.timers[j].due)
	})
	if c.timers[0].due.After(target) {
		return nil
	}
	return c.timers[0]
}

func (c *MockClock) removeLocked(t *mockTimer) bool {
	for i, candidate := range c.timers {
		if candidate == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return true
		}
	}
	return false
}

func (t *mockTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	return t.clock.removeLocked(t)
}
