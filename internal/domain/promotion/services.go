package promotion

import (
	"time"

	"github.com/google/uuid"
)

// StatusAt derives the lifecycle status. Expiry is checked first so that a
// paused promotion past its end reports expired.
func StatusAt(now time.Time, w Window, active bool) Status {
	switch {
	case now.After(w.End):
		return StatusExpired
	case !active:
		return StatusPaused
	case now.Before(w.Start):
		return StatusScheduled
	default:
		return StatusRunning
	}
}

// Visible reports whether a promotion should be shown at now.
func Visible(now time.Time, w Window, active bool) bool {
	return StatusAt(now, w, active) == StatusRunning
}

// AppliesTo treats an empty target list as every item.
func AppliesTo(targets []uuid.UUID, itemID uuid.UUID) bool {
	if len(targets) == 0 {
		return true
	}
	for _, id := range targets {
		if id == itemID {
			return true
		}
	}
	return false
}

// NextBoundary returns the earliest start or end strictly after now.
func NextBoundary(now time.Time, windows ...Window) (time.Time, bool) {
	var next time.Time
	found := false
	consider := func(t time.Time) {
		if !t.After(now) {
			return
		}
		if !found || t.Before(next) {
			next = t
			found = true
		}
	}
	for _, w := range windows {
		consider(w.Start)
		consider(w.End)
	}
	return next, found
}
