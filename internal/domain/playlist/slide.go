package playlist

import (
	"strings"
	"time"

	"signage-sync/internal/domain/layout"
	"signage-sync/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MinSlideDurationSec     = 3
	MaxSlideDurationSec     = 300
	DefaultSlideDurationSec = 9
	MaxSlideLabelLength     = 60
)

var (
	ErrSlideDuration   = errs.Validation("slide duration must be between 3 and 300 seconds")
	ErrSlideLabel      = errs.Validation("slide label is too long")
	ErrSlideDuplicates = errs.Validation("slide item ids must be unique")
)

// Slide is one playlist entry. An empty ItemIDs selection means every active item.
type Slide struct {
	Label       string            `json:"label"`
	DurationSec int               `json:"duration_sec,omitempty"`
	Layout      layout.Config     `json:"layout"`
	ItemIDs     []uuid.UUID       `json:"item_ids"`
	ItemStyles  layout.ItemStyles `json:"item_styles"`
}

// NewSlide validates a slide for storage. A zero duration takes the default.
func NewSlide(label string, durationSec int, cfg layout.Config, itemIDs []uuid.UUID, styles layout.ItemStyles) (Slide, error) {
	label = strings.TrimSpace(label)
	if len([]rune(label)) > MaxSlideLabelLength {
		return Slide{}, ErrSlideLabel
	}
	if durationSec == 0 {
		durationSec = DefaultSlideDurationSec
	}
	if durationSec < MinSlideDurationSec || durationSec > MaxSlideDurationSec {
		return Slide{}, ErrSlideDuration
	}
	seen := make(map[uuid.UUID]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		if _, dup := seen[id]; dup {
			return Slide{}, ErrSlideDuplicates
		}
		seen[id] = struct{}{}
	}
	if itemIDs == nil {
		itemIDs = []uuid.UUID{}
	}
	return Slide{
		Label:       label,
		DurationSec: durationSec,
		Layout:      cfg,
		ItemIDs:     itemIDs,
		ItemStyles:  styles,
	}, nil
}

// Duration is how long the slide stays on screen. Stored values outside the
// allowed range are clamped so a bad document never stalls or spins the cycle.
func (s Slide) Duration() time.Duration {
	sec := s.DurationSec
	switch {
	case sec == 0:
		sec = DefaultSlideDurationSec
	case sec < MinSlideDurationSec:
		sec = MinSlideDurationSec
	case sec > MaxSlideDurationSec:
		sec = MaxSlideDurationSec
	}
	return time.Duration(sec) * time.Second
}
