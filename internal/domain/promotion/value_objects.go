package promotion

import (
	"math"
	"time"

	"signage-sync/internal/pkg/errs"
)

var (
	ErrInvalidWindow          = errs.Validation("promotion start time must be before end time")
	ErrInvalidDiscountKind    = errs.Validation("discount type must be percentage or fixed")
	ErrInvalidDiscountPercent = errs.Validation("percentage discount must be greater than 0 and at most 100")
	ErrInvalidDiscountAmount  = errs.Validation("fixed discount must be a positive whole number of cents")
)

// Window is the closed interval [Start, End] during which a promotion may run.
type Window struct {
	Start time.Time
	End   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return Window{}, ErrInvalidWindow
	}
	return Window{Start: start, End: end}, nil
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

type DiscountKind string

const (
	DiscountPercentage DiscountKind = "percentage"
	DiscountFixed      DiscountKind = "fixed"
)

// Discount is either a percentage in (0, 100] or a fixed amount in cents.
type Discount struct {
	kind  DiscountKind
	value float64
}

func NewDiscount(kind DiscountKind, value float64) (Discount, error) {
	switch kind {
	case DiscountPercentage:
		if value <= 0 || value > 100 {
			return Discount{}, ErrInvalidDiscountPercent
		}
	case DiscountFixed:
		if value <= 0 || value != math.Trunc(value) {
			return Discount{}, ErrInvalidDiscountAmount
		}
	default:
		return Discount{}, ErrInvalidDiscountKind
	}
	return Discount{kind: kind, value: value}, nil
}

func (d Discount) Kind() DiscountKind { return d.kind }
func (d Discount) Value() float64     { return d.value }

func (d Discount) IsZero() bool {
	return d.kind == ""
}

// Apply returns the discounted price, never below zero. Percentage discounts
// round the amount off down to whole cents.
func (d Discount) Apply(priceCents int64) int64 {
	var off int64
	switch d.kind {
	case DiscountPercentage:
		off = int64(float64(priceCents) * d.value / 100.0)
	case DiscountFixed:
		off = int64(d.value)
	}
	result := priceCents - off
	if result < 0 {
		return 0
	}
	return result
}
