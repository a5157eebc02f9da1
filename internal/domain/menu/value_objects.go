package menu

import "signage-sync/internal/pkg/errs"

var ErrInvalidSortOrder = errs.Validation("sort order must not be negative")

type SortOrder struct {
	value int
}

func NewSortOrder(v int) (SortOrder, error) {
	if v < 0 {
		return SortOrder{}, ErrInvalidSortOrder
	}
	return SortOrder{value: v}, nil
}

func (s SortOrder) Value() int { return s.value }
