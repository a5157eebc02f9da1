//go:build unit

package errs_test

import (
	"testing"

	"signage-sync/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMarkSurvivesWrapping(t *testing.T) {
	base := errs.New("row locked")
	err := errs.Wrap(errs.Mark(base, errs.ErrStoreNotFound), "load store")

	assert.True(t, errs.Is(err, errs.ErrStoreNotFound))
	assert.True(t, errs.Is(err, base))
	assert.False(t, errs.Is(err, errs.ErrPlaylistNotFound))
	assert.Equal(t, "load store: row locked", err.Error())
}

func TestNilHandling(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))
	assert.NoError(t, errs.Wrapf(nil, "ignored %d", 1))
	assert.Equal(t, errs.ErrMenuItemNotFound, errs.Mark(nil, errs.ErrMenuItemNotFound))
}

func TestValidation(t *testing.T) {
	err := errs.Validationf("discount %d out of range", 120)

	assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	assert.Equal(t, "discount 120 out of range", err.Error())
}
