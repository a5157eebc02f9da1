//go:build unit

package uow

import (
	"testing"

	"signage-sync/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"serialization failure", &pgconn.PgError{Code: pgErrCodeSerializationFailure}, true},
		{"deadlock", errs.Wrap(&pgconn.PgError{Code: pgErrCodeDeadlockDetected}, "update sort order"), true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"plain error", errs.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestDefaultTxBackOffStopsAfterMaxRetries(t *testing.T) {
	b := defaultTxBackOff()

	for range maxTxRetries {
		wait := b.NextBackOff()
		assert.Positive(t, wait)
	}
	assert.Equal(t, backoff.Stop, b.NextBackOff())
}
