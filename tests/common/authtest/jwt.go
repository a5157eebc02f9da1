//go:build unit || e2e

// Package authtest mints tokens the way the account service does, signed
// with the test config's secret and issuer.
package authtest

import (
	"testing"
	"time"

	"signage-sync/internal/pkg/config"
	"signage-sync/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) sign(t *testing.T, ttl time.Duration, role string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, ttl).WithIssuer(h.cfg.Issuer).GenerateToken(uuid.New(), role)
	require.NoError(t, err)
	return token
}

// Token is valid for the configured duration and carries role.
func (h *JWTHelper) Token(t *testing.T, role string) string {
	t.Helper()
	ttl, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	return h.sign(t, ttl, role)
}

func (h *JWTHelper) OwnerToken(t *testing.T) string {
	t.Helper()
	return h.Token(t, "owner")
}

// ExpiredToken expired an hour ago, well past any configured leeway.
func (h *JWTHelper) ExpiredToken(t *testing.T) string {
	t.Helper()
	return h.sign(t, -time.Hour, "owner")
}
