//go:build unit

package config_test

import (
	"net/url"
	"os"
	"testing"
	"time"

	"signage-sync/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "8080")
	t.Setenv("DB_USER", "signage")
	t.Setenv("DB_PASSWORD", "p@ss/word")
	t.Setenv("DB_NAME", "signage")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequired(t)

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 30*time.Second, cfg.Scheduler.Interval)
		assert.Equal(t, 16, cfg.Realtime.SendBuffer)
		assert.False(t, cfg.Realtime.RelayEnabled())
		assert.Equal(t, uint64(5), cfg.DB.ConnectAttempts)
		assert.Equal(t, "signage-accounts", cfg.JWT.Issuer)
	})

	t.Run("kafka brokers enable the relay", func(t *testing.T) {
		setRequired(t)
		t.Setenv("REALTIME_KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Realtime.KafkaBrokers)
		assert.True(t, cfg.Realtime.RelayEnabled())
	})

	t.Run("missing required value", func(t *testing.T) {
		setRequired(t)
		require.NoError(t, os.Unsetenv("JWT_SECRET"))

		_, err := config.LoadConfig()
		assert.Error(t, err)
	})

	t.Run("rejects a zero scheduler interval", func(t *testing.T) {
		setRequired(t)
		t.Setenv("SCHEDULER_INTERVAL", "0s")

		_, err := config.LoadConfig()
		assert.ErrorContains(t, err, "SCHEDULER_INTERVAL")
	})

	t.Run("rejects a malformed token duration", func(t *testing.T) {
		setRequired(t)
		t.Setenv("JWT_DURATION", "one day")

		_, err := config.LoadConfig()
		assert.ErrorContains(t, err, "JWT_DURATION")
	})
}

func TestBuildDSN(t *testing.T) {
	cfg := config.NewTestConfig().DB
	cfg.Password = "p@ss/word"

	u, err := url.Parse(cfg.BuildDSN())
	require.NoError(t, err)

	pw, _ := u.User.Password()
	assert.Equal(t, "p@ss/word", pw)
	assert.Equal(t, "localhost:15433", u.Host)
	assert.Equal(t, "/test_db", u.Path)
	assert.Equal(t, "disable", u.Query().Get("sslmode"))
}
