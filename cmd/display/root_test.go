//go:build unit

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOptions(t *testing.T, args ...string) (options, error) {
	t.Helper()
	root, v := newRootCmd()
	require.NoError(t, root.PersistentFlags().Parse(args))
	require.NoError(t, initConfig(v, ""))
	return loadOptions(v)
}

func TestOptions(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	storeID := uuid.New()

	t.Run("defaults", func(t *testing.T) {
		opts, err := parseOptions(t, "--store", storeID.String())
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", opts.Server)
		assert.Equal(t, 10*time.Second, opts.FetchTimeout)
		assert.Equal(t, 500*time.Millisecond, opts.BoundaryMargin)
		assert.Equal(t, 5, opts.InitialAttempts)

		cfg, err := opts.clientConfig()
		require.NoError(t, err)
		assert.Equal(t, storeID, cfg.StoreID)
		assert.Nil(t, cfg.PlaylistID)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("SIGNAGE_FETCH_TIMEOUT", "3s")
		t.Setenv("SIGNAGE_STORE", storeID.String())
		opts, err := parseOptions(t)
		require.NoError(t, err)
		assert.Equal(t, 3*time.Second, opts.FetchTimeout)
		assert.Equal(t, storeID.String(), opts.Store)
	})

	t.Run("config file", func(t *testing.T) {
		playlistID := uuid.New()
		path := filepath.Join(t.TempDir(), "display.yaml")
		content := "store: " + storeID.String() + "\nplaylist: " + playlistID.String() + "\npage-interval: 15s\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		root, v := newRootCmd()
		require.NoError(t, root.PersistentFlags().Parse(nil))
		require.NoError(t, initConfig(v, path))
		opts, err := loadOptions(v)
		require.NoError(t, err)

		assert.Equal(t, 15*time.Second, opts.PageInterval)
		_, gotPlaylist, err := opts.target()
		require.NoError(t, err)
		require.NotNil(t, gotPlaylist)
		assert.Equal(t, playlistID, *gotPlaylist)
	})

	t.Run("store is required", func(t *testing.T) {
		_, err := parseOptions(t)
		assert.Error(t, err)
	})

	t.Run("malformed ids", func(t *testing.T) {
		_, _, err := options{Store: "nope"}.target()
		assert.Error(t, err)
		_, _, err = options{Store: storeID.String(), Playlist: "nope"}.target()
		assert.Error(t, err)
	})
}
