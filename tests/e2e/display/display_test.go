//go:build e2e

package display_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"signage-sync/internal/display/snapshot"
	"signage-sync/internal/display/transport"
	"signage-sync/internal/domain/change"
	"signage-sync/internal/editor/reorder"
	"signage-sync/internal/pkg/clock"
	"signage-sync/tests/common/authtest"
	"signage-sync/tests/common/dbtest"
	"signage-sync/tests/common/httptest"
	"signage-sync/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	displayURL   = "/display/%s"
	sortOrderURL = "/api/menu-items/%s/sort-order"
)

type DisplaySuite struct {
	e2e.SharedSuite
}

func TestDisplaySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(DisplaySuite))
}

func (s *DisplaySuite) getSnapshot(path string) *snapshot.Snapshot {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	snap, err := snapshot.Decode(w.Body.Bytes())
	require.NoError(t, err)
	return snap
}

func (s *DisplaySuite) TestSnapshot() {
	s.Run("Normal case: active content with running and upcoming promotions", func() {
		t := s.T()
		now := time.Now()

		templateID := dbtest.CreateTestTemplate(t, s.DB, "Slate", `{"theme":"slate","grid":{"columns":4}}`)
		storeID := dbtest.CreateTestStore(t, s.DB, "Noodle Bar", true, &templateID)
		dbtest.CreateTestCategory(t, s.DB, storeID, "Noodles", 0)
		second := dbtest.CreateTestMenuItem(t, s.DB, storeID, "Udon", 900, 2, true)
		first := dbtest.CreateTestMenuItem(t, s.DB, storeID, "Ramen", 1200, 1, true)
		dbtest.CreateTestMenuItem(t, s.DB, storeID, "Retired", 500, 0, false)

		dbtest.CreateTestPromotion(t, s.DB, storeID, "Lunch", now.Add(-time.Hour), now.Add(time.Hour), 10, true)
		dbtest.CreateTestPromotion(t, s.DB, storeID, "Dinner", now.Add(5*time.Hour), now.Add(8*time.Hour), 15, true)
		dbtest.CreateTestPromotion(t, s.DB, storeID, "Yesterday", now.Add(-26*time.Hour), now.Add(-24*time.Hour), 10, true)
		dbtest.CreateTestPromotion(t, s.DB, storeID, "Paused", now.Add(-time.Hour), now.Add(time.Hour), 10, false)

		playlistID := dbtest.CreateTestPlaylist(t, s.DB, storeID, "Main",
			fmt.Sprintf(`[{"label":"Picks","duration_sec":5,"item_ids":["%s"]},{"label":"All"}]`, first))
		dbtest.SetDefaultPlaylist(t, s.DB, storeID, playlistID)

		snap := s.getSnapshot(fmt.Sprintf(displayURL, storeID))

		require.False(t, snap.Offline)
		assert.Equal(t, "Noodle Bar", snap.Store.Name)
		require.NotNil(t, snap.Store.Template.Grid)
		assert.Equal(t, 4, *snap.Store.Template.Grid.Columns)
		assert.Len(t, snap.Categories, 1)

		require.Len(t, snap.MenuItems, 2, "inactive items are not shown")
		assert.Equal(t, first, snap.MenuItems[0].ID)
		assert.Equal(t, second, snap.MenuItems[1].ID)

		titles := make([]string, len(snap.Promotions))
		for i, p := range snap.Promotions {
			titles[i] = p.Title
		}
		assert.ElementsMatch(t, []string{"Lunch", "Dinner"}, titles)
		assert.Len(t, snap.Running(now), 1)

		require.True(t, snap.HasPlaylist())
		assert.Equal(t, playlistID, snap.Playlist.ID)
		assert.Equal(t, 5*time.Second, snap.Playlist.Slides[0].Duration())
		assert.Equal(t, []uuid.UUID{first}, snap.Playlist.Slides[0].ItemIDs)
	})

	s.Run("Normal case: inactive store is offline", func() {
		t := s.T()
		storeID := dbtest.CreateTestStore(t, s.DB, "Closed", false, nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(displayURL, storeID), nil, "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"offline":true}`, w.Body.String())
	})

	s.Run("Error case: unknown store and foreign playlist", func() {
		t := s.T()
		storeID := dbtest.CreateTestStore(t, s.DB, "Mine", true, nil)
		otherID := dbtest.CreateTestStore(t, s.DB, "Theirs", true, nil)
		foreign := dbtest.CreateTestPlaylist(t, s.DB, otherID, "Theirs", `[{"label":"x"}]`)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(displayURL, uuid.New()), nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/display/%s/%s", storeID, foreign), nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *DisplaySuite) TestWritesReachSubscribedDisplays() {
	s.Run("Normal case: sort order write signals the owning store only", func() {
		t := s.T()
		storeID := dbtest.CreateTestStore(t, s.DB, "Live", true, nil)
		otherID := dbtest.CreateTestStore(t, s.DB, "Elsewhere", true, nil)
		itemID := dbtest.CreateTestMenuItem(t, s.DB, storeID, "Gyoza", 600, 0, true)

		server := nethttptest.NewServer(s.Router)
		defer server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		mine := transport.NewWSSubscriber(server.URL, logger).Subscribe(ctx, storeID)
		theirs := transport.NewWSSubscriber(server.URL, logger).Subscribe(ctx, otherID)

		require.Eventually(t, func() bool {
			return s.Hub.Stats().Subscribers >= 2
		}, 5*time.Second, 20*time.Millisecond)

		token := authtest.NewJWTHelper(s.Config.JWT).OwnerToken(t)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(sortOrderURL, itemID),
			map[string]int{"sort_order": 7}, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		select {
		case sig := <-mine:
			assert.Equal(t, change.MenuUpdate, sig.Type)
			assert.Equal(t, storeID, sig.StoreID)
		case <-ctx.Done():
			t.Fatal("no signal for the written store")
		}

		select {
		case sig := <-theirs:
			t.Fatalf("unexpected signal for another store: %+v", sig)
		case <-time.After(300 * time.Millisecond):
		}
	})
}

func (s *DisplaySuite) TestReorderBuffer() {
	s.Run("Normal case: a drag sequence persists only the moved items", func() {
		t := s.T()
		storeID := dbtest.CreateTestStore(t, s.DB, "Editor", true, nil)
		a := dbtest.CreateTestMenuItem(t, s.DB, storeID, "A", 100, 0, true)
		b := dbtest.CreateTestMenuItem(t, s.DB, storeID, "B", 100, 1, true)
		c := dbtest.CreateTestMenuItem(t, s.DB, storeID, "C", 100, 2, true)

		server := nethttptest.NewServer(s.Router)
		defer server.Close()

		token := authtest.NewJWTHelper(s.Config.JWT).OwnerToken(t)
		fetcher := transport.NewHTTPFetcher(server.URL, 5*time.Second)
		refetched := false
		buf := reorder.NewBuffer(fetcher.WithToken(token), func(context.Context) { refetched = true },
			clock.NewMockClock(time.Now()), slog.New(slog.NewTextHandler(io.Discard, nil)))
		defer buf.Close()

		before, err := fetcher.Fetch(context.Background(), storeID, nil)
		require.NoError(t, err)
		baseline := map[uuid.UUID]int{}
		for _, item := range before.MenuItems {
			baseline[item.ID] = item.SortOrder
		}
		buf.Reset(baseline)

		buf.Reorder([]uuid.UUID{b, a, c})
		buf.Reorder([]uuid.UUID{c, b, a})
		require.NoError(t, buf.Flush(context.Background()))
		assert.False(t, refetched)

		after := s.getSnapshot(fmt.Sprintf(displayURL, storeID))
		got := make([]uuid.UUID, len(after.MenuItems))
		for i, item := range after.MenuItems {
			got[i] = item.ID
		}
		assert.Equal(t, []uuid.UUID{c, b, a}, got)
	})

	s.Run("Error case: writes for a deleted item discard and refetch", func() {
		t := s.T()
		storeID := dbtest.CreateTestStore(t, s.DB, "Editor", true, nil)
		a := dbtest.CreateTestMenuItem(t, s.DB, storeID, "A", 100, 0, true)
		b := dbtest.CreateTestMenuItem(t, s.DB, storeID, "B", 100, 1, true)

		server := nethttptest.NewServer(s.Router)
		defer server.Close()

		token := authtest.NewJWTHelper(s.Config.JWT).OwnerToken(t)
		fetcher := transport.NewHTTPFetcher(server.URL, 5*time.Second)
		refetched := 0
		buf := reorder.NewBuffer(fetcher.WithToken(token), func(context.Context) { refetched++ },
			clock.NewMockClock(time.Now()), slog.New(slog.NewTextHandler(io.Discard, nil)))
		defer buf.Close()
		buf.Reset(map[uuid.UUID]int{a: 0, b: 1})

		_, err := s.DB.Exec(context.Background(), "DELETE FROM menu_items WHERE id = $1", b)
		require.NoError(t, err)

		buf.Reorder([]uuid.UUID{b, a})
		err = buf.Flush(context.Background())

		require.Error(t, err)
		assert.Equal(t, 1, refetched)
		assert.Zero(t, buf.Pending())
	})
}

func (s *DisplaySuite) TestWriteAuthorization() {
	t := s.T()
	storeID := dbtest.CreateTestStore(t, s.DB, "Gatekeeper", true, nil)
	itemID := dbtest.CreateTestMenuItem(t, s.DB, storeID, "Tea", 300, 0, true)
	tokens := authtest.NewJWTHelper(s.Config.JWT)
	path := fmt.Sprintf(sortOrderURL, itemID)
	body := map[string]int{"sort_order": 3}

	testCases := []struct {
		name       string
		token      string
		expectCode int
	}{
		{name: "no token", token: "", expectCode: http.StatusUnauthorized},
		{name: "expired token", token: tokens.ExpiredToken(t), expectCode: http.StatusUnauthorized},
		{name: "viewer role", token: tokens.Token(t, "viewer"), expectCode: http.StatusForbidden},
		{name: "admin role", token: tokens.Token(t, "admin"), expectCode: http.StatusNoContent},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, path, body, tc.token)
			assert.Equal(s.T(), tc.expectCode, w.Code, w.Body.String())
		})
	}
}
