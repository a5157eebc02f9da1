// Package transport connects a display to the server: snapshots and owner
// writes over HTTP, change signals over the WebSocket bus.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"signage-sync/internal/display"
	"signage-sync/internal/display/snapshot"
	"signage-sync/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultFetchTimeout = 10 * time.Second
	maxSnapshotBytes    = 4 << 20
)

var ErrWriteRejected = errs.New("sort order write rejected")

// HTTPFetcher reads display snapshots and, given an owner token, writes menu
// item sort orders.
type HTTPFetcher struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &HTTPFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// WithToken returns a copy that authenticates writes with a bearer token.
func (f *HTTPFetcher) WithToken(token string) *HTTPFetcher {
	cp := *f
	cp.token = token
	return &cp
}

func (f *HTTPFetcher) Fetch(ctx context.Context, storeID uuid.UUID, playlistID *uuid.UUID) (*snapshot.Snapshot, error) {
	url := fmt.Sprintf("%s/display/%s", f.baseURL, storeID)
	if playlistID != nil {
		url += "/" + playlistID.String()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build snapshot request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "snapshot request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSnapshotBytes))
	if err != nil {
		return nil, errs.Wrap(err, "failed to read snapshot")
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, display.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, errs.Newf("snapshot request returned %d", resp.StatusCode)
	}
	return snapshot.Decode(body)
}

// UpdateSortOrder sends one sort order write. Any non-2xx answer is an error.
func (f *HTTPFetcher) UpdateSortOrder(ctx context.Context, itemID uuid.UUID, sortOrder int) error {
	payload, err := json.Marshal(map[string]int{"sort_order": sortOrder})
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/api/menu-items/%s/sort-order", f.baseURL, itemID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build sort order request")
	}
	req.Header.Set("Content-Type", "application/json")
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "sort order request failed")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.Mark(errs.Newf("sort order write for %s returned %d", itemID, resp.StatusCode), ErrWriteRejected)
	}
	return nil
}
