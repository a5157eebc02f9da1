package transport

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"signage-sync/internal/domain/change"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const wsWriteWait = 10 * time.Second

// WSSubscriber keeps a bus connection open for one store. Every (re)connect
// sends join-store again. After a reconnect it emits a synthetic store_update
// because signals sent while disconnected are gone.
type WSSubscriber struct {
	url        string
	dialer     *websocket.Dialer
	logger     *slog.Logger
	newBackOff func() backoff.BackOff
}

func NewWSSubscriber(baseURL string, logger *slog.Logger) *WSSubscriber {
	return &WSSubscriber{
		url:    WebSocketURL(baseURL),
		dialer: websocket.DefaultDialer,
		logger: logger,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = time.Second
			b.MaxInterval = 30 * time.Second
			b.MaxElapsedTime = 0
			return b
		},
	}
}

// WithBackOff replaces the reconnect pacing.
func (s *WSSubscriber) WithBackOff(fn func() backoff.BackOff) *WSSubscriber {
	s.newBackOff = fn
	return s
}

// WebSocketURL maps an http(s) server URL to its ws(s) bus endpoint.
func WebSocketURL(baseURL string) string {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return baseURL
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	case "http":
		u.Scheme = "ws"
	}
	u.Path += "/ws"
	return u.String()
}

func (s *WSSubscriber) Subscribe(ctx context.Context, storeID uuid.UUID) <-chan change.Signal {
	// One slot: a pending signal already means refetch, more add nothing.
	out := make(chan change.Signal, 1)
	go s.loop(ctx, storeID, out)
	return out
}

func (s *WSSubscriber) loop(ctx context.Context, storeID uuid.UUID, out chan change.Signal) {
	defer close(out)
	logger := s.logger.With("store_id", storeID, "url", s.url)
	b := s.newBackOff()
	connected := false

	for ctx.Err() == nil {
		conn, _, err := s.dialer.DialContext(ctx, s.url, http.Header{})
		if err == nil {
			if err = join(conn, storeID); err != nil {
				_ = conn.Close()
			}
		}
		if err != nil {
			wait := b.NextBackOff()
			if wait == backoff.Stop {
				logger.Error("giving up on change bus", "error", err)
				return
			}
			logger.Warn("change bus connect failed", "error", err, "retry_in", wait)
			if !sleep(ctx, wait) {
				return
			}
			continue
		}
		b.Reset()

		if connected {
			logger.Info("change bus reconnected")
			offer(out, change.NewSignal(change.StoreUpdate, storeID, time.Now()))
		}
		connected = true

		s.read(ctx, conn, storeID, out, logger)
	}
}

func join(conn *websocket.Conn, storeID uuid.UUID) error {
	if err := conn.SetWriteDeadline(time.Now().Add(wsWriteWait)); err != nil {
		return err
	}
	return conn.WriteJSON(change.Join(storeID))
}

// read forwards signals until the connection breaks or ctx is done.
func (s *WSSubscriber) read(ctx context.Context, conn *websocket.Conn, storeID uuid.UUID, out chan change.Signal, logger *slog.Logger) {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
		case <-stop:
		}
		_ = conn.Close()
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				logger.Warn("change bus connection lost", "error", err)
			}
			return
		}
		sig, err := change.Decode(raw)
		if err != nil {
			logger.Debug("ignoring malformed bus message", "error", err)
			continue
		}
		if sig.StoreID != storeID {
			continue
		}
		offer(out, sig)
	}
}

func offer(out chan change.Signal, sig change.Signal) {
	select {
	case out <- sig:
	default:
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
