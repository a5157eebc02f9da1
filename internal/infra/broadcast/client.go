package broadcast

import (
	"log/slog"
	"time"

	"signage-sync/internal/domain/change"

	"github.com/gorilla/websocket"
)

const (
	writeWait           = 10 * time.Second
	maxMessageSize      = 1024
	DefaultPingInterval = 30 * time.Second
)

type ClientConfig struct {
	SendBuffer   int
	PingInterval time.Duration
}

// Client bridges one WebSocket connection and the hub. The connection sends
// join/leave messages; the hub's signals go back as text frames.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	sub    *Subscriber
	ping   time.Duration
	logger *slog.Logger
}

func NewClient(hub *Hub, conn *websocket.Conn, cfg ClientConfig, logger *slog.Logger) *Client {
	ping := cfg.PingInterval
	if ping <= 0 {
		ping = DefaultPingInterval
	}
	return &Client{
		hub:    hub,
		conn:   conn,
		sub:    NewSubscriber(cfg.SendBuffer),
		ping:   ping,
		logger: logger.With("remote", conn.RemoteAddr().String()),
	}
}

// Start runs the read and write pumps on their own goroutines.
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}

func (c *Client) pongWait() time.Duration {
	return c.ping * 2
}

func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c.sub)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.pongWait()))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.pongWait()))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("websocket closed unexpectedly", "error", err)
			}
			return
		}
		sub, ok := change.ParseSubscription(raw)
		if !ok {
			c.logger.Debug("ignoring unrecognized client message")
			continue
		}
		switch sub.Action {
		case change.ActionJoin:
			c.hub.Join(c.sub, sub.StoreID)
		case change.ActionLeave:
			c.hub.Leave(c.sub, sub.StoreID)
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(c.ping)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.sub.Messages():
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
