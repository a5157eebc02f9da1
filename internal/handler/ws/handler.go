package ws

import (
	"log/slog"
	"net/http"

	"signage-sync/internal/infra/broadcast"
	"signage-sync/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type Handler struct {
	hub      *broadcast.Hub
	cfg      broadcast.ClientConfig
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

func NewHandler(hub *broadcast.Hub, cfg config.RealtimeConfig, logger *slog.Logger) *Handler {
	return &Handler{
		hub: hub,
		cfg: broadcast.ClientConfig{
			SendBuffer:   cfg.SendBuffer,
			PingInterval: cfg.PingInterval,
		},
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// displays are served from any origin and carry no credentials
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

// @Summary Change signal stream
// @Description Upgrades to a WebSocket. Send {"action":"join-store","store_id":...} to receive that store's signals.
// @Tags realtime
// @Router /ws [get]
func (h *Handler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	broadcast.NewClient(h.hub, conn, h.cfg, h.logger).Start()
}
