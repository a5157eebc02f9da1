package api

import (
	"net/http"

	"signage-sync/internal/infra/broadcast"

	"github.com/gin-gonic/gin"
)

type StatsProvider interface {
	Stats() broadcast.Stats
}

type RealtimeHandler struct {
	stats StatsProvider
}

func NewRealtimeHandler(stats StatsProvider) *RealtimeHandler {
	return &RealtimeHandler{stats: stats}
}

// @Summary Realtime bus statistics
// @Tags realtime
// @Produce json
// @Security BearerAuth
// @Success 200 {object} broadcast.Stats
// @Failure 401 {object} map[string]string
// @Router /api/realtime/stats [get]
func (h *RealtimeHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.stats.Stats())
}
