package api

import (
	"net/http"

	resdto "signage-sync/internal/handler/dto/response"
	"signage-sync/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DisplayHandler struct {
	q queries.DisplayQueries
}

func NewDisplayHandler(q queries.DisplayQueries) *DisplayHandler {
	return &DisplayHandler{q: q}
}

// @Summary Get display snapshot
// @Description Everything a display renders for a store. An explicit playlist overrides the store default.
// @Tags display
// @Produce json
// @Param storeId path string true "Store ID"
// @Param playlistId path string false "Playlist ID"
// @Success 200 {object} queries.SnapshotView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /display/{storeId}/{playlistId} [get]
func (h *DisplayHandler) GetSnapshot(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	var playlistID *uuid.UUID
	if c.Param("playlistId") != "" {
		id, ok := parseID(c, "playlistId")
		if !ok {
			return
		}
		playlistID = &id
	}

	view, err := h.q.GetSnapshot(c.Request.Context(), storeID, playlistID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	if view.Offline {
		c.JSON(http.StatusOK, resdto.OfflineResponse{Offline: true})
		return
	}
	c.JSON(http.StatusOK, view)
}
