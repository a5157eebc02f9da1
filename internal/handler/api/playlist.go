package api

import (
	"net/http"

	reqdto "signage-sync/internal/handler/dto/request"
	resdto "signage-sync/internal/handler/dto/response"
	"signage-sync/internal/handler/httperr"
	"signage-sync/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PlaylistHandler struct {
	cmds commands.PlaylistCommands
}

func NewPlaylistHandler(cmds commands.PlaylistCommands) *PlaylistHandler {
	return &PlaylistHandler{cmds: cmds}
}

// @Summary Create playlist
// @Tags playlists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePlaylistRequest true "Playlist"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/playlists [post]
func (h *PlaylistHandler) Create(c *gin.Context) {
	var req reqdto.CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreatePlaylist(c.Request.Context(), req.StoreID, req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/playlists/"+result.PlaylistID.String())
	c.JSON(http.StatusCreated, resdto.NewCreatedResponse(result.PlaylistID))
}

// @Summary Replace playlist
// @Tags playlists
// @Accept json
// @Security BearerAuth
// @Param id path string true "Playlist ID"
// @Param request body reqdto.PlaylistRequest true "Playlist"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/playlists/{id} [put]
func (h *PlaylistHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.PlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdatePlaylist(c.Request.Context(), id, req.ToInput()); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete playlist
// @Description Stores using it as default fall back to the flat menu.
// @Tags playlists
// @Security BearerAuth
// @Param id path string true "Playlist ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/playlists/{id} [delete]
func (h *PlaylistHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeletePlaylist(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
