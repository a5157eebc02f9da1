package api

import (
	"net/http"

	reqdto "signage-sync/internal/handler/dto/request"
	"signage-sync/internal/handler/httperr"
	"signage-sync/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type StoreHandler struct {
	cmds commands.StoreCommands
}

func NewStoreHandler(cmds commands.StoreCommands) *StoreHandler {
	return &StoreHandler{cmds: cmds}
}

// @Summary Update store
// @Description Partial update of name, logo, activity, template and default playlist.
// @Tags stores
// @Accept json
// @Security BearerAuth
// @Param id path string true "Store ID"
// @Param request body reqdto.UpdateStoreRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/stores/{id} [patch]
func (h *StoreHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateStore(c.Request.Context(), id, req.ToCommand()); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
