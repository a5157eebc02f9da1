package api

import (
	"net/http"

	reqdto "signage-sync/internal/handler/dto/request"
	"signage-sync/internal/handler/httperr"
	"signage-sync/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	cmds commands.MenuCommands
}

func NewMenuHandler(cmds commands.MenuCommands) *MenuHandler {
	return &MenuHandler{cmds: cmds}
}

// @Summary Move a menu item
// @Description Set one item's sort order. Editors send one request per changed item.
// @Tags menu
// @Accept json
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Param request body reqdto.SortOrderRequest true "New sort order"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/menu-items/{id}/sort-order [patch]
func (h *MenuHandler) UpdateSortOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SortOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateSortOrder(c.Request.Context(), id, *req.SortOrder); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Update a menu item
// @Description Partial update; absent fields keep their value.
// @Tags menu
// @Accept json
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Param request body reqdto.UpdateMenuItemRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/menu-items/{id} [patch]
func (h *MenuHandler) UpdateMenuItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateMenuItem(c.Request.Context(), id, req.ToCommand()); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
