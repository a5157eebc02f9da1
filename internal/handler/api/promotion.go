package api

import (
	"net/http"

	reqdto "signage-sync/internal/handler/dto/request"
	resdto "signage-sync/internal/handler/dto/response"
	"signage-sync/internal/handler/httperr"
	"signage-sync/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PromotionHandler struct {
	cmds commands.PromotionCommands
}

func NewPromotionHandler(cmds commands.PromotionCommands) *PromotionHandler {
	return &PromotionHandler{cmds: cmds}
}

// @Summary Create promotion
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePromotionRequest true "Promotion"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/promotions [post]
func (h *PromotionHandler) Create(c *gin.Context) {
	var req reqdto.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreatePromotion(c.Request.Context(), req.StoreID, req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/promotions/"+result.PromotionID.String())
	c.JSON(http.StatusCreated, resdto.NewCreatedResponse(result.PromotionID))
}

// @Summary Replace promotion
// @Tags promotions
// @Accept json
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Param request body reqdto.PromotionRequest true "Promotion"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/promotions/{id} [put]
func (h *PromotionHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdatePromotion(c.Request.Context(), id, req.ToInput()); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete promotion
// @Tags promotions
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/promotions/{id} [delete]
func (h *PromotionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeletePromotion(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
