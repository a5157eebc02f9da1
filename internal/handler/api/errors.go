package api

import (
	"net/http"

	"signage-sync/internal/handler/httperr"
	"signage-sync/internal/pkg/errs"
	"signage-sync/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var notFoundMessages = []struct {
	err error
	msg string
}{
	{errs.ErrStoreNotFound, "Store not found"},
	{errs.ErrPlaylistNotFound, "Playlist not found"},
	{errs.ErrMenuItemNotFound, "Menu item not found"},
	{errs.ErrPromotionNotFound, "Promotion not found"},
}

// abortWithUseCaseError maps use-case errors onto HTTP statuses. Validation
// failures carry their reason; anything unknown is a 500.
func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", gin.H{"reason": err.Error()})
		return
	case errs.Is(err, commands.ErrUnknownReference):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown reference", nil)
		return
	}
	for _, nf := range notFoundMessages {
		if errs.Is(err, nf.err) {
			httperr.AbortWithError(c, http.StatusNotFound, err, nf.msg, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
}

func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
