//go:build unit

package api_test

import (
	"net/http"

	"signage-sync/internal/handler/httperr"
	"signage-sync/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// fakeAuth stands in for the JWT middleware: any bearer token is an owner.
func fakeAuth(c *gin.Context) {
	if c.GetHeader("Authorization") == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("no token"), "Unauthorized", nil)
		return
	}
	c.Set("user_id", uuid.New())
	c.Set("user_role", "owner")
	c.Next()
}
