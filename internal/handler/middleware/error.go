package middleware

import (
	"log/slog"
	"net/http"

	"signage-sync/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the last public error when a handler recorded one
// without responding.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if last := c.Errors.ByType(gin.ErrorTypePublic).Last(); last != nil {
			if resp, ok := last.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			c.JSON(http.StatusInternalServerError, httperr.New(http.StatusInternalServerError, "Internal server error", nil))
		}
	}
}

// Recovery turns a panic into a 500 body and logs it with the request id.
// It must be the outermost middleware.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("recovered from panic",
					"panic", rec,
					"request_id", GetRequestID(c),
					"method", c.Request.Method,
					"path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.New(http.StatusInternalServerError, "Internal server error", nil))
			}
		}()
		c.Next()
	}
}
