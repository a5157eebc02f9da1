//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"signage-sync/internal/handler/httperr"
	"signage-sync/internal/handler/middleware"
	"signage-sync/internal/pkg/config"
	"signage-sync/internal/pkg/errs"
	"signage-sync/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter(logs *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	router := gin.New()
	router.Use(middleware.Recovery(logger), middleware.LoggingMiddleware(logger), middleware.ErrorHandler())
	return router
}

func TestRecovery(t *testing.T) {
	var logs bytes.Buffer
	router := newRouter(&logs)
	router.GET("/boom", func(*gin.Context) { panic("slide index out of range") })

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/boom", nil, "")

	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	assert.Contains(t, logs.String(), "slide index out of range")
	assert.Contains(t, logs.String(), "request_id=")
}

func TestErrorHandler(t *testing.T) {
	var logs bytes.Buffer
	router := newRouter(&logs)
	router.GET("/recorded", func(c *gin.Context) {
		_ = c.Error(gin.Error{
			Err:  errs.New("playlist missing"),
			Type: gin.ErrorTypePublic,
			Meta: httperr.New(http.StatusNotFound, "Playlist not found", nil),
		})
	})
	router.GET("/private", func(c *gin.Context) {
		_ = c.Error(errs.New("pool exhausted"))
	})

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/recorded", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Playlist not found")

	rec = httptest.PerformRequest(t, router, http.MethodGet, "/private", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	assert.NotContains(t, rec.Body.String(), "pool exhausted")
}

func TestLoggingMiddleware(t *testing.T) {
	var logs bytes.Buffer
	router := newRouter(&logs)
	router.GET("/display/:storeId", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.PATCH("/api/stores/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	t.Run("request id is echoed or generated", func(t *testing.T) {
		req := nethttptest.NewRequest(http.MethodPatch, "/api/stores/1", nil)
		req.Header.Set("X-Request-ID", "editor-42")
		rec := nethttptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, "editor-42", rec.Header().Get("X-Request-ID"))

		rec = httptest.PerformRequest(t, router, http.MethodPatch, "/api/stores/1", nil, "")
		assert.Len(t, rec.Header().Get("X-Request-ID"), 36)
	})

	t.Run("display polls log at debug", func(t *testing.T) {
		logs.Reset()
		httptest.PerformRequest(t, router, http.MethodGet, "/display/abc", nil, "")
		assert.Contains(t, logs.String(), "level=DEBUG")
		assert.Contains(t, logs.String(), "store_id=abc")
	})
}

func TestNewCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	cfg := config.CORSConfig{
		AllowMethods:     []string{"GET", "PATCH"},
		AllowHeaders:     []string{"Authorization"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}

	preflight := func(router *gin.Engine, origin string) *nethttptest.ResponseRecorder {
		req := nethttptest.NewRequest(http.MethodOptions, "/display/abc", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		rec := nethttptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("listed origins only", func(t *testing.T) {
		cfg := cfg
		cfg.AllowOrigins = []string{"https://editor.example.com"}
		router := gin.New()
		router.Use(middleware.NewCORSMiddleware(cfg, logger))

		rec := preflight(router, "https://editor.example.com")
		assert.Equal(t, "https://editor.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

		rec = preflight(router, "https://elsewhere.example.com")
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard drops credentials", func(t *testing.T) {
		cfg := cfg
		cfg.AllowOrigins = []string{"*"}
		router := gin.New()
		router.Use(middleware.NewCORSMiddleware(cfg, logger))

		rec := preflight(router, "https://kiosk.example.com")
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	})
}
