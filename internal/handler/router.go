package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"signage-sync/internal/handler/api"
	"signage-sync/internal/handler/middleware"
	"signage-sync/internal/handler/ws"
	"signage-sync/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Display   *api.DisplayHandler
	Menu      *api.MenuHandler
	Promotion *api.PromotionHandler
	Store     *api.StoreHandler
	Playlist  *api.PlaylistHandler
	Realtime  *api.RealtimeHandler
	WS        *ws.Handler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	engine.Use(middleware.Recovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// displays are unauthenticated
	noStore := []gin.HandlerFunc{middleware.NoStore()}
	display := engine.Group("/display")
	addRoutes(display, []route{
		{Method: http.MethodGet, Path: "/:storeId", Handler: h.Display.GetSnapshot, Mw: noStore},
		{Method: http.MethodGet, Path: "/:storeId/:playlistId", Handler: h.Display.GetSnapshot, Mw: noStore},
	})
	engine.GET("/ws", h.WS.Serve)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth(), middleware.RequireRole(middleware.RoleOwner, middleware.RoleAdmin))
	{
		addRoutes(apiGroup.Group("/menu-items"), []route{
			{Method: http.MethodPatch, Path: "/:id/sort-order", Handler: h.Menu.UpdateSortOrder},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Menu.UpdateMenuItem},
		})
		addRoutes(apiGroup.Group("/promotions"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Promotion.Create},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Promotion.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Promotion.Delete},
		})
		addRoutes(apiGroup.Group("/stores"), []route{
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Store.Update},
		})
		addRoutes(apiGroup.Group("/playlists"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Playlist.Create},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Playlist.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Playlist.Delete},
		})
		addRoutes(apiGroup.Group("/realtime"), []route{
			{Method: http.MethodGet, Path: "/stats", Handler: h.Realtime.Stats},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
