package middleware

import (
	"log/slog"
	"slices"

	"signage-sync/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware allows the editor origins from config. A "*" entry opens
// the API to any origin, which kiosk players served from file:// need; it
// also turns credentials off since browsers refuse both together.
func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    append(slices.Clone(cfg.ExposeHeaders), requestIDHeader),
		AllowCredentials: cfg.AllowCredentials,
		AllowWebSockets:  true,
		MaxAge:           cfg.MaxAge,
	}
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	logger.Info("cors configured", "allow_all", corsCfg.AllowAllOrigins, "allow_origins", corsCfg.AllowOrigins)
	return cors.New(corsCfg)
}
