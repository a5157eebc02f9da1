package bootstrap

import (
	"log/slog"

	"signage-sync/internal/handler/middleware"
	"signage-sync/internal/pkg/config"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// EventLogger routes fx's lifecycle events through the process logger at
// debug level. It must be applied at the root of the graph.
var EventLogger = fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
	l := &fxevent.SlogLogger{Logger: logger.With("component", "fx")}
	l.UseLogLevel(slog.LevelDebug)
	return l
})

func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
