package bootstrap

import (
	"context"
	"log/slog"

	"signage-sync/internal/infra/db"
	"signage-sync/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB connects during graph construction so a bad DSN fails startup
// before the listener opens.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB, logger.With("component", "db"))
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(cleanup))
	return pool, nil
}
