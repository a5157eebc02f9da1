package components

import (
	"log/slog"

	"signage-sync/internal/infra/readstore"
	"signage-sync/internal/infra/uow"
	"signage-sync/internal/usecase/queries"

	"go.uber.org/fx"
)

// Write repositories live behind the unit of work; only the read side is
// provided on its own.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		uow.NewPostgresUoW,
		fx.Annotate(
			func(logger *slog.Logger) *readstore.DisplayReadStore {
				return readstore.NewDisplayReadStore(logger.With("component", "readstore"))
			},
			fx.As(new(queries.DisplayReadStore)),
		),
	),
)
