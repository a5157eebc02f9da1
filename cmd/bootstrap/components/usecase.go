package components

import (
	"signage-sync/internal/pkg/clock"
	"signage-sync/internal/usecase"
	"signage-sync/internal/usecase/commands"
	"signage-sync/internal/usecase/queries"

	"go.uber.org/fx"
)

// UseCaseModule needs a shared.UnitOfWork, a shared.ChangePublisher and the
// display read store from the surrounding graph. Every use case reads time
// from the same clock so snapshots and change signals agree.
var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
	),
	fx.Module("usecase/queries",
		fx.Provide(queries.NewDisplayQueries),
	),
	fx.Module("usecase/commands",
		fx.Provide(
			commands.NewStoreUseCase,
			commands.NewMenuUseCase,
			commands.NewPromotionUseCase,
			commands.NewPlaylistUseCase,
		),
	),
)
