package bootstrap

import (
	"context"
	"log/slog"

	"signage-sync/internal/infra/readstore"
	"signage-sync/internal/pkg/clock"
	"signage-sync/internal/pkg/config"
	"signage-sync/internal/usecase/lifecycle"
	"signage-sync/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		fx.Annotate(
			func(pool *pgxpool.Pool) *readstore.PromotionTransitionStore {
				return readstore.NewPromotionTransitionStore(pool)
			},
			fx.As(new(lifecycle.TransitionFinder)),
		),
		NewScheduler,
	),
	fx.Invoke(func(*lifecycle.Scheduler) {}),
)

func NewScheduler(lc fx.Lifecycle, cfg config.Config, finder lifecycle.TransitionFinder, publisher shared.ChangePublisher, clk clock.Clock, logger *slog.Logger) *lifecycle.Scheduler {
	s := lifecycle.NewScheduler(finder, publisher, clk, cfg.Scheduler.Interval, logger.With("component", "scheduler"))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				s.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
	return s
}
