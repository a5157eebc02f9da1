// Package bootstrap assembles the server's fx graph. Each module provides
// one layer; Module is the full process.
package bootstrap

import (
	"signage-sync/cmd/bootstrap/components"
	"signage-sync/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	EventLogger,
	DBModule,
	JWTModule,
	RealtimeModule,
	components.RepositoryModule,
	components.UseCaseModule,
	SchedulerModule,
	components.HandlerModule,
)
