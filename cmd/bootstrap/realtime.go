package bootstrap

import (
	"context"
	"log/slog"
	"os"

	"signage-sync/internal/infra/broadcast"
	"signage-sync/internal/pkg/config"
	"signage-sync/internal/usecase/shared"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// RealtimeModule owns the in-process hub and, when brokers are configured,
// the Kafka relay that shares change signals between instances.
var RealtimeModule = fx.Module("realtime",
	fx.Provide(
		NewInstanceID,
		NewHub,
		NewChangePublisher,
	),
)

type InstanceID string

func NewInstanceID() InstanceID {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "signage"
	}
	return InstanceID(host + "-" + uuid.NewString()[:8])
}

func NewHub(lc fx.Lifecycle, id InstanceID, logger *slog.Logger) *broadcast.Hub {
	hub := broadcast.NewHub(string(id), logger.With("component", "hub"))
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go hub.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
	return hub
}

func NewChangePublisher(lc fx.Lifecycle, cfg config.Config, id InstanceID, hub *broadcast.Hub, logger *slog.Logger) (shared.ChangePublisher, error) {
	if !cfg.Realtime.RelayEnabled() {
		logger.Info("kafka relay disabled, change signals stay in process")
		return hub, nil
	}

	relay, err := broadcast.DialKafkaRelay(cfg.Realtime.KafkaBrokers, cfg.Realtime.KafkaTopic, string(id), hub, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return relay.Start(ctx)
		},
		OnStop: func(_ context.Context) error {
			return relay.Stop()
		},
	})
	return relay, nil
}
