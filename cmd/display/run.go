package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"signage-sync/internal/display"
	"signage-sync/internal/display/cycle"
	"signage-sync/internal/display/transport"
	"signage-sync/internal/pkg/clock"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRunCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Show a store until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := loadOptions(v)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runDisplay(ctx, opts)
		},
	}
}

func runDisplay(ctx context.Context, opts options) error {
	cfg, err := opts.clientConfig()
	if err != nil {
		return err
	}
	logger := opts.logger()
	clk := clock.NewRealClock()

	fetcher := transport.NewHTTPFetcher(opts.Server, opts.FetchTimeout)
	subscriber := transport.NewWSSubscriber(opts.Server, logger)
	client := display.NewClient(cfg, fetcher, subscriber, clk, logger)

	engine := cycle.NewEngine(clk, opts.PageInterval, logger)
	defer engine.Stop()

	client.OnUpdate(func(view display.View) {
		logger.Info("display state", "state", view.State, "stale_fetches", client.Stale())
		engine.Load(view.Snapshot)
	})
	engine.OnFrame(func(f cycle.Frame) { logFrame(logger, f) })

	return client.Run(ctx)
}

// logFrame skips the fade-out half of a crossfade.
func logFrame(logger *slog.Logger, f cycle.Frame) {
	switch {
	case f.Empty:
		return
	case f.Offline:
		logger.Info("store offline")
		return
	case !f.Visible:
		return
	}

	attrs := []any{
		"mode", f.Mode,
		"index", f.Index,
		"count", f.Count,
		"items", len(f.Items),
		"theme", f.Layout.Theme,
	}
	if f.Label != "" {
		attrs = append(attrs, "label", f.Label)
	}
	if f.Header.Clock != "" {
		attrs = append(attrs, "clock", f.Header.Clock)
	}
	if f.Banner != nil {
		attrs = append(attrs, "banner", f.Banner.Title)
	}
	if f.Placeholder {
		attrs = append(attrs, "placeholder", true)
	}
	logger.Info("frame", attrs...)
}
