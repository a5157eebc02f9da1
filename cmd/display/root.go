package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"signage-sync/internal/display"
	"signage-sync/internal/display/cycle"
	"signage-sync/internal/handler/middleware"
	"signage-sync/internal/pkg/config"
	"signage-sync/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "SIGNAGE"

type options struct {
	Server          string        `mapstructure:"server"`
	Store           string        `mapstructure:"store"`
	Playlist        string        `mapstructure:"playlist"`
	Token           string        `mapstructure:"token"`
	FetchTimeout    time.Duration `mapstructure:"fetch-timeout"`
	BoundaryMargin  time.Duration `mapstructure:"boundary-margin"`
	PageInterval    time.Duration `mapstructure:"page-interval"`
	InitialAttempts int           `mapstructure:"initial-attempts"`
	LogLevel        string        `mapstructure:"log-level"`
}

// target parses the store and the optional playlist the screen is bound to.
func (o options) target() (uuid.UUID, *uuid.UUID, error) {
	storeID, err := uuid.Parse(o.Store)
	if err != nil {
		return uuid.Nil, nil, errs.Wrap(err, "invalid --store")
	}
	if o.Playlist == "" {
		return storeID, nil, nil
	}
	playlistID, err := uuid.Parse(o.Playlist)
	if err != nil {
		return uuid.Nil, nil, errs.Wrap(err, "invalid --playlist")
	}
	return storeID, &playlistID, nil
}

func (o options) clientConfig() (display.Config, error) {
	storeID, playlistID, err := o.target()
	if err != nil {
		return display.Config{}, err
	}
	return display.Config{
		StoreID:         storeID,
		PlaylistID:      playlistID,
		BoundaryMargin:  o.BoundaryMargin,
		InitialAttempts: o.InitialAttempts,
	}, nil
}

func (o options) logger() *slog.Logger {
	return middleware.NewLogger(config.LogConfig{
		Level:      o.LogLevel,
		TimeZone:   "UTC",
		TimeFormat: time.RFC3339,
	}).GetSlogLogger()
}

func newRootCmd() (*cobra.Command, *viper.Viper) {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:   "signage-display",
		Short: "Runs a signage screen against a signage server",
		Long: `signage-display loads a store's display snapshot, follows change signals
over the WebSocket bus and cycles slides, pages and promotion banners the way a
mounted screen does. Frames are written to the log.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cfgFile)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.signage-display.yaml)")
	flags.String("server", "http://localhost:8080", "signage server base URL")
	flags.String("store", "", "store id the screen shows")
	flags.String("playlist", "", "playlist id; empty uses the store default")
	flags.String("token", "", "owner access token for writes")
	flags.Duration("fetch-timeout", 10*time.Second, "timeout of one snapshot request")
	flags.Duration("boundary-margin", display.DefaultBoundaryMargin, "delay after a promotion boundary before refetching")
	flags.Duration("page-interval", cycle.DefaultPageInterval, "dwell time of one page without a playlist")
	flags.Int("initial-attempts", display.DefaultInitialAttempts, "attempts of the first snapshot load")
	flags.String("log-level", "info", "debug, info, warn or error")
	cobra.CheckErr(v.BindPFlags(flags))

	root.AddCommand(newRunCmd(v), newReorderCmd(v))
	return root, v
}

func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(".signage-display")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", v.ConfigFileUsed())
	} else if cfgFile != "" {
		return errs.Wrap(err, "read config")
	}
	return nil
}

func loadOptions(v *viper.Viper) (options, error) {
	var o options
	if err := v.Unmarshal(&o); err != nil {
		return options{}, errs.Wrap(err, "decode options")
	}
	if o.Store == "" {
		return options{}, errs.New("--store is required")
	}
	return o, nil
}

func Execute() {
	root, _ := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
