package main

import (
	"context"

	"signage-sync/internal/display/transport"
	"signage-sync/internal/editor/reorder"
	"signage-sync/internal/pkg/clock"
	"signage-sync/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newReorderCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "reorder ITEM_ID...",
		Short: "Move menu items into the given order",
		Long: `reorder takes a subset of the store's active menu items in their new order.
The items keep the sort order slots they already hold; only items whose slot
changes are written.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(v)
			if err != nil {
				return err
			}
			ids := make([]uuid.UUID, len(args))
			for i, arg := range args {
				if ids[i], err = uuid.Parse(arg); err != nil {
					return errs.Wrap(err, "invalid item id")
				}
			}
			return runReorder(cmd.Context(), opts, ids)
		},
	}
}

func runReorder(ctx context.Context, opts options, ids []uuid.UUID) error {
	if opts.Token == "" {
		return errs.New("--token is required for writes")
	}
	storeID, _, err := opts.target()
	if err != nil {
		return err
	}
	logger := opts.logger().With("store_id", storeID)
	fetcher := transport.NewHTTPFetcher(opts.Server, opts.FetchTimeout)

	load := func(ctx context.Context) (map[uuid.UUID]int, error) {
		snap, err := fetcher.Fetch(ctx, storeID, nil)
		if err != nil {
			return nil, err
		}
		if snap.Offline {
			return nil, errs.New("store is offline")
		}
		baseline := make(map[uuid.UUID]int, len(snap.MenuItems))
		for _, item := range snap.MenuItems {
			baseline[item.ID] = item.SortOrder
		}
		return baseline, nil
	}

	baseline, err := load(ctx)
	if err != nil {
		return err
	}

	var buf *reorder.Buffer
	buf = reorder.NewBuffer(fetcher.WithToken(opts.Token), func(ctx context.Context) {
		fresh, err := load(ctx)
		if err != nil {
			logger.Warn("refetch after failed reorder", "error", err)
			return
		}
		buf.Reset(fresh)
	}, clock.NewRealClock(), logger)
	defer buf.Close()

	buf.Reset(baseline)
	buf.OnLocal(func(order []uuid.UUID) {
		logger.Debug("local order", "items", len(order))
	})
	buf.Reorder(ids)

	writes := buf.Pending()
	if err := buf.Flush(ctx); err != nil {
		return err
	}
	logger.Info("sort order saved", "writes", writes)
	return nil
}
