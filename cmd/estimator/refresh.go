package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"estimator_backend/internal/catalog/cache"
	"estimator_backend/internal/scheduler"
	"estimator_backend/platform/config"
)

func refreshCatalogCmd() *cobra.Command {
	var (
		cacheName string
		keys      []string
		enqueue   bool
	)

	cmd := &cobra.Command{
		Use:   "refresh-catalog",
		Short: "Mark cached catalog snapshots stale on every API replica",
		Long: `refresh-catalog publishes a catalog invalidation so running API servers
refetch on their next read. With --enqueue the request goes through the
scheduler queue instead, which retries while Redis pub/sub is unavailable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadWithoutDatabase()
			if err != nil {
				return err
			}
			if !cfg.IsRedisEnabled() {
				return fmt.Errorf("REDIS_URL is required to refresh the catalog")
			}
			ctx := cmd.Context()

			if enqueue {
				client, err := scheduler.NewClient(cfg)
				if err != nil {
					return err
				}
				defer func() { _ = client.Close() }()

				id, err := client.EnqueueCatalogRefresh(ctx, scheduler.CatalogRefreshPayload{
					Cache:  cacheName,
					Keys:   keys,
					Reason: "cli",
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "enqueued catalog refresh %s\n", id)
				return nil
			}

			client, err := scheduler.NewRedisClient(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			invalidator := cache.NewRedisInvalidator(client, cfg.GetCatalogInvalidationChannel(), cliLogger(cmd))
			if err := invalidator.Publish(ctx, cache.InvalidationMessage{Cache: cacheName, Keys: keys}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "catalog invalidation published")
			return nil
		},
	}

	cmd.Flags().StringVar(&cacheName, "cache", "", "cache to invalidate (tools, labor, materials, regulations, regions); empty for all")
	cmd.Flags().StringSliceVar(&keys, "key", nil, "cache key to invalidate; repeatable, empty for all")
	cmd.Flags().BoolVar(&enqueue, "enqueue", false, "enqueue through the scheduler instead of publishing directly")
	return cmd
}
