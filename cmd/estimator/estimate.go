package main

import (
	"github.com/spf13/cobra"

	"estimator_backend/internal/catalog/cache"
	"estimator_backend/internal/catalog/repository"
	catalogsvc "estimator_backend/internal/catalog/service"
	estimatesvc "estimator_backend/internal/estimates/service"
	"estimator_backend/internal/estimates/transport"
	"estimator_backend/platform/config"
	"estimator_backend/platform/db"
	"estimator_backend/platform/validator"
)

func estimateCmd() *cobra.Command {
	var (
		req  transport.EstimateRequest
		area float64
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate project costs from the catalog database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("area") {
				req.Area = &area
			}
			if err := validator.New().Struct(req); err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := cliLogger(cmd)

			ctx := cmd.Context()
			pool, err := db.NewPool(ctx, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			catalog := catalogsvc.New(repository.New(pool), log, cache.WithTTL(cfg.GetCatalogCacheTTL()))
			estimate, err := estimatesvc.New(catalog, cfg, log).Estimate(ctx, req)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), transport.ToEstimateResponse(estimate))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.ProjectType, "project-type", "", "project type, e.g. bathroom or kitchen")
	flags.Float64Var(&area, "area", 0, "area in square metres")
	flags.StringVar(&req.Location, "location", "", "project location")
	flags.StringVar(&req.Complexity, "complexity", "", "complexity (basic, standard, complex)")
	flags.StringVar(&req.QualityTier, "tier", "", "quality tier (budget, mid_range, premium)")
	flags.StringVar(&req.Season, "season", "", "season for tool hire pricing")
	flags.BoolVar(&req.IncludeTools, "tools", false, "include tool hire costs")
	flags.StringVar(&req.ToolRatePeriod, "tool-period", "", "tool hire period (daily, weekly)")
	_ = cmd.MarkFlagRequired("project-type")
	return cmd
}
