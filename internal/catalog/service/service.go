package service

import (
	"context"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"estimator_backend/internal/catalog/cache"
	"estimator_backend/internal/catalog/domain"
	"estimator_backend/internal/catalog/repository"
	"estimator_backend/platform/logger"
)

const regionsKey = "all"

// Service serves catalog reads through per-category snapshot caches.
type Service struct {
	tools       *cache.Cache[[]domain.ToolHireItem]
	labor       *cache.Cache[[]domain.LaborCost]
	materials   *cache.Cache[[]domain.MaterialCost]
	regulations *cache.Cache[[]domain.BuildingRegulation]
	regions     *cache.Cache[domain.RegionalMultipliers]
	log         *logger.Logger
}

// New creates a catalog service reading through provider.
func New(provider repository.Provider, log *logger.Logger, opts ...cache.Option) *Service {
	opts = append([]cache.Option{cache.WithLogger(log)}, opts...)

	return &Service{
		tools: cache.New("tools", func(ctx context.Context, key string) ([]domain.ToolHireItem, error) {
			return provider.ListToolHire(ctx, domain.ParseFilterKey(key))
		}, opts...),
		labor: cache.New("labor", func(ctx context.Context, key string) ([]domain.LaborCost, error) {
			return provider.ListLaborCosts(ctx, domain.ParseFilterKey(key))
		}, opts...),
		materials: cache.New("materials", func(ctx context.Context, key string) ([]domain.MaterialCost, error) {
			return provider.ListMaterialCosts(ctx, domain.ParseFilterKey(key))
		}, opts...),
		regulations: cache.New("regulations", func(ctx context.Context, key string) ([]domain.BuildingRegulation, error) {
			return provider.ListBuildingRegulations(ctx, domain.ParseFilterKey(key))
		}, opts...),
		regions: cache.New("regions", func(ctx context.Context, _ string) (domain.RegionalMultipliers, error) {
			return provider.ListRegionalMultipliers(ctx)
		}, opts...),
		log: log,
	}
}

// Tools returns hireable tools matching filter.
func (s *Service) Tools(ctx context.Context, filter domain.Filter) ([]domain.ToolHireItem, error) {
	rows, err := s.tools.Get(ctx, filter.Key())
	return slices.Clone(rows), err
}

// Labor returns labor rates matching filter.
func (s *Service) Labor(ctx context.Context, filter domain.Filter) ([]domain.LaborCost, error) {
	rows, err := s.labor.Get(ctx, filter.Key())
	return slices.Clone(rows), err
}

// Materials returns material prices matching filter.
func (s *Service) Materials(ctx context.Context, filter domain.Filter) ([]domain.MaterialCost, error) {
	rows, err := s.materials.Get(ctx, filter.Key())
	return slices.Clone(rows), err
}

// Regulations returns building regulations matching filter.
func (s *Service) Regulations(ctx context.Context, filter domain.Filter) ([]domain.BuildingRegulation, error) {
	rows, err := s.regulations.Get(ctx, filter.Key())
	return slices.Clone(rows), err
}

// Regions returns the regional multiplier table.
func (s *Service) Regions(ctx context.Context) (domain.RegionalMultipliers, error) {
	table, err := s.regions.Get(ctx, regionsKey)
	if err != nil {
		return nil, err
	}
	out := make(domain.RegionalMultipliers, len(table))
	for region, m := range table {
		out[region] = m
	}
	return out, nil
}

// SnapshotQuery selects the rows an estimate needs.
type SnapshotQuery struct {
	ProjectType  string
	Region       string
	IncludeTools bool
}

// Snapshot loads every category for a project in parallel. A category
// that is cold and whose fetch fails aborts the snapshot; empty
// categories do not.
func (s *Service) Snapshot(ctx context.Context, q SnapshotQuery) (domain.Snapshot, error) {
	category := strings.ToLower(strings.TrimSpace(q.ProjectType))
	var snap domain.Snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.Labor(gctx, domain.Filter{Category: category, Region: q.Region})
		snap.Labor = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.Materials(gctx, domain.Filter{Category: category})
		snap.Materials = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.Regulations(gctx, domain.Filter{Category: category})
		snap.Regulations = rows
		return err
	})
	g.Go(func() error {
		table, err := s.Regions(gctx)
		snap.Regions = table
		return err
	})
	if q.IncludeTools {
		g.Go(func() error {
			rows, err := s.Tools(gctx, domain.Filter{Category: category})
			snap.Tools = rows
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Snapshot{}, err
	}
	return snap, nil
}

// Caches exposes the caches for invalidation fan-out.
func (s *Service) Caches() []cache.Invalidatable {
	return []cache.Invalidatable{s.tools, s.labor, s.materials, s.regulations, s.regions}
}

// InvalidateAll marks every cached snapshot stale.
func (s *Service) InvalidateAll() {
	for _, c := range s.Caches() {
		c.InvalidateAll()
	}
	s.log.Info("catalog caches invalidated")
}
