package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	catalog "estimator_backend/internal/catalog/domain"
	catalogsvc "estimator_backend/internal/catalog/service"
	"estimator_backend/internal/estimates/domain"
	"estimator_backend/internal/estimates/transport"
	"estimator_backend/platform/apperr"
	"estimator_backend/platform/config"
	"estimator_backend/platform/logger"
)

const fallbackAreaSqm = 10

// CatalogReader is the narrow catalog port the estimator needs.
type CatalogReader interface {
	Snapshot(ctx context.Context, q catalogsvc.SnapshotQuery) (catalog.Snapshot, error)
}

// Service prices structured estimate requests.
type Service struct {
	catalog  CatalogReader
	defaults config.EstimateDefaultsConfig
	log      *logger.Logger
}

// New creates an estimates service.
func New(catalog CatalogReader, defaults config.EstimateDefaultsConfig, log *logger.Logger) *Service {
	return &Service{catalog: catalog, defaults: defaults, log: log}
}

// Estimate validates req, loads the catalog rows for its project type and
// prices them. Only invalid input and an unavailable cold catalog fail.
func (s *Service) Estimate(ctx context.Context, req transport.EstimateRequest) (domain.Estimate, error) {
	p, err := s.params(req)
	if err != nil {
		return domain.Estimate{}, err
	}

	snap, err := s.catalog.Snapshot(ctx, catalogsvc.SnapshotQuery{
		ProjectType:  p.ProjectType,
		Region:       p.Location,
		IncludeTools: p.IncludeTools,
	})
	if err != nil {
		return domain.Estimate{}, err
	}

	m := Resolve(snap.Regions, p.Location, p.Season, p.Complexity, p.QualityTier)
	est := Aggregate(p, snap, m)

	if len(est.Degraded) > 0 {
		degraded := make([]string, len(est.Degraded))
		for i, c := range est.Degraded {
			degraded[i] = string(c)
		}
		s.log.WithContext(ctx).EstimateDegraded(p.ProjectType, degraded, string(est.Confidence))
	}
	return est, nil
}

// params applies configured defaults and rejects malformed input.
func (s *Service) params(req transport.EstimateRequest) (Params, error) {
	projectType := strings.ToLower(strings.TrimSpace(req.ProjectType))
	if projectType == "" {
		return Params{}, apperr.Validation("project type is required")
	}

	area := s.defaultArea()
	if req.Area != nil {
		if *req.Area < 0 {
			return Params{}, apperr.Validation("area must not be negative").
				WithDetails(map[string]any{"area": *req.Area})
		}
		area = *req.Area
	}

	complexity, err := catalog.ParseComplexity(withDefault(req.Complexity, s.defaultComplexity()))
	if err != nil {
		return Params{}, apperr.Validation(err.Error())
	}
	tier, err := catalog.ParseQualityTier(withDefault(req.QualityTier, s.defaultQualityTier()))
	if err != nil {
		return Params{}, apperr.Validation(err.Error())
	}
	season, err := catalog.ParseSeason(req.Season)
	if err != nil {
		return Params{}, apperr.Validation(err.Error())
	}
	period, err := catalog.ParseRatePeriod(req.ToolRatePeriod)
	if err != nil {
		return Params{}, apperr.Validation(err.Error())
	}

	return Params{
		ProjectType:  projectType,
		Area:         decimal.NewFromFloat(area),
		Location:     strings.TrimSpace(req.Location),
		Complexity:   complexity,
		QualityTier:  tier,
		Season:       season,
		IncludeTools: req.IncludeTools,
		ToolPeriod:   period,
	}, nil
}

func (s *Service) defaultArea() float64 {
	if s.defaults != nil && s.defaults.GetDefaultAreaSqm() > 0 {
		return s.defaults.GetDefaultAreaSqm()
	}
	return fallbackAreaSqm
}

func (s *Service) defaultComplexity() string {
	if s.defaults != nil && s.defaults.GetDefaultComplexity() != "" {
		return s.defaults.GetDefaultComplexity()
	}
	return string(catalog.ComplexityStandard)
}

func (s *Service) defaultQualityTier() string {
	if s.defaults != nil && s.defaults.GetDefaultQualityTier() != "" {
		return s.defaults.GetDefaultQualityTier()
	}
	return string(catalog.QualityMidRange)
}

func withDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
