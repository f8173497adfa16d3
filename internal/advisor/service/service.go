package service

import (
	"context"

	"estimator_backend/internal/advisor/domain"
	"estimator_backend/internal/advisor/transport"
	catalog "estimator_backend/internal/catalog/domain"
	estimates "estimator_backend/internal/estimates/service"
	"estimator_backend/platform/apperr"
	"estimator_backend/platform/logger"
	"estimator_backend/platform/sanitize"
)

// ToolCatalog is the narrow catalog port the advisor prices tools from.
type ToolCatalog interface {
	Tools(ctx context.Context, filter catalog.Filter) ([]catalog.ToolHireItem, error)
}

// Service classifies project descriptions and advises on equipment.
type Service struct {
	engine *Engine
	tools  ToolCatalog
	log    *logger.Logger
}

// New creates an advisor service. A nil tools catalog prices every
// recommendation from the knowledge base alone.
func New(kb *Knowledge, tools ToolCatalog, log *logger.Logger) *Service {
	return &Service{engine: NewEngine(kb), tools: tools, log: log}
}

// Classify classifies a free-text query.
func (s *Service) Classify(req transport.ClassifyRequest) domain.Classification {
	return Classify(sanitize.Text(req.Query), transport.ToDetails(req.Details))
}

// Advise classifies the query, recommends and prices tools, and adds
// purchase, safety and technique guidance.
func (s *Service) Advise(ctx context.Context, req transport.AdviceRequest) (domain.Advice, error) {
	season, err := catalog.ParseSeason(req.Season)
	if err != nil {
		return domain.Advice{}, apperr.Validation(err.Error())
	}

	class := Classify(sanitize.Text(req.Query), transport.ToDetails(req.Details))
	recs := s.engine.Recommend(class)

	var rows []catalog.ToolHireItem
	if s.tools != nil {
		rows, err = s.tools.Tools(ctx, catalog.Filter{})
		if err != nil {
			return domain.Advice{}, err
		}
	}
	recs = PriceRecommendations(recs, rows, estimates.SeasonFactor(season))

	s.log.WithContext(ctx).Debug("advice generated",
		"project_type", class.ProjectType,
		"scale", class.Scale,
		"duration", class.Duration,
		"tools", len(recs),
	)

	return domain.Advice{
		Classification:  class,
		Recommendations: recs,
		PurchaseAdvice:  PurchaseAdvice(class, recs),
		SafetyNotes:     SafetyNotes(recs),
		ProTips:         s.engine.ProTips(class, recs),
		Alternatives:    Alternatives(recs),
	}, nil
}
