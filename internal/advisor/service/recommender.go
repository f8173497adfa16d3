package service

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"estimator_backend/internal/advisor/domain"
	catalog "estimator_backend/internal/catalog/domain"
)

// Engine turns classifications into tool recommendations using a
// knowledge base. It holds no per-request state.
type Engine struct {
	kb *Knowledge
}

// NewEngine creates a recommendation engine over kb.
func NewEngine(kb *Knowledge) *Engine {
	return &Engine{kb: kb}
}

// Recommend returns the primary tool for the classified scale followed by
// the project's supporting tools in knowledge-base order.
func (e *Engine) Recommend(c domain.Classification) []domain.ToolRecommendation {
	project, ok := e.kb.Projects[c.ProjectType]
	if !ok {
		project = e.kb.Projects[domain.ProjectGeneral]
	}

	primaryID := project.Primary[c.Scale]
	if primaryID == "" {
		primaryID = project.Primary[domain.ScaleSmall]
	}

	recs := make([]domain.ToolRecommendation, 0, 1+len(project.Supporting))
	recs = append(recs, e.recommendation(primaryID, domain.PriorityPrimary,
		fmt.Sprintf("Best fit for a %s %s job.", c.Scale, c.ProjectType)))

	for _, id := range project.Supporting {
		if id == primaryID {
			continue
		}
		recs = append(recs, e.recommendation(id, domain.PrioritySupporting,
			fmt.Sprintf("Supports the main %s work.", c.ProjectType)))
	}
	return recs
}

func (e *Engine) recommendation(id string, priority domain.Priority, reasoning string) domain.ToolRecommendation {
	tool := e.kb.Tools[id]
	return domain.ToolRecommendation{
		ToolID:    id,
		Name:      tool.Name,
		Priority:  priority,
		Reasoning: reasoning,
		Pricing: domain.Pricing{
			Daily:              decimal.NewFromFloat(tool.Daily),
			Weekly:             decimal.NewFromFloat(tool.Weekly),
			PurchasePriceRange: tool.PurchasePriceRange,
			Source:             domain.PricingIndicative,
		},
		SafetyRequirements: slices.Clone(tool.Safety),
		Alternatives:       slices.Clone(tool.Alternatives),
	}
}

// PriceRecommendations replaces indicative rates with catalog rates where
// the catalog has a matching tool key, then applies the season factor to
// every rate. recs is not modified.
func PriceRecommendations(recs []domain.ToolRecommendation, tools []catalog.ToolHireItem, seasonFactor float64) []domain.ToolRecommendation {
	byKey := make(map[string]catalog.ToolHireItem, len(tools))
	for _, t := range tools {
		byKey[t.Key] = t
	}
	factor := decimal.NewFromFloat(max(seasonFactor, 0))

	out := make([]domain.ToolRecommendation, len(recs))
	for i, rec := range recs {
		if row, ok := byKey[rec.ToolID]; ok {
			rec.Pricing.Daily = decimal.NewFromFloat(row.Rate(catalog.RateDaily))
			rec.Pricing.Weekly = decimal.NewFromFloat(row.Rates[catalog.RateWeekly])
			if row.PurchasePriceRange != "" {
				rec.Pricing.PurchasePriceRange = row.PurchasePriceRange
			}
			if row.Name != "" {
				rec.Name = row.Name
			}
			rec.Pricing.Source = domain.PricingCatalog
		}
		rec.Pricing.Daily = rec.Pricing.Daily.Mul(factor)
		rec.Pricing.Weekly = rec.Pricing.Weekly.Mul(factor)
		out[i] = rec
	}
	return out
}
