package transport

import (
	"github.com/shopspring/decimal"

	"estimator_backend/internal/advisor/domain"
)

// ToDetails converts optional request hints to domain details.
func ToDetails(d *DetailsRequest) domain.Details {
	if d == nil {
		return domain.Details{}
	}
	return domain.Details{
		Location:   d.Location,
		Budget:     d.Budget,
		Experience: d.Experience,
		Timeline:   d.Timeline,
	}
}

func ToClassificationResponse(c domain.Classification) ClassificationResponse {
	return ClassificationResponse{
		ProjectType:     string(c.ProjectType),
		Scale:           string(c.Scale),
		Duration:        string(c.Duration),
		Location:        c.Location,
		BudgetTier:      c.BudgetTier,
		ExperienceLevel: c.ExperienceLevel,
	}
}

func ToAdviceResponse(a domain.Advice) AdviceResponse {
	resp := AdviceResponse{
		Classification:  ToClassificationResponse(a.Classification),
		Recommendations: make([]RecommendationResponse, 0, len(a.Recommendations)),
		PurchaseAdvice:  make([]PurchaseAdviceResponse, 0, len(a.PurchaseAdvice)),
		SafetyNotes:     a.SafetyNotes,
		ProTips:         a.ProTips,
		Alternatives:    make([]AlternativeResponse, 0, len(a.Alternatives)),
	}
	for _, rec := range a.Recommendations {
		resp.Recommendations = append(resp.Recommendations, RecommendationResponse{
			ToolID:    rec.ToolID,
			Name:      rec.Name,
			Priority:  string(rec.Priority),
			Reasoning: rec.Reasoning,
			Pricing: PricingResponse{
				Daily:              roundMoney(rec.Pricing.Daily),
				Weekly:             roundMoney(rec.Pricing.Weekly),
				PurchasePriceRange: rec.Pricing.PurchasePriceRange,
				Source:             string(rec.Pricing.Source),
			},
			SafetyRequirements: rec.SafetyRequirements,
			Alternatives:       rec.Alternatives,
		})
	}
	for _, pa := range a.PurchaseAdvice {
		resp.PurchaseAdvice = append(resp.PurchaseAdvice, PurchaseAdviceResponse{
			ToolID:           pa.ToolID,
			Recommendation:   string(pa.Recommendation),
			PurchaseLowBound: pa.PurchaseLowBound.InexactFloat64(),
			DailyRate:        roundMoney(pa.DailyRate),
			BreakEvenDays:    pa.BreakEvenDays,
			Reasoning:        pa.Reasoning,
		})
	}
	for _, alt := range a.Alternatives {
		resp.Alternatives = append(resp.Alternatives, AlternativeResponse{ToolID: alt.ToolID, Options: alt.Options})
	}
	return resp
}

// roundMoney rounds to whole currency units, half away from zero.
func roundMoney(v decimal.Decimal) float64 {
	return v.Round(0).InexactFloat64()
}
