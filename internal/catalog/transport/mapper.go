package transport

import "estimator_backend/internal/catalog/domain"

func ToToolResponse(t domain.ToolHireItem) ToolResponse {
	rates := make(map[string]float64, len(t.Rates))
	for period, rate := range t.Rates {
		rates[string(period)] = rate
	}
	return ToolResponse{
		ID:                 t.ID,
		Key:                t.Key,
		Name:               t.Name,
		Category:           t.Category,
		Rates:              rates,
		PurchasePriceRange: t.PurchasePriceRange,
		Source:             t.Source,
	}
}

func ToLaborResponse(l domain.LaborCost) LaborResponse {
	return LaborResponse{
		ID:       l.ID,
		Name:     l.Name,
		Category: l.Category,
		RateType: string(l.RateType),
		BaseRate: l.BaseRate,
		Complexity: map[string]float64{
			string(domain.ComplexityBasic):    l.ComplexityMultiplier(domain.ComplexityBasic),
			string(domain.ComplexityStandard): l.ComplexityMultiplier(domain.ComplexityStandard),
			string(domain.ComplexityComplex):  l.ComplexityMultiplier(domain.ComplexityComplex),
		},
		Region: l.Region,
		Source: l.Source,
	}
}

func ToMaterialResponse(m domain.MaterialCost) MaterialResponse {
	prices := make(map[string]float64, 3)
	for tier, p := range map[domain.QualityTier]*float64{
		domain.QualityBudget:   m.PriceBudget,
		domain.QualityMidRange: m.PriceMidRange,
		domain.QualityPremium:  m.PricePremium,
	} {
		if p != nil {
			prices[string(tier)] = *p
		}
	}
	return MaterialResponse{
		ID:          m.ID,
		Name:        m.Name,
		Category:    m.Category,
		Unit:        m.Unit,
		Prices:      prices,
		WasteFactor: m.WasteFactor,
		Source:      m.Source,
	}
}

func ToRegulationResponse(r domain.BuildingRegulation) RegulationResponse {
	return RegulationResponse{
		ID:                      r.ID,
		ProjectType:             r.ProjectType,
		Title:                   r.Title,
		RequiresBuildingControl: r.RequiresBuildingControl,
		RequiresPlanning:        r.RequiresPlanning,
		TypicalCostMin:          r.TypicalCostMin,
		TypicalCostMax:          r.TypicalCostMax,
		Notes:                   r.Notes,
		Source:                  r.Source,
	}
}

// ToList maps rows with fn.
func ToList[S, T any](rows []S, fn func(S) T) ListResponse[T] {
	items := make([]T, 0, len(rows))
	for _, row := range rows {
		items = append(items, fn(row))
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}
