package transport

import (
	"estimator_backend/internal/estimates/domain"
)

// ToCostRangeResponse rounds both bounds to the nearest whole unit.
func ToCostRangeResponse(r domain.CostRange) CostRangeResponse {
	return CostRangeResponse{
		Min: r.Min.Round(0).IntPart(),
		Max: r.Max.Round(0).IntPart(),
	}
}

func ToEstimateResponse(e domain.Estimate) EstimateResponse {
	area, _ := e.Area.Float64()
	resp := EstimateResponse{
		ProjectType: e.ProjectType,
		Area:        area,
		Complexity:  string(e.Complexity),
		QualityTier: string(e.QualityTier),
		Season:      string(e.Season),
		Labor:       ToCostRangeResponse(e.Labor),
		Materials:   ToCostRangeResponse(e.Materials),
		Additional:  ToCostRangeResponse(e.Additional),
		Total:       ToCostRangeResponse(e.Total),
		Multipliers: MultipliersResponse{
			Region: e.RegionFactor,
			Season: e.SeasonFactor,
		},
		DegradedCategories: make([]string, 0, len(e.Degraded)),
		Confidence:         string(e.Confidence),
		Sources:            e.Sources,
	}
	if e.Tools != nil {
		tools := ToCostRangeResponse(*e.Tools)
		resp.Tools = &tools
	}
	if e.Regulation != nil {
		resp.Regulation = &RegulationResponse{
			Title:                   e.Regulation.Title,
			RequiresBuildingControl: e.Regulation.RequiresBuildingControl,
			RequiresPlanning:        e.Regulation.RequiresPlanning,
			Notes:                   e.Regulation.Notes,
		}
	}
	for _, c := range e.Degraded {
		resp.DegradedCategories = append(resp.DegradedCategories, string(c))
	}
	if resp.Sources == nil {
		resp.Sources = []string{}
	}
	return resp
}
