package transport

// EstimateRequest is the structured estimate input.
type EstimateRequest struct {
	ProjectType    string   `json:"projectType" validate:"required,notblank,max=100"`
	Area           *float64 `json:"area,omitempty"`
	Location       string   `json:"location,omitempty" validate:"max=200"`
	Complexity     string   `json:"complexity,omitempty" validate:"max=20"`
	QualityTier    string   `json:"qualityTier,omitempty" validate:"max=20"`
	Season         string   `json:"season,omitempty" validate:"max=20"`
	IncludeTools   bool     `json:"includeTools,omitempty"`
	ToolRatePeriod string   `json:"toolRatePeriod,omitempty" validate:"max=20"`
}

// CostRangeResponse is a range in whole currency units.
type CostRangeResponse struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

type RegulationResponse struct {
	Title                   string `json:"title"`
	RequiresBuildingControl bool   `json:"requiresBuildingControl"`
	RequiresPlanning        bool   `json:"requiresPlanning"`
	Notes                   string `json:"notes,omitempty"`
}

type MultipliersResponse struct {
	Region float64 `json:"region"`
	Season float64 `json:"season"`
}

type EstimateResponse struct {
	ProjectType        string              `json:"projectType"`
	Area               float64             `json:"area"`
	Complexity         string              `json:"complexity"`
	QualityTier        string              `json:"qualityTier"`
	Season             string              `json:"season,omitempty"`
	Labor              CostRangeResponse   `json:"labor"`
	Materials          CostRangeResponse   `json:"materials"`
	Tools              *CostRangeResponse  `json:"tools,omitempty"`
	Additional         CostRangeResponse   `json:"additional"`
	Total              CostRangeResponse   `json:"total"`
	Multipliers        MultipliersResponse `json:"multipliers"`
	Regulation         *RegulationResponse `json:"regulation,omitempty"`
	DegradedCategories []string            `json:"degradedCategories"`
	Confidence         string              `json:"confidence"`
	Sources            []string            `json:"sources"`
}
