package transport

// ListRequest filters a catalog listing.
type ListRequest struct {
	Search      string `form:"search" validate:"max=100"`
	Category    string `form:"category" validate:"max=100"`
	Region      string `form:"region" validate:"max=100"`
	QualityTier string `form:"qualityTier" validate:"omitempty,oneof=budget mid_range premium"`
}

type ToolResponse struct {
	ID                 string             `json:"id"`
	Key                string             `json:"key"`
	Name               string             `json:"name"`
	Category           string             `json:"category"`
	Rates              map[string]float64 `json:"rates"`
	PurchasePriceRange string             `json:"purchasePriceRange,omitempty"`
	Source             string             `json:"source,omitempty"`
}

type LaborResponse struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Category   string             `json:"category"`
	RateType   string             `json:"rateType"`
	BaseRate   float64            `json:"baseRate"`
	Complexity map[string]float64 `json:"complexity"`
	Region     string             `json:"region,omitempty"`
	Source     string             `json:"source,omitempty"`
}

type MaterialResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Category    string             `json:"category"`
	Unit        string             `json:"unit"`
	Prices      map[string]float64 `json:"prices"`
	WasteFactor float64            `json:"wasteFactor"`
	Source      string             `json:"source,omitempty"`
}

type RegulationResponse struct {
	ID                      string   `json:"id"`
	ProjectType             string   `json:"projectType"`
	Title                   string   `json:"title"`
	RequiresBuildingControl bool     `json:"requiresBuildingControl"`
	RequiresPlanning        bool     `json:"requiresPlanning"`
	TypicalCostMin          *float64 `json:"typicalCostMin,omitempty"`
	TypicalCostMax          *float64 `json:"typicalCostMax,omitempty"`
	Notes                   string   `json:"notes,omitempty"`
	Source                  string   `json:"source,omitempty"`
}

// ListResponse wraps any catalog listing.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}
