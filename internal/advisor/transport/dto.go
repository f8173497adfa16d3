package transport

// DetailsRequest carries optional structured hints.
type DetailsRequest struct {
	Location   string `json:"location,omitempty" validate:"max=200"`
	Budget     string `json:"budget,omitempty" validate:"max=50"`
	Experience string `json:"experience,omitempty" validate:"max=50"`
	Timeline   string `json:"timeline,omitempty" validate:"omitempty,oneof=short long"`
}

type ClassifyRequest struct {
	Query   string          `json:"query" validate:"required,notblank,max=2000"`
	Details *DetailsRequest `json:"details,omitempty"`
}

type AdviceRequest struct {
	Query   string          `json:"query" validate:"required,notblank,max=2000"`
	Details *DetailsRequest `json:"details,omitempty"`
	Season  string          `json:"season,omitempty" validate:"max=20"`
}

type ClassificationResponse struct {
	ProjectType     string `json:"projectType"`
	Scale           string `json:"scale"`
	Duration        string `json:"duration"`
	Location        string `json:"location"`
	BudgetTier      string `json:"budgetTier"`
	ExperienceLevel string `json:"experienceLevel"`
}

type PricingResponse struct {
	Daily              float64 `json:"daily"`
	Weekly             float64 `json:"weekly,omitempty"`
	PurchasePriceRange string  `json:"purchasePriceRange,omitempty"`
	Source             string  `json:"source"`
}

type RecommendationResponse struct {
	ToolID             string          `json:"toolId"`
	Name               string          `json:"name"`
	Priority           string          `json:"priority"`
	Reasoning          string          `json:"reasoning"`
	Pricing            PricingResponse `json:"pricing"`
	SafetyRequirements []string        `json:"safetyRequirements"`
	Alternatives       []string        `json:"alternatives,omitempty"`
}

type PurchaseAdviceResponse struct {
	ToolID           string  `json:"toolId"`
	Recommendation   string  `json:"recommendation"`
	PurchaseLowBound float64 `json:"purchaseLowBound"`
	DailyRate        float64 `json:"dailyRate"`
	BreakEvenDays    int     `json:"breakEvenDays"`
	Reasoning        string  `json:"reasoning"`
}

type AlternativeResponse struct {
	ToolID  string   `json:"toolId"`
	Options []string `json:"options"`
}

type AdviceResponse struct {
	Classification  ClassificationResponse   `json:"classification"`
	Recommendations []RecommendationResponse `json:"recommendations"`
	PurchaseAdvice  []PurchaseAdviceResponse `json:"purchaseAdvice"`
	SafetyNotes     []string                 `json:"safetyNotes"`
	ProTips         []string                 `json:"proTips"`
	Alternatives    []AlternativeResponse    `json:"alternatives"`
}
