// Package domain holds the advisor's per-request value types. None of them
// outlive the request that created them.
package domain

import "github.com/shopspring/decimal"

// ProjectType is the classified kind of work.
type ProjectType string

const (
	ProjectExcavation ProjectType = "excavation"
	ProjectConcreting ProjectType = "concreting"
	ProjectDemolition ProjectType = "demolition"
	ProjectGeneral    ProjectType = "general"
)

// Scale is the classified size of the work.
type Scale string

const (
	ScaleSmall  Scale = "small"
	ScaleMedium Scale = "medium"
	ScaleLarge  Scale = "large"
)

// Duration buckets how long equipment is needed.
type Duration string

const (
	DurationShort Duration = "short"
	DurationLong  Duration = "long"
)

// Details are optional structured hints supplied with a query.
type Details struct {
	Location   string
	Budget     string
	Experience string
	Timeline   string
}

// Classification is the derived shape of a free-text project description.
type Classification struct {
	ProjectType     ProjectType
	Scale           Scale
	Duration        Duration
	Location        string
	BudgetTier      string
	ExperienceLevel string
}

// Priority ranks a recommendation. There is one primary tool; supporting
// tools keep their insertion order.
type Priority string

const (
	PriorityPrimary    Priority = "primary"
	PrioritySupporting Priority = "supporting"
)

// PricingSource says where a recommendation's rates came from.
type PricingSource string

const (
	PricingIndicative PricingSource = "indicative"
	PricingCatalog    PricingSource = "catalog"
)

// Pricing is the hire cost of a recommended tool.
type Pricing struct {
	Daily              decimal.Decimal
	Weekly             decimal.Decimal
	PurchasePriceRange string
	Source             PricingSource
}

// ToolRecommendation is a tool suggested for a classified project.
type ToolRecommendation struct {
	ToolID             string
	Name               string
	Priority           Priority
	Reasoning          string
	Pricing            Pricing
	SafetyRequirements []string
	Alternatives       []string
}

// BuyOrRent is the purchase verdict for a tool.
type BuyOrRent string

const (
	Rent           BuyOrRent = "rent"
	ConsiderBuying BuyOrRent = "consider_buying"
)

// PurchaseAdvice compares hiring with buying one tool.
type PurchaseAdvice struct {
	ToolID           string
	Recommendation   BuyOrRent
	PurchaseLowBound decimal.Decimal
	DailyRate        decimal.Decimal
	BreakEvenDays    int
	Reasoning        string
}

// Alternative lists manual substitutes for a powered tool.
type Alternative struct {
	ToolID  string
	Options []string
}

// Advice is the full advisor response for one query.
type Advice struct {
	Classification  Classification
	Recommendations []ToolRecommendation
	PurchaseAdvice  []PurchaseAdvice
	SafetyNotes     []string
	ProTips         []string
	Alternatives    []Alternative
}
