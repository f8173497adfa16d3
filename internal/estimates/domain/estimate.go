// Package domain holds the estimate result types.
package domain

import (
	"github.com/shopspring/decimal"

	catalog "estimator_backend/internal/catalog/domain"
)

// CostRange is a bounded cost. Min never exceeds Max and neither is negative.
type CostRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// NewRange builds a range from two bounds, clamping negatives to zero and
// swapping the bounds when given out of order.
func NewRange(lo, hi decimal.Decimal) CostRange {
	lo = decimal.Max(lo, decimal.Zero)
	hi = decimal.Max(hi, decimal.Zero)
	if lo.GreaterThan(hi) {
		lo, hi = hi, lo
	}
	return CostRange{Min: lo, Max: hi}
}

// Point is a range with Min == Max.
func Point(v decimal.Decimal) CostRange {
	return NewRange(v, v)
}

// Band spreads v by the low and high factors.
func Band(v decimal.Decimal, low, high decimal.Decimal) CostRange {
	return NewRange(v.Mul(low), v.Mul(high))
}

// Add sums two ranges elementwise.
func (r CostRange) Add(o CostRange) CostRange {
	return CostRange{Min: r.Min.Add(o.Min), Max: r.Max.Add(o.Max)}
}

// IsZero reports whether both bounds are zero.
func (r CostRange) IsZero() bool {
	return r.Min.IsZero() && r.Max.IsZero()
}

// Category names a cost category in degraded annotations.
type Category string

const (
	CategoryLabor       Category = "labor"
	CategoryMaterials   Category = "materials"
	CategoryTools       Category = "tools"
	CategoryRegulations Category = "regulations"
)

// Confidence summarizes how much of the catalog backed an estimate.
type Confidence string

const (
	ConfidenceHigh    Confidence = "high"
	ConfidencePartial Confidence = "partial"
	ConfidenceLow     Confidence = "low"
)

// Estimate is the priced result for one project. Values are unrounded.
type Estimate struct {
	ProjectType string
	Area        decimal.Decimal
	Location    string
	Complexity  catalog.ComplexityLevel
	QualityTier catalog.QualityTier
	Season      catalog.Season
	ToolPeriod  catalog.RatePeriod

	Labor      CostRange
	Materials  CostRange
	Tools      *CostRange
	Additional CostRange
	Total      CostRange

	RegionFactor float64
	SeasonFactor float64

	Regulation *catalog.BuildingRegulation
	Degraded   []Category
	Confidence Confidence
	Sources    []string
}

// IsDegraded reports whether category had no catalog data.
func (e Estimate) IsDegraded(category Category) bool {
	for _, c := range e.Degraded {
		if c == category {
			return true
		}
	}
	return false
}
