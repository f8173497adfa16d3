// Package domain holds the priced catalog value types shared by the
// estimation and advisor contexts. Values are immutable once loaded.
package domain

import (
	"fmt"
	"strings"
)

// QualityTier selects which material price column is read.
type QualityTier string

const (
	QualityBudget   QualityTier = "budget"
	QualityMidRange QualityTier = "mid_range"
	QualityPremium  QualityTier = "premium"
)

// ComplexityLevel selects the labor complexity multiplier.
type ComplexityLevel string

const (
	ComplexityBasic    ComplexityLevel = "basic"
	ComplexityStandard ComplexityLevel = "standard"
	ComplexityComplex  ComplexityLevel = "complex"
)

// Season adjusts tool-hire rates only.
type Season string

const (
	SeasonNone   Season = ""
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// RatePeriod keys a tool-hire rate table.
type RatePeriod string

const (
	RateDaily   RatePeriod = "daily"
	RateWeekly  RatePeriod = "weekly"
	RateWeekend RatePeriod = "weekend"
)

// RateType describes how a labor base rate scales.
type RateType string

const (
	RatePerSqm  RateType = "per_sqm"
	RatePerDay  RateType = "per_day"
	RatePerHour RateType = "per_hour"
	RatePerJob  RateType = "per_job"
)

// ParseQualityTier maps user input to a tier. Empty input is an error;
// callers apply their own default first.
func ParseQualityTier(value string) (QualityTier, error) {
	switch QualityTier(normalize(value)) {
	case QualityBudget:
		return QualityBudget, nil
	case QualityMidRange, "mid", "midrange", "mid-range":
		return QualityMidRange, nil
	case QualityPremium:
		return QualityPremium, nil
	}
	return "", fmt.Errorf("unknown quality tier %q", value)
}

// ParseComplexity maps user input to a complexity level.
func ParseComplexity(value string) (ComplexityLevel, error) {
	switch ComplexityLevel(normalize(value)) {
	case ComplexityBasic:
		return ComplexityBasic, nil
	case ComplexityStandard:
		return ComplexityStandard, nil
	case ComplexityComplex:
		return ComplexityComplex, nil
	}
	return "", fmt.Errorf("unknown complexity %q", value)
}

// ParseSeason maps user input to a season. Empty input means no season.
func ParseSeason(value string) (Season, error) {
	switch s := Season(normalize(value)); s {
	case SeasonNone, SeasonSpring, SeasonSummer, SeasonWinter:
		return s, nil
	case SeasonAutumn, "fall":
		return SeasonAutumn, nil
	}
	return "", fmt.Errorf("unknown season %q", value)
}

// ParseRatePeriod maps user input to a rate period. Empty input means daily.
func ParseRatePeriod(value string) (RatePeriod, error) {
	switch p := RatePeriod(normalize(value)); p {
	case "", RateDaily:
		return RateDaily, nil
	case RateWeekly, RateWeekend:
		return p, nil
	}
	return "", fmt.Errorf("unknown rate period %q", value)
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// ToolHireItem is a hireable piece of equipment with a per-period rate table.
type ToolHireItem struct {
	ID                 string
	Key                string
	Name               string
	Category           string
	Rates              map[RatePeriod]float64
	PurchasePriceRange string
	Source             string
}

// Rate returns the rate for period, falling back to the daily rate when
// the period is not priced.
func (t ToolHireItem) Rate(period RatePeriod) float64 {
	if rate, ok := t.Rates[period]; ok && rate > 0 {
		return rate
	}
	return t.Rates[RateDaily]
}

// LaborCost is a trade rate with its own complexity multipliers.
type LaborCost struct {
	ID                 string
	Name               string
	Category           string
	RateType           RateType
	BaseRate           float64
	ComplexityBasic    float64
	ComplexityStandard float64
	ComplexityComplex  float64
	Region             string
	Source             string
}

// ComplexityMultiplier returns the row's multiplier for level. Unset
// (zero) multipliers read as 1.0; negative ones clamp to 0.
func (l LaborCost) ComplexityMultiplier(level ComplexityLevel) float64 {
	var m float64
	switch level {
	case ComplexityBasic:
		m = l.ComplexityBasic
	case ComplexityComplex:
		m = l.ComplexityComplex
	default:
		m = l.ComplexityStandard
	}
	if m == 0 {
		return 1.0
	}
	if m < 0 {
		return 0
	}
	return m
}

// MaterialCost is a material priced per unit in three quality columns.
type MaterialCost struct {
	ID            string
	Name          string
	Category      string
	Unit          string
	PriceBudget   *float64
	PriceMidRange *float64
	PricePremium  *float64
	WasteFactor   float64
	Source        string
}

// PriceFor returns the price column for tier, or 0 when that column is unset.
func (m MaterialCost) PriceFor(tier QualityTier) float64 {
	var p *float64
	switch tier {
	case QualityBudget:
		p = m.PriceBudget
	case QualityPremium:
		p = m.PricePremium
	default:
		p = m.PriceMidRange
	}
	if p == nil || *p < 0 {
		return 0
	}
	return *p
}

var areaUnits = map[string]struct{}{
	"sqm":          {},
	"m2":           {},
	"m²":           {},
	"per_sqm":      {},
	"square_metre": {},
	"square metre": {},
	"sq m":         {},
}

// IsAreaBased reports whether the unit is priced per square metre.
func (m MaterialCost) IsAreaBased() bool {
	_, ok := areaUnits[normalize(m.Unit)]
	return ok
}

// BuildingRegulation describes regulatory requirements and fees for a project type.
type BuildingRegulation struct {
	ID                      string
	ProjectType             string
	Title                   string
	RequiresBuildingControl bool
	RequiresPlanning        bool
	TypicalCostMin          *float64
	TypicalCostMax          *float64
	Notes                   string
	Source                  string
}

// RegionalMultipliers maps a lower-cased region name to a price factor.
type RegionalMultipliers map[string]float64

// Filter narrows provider reads. Zero fields do not filter.
type Filter struct {
	Search      string
	Category    string
	Region      string
	QualityTier QualityTier
}

// Key returns a stable cache key for the filter.
func (f Filter) Key() string {
	return strings.Join([]string{
		normalize(f.Search),
		normalize(f.Category),
		normalize(f.Region),
		string(f.QualityTier),
	}, "|")
}

// Snapshot is the set of catalog rows relevant to one request.
type Snapshot struct {
	Tools       []ToolHireItem
	Labor       []LaborCost
	Materials   []MaterialCost
	Regulations []BuildingRegulation
	Regions     RegionalMultipliers
}

// ParseFilterKey reverses Filter.Key.
func ParseFilterKey(key string) Filter {
	parts := strings.SplitN(key, "|", 4)
	for len(parts) < 4 {
		parts = append(parts, "")
	}
	return Filter{
		Search:      parts[0],
		Category:    parts[1],
		Region:      parts[2],
		QualityTier: QualityTier(parts[3]),
	}
}
