package service

import (
	"sort"
	"strings"

	catalog "estimator_backend/internal/catalog/domain"
)

// Season factors applied to tool-hire rates.
var seasonFactors = map[catalog.Season]float64{
	catalog.SeasonSpring: 1.05,
	catalog.SeasonSummer: 1.15,
	catalog.SeasonAutumn: 1.0,
	catalog.SeasonWinter: 0.9,
}

// CompositeMultiplier holds the resolved adjustment factors for one request.
// Quality tier is carried as a price-column selector, not a factor.
type CompositeMultiplier struct {
	Region      float64
	Season      float64
	Complexity  catalog.ComplexityLevel
	QualityTier catalog.QualityTier
}

// Resolve computes the adjustment factors for a request.
func Resolve(regions catalog.RegionalMultipliers, location string, season catalog.Season, complexity catalog.ComplexityLevel, tier catalog.QualityTier) CompositeMultiplier {
	return CompositeMultiplier{
		Region:      RegionFactor(regions, location),
		Season:      SeasonFactor(season),
		Complexity:  complexity,
		QualityTier: tier,
	}
}

// Labor returns the factor applied to a labor row's base rate.
func (m CompositeMultiplier) Labor(row catalog.LaborCost) float64 {
	return Compose(m.Region, row.ComplexityMultiplier(m.Complexity))
}

// Tool returns the factor applied to tool-hire rates.
func (m CompositeMultiplier) Tool() float64 {
	return Compose(m.Season)
}

// RegionFactor looks up location in the regional table. An exact
// case-insensitive match wins; otherwise the longest region name contained
// in location is used. Unknown or empty locations yield 1.0.
func RegionFactor(regions catalog.RegionalMultipliers, location string) float64 {
	loc := strings.ToLower(strings.TrimSpace(location))
	if loc == "" || len(regions) == 0 {
		return 1.0
	}

	names := make([]string, 0, len(regions))
	for name := range regions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		if strings.ToLower(name) == loc {
			return clamp(regions[name])
		}
	}
	for _, name := range names {
		if n := strings.ToLower(name); n != "" && strings.Contains(loc, n) {
			return clamp(regions[name])
		}
	}
	return 1.0
}

// SeasonFactor returns the tool-hire factor for season, 1.0 when unset.
func SeasonFactor(season catalog.Season) float64 {
	if f, ok := seasonFactors[season]; ok {
		return f
	}
	return 1.0
}

// Compose multiplies factors. Negative factors count as zero, so the
// result is never negative and does not depend on argument order.
func Compose(factors ...float64) float64 {
	product := 1.0
	for _, f := range factors {
		product *= clamp(f)
	}
	return product
}

func clamp(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}
