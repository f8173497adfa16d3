package service

import (
	"testing"

	"github.com/shopspring/decimal"

	catalog "estimator_backend/internal/catalog/domain"
	"estimator_backend/internal/estimates/domain"
)

func ptr(v float64) *float64 { return &v }

func baseParams() Params {
	return Params{
		ProjectType: "bathroom",
		Area:        decimal.NewFromInt(5),
		Complexity:  catalog.ComplexityStandard,
		QualityTier: catalog.QualityMidRange,
		ToolPeriod:  catalog.RateDaily,
	}
}

func resolveFor(p Params, regions catalog.RegionalMultipliers) CompositeMultiplier {
	return Resolve(regions, p.Location, p.Season, p.Complexity, p.QualityTier)
}

func assertRange(t *testing.T, name string, r domain.CostRange, lo, hi int64) {
	t.Helper()
	if !r.Min.Equal(decimal.NewFromInt(lo)) || !r.Max.Equal(decimal.NewFromInt(hi)) {
		t.Fatalf("%s: expected [%d, %d], got [%s, %s]", name, lo, hi, r.Min, r.Max)
	}
}

func TestAggregateBathroomLaborScenario(t *testing.T) {
	p := baseParams()
	snap := catalog.Snapshot{
		Labor: []catalog.LaborCost{{RateType: catalog.RatePerSqm, BaseRate: 100, ComplexityStandard: 1.3}},
	}

	est := Aggregate(p, snap, resolveFor(p, nil))

	assertRange(t, "labor", est.Labor, 520, 780)
	assertRange(t, "materials", est.Materials, 0, 0)
	assertRange(t, "total", est.Total, 520, 780)
	if !est.IsDegraded(domain.CategoryMaterials) {
		t.Fatalf("expected materials flagged degraded, got %v", est.Degraded)
	}
	if est.Confidence != domain.ConfidencePartial {
		t.Fatalf("expected partial confidence, got %s", est.Confidence)
	}
}

func TestAggregateMaterialsWasteAndArea(t *testing.T) {
	p := baseParams()
	snap := catalog.Snapshot{
		Materials: []catalog.MaterialCost{
			{Unit: "sqm", PriceMidRange: ptr(20), WasteFactor: 0.1},
			{Unit: "each", PriceMidRange: ptr(50)},
		},
	}

	est := Aggregate(p, snap, resolveFor(p, nil))

	// 20 * 1.1 * 5 + 50 = 160
	assertRange(t, "materials", est.Materials, 144, 176)
}

func TestAggregateMissingTierPriceContributesZero(t *testing.T) {
	p := baseParams()
	p.QualityTier = catalog.QualityPremium
	snap := catalog.Snapshot{
		Materials: []catalog.MaterialCost{{Unit: "sqm", PriceBudget: ptr(10), PriceMidRange: ptr(20)}},
	}

	est := Aggregate(p, snap, resolveFor(p, nil))
	assertRange(t, "materials", est.Materials, 0, 0)
}

func TestAggregateLaborMonotonicInComplexity(t *testing.T) {
	snap := catalog.Snapshot{
		Labor: []catalog.LaborCost{
			{RateType: catalog.RatePerSqm, BaseRate: 80, ComplexityBasic: 0.85, ComplexityStandard: 1.0, ComplexityComplex: 1.4},
			{RateType: catalog.RatePerJob, BaseRate: 300, ComplexityBasic: 0.9, ComplexityStandard: 1.1, ComplexityComplex: 1.3},
		},
	}

	var prev decimal.Decimal
	for i, level := range []catalog.ComplexityLevel{catalog.ComplexityBasic, catalog.ComplexityStandard, catalog.ComplexityComplex} {
		p := baseParams()
		p.Complexity = level
		est := Aggregate(p, snap, resolveFor(p, nil))
		if i > 0 && est.Labor.Max.LessThan(prev) {
			t.Fatalf("labor total decreased at %s: %s < %s", level, est.Labor.Max, prev)
		}
		prev = est.Labor.Max
	}
}

func TestAggregateMaterialsMonotonicInTier(t *testing.T) {
	snap := catalog.Snapshot{
		Materials: []catalog.MaterialCost{
			{Unit: "m2", PriceBudget: ptr(12), PriceMidRange: ptr(25), PricePremium: ptr(60), WasteFactor: 0.1},
			{Unit: "bag", PriceBudget: ptr(5), PriceMidRange: ptr(5), PricePremium: ptr(8)},
		},
	}

	var prev decimal.Decimal
	for i, tier := range []catalog.QualityTier{catalog.QualityBudget, catalog.QualityMidRange, catalog.QualityPremium} {
		p := baseParams()
		p.QualityTier = tier
		est := Aggregate(p, snap, resolveFor(p, nil))
		if i > 0 && est.Materials.Min.LessThan(prev) {
			t.Fatalf("material total decreased at %s", tier)
		}
		prev = est.Materials.Min
	}
}

func TestAggregateToolsAreSeasonAdjustedPointValues(t *testing.T) {
	p := baseParams()
	p.IncludeTools = true
	p.Season = catalog.SeasonWinter
	p.ToolPeriod = catalog.RateWeekly
	snap := catalog.Snapshot{
		Tools: []catalog.ToolHireItem{
			{Rates: map[catalog.RatePeriod]float64{catalog.RateDaily: 100, catalog.RateWeekly: 300}},
			{Rates: map[catalog.RatePeriod]float64{catalog.RateDaily: 50}},
		},
	}

	est := Aggregate(p, snap, resolveFor(p, nil))
	if est.Tools == nil {
		t.Fatalf("expected tools range")
	}
	// (300 + 50 daily fallback) * 0.9
	assertRange(t, "tools", *est.Tools, 315, 315)
	assertRange(t, "total", est.Total, 315, 315)
}

func TestAggregateToolsExcludedByDefault(t *testing.T) {
	p := baseParams()
	snap := catalog.Snapshot{Tools: []catalog.ToolHireItem{{Rates: map[catalog.RatePeriod]float64{catalog.RateDaily: 100}}}}

	est := Aggregate(p, snap, resolveFor(p, nil))
	if est.Tools != nil || est.IsDegraded(domain.CategoryTools) {
		t.Fatalf("expected tools to be ignored when not requested")
	}
}

func TestAggregateRegulationFee(t *testing.T) {
	cases := []struct {
		name string
		reg  catalog.BuildingRegulation
		fee  int64
	}{
		{"typical minimum", catalog.BuildingRegulation{ProjectType: "bathroom", RequiresBuildingControl: true, TypicalCostMin: ptr(350)}, 350},
		{"default fee", catalog.BuildingRegulation{ProjectType: "bathroom", RequiresBuildingControl: true}, 200},
		{"no building control", catalog.BuildingRegulation{ProjectType: "bathroom", TypicalCostMin: ptr(350)}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := baseParams()
			est := Aggregate(p, catalog.Snapshot{Regulations: []catalog.BuildingRegulation{tc.reg}}, resolveFor(p, nil))
			assertRange(t, "additional", est.Additional, tc.fee, tc.fee)
			assertRange(t, "total", est.Total, tc.fee, tc.fee)
			if est.Regulation == nil {
				t.Fatalf("expected regulation metadata attached")
			}
		})
	}
}

func TestAggregateRegionAppliesToLaborOnly(t *testing.T) {
	p := baseParams()
	p.Location = "London"
	snap := catalog.Snapshot{
		Labor:     []catalog.LaborCost{{RateType: catalog.RatePerJob, BaseRate: 1000}},
		Materials: []catalog.MaterialCost{{Unit: "each", PriceMidRange: ptr(100)}},
	}

	est := Aggregate(p, snap, resolveFor(p, catalog.RegionalMultipliers{"london": 1.5}))
	assertRange(t, "labor", est.Labor, 1200, 1800)
	assertRange(t, "materials", est.Materials, 90, 110)
	if est.RegionFactor != 1.5 {
		t.Fatalf("expected region factor 1.5, got %v", est.RegionFactor)
	}
}

func TestAggregateRangesNeverInverted(t *testing.T) {
	p := baseParams()
	p.IncludeTools = true
	snap := catalog.Snapshot{
		Labor:       []catalog.LaborCost{{RateType: catalog.RatePerSqm, BaseRate: -40}},
		Materials:   []catalog.MaterialCost{{Unit: "sqm", PriceMidRange: ptr(15), WasteFactor: -0.5}},
		Tools:       []catalog.ToolHireItem{{Rates: map[catalog.RatePeriod]float64{catalog.RateDaily: 30}}},
		Regulations: []catalog.BuildingRegulation{{RequiresBuildingControl: true}},
	}

	est := Aggregate(p, snap, resolveFor(p, nil))
	for name, r := range map[string]domain.CostRange{
		"labor": est.Labor, "materials": est.Materials, "tools": *est.Tools,
		"additional": est.Additional, "total": est.Total,
	} {
		if r.Min.IsNegative() || r.Max.IsNegative() || r.Min.GreaterThan(r.Max) {
			t.Fatalf("%s: invalid range [%s, %s]", name, r.Min, r.Max)
		}
	}
}

func TestAggregateConfidenceLowWithoutLaborAndMaterials(t *testing.T) {
	p := baseParams()
	est := Aggregate(p, catalog.Snapshot{}, resolveFor(p, nil))
	if est.Confidence != domain.ConfidenceLow {
		t.Fatalf("expected low confidence, got %s", est.Confidence)
	}
	assertRange(t, "total", est.Total, 0, 0)
}

func TestAggregateCollectsSources(t *testing.T) {
	p := baseParams()
	snap := catalog.Snapshot{
		Labor:     []catalog.LaborCost{{BaseRate: 1, Source: "Checkatrade 2024"}},
		Materials: []catalog.MaterialCost{{Unit: "each", PriceMidRange: ptr(1), Source: "B&Q"}, {Unit: "each", Source: "B&Q"}},
	}

	est := Aggregate(p, snap, resolveFor(p, nil))
	if len(est.Sources) != 2 || est.Sources[0] != "B&Q" || est.Sources[1] != "Checkatrade 2024" {
		t.Fatalf("unexpected sources %v", est.Sources)
	}
}
