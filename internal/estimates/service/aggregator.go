package service

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	catalog "estimator_backend/internal/catalog/domain"
	"estimator_backend/internal/estimates/domain"
)

// Cost band policy. Labor varies more than materials between quotes.
var (
	laborBandLow     = decimal.NewFromFloat(0.8)
	laborBandHigh    = decimal.NewFromFloat(1.2)
	materialBandLow  = decimal.NewFromFloat(0.9)
	materialBandHigh = decimal.NewFromFloat(1.1)

	defaultRegulationFee = decimal.NewFromInt(200)
)

// Params is a validated estimate request with defaults applied.
type Params struct {
	ProjectType  string
	Area         decimal.Decimal
	Location     string
	Complexity   catalog.ComplexityLevel
	QualityTier  catalog.QualityTier
	Season       catalog.Season
	IncludeTools bool
	ToolPeriod   catalog.RatePeriod
}

// Aggregate prices snap for p. Empty categories contribute zero and are
// reported in Degraded; nothing here returns an error.
func Aggregate(p Params, snap catalog.Snapshot, m CompositeMultiplier) domain.Estimate {
	est := domain.Estimate{
		ProjectType:  p.ProjectType,
		Area:         p.Area,
		Location:     p.Location,
		Complexity:   p.Complexity,
		QualityTier:  p.QualityTier,
		Season:       p.Season,
		ToolPeriod:   p.ToolPeriod,
		RegionFactor: m.Region,
		SeasonFactor: m.Season,
	}
	sources := newSourceSet()

	laborTotal := decimal.Zero
	for _, row := range snap.Labor {
		cost := decimal.NewFromFloat(row.BaseRate).Mul(decimal.NewFromFloat(m.Labor(row)))
		if row.RateType == catalog.RatePerSqm {
			cost = cost.Mul(p.Area)
		}
		laborTotal = laborTotal.Add(cost)
		sources.add(row.Source)
	}
	est.Labor = domain.Band(laborTotal, laborBandLow, laborBandHigh)

	materialTotal := decimal.Zero
	for _, row := range snap.Materials {
		cost := decimal.NewFromFloat(row.PriceFor(m.QualityTier)).
			Mul(decimal.NewFromInt(1).Add(decimal.NewFromFloat(max(row.WasteFactor, 0))))
		if row.IsAreaBased() {
			cost = cost.Mul(p.Area)
		}
		materialTotal = materialTotal.Add(cost)
		sources.add(row.Source)
	}
	est.Materials = domain.Band(materialTotal, materialBandLow, materialBandHigh)

	if p.IncludeTools {
		toolTotal := decimal.Zero
		seasonFactor := decimal.NewFromFloat(m.Tool())
		for _, row := range snap.Tools {
			toolTotal = toolTotal.Add(decimal.NewFromFloat(row.Rate(p.ToolPeriod)).Mul(seasonFactor))
			sources.add(row.Source)
		}
		tools := domain.Point(toolTotal)
		est.Tools = &tools
	}

	additional := decimal.Zero
	if reg := applicableRegulation(p.ProjectType, snap.Regulations); reg != nil {
		est.Regulation = reg
		sources.add(reg.Source)
		if reg.RequiresBuildingControl {
			fee := defaultRegulationFee
			if reg.TypicalCostMin != nil {
				fee = decimal.NewFromFloat(*reg.TypicalCostMin)
			}
			additional = additional.Add(fee)
		}
	}
	est.Additional = domain.Point(additional)

	est.Total = est.Labor.Add(est.Materials).Add(est.Additional)
	if est.Tools != nil {
		est.Total = est.Total.Add(*est.Tools)
	}

	est.Degraded = degradedCategories(p, snap)
	est.Confidence = confidence(est.Degraded)
	est.Sources = sources.list()
	return est
}

// applicableRegulation prefers a row whose project type matches exactly,
// falling back to the first row the provider returned for the category.
func applicableRegulation(projectType string, rows []catalog.BuildingRegulation) *catalog.BuildingRegulation {
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		if strings.EqualFold(rows[i].ProjectType, projectType) {
			reg := rows[i]
			return &reg
		}
	}
	reg := rows[0]
	return &reg
}

func degradedCategories(p Params, snap catalog.Snapshot) []domain.Category {
	var out []domain.Category
	if len(snap.Labor) == 0 {
		out = append(out, domain.CategoryLabor)
	}
	if len(snap.Materials) == 0 {
		out = append(out, domain.CategoryMaterials)
	}
	if p.IncludeTools && len(snap.Tools) == 0 {
		out = append(out, domain.CategoryTools)
	}
	if len(snap.Regulations) == 0 {
		out = append(out, domain.CategoryRegulations)
	}
	return out
}

func confidence(degraded []domain.Category) domain.Confidence {
	var labor, materials bool
	for _, c := range degraded {
		switch c {
		case domain.CategoryLabor:
			labor = true
		case domain.CategoryMaterials:
			materials = true
		}
	}
	switch {
	case labor && materials:
		return domain.ConfidenceLow
	case len(degraded) > 0:
		return domain.ConfidencePartial
	default:
		return domain.ConfidenceHigh
	}
}

type sourceSet map[string]struct{}

func newSourceSet() sourceSet { return make(sourceSet) }

func (s sourceSet) add(source string) {
	if source = strings.TrimSpace(source); source != "" {
		s[source] = struct{}{}
	}
}

func (s sourceSet) list() []string {
	out := make([]string, 0, len(s))
	for source := range s {
		out = append(out, source)
	}
	sort.Strings(out)
	return out
}
