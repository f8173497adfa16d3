package service

import (
	"math"
	"testing"

	catalog "estimator_backend/internal/catalog/domain"
)

var testRegions = catalog.RegionalMultipliers{
	"london":         1.35,
	"south east":     1.15,
	"north east":     0.9,
	"greater london": 1.4,
}

func TestResolveUnknownRegionMatchesNoRegion(t *testing.T) {
	atlantis := Resolve(testRegions, "Atlantis", catalog.SeasonNone, catalog.ComplexityStandard, catalog.QualityMidRange)
	none := Resolve(testRegions, "", catalog.SeasonNone, catalog.ComplexityStandard, catalog.QualityMidRange)
	if atlantis != none {
		t.Fatalf("expected unknown region to behave like no region, got %+v vs %+v", atlantis, none)
	}
	if atlantis.Region != 1.0 {
		t.Fatalf("expected region factor 1.0, got %v", atlantis.Region)
	}
}

func TestRegionFactorLookup(t *testing.T) {
	cases := []struct {
		location string
		want     float64
	}{
		{"London", 1.35},
		{"  LONDON ", 1.35},
		{"Camden, Greater London", 1.4},
		{"Brighton, South East England", 1.15},
		{"Newcastle, North East", 0.9},
		{"Cardiff", 1.0},
	}
	for _, tc := range cases {
		if got := RegionFactor(testRegions, tc.location); got != tc.want {
			t.Fatalf("RegionFactor(%q) = %v, want %v", tc.location, got, tc.want)
		}
	}
}

func TestSeasonFactor(t *testing.T) {
	if SeasonFactor(catalog.SeasonNone) != 1.0 {
		t.Fatalf("expected no season to leave rates unchanged")
	}
	if SeasonFactor(catalog.SeasonSummer) <= SeasonFactor(catalog.SeasonWinter) {
		t.Fatalf("expected summer hire to cost more than winter")
	}
}

func TestComposeIsCommutative(t *testing.T) {
	factors := [][]float64{
		{1.35, 1.3, 1.15},
		{1.3, 1.15, 1.35},
		{1.15, 1.35, 1.3},
	}
	want := Compose(factors[0]...)
	for _, f := range factors[1:] {
		if got := Compose(f...); math.Abs(got-want) > 1e-12 {
			t.Fatalf("expected order-independent product %v, got %v for %v", want, got, f)
		}
	}
	if Compose() != 1.0 {
		t.Fatalf("expected empty product to be 1.0")
	}
	if Compose(2, -1) != 0 {
		t.Fatalf("expected negative factor to clamp to zero")
	}
}

func TestLaborFactorUsesRowComplexity(t *testing.T) {
	row := catalog.LaborCost{ComplexityBasic: 0.8, ComplexityStandard: 1.3, ComplexityComplex: 1.6}
	m := Resolve(testRegions, "london", catalog.SeasonNone, catalog.ComplexityComplex, catalog.QualityMidRange)
	if got, want := m.Labor(row), Compose(1.35, 1.6); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
