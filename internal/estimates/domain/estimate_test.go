package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewRangeKeepsInvariant(t *testing.T) {
	cases := []struct {
		name     string
		lo, hi   float64
		min, max float64
	}{
		{"ordered", 10, 20, 10, 20},
		{"swapped", 20, 10, 10, 20},
		{"negative low", -5, 20, 0, 20},
		{"both negative", -5, -1, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRange(decimal.NewFromFloat(tc.lo), decimal.NewFromFloat(tc.hi))
			if !r.Min.Equal(decimal.NewFromFloat(tc.min)) || !r.Max.Equal(decimal.NewFromFloat(tc.max)) {
				t.Fatalf("expected [%v, %v], got [%s, %s]", tc.min, tc.max, r.Min, r.Max)
			}
		})
	}
}

func TestBandAndAdd(t *testing.T) {
	labor := Band(decimal.NewFromInt(650), decimal.NewFromFloat(0.8), decimal.NewFromFloat(1.2))
	if !labor.Min.Equal(decimal.NewFromInt(520)) || !labor.Max.Equal(decimal.NewFromInt(780)) {
		t.Fatalf("expected [520, 780], got [%s, %s]", labor.Min, labor.Max)
	}

	total := labor.Add(Point(decimal.NewFromInt(200)))
	if !total.Min.Equal(decimal.NewFromInt(720)) || !total.Max.Equal(decimal.NewFromInt(980)) {
		t.Fatalf("expected [720, 980], got [%s, %s]", total.Min, total.Max)
	}
}

func TestIsDegraded(t *testing.T) {
	e := Estimate{Degraded: []Category{CategoryMaterials}}
	if !e.IsDegraded(CategoryMaterials) || e.IsDegraded(CategoryLabor) {
		t.Fatalf("unexpected degraded lookup for %v", e.Degraded)
	}
}
