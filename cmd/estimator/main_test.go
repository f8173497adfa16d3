package main

import (
	"bytes"
	"encoding/json"
	"testing"

	advisortransport "estimator_backend/internal/advisor/transport"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestClassifyPrintsClassification(t *testing.T) {
	out, err := execute(t, "classify", "--timeline", "long", "dig", "a", "trench", "for", "drainage")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp advisortransport.ClassificationResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if resp.ProjectType != "excavation" {
		t.Fatalf("expected excavation, got %s", resp.ProjectType)
	}
	if resp.Duration != "long" {
		t.Fatalf("expected timeline flag to set long duration, got %s", resp.Duration)
	}
}

func TestAdviseWorksWithoutCatalog(t *testing.T) {
	out, err := execute(t, "advise", "--season", "winter", "pour a concrete slab")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp advisortransport.AdviceResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if resp.Classification.ProjectType != "concreting" {
		t.Fatalf("expected concreting, got %s", resp.Classification.ProjectType)
	}
	if len(resp.Recommendations) == 0 {
		t.Fatalf("expected recommendations")
	}
	for _, rec := range resp.Recommendations {
		if rec.Pricing.Source != "indicative" {
			t.Fatalf("expected indicative pricing offline, got %s", rec.Pricing.Source)
		}
	}
}

func TestAdviseRejectsUnknownSeason(t *testing.T) {
	if _, err := execute(t, "advise", "--season", "monsoon", "knock down a wall"); err == nil {
		t.Fatalf("expected unknown season to fail")
	}
}

func TestClassifyRejectsBlankDescription(t *testing.T) {
	if _, err := execute(t, "classify", "   "); err == nil {
		t.Fatalf("expected blank description to fail validation")
	}
}

func TestEstimateRequiresProjectType(t *testing.T) {
	if _, err := execute(t, "estimate"); err == nil {
		t.Fatalf("expected missing --project-type to fail")
	}
}
