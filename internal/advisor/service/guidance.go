package service

import (
	"estimator_backend/internal/advisor/domain"
)

const maxTipsPerTool = 2

var baselineSafetyNotes = []string{
	"Wear appropriate PPE: safety glasses, gloves and steel toe-cap boots.",
	"Read the hire company's operating instructions before first use.",
	"Keep children and pets away from the work area.",
}

// SafetyNotes returns the baseline notes followed by each tool's safety
// requirements, without duplicates.
func SafetyNotes(recs []domain.ToolRecommendation) []string {
	notes := newOrderedSet()
	notes.add(baselineSafetyNotes...)
	for _, rec := range recs {
		notes.add(rec.SafetyRequirements...)
	}
	return notes.items
}

// ProTips returns the project type's general tips and up to two tips per
// recommended tool.
func (e *Engine) ProTips(c domain.Classification, recs []domain.ToolRecommendation) []string {
	tips := newOrderedSet()
	tips.add(e.kb.Projects[c.ProjectType].Tips...)
	for _, rec := range recs {
		toolTips := e.kb.Tools[rec.ToolID].Tips
		if len(toolTips) > maxTipsPerTool {
			toolTips = toolTips[:maxTipsPerTool]
		}
		tips.add(toolTips...)
	}
	return tips.items
}

// Alternatives lists manual substitutes for tools that have them.
func Alternatives(recs []domain.ToolRecommendation) []domain.Alternative {
	var out []domain.Alternative
	for _, rec := range recs {
		if len(rec.Alternatives) == 0 {
			continue
		}
		out = append(out, domain.Alternative{ToolID: rec.ToolID, Options: rec.Alternatives})
	}
	return out
}

type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(values ...string) {
	for _, v := range values {
		if _, ok := s.seen[v]; ok || v == "" {
			continue
		}
		s.seen[v] = struct{}{}
		s.items = append(s.items, v)
	}
}
