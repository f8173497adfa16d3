package service

import (
	"regexp"
	"strings"

	"estimator_backend/internal/advisor/domain"
)

const (
	defaultLocation   = "UK"
	defaultBudget     = "standard"
	defaultExperience = "diy"
)

// rule is one (predicate, outcome) pair. Rules are evaluated in order and
// the first match wins.
type rule[T any] struct {
	pattern *regexp.Regexp
	outcome T
}

// newRule compiles keywords into one whole-word pattern. A trailing "*"
// matches any word ending, a bare last word also matches its plural, and
// spaces match any run of whitespace.
func newRule[T any](outcome T, keywords ...string) rule[T] {
	alts := make([]string, len(keywords))
	for i, kw := range keywords {
		alts[i] = keywordPattern(kw)
	}
	return rule[T]{
		pattern: regexp.MustCompile(`\b(?:` + strings.Join(alts, "|") + `)`),
		outcome: outcome,
	}
}

func keywordPattern(kw string) string {
	words := strings.Fields(kw)
	parts := make([]string, len(words))
	for i, w := range words {
		stem, open := strings.CutSuffix(w, "*")
		switch {
		case open:
			parts[i] = regexp.QuoteMeta(stem) + `\w*`
		case i == len(words)-1:
			parts[i] = regexp.QuoteMeta(stem) + `(?:s|es)?\b`
		default:
			parts[i] = regexp.QuoteMeta(stem)
		}
	}
	return strings.Join(parts, `\s+`)
}

func (r rule[T]) matches(text string) bool {
	return r.pattern.MatchString(text)
}

func firstMatch[T any](rules []rule[T], text string, fallback T) T {
	for _, r := range rules {
		if r.matches(text) {
			return r.outcome
		}
	}
	return fallback
}

// Excavation and concreting are checked before demolition.
var projectTypeRules = []rule[domain.ProjectType]{
	newRule(domain.ProjectExcavation,
		"dig", "digging", "digger", "dug", "excavat*", "trench", "trenching",
		"groundwork*", "basement", "soil"),
	newRule(domain.ProjectConcreting,
		"concret*", "cement*", "screed*", "pour", "pouring", "poured", "slab", "mortar"),
	newRule(domain.ProjectDemolition,
		"demolish*", "demolition", "knock* down", "knock* through", "tear* down",
		"torn down", "break* up", "broken up", "strip* out"),
}

// Scale rules per project type, large before medium before small.
var scaleRules = map[domain.ProjectType][]rule[domain.Scale]{
	domain.ProjectExcavation: {
		newRule(domain.ScaleLarge, "basement", "large"),
		newRule(domain.ScaleMedium, "foundation", "pool"),
		newRule(domain.ScaleSmall, "garden", "fence"),
	},
	domain.ProjectConcreting: {
		newRule(domain.ScaleLarge, "foundation", "commercial", "large"),
		newRule(domain.ScaleMedium, "patio", "driveway", "slab"),
		newRule(domain.ScaleSmall, "path", "post"),
	},
	domain.ProjectDemolition: {
		newRule(domain.ScaleLarge, "house", "building", "extension", "large"),
		newRule(domain.ScaleMedium, "garage", "outbuilding", "conservatory"),
		newRule(domain.ScaleSmall, "wall", "shed", "fireplace"),
	},
	domain.ProjectGeneral: {
		newRule(domain.ScaleLarge, "large", "whole house"),
		newRule(domain.ScaleMedium, "kitchen", "bathroom", "bedroom", "room"),
	},
}

var longDurationRule = newRule(domain.DurationLong,
	"weeks", "month", "ongoing", "long term", "long-term")

// Classify maps a free-text query to a project classification. It never
// fails; unmatched text falls back to general, small and short.
func Classify(query string, details domain.Details) domain.Classification {
	text := strings.ToLower(query)

	projectType := firstMatch(projectTypeRules, text, domain.ProjectGeneral)

	return domain.Classification{
		ProjectType:     projectType,
		Scale:           firstMatch(scaleRules[projectType], text, domain.ScaleSmall),
		Duration:        classifyDuration(text, details.Timeline),
		Location:        withFallback(details.Location, defaultLocation),
		BudgetTier:      withFallback(details.Budget, defaultBudget),
		ExperienceLevel: withFallback(details.Experience, defaultExperience),
	}
}

func classifyDuration(text, timeline string) domain.Duration {
	switch domain.Duration(strings.ToLower(strings.TrimSpace(timeline))) {
	case domain.DurationShort:
		return domain.DurationShort
	case domain.DurationLong:
		return domain.DurationLong
	}
	return firstMatch([]rule[domain.Duration]{longDurationRule}, text, domain.DurationShort)
}

func withFallback(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
