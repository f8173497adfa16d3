package service

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"estimator_backend/internal/advisor/domain"
)

//go:embed knowledge.yaml
var defaultKnowledge []byte

// ToolKnowledge is what the advisor knows about one tool independent of
// the priced catalog.
type ToolKnowledge struct {
	Name               string   `yaml:"name"`
	Daily              float64  `yaml:"daily"`
	Weekly             float64  `yaml:"weekly"`
	PurchasePriceRange string   `yaml:"purchase_price_range"`
	Safety             []string `yaml:"safety"`
	Tips               []string `yaml:"tips"`
	Alternatives       []string `yaml:"alternatives"`
}

// ProjectKnowledge maps a project type to its tools and general tips.
type ProjectKnowledge struct {
	Primary    map[domain.Scale]string `yaml:"primary"`
	Supporting []string                `yaml:"supporting"`
	Tips       []string                `yaml:"tips"`
}

// Knowledge is the decoded tool knowledge base.
type Knowledge struct {
	Projects map[domain.ProjectType]ProjectKnowledge `yaml:"projects"`
	Tools    map[string]ToolKnowledge                `yaml:"tools"`
}

// DefaultKnowledge decodes the embedded knowledge base.
func DefaultKnowledge() (*Knowledge, error) {
	return ParseKnowledge(defaultKnowledge)
}

// ParseKnowledge decodes a YAML knowledge base and checks that every
// project type has a primary tool per scale and that every referenced
// tool is defined.
func ParseKnowledge(data []byte) (*Knowledge, error) {
	var kb Knowledge
	if err := yaml.Unmarshal(data, &kb); err != nil {
		return nil, fmt.Errorf("decode tool knowledge: %w", err)
	}

	for _, pt := range []domain.ProjectType{domain.ProjectExcavation, domain.ProjectConcreting, domain.ProjectDemolition, domain.ProjectGeneral} {
		project, ok := kb.Projects[pt]
		if !ok {
			return nil, fmt.Errorf("tool knowledge: missing project type %q", pt)
		}
		for _, scale := range []domain.Scale{domain.ScaleSmall, domain.ScaleMedium, domain.ScaleLarge} {
			id, ok := project.Primary[scale]
			if !ok {
				return nil, fmt.Errorf("tool knowledge: %s has no %s primary tool", pt, scale)
			}
			if _, ok := kb.Tools[id]; !ok {
				return nil, fmt.Errorf("tool knowledge: unknown tool %q", id)
			}
		}
		for _, id := range project.Supporting {
			if _, ok := kb.Tools[id]; !ok {
				return nil, fmt.Errorf("tool knowledge: unknown tool %q", id)
			}
		}
	}
	return &kb, nil
}
