package seed

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Catalog represents the top-level structure of a seed file.
type Catalog struct {
	Portals []PortalEntry `yaml:"portals"`
}

// PortalEntry is one portal definition in the seed file.
type PortalEntry struct {
	ID          string       `yaml:"id,omitempty"`
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
	URL         string       `yaml:"url"`
	Tags        StringOrList `yaml:"tags,omitempty"`
	Status      string       `yaml:"status,omitempty"`
	Icon        string       `yaml:"icon,omitempty"`
	Pinned      bool         `yaml:"pinned,omitempty"`
}

// StringOrList accepts either a YAML sequence of strings or a single
// comma-delimited string, matching what the HTTP surface accepts for tags.
type StringOrList []string

func (s *StringOrList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return fmt.Errorf("failed to decode tag list: %w", err)
		}
		*s = list
		return nil
	case yaml.ScalarNode:
		var single string
		if err := node.Decode(&single); err != nil {
			return fmt.Errorf("failed to decode tag string: %w", err)
		}
		*s = []string{single}
		return nil
	default:
		return fmt.Errorf("tags must be a sequence or a string, got yaml kind %d", node.Kind)
	}
}
