package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Metadata is the typed view of an article's front matter.
type Metadata struct {
	Title       string  `yaml:"title"`
	Date        string  `yaml:"date"`
	Tags        TagList `yaml:"tags"`
	Image       string  `yaml:"image"`
	Description string  `yaml:"description"`
	Layout      string  `yaml:"layout"`
	Published   *bool   `yaml:"published"`
}

// IsPublished reports whether the article should be discovered. Absent means yes.
func (m Metadata) IsPublished() bool {
	return m.Published == nil || *m.Published
}

// TagList accepts either a YAML sequence or a comma-separated string.
type TagList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *TagList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var raw string
		if err := node.Decode(&raw); err != nil {
			return err
		}
		*t = splitTags(strings.Split(raw, ","))
		return nil
	case yaml.SequenceNode:
		var raw []string
		if err := node.Decode(&raw); err != nil {
			return err
		}
		*t = splitTags(raw)
		return nil
	default:
		return fmt.Errorf("tags: expected string or list at line %d", node.Line)
	}
}

func splitTags(raw []string) TagList {
	out := make(TagList, 0, len(raw))
	for _, r := range raw {
		if s := strings.TrimSpace(r); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Decode parses raw YAML frontmatter into Metadata.
func Decode(frontmatter []byte) (Metadata, error) {
	var m Metadata
	if len(frontmatter) == 0 {
		return m, nil
	}
	if err := yaml.Unmarshal(frontmatter, &m); err != nil {
		return Metadata{}, err
	}
	return m, nil
}
