package version

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML writes a tag as a scalar string.
func (t Tag) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// UnmarshalYAML reads a tag from a scalar string.
func (t *Tag) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected scalar", ErrMalformed, node.Line)
	}
	tag, err := Parse(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*t = tag
	return nil
}
