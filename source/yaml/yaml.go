// Package yaml is a driver for YAML documents backed by gopkg.in/yaml.v3.
// Timestamps decode to RFC3339 strings and non-string keys are stringified.
package yaml

import (
	"gopkg.in/yaml.v3"

	"github.com/reoring/jsoncodable/internal/tree"
)

// YAML converts between YAML text and the value tree.
type YAML struct{}

// Driver returns the YAML driver.
func Driver() YAML { return YAML{} }

func (YAML) Name() string { return "yaml" }

func (YAML) Unmarshal(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return tree.Normalize(v)
}

func (YAML) Marshal(v any) ([]byte, error) { return yaml.Marshal(tree.Plain(v, false)) }
