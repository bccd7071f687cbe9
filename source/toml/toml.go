// Package toml is a driver for TOML documents backed by BurntSushi/toml. A
// TOML document is always a table, so Marshal requires an object root and
// drops null members.
package toml

import (
	"bytes"
	"errors"

	"github.com/BurntSushi/toml"

	"github.com/reoring/jsoncodable/internal/tree"
)

// ErrRootNotTable is returned when marshaling a value that is not an object.
var ErrRootNotTable = errors.New("toml: root value must be an object")

// TOML converts between TOML text and the value tree.
type TOML struct{}

// Driver returns the TOML driver.
func Driver() TOML { return TOML{} }

func (TOML) Name() string { return "toml" }

func (TOML) Unmarshal(data []byte) (any, error) {
	v := map[string]any{}
	if _, err := toml.Decode(string(data), &v); err != nil {
		return nil, err
	}
	return tree.Normalize(v)
}

func (TOML) Marshal(v any) ([]byte, error) {
	obj, ok := tree.Plain(v, true).(map[string]any)
	if !ok {
		return nil, ErrRootNotTable
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(obj); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
