// Package cbor is a driver for CBOR payloads backed by fxamacker/cbor/v2.
// Output uses the canonical encoding so equal trees produce equal bytes.
// Maps decode as map[any]any and non-string keys are stringified by the tree
// normalizer.
package cbor

import (
	cbor "github.com/fxamacker/cbor/v2"

	"github.com/reoring/jsoncodable/internal/tree"
)

// CBOR converts between CBOR bytes and the value tree.
type CBOR struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

// Driver returns the CBOR driver.
func Driver() CBOR {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	dm, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		panic(err)
	}
	return CBOR{enc: em, dec: dm}
}

func (CBOR) Name() string { return "cbor" }

func (c CBOR) Unmarshal(data []byte) (any, error) {
	var v any
	if err := c.dec.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return tree.Normalize(v)
}

func (c CBOR) Marshal(v any) ([]byte, error) { return c.enc.Marshal(tree.Plain(v, false)) }
