package jsoncodable

import js "github.com/reoring/jsoncodable/jsonschema"

// Transformer converts between a wire value W that JSON can carry and a domain
// value D that it cannot. Both directions report failure with ok=false and
// must not panic.
type Transformer[W, D any] struct {
	name   string
	format string
	decode func(W) (D, bool)
	encode func(D) (W, bool)
}

// NewTransformer builds a Transformer. A nil encode function makes the
// transformer decode-only; encoding through it fails with TransformerFailed.
func NewTransformer[W, D any](name string, decode func(W) (D, bool), encode func(D) (W, bool)) Transformer[W, D] {
	return Transformer[W, D]{name: name, decode: decode, encode: encode}
}

// WithFormat returns a copy annotated with a JSON Schema format such as "uri".
func (t Transformer[W, D]) WithFormat(format string) Transformer[W, D] {
	t.format = format
	return t
}

// Name returns the transformer name used in TransformerFailed issues.
func (t Transformer[W, D]) Name() string { return t.name }

// Decode converts a wire value into its domain form.
func (t Transformer[W, D]) Decode(w W) (D, bool) {
	if t.decode == nil {
		var zero D
		return zero, false
	}
	return t.decode(w)
}

// Encode converts a domain value back into its wire form.
func (t Transformer[W, D]) Encode(d D) (W, bool) {
	if t.encode == nil {
		var zero W
		return zero, false
	}
	return t.encode(d)
}

// Transformed returns a shape that reads a wire value with wire and converts
// it through t. Kind mismatches surface as the wire shape's error; conversion
// failures as TransformerFailed.
func Transformed[W, D any](wire Shape[W], t Transformer[W, D]) Shape[D] {
	return transformedShape[W, D]{wire: wire, t: t}
}

type transformedShape[W, D any] struct {
	wire Shape[W]
	t    Transformer[W, D]
}

func (s transformedShape[W, D]) Name() string { return s.t.name }

func (s transformedShape[W, D]) DecodeValue(v any, sc Scope) (D, error) {
	var zero D
	w, err := s.wire.DecodeValue(v, sc)
	if err != nil {
		return zero, err
	}
	d, ok := s.t.Decode(w)
	if !ok {
		return zero, TransformerFailed(sc.Path(), s.t.name)
	}
	return d, nil
}

func (s transformedShape[W, D]) EncodeValue(v D, sc Scope) (any, error) {
	w, ok := s.t.Encode(v)
	if !ok {
		return nil, TransformerFailed(sc.Path(), s.t.name)
	}
	return s.wire.EncodeValue(w, sc)
}

func (s transformedShape[W, D]) JSONSchema() *js.Schema {
	out := *schemaOf(s.wire)
	if s.t.format != "" {
		out.Format = s.t.format
	}
	return &out
}
