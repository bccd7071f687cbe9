package jsoncodable

import (
	"fmt"

	js "github.com/reoring/jsoncodable/jsonschema"
)

// Decodable is implemented by record types that construct themselves from a
// JSON object. The Decoder is rooted at the record's object.
type Decodable interface {
	DecodeJSON(d *Decoder) error
}

// Encodable is implemented by record types that write themselves into a JSON
// object through an Encoder.
type Encodable interface {
	EncodeJSON(e *Encoder) error
}

// Record returns the shape of a nested record. PT is inferred as *T; the record
// is decoded by (*T).DecodeJSON and encoded by its EncodeJSON method when T or
// *T implements Encodable.
func Record[T any, PT interface {
	*T
	Decodable
}]() Shape[T] {
	return recordShape[T, PT]{}
}

type recordShape[T any, PT interface {
	*T
	Decodable
}] struct{}

func (recordShape[T, PT]) Name() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

func (recordShape[T, PT]) DecodeValue(v any, sc Scope) (T, error) {
	var out T
	obj, ok := v.(map[string]any)
	if !ok {
		return out, ExpectedObject(sc.Path(), describe(v))
	}
	if err := PT(&out).DecodeJSON(sc.decoder(obj)); err != nil {
		var zero T
		return zero, asPathIssues(sc.Path(), err)
	}
	return out, nil
}

func (recordShape[T, PT]) EncodeValue(v T, sc Scope) (any, error) {
	enc, ok := any(v).(Encodable)
	if !ok {
		enc, ok = any(&v).(Encodable)
	}
	if !ok {
		return nil, ChildIncompatibleType(sc.Path(), fmt.Sprintf("%T", v))
	}
	return encodeRecord(enc, sc)
}

// JSONSchema describes the record when it carries a manifest.
func (recordShape[T, PT]) JSONSchema() *js.Schema {
	var zero T
	if d, ok := any(&zero).(SchemaDescriber); ok {
		return d.JSONSchema()
	}
	return &js.Schema{Type: "object"}
}

func encodeRecord(r Encodable, sc Scope) (map[string]any, error) {
	child := sc.encoder()
	if err := r.EncodeJSON(child); err != nil {
		return nil, asPathIssues(sc.Path(), err)
	}
	return child.Object(), nil
}
