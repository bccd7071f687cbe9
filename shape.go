package jsoncodable

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"

	"github.com/spf13/cast"

	js "github.com/reoring/jsoncodable/jsonschema"
)

// Shape describes how a Go value of type T is read from and written to the
// JSON value tree. DecodeValue receives a present, non-null value; absence is
// handled by the call site (Decode, DecodeOptional, DecodeOr).
type Shape[T any] interface {
	// Name describes the expected wire form for diagnostics.
	Name() string
	DecodeValue(v any, sc Scope) (T, error)
	EncodeValue(v T, sc Scope) (any, error)
}

// SchemaDescriber is implemented by shapes that can project themselves into a
// JSON Schema.
type SchemaDescriber interface {
	JSONSchema() *js.Schema
}

// missingDefaulter is implemented by shapes that tolerate a missing required
// value by substituting a default (arrays decode to an empty slice).
type missingDefaulter[T any] interface {
	onMissing() T
}

// ---- scalars ----

// String returns the string shape.
func String() Shape[string] { return stringShape[string]{} }

// StringAs returns a string shape projected to a domain type with an
// underlying string.
func StringAs[T ~string]() Shape[T] { return stringShape[T]{} }

type stringShape[T ~string] struct{}

func (stringShape[T]) Name() string { return "string" }

func (stringShape[T]) DecodeValue(v any, sc Scope) (T, error) {
	s, ok := v.(string)
	if !ok {
		return "", IncompatibleType(sc.Path(), describe(v), "string")
	}
	return T(s), nil
}

func (stringShape[T]) EncodeValue(v T, _ Scope) (any, error) { return string(v), nil }

func (stringShape[T]) JSONSchema() *js.Schema { return &js.Schema{Type: "string"} }

// Bool returns the bool shape.
func Bool() Shape[bool] { return boolShape{} }

type boolShape struct{}

func (boolShape) Name() string { return "bool" }

func (boolShape) DecodeValue(v any, sc Scope) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, IncompatibleType(sc.Path(), describe(v), "bool")
	}
	return b, nil
}

func (boolShape) EncodeValue(v bool, _ Scope) (any, error) { return v, nil }

func (boolShape) JSONSchema() *js.Schema { return &js.Schema{Type: "boolean"} }

// Numeric is the set of Go number types a JSON number can decode into.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Number returns a shape for any Go numeric type. Integer targets reject
// fractional and out-of-range values.
func Number[N Numeric]() Shape[N] {
	var zero N
	return numberShape[N]{kind: reflect.TypeOf(zero).Kind()}
}

// Int returns the int shape.
func Int() Shape[int] { return Number[int]() }

// Int64 returns the int64 shape.
func Int64() Shape[int64] { return Number[int64]() }

// Float64 returns the float64 shape.
func Float64() Shape[float64] { return Number[float64]() }

type numberShape[N Numeric] struct{ kind reflect.Kind }

func (s numberShape[N]) Name() string { return s.kind.String() }

func (s numberShape[N]) DecodeValue(v any, sc Scope) (N, error) {
	if KindOf(v) != KindNumber {
		return 0, IncompatibleType(sc.Path(), describe(v), "number")
	}
	n, ok := convertNumber[N](v, s.kind)
	if !ok {
		return 0, IncompatibleType(sc.Path(), "number", s.kind.String())
	}
	return n, nil
}

// EncodeValue writes built-in number types unchanged and named ones as their
// underlying int64, uint64 or float64 so the tree stays within the model.
func (s numberShape[N]) EncodeValue(v N, _ Scope) (any, error) {
	if w := any(v); KindOf(w) == KindNumber {
		return w, nil
	}
	switch s.kind {
	case reflect.Float32, reflect.Float64:
		return float64(v), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return uint64(v), nil
	default:
		return int64(v), nil
	}
}

func (s numberShape[N]) JSONSchema() *js.Schema {
	switch s.kind {
	case reflect.Float32, reflect.Float64:
		return &js.Schema{Type: "number"}
	default:
		return &js.Schema{Type: "integer"}
	}
}

func convertNumber[N Numeric](v any, kind reflect.Kind) (N, bool) {
	v = plainNumber(v)
	switch kind {
	case reflect.Float32, reflect.Float64:
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return 0, false
		}
		n := N(f)
		if math.IsInf(float64(n), 0) && !math.IsInf(f, 0) {
			return 0, false
		}
		return n, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if !integral(v, 0, math.MaxUint64) {
			return 0, false
		}
		u, err := cast.ToUint64E(v)
		if err != nil {
			return 0, false
		}
		n := N(u)
		if uint64(n) != u {
			return 0, false
		}
		return n, true
	default:
		if u, ok := v.(uint64); ok && u > math.MaxInt64 {
			return 0, false
		}
		if !integral(v, math.MinInt64, math.MaxInt64) {
			return 0, false
		}
		i, err := cast.ToInt64E(v)
		if err != nil {
			return 0, false
		}
		n := N(i)
		if int64(n) != i {
			return 0, false
		}
		return n, true
	}
}

// plainNumber turns a json.Number into int64, uint64 or float64.
func plainNumber(v any) any {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
		return u
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return v
}

// integral reports whether a float has no fractional part and lies within
// [lo, hi]. Integer values always pass.
func integral(v any, lo, hi float64) bool {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case json.Number:
		return false
	default:
		return true
	}
	return f == math.Trunc(f) && f >= lo && f < hi
}

// ---- raw values ----

// Any returns a shape that passes JSON values through unchanged. Encoding
// accepts any JSON-compatible Go value, Encodable records, slices and
// string-keyed maps; anything else fails with ChildIncompatibleType.
func Any() Shape[any] { return anyShape{} }

type anyShape struct{}

func (anyShape) Name() string                           { return "any" }
func (anyShape) DecodeValue(v any, _ Scope) (any, error) { return v, nil }
func (anyShape) EncodeValue(v any, sc Scope) (any, error) {
	return encodeAny(v, sc)
}
func (anyShape) JSONSchema() *js.Schema { return &js.Schema{} }

// Object returns a shape for a raw JSON object.
func Object() Shape[map[string]any] { return objectShape{} }

type objectShape struct{}

func (objectShape) Name() string { return "object" }

func (objectShape) DecodeValue(v any, sc Scope) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, ExpectedObject(sc.Path(), describe(v))
	}
	return m, nil
}

func (objectShape) EncodeValue(v map[string]any, sc Scope) (any, error) {
	return encodeAny(v, sc)
}

func (objectShape) JSONSchema() *js.Schema {
	return &js.Schema{Type: "object", AdditionalProperties: true}
}

func schemaOf[T any](s Shape[T]) *js.Schema {
	if d, ok := s.(SchemaDescriber); ok {
		return d.JSONSchema()
	}
	return &js.Schema{}
}
