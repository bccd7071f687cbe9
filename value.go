package jsoncodable

import (
	"encoding/json"
	"fmt"
)

// Kind classifies a node of the JSON value tree.
type Kind int

const (
	KindInvalid Kind = iota // Not a JSON-compatible value.
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the lower-case JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// KindOf reports the JSON kind of v. Numbers may be json.Number or any Go
// integer or float type; the model does not distinguish integers from floats.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return KindNumber
	case string:
		return KindString
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	default:
		return KindInvalid
	}
}

// describe renders the kind of v for diagnostics, falling back to the Go type
// for values outside the JSON model.
func describe(v any) string {
	if k := KindOf(v); k != KindInvalid {
		return k.String()
	}
	return fmt.Sprintf("%T", v)
}
