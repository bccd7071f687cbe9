package jsoncodable

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/reoring/jsoncodable/internal/pathexpr"
)

// Encoder accumulates typed values into a JSON object. Dotted paths expand into
// nested objects that merge with siblings already written.
type Encoder struct {
	obj  map[string]any
	base string
	opt  *EncodeOptions
}

// NewEncoder returns an Encoder writing into a fresh object.
func NewEncoder(opts ...EncodeOptions) *Encoder {
	return &Encoder{obj: map[string]any{}, opt: lastEncodeOpt(opts)}
}

// Object returns the object built so far. The map is owned by the encoder.
func (e *Encoder) Object() map[string]any { return e.obj }

// Options returns the options the encoder was created with.
func (e *Encoder) Options() EncodeOptions { return *e.opt }

func (e *Encoder) scope(path string) Scope {
	return Scope{path: pathexpr.Join(e.base, path), enc: e.opt}
}

// encoder returns a child Encoder for a nested record at the scope path. Nested
// encoders inherit the caller's options.
func (s Scope) encoder() *Encoder {
	opt := s.enc
	if opt == nil {
		opt = &EncodeOptions{}
	}
	return &Encoder{obj: map[string]any{}, base: s.path, opt: opt}
}

// Encode writes v at path.
func Encode[T any](e *Encoder, path string, shape Shape[T], v T) error {
	sc := e.scope(path)
	w, err := shape.EncodeValue(v, sc)
	if err != nil {
		return asPathIssues(sc.Path(), err)
	}
	return e.put(path, w)
}

// EncodeOptional writes *v at path. A nil v is omitted under OmitNulls and
// written as JSON null under EncodeNulls.
func EncodeOptional[T any](e *Encoder, path string, shape Shape[T], v *T) error {
	if v == nil {
		if e.opt.Nulls == EncodeNulls {
			return e.put(path, nil)
		}
		return nil
	}
	return Encode(e, path, shape, *v)
}

// EncodeAny writes a dynamically typed value at path. See Any.
func EncodeAny(e *Encoder, path string, v any) error {
	return Encode(e, path, Any(), v)
}

// ToJSON encodes a record into a fresh object.
func ToJSON(r Encodable, opts ...EncodeOptions) (map[string]any, error) {
	e := NewEncoder(opts...)
	if err := r.EncodeJSON(e); err != nil {
		return nil, asPathIssues("", err)
	}
	return e.Object(), nil
}

// put stores w at path. The empty path merges an object value into the
// current object.
func (e *Encoder) put(path string, w any) error {
	if path == "" {
		obj, ok := w.(map[string]any)
		if !ok {
			return ChildIncompatibleType(e.base, describe(w))
		}
		merge(e.obj, obj)
		return nil
	}
	keys := []string{path}
	if !e.opt.LiteralKeys {
		keys = pathexpr.Keys(path)
	}
	cur := e.obj
	for _, k := range keys[:len(keys)-1] {
		next, ok := cur[k].(map[string]any)
		if !ok {
			next = map[string]any{}
			cur[k] = next
		}
		cur = next
	}
	last := keys[len(keys)-1]
	if dst, ok := cur[last].(map[string]any); ok {
		if src, ok := w.(map[string]any); ok {
			merge(dst, src)
			return nil
		}
	}
	cur[last] = w
	return nil
}

// merge copies src into dst, descending into members that are objects on
// both sides.
func merge(dst, src map[string]any) {
	for k, v := range src {
		if d, ok := dst[k].(map[string]any); ok {
			if s, ok := v.(map[string]any); ok {
				merge(d, s)
				continue
			}
		}
		dst[k] = v
	}
}

var encodableType = reflect.TypeOf((*Encodable)(nil)).Elem()

// encodeAny converts a dynamic Go value into the JSON value tree.
func encodeAny(v any, sc Scope) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case Encodable:
		if rv := reflect.ValueOf(t); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil, nil
		}
		return encodeRecord(t, sc)
	case bool, string, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v, nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			w, err := encodeAny(vv, sc.Key(k))
			if err != nil {
				return nil, err
			}
			out[k] = w
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i := range t {
			w, err := encodeAny(t[i], sc.Index(i))
			if err != nil {
				return nil, err
			}
			out[i] = w
		}
		return out, nil
	}
	return encodeReflect(reflect.ValueOf(v), sc)
}

func encodeReflect(rv reflect.Value, sc Scope) (any, error) {
	if reflect.PointerTo(rv.Type()).Implements(encodableType) {
		p := reflect.New(rv.Type())
		p.Elem().Set(rv)
		return encodeRecord(p.Interface().(Encodable), sc)
	}
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint(), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return encodeAny(rv.Elem().Interface(), sc)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil, nil
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			w, err := encodeAny(rv.Index(i).Interface(), sc.Index(i))
			if err != nil {
				return nil, err
			}
			out[i] = w
		}
		return out, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		if rv.IsNil() {
			return nil, nil
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			w, err := encodeAny(iter.Value().Interface(), sc.Key(k))
			if err != nil {
				return nil, err
			}
			out[k] = w
		}
		return out, nil
	}
	return nil, ChildIncompatibleType(sc.Path(), fmt.Sprintf("%v", rv.Type()))
}
