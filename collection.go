package jsoncodable

import (
	"sort"

	js "github.com/reoring/jsoncodable/jsonschema"
)

// nullable is implemented by shapes that accept JSON null as an element value.
type nullable interface{ acceptsNull() bool }

func (anyShape) acceptsNull() bool { return true }

// decodeElem decodes a collection element. Null elements are missing unless the
// element shape accepts null.
func decodeElem[T any](s Shape[T], v any, sc Scope) (T, error) {
	if v == nil {
		if n, ok := s.(nullable); !ok || !n.acceptsNull() {
			var zero T
			return zero, MissingValue(sc.Path())
		}
	}
	out, err := s.DecodeValue(v, sc)
	if err != nil {
		return out, asPathIssues(sc.Path(), err)
	}
	return out, nil
}

// ArrayShape decodes a JSON array into []E. By default the first failing
// element fails the whole array; BestEffort drops failing elements instead.
type ArrayShape[E any] struct {
	elem       Shape[E]
	bestEffort bool
}

// Array returns a shape for a JSON array whose elements follow elem.
func Array[E any](elem Shape[E]) *ArrayShape[E] { return &ArrayShape[E]{elem: elem} }

// Matrix returns a shape for an array of arrays of elem.
func Matrix[E any](elem Shape[E]) *ArrayShape[[]E] { return Array[[]E](Array(elem)) }

// BestEffort returns a copy of the shape that drops elements failing to decode.
// Each drop is reported to DecodeOptions.OnDrop and logged at debug level.
func (a *ArrayShape[E]) BestEffort() *ArrayShape[E] {
	c := *a
	c.bestEffort = true
	return &c
}

func (a *ArrayShape[E]) Name() string { return "array<" + a.elem.Name() + ">" }

func (a *ArrayShape[E]) DecodeValue(v any, sc Scope) ([]E, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, ExpectedArray(sc.Path(), describe(v))
	}
	out := make([]E, 0, len(arr))
	for i, raw := range arr {
		esc := sc.Index(i)
		e, err := decodeElem(a.elem, raw, esc)
		if err != nil {
			if a.bestEffort {
				esc.drop(err)
				continue
			}
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (a *ArrayShape[E]) EncodeValue(v []E, sc Scope) (any, error) {
	out := make([]any, len(v))
	for i := range v {
		esc := sc.Index(i)
		w, err := a.elem.EncodeValue(v[i], esc)
		if err != nil {
			return nil, asPathIssues(esc.Path(), err)
		}
		out[i] = w
	}
	return out, nil
}

// onMissing makes a missing required array decode to an empty slice.
func (a *ArrayShape[E]) onMissing() []E { return []E{} }

func (a *ArrayShape[E]) JSONSchema() *js.Schema {
	return &js.Schema{Type: "array", Items: schemaOf(a.elem)}
}

// MapShape decodes a JSON object into map[string]V with keys kept verbatim.
type MapShape[V any] struct {
	val        Shape[V]
	bestEffort bool
}

// Map returns a shape for a JSON object whose member values follow val.
func Map[V any](val Shape[V]) *MapShape[V] { return &MapShape[V]{val: val} }

// BestEffort returns a copy of the shape that drops entries failing to decode.
func (m *MapShape[V]) BestEffort() *MapShape[V] {
	c := *m
	c.bestEffort = true
	return &c
}

func (m *MapShape[V]) Name() string { return "map<" + m.val.Name() + ">" }

func (m *MapShape[V]) DecodeValue(v any, sc Scope) (map[string]V, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, ExpectedObject(sc.Path(), describe(v))
	}
	out := make(map[string]V, len(obj))
	// sorted so the first reported failure is stable
	for _, k := range sortedKeys(obj) {
		ksc := sc.Key(k)
		val, err := decodeElem(m.val, obj[k], ksc)
		if err != nil {
			if m.bestEffort {
				ksc.drop(err)
				continue
			}
			return nil, err
		}
		out[k] = val
	}
	return out, nil
}

// EncodeValue writes a nil map as an empty object, mirroring arrays.
func (m *MapShape[V]) EncodeValue(v map[string]V, sc Scope) (any, error) {
	out := make(map[string]any, len(v))
	for k, val := range v {
		ksc := sc.Key(k)
		w, err := m.val.EncodeValue(val, ksc)
		if err != nil {
			return nil, asPathIssues(ksc.Path(), err)
		}
		out[k] = w
	}
	return out, nil
}

func (m *MapShape[V]) JSONSchema() *js.Schema {
	return &js.Schema{Type: "object", AdditionalProperties: schemaOf(m.val)}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
