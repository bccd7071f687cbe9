package jsoncodable

import (
	"github.com/reoring/jsoncodable/internal/pathexpr"
	js "github.com/reoring/jsoncodable/jsonschema"
)

// FieldInfo describes one declared field of a Manifest.
type FieldInfo struct {
	Key      string // Path expression the field is read from and written to.
	Shape    string // Shape name.
	Required bool
}

type field[T any] struct {
	info   FieldInfo
	decode func(d *Decoder, t *T) error
	encode func(e *Encoder, t *T) error
	schema func() *js.Schema
}

// Manifest is the declared field list of a record type T. Build it once,
// typically in a package-level var, and share it; a built Manifest is
// read-only and safe for concurrent use.
//
//	var userManifest = jc.NewManifest[User]("User")
//
//	func init() {
//		jc.Bind(userManifest, "id", jc.String(), func(u *User) *string { return &u.ID })
//		jc.BindOptional(userManifest, "nick", jc.String(), func(u *User) **string { return &u.Nick })
//	}
//
// *Manifest[T] is itself a Shape[T], so it can be nested in arrays and maps.
type Manifest[T any] struct {
	name   string
	fields []field[T]
}

// NewManifest returns an empty manifest named after the record type.
func NewManifest[T any](name string) *Manifest[T] { return &Manifest[T]{name: name} }

// Bind declares a required field.
func Bind[T, F any](m *Manifest[T], key string, shape Shape[F], at func(*T) *F) *Manifest[T] {
	m.fields = append(m.fields, field[T]{
		info: FieldInfo{Key: key, Shape: shape.Name(), Required: true},
		decode: func(d *Decoder, t *T) error {
			v, err := Decode(d, key, shape)
			if err != nil {
				return err
			}
			*at(t) = v
			return nil
		},
		encode: func(e *Encoder, t *T) error { return Encode(e, key, shape, *at(t)) },
		schema: func() *js.Schema { return schemaOf(shape) },
	})
	return m
}

// BindOptional declares an optional field held behind a pointer.
func BindOptional[T, F any](m *Manifest[T], key string, shape Shape[F], at func(*T) **F) *Manifest[T] {
	m.fields = append(m.fields, field[T]{
		info: FieldInfo{Key: key, Shape: shape.Name()},
		decode: func(d *Decoder, t *T) error {
			v, err := DecodeOptional(d, key, shape)
			if err != nil {
				return err
			}
			*at(t) = v
			return nil
		},
		encode: func(e *Encoder, t *T) error { return EncodeOptional(e, key, shape, *at(t)) },
		schema: func() *js.Schema { return schemaOf(shape) },
	})
	return m
}

// BindDefault declares an optional field that falls back to def when absent.
// The field is always written on encode.
func BindDefault[T, F any](m *Manifest[T], key string, shape Shape[F], at func(*T) *F, def F) *Manifest[T] {
	m.fields = append(m.fields, field[T]{
		info: FieldInfo{Key: key, Shape: shape.Name()},
		decode: func(d *Decoder, t *T) error {
			v, err := DecodeOr(d, key, shape, def)
			if err != nil {
				return err
			}
			*at(t) = v
			return nil
		},
		encode: func(e *Encoder, t *T) error { return Encode(e, key, shape, *at(t)) },
		schema: func() *js.Schema { return schemaOf(shape) },
	})
	return m
}

// Embed adds the fields of base, stored in T at the location returned by at.
// The embedded fields are read from and written to the same object as T's own
// fields.
func Embed[T, B any](m *Manifest[T], base *Manifest[B], at func(*T) *B) *Manifest[T] {
	for _, bf := range base.fields {
		bf := bf
		m.fields = append(m.fields, field[T]{
			info:   bf.info,
			decode: func(d *Decoder, t *T) error { return bf.decode(d, at(t)) },
			encode: func(e *Encoder, t *T) error { return bf.encode(e, at(t)) },
			schema: bf.schema,
		})
	}
	return m
}

// Fields lists the declared fields in declaration order, embedded fields first
// when Embed was called first.
func (m *Manifest[T]) Fields() []FieldInfo {
	out := make([]FieldInfo, len(m.fields))
	for i, f := range m.fields {
		out[i] = f.info
	}
	return out
}

// DecodeInto fills t from the decoder root, stopping at the first failing
// field.
func (m *Manifest[T]) DecodeInto(d *Decoder, t *T) error {
	for _, f := range m.fields {
		if err := f.decode(d, t); err != nil {
			return err
		}
	}
	return nil
}

// EncodeFrom writes every declared field of t.
func (m *Manifest[T]) EncodeFrom(e *Encoder, t *T) error {
	for _, f := range m.fields {
		if err := f.encode(e, t); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manifest[T]) Name() string { return m.name }

func (m *Manifest[T]) DecodeValue(v any, sc Scope) (T, error) {
	var out T
	obj, ok := v.(map[string]any)
	if !ok {
		return out, ExpectedObject(sc.Path(), describe(v))
	}
	if err := m.DecodeInto(sc.decoder(obj), &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func (m *Manifest[T]) EncodeValue(v T, sc Scope) (any, error) {
	e := sc.encoder()
	if err := m.EncodeFrom(e, &v); err != nil {
		return nil, err
	}
	return e.Object(), nil
}

// JSONSchema projects the declared fields into an object schema. Dotted keys
// become nested object properties.
func (m *Manifest[T]) JSONSchema() *js.Schema {
	s := js.Object()
	s.Title = m.name
	for _, f := range m.fields {
		s.Put(pathexpr.Keys(f.info.Key), f.schema(), f.info.Required)
	}
	return s
}
