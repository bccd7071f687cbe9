package jsoncodable

import "github.com/reoring/jsoncodable/internal/pathexpr"

// Decoder reads typed values out of a JSON value tree. A Decoder handed to
// DecodeJSON is rooted at the record's object; paths are relative to that
// root, and issues report the full path from the document root.
type Decoder struct {
	root any
	base string
	opt  *DecodeOptions
}

// NewDecoder returns a Decoder over root. The root may be any JSON value,
// including an array for top-level array documents.
func NewDecoder(root any, opts ...DecodeOptions) *Decoder {
	return &Decoder{root: root, opt: lastDecodeOpt(opts)}
}

// Root returns the value the decoder is rooted at.
func (d *Decoder) Root() any { return d.root }

// Path returns the location of the decoder's root within the document.
func (d *Decoder) Path() string { return d.base }

// Lookup resolves path against the decoder root. See Resolve.
func (d *Decoder) Lookup(path string) (any, bool) { return Resolve(d.root, path) }

// Has reports whether path resolves to a non-null value.
func (d *Decoder) Has(path string) bool {
	_, ok := d.Lookup(path)
	return ok
}

func (d *Decoder) scope(path string) Scope {
	return Scope{path: pathexpr.Join(d.base, path), dec: d.opt}
}

// decoder returns a Decoder rooted at a nested value found at the scope path.
func (s Scope) decoder(root any) *Decoder {
	return &Decoder{root: root, base: s.path, opt: s.dec}
}

// Decode reads the required value at path. A missing or null value fails with
// MissingValue, except for array shapes which yield an empty slice.
func Decode[T any](d *Decoder, path string, shape Shape[T]) (T, error) {
	sc := d.scope(path)
	v, ok := d.Lookup(path)
	if !ok {
		if md, isDefaulter := shape.(missingDefaulter[T]); isDefaulter {
			return md.onMissing(), nil
		}
		var zero T
		return zero, MissingValue(sc.Path())
	}
	return decodeAt(shape, v, sc)
}

// DecodeOptional reads the value at path, returning nil when it is missing or
// null. A present value of the wrong kind is still an error.
func DecodeOptional[T any](d *Decoder, path string, shape Shape[T]) (*T, error) {
	v, ok := d.Lookup(path)
	if !ok {
		return nil, nil
	}
	out, err := decodeAt(shape, v, d.scope(path))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DecodeOr reads the value at path, returning def when it is missing or null.
func DecodeOr[T any](d *Decoder, path string, shape Shape[T], def T) (T, error) {
	v, ok := d.Lookup(path)
	if !ok {
		return def, nil
	}
	return decodeAt(shape, v, d.scope(path))
}

// SafeDecode is Decode without the error: any failure yields (zero, false).
func SafeDecode[T any](d *Decoder, path string, shape Shape[T]) (T, bool) {
	v, err := Decode(d, path, shape)
	if err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

func decodeAt[T any](shape Shape[T], v any, sc Scope) (T, error) {
	out, err := shape.DecodeValue(v, sc)
	if err != nil {
		var zero T
		return zero, asPathIssues(sc.Path(), err)
	}
	return out, nil
}
