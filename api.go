package jsoncodable

// Parse parses a document with the current JSON driver.
func Parse(data []byte) (any, error) { return ParseWith(CurrentJSONDriver(), data) }

// Unmarshal parses data and decodes the root object into a record.
func Unmarshal[T any, PT interface {
	*T
	Decodable
}](data []byte, opts ...DecodeOptions) (T, error) {
	return UnmarshalValue(data, Record[T, PT](), opts...)
}

// UnmarshalValue parses data and decodes the document root with shape. Use it
// for documents whose root is not a record, such as top-level arrays.
func UnmarshalValue[T any](data []byte, shape Shape[T], opts ...DecodeOptions) (T, error) {
	root, err := Parse(data)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode(NewDecoder(root, opts...), "", shape)
}

// Marshal encodes a record and serializes it with the current JSON driver.
func Marshal(r Encodable, opts ...EncodeOptions) ([]byte, error) {
	obj, err := ToJSON(r, opts...)
	if err != nil {
		return nil, err
	}
	return MarshalWith(CurrentJSONDriver(), obj)
}

// MarshalValue encodes v with shape and serializes the result.
func MarshalValue[T any](v T, shape Shape[T], opts ...EncodeOptions) ([]byte, error) {
	w, err := shape.EncodeValue(v, Scope{enc: lastEncodeOpt(opts)})
	if err != nil {
		return nil, asPathIssues("", err)
	}
	return MarshalWith(CurrentJSONDriver(), w)
}
