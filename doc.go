package jsoncodable

// Package jsoncodable provides:
//
// - Path-addressed decoding of JSON value trees into typed Go values (Decode/DecodeOptional/DecodeOr)
// - A mirrored Encoder that writes typed values back at dotted key paths
// - Bidirectional Transformers for types JSON cannot carry (URLs, timestamps)
// - A stable error model via Issues (path, code, message)
// - Declared field lists (Manifest) for records that should not hand-write DecodeJSON/EncodeJSON
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place transformers under transform/, format drivers under source/, and the CLI under cmd/jsoncodable.
// - Options are passed per call; the only process-wide setting is the JSON driver.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  func (u *User) DecodeJSON(d *jsoncodable.Decoder) (err error) {
//      if u.ID, err = jsoncodable.Decode(d, "id", jsoncodable.Int()); err != nil {
//          return err
//      }
//      u.City, err = jsoncodable.DecodeOptional(d, "address.city", jsoncodable.String())
//      return err
//  }
//
//  u, err := jsoncodable.Unmarshal[User](data)
//  out, err := jsoncodable.Marshal(u, jsoncodable.EncodeOptions{Nulls: jsoncodable.EncodeNulls})
//
