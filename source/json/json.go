// Package json is a driver backed by the standard library encoding/json.
package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// Std converts between JSON text and the value tree using encoding/json.
type Std struct{}

// Driver returns the encoding/json driver.
func Driver() Std { return Std{} }

func (Std) Name() string { return "encoding/json" }

func (Std) Unmarshal(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("json: unexpected data after top-level value")
	}
	return v, nil
}

func (Std) Marshal(v any) ([]byte, error) { return json.Marshal(v) }
