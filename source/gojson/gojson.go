// Package gojson is the default JSON driver, backed by goccy/go-json. Numbers
// are decoded as json.Number so integers keep full precision.
package gojson

import (
	"bytes"
	"errors"
	"io"

	j "github.com/goccy/go-json"
)

// GoJSON converts between JSON text and the value tree using go-json.
type GoJSON struct{}

// Driver returns the go-json driver.
func Driver() GoJSON { return GoJSON{} }

func (GoJSON) Name() string { return "go-json" }

func (GoJSON) Unmarshal(data []byte) (any, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("gojson: unexpected data after top-level value")
	}
	return v, nil
}

func (GoJSON) Marshal(v any) ([]byte, error) { return j.Marshal(v) }
