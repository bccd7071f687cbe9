// Package msgpack is a driver for MessagePack payloads backed by
// vmihailenco/msgpack/v5. Binary values decode to base64 strings.
package msgpack

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/reoring/jsoncodable/internal/tree"
)

// MsgPack converts between MessagePack bytes and the value tree.
type MsgPack struct{}

// Driver returns the MessagePack driver.
func Driver() MsgPack { return MsgPack{} }

func (MsgPack) Name() string { return "msgpack" }

func (MsgPack) Unmarshal(data []byte) (any, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	v, err := dec.DecodeInterface()
	if err != nil {
		return nil, err
	}
	return tree.Normalize(v)
}

func (MsgPack) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(tree.Plain(v, false)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
