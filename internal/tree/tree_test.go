package tree

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestNormalize_Containers(t *testing.T) {
	in := map[any]any{
		"name": "x",
		1:      []map[string]any{{"a": uint8(1)}},
		"tags": []string{"a", "b"},
		"blob": []byte("hi"),
		"at":   time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	got, err := Normalize(in)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	want := map[string]any{
		"name": "x",
		"1":    []any{map[string]any{"a": uint8(1)}},
		"tags": []any{"a", "b"},
		"blob": "aGk=",
		"at":   "2025-01-02T03:04:05Z",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v\nwant %#v", got, want)
	}
}

func TestNormalize_Unsupported(t *testing.T) {
	if _, err := Normalize(map[string]any{"ch": make(chan int)}); err == nil {
		t.Fatalf("expected error for channel value")
	}
}

func TestNormalize_NilPointer(t *testing.T) {
	var p *int
	got, err := Normalize(p)
	if err != nil || got != nil {
		t.Fatalf("got %v, %v", got, err)
	}
}

func TestPlain_Numbers(t *testing.T) {
	in := map[string]any{
		"i": json.Number("42"),
		"u": json.Number("18446744073709551615"),
		"f": json.Number("1.5"),
		"n": nil,
		"a": []any{json.Number("7")},
	}
	got := Plain(in, true)
	want := map[string]any{
		"i": int64(42),
		"u": uint64(18446744073709551615),
		"f": 1.5,
		"a": []any{int64(7)},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v\nwant %#v", got, want)
	}
	if kept := Plain(in, false).(map[string]any); len(kept) != 5 {
		t.Fatalf("nulls must be kept without dropNulls: %#v", kept)
	}
}
