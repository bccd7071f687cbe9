package jsoncodable_test

import (
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"

	jc "github.com/reoring/jsoncodable"
)

func TestEncode_DottedPathsMerge(t *testing.T) {
	e := jc.NewEncoder()
	must(t, jc.Encode(e, "rel", jc.String(), "self"))
	must(t, jc.Encode(e, "properties.name", jc.String(), "Pier"))
	must(t, jc.Encode(e, "properties.location.coord.long", jc.Float64(), -122.4))
	must(t, jc.Encode(e, "properties.location.coord.lat", jc.Float64(), 37.8))

	want := map[string]any{
		"rel": "self",
		"properties": map[string]any{
			"name": "Pier",
			"location": map[string]any{
				"coord": map[string]any{"long": -122.4, "lat": 37.8},
			},
		},
	}
	if got := e.Object(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tree:\n%s", spew.Sdump(got))
	}
}

func TestEncode_NonObjectIntermediateReplaced(t *testing.T) {
	e := jc.NewEncoder()
	must(t, jc.Encode(e, "a", jc.Int(), 1))
	must(t, jc.Encode(e, "a.b", jc.Int(), 2))
	if got := e.Object(); !reflect.DeepEqual(got, map[string]any{"a": map[string]any{"b": 2}}) {
		t.Fatalf("unexpected tree: %v", got)
	}
}

func TestEncode_LiteralKeys(t *testing.T) {
	e := jc.NewEncoder(jc.EncodeOptions{LiteralKeys: true})
	must(t, jc.Encode(e, "user.name", jc.String(), "ann"))
	if got := e.Object(); !reflect.DeepEqual(got, map[string]any{"user.name": "ann"}) {
		t.Fatalf("unexpected tree: %v", got)
	}
	// literal dotted keys resolve through the fallback lookup
	name, err := jc.Decode(jc.NewDecoder(e.Object()), "user.name", jc.String())
	if err != nil || name != "ann" {
		t.Fatalf("name=%q err=%v", name, err)
	}
}

func TestEncode_NullPolicy(t *testing.T) {
	var email *string

	omit := jc.NewEncoder()
	must(t, jc.EncodeOptional(omit, "email", jc.String(), email))
	if _, ok := omit.Object()["email"]; ok {
		t.Fatalf("absent optional must be omitted by default")
	}

	nulls := jc.NewEncoder(jc.EncodeOptions{Nulls: jc.EncodeNulls})
	must(t, jc.EncodeOptional(nulls, "contact.email", jc.String(), email))
	contact, _ := nulls.Object()["contact"].(map[string]any)
	if v, ok := contact["email"]; !ok || v != nil {
		t.Fatalf("expected explicit null, got %v", nulls.Object())
	}
}

func TestEncode_NullPolicyReachesNestedRecords(t *testing.T) {
	u := User{ID: 1, Name: "a", Company: &Company{Name: "Acme"}, Friends: []User{}}
	obj, err := jc.ToJSON(u, jc.EncodeOptions{Nulls: jc.EncodeNulls})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	company := obj["company"].(map[string]any)
	if v, ok := company["address"]; !ok || v != nil {
		t.Fatalf("nested optional must be null, got %v", company)
	}
	if v, ok := obj["email"]; !ok || v != nil {
		t.Fatalf("top-level optional must be null, got %v", obj)
	}
}

func TestEncode_EmptyPath(t *testing.T) {
	e := jc.NewEncoder()
	must(t, jc.Encode(e, "id", jc.Int(), 1))
	must(t, jc.Encode(e, "", jc.Record[Company](), Company{Name: "Acme"}))
	if got := e.Object(); !reflect.DeepEqual(got, map[string]any{"id": 1, "name": "Acme"}) {
		t.Fatalf("unexpected tree: %v", got)
	}

	err := jc.Encode(e, "", jc.String(), "x")
	if !jc.HasCode(err, jc.CodeChildIncompatibleType) {
		t.Fatalf("expected child_incompatible_type, got %v", err)
	}
}

type opaque struct{ ch chan int }

func TestEncodeAny(t *testing.T) {
	e := jc.NewEncoder()
	must(t, jc.EncodeAny(e, "meta", map[string]any{
		"tags":    []string{"a", "b"},
		"count":   uint8(3),
		"company": Company{Name: "Acme"},
		"nothing": nil,
	}))
	want := map[string]any{"meta": map[string]any{
		"tags":    []any{"a", "b"},
		"count":   uint8(3),
		"company": map[string]any{"name": "Acme"},
		"nothing": nil,
	}}
	if got := e.Object(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tree:\n%s", spew.Sdump(got))
	}

	err := jc.EncodeAny(e, "bad", map[string]any{"list": []any{1, opaque{}}})
	iss, ok := jc.AsIssues(err)
	if !ok || iss[0].Code != jc.CodeChildIncompatibleType || iss[0].Path != "bad.list[1]" {
		t.Fatalf("expected child_incompatible_type at bad.list[1], got %v", err)
	}
}

func TestEncode_Collections(t *testing.T) {
	e := jc.NewEncoder()
	must(t, jc.Encode(e, "grid", jc.Matrix(jc.Int()), [][]int{{1}, {2, 3}}))
	must(t, jc.Encode(e, "scores", jc.Map(jc.Float64()), map[string]float64{"a": 1.5}))
	want := map[string]any{
		"grid":   []any{[]any{1}, []any{2, 3}},
		"scores": map[string]any{"a": 1.5},
	}
	if got := e.Object(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tree:\n%s", spew.Sdump(got))
	}
}

type (
	age   int
	ratio float32
	count uint16
)

func TestEncode_NamedNumbersRoundTrip(t *testing.T) {
	e := jc.NewEncoder()
	must(t, jc.Encode(e, "age", jc.Number[age](), 7))
	must(t, jc.Encode(e, "ratio", jc.Number[ratio](), 0.5))
	must(t, jc.Encode(e, "count", jc.Number[count](), 9))

	want := map[string]any{"age": int64(7), "ratio": float64(0.5), "count": uint64(9)}
	if got := e.Object(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tree:\n%s", spew.Sdump(got))
	}

	d := jc.NewDecoder(e.Object())
	if v, err := jc.Decode(d, "age", jc.Number[age]()); err != nil || v != 7 {
		t.Fatalf("age=%d err=%v", v, err)
	}
	if v, err := jc.Decode(d, "ratio", jc.Number[ratio]()); err != nil || v != 0.5 {
		t.Fatalf("ratio=%v err=%v", v, err)
	}
	if v, err := jc.Decode(d, "count", jc.Number[count]()); err != nil || v != 9 {
		t.Fatalf("count=%d err=%v", v, err)
	}
}

func TestEncode_NilMapIsEmptyObject(t *testing.T) {
	e := jc.NewEncoder()
	var tags map[string]string
	must(t, jc.Encode(e, "tags", jc.Map(jc.String()), tags))
	if got := e.Object(); !reflect.DeepEqual(got, map[string]any{"tags": map[string]any{}}) {
		t.Fatalf("unexpected tree: %v", got)
	}
	back, err := jc.Decode(jc.NewDecoder(e.Object()), "tags", jc.Map(jc.String()))
	if err != nil || len(back) != 0 {
		t.Fatalf("tags=%v err=%v", back, err)
	}
}

func TestRoundTrip_User(t *testing.T) {
	u := appleUser()
	obj, err := jc.ToJSON(u)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if obj["full_name"] != "John Appleseed" {
		t.Fatalf("unexpected full_name: %v", obj["full_name"])
	}
	if _, ok := obj["friends"].([]any)[0].(map[string]any)["email"]; ok {
		t.Fatalf("absent email must be omitted")
	}

	back, err := jc.Decode(jc.NewDecoder(obj), "", jc.Record[User]())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(back, u) {
		t.Fatalf("round trip mismatch:\n%s", spew.Sdump(back, u))
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
