package benchmarks_test

import (
	"bytes"
	"strconv"
	"testing"

	jc "github.com/reoring/jsoncodable"
	"github.com/reoring/jsoncodable/source/gojson"
	stdjson "github.com/reoring/jsoncodable/source/json"
)

// ---- Helpers ----

type row struct {
	ID     string
	Name   string
	Age    int
	Active bool
	Score  float64
	Tags   []string
}

var rowManifest = jc.NewManifest[row]("row")

func init() {
	jc.Bind(rowManifest, "id", jc.String(), func(r *row) *string { return &r.ID })
	jc.Bind(rowManifest, "name", jc.String(), func(r *row) *string { return &r.Name })
	jc.Bind(rowManifest, "age", jc.Int(), func(r *row) *int { return &r.Age })
	jc.Bind(rowManifest, "active", jc.Bool(), func(r *row) *bool { return &r.Active })
	jc.Bind(rowManifest, "meta.score", jc.Float64(), func(r *row) *float64 { return &r.Score })
	jc.Bind(rowManifest, "tags", jc.Array(jc.String()), func(r *row) *[]string { return &r.Tags })
}

// generateRows returns a JSON array of objects of the form:
// [{"id":"obj_0","name":"n0","age":0,"active":true,"meta":{"score":0.5},"tags":["a","b"]}, ...]
func generateRows(n int) []byte {
	var buf bytes.Buffer
	buf.Grow(n * 96)
	buf.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		s := strconv.Itoa(i)
		buf.WriteString(`{"id":"obj_` + s + `","name":"n` + s + `","age":` + s +
			`,"active":true,"meta":{"score":0.5},"tags":["a","b"]}`)
	}
	buf.WriteByte(']')
	return buf.Bytes()
}

// ---- Benchmarks ----

func BenchmarkUnmarshalValue_Drivers(b *testing.B) {
	data := generateRows(1000)
	shape := jc.Array(rowManifest)
	for _, drv := range []jc.JSONDriver{gojson.Driver(), stdjson.Driver()} {
		b.Run(drv.Name(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			for i := 0; i < b.N; i++ {
				root, err := jc.ParseWith(drv, data)
				if err != nil {
					b.Fatal(err)
				}
				rows, err := jc.Decode(jc.NewDecoder(root), "", shape)
				if err != nil || len(rows) != 1000 {
					b.Fatalf("decode: %v", err)
				}
			}
		})
	}
}

func BenchmarkResolve_DeepPath(b *testing.B) {
	root, err := jc.Parse(generateRows(100))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, ok := jc.Resolve(root, "[99].meta.score"); !ok {
			b.Fatal("path not found")
		}
	}
}

func BenchmarkEncode_Rows(b *testing.B) {
	root, err := jc.Parse(generateRows(1000))
	if err != nil {
		b.Fatal(err)
	}
	rows, err := jc.Decode(jc.NewDecoder(root), "", jc.Array(rowManifest))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := jc.MarshalValue(rows, jc.Array(rowManifest)); err != nil {
			b.Fatal(err)
		}
	}
}
