// Package transform provides ready-made transformers for domain types that
// JSON cannot carry directly. Pair them with a wire shape at the call site:
//
//	home, err := jc.Decode(d, "homepage", jc.Transformed(jc.String(), transform.URL()))
//
// Transformers are values; nothing is registered globally.
package transform
