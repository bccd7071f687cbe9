package transform

import jc "github.com/reoring/jsoncodable"

// Identity returns a transformer that passes values through unchanged.
func Identity[T any]() jc.Transformer[T, T] {
	return jc.NewTransformer("identity",
		func(v T) (T, bool) { return v, true },
		func(v T) (T, bool) { return v, true },
	)
}
