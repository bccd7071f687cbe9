package jsoncodable

import "github.com/reoring/jsoncodable/internal/pathexpr"

// Resolve walks root along a path expression and returns the value found
// there. The boolean is false when the value is absent.
//
// Dots separate keys and "[n]" indexes into arrays, so "a.b[0].c" visits key
// a, key b, element 0 and key c. Keying into a non-object, indexing into a
// non-array or an index outside [0, len) yields absent. JSON null is treated
// as absent. The empty path returns root itself.
//
// When the walk fails and root is an object holding the whole path as a
// literal key, that member is returned instead; this covers keys that contain
// dots.
func Resolve(root any, path string) (any, bool) {
	v, ok := walk(root, pathexpr.Parse(path))
	if !ok && path != "" {
		if obj, isObj := root.(map[string]any); isObj {
			v, ok = obj[path]
		}
	}
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func walk(cur any, segs []pathexpr.Segment) (any, bool) {
	for _, seg := range segs {
		switch node := cur.(type) {
		case map[string]any:
			if seg.IsIndex {
				return nil, false
			}
			next, ok := node[seg.Key]
			if !ok {
				return nil, false
			}
			cur = next
		case []any:
			if !seg.IsIndex || seg.Index < 0 || seg.Index >= len(node) {
				return nil, false
			}
			cur = node[seg.Index]
		default:
			return nil, false
		}
	}
	return cur, true
}
