// Package pathexpr tokenizes the dotted/bracketed path expressions used to
// address values inside a JSON value tree. It is internal; the public surface
// lives in the root package (Resolve, Decoder.Lookup, Encoder paths).
package pathexpr

import (
	"strconv"
	"strings"
)

// Segment is a single step of a decode path: an object key or an array index.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// String renders the segment as it appears in a path expression.
func (s Segment) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return s.Key
}

// Parse splits a path expression into segments. Dots separate segments and
// each well-formed "[n]" suffix becomes its own index segment, so "a.b[0].c"
// yields a, b, [0], c. A bracket group whose content is not an integer is kept
// as part of the literal key. The empty path yields no segments.
func Parse(path string) []Segment {
	if path == "" {
		return nil
	}
	parts := strings.Split(path, ".")
	segs := make([]Segment, 0, len(parts))
	for _, part := range parts {
		key, idx, ok := splitBrackets(part)
		if !ok {
			segs = append(segs, Segment{Key: part})
			continue
		}
		if key != "" || len(idx) == 0 {
			segs = append(segs, Segment{Key: key})
		}
		for _, n := range idx {
			segs = append(segs, Segment{Index: n, IsIndex: true})
		}
	}
	return segs
}

// splitBrackets separates "key[1][2]" into "key" and [1 2]. ok is false when
// the bracket suffix is malformed, in which case the caller keeps the part as a
// literal key.
func splitBrackets(part string) (string, []int, bool) {
	i := strings.IndexByte(part, '[')
	if i < 0 {
		return part, nil, true
	}
	key, rest := part[:i], part[i:]
	var idx []int
	for rest != "" {
		if rest[0] != '[' {
			return "", nil, false
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return "", nil, false
		}
		n, err := strconv.Atoi(rest[1:end])
		if err != nil {
			return "", nil, false
		}
		idx = append(idx, n)
		rest = rest[end+1:]
	}
	return key, idx, true
}

// Keys splits an encode target path into nested object keys. Encode paths only
// use dots; brackets are literal key characters there.
func Keys(path string) []string {
	return strings.Split(path, ".")
}

// Join appends a relative path expression to base.
func Join(base, rel string) string {
	switch {
	case rel == "":
		return base
	case base == "":
		return rel
	case rel[0] == '[':
		return base + rel
	default:
		return base + "." + rel
	}
}

// JoinIndex appends an index segment to base.
func JoinIndex(base string, i int) string {
	return base + "[" + strconv.Itoa(i) + "]"
}

// JoinKey appends an object key to base.
func JoinKey(base, key string) string {
	if base == "" {
		return key
	}
	return base + "." + key
}
