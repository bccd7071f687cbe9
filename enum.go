package jsoncodable

import (
	"fmt"
	"sort"

	js "github.com/reoring/jsoncodable/jsonschema"
)

type enumShape[T comparable, R comparable] struct {
	name     string
	raw      Shape[R]
	toDomain map[R]T
	toRaw    map[T]R
	order    []R
}

// Enum returns a shape that maps raw JSON values decoded by raw onto members
// of T. A raw value missing from table fails with IncompatibleType.
func Enum[T comparable, R comparable](name string, raw Shape[R], table map[R]T) Shape[T] {
	s := &enumShape[T, R]{name: name, raw: raw, toDomain: map[R]T{}, toRaw: map[T]R{}}
	for r, t := range table {
		s.toDomain[r] = t
		s.toRaw[t] = r
		s.order = append(s.order, r)
	}
	sort.Slice(s.order, func(i, j int) bool { return fmt.Sprint(s.order[i]) < fmt.Sprint(s.order[j]) })
	return s
}

// EnumOf returns an enum shape for a string-based type whose members are
// written as their own string value.
func EnumOf[T ~string](name string, members ...T) Shape[T] {
	s := &enumShape[T, string]{name: name, raw: String(), toDomain: map[string]T{}, toRaw: map[T]string{}}
	for _, m := range members {
		s.toDomain[string(m)] = m
		s.toRaw[m] = string(m)
		s.order = append(s.order, string(m))
	}
	return s
}

func (s *enumShape[T, R]) Name() string { return s.name }

func (s *enumShape[T, R]) DecodeValue(v any, sc Scope) (T, error) {
	var zero T
	r, err := s.raw.DecodeValue(v, sc)
	if err != nil {
		return zero, err
	}
	t, ok := s.toDomain[r]
	if !ok {
		return zero, IncompatibleType(sc.Path(), fmt.Sprint(r), s.name)
	}
	return t, nil
}

func (s *enumShape[T, R]) EncodeValue(v T, sc Scope) (any, error) {
	r, ok := s.toRaw[v]
	if !ok {
		return nil, ChildIncompatibleType(sc.Path(), s.name)
	}
	return s.raw.EncodeValue(r, sc)
}

func (s *enumShape[T, R]) JSONSchema() *js.Schema {
	base := *schemaOf(s.raw)
	base.Title = s.name
	for _, r := range s.order {
		base.Enum = append(base.Enum, r)
	}
	return &base
}
