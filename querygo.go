// Package querygo provides an embedded query-evaluation engine for Go.
//
// This file defines the core capabilities the engine is written against:
// field accessors, predicates, and the Queryable source abstraction.
package querygo

import "iter"

// Getter is the field-accessor capability: a pure function extracting one
// field's value from a record. Accessors must be side-effect free and must
// not panic for normal field values. Every operation in the engine addresses
// record data exclusively through Getters; records themselves stay opaque.
type Getter[T, F any] func(*T) F

// Predicate reports whether a record matches.
type Predicate[T any] func(*T) bool

// Where builds a field-scoped predicate from an accessor and a test on the
// field's value.
//
//	adults := querygo.Where(age, func(a int) bool { return a >= 18 })
func Where[T, F any](get Getter[T, F], pred func(F) bool) Predicate[T] {
	return func(rec *T) bool {
		return pred(get(rec))
	}
}

// Eq builds a predicate matching records whose field equals want.
func Eq[T any, F comparable](get Getter[T, F], want F) Predicate[T] {
	return func(rec *T) bool {
		return get(rec) == want
	}
}

// Source is the Queryable capability: a container that can produce a
// sequence of element references becomes usable by the engine without
// conversion. The sequence must be finite, ordered, and re-iterable.
type Source[T any] interface {
	// Seq returns an iterator over references to the container's elements.
	Seq() iter.Seq[*T]
}

// SliceSource adapts a slice to the Source capability. Iteration yields
// pointers into the backing array, in slice order.
type SliceSource[T any] []T

// Seq implements Source.
func (s SliceSource[T]) Seq() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range s {
			if !yield(&s[i]) {
				return
			}
		}
	}
}

// Number constrains the field types usable with numeric aggregates.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Float constrains the field types usable with the total-order float
// operations (OrderByFloat, MinFloat, MaxFloat).
type Float interface {
	~float32 | ~float64
}
