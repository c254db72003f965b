package stream

import (
	"iter"

	"github.com/hupe1980/querygo"
)

// Stream is a lazy pipeline over a sequence of elements. The zero value is
// an empty stream. Streams are cheap to copy; each terminal call starts a
// fresh pull from the underlying source.
type Stream[T any] struct {
	seq iter.Seq[T]
}

// From creates a stream of references into the given slice, in slice order.
// The slice is borrowed for the lifetime of the iteration.
func From[T any](items []T) Stream[*T] {
	return Stream[*T]{seq: querygo.SliceSource[T](items).Seq()}
}

// FromSource creates a stream over any container implementing the Source
// capability. Unlike querygo.FromSource, nothing is drained up front.
func FromSource[T any](src querygo.Source[T]) Stream[*T] {
	return Stream[*T]{seq: src.Seq()}
}

// FromSeq wraps a raw iterator. The iterator must be re-iterable if more
// than one terminal will be run.
func FromSeq[T any](seq iter.Seq[T]) Stream[T] {
	return Stream[T]{seq: seq}
}

// Seq exposes the stream as a raw iterator, for use with range.
func (s Stream[T]) Seq() iter.Seq[T] {
	if s.seq == nil {
		return func(yield func(T) bool) {}
	}
	return s.seq
}

// Filter keeps only elements matching pred.
func (s Stream[T]) Filter(pred func(T) bool) Stream[T] {
	src := s.Seq()
	return Stream[T]{seq: func(yield func(T) bool) {
		for v := range src {
			if pred(v) && !yield(v) {
				return
			}
		}
	}}
}

// Take limits the stream to its first n elements. Once n elements have been
// yielded no further element is pulled from upstream; Take(0) pulls nothing
// at all.
func (s Stream[T]) Take(n int) Stream[T] {
	src := s.Seq()
	return Stream[T]{seq: func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		taken := 0
		for v := range src {
			if !yield(v) {
				return
			}
			taken++
			if taken == n {
				return
			}
		}
	}}
}

// Skip drops the first n elements.
func (s Stream[T]) Skip(n int) Stream[T] {
	src := s.Seq()
	return Stream[T]{seq: func(yield func(T) bool) {
		skipped := 0
		for v := range src {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}}
}

// Map transforms every element. It is a free function because the element
// type changes.
func Map[T, U any](s Stream[T], f func(T) U) Stream[U] {
	src := s.Seq()
	return Stream[U]{seq: func(yield func(U) bool) {
		for v := range src {
			if !yield(f(v)) {
				return
			}
		}
	}}
}

// Project maps a stream of records to a stream of one field's values.
func Project[T, F any](s Stream[*T], get querygo.Getter[T, F]) Stream[F] {
	return Map(s, func(rec *T) F { return get(rec) })
}
