package stream

import (
	"cmp"

	"github.com/hupe1980/querygo"
)

// Collect materializes every remaining element into a slice.
func (s Stream[T]) Collect() []T {
	var out []T
	for v := range s.Seq() {
		out = append(out, v)
	}
	return out
}

// First returns the first element the pipeline produces and stops pulling.
// The second return value is false if the pipeline produced nothing.
func (s Stream[T]) First() (T, bool) {
	for v := range s.Seq() {
		return v, true
	}
	var zero T
	return zero, false
}

// Count returns the exact number of elements the pipeline produces. Unlike
// the short-circuit terminals it must traverse the whole input.
func (s Stream[T]) Count() int {
	n := 0
	for range s.Seq() {
		n++
	}
	return n
}

// Any reports whether the pipeline produces at least one element, stopping
// at the first.
func (s Stream[T]) Any() bool {
	_, ok := s.First()
	return ok
}

// Find returns the first element matching pred and stops pulling.
func (s Stream[T]) Find(pred func(T) bool) (T, bool) {
	return s.Filter(pred).First()
}

// AllMatch reports whether every element matches pred, stopping at the
// first failure. An empty pipeline matches vacuously.
func (s Stream[T]) AllMatch(pred func(T) bool) bool {
	for v := range s.Seq() {
		if !pred(v) {
			return false
		}
	}
	return true
}

// ForEach applies fn to every element.
func (s Stream[T]) ForEach(fn func(T)) {
	for v := range s.Seq() {
		fn(v)
	}
}

// Fold reduces the pipeline left-to-right starting from init.
func Fold[T, A any](s Stream[T], init A, f func(A, T) A) A {
	acc := init
	for v := range s.Seq() {
		acc = f(acc, v)
	}
	return acc
}

// SumBy sums f over every element.
func SumBy[T any, F querygo.Number](s Stream[T], f func(T) F) F {
	var total F
	for v := range s.Seq() {
		total += f(v)
	}
	return total
}

// AvgBy averages f over every element. It returns querygo.ErrNoResult when
// the pipeline produced nothing.
func AvgBy[T any, F querygo.Number](s Stream[T], f func(T) F) (float64, error) {
	var total float64
	n := 0
	for v := range s.Seq() {
		total += float64(f(v))
		n++
	}
	if n == 0 {
		return 0, querygo.ErrNoResult
	}
	return total / float64(n), nil
}

// MinBy returns the smallest f over every element, or querygo.ErrNoResult
// when the pipeline produced nothing. For floating-point keys use
// MinByFloat, which fixes a total order over NaN.
func MinBy[T any, F cmp.Ordered](s Stream[T], f func(T) F) (F, error) {
	return extremeBy(s, f, func(a, b F) bool { return a < b })
}

// MaxBy is the mirror of MinBy.
func MaxBy[T any, F cmp.Ordered](s Stream[T], f func(T) F) (F, error) {
	return extremeBy(s, f, func(a, b F) bool { return a > b })
}

// MinByFloat returns the smallest f under the engine's total order for
// floats: NaN compares greater than every other value.
func MinByFloat[T any, F querygo.Float](s Stream[T], f func(T) F) (F, error) {
	return extremeBy(s, f, func(a, b F) bool { return querygo.CompareFloat(a, b) < 0 })
}

// MaxByFloat is the mirror of MinByFloat.
func MaxByFloat[T any, F querygo.Float](s Stream[T], f func(T) F) (F, error) {
	return extremeBy(s, f, func(a, b F) bool { return querygo.CompareFloat(a, b) > 0 })
}

func extremeBy[T, F any](s Stream[T], f func(T) F, less func(a, b F) bool) (F, error) {
	var best F
	found := false
	for v := range s.Seq() {
		k := f(v)
		if !found || less(k, best) {
			best = k
			found = true
		}
	}
	if !found {
		var zero F
		return zero, querygo.ErrNoResult
	}
	return best, nil
}
