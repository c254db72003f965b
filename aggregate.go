package querygo

import (
	"cmp"
	"math"
)

// Aggregates are free functions rather than Query methods because Go
// methods cannot introduce the field type parameter.

// Sum returns the sum of the accessed field over all matching records.
// An empty match set sums to the zero value.
func Sum[T any, F Number](q *Query[T], get Getter[T, F]) F {
	var total F
	for rec := range q.matches() {
		total += get(rec)
	}
	return total
}

// Avg returns the arithmetic mean of the accessed field over all matching
// records. It returns ErrNoResult when nothing matched; the zero mean of a
// legitimate dataset is never conflated with "no input".
func Avg[T any, F Number](q *Query[T], get Getter[T, F]) (float64, error) {
	var total float64
	n := 0
	for rec := range q.matches() {
		total += float64(get(rec))
		n++
	}
	if n == 0 {
		return 0, ErrNoResult
	}
	return total / float64(n), nil
}

// Min returns the smallest accessed field value over all matching records,
// or ErrNoResult when nothing matched. The field type must be ordered; for
// floating-point fields use MinFloat, which fixes a total order over NaN.
func Min[T any, F cmp.Ordered](q *Query[T], get Getter[T, F]) (F, error) {
	return minBy(q, get, func(a, b F) bool { return a < b })
}

// Max is the mirror of Min.
func Max[T any, F cmp.Ordered](q *Query[T], get Getter[T, F]) (F, error) {
	return minBy(q, get, func(a, b F) bool { return a > b })
}

// MinFloat returns the smallest accessed float field under the engine's
// total order for floats: NaN compares greater than every other value, so a
// dataset containing NaN still has a well-defined non-NaN minimum unless
// every value is NaN.
func MinFloat[T any, F Float](q *Query[T], get Getter[T, F]) (F, error) {
	return minBy(q, get, func(a, b F) bool { return CompareFloat(a, b) < 0 })
}

// MaxFloat is the mirror of MinFloat: under the same total order, NaN wins
// over every other value, so a dataset containing any NaN has maximum NaN.
func MaxFloat[T any, F Float](q *Query[T], get Getter[T, F]) (F, error) {
	return minBy(q, get, func(a, b F) bool { return CompareFloat(a, b) > 0 })
}

func minBy[T, F any](q *Query[T], get Getter[T, F], less func(a, b F) bool) (F, error) {
	var best F
	found := false
	for rec := range q.matches() {
		v := get(rec)
		if !found || less(v, best) {
			best = v
			found = true
		}
	}
	if !found {
		var zero F
		return zero, ErrNoResult
	}
	return best, nil
}

// Select returns the accessed field value of every matching record, in
// dataset order. Only the scalar field values are copied, never the records.
func Select[T, F any](q *Query[T], get Getter[T, F]) []F {
	out := make([]F, 0, q.Count())
	for rec := range q.matches() {
		out = append(out, get(rec))
	}
	return out
}

// CompareFloat compares two floats under the engine's total order: NaN is
// greater than every non-NaN value and equal to itself. IEEE-754 comparison
// alone is not a total order, which would make float sorting and min/max
// ill-defined in the presence of NaN.
func CompareFloat[F Float](a, b F) int {
	aNaN := math.IsNaN(float64(a))
	bNaN := math.IsNaN(float64(b))
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
