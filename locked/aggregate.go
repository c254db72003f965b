package locked

import (
	"cmp"

	"github.com/hupe1980/querygo"
)

// Aggregates are free functions for the same reason as in the root package:
// Go methods cannot introduce the field type parameter. All of them read
// matching elements in place, under one element lock at a time; only
// SelectBy copies, and only the scalar field values.

// SumBy sums the accessed field over all matching elements.
func SumBy[T any, F querygo.Number](c *Collection[T], get querygo.Getter[T, F]) (F, error) {
	var total F
	err := c.scan(func(_ int, rec *T) bool {
		total += get(rec)
		return true
	})
	if err != nil {
		var zero F
		return zero, err
	}
	return total, nil
}

// AvgBy averages the accessed field over all matching elements. It returns
// querygo.ErrNoResult when nothing matched.
func AvgBy[T any, F querygo.Number](c *Collection[T], get querygo.Getter[T, F]) (float64, error) {
	var total float64
	n := 0
	err := c.scan(func(_ int, rec *T) bool {
		total += float64(get(rec))
		n++
		return true
	})
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, querygo.ErrNoResult
	}
	return total / float64(n), nil
}

// MinBy returns the smallest accessed field over all matching elements, or
// querygo.ErrNoResult when nothing matched. For floating-point fields use
// MinByFloat.
func MinBy[T any, F cmp.Ordered](c *Collection[T], get querygo.Getter[T, F]) (F, error) {
	return extremeBy(c, get, func(a, b F) bool { return a < b })
}

// MaxBy is the mirror of MinBy.
func MaxBy[T any, F cmp.Ordered](c *Collection[T], get querygo.Getter[T, F]) (F, error) {
	return extremeBy(c, get, func(a, b F) bool { return a > b })
}

// MinByFloat returns the smallest accessed float field under the engine's
// total order (querygo.CompareFloat): NaN is greater than everything else.
func MinByFloat[T any, F querygo.Float](c *Collection[T], get querygo.Getter[T, F]) (F, error) {
	return extremeBy(c, get, func(a, b F) bool { return querygo.CompareFloat(a, b) < 0 })
}

// MaxByFloat is the mirror of MinByFloat.
func MaxByFloat[T any, F querygo.Float](c *Collection[T], get querygo.Getter[T, F]) (F, error) {
	return extremeBy(c, get, func(a, b F) bool { return querygo.CompareFloat(a, b) > 0 })
}

func extremeBy[T, F any](c *Collection[T], get querygo.Getter[T, F], less func(a, b F) bool) (F, error) {
	var best F
	found := false
	err := c.scan(func(_ int, rec *T) bool {
		v := get(rec)
		if !found || less(v, best) {
			best = v
			found = true
		}
		return true
	})
	if err != nil {
		var zero F
		return zero, err
	}
	if !found {
		var zero F
		return zero, querygo.ErrNoResult
	}
	return best, nil
}

// SelectBy returns the accessed field value of every matching element, in
// collection order. Only the scalar field values are copied.
func SelectBy[T, F any](c *Collection[T], get querygo.Getter[T, F]) ([]F, error) {
	var out []F
	err := c.scan(func(_ int, rec *T) bool {
		out = append(out, get(rec))
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
