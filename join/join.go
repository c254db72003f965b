package join

// Joins are generic free functions: Go methods cannot introduce the key and
// output type parameters, so there is no builder struct to thread them
// through. Both input slices are borrowed for the duration of the call.

// Inner emits one output per pair of left/right records whose join keys are
// equal. The hash index is built over the right side; the left side probes
// it in dataset order, and multiple right matches for one left record are
// emitted in the right side's original order.
func Inner[L, R any, K comparable, O any](
	left []L, right []R,
	leftKey func(*L) K, rightKey func(*R) K,
	combine func(*L, *R) O,
) []O {
	index := buildIndex(right, rightKey)
	var out []O
	for i := range left {
		l := &left[i]
		for _, j := range index[leftKey(l)] {
			out = append(out, combine(l, &right[j]))
		}
	}
	return out
}

// InnerWhere is Inner with a residual predicate evaluated on each matched
// pair before the combiner runs, for join conditions that are not equi-join
// keys.
func InnerWhere[L, R any, K comparable, O any](
	left []L, right []R,
	leftKey func(*L) K, rightKey func(*R) K,
	where func(*L, *R) bool,
	combine func(*L, *R) O,
) []O {
	index := buildIndex(right, rightKey)
	var out []O
	for i := range left {
		l := &left[i]
		for _, j := range index[leftKey(l)] {
			r := &right[j]
			if where(l, r) {
				out = append(out, combine(l, r))
			}
		}
	}
	return out
}

// Left emits k outputs for a left record with k right matches, and exactly
// one output with matched=false (and a nil right reference) for a left
// record with none. Every left record therefore produces at least one
// output.
func Left[L, R any, K comparable, O any](
	left []L, right []R,
	leftKey func(*L) K, rightKey func(*R) K,
	combine func(l *L, r *R, matched bool) O,
) []O {
	index := buildIndex(right, rightKey)
	var out []O
	for i := range left {
		l := &left[i]
		matches := index[leftKey(l)]
		if len(matches) == 0 {
			out = append(out, combine(l, nil, false))
			continue
		}
		for _, j := range matches {
			out = append(out, combine(l, &right[j], true))
		}
	}
	return out
}

// Right is the mirror of Left: the hash index is built over the left side
// and the right side probes it in dataset order.
func Right[L, R any, K comparable, O any](
	left []L, right []R,
	leftKey func(*L) K, rightKey func(*R) K,
	combine func(l *L, r *R, matched bool) O,
) []O {
	index := buildIndex(left, leftKey)
	var out []O
	for j := range right {
		r := &right[j]
		matches := index[rightKey(r)]
		if len(matches) == 0 {
			out = append(out, combine(nil, r, false))
			continue
		}
		for _, i := range matches {
			out = append(out, combine(&left[i], r, true))
		}
	}
	return out
}

// Cross emits the full Cartesian product, len(left)*len(right) outputs,
// with nested iteration.
func Cross[L, R, O any](
	left []L, right []R,
	combine func(*L, *R) O,
) []O {
	out := make([]O, 0, len(left)*len(right))
	for i := range left {
		for j := range right {
			out = append(out, combine(&left[i], &right[j]))
		}
	}
	return out
}

// buildIndex maps each join key to the positions carrying it, preserving
// dataset order within a key.
func buildIndex[T any, K comparable](items []T, key func(*T) K) map[K][]int {
	index := make(map[K][]int, len(items))
	for i := range items {
		k := key(&items[i])
		index[k] = append(index[k], i)
	}
	return index
}
