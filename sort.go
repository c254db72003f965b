package querygo

import (
	"cmp"
	"iter"
	"slices"
)

// OrderBy and GroupBy return owned copies of the matching records: a
// sequence of borrowed references cannot be reordered or bucketed without
// violating the dataset's borrow. Everything else in this package returns
// references only.

// OrderBy returns the matching records sorted ascending by the accessed
// key. The sort is stable: records with equal keys keep their dataset
// order. For floating-point keys use OrderByFloat.
func OrderBy[T any, K cmp.Ordered](q *Query[T], key Getter[T, K]) []T {
	return sortMatches(q, func(a, b *T) int { return cmp.Compare(key(a), key(b)) })
}

// OrderByDesc is OrderBy with the comparator reversed, not a separate
// unstable sort: records with equal keys still keep their dataset order.
func OrderByDesc[T any, K cmp.Ordered](q *Query[T], key Getter[T, K]) []T {
	return sortMatches(q, func(a, b *T) int { return cmp.Compare(key(b), key(a)) })
}

// OrderByFloat sorts ascending under the engine's total order for floats
// (see CompareFloat): NaN keys sort after every other key.
func OrderByFloat[T any, K Float](q *Query[T], key Getter[T, K]) []T {
	return sortMatches(q, func(a, b *T) int { return CompareFloat(key(a), key(b)) })
}

// OrderByFloatDesc is OrderByFloat with the comparator reversed; NaN keys
// sort before every other key.
func OrderByFloatDesc[T any, K Float](q *Query[T], key Getter[T, K]) []T {
	return sortMatches(q, func(a, b *T) int { return CompareFloat(key(b), key(a)) })
}

func sortMatches[T any](q *Query[T], compare func(a, b *T) int) []T {
	out := make([]T, 0, q.Count())
	for rec := range q.matches() {
		out = append(out, *rec)
	}
	slices.SortStableFunc(out, func(a, b T) int { return compare(&a, &b) })
	return out
}

// Grouping is the result of GroupBy: matching records bucketed by key, with
// keys in first-seen dataset order and records in dataset order within each
// bucket. Every matching record lands in exactly one bucket.
type Grouping[K comparable, T any] struct {
	keys   []K
	groups map[K][]T
}

// GroupBy buckets the matching records by the accessed key.
// Records are copied into the buckets; the buckets are owned by the caller.
func GroupBy[T any, K comparable](q *Query[T], key Getter[T, K]) *Grouping[K, T] {
	g := &Grouping[K, T]{
		groups: make(map[K][]T),
	}
	for rec := range q.matches() {
		k := key(rec)
		if _, seen := g.groups[k]; !seen {
			g.keys = append(g.keys, k)
		}
		g.groups[k] = append(g.groups[k], *rec)
	}
	return g
}

// Keys returns the group keys in first-seen dataset order.
func (g *Grouping[K, T]) Keys() []K {
	return g.keys
}

// Get returns the records bucketed under k.
func (g *Grouping[K, T]) Get(k K) ([]T, bool) {
	recs, ok := g.groups[k]
	return recs, ok
}

// Len returns the number of groups.
func (g *Grouping[K, T]) Len() int {
	return len(g.keys)
}

// Iter iterates the groups in first-seen key order.
func (g *Grouping[K, T]) Iter() iter.Seq2[K, []T] {
	return func(yield func(K, []T) bool) {
		for _, k := range g.keys {
			if !yield(k, g.groups[k]) {
				return
			}
		}
	}
}
