package querygo

import (
	"iter"
	"time"

	"github.com/hupe1980/querygo/internal/rowset"
)

// Query is an eager, reusable query over a borrowed dataset.
//
// A Query holds references into the caller's collection for its whole
// lifetime; the collection must not be mutated or freed while the query is
// in use. Where appends to the predicate chain; predicates are evaluated in
// registration order with AND semantics, and an empty chain matches every
// record. The filtered match set is materialized on the first terminal call
// and reused by later terminals until the chain changes.
type Query[T any] struct {
	items   []*T
	preds   []Predicate[T]
	rows    *rowset.Set // lazily materialized match positions
	logger  *Logger
	metrics MetricsCollector
}

// New creates a query borrowing the given slice. Element references stay
// valid for the lifetime of the query.
func New[T any](items []T, optFns ...Option) *Query[T] {
	refs := make([]*T, len(items))
	for i := range items {
		refs[i] = &items[i]
	}
	return newQuery(refs, optFns)
}

// FromSource creates a query over any container implementing the Source
// capability. The source's sequence is drained once, up front, to fix the
// dataset for the query's lifetime.
func FromSource[T any](src Source[T], optFns ...Option) *Query[T] {
	var refs []*T
	for rec := range src.Seq() {
		refs = append(refs, rec)
	}
	return newQuery(refs, optFns)
}

func newQuery[T any](refs []*T, optFns []Option) *Query[T] {
	o := applyOptions(optFns)
	return &Query[T]{
		items:   refs,
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
}

// Where appends a predicate to the chain and returns the query for
// chaining. Any previously materialized match set is invalidated.
func (q *Query[T]) Where(p Predicate[T]) *Query[T] {
	q.preds = append(q.preds, p)
	q.rows = nil
	return q
}

func (q *Query[T]) match(rec *T) bool {
	for _, p := range q.preds {
		if !p(rec) {
			return false
		}
	}
	return true
}

// matchSet materializes the filtered row positions, once per chain revision.
func (q *Query[T]) matchSet() *rowset.Set {
	if q.rows != nil {
		return q.rows
	}
	start := time.Now()
	rows := rowset.New()
	for i, rec := range q.items {
		if q.match(rec) {
			rows.Add(uint32(i))
		}
	}
	q.rows = rows
	q.metrics.RecordPass(len(q.items), rows.Len(), time.Since(start))
	q.logger.LogPass(len(q.items), rows.Len())
	return rows
}

// matches iterates references to the matching records, in dataset order.
func (q *Query[T]) matches() iter.Seq[*T] {
	rows := q.matchSet()
	return func(yield func(*T) bool) {
		for row := range rows.Iter() {
			if !yield(q.items[row]) {
				return
			}
		}
	}
}

// All returns references to every matching record, in dataset order.
func (q *Query[T]) All() []*T {
	rows := q.matchSet()
	out := make([]*T, 0, rows.Len())
	for row := range rows.Iter() {
		out = append(out, q.items[row])
	}
	return out
}

// First returns a reference to the first matching record.
// The second return value is false if nothing matched.
func (q *Query[T]) First() (*T, bool) {
	row, ok := q.matchSet().Min()
	if !ok {
		return nil, false
	}
	return q.items[row], true
}

// Count returns the number of matching records.
func (q *Query[T]) Count() int {
	return q.matchSet().Len()
}

// Exists reports whether at least one record matches.
func (q *Query[T]) Exists() bool {
	return !q.matchSet().IsEmpty()
}

// Len returns the size of the underlying dataset, ignoring the predicate
// chain.
func (q *Query[T]) Len() int {
	return len(q.items)
}
