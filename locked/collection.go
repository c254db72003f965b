package locked

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hupe1980/querygo"
)

// ElementError reports that one element's lock could not grant access
// during a pass. The pass aborts at that element; no partial results are
// returned. Index is the element's position in the collection.
//
// The underlying lock error (e.g. ErrPoisoned) can be accessed via
// errors.Unwrap.
type ElementError struct {
	Index int
	Err   error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("locked: element %d: %v", e.Index, e.Err)
}

func (e *ElementError) Unwrap() error { return e.Err }

// Collection adapts a slice of lock-guarded elements to the predicate-chain
// operations. Where appends to the chain; predicates run in registration
// order with AND semantics while the element's lock is held. A Collection
// borrows the values slice; the elements' lifecycles stay with the caller's
// container.
type Collection[T any] struct {
	values  []Value[T]
	preds   []querygo.Predicate[T]
	logger  *querygo.Logger
	metrics querygo.MetricsCollector
}

// Over creates a collection adapter over the given lock-guarded values.
func Over[T any](values []Value[T], optFns ...Option) *Collection[T] {
	o := applyOptions(optFns)
	return &Collection[T]{
		values:  values,
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
}

// Where appends a predicate to the chain and returns the collection for
// chaining.
func (c *Collection[T]) Where(p querygo.Predicate[T]) *Collection[T] {
	c.preds = append(c.preds, p)
	return c
}

// Len returns the number of elements, ignoring the predicate chain.
func (c *Collection[T]) Len() int {
	return len(c.values)
}

func (c *Collection[T]) match(rec *T) bool {
	for _, p := range c.preds {
		if !p(rec) {
			return false
		}
	}
	return true
}

// scan visits elements in collection order, acquiring one element's read
// lock at a time and releasing it before the next acquisition. fn runs
// under the lock for elements passing the predicate chain; returning false
// stops the pass early, so no further locks are acquired. A lock failure
// aborts the pass with an *ElementError.
func (c *Collection[T]) scan(fn func(idx int, rec *T) bool) error {
	start := time.Now()
	locks := 0
	var passErr error
	for i, v := range c.values {
		stop := false
		locks++
		err := v.View(func(rec *T) error {
			if c.match(rec) && !fn(i, rec) {
				stop = true
			}
			return nil
		})
		if err != nil {
			passErr = &ElementError{Index: i, Err: err}
			break
		}
		if stop {
			break
		}
	}
	c.metrics.RecordLockedPass(locks, time.Since(start), passErr)
	if passErr != nil {
		c.logger.Error("locked pass aborted", slog.Int("locks", locks), slog.Any("error", passErr))
	}
	return passErr
}

// Count returns the number of matching elements. Elements are read in
// place; nothing is copied.
func (c *Collection[T]) Count() (int, error) {
	n := 0
	err := c.scan(func(int, *T) bool {
		n++
		return true
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Exists reports whether at least one element matches. No lock beyond the
// first match's is acquired.
func (c *Collection[T]) Exists() (bool, error) {
	found := false
	err := c.scan(func(int, *T) bool {
		found = true
		return false
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// First returns an owned copy of the first matching element. The copy is
// taken while the element's lock is held, so it is internally consistent
// even under concurrent writers. The second return value is false if
// nothing matched.
func (c *Collection[T]) First() (T, bool, error) {
	var out T
	found := false
	err := c.scan(func(_ int, rec *T) bool {
		out = *rec
		found = true
		return false
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return out, found, nil
}

// Collect returns owned copies of every matching element, in collection
// order. Only matching elements are copied.
func (c *Collection[T]) Collect() ([]T, error) {
	var out []T
	err := c.scan(func(_ int, rec *T) bool {
		out = append(out, *rec)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Take returns owned copies of at most n matching elements, in collection
// order. Once n matches have been found no further element's lock is
// acquired; Take(0) acquires no lock at all.
func (c *Collection[T]) Take(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var out []T
	err := c.scan(func(_ int, rec *T) bool {
		out = append(out, *rec)
		return len(out) < n
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ForEach applies fn to every matching element while its lock is held. fn
// must not retain the reference past its return.
func (c *Collection[T]) ForEach(fn func(*T)) error {
	return c.scan(func(_ int, rec *T) bool {
		fn(rec)
		return true
	})
}

// Mutate applies fn to every matching element under its exclusive write
// lock. The predicate chain is evaluated under the same write lock, so the
// decision to mutate and the mutation itself see one consistent element
// state. A non-nil error from fn aborts the pass at that element.
func (c *Collection[T]) Mutate(fn func(*T) error) error {
	start := time.Now()
	locks := 0
	var passErr error
	for i, v := range c.values {
		locks++
		err := v.Update(func(rec *T) error {
			if !c.match(rec) {
				return nil
			}
			return fn(rec)
		})
		if err != nil {
			passErr = &ElementError{Index: i, Err: err}
			break
		}
	}
	c.metrics.RecordLockedPass(locks, time.Since(start), passErr)
	return passErr
}
