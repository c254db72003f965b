package locked

import (
	"errors"
	"sync"
)

// ErrPoisoned is reported by the built-in lock kinds when a previous writer
// panicked while holding exclusive access, leaving the protected state
// suspect. Acquisitions fail with it from then on; callers decide whether
// to skip the element, abort, or rebuild it.
var ErrPoisoned = errors.New("locked: value poisoned by a failed writer")

// Value is the pluggable lock capability the adapter is written against.
// View runs fn with shared read access to the protected record; Update runs
// fn with exclusive write access. The record reference is only valid inside
// fn. A non-nil error means access could not be granted (the protected
// state is unusable); errors returned by fn itself are passed through.
type Value[T any] interface {
	View(fn func(*T) error) error
	Update(fn func(*T) error) error
}

// RWValue guards a record with a sync.RWMutex, so concurrent shared
// readers proceed in parallel. It poisons itself if an Update body panics:
// the panic propagates to the caller, and every later acquisition fails
// with ErrPoisoned.
type RWValue[T any] struct {
	mu       sync.RWMutex
	poisoned bool
	rec      T
}

// NewRW creates an RWValue guarding rec.
func NewRW[T any](rec T) *RWValue[T] {
	return &RWValue[T]{rec: rec}
}

// View implements Value. It blocks until shared read access is granted.
func (v *RWValue[T]) View(fn func(*T) error) error {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.poisoned {
		return ErrPoisoned
	}
	return fn(&v.rec)
}

// Update implements Value. It blocks until exclusive write access is
// granted.
func (v *RWValue[T]) Update(fn func(*T) error) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.poisoned {
		return ErrPoisoned
	}
	defer func() {
		if r := recover(); r != nil {
			v.poisoned = true
			panic(r)
		}
	}()
	return fn(&v.rec)
}

// MutexValue guards a record with a sync.Mutex: pure mutual exclusion,
// readers included. Poisoning behaves as for RWValue.
type MutexValue[T any] struct {
	mu       sync.Mutex
	poisoned bool
	rec      T
}

// NewMutex creates a MutexValue guarding rec.
func NewMutex[T any](rec T) *MutexValue[T] {
	return &MutexValue[T]{rec: rec}
}

// View implements Value. Reads serialize with all other access.
func (v *MutexValue[T]) View(fn func(*T) error) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.poisoned {
		return ErrPoisoned
	}
	return fn(&v.rec)
}

// Update implements Value.
func (v *MutexValue[T]) Update(fn func(*T) error) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.poisoned {
		return ErrPoisoned
	}
	defer func() {
		if r := recover(); r != nil {
			v.poisoned = true
			panic(r)
		}
	}()
	return fn(&v.rec)
}
