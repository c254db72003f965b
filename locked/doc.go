// Package locked runs querygo's predicate-chain and aggregate operations
// over collections whose elements are each guarded by an independent lock,
// without bulk-copying the collection first.
//
// The adapter is written against the minimal Value capability (acquire
// shared read access, run a scoped function; acquire exclusive write access
// likewise), so any concrete lock kind satisfying it can be plugged in.
// RWValue and MutexValue are the built-in kinds.
//
// During a pass the adapter acquires exactly one element's lock at a time,
// evaluates the predicate chain while holding it, and releases it before
// moving on. Locks are never nested, which rules out lock-ordering
// deadlocks within a single pass. Filtering, counting and aggregation read
// elements in place; only operations that must return owned results (First,
// Collect, SelectBy) copy data, and only for matching elements.
// Early-terminating operations stop acquiring locks once satisfied.
//
// # Consistency
//
// Against concurrent writers the adapter gives a read-committed view with
// no isolation: an element locked at step k may reflect a write that
// happened after an element read at step k-1, so one pass can observe a
// state no single snapshot ever held. Callers that need snapshot
// consistency must serialize writers externally; the adapter deliberately
// does not take a global lock.
package locked
