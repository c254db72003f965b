// Package join computes joins between two independent in-memory datasets
// using hash-based equality matching.
//
// Inner, Left and Right are standard hash joins: an index keyed by the join
// key is built over one side, and the other side probes it in dataset
// order. Join keys are compared with Go's native equality for the key type;
// no coercion is applied. Cross emits the full Cartesian product with
// nested iteration, since there is no key to hash.
//
// Unmatched rows in Left and Right are signalled to the combiner through an
// explicit matched flag, never through a substitute zero value.
package join
