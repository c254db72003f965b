// Package querygo provides an embedded query-evaluation engine for in-memory
// Go collections.
//
// Querygo applies SQL-like operations (filter, project, sort, group,
// aggregate, join) directly to slices and lock-guarded containers, without a
// query language, code generation, or an external runtime. Records stay
// opaque: every operation addresses data through a typed field accessor
// (Getter), a pure function extracting one field from a record.
//
// # Quick Start
//
// Eager queries over a slice:
//
//	type Product struct {
//	    Category string
//	    Price    float64
//	}
//
//	products := []Product{
//	    {Category: "A", Price: 10.0},
//	    {Category: "B", Price: 5.0},
//	    {Category: "A", Price: 20.0},
//	}
//
//	category := func(p *Product) string { return p.Category }
//	price := func(p *Product) float64 { return p.Price }
//
//	q := querygo.New(products).
//	    Where(querygo.Where(category, func(c string) bool { return c == "A" }))
//
//	n := q.Count()                 // 2
//	total := querygo.Sum(q, price) // 30.0
//
// The query is reusable: terminal operations may be called repeatedly, and
// the filtered match set is materialized once per predicate-chain revision.
//
// # Lazy Pipelines
//
// The stream subpackage defers all work to a terminal operation and
// short-circuits as soon as the terminal's contract is satisfied:
//
//	cheap, ok := stream.From(products).
//	    Filter(func(p *Product) bool { return p.Price < 15 }).
//	    First()
//
// # Joins and Locked Collections
//
// The join subpackage computes inner/left/right/cross joins between two
// independent slices via hash-based equality matching. The locked subpackage
// runs the same predicate-chain operations over collections whose elements
// are each guarded by an independent lock, acquiring one element's lock at a
// time instead of bulk-copying the collection.
//
// # Reference vs Owned Results
//
// Terminal operations that need no duplication (All, First, Count, Exists,
// and the aggregates) return record pointers or scalar field values only.
// OrderBy and GroupBy return owned copies, because a borrowed sequence
// cannot be reordered or bucketed without violating the borrow.
//
// # Consistency
//
// The engine is single-threaded and pull-based; it introduces no goroutines
// of its own. Queries over locked collections observe a read-committed view:
// see the locked package documentation for the exact contract.
package querygo
