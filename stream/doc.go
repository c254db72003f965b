// Package stream implements querygo's lazy, pull-based pipeline.
//
// A Stream is a composable sequence of transformation stages (Filter, Map,
// Take, Skip) over a single logical iteration. Constructing a stage touches
// no element; all work is deferred to a terminal operation, which pulls
// exactly as many elements as its contract requires. Stages run in
// registration order per element before the next element is pulled, so
// short-circuit terminals (First, Any, Find, AllMatch) visit the minimum
// prefix of the input. There is no cancellation token: the terminal simply
// stops pulling once it is satisfied.
//
//	cheap, ok := stream.From(products).
//	    Filter(func(p *Product) bool { return p.Price < 15 }).
//	    First()
package stream
