// Package rowset implements a compact set of dataset row positions.
//
// A query's materialized match set is kept as a Roaring Bitmap of row
// positions rather than a slice of references, so repeated terminal calls
// (Count, Exists, All) reuse one compact structure.
package rowset
