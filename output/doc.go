// Package output renders query results for humans.
//
// Columns pair a header with a field accessor, so rendering goes through
// the same capability as the rest of the engine:
//
//	output.Table(os.Stdout, q.All(),
//	    output.Col("category", category),
//	    output.Col("price", price),
//	)
package output
