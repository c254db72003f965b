package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/hupe1980/querygo"
)

// Column describes one rendered table column: a header and a function
// producing the cell value for a record.
type Column[T any] struct {
	Name  string
	Value func(*T) any
}

// Col builds a column from a field accessor.
func Col[T, F any](name string, get querygo.Getter[T, F]) Column[T] {
	return Column[T]{
		Name:  name,
		Value: func(rec *T) any { return get(rec) },
	}
}

// Table renders the records as a text table, one row per record in order.
func Table[T any](w io.Writer, records []*T, columns ...Column[T]) {
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Name
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(false)

	for _, rec := range records {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = fmt.Sprint(col.Value(rec))
		}
		table.Append(row)
	}

	table.Render()
}
