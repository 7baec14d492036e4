package model

// Table is a validated table: a header row plus body rows, every row exactly
// as wide as the header. Tables only exist after validation; raw backend
// candidates that fail validation are discarded, never surfaced.
type Table struct {
	// Method identifies the extraction strategy that produced the table,
	// e.g. "structured_lines", "lattice", "stream", "manual_structure".
	Method string

	Headers []string
	Rows    [][]string

	// Quality is the extraction quality score in [0, 100]: the backend's
	// reported accuracy where available, otherwise a fixed heuristic.
	Quality int
}

// ColumnCount returns the number of columns (the header width).
func (t *Table) ColumnCount() int {
	return len(t.Headers)
}

// RowCount returns the number of body rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}
