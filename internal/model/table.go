package model

// DefaultColumn is the column holding company names when none is configured.
const DefaultColumn = "company_name"

// DerivedColumn returns the name of the column that receives cleaned values.
func DerivedColumn(column string) string {
	return "cleaned_" + column
}

// Table is a fully materialized tabular file. Rows keep file order and every
// row has exactly len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Len returns the number of data rows (the header is not counted).
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns a copy of the named column's values in row order.
func (t *Table) Column(name string) ([]string, bool) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, false
	}
	vals := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		vals[i] = row[idx]
	}
	return vals, true
}

// WithColumn returns a new Table with values stored under name. An existing
// column of that name is overwritten in place; otherwise the column is
// appended. The receiver is left untouched. values must have one entry per row.
func (t *Table) WithColumn(name string, values []string) *Table {
	idx := t.ColumnIndex(name)
	cols := append([]string(nil), t.Columns...)
	if idx < 0 {
		idx = len(cols)
		cols = append(cols, name)
	}

	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		out := make([]string, len(cols))
		copy(out, row)
		out[idx] = values[i]
		rows[i] = out
	}
	return &Table{Columns: cols, Rows: rows}
}
