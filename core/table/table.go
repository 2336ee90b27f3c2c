package table

import "errors"

// ErrNoColumns is returned when an operation receives a table without any
// column definitions, which means the input was unreadable or empty.
var ErrNoColumns = errors.New("table has no columns")

// Row is a single record. Absent keys and nil values both read as null.
type Row map[string]any

// Get returns the value for a column, or nil when the column is absent.
func (r Row) Get(column string) any {
	v, ok := r[column]
	if !ok {
		return nil
	}
	return v
}

// Table is an ordered collection of rows sharing one column set.
// Column order is load-bearing for serialized output and is preserved
// exactly as given at construction.
type Table struct {
	Columns []string
	Rows    []Row
}

// New creates an empty table with the given column order.
func New(columns ...string) *Table {
	return &Table{Columns: append([]string{}, columns...)}
}

// Append adds a row to the table. The row is stored as-is; callers must not
// mutate it afterwards.
func (t *Table) Append(row Row) {
	t.Rows = append(t.Rows, row)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// HasColumn reports whether the table defines the given column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Validate checks the table is structurally usable.
func (t *Table) Validate() error {
	if t == nil || len(t.Columns) == 0 {
		return ErrNoColumns
	}
	return nil
}
