package domain

// Table is an opaque tabular result returned by an archive client.
// Cosmo passes tables through unmodified: rows are kept as the string
// values the archive produced, in the archive's column order.
type Table struct {
	// Columns holds the column names in archive order.
	Columns []string

	// Rows holds one string slice per result row, aligned with Columns.
	Rows [][]string
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	if t == nil {
		return 0
	}
	return len(t.Columns)
}

// IsEmpty reports whether the table is nil or carries no rows.
func (t *Table) IsEmpty() bool {
	return t.NumRows() == 0
}

// Head returns a new table holding at most n leading rows.
// The column slice is shared; row slices are shared, not copied.
func (t *Table) Head(n int) *Table {
	if t == nil {
		return nil
	}
	if n < 0 {
		n = 0
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return &Table{Columns: t.Columns, Rows: t.Rows[:n]}
}

// ColumnIndex returns the index of the named column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	if t == nil {
		return -1
	}
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}
