package table

import (
	"fmt"
	"strconv"
)

// Table is an ordered sequence of rows with a stable, unique list of column
// names. A Table is never mutated after construction.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]Value
}

// New builds a table, copying columns and rows.
// Returns an error if column names repeat or a row has the wrong width.
func New(columns []string, rows [][]Value) (*Table, error) {
	t := &Table{
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
		rows:    make([][]Value, len(rows)),
	}

	for i, name := range columns {
		if _, dup := t.index[name]; dup {
			return nil, fmt.Errorf("duplicate column name %q", name)
		}
		t.index[name] = i
	}

	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d values, want %d", i, len(row), len(columns))
		}
		t.rows[i] = normalizeRow(row)
	}

	return t, nil
}

// MustNew is like New but panics on error. Intended for tests and literals.
func MustNew(columns []string, rows [][]Value) *Table {
	t, err := New(columns, rows)
	if err != nil {
		panic(err)
	}
	return t
}

// normalizeRow copies row, replacing nil interfaces with Null.
func normalizeRow(row []Value) []Value {
	out := make([]Value, len(row))
	for i, v := range row {
		if v == nil {
			v = Null{}
		}
		out[i] = v
	}
	return out
}

// Columns returns a copy of the column names in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Width returns the number of columns.
func (t *Table) Width() int {
	return len(t.columns)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns a copy of row i.
func (t *Table) Row(i int) []Value {
	return append([]Value(nil), t.rows[i]...)
}

// Cell returns the value at row i, column j.
func (t *Table) Cell(i, j int) Value {
	return t.rows[i][j]
}

// Resolve returns the position of the referenced column.
func (t *Table) Resolve(ref ColumnRef) (int, error) {
	switch ref.Kind {
	case RefIndex:
		if ref.Index < 0 || ref.Index >= len(t.columns) {
			return 0, &RefError{Ref: ref, Columns: t.Columns()}
		}
		return ref.Index, nil
	default:
		j, ok := t.index[ref.Name]
		if !ok {
			return 0, &RefError{Ref: ref, Columns: t.Columns()}
		}
		return j, nil
	}
}

// Column returns a copy of the values in column j.
func (t *Table) Column(j int) []Value {
	out := make([]Value, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[j]
	}
	return out
}

// ColumnByRef resolves ref and returns the column's values.
func (t *Table) ColumnByRef(ref ColumnRef) ([]Value, error) {
	j, err := t.Resolve(ref)
	if err != nil {
		return nil, err
	}
	return t.Column(j), nil
}

// SelectRows returns a new table holding the given rows, in the given order.
func (t *Table) SelectRows(indices []int) *Table {
	out := &Table{
		columns: t.columns,
		index:   t.index,
		rows:    make([][]Value, len(indices)),
	}
	for k, i := range indices {
		out.rows[k] = t.rows[i]
	}
	return out
}

// DropColumn returns a new table without column j.
func (t *Table) DropColumn(j int) *Table {
	columns := make([]string, 0, len(t.columns)-1)
	columns = append(columns, t.columns[:j]...)
	columns = append(columns, t.columns[j+1:]...)

	rows := make([][]Value, len(t.rows))
	for i, row := range t.rows {
		r := make([]Value, 0, len(row)-1)
		r = append(r, row[:j]...)
		r = append(r, row[j+1:]...)
		rows[i] = r
	}
	return MustNew(columns, rows)
}

// AppendColumns returns a new table with other's columns added on the right.
// Both tables must have the same number of rows and no shared column names.
func (t *Table) AppendColumns(other *Table) (*Table, error) {
	if other.Len() != t.Len() {
		return nil, fmt.Errorf("cannot append %d rows to a table of %d rows", other.Len(), t.Len())
	}

	columns := append(t.Columns(), other.columns...)
	rows := make([][]Value, len(t.rows))
	for i := range t.rows {
		r := make([]Value, 0, len(columns))
		r = append(r, t.rows[i]...)
		r = append(r, other.rows[i]...)
		rows[i] = r
	}
	return New(columns, rows)
}

// Records returns every row formatted as text, for delimited output.
func (t *Table) Records() [][]string {
	out := make([][]string, len(t.rows))
	for i, row := range t.rows {
		rec := make([]string, len(row))
		for j, v := range row {
			rec[j] = Format(v)
		}
		out[i] = rec
	}
	return out
}

// Equal reports whether both tables have the same columns and values.
func (t *Table) Equal(other *Table) bool {
	if t.Width() != other.Width() || t.Len() != other.Len() {
		return false
	}
	for j, name := range t.columns {
		if other.columns[j] != name {
			return false
		}
	}
	for i, row := range t.rows {
		for j, v := range row {
			if other.rows[i][j] != v {
				return false
			}
		}
	}
	return true
}

// PositionalNames returns "0".."n-1", the names given to headerless columns.
func PositionalNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = strconv.Itoa(i)
	}
	return names
}

// UniqueNames makes names unique against each other and against reserved.
// An empty name becomes "<fallback><i>"; a repeated name gets ".1", ".2", ...
// appended, the way pandas mangles duplicate headers.
func UniqueNames(reserved, names []string, fallback string) []string {
	seen := make(map[string]bool, len(reserved)+len(names))
	for _, r := range reserved {
		seen[r] = true
	}

	out := make([]string, len(names))
	for i, name := range names {
		if name == "" {
			name = fallback + strconv.Itoa(i)
		}
		candidate := name
		for n := 1; seen[candidate]; n++ {
			candidate = name + "." + strconv.Itoa(n)
		}
		seen[candidate] = true
		out[i] = candidate
	}
	return out
}
