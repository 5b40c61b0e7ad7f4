package attr

import (
	"fmt"

	"github.com/roach88/haystack/internal/table"
)

// Combine splits the referenced attribute column of t, drops that column, and
// appends the split columns on the right. Split column names that collide with
// the remaining columns get a ".N" suffix.
//
// A column whose first cell holds no delimited pairs is not an attribute
// column; t is returned unchanged.
func Combine(t *table.Table, ref table.ColumnRef, delim string) (*table.Table, error) {
	j, err := t.Resolve(ref)
	if err != nil {
		return nil, err
	}

	split, err := Split(t.Column(j), delim)
	if err != nil {
		return nil, fmt.Errorf("split column %s: %w", ref, err)
	}

	if split.Width() == 0 {
		return t, nil
	}

	rest := t.DropColumn(j)

	names := table.UniqueNames(rest.Columns(), split.Columns(), fallbackPrefix)
	renamed, err := rename(split, names)
	if err != nil {
		return nil, err
	}

	return rest.AppendColumns(renamed)
}

func rename(t *table.Table, names []string) (*table.Table, error) {
	rows := make([][]table.Value, t.Len())
	for i := range rows {
		rows[i] = t.Row(i)
	}
	return table.New(names, rows)
}
