package match

import (
	"github.com/roach88/haystack/internal/table"
)

// Rows returns the haystack rows whose value in ref is one of needles.
//
// Row order and all columns are preserved. Duplicate needles collapse to one
// membership test. Zero matches yields an empty table with the haystack's
// columns. Returns *table.RefError if ref does not resolve.
func Rows(haystack *table.Table, ref table.ColumnRef, needles []table.Value) (*table.Table, error) {
	j, err := haystack.Resolve(ref)
	if err != nil {
		return nil, err
	}

	set := valueSet(needles)

	var keep []int
	for i := 0; i < haystack.Len(); i++ {
		if set.contains(haystack.Cell(i, j)) {
			keep = append(keep, i)
		}
	}

	return haystack.SelectRows(keep), nil
}

type values map[table.Value]struct{}

// valueSet builds a membership set, leaving out Null.
func valueSet(vals []table.Value) values {
	set := make(values, len(vals))
	for _, v := range vals {
		if table.IsNull(v) {
			continue
		}
		set[v] = struct{}{}
	}
	return set
}

func (s values) contains(v table.Value) bool {
	if table.IsNull(v) {
		return false
	}
	_, ok := s[v]
	return ok
}
