package table

import (
	"fmt"
	"strconv"
	"strings"
)

// RefKind says how a ColumnRef is resolved.
type RefKind int

const (
	// RefName resolves by exact column name.
	RefName RefKind = iota
	// RefIndex resolves by zero-based position.
	RefIndex
)

// ColumnRef identifies a column either by name or by position.
// The kind is always explicit; a numeric-looking name is still a name.
type ColumnRef struct {
	Kind  RefKind
	Name  string
	Index int
}

// ByName returns a reference to the column called name.
func ByName(name string) ColumnRef {
	return ColumnRef{Kind: RefName, Name: name}
}

// ByIndex returns a reference to the column at zero-based position i.
func ByIndex(i int) ColumnRef {
	return ColumnRef{Kind: RefIndex, Index: i}
}

// ParseRef parses the text form of a column reference.
//
//	#3, index:3   column at position 3
//	name:3        column named "3"
//	gene_id       column named "gene_id"
//	8             column named "8" (headerless tables name columns "0".."n-1")
func ParseRef(s string) (ColumnRef, error) {
	if s == "" {
		return ColumnRef{}, fmt.Errorf("empty column reference")
	}

	var idx string
	switch {
	case strings.HasPrefix(s, "#"):
		idx = s[1:]
	case strings.HasPrefix(s, "index:"):
		idx = strings.TrimPrefix(s, "index:")
	case strings.HasPrefix(s, "name:"):
		name := strings.TrimPrefix(s, "name:")
		if name == "" {
			return ColumnRef{}, fmt.Errorf("empty column name in reference %q", s)
		}
		return ByName(name), nil
	default:
		return ByName(s), nil
	}

	i, err := strconv.Atoi(idx)
	if err != nil || i < 0 {
		return ColumnRef{}, fmt.Errorf("invalid column index in reference %q", s)
	}
	return ByIndex(i), nil
}

// String returns the text form accepted by ParseRef.
func (r ColumnRef) String() string {
	if r.Kind == RefIndex {
		return "#" + strconv.Itoa(r.Index)
	}
	return r.Name
}

// RefError reports a column reference that does not resolve against a table.
// It is always fatal to the operation that hit it.
type RefError struct {
	Ref     ColumnRef
	Columns []string
}

func (e *RefError) Error() string {
	if e.Ref.Kind == RefIndex {
		return fmt.Sprintf("column index %d out of range (table has %d columns)", e.Ref.Index, len(e.Columns))
	}
	return fmt.Sprintf("column %q not found (columns: %s)", e.Ref.Name, strings.Join(e.Columns, ", "))
}
