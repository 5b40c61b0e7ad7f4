package match

import (
	"fmt"

	"github.com/roach88/haystack/internal/table"
)

// Semantics selects how unmatched needle values are counted.
type Semantics string

const (
	// Set reports each distinct needle value with no matched row once.
	Set Semantics = "set"
	// Multiset reports a needle value once per needle occurrence not covered
	// by a matched occurrence.
	Multiset Semantics = "multiset"
	// Duplicates reports values occurring exactly once in matched ++ needles.
	Duplicates Semantics = "duplicates"
)

// ValidSemantics lists the accepted semantics names.
var ValidSemantics = []Semantics{Set, Multiset, Duplicates}

// ParseSemantics converts a name into a Semantics. Empty means Set.
func ParseSemantics(s string) (Semantics, error) {
	if s == "" {
		return Set, nil
	}
	for _, sem := range ValidSemantics {
		if string(sem) == s {
			return sem, nil
		}
	}
	return "", fmt.Errorf("invalid unmatched semantics %q: must be one of %v", s, ValidSemantics)
}

// Unmatched returns the needle values that have no counterpart among the
// matched search-column values, in needle order.
func Unmatched(matched, needles []table.Value, sem Semantics) []table.Value {
	switch sem {
	case Multiset:
		return unmatchedMultiset(matched, needles)
	case Duplicates:
		return unmatchedDuplicates(matched, needles)
	default:
		return unmatchedSet(matched, needles)
	}
}

// unmatchedSet is a set difference on distinct needle values.
func unmatchedSet(matched, needles []table.Value) []table.Value {
	found := valueSet(matched)
	reported := make(map[table.Value]bool)

	out := []table.Value{}
	for _, v := range needles {
		if found.contains(v) || reported[v] {
			continue
		}
		reported[v] = true
		out = append(out, v)
	}
	return out
}

// unmatchedMultiset reports max(0, n-m) occurrences of each value, where n
// counts it in needles and m in matched. The reported occurrences are the
// last ones in needle order; the first m occurrences are considered covered.
func unmatchedMultiset(matched, needles []table.Value) []table.Value {
	covered := make(map[table.Value]int)
	for _, v := range matched {
		if !table.IsNull(v) {
			covered[v]++
		}
	}

	out := []table.Value{}
	for _, v := range needles {
		if covered[v] > 0 {
			covered[v]--
			continue
		}
		out = append(out, v)
	}
	return out
}

// unmatchedDuplicates flags values that appear exactly once in the
// concatenation of matched and needles, and returns the flagged ones that
// sit in the needles portion. Null occurrences count like any other value.
func unmatchedDuplicates(matched, needles []table.Value) []table.Value {
	counts := make(map[table.Value]int, len(matched)+len(needles))
	for _, v := range matched {
		counts[nullKey(v)]++
	}
	for _, v := range needles {
		counts[nullKey(v)]++
	}

	out := []table.Value{}
	for _, v := range needles {
		if counts[nullKey(v)] == 1 {
			out = append(out, v)
		}
	}
	return out
}

func nullKey(v table.Value) table.Value {
	if v == nil {
		return table.Null{}
	}
	return v
}
