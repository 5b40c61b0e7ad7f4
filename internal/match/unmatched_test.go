package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/haystack/internal/table"
)

func TestUnmatched_MissingNeedleUnderEverySemantics(t *testing.T) {
	for _, sem := range ValidSemantics {
		t.Run(string(sem), func(t *testing.T) {
			got := Unmatched(vals("g2"), vals("g2", "g3"), sem)
			assert.Equal(t, vals("g3"), got)
		})
	}
}

// A needle listed twice with one matched row is reported as matched under
// the duplicate-count algorithm, even though one needle had no row of its own.
func TestUnmatched_DuplicatesUndercountRepeatedNeedle(t *testing.T) {
	got := Unmatched(vals("g2"), vals("g2", "g2"), Duplicates)
	assert.Empty(t, got)
}

func TestUnmatched_DuplicatesNeverMatchedRepeatedNeedle(t *testing.T) {
	// Two needle copies of g4 and no matched row: each copy has a duplicate
	// in the concatenation, so neither is reported.
	got := Unmatched(vals("g2"), vals("g2", "g4", "g4", "g5"), Duplicates)
	assert.Equal(t, vals("g5"), got)
}

func TestUnmatched_SetDeduplicates(t *testing.T) {
	got := Unmatched(vals("g2"), vals("g4", "g2", "g4", "g5", "g2"), Set)
	assert.Equal(t, vals("g4", "g5"), got)
}

func TestUnmatched_MultisetCountsOccurrences(t *testing.T) {
	got := Unmatched(vals("g2"), vals("g2", "g4", "g2", "g4"), Multiset)
	assert.Equal(t, vals("g4", "g2", "g4"), got)
}

func TestUnmatched_MultisetManyMatchedRows(t *testing.T) {
	got := Unmatched(vals("g2", "g2", "g2"), vals("g2"), Multiset)
	assert.Empty(t, got)
}

func TestUnmatched_DuplicatesRepeatedMatchedRows(t *testing.T) {
	// g2 matched twice and listed once: counted three times, never reported.
	got := Unmatched(vals("g2", "g2"), vals("g2", "g3"), Duplicates)
	assert.Equal(t, vals("g3"), got)
}

func TestUnmatched_CountInvariantWithUniqueValues(t *testing.T) {
	needles := vals("a", "b", "c", "d")
	matched := vals("b", "d")

	for _, sem := range ValidSemantics {
		t.Run(string(sem), func(t *testing.T) {
			got := Unmatched(matched, needles, sem)
			assert.Equal(t, len(needles), len(got)+len(matched))
		})
	}
}

func TestUnmatched_TypeMismatchIsUnmatched(t *testing.T) {
	got := Unmatched([]table.Value{table.Int(1)}, vals("1"), Set)
	assert.Equal(t, vals("1"), got)
}

func TestUnmatched_NullNeedle(t *testing.T) {
	needles := []table.Value{table.Null{}, table.String("a")}
	got := Unmatched(vals("a"), needles, Set)
	assert.Equal(t, []table.Value{table.Null{}}, got)
}

func TestUnmatched_EmptyInputs(t *testing.T) {
	for _, sem := range ValidSemantics {
		assert.Empty(t, Unmatched(nil, nil, sem))
		assert.Equal(t, vals("a"), Unmatched(nil, vals("a"), sem))
	}
}

func TestParseSemantics(t *testing.T) {
	tests := []struct {
		in      string
		want    Semantics
		wantErr bool
	}{
		{"", Set, false},
		{"set", Set, false},
		{"multiset", Multiset, false},
		{"duplicates", Duplicates, false},
		{"SET", "", true},
		{"bag", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSemantics(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
