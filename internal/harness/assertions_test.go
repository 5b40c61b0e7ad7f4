package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/haystack/internal/attr"
	"github.com/roach88/haystack/internal/pipeline"
	"github.com/roach88/haystack/internal/table"
)

func sampleResult() *Result {
	return &Result{
		Pass: true,
		Report: &pipeline.Report{
			MatchedRows: 2,
			Columns:     []string{"id", "x"},
			Unmatched:   []table.Value{table.String("g3"), table.Int(4)},
			Divergences: []attr.Divergence{{Row: 3}},
		},
		Output: "id,x\n",
	}
}

func TestEvaluateAssertions_AllPass(t *testing.T) {
	errs := EvaluateAssertions(sampleResult(), []Assertion{
		{Type: AssertMatchedRows, Count: 2},
		{Type: AssertColumns, Columns: []string{"id", "x"}},
		{Type: AssertUnmatched, Values: []string{"g3", "4"}},
		{Type: AssertOutput, Content: "id,x\n"},
		{Type: AssertDivergences, Count: 1},
	})
	assert.Empty(t, errs)
}

func TestEvaluateAssertions_Failures(t *testing.T) {
	tests := []struct {
		name      string
		assertion Assertion
		want      string
	}{
		{"matched rows", Assertion{Type: AssertMatchedRows, Count: 1}, "Actual: 2 matched rows"},
		{"columns", Assertion{Type: AssertColumns, Columns: []string{"id"}}, `Actual: ["id" "x"]`},
		{"unmatched", Assertion{Type: AssertUnmatched}, `Actual: ["g3" "4"]`},
		{"output", Assertion{Type: AssertOutput, Content: "x"}, `Actual: "id,x\n"`},
		{"divergences", Assertion{Type: AssertDivergences}, "Actual: 1 divergent rows"},
		{"unknown", Assertion{Type: "rows"}, `unknown assertion type "rows"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := EvaluateAssertions(sampleResult(), []Assertion{tt.assertion})
			require.Len(t, errs, 1)
			assert.Contains(t, errs[0], tt.want)
		})
	}
}

func TestAssertionError_Format(t *testing.T) {
	err := &AssertionError{
		Type:     AssertMatchedRows,
		Expected: "1 matched rows",
		Actual:   "0 matched rows",
		Columns:  []string{"id", "x"},
	}

	want := "Assertion failed: matched_rows\n" +
		"  Expected: 1 matched rows\n" +
		"  Actual: 0 matched rows\n" +
		"  Output columns: id, x\n"
	assert.Equal(t, want, err.Error())
}
