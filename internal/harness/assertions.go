package harness

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/haystack/internal/table"
)

// AssertionError is returned when an assertion fails.
// It includes the output columns to help debug the failure.
type AssertionError struct {
	Type     string   // Assertion type for categorization
	Expected string   // Human-readable expected outcome
	Actual   string   // Human-readable actual outcome
	Columns  []string // Output columns for context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)
	if len(e.Columns) > 0 {
		fmt.Fprintf(&buf, "  Output columns: %s\n", strings.Join(e.Columns, ", "))
	}

	return buf.String()
}

func assertMatchedRows(result *Result, assertion Assertion) error {
	if got := result.Report.MatchedRows; got != assertion.Count {
		return &AssertionError{
			Type:     AssertMatchedRows,
			Expected: fmt.Sprintf("%d matched rows", assertion.Count),
			Actual:   fmt.Sprintf("%d matched rows", got),
			Columns:  result.Report.Columns,
		}
	}
	return nil
}

func assertColumns(result *Result, assertion Assertion) error {
	if !slices.Equal(result.Report.Columns, assertion.Columns) {
		return &AssertionError{
			Type:     AssertColumns,
			Expected: fmt.Sprintf("%q", assertion.Columns),
			Actual:   fmt.Sprintf("%q", result.Report.Columns),
		}
	}
	return nil
}

// assertUnmatched compares unmatched values by their output text, in order.
func assertUnmatched(result *Result, assertion Assertion) error {
	got := make([]string, len(result.Report.Unmatched))
	for i, v := range result.Report.Unmatched {
		got[i] = table.Format(v)
	}

	want := assertion.Values
	if want == nil {
		want = []string{}
	}
	if !slices.Equal(got, want) {
		return &AssertionError{
			Type:     AssertUnmatched,
			Expected: fmt.Sprintf("%q", want),
			Actual:   fmt.Sprintf("%q", got),
			Columns:  result.Report.Columns,
		}
	}
	return nil
}

func assertOutput(result *Result, assertion Assertion) error {
	if result.Output != assertion.Content {
		return &AssertionError{
			Type:     AssertOutput,
			Expected: fmt.Sprintf("%q", assertion.Content),
			Actual:   fmt.Sprintf("%q", result.Output),
		}
	}
	return nil
}

func assertDivergences(result *Result, assertion Assertion) error {
	if got := len(result.Report.Divergences); got != assertion.Count {
		return &AssertionError{
			Type:     AssertDivergences,
			Expected: fmt.Sprintf("%d divergent rows", assertion.Count),
			Actual:   fmt.Sprintf("%d divergent rows", got),
			Columns:  result.Report.Columns,
		}
	}
	return nil
}

// EvaluateAssertions evaluates all assertions against a successful result.
// Returns a slice of error messages for failed assertions.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var errors []string

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertMatchedRows:
			err = assertMatchedRows(result, assertion)
		case AssertColumns:
			err = assertColumns(result, assertion)
		case AssertUnmatched:
			err = assertUnmatched(result, assertion)
		case AssertOutput:
			err = assertOutput(result, assertion)
		case AssertDivergences:
			err = assertDivergences(result, assertion)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}
