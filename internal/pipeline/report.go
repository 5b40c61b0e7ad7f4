package pipeline

import (
	"fmt"
	"strings"

	"github.com/roach88/haystack/internal/attr"
	"github.com/roach88/haystack/internal/match"
	"github.com/roach88/haystack/internal/table"
)

// Report is the outcome of one run.
type Report struct {
	RunID        string
	OutPath      string
	HaystackRows int
	NeedleRows   int
	MatchedRows  int

	// Columns are the output columns, after any split.
	Columns []string

	// Unmatched holds the needle values with no matching row, in needle order.
	Unmatched []table.Value
	Semantics match.Semantics

	// Divergences lists attribute rows whose keys differ from the first row.
	Divergences []attr.Divergence

	// Matched is the table written to OutPath.
	Matched *table.Table
}

// Summary renders the end-of-run block shown to the user: the unmatched
// count out of the needle row count, then one unmatched value per line.
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "The following entries could not be extracted (%d/%d):\n", len(r.Unmatched), r.NeedleRows)
	for _, v := range r.Unmatched {
		b.WriteString(table.Format(v))
		b.WriteByte('\n')
	}
	return b.String()
}

// ToCanonicalMap converts the report into plain values for canonical JSON.
// Cell values are rendered as text; the run ID is left out when omitRunID is
// set so snapshots stay deterministic.
func (r *Report) ToCanonicalMap(omitRunID bool) map[string]any {
	unmatched := make([]any, len(r.Unmatched))
	for i, v := range r.Unmatched {
		unmatched[i] = table.Format(v)
	}

	columns := make([]any, len(r.Columns))
	for i, c := range r.Columns {
		columns[i] = c
	}

	divergences := make([]any, len(r.Divergences))
	for i, d := range r.Divergences {
		divergences[i] = map[string]any{
			"row":      d.Row,
			"expected": stringsToAny(d.Expected),
			"got":      stringsToAny(d.Got),
		}
	}

	out := map[string]any{
		"out_path":      r.OutPath,
		"haystack_rows": r.HaystackRows,
		"needle_rows":   r.NeedleRows,
		"matched_rows":  r.MatchedRows,
		"columns":       columns,
		"unmatched":     unmatched,
		"semantics":     string(r.Semantics),
		"divergences":   divergences,
	}
	if !omitRunID {
		out["run_id"] = r.RunID
	}
	return out
}

func stringsToAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
