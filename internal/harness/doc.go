// Package harness runs extraction scenarios described in YAML.
//
// # Scenario Format
//
//	name: basic_extract
//	description: "Rows whose id is listed in the needle file are extracted"
//	files:
//	  haystack.csv: |
//	    id,x
//	    g1,1
//	    g2,2
//	  needle.csv: |
//	    id
//	    g2
//	    g3
//	job:
//	  haystack: { path: haystack.csv, header: true }
//	  needle: { path: needle.csv, header: true }
//	  haystack_col: id
//	  needle_col: id
//	assertions:
//	  - type: matched_rows
//	    count: 1
//	  - type: unmatched
//	    values: [g3]
//
// Files are written to a fresh temporary directory and the job's paths are
// resolved against it, so scenarios are self-contained.
//
// # Assertion Types
//
//   - matched_rows: the number of extracted rows
//   - columns: the output column names, in order
//   - unmatched: the unmatched needle values, in order
//   - output: the exact content of the output file
//   - divergences: the number of attribute rows whose keys differ from row 0
//
// A scenario may instead set expect_error; it passes when the run fails with
// an error containing that text.
//
// # Deterministic Testing
//
// Runs use a fixed run ID and the golden snapshot leaves it out, so the same
// scenario always produces byte-identical canonical JSON.
package harness
