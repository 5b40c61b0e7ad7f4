package table

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// naValues are the cell texts treated as missing under inference.
// Matches the common subset of pandas' default na_values.
var naValues = map[string]bool{
	"":     true,
	"#N/A": true,
	"<NA>": true,
	"N/A":  true,
	"n/a":  true,
	"NA":   true,
	"NaN":  true,
	"nan":  true,
	"NULL": true,
	"null": true,
	"None": true,
}

// decimalPattern admits plain decimal numbers only. strconv also accepts Go
// literal forms such as 1_000 and 0x1p4, which pandas keeps as text.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

var boolValues = map[string]bool{
	"True": true, "TRUE": true, "true": true,
	"False": false, "FALSE": false, "false": false,
}

// FromText builds a table from text records.
//
// When infer is true each column is typed independently: a column whose every
// present cell parses as an integer becomes Int, else float becomes Float,
// else true/false becomes Bool, otherwise String. Missing cells become Null.
// When infer is false only empty cells become Null and everything else is a
// String.
//
// Records shorter than columns are padded with Null. Longer records are an
// error.
func FromText(columns []string, records [][]string, infer bool) (*Table, error) {
	width := len(columns)
	for i, rec := range records {
		if len(rec) > width {
			return nil, fmt.Errorf("record %d has %d fields, want at most %d", i, len(rec), width)
		}
	}

	rows := make([][]Value, len(records))
	for i := range rows {
		rows[i] = make([]Value, width)
	}

	cells := make([]string, len(records))
	present := make([]bool, len(records))
	for j := 0; j < width; j++ {
		for i, rec := range records {
			present[i] = j < len(rec)
			if present[i] {
				cells[i] = rec[j]
			} else {
				cells[i] = ""
			}
		}

		var col []Value
		if infer {
			col = InferColumn(cells)
		} else {
			col = rawColumn(cells)
		}
		for i := range records {
			if !present[i] {
				col[i] = Null{}
			}
			rows[i][j] = col[i]
		}
	}

	return New(columns, rows)
}

// InferColumn types one column of text cells.
func InferColumn(cells []string) []Value {
	out := make([]Value, len(cells))

	switch {
	case allPresent(cells, isInt):
		for i, c := range cells {
			if isNA(c) {
				out[i] = Null{}
				continue
			}
			n, _ := strconv.ParseInt(strings.TrimSpace(c), 10, 64)
			out[i] = Int(n)
		}
	case allPresent(cells, isFloat):
		for i, c := range cells {
			if isNA(c) {
				out[i] = Null{}
				continue
			}
			f, _ := strconv.ParseFloat(strings.TrimSpace(c), 64)
			out[i] = Float(f)
		}
	case allPresent(cells, isBool):
		for i, c := range cells {
			if isNA(c) {
				out[i] = Null{}
				continue
			}
			out[i] = Bool(boolValues[strings.TrimSpace(c)])
		}
	default:
		for i, c := range cells {
			if isNA(c) {
				out[i] = Null{}
				continue
			}
			out[i] = String(c)
		}
	}

	return out
}

func rawColumn(cells []string) []Value {
	out := make([]Value, len(cells))
	for i, c := range cells {
		if c == "" {
			out[i] = Null{}
			continue
		}
		out[i] = String(c)
	}
	return out
}

// allPresent reports whether pred holds for every non-missing cell and at
// least one cell is present.
func allPresent(cells []string, pred func(string) bool) bool {
	seen := false
	for _, c := range cells {
		if isNA(c) {
			continue
		}
		if !pred(strings.TrimSpace(c)) {
			return false
		}
		seen = true
	}
	return seen
}

func isNA(s string) bool {
	return naValues[strings.TrimSpace(s)]
}

func isInt(s string) bool {
	if !decimalPattern.MatchString(s) {
		return false
	}
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

func isFloat(s string) bool {
	if !decimalPattern.MatchString(s) {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsInf(f, 0) && !math.IsNaN(f)
}

func isBool(s string) bool {
	_, ok := boolValues[s]
	return ok
}
