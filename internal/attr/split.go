// Package attr splits semi-structured attribute columns into discrete columns.
//
// An attribute cell holds delimiter-separated key/quoted-value pairs with a
// trailing delimiter, as in the ninth column of a GTF file:
//
//	gene_id "XLOC_000001"; transcript_id "TCONS_00000001"; exon_number "1";
//
// Column names come from the keys of the first row only. Every row is assumed
// to carry the same keys in the same order; Validate reports rows that do not.
package attr

import (
	"errors"
	"regexp"
	"strings"

	"github.com/roach88/haystack/internal/table"
)

// DefaultDelimiter separates pairs when no delimiter is configured.
const DefaultDelimiter = ";"

// fallbackPrefix names split columns whose key has no word characters.
const fallbackPrefix = "attr"

var (
	keyPattern    = regexp.MustCompile(`^\w*`)
	quotedPattern = regexp.MustCompile(`"(.*)"`)
)

// ErrEmptyDelimiter is returned when splitting with an empty delimiter.
var ErrEmptyDelimiter = errors.New("attribute delimiter must not be empty")

// SplitNames derives column names from the first attribute cell.
// The result may contain empty or repeated names; Split makes them unique.
func SplitNames(first, delim string) []string {
	tokens := tokenize(first, delim)
	names := make([]string, len(tokens))
	for i, tok := range tokens {
		names[i] = keyPattern.FindString(strings.TrimSpace(tok))
	}
	return names
}

// Split turns an attribute column into a table with one column per key found
// in row 0. Each cell is the text between the first and last double quote of
// its token, or Null when the token carries no quoted value. Rows with fewer
// tokens than row 0 get Null for the missing positions; extra tokens are
// ignored.
func Split(column []table.Value, delim string) (*table.Table, error) {
	if delim == "" {
		return nil, ErrEmptyDelimiter
	}
	if len(column) == 0 {
		return table.New(nil, nil)
	}

	names := table.UniqueNames(nil, SplitNames(cellText(column[0]), delim), fallbackPrefix)

	rows := make([][]table.Value, len(column))
	for i, cell := range column {
		tokens := tokenize(cellText(cell), delim)
		row := make([]table.Value, len(names))
		for j := range names {
			row[j] = table.Null{}
			if j < len(tokens) {
				row[j] = quotedValue(tokens[j])
			}
		}
		rows[i] = row
	}

	return table.New(names, rows)
}

// tokenize splits s on delim and drops the trailing segment.
func tokenize(s, delim string) []string {
	tokens := strings.Split(s, delim)
	return tokens[:len(tokens)-1]
}

func quotedValue(tok string) table.Value {
	m := quotedPattern.FindStringSubmatch(tok)
	if m == nil {
		return table.Null{}
	}
	return table.String(m[1])
}

// cellText gives the text an attribute cell is split from.
func cellText(v table.Value) string {
	if s, ok := v.(table.String); ok {
		return string(s)
	}
	return table.Format(v)
}
