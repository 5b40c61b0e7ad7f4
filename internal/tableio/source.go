package tableio

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/roach88/haystack/internal/table"
)

// Format identifies how a file is read.
type Format string

const (
	FormatDelimited Format = "delimited"
	FormatXLSX      Format = "xlsx"
	FormatSQLite    Format = "sqlite"
)

// DefaultDelimiter is used when no delimiter is configured.
const DefaultDelimiter = ','

// Source describes one input file and how to read it.
type Source struct {
	// Path is the file to read. Its extension selects the Format.
	Path string

	// Delim separates fields of delimited text. Zero means DefaultDelimiter.
	Delim rune

	// Header marks the first line of delimited text as column names.
	// Without it columns are named "0".."n-1". XLSX and SQLite sources
	// always carry names.
	Header bool

	// Sheet selects an XLSX worksheet. Empty means the first sheet.
	Sheet string

	// Table selects a SQLite table. Empty means the first table by name.
	Table string

	// Raw disables per-column type inference for text sources.
	Raw bool
}

// DetectFormat picks the reader for a path from its extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return FormatXLSX
	case ".sqlite", ".sqlite3", ".db":
		return FormatSQLite
	default:
		return FormatDelimited
	}
}

// ParseDelimiter converts a configured delimiter into a rune.
// The literal "tab" (and the escape "\t") maps to a tab character; empty
// means DefaultDelimiter. Anything else must be exactly one character.
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return DefaultDelimiter, nil
	case "tab", `\t`:
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter %q must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("invalid delimiter %q", s)
	}
	return r, nil
}

// Load reads the table described by src.
// Every failure is returned as a *LoadError.
func Load(ctx context.Context, src Source) (*table.Table, error) {
	format := DetectFormat(src.Path)

	if err := ctx.Err(); err != nil {
		return nil, &LoadError{Path: src.Path, Format: format, Err: err}
	}

	var (
		t   *table.Table
		err error
	)
	switch format {
	case FormatXLSX:
		t, err = loadXLSX(src)
	case FormatSQLite:
		t, err = loadSQLite(ctx, src)
	default:
		t, err = loadDelimited(src)
	}
	if err != nil {
		return nil, &LoadError{Path: src.Path, Format: format, Err: err}
	}
	return t, nil
}

// headerNames cleans a header row: BOM stripped, blanks named "Unnamed: i",
// duplicates suffixed ".1", ".2", ...
func headerNames(header []string) []string {
	names := append([]string(nil), header...)
	if len(names) > 0 {
		names[0] = strings.TrimPrefix(names[0], "\ufeff")
	}
	return table.UniqueNames(nil, names, "Unnamed: ")
}
