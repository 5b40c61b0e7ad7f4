package tableio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/roach88/haystack/internal/table"
)

// loadDelimited reads delimited text.
//
// Quotes are parsed leniently: attribute columns such as GTF's carry bare
// double quotes inside unquoted fields. Records may be shorter than the
// header (padded with Null) but not longer.
func loadDelimited(src Source) (*table.Table, error) {
	f, err := os.Open(src.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readDelimited(f, src)
}

func readDelimited(r io.Reader, src Source) (*table.Table, error) {
	delim := src.Delim
	if delim == 0 {
		delim = DefaultDelimiter
	}

	reader := csv.NewReader(r)
	reader.Comma = delim
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse delimited text: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	var columns []string
	if src.Header {
		columns = headerNames(records[0])
		records = records[1:]
	} else {
		width := 0
		for _, rec := range records {
			width = max(width, len(rec))
		}
		columns = table.PositionalNames(width)
	}

	return table.FromText(columns, records, !src.Raw)
}

// WriteDelimited writes t to path as delimited text, with a header line when
// header is set. The file is created or truncated.
func WriteDelimited(path string, t *table.Table, delim rune, header bool) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close output: %w", closeErr)
		}
	}()

	if err := EncodeDelimited(f, t, delim, header); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// EncodeDelimited writes t to w as delimited text.
func EncodeDelimited(w io.Writer, t *table.Table, delim rune, header bool) error {
	if delim == 0 {
		delim = DefaultDelimiter
	}

	writer := csv.NewWriter(w)
	writer.Comma = delim

	if header {
		if err := writer.Write(t.Columns()); err != nil {
			return err
		}
	}
	if err := writer.WriteAll(t.Records()); err != nil {
		return err
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush delimited output: %w", err)
	}
	return nil
}
