package tableio

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/roach88/haystack/internal/table"
)

// loadXLSX reads one worksheet. Row 0 is always the header.
func loadXLSX(src Source) (*table.Table, error) {
	f, err := excelize.OpenFile(src.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := src.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrEmpty
		}
		sheet = sheets[0]
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSheet, sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	header := make([]string, width)
	copy(header, rows[0])

	return table.FromText(headerNames(header), rows[1:], !src.Raw)
}
