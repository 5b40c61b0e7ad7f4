package tableio

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/roach88/haystack/internal/table"
)

func writeWorkbook(t *testing.T, sheets map[string][][]any, order ...string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for r, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadXLSX_FirstSheet(t *testing.T) {
	path := writeWorkbook(t, map[string][][]any{
		"loci": {
			{"XLOC_id", "score"},
			{"XLOC_000001", 10},
			{"XLOC_000002", 20},
		},
		"other": {
			{"ignored"},
		},
	}, "loci", "other")

	got, err := Load(context.Background(), Source{Path: path})
	require.NoError(t, err)

	assert.Equal(t, []string{"XLOC_id", "score"}, got.Columns())
	assert.Equal(t, []table.Value{table.String("XLOC_000001"), table.Int(10)}, got.Row(0))
	assert.Equal(t, 2, got.Len())
}

func TestLoadXLSX_NamedSheet(t *testing.T) {
	path := writeWorkbook(t, map[string][][]any{
		"first":  {{"a"}, {"1"}},
		"second": {{"b"}, {"x"}},
	}, "first", "second")

	got, err := Load(context.Background(), Source{Path: path, Sheet: "second"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, got.Columns())
	assert.Equal(t, table.String("x"), got.Cell(0, 0))
}

func TestLoadXLSX_UnknownSheet(t *testing.T) {
	path := writeWorkbook(t, map[string][][]any{
		"first": {{"a"}, {"1"}},
	}, "first")

	_, err := Load(context.Background(), Source{Path: path, Sheet: "nope"})
	require.ErrorIs(t, err, ErrUnknownSheet)
}

func TestLoadXLSX_CorruptFile(t *testing.T) {
	path := writeFile(t, "broken.xlsx", "not a zip")

	_, err := Load(context.Background(), Source{Path: path})
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, FormatXLSX, loadErr.Format)
}
