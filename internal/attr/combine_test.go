package attr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/haystack/internal/table"
)

func gtfLike(t *testing.T) *table.Table {
	t.Helper()
	return table.MustNew(
		[]string{"0", "1", "2"},
		[][]table.Value{
			{table.String("chr1"), table.String(`gene_id "XLOC_1"; oId "CUFF.1";`), table.Int(100)},
			{table.String("chr2"), table.String(`gene_id "XLOC_2"; oId "CUFF.2";`), table.Int(200)},
		},
	)
}

func TestCombine_DropsReferencedColumnNotLast(t *testing.T) {
	got, err := Combine(gtfLike(t), table.ByName("1"), ";")
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "2", "gene_id", "oId"}, got.Columns())
	assert.Equal(t, []table.Value{
		table.String("chr1"), table.Int(100), table.String("XLOC_1"), table.String("CUFF.1"),
	}, got.Row(0))
}

func TestCombine_ByIndex(t *testing.T) {
	got, err := Combine(gtfLike(t), table.ByIndex(1), DefaultDelimiter)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "2", "gene_id", "oId"}, got.Columns())
}

func TestCombine_MissingColumn(t *testing.T) {
	_, err := Combine(gtfLike(t), table.ByName("attributes"), ";")

	var refErr *table.RefError
	require.ErrorAs(t, err, &refErr)
}

func TestCombine_NameCollisionWithExistingColumn(t *testing.T) {
	tbl := table.MustNew(
		[]string{"gene_id", "attributes"},
		[][]table.Value{{table.String("outer"), table.String(`gene_id "inner";`)}},
	)

	got, err := Combine(tbl, table.ByName("attributes"), ";")
	require.NoError(t, err)

	assert.Equal(t, []string{"gene_id", "gene_id.1"}, got.Columns())
	assert.Equal(t, []table.Value{table.String("outer"), table.String("inner")}, got.Row(0))
}

func TestCombine_NotRepeatable(t *testing.T) {
	once, err := Combine(gtfLike(t), table.ByName("1"), ";")
	require.NoError(t, err)

	// The attribute column is gone after one combine.
	_, err = Combine(once, table.ByName("1"), ";")
	var refErr *table.RefError
	require.ErrorAs(t, err, &refErr)
}

func TestCombine_NonAttributeColumnIsNoOp(t *testing.T) {
	tests := []struct {
		name string
		ref  table.ColumnRef
	}{
		{"text column", table.ByName("0")},
		{"int column", table.ByName("2")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := gtfLike(t)
			got, err := Combine(in, tt.ref, ";")
			require.NoError(t, err)
			assert.True(t, in.Equal(got), "columns: %v", got.Columns())
		})
	}

	// Splitting a non-attribute column of an already split table changes nothing.
	once, err := Combine(gtfLike(t), table.ByName("1"), ";")
	require.NoError(t, err)
	again, err := Combine(once, table.ByName("gene_id"), ";")
	require.NoError(t, err)
	assert.True(t, once.Equal(again))
}

func TestCombine_EmptyDelimiter(t *testing.T) {
	_, err := Combine(gtfLike(t), table.ByName("1"), "")
	require.ErrorIs(t, err, ErrEmptyDelimiter)
}
