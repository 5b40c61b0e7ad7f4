package attr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/haystack/internal/table"
)

func strs(vals ...string) []table.Value {
	out := make([]table.Value, len(vals))
	for i, v := range vals {
		out[i] = table.String(v)
	}
	return out
}

func TestSplit_KeyValuePairs(t *testing.T) {
	got, err := Split(strs(`gene_id "ABC"; type "exon";`), ";")
	require.NoError(t, err)

	assert.Equal(t, []string{"gene_id", "type"}, got.Columns())
	assert.Equal(t, []table.Value{table.String("ABC"), table.String("exon")}, got.Row(0))
}

func TestSplit_MissingQuotedValueIsNull(t *testing.T) {
	got, err := Split(strs(`gene_id ABC;`), ";")
	require.NoError(t, err)

	assert.Equal(t, []string{"gene_id"}, got.Columns())
	assert.Equal(t, table.Null{}, got.Cell(0, 0))
}

func TestSplit_NamesComeFromFirstRowOnly(t *testing.T) {
	got, err := Split(strs(
		`gene_id "G1"; transcript_id "T1";`,
		`transcript_id "T2"; gene_id "G2";`,
	), ";")
	require.NoError(t, err)

	assert.Equal(t, []string{"gene_id", "transcript_id"}, got.Columns())
	// Second row is positional, so its values land under row 0's names.
	assert.Equal(t, []table.Value{table.String("T2"), table.String("G2")}, got.Row(1))
}

func TestSplit_ShortRowsGetNull(t *testing.T) {
	got, err := Split(strs(
		`gene_id "G1"; transcript_id "T1"; exon_number "1";`,
		`gene_id "G2";`,
		``,
	), ";")
	require.NoError(t, err)

	require.Equal(t, 3, got.Width())
	assert.Equal(t, []table.Value{table.String("G2"), table.Null{}, table.Null{}}, got.Row(1))
	assert.Equal(t, []table.Value{table.Null{}, table.Null{}, table.Null{}}, got.Row(2))
}

func TestSplit_ExtraTokensIgnored(t *testing.T) {
	got, err := Split(strs(
		`gene_id "G1";`,
		`gene_id "G2"; extra "x";`,
	), ";")
	require.NoError(t, err)

	assert.Equal(t, 1, got.Width())
	assert.Equal(t, table.String("G2"), got.Cell(1, 0))
}

func TestSplit_NullCell(t *testing.T) {
	got, err := Split([]table.Value{table.String(`gene_id "G1";`), table.Null{}}, ";")
	require.NoError(t, err)

	assert.Equal(t, table.Null{}, got.Cell(1, 0))
}

func TestSplit_EmptyAndDuplicateKeys(t *testing.T) {
	got, err := Split(strs(`"anon"; gene_id "A"; gene_id "B";`), ";")
	require.NoError(t, err)

	assert.Equal(t, []string{"attr0", "gene_id", "gene_id.1"}, got.Columns())
	assert.Equal(t, []table.Value{table.String("anon"), table.String("A"), table.String("B")}, got.Row(0))
}

func TestSplit_QuotedValueIsGreedy(t *testing.T) {
	got, err := Split(strs(`note "a "quoted" word";`), ";")
	require.NoError(t, err)

	assert.Equal(t, table.String(`a "quoted" word`), got.Cell(0, 0))
}

func TestSplit_EmptyColumn(t *testing.T) {
	got, err := Split(nil, ";")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Width())
	assert.Equal(t, 0, got.Len())
}

func TestSplit_EmptyDelimiter(t *testing.T) {
	_, err := Split(strs(`gene_id "A";`), "")
	require.ErrorIs(t, err, ErrEmptyDelimiter)
}

func TestSplit_NoDelimiterInCell(t *testing.T) {
	got, err := Split(strs(`plain text`), ";")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Width())
	assert.Equal(t, 1, got.Len())
}

func TestSplitNames(t *testing.T) {
	names := SplitNames(`  gene_id "A";  exon-number "2"; ;`, ";")
	assert.Equal(t, []string{"gene_id", "exon", ""}, names)
}
