package attr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_UniformRows(t *testing.T) {
	divs := Validate(strs(
		`gene_id "G1"; oId "O1";`,
		`gene_id "G2"; oId "O2";`,
	), ";")
	assert.Empty(t, divs)
}

func TestValidate_ReportsDivergentRows(t *testing.T) {
	divs := Validate(strs(
		`gene_id "G1"; oId "O1";`,
		`oId "O2"; gene_id "G2";`,
		`gene_id "G3"; oId "O3";`,
		`gene_id "G4";`,
	), ";")

	require.Len(t, divs, 2)
	assert.Equal(t, 1, divs[0].Row)
	assert.Equal(t, []string{"oId", "gene_id"}, divs[0].Got)
	assert.Equal(t, []string{"gene_id", "oId"}, divs[0].Expected)
	assert.Equal(t, 3, divs[1].Row)
	assert.Contains(t, divs[1].String(), "row 3")
}

func TestValidate_EmptyInput(t *testing.T) {
	assert.Nil(t, Validate(nil, ";"))
	assert.Nil(t, Validate(strs(`a "b";`), ""))
}
