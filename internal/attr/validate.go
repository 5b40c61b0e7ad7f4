package attr

import (
	"fmt"
	"slices"

	"github.com/roach88/haystack/internal/table"
)

// Divergence describes a row whose keys differ from row 0's.
type Divergence struct {
	Row      int      `json:"row"`
	Expected []string `json:"expected"`
	Got      []string `json:"got"`
}

func (d Divergence) String() string {
	return fmt.Sprintf("row %d: keys %v, expected %v", d.Row, d.Got, d.Expected)
}

// Validate checks that every row of an attribute column carries the same keys
// in the same order as row 0. Split assumes this and silently misaligns or
// nulls cells when it does not hold.
func Validate(column []table.Value, delim string) []Divergence {
	if delim == "" || len(column) == 0 {
		return nil
	}

	expected := SplitNames(cellText(column[0]), delim)

	var out []Divergence
	for i := 1; i < len(column); i++ {
		got := SplitNames(cellText(column[i]), delim)
		if !slices.Equal(got, expected) {
			out = append(out, Divergence{Row: i, Expected: expected, Got: got})
		}
	}
	return out
}
