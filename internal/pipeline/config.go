package pipeline

import (
	"errors"
	"fmt"

	"github.com/roach88/haystack/internal/attr"
	"github.com/roach88/haystack/internal/match"
	"github.com/roach88/haystack/internal/table"
	"github.com/roach88/haystack/internal/tableio"
)

// DefaultOutPath is where extracted rows go when no output path is set.
const DefaultOutPath = "extracted.csv"

// Config is the complete, explicit description of one run.
type Config struct {
	Haystack tableio.Source
	Needle   tableio.Source

	// HaystackCol and NeedleCol are the search columns compared for matches.
	HaystackCol table.ColumnRef
	NeedleCol   table.ColumnRef

	// Split, when set, splits a haystack attribute column before matching.
	Split *SplitConfig

	// OutPath receives the extracted rows as delimited text, written with
	// the haystack's delimiter and header setting.
	OutPath string

	// Unmatched selects how unmatched needle values are counted.
	Unmatched match.Semantics
}

// SplitConfig describes the attribute column to split.
type SplitConfig struct {
	Col   table.ColumnRef
	Delim string
}

// WithDefaults returns a copy of c with empty optional fields filled in.
func (c Config) WithDefaults() Config {
	if c.OutPath == "" {
		c.OutPath = DefaultOutPath
	}
	if c.Unmatched == "" {
		c.Unmatched = match.Set
	}
	if c.Split != nil && c.Split.Delim == "" {
		split := *c.Split
		split.Delim = attr.DefaultDelimiter
		c.Split = &split
	}
	return c
}

// Validate checks that every required field is present.
func (c Config) Validate() error {
	var errs []error

	if c.Haystack.Path == "" {
		errs = append(errs, errors.New("haystack path is required"))
	}
	if c.Needle.Path == "" {
		errs = append(errs, errors.New("needle path is required"))
	}
	if err := validateRef("haystack column", c.HaystackCol); err != nil {
		errs = append(errs, err)
	}
	if err := validateRef("needle column", c.NeedleCol); err != nil {
		errs = append(errs, err)
	}
	if c.Split != nil {
		if err := validateRef("split column", c.Split.Col); err != nil {
			errs = append(errs, err)
		}
	}
	if _, err := match.ParseSemantics(string(c.Unmatched)); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func validateRef(what string, ref table.ColumnRef) error {
	switch ref.Kind {
	case table.RefName:
		if ref.Name == "" {
			return fmt.Errorf("%s is required", what)
		}
	case table.RefIndex:
		if ref.Index < 0 {
			return fmt.Errorf("%s index must be non-negative", what)
		}
	}
	return nil
}
