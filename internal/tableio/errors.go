package tableio

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned when a source holds no rows at all.
var ErrEmpty = errors.New("no columns to parse from file")

// ErrUnknownSheet is returned when a named worksheet does not exist.
var ErrUnknownSheet = errors.New("sheet not found")

// ErrNoTable is returned when a SQLite source has no usable table.
var ErrNoTable = errors.New("no table found")

// LoadError reports a failure to read a table from a file.
// Load errors are fatal to the pipeline.
type LoadError struct {
	Path   string
	Format Format
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s (%s): %v", e.Path, e.Format, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
