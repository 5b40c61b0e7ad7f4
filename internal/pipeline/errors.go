package pipeline

import (
	"errors"
	"fmt"

	"github.com/roach88/haystack/internal/table"
	"github.com/roach88/haystack/internal/tableio"
)

// Stage names one step of a run.
type Stage string

const (
	StageLoad      Stage = "load"
	StageSplit     Stage = "split"
	StageMatch     Stage = "match"
	StageWrite     Stage = "write"
	StageUnmatched Stage = "unmatched"
)

// StageError reports the stage a run failed in.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// IsLoadError returns true if err was caused by reading an input file.
// Uses errors.As to handle wrapped errors.
func IsLoadError(err error) bool {
	var le *tableio.LoadError
	return errors.As(err, &le)
}

// IsRefError returns true if err was caused by a column reference that does
// not resolve.
func IsRefError(err error) bool {
	var re *table.RefError
	return errors.As(err, &re)
}

func stageErr(stage Stage, err error) error {
	return &StageError{Stage: stage, Err: err}
}
