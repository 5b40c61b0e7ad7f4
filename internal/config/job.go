// Package config reads job files and turns them into pipeline configurations.
//
// A job is the file form of pipeline.Config: every value is plain text the
// way a user writes it (delimiters as "tab" or ",", columns as "gene_id" or
// "#8"). Jobs come from YAML or CUE files, or from CLI flags, and all go
// through Job.ToConfig.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/roach88/haystack/internal/match"
	"github.com/roach88/haystack/internal/pipeline"
	"github.com/roach88/haystack/internal/table"
	"github.com/roach88/haystack/internal/tableio"
)

// Job describes one extraction run.
type Job struct {
	Haystack    Source `yaml:"haystack" json:"haystack"`
	Needle      Source `yaml:"needle" json:"needle"`
	HaystackCol string `yaml:"haystack_col" json:"haystack_col"`
	NeedleCol   string `yaml:"needle_col" json:"needle_col"`
	Split       *Split `yaml:"split,omitempty" json:"split,omitempty"`
	OutPath     string `yaml:"out_path,omitempty" json:"out_path,omitempty"`
	Unmatched   string `yaml:"unmatched,omitempty" json:"unmatched,omitempty"`
}

// Source describes one input file.
type Source struct {
	Path   string `yaml:"path" json:"path"`
	Delim  string `yaml:"delim,omitempty" json:"delim,omitempty"`
	Header bool   `yaml:"header,omitempty" json:"header,omitempty"`
	Sheet  string `yaml:"sheet,omitempty" json:"sheet,omitempty"`
	Table  string `yaml:"table,omitempty" json:"table,omitempty"`
	Raw    bool   `yaml:"raw,omitempty" json:"raw,omitempty"`
}

// Split names the attribute column to split and its pair delimiter.
type Split struct {
	Col   string `yaml:"col" json:"col"`
	Delim string `yaml:"delim,omitempty" json:"delim,omitempty"`
}

// Error reports an invalid job field.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ResolvePaths returns a copy of j with relative file paths joined to base.
// An unset out path becomes pipeline.DefaultOutPath under base.
func (j Job) ResolvePaths(base string) Job {
	if base == "" {
		return j
	}
	if j.OutPath == "" {
		j.OutPath = pipeline.DefaultOutPath
	}
	j.Haystack.Path = resolve(base, j.Haystack.Path)
	j.Needle.Path = resolve(base, j.Needle.Path)
	j.OutPath = resolve(base, j.OutPath)
	return j
}

func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// ToConfig converts the job into a validated pipeline configuration.
// All field errors are collected and returned together as *Error values.
func (j Job) ToConfig() (pipeline.Config, error) {
	var errs []error
	fail := func(field string, err error) {
		errs = append(errs, &Error{Field: field, Message: err.Error()})
	}

	haystack, err := j.Haystack.toSource()
	if err != nil {
		fail("haystack.delim", err)
	}
	needle, err := j.Needle.toSource()
	if err != nil {
		fail("needle.delim", err)
	}
	if j.Haystack.Path == "" {
		fail("haystack.path", errors.New("is required"))
	}
	if j.Needle.Path == "" {
		fail("needle.path", errors.New("is required"))
	}

	haystackCol, err := table.ParseRef(j.HaystackCol)
	if err != nil {
		fail("haystack_col", err)
	}
	needleCol, err := table.ParseRef(j.NeedleCol)
	if err != nil {
		fail("needle_col", err)
	}

	var split *pipeline.SplitConfig
	if j.Split != nil {
		col, err := table.ParseRef(j.Split.Col)
		if err != nil {
			fail("split.col", err)
		}
		split = &pipeline.SplitConfig{Col: col, Delim: j.Split.Delim}
	}

	sem, err := match.ParseSemantics(j.Unmatched)
	if err != nil {
		fail("unmatched", err)
	}

	if len(errs) > 0 {
		return pipeline.Config{}, errors.Join(errs...)
	}

	cfg := pipeline.Config{
		Haystack:    haystack,
		Needle:      needle,
		HaystackCol: haystackCol,
		NeedleCol:   needleCol,
		Split:       split,
		OutPath:     j.OutPath,
		Unmatched:   sem,
	}.WithDefaults()

	if err := cfg.Validate(); err != nil {
		return pipeline.Config{}, err
	}
	return cfg, nil
}

func (s Source) toSource() (tableio.Source, error) {
	delim, err := tableio.ParseDelimiter(s.Delim)
	if err != nil {
		return tableio.Source{}, err
	}
	return tableio.Source{
		Path:   s.Path,
		Delim:  delim,
		Header: s.Header,
		Sheet:  s.Sheet,
		Table:  s.Table,
		Raw:    s.Raw,
	}, nil
}
