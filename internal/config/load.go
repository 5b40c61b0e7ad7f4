package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed job.cue
var jobSchema string

// LoadJob reads a job file. The extension picks the format: .cue files are
// checked against the #Job schema, anything else is parsed as YAML.
// Relative paths inside the job are resolved against the job file's directory.
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	var job *Job
	if strings.EqualFold(filepath.Ext(path), ".cue") {
		job, err = ParseCUE(data, path)
	} else {
		job, err = ParseYAML(data)
	}
	if err != nil {
		return nil, err
	}

	resolved := job.ResolvePaths(filepath.Dir(path))
	return &resolved, nil
}

// ParseYAML decodes a YAML job. Unknown fields are rejected.
func ParseYAML(data []byte) (*Job, error) {
	var job Job
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&job); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &job, nil
}

// ParseCUE unifies a CUE job with the #Job schema and decodes the result.
// filename is only used in error positions.
func ParseCUE(data []byte, filename string) (*Job, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(jobSchema, cue.Filename("job.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile job schema: %w", err)
	}

	value := ctx.CompileBytes(data, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse CUE: %w", err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Job")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("invalid job: %w", err)
	}

	var job Job
	if err := unified.Decode(&job); err != nil {
		return nil, fmt.Errorf("decode job: %w", err)
	}
	return &job, nil
}
