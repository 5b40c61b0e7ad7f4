package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roach88/haystack/internal/config"
)

// Scenario defines one extraction run and what it should produce.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Files maps relative file names to their contents.
	Files map[string]string `yaml:"files"`

	// Job is the run to execute. Paths are relative to the scenario's
	// working directory.
	Job config.Job `yaml:"job"`

	// Assertions validate the run's report and output.
	Assertions []Assertion `yaml:"assertions,omitempty"`

	// ExpectError, when set, makes the run expected to fail with an error
	// containing this text.
	ExpectError string `yaml:"expect_error,omitempty"`

	// RunID is an optional fixed run ID. Defaults to "test-run-default".
	RunID string `yaml:"run_id,omitempty"`
}

// Assertion checks one property of a finished run.
type Assertion struct {
	// Type is one of matched_rows, columns, unmatched, output, divergences.
	Type string `yaml:"type"`

	// Count is used by matched_rows and divergences.
	Count int `yaml:"count,omitempty"`

	// Columns is used by columns.
	Columns []string `yaml:"columns,omitempty"`

	// Values is used by unmatched.
	Values []string `yaml:"values,omitempty"`

	// Content is used by output.
	Content string `yaml:"content,omitempty"`
}

// Assertion type constants.
const (
	AssertMatchedRows = "matched_rows"
	AssertColumns     = "columns"
	AssertUnmatched   = "unmatched"
	AssertOutput      = "output"
	AssertDivergences = "divergences"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Files) == 0 {
		return fmt.Errorf("files map is required and must be non-empty")
	}

	for name := range s.Files {
		if !filepath.IsLocal(name) {
			return fmt.Errorf("file %q must be a relative path inside the scenario", name)
		}
	}

	if len(s.Assertions) == 0 && s.ExpectError == "" {
		return fmt.Errorf("assertions or expect_error is required")
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(a); err != nil {
			return fmt.Errorf("assertion %d: %w", i, err)
		}
	}

	return nil
}

func validateAssertion(a Assertion) error {
	switch a.Type {
	case AssertMatchedRows, AssertDivergences:
		if a.Count < 0 {
			return fmt.Errorf("%s count must be non-negative", a.Type)
		}
	case AssertColumns, AssertUnmatched, AssertOutput:
	case "":
		return fmt.Errorf("type is required")
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
	return nil
}
