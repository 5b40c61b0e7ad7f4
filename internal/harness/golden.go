package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/haystack/internal/canonical"
)

// Snapshot renders a successful scenario result as canonical JSON.
// The run ID is left out and out_path is the job's relative path, so the
// bytes do not depend on the temporary directory the scenario ran in.
func Snapshot(scenario *Scenario, result *Result) ([]byte, error) {
	if result.Report == nil {
		return nil, fmt.Errorf("scenario %s has no report to snapshot", scenario.Name)
	}

	report := result.Report.ToCanonicalMap(true)
	report["out_path"] = result.OutPath

	return canonical.Marshal(map[string]any{
		"scenario_name": scenario.Name,
		"report":        report,
		"output":        result.Output,
	})
}

// RunWithGolden executes a scenario and compares its snapshot against a
// golden file stored in testdata/golden/{scenario.Name}.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if the snapshot doesn't match.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	if err := AssertGolden(t, scenario, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an already computed result against its golden file.
func AssertGolden(t *testing.T, scenario *Scenario, result *Result) error {
	t.Helper()

	data, err := Snapshot(scenario, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return nil
}

// GoldenPath returns the golden file that belongs to a scenario file:
// golden/{name}.golden next to it.
func GoldenPath(scenarioFile string) string {
	dir := filepath.Dir(scenarioFile)
	base := filepath.Base(scenarioFile)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, "golden", name+".golden")
}

// UpdateGolden writes the scenario's snapshot to goldenPath.
func UpdateGolden(goldenPath string, scenario *Scenario, result *Result) error {
	data, err := Snapshot(scenario, result)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(goldenPath), 0755); err != nil {
		return fmt.Errorf("failed to create golden directory: %w", err)
	}
	if err := os.WriteFile(goldenPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write golden file: %w", err)
	}
	return nil
}

// CompareGolden reports whether the scenario's snapshot equals goldenPath.
func CompareGolden(goldenPath string, scenario *Scenario, result *Result) (bool, error) {
	golden, err := os.ReadFile(goldenPath)
	if err != nil {
		return false, fmt.Errorf("failed to read golden file: %w", err)
	}

	current, err := Snapshot(scenario, result)
	if err != nil {
		return false, err
	}
	return string(golden) == string(current), nil
}
