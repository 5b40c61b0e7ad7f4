package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/roach88/haystack/internal/pipeline"
	"github.com/roach88/haystack/internal/testutil"
)

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall test success.
	Pass bool `json:"pass"`

	// Errors contains assertion failure messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Report is the pipeline report, nil when the run failed.
	Report *pipeline.Report `json:"-"`

	// OutPath is the job's output path relative to the working directory.
	OutPath string `json:"out_path"`

	// Output is the content of the written output file.
	Output string `json:"output"`

	// Err is the run error of an expect_error scenario.
	Err error `json:"-"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Run executes a scenario and returns the result.
//
// Each scenario runs in a fresh temporary directory that is removed
// afterwards. The returned error covers setup problems and unexpected run
// failures; assertion failures are reported in the Result.
func Run(scenario *Scenario) (*Result, error) {
	dir, err := os.MkdirTemp("", "haystack-scenario-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create work directory: %w", err)
	}
	defer os.RemoveAll(dir)

	for name, content := range scenario.Files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory for %s: %w", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	outPath := scenario.Job.OutPath
	if outPath == "" {
		outPath = pipeline.DefaultOutPath
	}
	job := scenario.Job
	job.OutPath = outPath
	job = job.ResolvePaths(dir)

	cfg, err := job.ToConfig()
	if err != nil {
		return nil, fmt.Errorf("invalid job: %w", err)
	}

	result := NewResult()
	result.OutPath = outPath

	report, err := pipeline.Run(context.Background(), cfg,
		pipeline.WithIDGenerator(testutil.NewFixedIDGenerator(scenario.RunID)),
		pipeline.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if scenario.ExpectError != "" {
		checkExpectedError(scenario.ExpectError, err, result)
		return result, nil
	}
	if err != nil {
		return nil, fmt.Errorf("run failed: %w", err)
	}
	result.Report = report

	output, err := os.ReadFile(cfg.OutPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read output: %w", err)
	}
	result.Output = string(output)

	for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(msg)
	}

	return result, nil
}

func checkExpectedError(want string, err error, result *Result) {
	result.Err = err
	if err == nil {
		result.AddError(fmt.Sprintf("expected error containing %q, run succeeded", want))
		return
	}
	if !strings.Contains(err.Error(), want) {
		result.AddError(fmt.Sprintf("expected error containing %q, got %q", want, err.Error()))
		return
	}

	var stageErr *pipeline.StageError
	if !errors.As(err, &stageErr) {
		result.AddError(fmt.Sprintf("expected a stage error, got %T", err))
	}
}
