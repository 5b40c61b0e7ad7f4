package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/roach88/haystack/internal/canonical"
	"github.com/roach88/haystack/internal/config"
	"github.com/roach88/haystack/internal/pipeline"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Scenario failures
	ExitCommandError = 2 // Command error (bad flags, unreadable input, unknown column, etc.)
)

// Error code constants, unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeConfig      = "E002" // Invalid flags or job file
	ErrCodeLoadFailed  = "E003" // Input file could not be read
	ErrCodeColumn      = "E004" // Column reference did not resolve
	ErrCodeWriteFailed = "E005" // Output file write error
	ErrCodeNotFound    = "E006" // Path not found
	ErrCodeTestFailed  = "E007" // One or more scenarios failed
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// classifyError maps a run error to an error code and a short message.
func classifyError(err error) (code, message string) {
	var cfgErr *config.Error
	var stageErr *pipeline.StageError
	switch {
	case errors.As(err, &cfgErr):
		return ErrCodeConfig, "invalid configuration"
	case pipeline.IsLoadError(err) && errors.Is(err, fs.ErrNotExist):
		return ErrCodeNotFound, "input file not found"
	case pipeline.IsLoadError(err):
		return ErrCodeLoadFailed, "failed to read input"
	case pipeline.IsRefError(err):
		return ErrCodeColumn, "column not found"
	case errors.As(err, &stageErr) && stageErr.Stage == pipeline.StageWrite:
		return ErrCodeWriteFailed, "failed to write output"
	default:
		return ErrCodeGeneric, "extraction failed"
	}
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for progress and diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`              // "E001", "E002", etc.
	Message string `json:"message"`           // human-readable message
	Details any    `json:"details,omitempty"` // additional context
}

// Canonical outputs a successful result whose payload is a canonical map.
// JSON output is byte-stable; text output falls back to text.
func (f *OutputFormatter) Canonical(data map[string]any, text string) error {
	if f.Format != "json" {
		_, err := io.WriteString(f.Writer, text)
		return err
	}

	out, err := canonical.Marshal(map[string]any{
		"status": "ok",
		"data":   data,
	})
	if err != nil {
		return err
	}
	out = append(out, '\n')
	_, err = f.Writer.Write(out)
	return err
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Uses ErrWriter if set, otherwise falls back to Writer.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.GetErrWriter(), format+"\n", args...)
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}

// ProgressWriter returns where progress lines go: alongside text output, or
// on the diagnostic writer when stdout carries JSON.
func (f *OutputFormatter) ProgressWriter() io.Writer {
	if f.Format == "json" {
		return f.GetErrWriter()
	}
	return f.Writer
}
