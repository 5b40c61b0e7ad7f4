package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/haystack/internal/testutil"
)

func TestRunCommand_YAMLJob(t *testing.T) {
	dir, _, _ := writeInputs(t)
	job := testutil.WriteFile(t, dir, "job.yaml", `haystack: { path: haystack.csv, header: true }
needle: { path: needle.csv, header: true }
haystack_col: id
needle_col: id
out_path: found.csv
`)

	stdout, _, err := executeRoot(t, "run", job)
	require.NoError(t, err)

	assert.Contains(t, stdout, "The following entries could not be extracted (1/2):\ng3\n")
	assert.Equal(t, "id,x\ng2,2\n", testutil.ReadFile(t, filepath.Join(dir, "found.csv")))
}

func TestRunCommand_CUEJobWithOutOverride(t *testing.T) {
	dir, _, _ := writeInputs(t)
	job := testutil.WriteFile(t, dir, "job.cue", `haystack: { path: "haystack.csv", header: true }
needle: { path: "needle.csv", header: true }
haystack_col: "id"
needle_col: "#0"
`)
	outPath := filepath.Join(t.TempDir(), "override.csv")

	_, _, err := executeRoot(t, "run", job, "-o", outPath)
	require.NoError(t, err)

	assert.Equal(t, "id,x\ng2,2\n", testutil.ReadFile(t, outPath))
	assert.NoFileExists(t, filepath.Join(dir, "extracted.csv"))
}

func TestRunCommand_JSONUsesFixedRunID(t *testing.T) {
	dir, _, _ := writeInputs(t)
	job := testutil.WriteFile(t, dir, "job.yaml", `haystack: { path: haystack.csv, header: true }
needle: { path: needle.csv, header: true }
haystack_col: id
needle_col: id
`)

	opts := &RunOptions{
		RootOptions: &RootOptions{Format: "json"},
		IDGenerator: testutil.NewFixedIDGenerator("run-7"),
	}
	cmd := NewRunCommand(opts.RootOptions)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	require.NoError(t, runJob(opts, job, cmd))

	want := `{"data":{"columns":["id","x"],"divergences":[],"haystack_rows":2,"matched_rows":1,` +
		`"needle_rows":2,"out_path":"` + filepath.Join(dir, "extracted.csv") + `","run_id":"run-7",` +
		`"semantics":"set","unmatched":["g3"]},"status":"ok"}` + "\n"
	assert.Equal(t, want, out.String())
}

func TestRunCommand_InvalidJob(t *testing.T) {
	dir := t.TempDir()
	job := testutil.WriteFile(t, dir, "job.yaml", "haystack: { path: h.csv }\nneedle_column: id\n")

	_, _, err := executeRoot(t, "run", job)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "failed to load job")
}

func TestRunCommand_MissingArg(t *testing.T) {
	_, _, err := executeRoot(t, "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}

func TestRunCommand_MissingJobFileJSON(t *testing.T) {
	stdout, _, err := executeRoot(t, "run", filepath.Join(t.TempDir(), "nope.yaml"), "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, `"code":"E006"`)
}
