package cli

import (
	"errors"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/roach88/haystack/internal/config"
	"github.com/roach88/haystack/internal/pipeline"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	OutPath string

	// IDGenerator allows overriding the run ID generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	IDGenerator pipeline.IDGenerator
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <job-file>",
		Short: "Run an extraction described by a job file",
		Long: `Run an extraction described by a YAML (.yaml, .yml) or CUE (.cue) job file.

Relative paths in the job are resolved against the job file's directory.

Example job:
  haystack: { path: genes.gtf, delim: tab }
  needle:   { path: loci.xlsx }
  haystack_col: gene_id
  needle_col: XLOC_id
  split: { col: "8" }
  out_path: extracted.tsv

Examples:
  haystack run job.yaml
  haystack run job.cue --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJob(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.OutPath, "out_path", "o", "", "override the job's output file")

	return cmd
}

func runJob(opts *RunOptions, path string, cmd *cobra.Command) error {
	job, err := config.LoadJob(path)
	if err != nil {
		code := ErrCodeConfig
		if errors.Is(err, fs.ErrNotExist) {
			code = ErrCodeNotFound
		}
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		if opts.Format == "json" {
			if outErr := formatter.Error(code, err.Error(), nil); outErr != nil {
				return outErr
			}
		}
		return WrapExitError(ExitCommandError, "failed to load job", err)
	}

	if opts.OutPath != "" {
		job.OutPath = opts.OutPath
	}

	return extract(cmd, opts.RootOptions, *job, opts.IDGenerator)
}
