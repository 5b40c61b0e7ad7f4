package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/haystack/internal/attr"
	"github.com/roach88/haystack/internal/config"
	"github.com/roach88/haystack/internal/pipeline"
)

// ExtractOptions holds flags for the extract command.
type ExtractOptions struct {
	*RootOptions
	Job      config.Job
	SplitCol string
	SplitSep string
	Raw      bool

	// IDGenerator allows overriding the run ID generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	IDGenerator pipeline.IDGenerator
}

// NewExtractCommand creates the extract command.
func NewExtractCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExtractOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract haystack rows matching needle values",
		Long: `Extract the haystack rows whose search column holds a value from the
needle's search column, write them to --out_path and list the needle values
that matched nothing.

Column references are names by default. Use "#N" or "index:N" for the column
at zero-based position N, and "name:X" for a column literally named X.
Headerless files name their columns "0", "1", ...

The short two-letter aliases (-ih, -in, -hc, -nc, -hd, -nd, -hh, -nh, -sc, -sd)
are accepted, and extract is implied when the first argument is a flag.

Examples:
  haystack extract --input_haystack genes.gtf --haystack_delim tab \
    --split_col 8 --haystack_col gene_id \
    --input_needle loci.csv --needle_header --needle_col XLOC_id
  haystack -ih big.csv -hh -hc id -in ids.txt -nc 0 -o found.csv`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtractCommand(opts, cmd)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Job.Haystack.Path, "input_haystack", "", "haystack file (required)")
	f.StringVar(&opts.Job.Needle.Path, "input_needle", "", "needle file (required)")
	f.StringVar(&opts.Job.HaystackCol, "haystack_col", "", "haystack search column (required)")
	f.StringVar(&opts.Job.NeedleCol, "needle_col", "", "needle search column (required)")
	f.StringVar(&opts.Job.Haystack.Delim, "haystack_delim", ",", `haystack delimiter ("tab" for tabs)`)
	f.StringVar(&opts.Job.Needle.Delim, "needle_delim", ",", `needle delimiter ("tab" for tabs)`)
	f.BoolVar(&opts.Job.Haystack.Header, "haystack_header", false, "haystack has a header line")
	f.BoolVar(&opts.Job.Needle.Header, "needle_header", false, "needle has a header line")
	f.StringVar(&opts.Job.Haystack.Table, "haystack_table", "", "SQLite table of the haystack (default: first table)")
	f.StringVar(&opts.Job.Needle.Table, "needle_table", "", "SQLite table of the needle (default: first table)")
	f.StringVar(&opts.Job.Haystack.Sheet, "haystack_sheet", "", "Excel sheet of the haystack (default: first sheet)")
	f.StringVar(&opts.Job.Needle.Sheet, "needle_sheet", "", "Excel sheet of the needle (default: first sheet)")
	f.StringVar(&opts.SplitCol, "split_col", "", "attribute column to split into columns before matching")
	f.StringVar(&opts.SplitSep, "split_delim", attr.DefaultDelimiter, "attribute pair delimiter")
	f.StringVarP(&opts.Job.OutPath, "out_path", "o", pipeline.DefaultOutPath, "output file")
	f.StringVar(&opts.Job.Unmatched, "unmatched", "set", "unmatched counting (set|multiset|duplicates)")
	f.BoolVar(&opts.Raw, "raw", false, "read every cell as text, without type inference")

	for _, name := range []string{"input_haystack", "input_needle", "haystack_col", "needle_col"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func runExtractCommand(opts *ExtractOptions, cmd *cobra.Command) error {
	job := opts.Job
	if opts.SplitCol != "" {
		job.Split = &config.Split{Col: opts.SplitCol, Delim: opts.SplitSep}
	}
	job.Haystack.Raw = opts.Raw
	job.Needle.Raw = opts.Raw

	return extract(cmd, opts.RootOptions, job, opts.IDGenerator)
}

// extract runs one job and reports the outcome. Shared by extract and run.
func extract(cmd *cobra.Command, rootOpts *RootOptions, job config.Job, ids pipeline.IDGenerator) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	cfg, err := job.ToConfig()
	if err != nil {
		return reportError(formatter, err)
	}

	runOpts := []pipeline.Option{
		pipeline.WithProgress(formatter.ProgressWriter()),
		pipeline.WithLogger(newLogger(cmd.ErrOrStderr(), rootOpts.Verbose)),
	}
	if ids != nil {
		runOpts = append(runOpts, pipeline.WithIDGenerator(ids))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	report, err := pipeline.Run(ctx, cfg, runOpts...)
	if err != nil {
		return reportError(formatter, err)
	}

	formatter.VerboseLog("run %s: %d of %d haystack rows extracted", report.RunID, report.MatchedRows, report.HaystackRows)
	return formatter.Canonical(report.ToCanonicalMap(false), report.Summary())
}

// reportError emits err in JSON mode and converts it to a command error.
func reportError(formatter *OutputFormatter, err error) error {
	code, message := classifyError(err)
	if formatter.Format == "json" {
		if outErr := formatter.Error(code, fmt.Sprintf("%s: %v", message, err), nil); outErr != nil {
			return outErr
		}
	}
	return WrapExitError(ExitCommandError, message, err)
}
