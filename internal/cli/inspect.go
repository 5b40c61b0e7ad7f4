package cli

import (
	"context"
	"fmt"
	"io"

	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/roach88/haystack/internal/table"
	"github.com/roach88/haystack/internal/tableio"
)

// InspectOptions holds flags for the inspect command.
type InspectOptions struct {
	*RootOptions
	Delim  string
	Header bool
	Sheet  string
	Table  string
	Raw    bool
	Rows   int
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InspectOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the columns and first rows of an input file",
		Long: `Load a file exactly as extract would and print its columns, inferred
value kinds and first rows. Useful for checking column references and
delimiter settings before a run.

Examples:
  haystack inspect genes.gtf --delim tab
  haystack inspect loci.xlsx --sheet Sheet2 --rows 5
  haystack inspect data.sqlite --table samples --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Delim, "delim", ",", `field delimiter ("tab" for tabs)`)
	cmd.Flags().BoolVar(&opts.Header, "header", false, "first line is a header")
	cmd.Flags().StringVar(&opts.Sheet, "sheet", "", "Excel sheet (default: first sheet)")
	cmd.Flags().StringVar(&opts.Table, "table", "", "SQLite table (default: first table)")
	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "read every cell as text, without type inference")
	cmd.Flags().IntVarP(&opts.Rows, "rows", "n", 10, "number of rows to show")

	return cmd
}

func runInspect(opts *InspectOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	delim, err := tableio.ParseDelimiter(opts.Delim)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid delimiter", err)
	}
	if opts.Rows < 0 {
		return NewExitError(ExitCommandError, "--rows must be non-negative")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	t, err := tableio.Load(ctx, tableio.Source{
		Path:   path,
		Delim:  delim,
		Header: opts.Header,
		Sheet:  opts.Sheet,
		Table:  opts.Table,
		Raw:    opts.Raw,
	})
	if err != nil {
		return reportError(formatter, err)
	}

	n := min(opts.Rows, t.Len())
	formatter.VerboseLog("%s: %d rows, %d columns", path, t.Len(), t.Width())

	if opts.Format == "json" {
		return formatter.Canonical(inspectMap(t, n), "")
	}
	renderTable(formatter.Writer, t, n)
	return nil
}

// inspectMap describes the first n rows of t as plain values.
func inspectMap(t *table.Table, n int) map[string]any {
	columns := make([]any, t.Width())
	for j, name := range t.Columns() {
		columns[j] = map[string]any{
			"name": name,
			"kind": columnKind(t, j),
		}
	}

	rows := make([]any, n)
	for i := 0; i < n; i++ {
		cells := make([]any, t.Width())
		for j := range cells {
			cells[j] = table.Format(t.Cell(i, j))
		}
		rows[i] = cells
	}

	return map[string]any{
		"columns":    columns,
		"rows":       rows,
		"total_rows": t.Len(),
	}
}

// renderTable prints the first n rows of t with a header of column names and
// their kinds.
func renderTable(w io.Writer, t *table.Table, n int) {
	tw := prettytable.NewWriter()
	tw.SetOutputMirror(w)

	style := prettytable.StyleLight
	style.Format.Header = text.FormatDefault
	style.Format.Footer = text.FormatDefault
	tw.SetStyle(style)

	header := make(prettytable.Row, t.Width())
	kinds := make(prettytable.Row, t.Width())
	for j, name := range t.Columns() {
		header[j] = name
		kinds[j] = columnKind(t, j)
	}
	tw.AppendHeader(header)
	tw.AppendHeader(kinds)

	for i := 0; i < n; i++ {
		row := make(prettytable.Row, t.Width())
		for j := range row {
			row[j] = table.Format(t.Cell(i, j))
		}
		tw.AppendRow(row)
	}
	tw.AppendFooter(prettytable.Row{fmt.Sprintf("%d of %d rows", n, t.Len())})

	tw.Render()
}

// columnKind is the kind shared by every present cell of column j, "mixed"
// when they differ, or "null" when the column is empty.
func columnKind(t *table.Table, j int) string {
	kind := "null"
	for i := 0; i < t.Len(); i++ {
		v := t.Cell(i, j)
		if table.IsNull(v) {
			continue
		}
		k := table.Kind(v)
		switch kind {
		case "null":
			kind = k
		case k:
		default:
			return "mixed"
		}
	}
	return kind
}
