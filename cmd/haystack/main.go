// haystack extracts the rows of a large table whose search column holds a
// value listed in a smaller table.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/roach88/haystack/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	cmd.SetArgs(cli.NormalizeArgs(os.Args[1:]))

	if err := cmd.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		_, _ = errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
