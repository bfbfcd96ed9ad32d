// Command oxcgo is the command-line front end over the parser, semantic
// analyzer, linter, minifier, module lexer, and source-map codec packages.
// It replaces the teacher's hand-rolled pkg/cli flag parser with
// github.com/spf13/cobra, since a subcommand tree (parse/lint/minify/
// sourcemap/modlex/watch) fits cobra's command graph better than esbuild's
// single flat flag list built for one "compile" action (see DESIGN.md).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	root := &cobra.Command{
		Use:           "oxcgo",
		Short:         "Parse, lint, and minify JavaScript and TypeScript",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newParseCmd())
	root.AddCommand(newLintCmd())
	root.AddCommand(newMinifyCmd())
	root.AddCommand(newSourcemapCmd())
	root.AddCommand(newModlexCmd())
	root.AddCommand(newWatchCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
