package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oxc-go/oxc-core/internal/modulelexer"
	"github.com/oxc-go/oxc-core/internal/parser"
)

func newModlexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modlex [files...]",
		Short: "Report the ESM import/export surface of one or more files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				contents, err := readSource(path)
				if err != nil {
					return err
				}
				program, msgs := parser.Parse(path, contents, resolveSourceType(path))
				printMsgs(msgs)

				result := modulelexer.Lex(program)
				fmt.Printf("%s: module_syntax=%v facade=%v\n", path, result.HasModuleSyntax, result.Facade)
				for _, imp := range result.Imports {
					kind := "static"
					if imp.IsDynamic {
						kind = "dynamic"
					}
					fmt.Printf("  import %s (%s)\n", imp.Source, kind)
				}
				for _, exp := range result.Exports {
					fmt.Printf("  export %s\n", exp.Name)
				}
			}
			return nil
		},
	}
	return cmd
}
