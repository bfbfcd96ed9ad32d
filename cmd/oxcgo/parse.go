package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oxc-go/oxc-core/internal/logger"
	"github.com/oxc-go/oxc-core/internal/parser"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [files...]",
		Short: "Parse one or more files and report syntax diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hadError := false
			for _, path := range args {
				source, err := readSource(path)
				if err != nil {
					return err
				}
				program, msgs := parser.Parse(path, source, resolveSourceType(path))
				printMsgs(msgs)
				for _, m := range msgs {
					if m.Kind == logger.Error {
						hadError = true
					}
				}
				if program != nil {
					fmt.Printf("%s: %d top-level statements\n", path, len(program.Body))
				}
			}
			if hadError {
				return fmt.Errorf("parsing failed")
			}
			return nil
		},
	}
	return cmd
}
