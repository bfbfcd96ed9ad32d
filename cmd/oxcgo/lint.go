package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oxc-go/oxc-core/internal/helpers"
	"github.com/oxc-go/oxc-core/internal/linter"
	"github.com/oxc-go/oxc-core/internal/logger"
	"github.com/oxc-go/oxc-core/internal/parser"
	"github.com/oxc-go/oxc-core/internal/semantic"
)

func newLintCmd() *cobra.Command {
	var configPath string
	var fix bool

	cmd := &cobra.Command{
		Use:   "lint [files...]",
		Short: "Run the rule-plugin lint engine over one or more files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			reg := buildRegistry(cfg)

			total := 0
			for _, path := range args {
				contents, err := readSource(path)
				if err != nil {
					return err
				}
				program, msgs := parser.Parse(path, contents, resolveSourceType(path))
				printMsgs(msgs)

				model := semantic.Build(program, resolveSourceType(path))
				source := &logger.Source{PrettyPath: path, Contents: contents}

				fileReg := reg
				if len(cfg.Overrides) > 0 {
					fileReg = linter.ResolveForPath(reg, cfg.Overrides, path)
				}
				findings := linter.Run(fileReg, program, model, source)
				total += len(findings)
				printFindings(findings)

				if fix && len(findings) > 0 {
					accepted := linter.FixAll(findings, linter.FixSuggestion)
					if len(accepted) > 0 {
						fixed := linter.ApplyFixes(contents, accepted)
						if err := writeSource(path, fixed); err != nil {
							return err
						}
						fmt.Printf("%s: applied %d fix(es)\n", path, len(accepted))
					}
				}
			}
			if total > 0 {
				return fmt.Errorf("%d finding(s) across %s", total, helpers.QuotedFileList(args))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to an oxcgo config file (.json or .yaml)")
	cmd.Flags().BoolVar(&fix, "fix", false, "apply safe and suggested fixes in place")
	return cmd
}
