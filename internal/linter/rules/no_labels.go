package rules

import (
	"fmt"

	"github.com/oxc-go/oxc-core/internal/ast"
	"github.com/oxc-go/oxc-core/internal/linter"
)

// NoLabels flags any labeled statement. ESLint's "no-labels" (named
// alongside max-depth and no-extra-bind in SPEC_FULL.md §10) allows
// labeling loops used only by a break/continue with the same label in some
// configurations, but the plain "no labels at all" variant is the simpler
// and more commonly enabled one, so that's what this rule implements.
type NoLabels struct{}

func (NoLabels) ID() string                      { return "no-labels" }
func (NoLabels) Plugin() string                  { return "eslint" }
func (NoLabels) DefaultSeverity() linter.Severity { return linter.SeverityWarn }

func (NoLabels) Run(ctx *linter.RuleContext) {
	ast.WalkProgram(ctx.Program, &ast.Visitor{
		EnterStmt: func(s *ast.Stmt) {
			label, ok := s.Data.(*ast.SLabel)
			if !ok {
				return
			}
			ctx.Report(s.Span, fmt.Sprintf("unexpected label '%s'", label.Name.String()))
		},
	})
}
