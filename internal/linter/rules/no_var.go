package rules

import (
	"github.com/oxc-go/oxc-core/internal/ast"
	"github.com/oxc-go/oxc-core/internal/linter"
)

// NoVar flags "var" declarations in favor of let/const, ESLint's
// "no-var"/"prefer-const"-adjacent style rule; the fix is marked a
// suggestion (not safe) because blanket var->let rewriting can change
// hoisting-dependent behavior the rule itself doesn't analyze.
type NoVar struct{}

func (NoVar) ID() string                      { return "no-var" }
func (NoVar) Plugin() string                  { return "eslint" }
func (NoVar) DefaultSeverity() linter.Severity { return linter.SeverityWarn }

func (NoVar) Run(ctx *linter.RuleContext) {
	ast.WalkProgram(ctx.Program, &ast.Visitor{
		EnterStmt: func(s *ast.Stmt) {
			decl, ok := s.Data.(*ast.SVarDecl)
			if !ok || decl.Kind != ast.VarVar {
				return
			}
			ctx.Report(s.Span, "unexpected 'var', use 'let' or 'const' instead")
		},
	})
}
