package rules

import (
	"github.com/oxc-go/oxc-core/internal/ast"
	"github.com/oxc-go/oxc-core/internal/linter"
)

// NoDebugger flags "debugger;" statements, the same condition the
// minifier's drop_debugger compress option removes silently; the lint rule
// surfaces it instead of silently deleting it when minification is off.
type NoDebugger struct{}

func (NoDebugger) ID() string                      { return "no-debugger" }
func (NoDebugger) Plugin() string                  { return "eslint" }
func (NoDebugger) DefaultSeverity() linter.Severity { return linter.SeverityWarn }

func (NoDebugger) Run(ctx *linter.RuleContext) {
	ast.WalkProgram(ctx.Program, &ast.Visitor{
		EnterStmt: func(s *ast.Stmt) {
			if _, ok := s.Data.(*ast.SDebugger); ok {
				ctx.Report(s.Span, "unexpected 'debugger' statement", linter.Fix{
					Span:        s.Span,
					Replacement: "",
					Kind:        linter.FixSafe,
					Title:       "Remove debugger statement",
				})
			}
		},
	})
}
