package rules

import (
	"github.com/oxc-go/oxc-core/internal/ast"
	"github.com/oxc-go/oxc-core/internal/linter"
)

// NoExtraBind flags a .bind(...) call on a function expression or arrow
// that never references "this", since the bind has no effect. Grounded on
// ESLint's "no-extra-bind" (named in SPEC_FULL.md §10 alongside max-depth
// and no-labels as an original_source-present, spec.md-text-absent rule).
type NoExtraBind struct{}

func (NoExtraBind) ID() string                      { return "no-extra-bind" }
func (NoExtraBind) Plugin() string                  { return "eslint" }
func (NoExtraBind) DefaultSeverity() linter.Severity { return linter.SeverityWarn }

func (NoExtraBind) Run(ctx *linter.RuleContext) {
	ast.WalkProgram(ctx.Program, &ast.Visitor{
		EnterExpr: func(e *ast.Expr) {
			call, ok := e.Data.(*ast.ECall)
			if !ok || call.IsNew {
				return
			}
			dot, ok := call.Target.Data.(*ast.EDot)
			if !ok || dot.Name.String() != "bind" {
				return
			}
			if bindIsExtraneous(dot.Target) {
				ctx.Report(e.Span, "bind call does not need this context change")
			}
		},
	})
}

// bindIsExtraneous reports whether target is an arrow (whose "this" is
// lexical) or a function expression whose body never references "this" —
// the precondition under which calling .bind() on it is a no-op.
func bindIsExtraneous(target ast.Expr) bool {
	if _, ok := target.Data.(*ast.EArrow); ok {
		return true
	}
	fn, ok := target.Data.(*ast.EFunction)
	if !ok {
		return false
	}
	found := false
	for i := range fn.Fn.Body {
		ast.WalkStmt(&fn.Fn.Body[i], &ast.Visitor{
			EnterExpr: func(e *ast.Expr) {
				if _, ok := e.Data.(*ast.EThis); ok {
					found = true
				}
			},
		})
	}
	return !found
}
