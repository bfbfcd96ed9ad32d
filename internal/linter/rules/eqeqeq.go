package rules

import (
	"github.com/oxc-go/oxc-core/internal/ast"
	"github.com/oxc-go/oxc-core/internal/linter"
)

// Eqeqeq flags loose equality/inequality operators in favor of their strict
// counterparts, ESLint's "eqeqeq" rule. A comparison against a literal
// "null" is exempted under its default "smart" mode (x == null is the
// idiomatic null-or-undefined check), mirroring ESLint's own default
// carve-out rather than the stricter "always" mode.
type Eqeqeq struct{}

func (Eqeqeq) ID() string                      { return "eqeqeq" }
func (Eqeqeq) Plugin() string                  { return "eslint" }
func (Eqeqeq) DefaultSeverity() linter.Severity { return linter.SeverityWarn }

func (Eqeqeq) Run(ctx *linter.RuleContext) {
	ast.WalkProgram(ctx.Program, &ast.Visitor{
		EnterExpr: func(e *ast.Expr) {
			bin, ok := e.Data.(*ast.EBinary)
			if !ok {
				return
			}
			if bin.Op != ast.BinOpLooseEq && bin.Op != ast.BinOpLooseNe {
				return
			}
			if isNullLiteral(bin.Left) || isNullLiteral(bin.Right) {
				return
			}
			want := "==="
			if bin.Op == ast.BinOpLooseNe {
				want = "!=="
			}
			ctx.Report(e.Span, "expected a strict comparison operator ("+want+")")
		},
	})
}

func isNullLiteral(e ast.Expr) bool {
	_, ok := e.Data.(*ast.ENull)
	return ok
}
