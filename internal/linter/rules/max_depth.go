package rules

import (
	"fmt"

	"github.com/oxc-go/oxc-core/internal/ast"
	"github.com/oxc-go/oxc-core/internal/linter"
)

// MaxDepth flags blocks nested more than Limit levels deep, the eslint rule
// named in SPEC_FULL.md §10 as present in original_source but not spelled
// out in spec.md's body. Depth counts nested if/for/while/do-while/switch/
// try bodies, not plain blocks on their own, matching ESLint's "max-depth"
// semantics (a bare `{ ... }` doesn't add a level, a control-flow body
// does).
type MaxDepth struct {
	Limit int
}

func NewMaxDepth(limit int) MaxDepth {
	if limit <= 0 {
		limit = 4
	}
	return MaxDepth{Limit: limit}
}

func (MaxDepth) ID() string                      { return "max-depth" }
func (MaxDepth) Plugin() string                  { return "eslint" }
func (MaxDepth) DefaultSeverity() linter.Severity { return linter.SeverityWarn }

func (r MaxDepth) Run(ctx *linter.RuleContext) {
	depth := 0
	var visit func(s *ast.Stmt)
	visit = func(s *ast.Stmt) {
		if s == nil || s.Data == nil {
			return
		}
		nests := false
		var bodies []*ast.Stmt
		switch d := s.Data.(type) {
		case *ast.SIf:
			nests = true
			bodies = append(bodies, &d.Yes)
			if d.No.Data != nil {
				bodies = append(bodies, &d.No)
			}
		case *ast.SFor:
			nests = true
			bodies = append(bodies, &d.Body)
		case *ast.SForInOf:
			nests = true
			bodies = append(bodies, &d.Body)
		case *ast.SWhile:
			nests = true
			bodies = append(bodies, &d.Body)
		case *ast.SDoWhile:
			nests = true
			bodies = append(bodies, &d.Body)
		case *ast.SSwitch:
			nests = true
			for ci := range d.Cases {
				for i := range d.Cases[ci].Body {
					bodies = append(bodies, &d.Cases[ci].Body[i])
				}
			}
		case *ast.STry:
			nests = true
			for i := range d.Block {
				bodies = append(bodies, &d.Block[i])
			}
			if d.Catch != nil {
				for i := range d.Catch.Body {
					bodies = append(bodies, &d.Catch.Body[i])
				}
			}
			if d.Finally != nil {
				for i := range *d.Finally {
					bodies = append(bodies, &(*d.Finally)[i])
				}
			}
		case *ast.SBlock:
			for i := range d.Body {
				visit(&d.Body[i])
			}
			return
		case *ast.SLabel:
			visit(&d.Body)
			return
		}

		if nests {
			depth++
			if depth > r.Limit {
				ctx.Report(s.Span, fmt.Sprintf("blocks are nested too deeply (%d deep, max %d)", depth, r.Limit))
			}
			for _, b := range bodies {
				if block, ok := b.Data.(*ast.SBlock); ok {
					for i := range block.Body {
						visit(&block.Body[i])
					}
				} else {
					visit(b)
				}
			}
			depth--
		}
	}
	for i := range ctx.Program.Body {
		visit(&ctx.Program.Body[i])
	}
}
