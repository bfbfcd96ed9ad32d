package minifier

import "github.com/oxc-go/oxc-core/internal/ast"

// compressIf implements spec.md §4.4's "Minimise if-statements" suite. Test,
// Yes, and No have already been recursively compressed by the time this
// runs; it only rewrites the shape of the SIf itself (or replaces it with an
// equivalent SExpr).
func compressIf(s *ast.Stmt, d *ast.SIf, c *Context) {
	// "if (!a) X else Y" -> "if (a) Y else X": unwrap a leading negation so
	// the rules below only need to recognize the positive form.
	if neg, ok := stripNot(d.Test); ok && d.No.Data != nil {
		d.Test = neg
		d.Yes, d.No = d.No, d.Yes
		c.changed = true
	}

	yesEmpty := isNoOpStmt(d.Yes)
	noEmpty := d.No.Data == nil || isNoOpStmt(d.No)

	if d.No.Data != nil {
		if yesEmpty && noEmpty {
			*s = exprStatement(s.Span, d.Test)
			c.changed = true
			return
		}
		if yesEmpty {
			// "if (a) {} else b();" -> "a || b();"
			noExpr, ok := asExprStmt(d.No)
			if ok {
				*s = exprStatement(s.Span, orExpr(d.Test, noExpr))
				c.changed = true
				return
			}
		}
		if noEmpty {
			// "if (a) b(); else {}" -> "a && b();"
			yesExpr, ok := asExprStmt(d.Yes)
			if ok {
				*s = exprStatement(s.Span, andExpr(d.Test, yesExpr))
				c.changed = true
				return
			}
		}
		if !yesEmpty && !noEmpty {
			yesExpr, yOk := asExprStmt(d.Yes)
			noExpr, nOk := asExprStmt(d.No)
			if yOk && nOk {
				// "if (a) b(); else c();" -> "a ? b() : c();"
				*s = exprStatement(s.Span, ast.Expr{Span: s.Span, Data: &ast.EConditional{Test: d.Test, Yes: yesExpr, No: noExpr}})
				c.changed = true
				return
			}
		}
		return
	}

	// No "else" branch from here on.
	if yesEmpty {
		*s = exprStatement(s.Span, d.Test)
		c.changed = true
		return
	}

	if yesExpr, ok := asExprStmt(d.Yes); ok {
		if neg, ok := stripNot(d.Test); ok {
			// "if (!a) b();" -> "a || b();"
			*s = exprStatement(s.Span, orExpr(neg, yesExpr))
		} else {
			// "if (a) b();" -> "a && b();"
			*s = exprStatement(s.Span, andExpr(d.Test, yesExpr))
		}
		c.changed = true
		return
	}

	// "if (a) if (b) x;" -> "if (a && b) x;"
	if inner, ok := d.Yes.Data.(*ast.SIf); ok && inner.No.Data == nil {
		d.Test = andExpr(d.Test, inner.Test)
		d.Yes = inner.Yes
		c.changed = true
	}
}

// stripNot returns the operand of a leading logical "!" and true, or the
// zero Expr and false if test isn't of that shape.
func stripNot(test ast.Expr) (ast.Expr, bool) {
	if u, ok := test.Data.(*ast.EUnary); ok && u.Op == ast.UnOpNot {
		return u.Value, true
	}
	return ast.Expr{}, false
}

// isNoOpStmt reports whether s is a statement that can be dropped with no
// observable effect: absent, an empty statement, or an empty block.
func isNoOpStmt(s ast.Stmt) bool {
	if s.Data == nil {
		return true
	}
	switch d := s.Data.(type) {
	case *ast.SEmpty:
		return true
	case *ast.SBlock:
		return len(d.Body) == 0
	}
	return false
}

// asExprStmt reduces a statement to the single expression it evaluates for
// its side effects, if it is (or reduces to) exactly one expression
// statement, the precondition every "if/expr" folding rule needs.
func asExprStmt(s ast.Stmt) (ast.Expr, bool) {
	switch d := s.Data.(type) {
	case *ast.SExpr:
		return d.Value, true
	case *ast.SBlock:
		if len(d.Body) == 1 {
			return asExprStmt(d.Body[0])
		}
	}
	return ast.Expr{}, false
}

func exprStatement(span ast.Span, e ast.Expr) ast.Stmt {
	return ast.Stmt{Span: span, Data: &ast.SExpr{Value: e}}
}

func andExpr(a, b ast.Expr) ast.Expr {
	return ast.Expr{Span: ast.NewSpan(a.Span.Start, b.Span.End), Data: &ast.EBinary{Op: ast.BinOpLogicalAnd, Left: a, Right: b}}
}

func orExpr(a, b ast.Expr) ast.Expr {
	return ast.Expr{Span: ast.NewSpan(a.Span.Start, b.Span.End), Data: &ast.EBinary{Op: ast.BinOpLogicalOr, Left: a, Right: b}}
}

func negate(e ast.Expr) ast.Expr {
	if inner, ok := stripNot(e); ok {
		return inner
	}
	return ast.Expr{Span: e.Span, Data: &ast.EUnary{Op: ast.UnOpNot, Value: e}}
}

func blockOf(stmts []ast.Stmt) ast.Stmt {
	if len(stmts) == 0 {
		return ast.Stmt{Data: &ast.SEmpty{}}
	}
	span := ast.NewSpan(stmts[0].Span.Start, stmts[len(stmts)-1].Span.End)
	return ast.Stmt{Span: span, Data: &ast.SBlock{Body: stmts}}
}

// invertEarlyReturn implements the early-return-to-else inversion the
// teacher's mangleStmts performs: "if (x) return; REST" (with no code after
// the if inside its own body) becomes "if (!x) { REST }" when REST is the
// remainder of the same statement list, so a later compressIf pass and the
// logical-assignment fold in expr_passes.go can collapse the result further
// on the next fixed-point iteration (spec.md §8 seed scenario 2).
func invertEarlyReturn(stmts []ast.Stmt) ([]ast.Stmt, bool) {
	for i := range stmts {
		ifStmt, ok := stmts[i].Data.(*ast.SIf)
		if !ok || ifStmt.No.Data != nil {
			continue
		}
		if !isBareReturn(ifStmt.Yes) {
			continue
		}
		if i+1 >= len(stmts) {
			continue
		}
		rest := append([]ast.Stmt{}, stmts[i+1:]...)
		newIf := ast.Stmt{Span: stmts[i].Span, Data: &ast.SIf{Test: negate(ifStmt.Test), Yes: blockOf(rest)}}
		out := append([]ast.Stmt{}, stmts[:i]...)
		out = append(out, newIf)
		return out, true
	}
	return stmts, false
}

func isBareReturn(s ast.Stmt) bool {
	if r, ok := s.Data.(*ast.SReturn); ok {
		return r.Value == nil
	}
	if blk, ok := s.Data.(*ast.SBlock); ok && len(blk.Body) == 1 {
		return isBareReturn(blk.Body[0])
	}
	return false
}
