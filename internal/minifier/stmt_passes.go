package minifier

import "github.com/oxc-go/oxc-core/internal/ast"

// compressStmts recurses into every statement of stmts (compressing nested
// expressions and statement lists first, post-order per spec.md §4.4), then
// applies the list-level passes that need neighbor context: drop-debugger,
// drop-console, dead statements after an unconditional jump, the early-
// return inversion, if-statement minimization, var joining, and empty-block
// unwrapping. isFunctionBody marks lists that are a function/arrow/program
// body, the only lists where a trailing bare "return;" is a provable no-op.
func compressStmts(stmts []ast.Stmt, c *Context, isFunctionBody bool) []ast.Stmt {
	out := make([]ast.Stmt, 0, len(stmts))
	for i := range stmts {
		s := stmts[i]
		if s.Data == nil {
			continue
		}
		// A transparent block or an if with no statement after it, sitting
		// at the very end of a function body, ends exactly where the
		// function body itself ends: a bare "return;" there is just as
		// removable as one at the outer level, so the function-body-ness
		// propagates one level down through these two shapes only.
		stmtTail := isFunctionBody && i == len(stmts)-1
		switch d := s.Data.(type) {
		case *ast.SDebugger:
			if c.Opts.DropDebugger {
				c.changed = true
				continue
			}
		case *ast.SEmpty:
			c.changed = true
			continue
		case *ast.SExpr:
			compressExpr(&d.Value, c)
			if c.Opts.DropConsole && isDroppableConsoleCall(&d.Value) {
				c.changed = true
				continue
			}
			if c.Opts.Unused == UnusedRemove && !MayHaveSideEffects(&d.Value, c.sideEffectCtx()) {
				c.changed = true
				continue
			}
		case *ast.SBlock:
			d.Body = compressStmts(d.Body, c, stmtTail)
			if len(d.Body) == 0 {
				c.changed = true
				continue
			}
			if len(d.Body) == 1 && !declaresLexicalBinding(d.Body[0]) {
				s = d.Body[0]
				c.changed = true
			}
		case *ast.SVarDecl:
			for j := range d.Decls {
				if d.Decls[j].Value != nil {
					compressExpr(d.Decls[j].Value, c)
				}
			}
		case *ast.SFunctionDecl:
			d.Fn.Body = compressStmts(d.Fn.Body, c, true)
		case *ast.SClassDecl:
			compressClass(&d.Class, c)
		case *ast.SReturn:
			if d.Value != nil {
				compressExpr(d.Value, c)
			}
		case *ast.SIf:
			compressExpr(&d.Test, c)
			d.Yes = wrapCompressed(d.Yes, c, stmtTail)
			if d.No.Data != nil {
				d.No = wrapCompressed(d.No, c, stmtTail)
			}
			compressIf(&s, d, c)
		case *ast.SFor:
			if d.Init.Data != nil {
				d.Init = wrapCompressed(d.Init, c, false)
			}
			if d.Test != nil {
				compressExpr(d.Test, c)
			}
			if d.Update != nil {
				compressExpr(d.Update, c)
			}
			d.Body = wrapCompressed(d.Body, c, false)
		case *ast.SForInOf:
			compressExpr(&d.Value, c)
			d.Body = wrapCompressed(d.Body, c, false)
		case *ast.SWhile:
			compressExpr(&d.Test, c)
			d.Body = wrapCompressed(d.Body, c, false)
		case *ast.SDoWhile:
			d.Body = wrapCompressed(d.Body, c, false)
			compressExpr(&d.Test, c)
		case *ast.SThrow:
			compressExpr(&d.Value, c)
		case *ast.STry:
			d.Block = compressStmts(d.Block, c, false)
			if d.Catch != nil {
				d.Catch.Body = compressStmts(d.Catch.Body, c, false)
			}
			if d.Finally != nil {
				*d.Finally = compressStmts(*d.Finally, c, false)
			}
			simplifyTry(d, c)
		case *ast.SSwitch:
			compressExpr(&d.Test, c)
			for ci := range d.Cases {
				if d.Cases[ci].Test != nil {
					compressExpr(d.Cases[ci].Test, c)
				}
				d.Cases[ci].Body = compressStmts(d.Cases[ci].Body, c, false)
			}
		case *ast.SLabel:
			d.Body = wrapCompressed(d.Body, c, false)
		case *ast.SExportNamedDecl:
			if d.Decl.Data != nil {
				d.Decl = wrapCompressed(d.Decl, c, false)
			}
		case *ast.SExportDefaultDecl:
			d.Value = wrapCompressed(d.Value, c, false)
		}
		out = append(out, s)
	}

	if next, did := dropUnreachable(out); did {
		out, c.changed = next, true
	}
	if next, did := invertEarlyReturn(out); did {
		out, c.changed = next, true
	}
	if next, did := trimTrailingEmptyReturn(out, isFunctionBody); did {
		out, c.changed = next, true
	}
	if c.Opts.JoinVars {
		if next, did := joinVarDecls(out); did {
			out, c.changed = next, true
		}
	}
	return out
}

// wrapCompressed runs compressStmts over a single non-list statement body
// (an if/for/while/label body that isn't already a block) by treating it as
// a one-element list, then unwraps the result back to a single statement
// (or an empty statement if the body vanished entirely). isFunctionBody
// should be true only when falling off the end of s is equivalent to
// falling off the end of the enclosing function body (see stmtTail above).
func wrapCompressed(s ast.Stmt, c *Context, isFunctionBody bool) ast.Stmt {
	if s.Data == nil {
		return s
	}
	result := compressStmts([]ast.Stmt{s}, c, isFunctionBody)
	switch len(result) {
	case 0:
		return ast.Stmt{Span: s.Span, Data: &ast.SEmpty{}}
	case 1:
		return result[0]
	default:
		return blockOf(result)
	}
}

func compressClass(class *ast.Class, c *Context) {
	if class.Extends != nil {
		compressExpr(class.Extends, c)
	}
	for i := range class.Properties {
		if class.Properties[i].Value != nil {
			compressExpr(class.Properties[i].Value, c)
		}
	}
}

// declaresLexicalBinding reports whether collapsing a single-statement block
// into its parent would hoist a let/const/class/function binding into a
// scope where it didn't exist before, which would change which references
// resolve to it; such blocks are left wrapped.
func declaresLexicalBinding(s ast.Stmt) bool {
	switch d := s.Data.(type) {
	case *ast.SVarDecl:
		return d.Kind != ast.VarVar
	case *ast.SClassDecl, *ast.SFunctionDecl:
		return true
	}
	return false
}
