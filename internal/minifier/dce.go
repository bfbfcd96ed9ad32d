package minifier

import "github.com/oxc-go/oxc-core/internal/ast"

// dropUnreachable implements spec.md §4.4's dead-code elimination: once a
// statement at this list's own level unconditionally transfers control
// (return/throw, or break/continue with no label), everything textually
// after it in the same list can never run and is removed. Loops are never
// treated as such a statement, infinite or not.
func dropUnreachable(stmts []ast.Stmt) ([]ast.Stmt, bool) {
	for i := range stmts {
		if !isUnconditionalJump(stmts[i]) {
			continue
		}
		if i+1 < len(stmts) {
			return stmts[:i+1], true
		}
	}
	return stmts, false
}

func isUnconditionalJump(s ast.Stmt) bool {
	switch d := s.Data.(type) {
	case *ast.SReturn, *ast.SThrow:
		return true
	case *ast.SBreak:
		return d.Label == nil
	case *ast.SContinue:
		return d.Label == nil
	}
	return false
}

// trimTrailingEmptyReturn drops a bare "return;" when it is the very last
// statement of a function body, since falling off the end of a function
// body already implicitly returns undefined.
func trimTrailingEmptyReturn(stmts []ast.Stmt, isFunctionBody bool) ([]ast.Stmt, bool) {
	if !isFunctionBody || len(stmts) == 0 {
		return stmts, false
	}
	last := stmts[len(stmts)-1]
	if r, ok := last.Data.(*ast.SReturn); ok && r.Value == nil {
		return stmts[:len(stmts)-1], true
	}
	return stmts, false
}

// simplifyTry removes an empty finally clause. The try itself is never
// unwrapped, even when its catch body is empty.
func simplifyTry(d *ast.STry, c *Context) {
	// An empty catch body still needs to exist to swallow a throw from
	// Block, and Block's own statements still need to run either way, so
	// the only always-safe simplification here is dropping a no-op finally.
	if d.Finally != nil && len(*d.Finally) == 0 {
		d.Finally = nil
		c.changed = true
	}
}
