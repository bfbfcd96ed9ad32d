package minifier

import "github.com/oxc-go/oxc-core/internal/ast"

// joinVarDecls implements spec.md §4.4's "Join vars": adjacent declarations
// of the same var/let/const kind merge into a single statement, e.g.
// "var a; var b = 1;" -> "var a, b = 1;". Declarations separated by any
// other statement are left alone since merging across one would reorder an
// intervening side effect.
func joinVarDecls(stmts []ast.Stmt) ([]ast.Stmt, bool) {
	changed := false
	out := stmts[:0:0]
	for _, s := range stmts {
		if decl, ok := s.Data.(*ast.SVarDecl); ok && len(out) > 0 {
			if prev, ok := out[len(out)-1].Data.(*ast.SVarDecl); ok && prev.Kind == decl.Kind && prev.IsExported == decl.IsExported {
				prev.Decls = append(prev.Decls, decl.Decls...)
				changed = true
				continue
			}
		}
		out = append(out, s)
	}
	return out, changed
}
