// Package modulelexer scans a parsed Program for its ESM import/export
// surface in a single pass, producing the same imports/exports/facade/
// has_module_syntax summary the JS ecosystem's "es-module-lexer" and the
// Rust oxc_module_lexer crate compute. Grounded on
// original_source/crates/oxc_module_lexer/src/lib.rs: same field names and
// "facade" definition (a module that does nothing but re-export), but this
// version walks the AST this repo already built instead of re-lexing the
// source text, since the parser/semantic passes already paid that cost.
package modulelexer

import "github.com/oxc-go/oxc-core/internal/ast"

type ImportSpan struct {
	Source     string
	Span       ast.Span
	IsDynamic  bool
	IsTypeOnly bool
	// IsMeta marks a bare "import.meta" occurrence (spec.md §4.6: recorded
	// as an import with the meta discriminator, no specifier).
	IsMeta bool
}

type ExportSpan struct {
	Name string
	Span ast.Span
}

// Result mirrors the oxc_module_lexer crate's Output type.
type Result struct {
	Imports         []ImportSpan
	Exports         []ExportSpan
	Facade          bool
	HasModuleSyntax bool
}

// Lex performs the single pre-order walk over program.Body.
func Lex(program *ast.Program) Result {
	var r Result
	// Facade starts true and is cleared the moment a top-level statement
	// other than a module declaration or a plain (possibly unexported)
	// declaration is seen, matching oxc_module_lexer's visit_statement:
	// "!matches!(stmt, Statement::ModuleDeclaration(..) | Statement::Declaration(..))".
	// Imports and bare "export { x }" re-export lists never clear it; an
	// inline "export const/function/class ..." declaration does, because
	// that's indistinguishable from ordinary module-body code.
	r.Facade = true

	for i := range program.Body {
		switch d := program.Body[i].Data.(type) {
		case *ast.SImportDecl:
			r.HasModuleSyntax = true
			r.Imports = append(r.Imports, ImportSpan{Source: d.Source.String(), Span: d.SourceSpan, IsTypeOnly: d.IsTypeOnly})
		case *ast.SExportNamedDecl:
			r.HasModuleSyntax = true
			if d.Source != nil {
				r.Imports = append(r.Imports, ImportSpan{Source: d.Source.String(), IsTypeOnly: d.IsTypeOnly})
				for _, spec := range d.Specifiers {
					r.Exports = append(r.Exports, ExportSpan{Name: spec.Exported.String(), Span: spec.Span})
				}
			} else {
				if d.Decl.Data != nil {
					r.Facade = false
					r.Exports = append(r.Exports, declExports(d.Decl)...)
				}
				for _, spec := range d.Specifiers {
					r.Exports = append(r.Exports, ExportSpan{Name: spec.Exported.String(), Span: spec.Span})
				}
			}
		case *ast.SExportDefaultDecl:
			r.HasModuleSyntax = true
			r.Facade = false
			r.Exports = append(r.Exports, ExportSpan{Name: "default", Span: program.Body[i].Span})
		case *ast.SExportAllDecl:
			r.HasModuleSyntax = true
			r.Imports = append(r.Imports, ImportSpan{Source: d.Source.String()})
			name := "*"
			if d.Alias != nil {
				name = d.Alias.String()
			}
			r.Exports = append(r.Exports, ExportSpan{Name: name, Span: d.Span})
		case *ast.SVarDecl, *ast.SFunctionDecl, *ast.SClassDecl:
			// A plain (unexported) declaration keeps the module a facade
			// candidate; it still might hide a dynamic import() though.
			scanDynamicImports(&program.Body[i], &r)
		default:
			r.Facade = false
			scanDynamicImports(&program.Body[i], &r)
		}
	}

	return r
}

func declExports(s ast.Stmt) []ExportSpan {
	switch d := s.Data.(type) {
	case *ast.SVarDecl:
		var out []ExportSpan
		for i := range d.Decls {
			collectBindingNames(&d.Decls[i].Binding, &out, s.Span)
		}
		return out
	case *ast.SFunctionDecl:
		if d.Fn.Name != nil {
			return []ExportSpan{{Name: d.Fn.Name.String(), Span: s.Span}}
		}
	case *ast.SClassDecl:
		if d.Class.Name != nil {
			return []ExportSpan{{Name: d.Class.Name.String(), Span: s.Span}}
		}
	}
	return nil
}

func collectBindingNames(b *ast.Binding, out *[]ExportSpan, span ast.Span) {
	if b == nil || b.Data == nil {
		return
	}
	switch d := b.Data.(type) {
	case *ast.BIdentifier:
		*out = append(*out, ExportSpan{Name: d.Name.String(), Span: span})
	case *ast.BArray:
		for i := range d.Items {
			collectBindingNames(&d.Items[i].Binding, out, span)
		}
	case *ast.BObject:
		for i := range d.Properties {
			collectBindingNames(&d.Properties[i].Value, out, span)
		}
	}
}

// scanDynamicImports finds import(...) and import.meta occurrences nested
// inside ordinary statements, which the module lexer reports the same as
// static imports (minus a resolvable specifier when the argument isn't a
// string literal).
func scanDynamicImports(s *ast.Stmt, r *Result) {
	ast.WalkStmt(s, &ast.Visitor{
		EnterExpr: func(e *ast.Expr) {
			switch call := e.Data.(type) {
			case *ast.EImportCall:
				r.HasModuleSyntax = true
				source := ""
				if str, ok := call.Arg.Data.(*ast.EString); ok {
					source = utf16ToString(str.Value)
				}
				r.Imports = append(r.Imports, ImportSpan{Source: source, Span: e.Span, IsDynamic: true})
			case *ast.EImportMeta:
				r.HasModuleSyntax = true
				r.Imports = append(r.Imports, ImportSpan{Span: e.Span, IsMeta: true})
			}
		},
	})
}

func utf16ToString(units []uint16) string {
	b := make([]rune, 0, len(units))
	for _, u := range units {
		b = append(b, rune(u))
	}
	return string(b)
}
