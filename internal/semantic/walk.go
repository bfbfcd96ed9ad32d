package semantic

import "github.com/oxc-go/oxc-core/internal/ast"

// walkStmt is the second phase of Build: scopes were already created and
// pre-populated by hoistStmts, so this pass only needs to push new block
// scopes where the grammar requires one, declare block-scoped catch/for
// bindings that hoistStmts does not reach, and turn every identifier
// occurrence into a Reference.
func (b *builder) walkStmt(s *ast.Stmt) {
	switch d := s.Data.(type) {
	case *ast.SExpr:
		b.walkExpr(&d.Value, false)
	case *ast.SBlock:
		b.inBlockScope(func(scope ast.ScopeId) {
			b.hoistLexicalOnly(d.Body, scope)
			for i := range d.Body {
				b.walkStmt(&d.Body[i])
			}
		})
	case *ast.SVarDecl:
		for i := range d.Decls {
			if d.Decls[i].Value != nil {
				b.walkExpr(d.Decls[i].Value, false)
			}
		}
	case *ast.SFunctionDecl:
		b.walkFunction(&d.Fn)
	case *ast.SClassDecl:
		b.walkClass(&d.Class)
	case *ast.SReturn:
		if d.Value != nil {
			b.walkExpr(d.Value, false)
		}
	case *ast.SIf:
		b.walkExpr(&d.Test, false)
		b.walkStmt(&d.Yes)
		if d.No.Data != nil {
			b.walkStmt(&d.No)
		}
	case *ast.SFor:
		b.inScope(ScopeFor, func(scope ast.ScopeId) {
			if d.Init.Data != nil {
				if vd, ok := d.Init.Data.(*ast.SVarDecl); ok && vd.Kind != ast.VarVar {
					for i := range vd.Decls {
						b.declareBinding(scope, &vd.Decls[i].Binding, varKindFlags(vd.Kind))
					}
				}
				b.walkStmt(&d.Init)
			}
			if d.Test != nil {
				b.walkExpr(d.Test, false)
			}
			if d.Update != nil {
				b.walkExpr(d.Update, false)
			}
			b.walkStmt(&d.Body)
		})
	case *ast.SForInOf:
		b.inScope(ScopeFor, func(scope ast.ScopeId) {
			if vd, ok := d.Init.Data.(*ast.SVarDecl); ok && vd.Kind != ast.VarVar {
				for i := range vd.Decls {
					b.declareBinding(scope, &vd.Decls[i].Binding, varKindFlags(vd.Kind))
				}
			} else {
				b.walkStmt(&d.Init)
			}
			b.walkExpr(&d.Value, false)
			b.walkStmt(&d.Body)
		})
	case *ast.SWhile:
		b.walkExpr(&d.Test, false)
		b.walkStmt(&d.Body)
	case *ast.SDoWhile:
		b.walkStmt(&d.Body)
		b.walkExpr(&d.Test, false)
	case *ast.SThrow:
		b.walkExpr(&d.Value, false)
	case *ast.STry:
		b.inBlockScope(func(scope ast.ScopeId) {
			b.hoistLexicalOnly(d.Block, scope)
			for i := range d.Block {
				b.walkStmt(&d.Block[i])
			}
		})
		if d.Catch != nil {
			b.inScope(ScopeCatch, func(scope ast.ScopeId) {
				if d.Catch.Binding != nil {
					b.declareBinding(scope, d.Catch.Binding, SymbolCatchParam)
				}
				b.hoistLexicalOnly(d.Catch.Body, scope)
				for i := range d.Catch.Body {
					b.walkStmt(&d.Catch.Body[i])
				}
			})
		}
		if d.Finally != nil {
			b.inBlockScope(func(scope ast.ScopeId) {
				b.hoistLexicalOnly(*d.Finally, scope)
				for i := range *d.Finally {
					b.walkStmt(&(*d.Finally)[i])
				}
			})
		}
	case *ast.SSwitch:
		b.walkExpr(&d.Test, false)
		b.inBlockScope(func(scope ast.ScopeId) {
			for ci := range d.Cases {
				b.hoistLexicalOnly(d.Cases[ci].Body, scope)
			}
			for ci := range d.Cases {
				if d.Cases[ci].Test != nil {
					b.walkExpr(d.Cases[ci].Test, false)
				}
				for i := range d.Cases[ci].Body {
					b.walkStmt(&d.Cases[ci].Body[i])
				}
			}
		})
	case *ast.SLabel:
		b.walkStmt(&d.Body)
	case *ast.SExportNamedDecl:
		if d.Decl.Data != nil {
			b.walkStmt(&d.Decl)
		}
	case *ast.SExportDefaultDecl:
		b.walkStmt(&d.Value)
	}
}

// hoistLexicalOnly declares let/const/class bindings introduced directly at
// this block level; var bindings and function declarations were already
// declared against an enclosing scope by hoistStmts.
func (b *builder) hoistLexicalOnly(stmts []ast.Stmt, scope ast.ScopeId) {
	for i := range stmts {
		switch d := stmts[i].Data.(type) {
		case *ast.SVarDecl:
			if d.Kind != ast.VarVar {
				for j := range d.Decls {
					b.declareBinding(scope, &d.Decls[j].Binding, varKindFlags(d.Kind))
				}
			}
		case *ast.SClassDecl:
			if d.Class.Name != nil {
				b.declare(scope, *d.Class.Name, SymbolClass, stmts[i].Span)
			}
		}
	}
}

func (b *builder) inScope(kind ScopeKind, f func(ast.ScopeId)) {
	parent := b.currentScope
	scope := b.pushScope(kind, parent)
	b.currentScope = scope
	f(scope)
	b.currentScope = parent
}

func (b *builder) inBlockScope(f func(ast.ScopeId)) { b.inScope(ScopeBlock, f) }

func (b *builder) walkFunction(fn *ast.Function) {
	parentScope, parentFn := b.currentScope, b.currentFnScope
	scope := b.pushScope(ScopeFunction, parentScope)
	b.currentScope = scope
	b.currentFnScope = scope

	for i := range fn.Params {
		b.declareBinding(scope, &fn.Params[i].Binding, SymbolParameter)
		if fn.Params[i].DefaultValue != nil {
			b.walkExpr(fn.Params[i].DefaultValue, false)
		}
	}
	b.hoistStmts(fn.Body, scope)
	for i := range fn.Body {
		b.walkStmt(&fn.Body[i])
	}

	b.currentScope, b.currentFnScope = parentScope, parentFn
}

func (b *builder) walkClass(c *ast.Class) {
	if c.Extends != nil {
		b.walkExpr(c.Extends, false)
	}
	for i := range c.Properties {
		m := &c.Properties[i]
		if m.IsComputed {
			b.walkExpr(&m.Key.Value, false)
		}
		if m.Value != nil {
			if fn, ok := m.Value.Data.(*ast.EFunction); ok {
				b.walkFunction(&fn.Fn)
			} else {
				b.walkExpr(m.Value, false)
			}
		}
	}
}

// walkExpr resolves every identifier occurrence to a Reference. isWrite is
// true for the target of any assignment (plain or compound) and of ++/--,
// matching spec.md's "distinguish read vs. write occurrences" requirement.
// Resolution marks a symbol SymbolUsed for writes as well as reads.
func (b *builder) walkExpr(e *ast.Expr, isWrite bool) {
	if e == nil || e.Data == nil {
		return
	}
	switch d := e.Data.(type) {
	case *ast.EIdentifier:
		d.ReferenceId = b.addReference(d.Name, e.Span, isWrite)
	case *ast.ETemplate:
		if d.Tag != nil {
			b.walkExpr(d.Tag, false)
		}
		for i := range d.Parts {
			b.walkExpr(&d.Parts[i], false)
		}
	case *ast.EArray:
		for i := range d.Items {
			b.walkExpr(&d.Items[i], isWrite)
		}
	case *ast.EObject:
		for i := range d.Properties {
			p := &d.Properties[i]
			if p.IsComputed {
				b.walkExpr(&p.Key.Value, false)
			}
			if p.Value != nil {
				b.walkExpr(p.Value, isWrite)
			}
			if p.Initializer != nil {
				b.walkExpr(p.Initializer, false)
			}
		}
	case *ast.ESpread:
		b.walkExpr(&d.Value, false)
	case *ast.EFunction:
		b.walkFunction(&d.Fn)
	case *ast.EArrow:
		parentScope, parentFn := b.currentScope, b.currentFnScope
		scope := b.pushScope(ScopeFunction, parentScope)
		b.currentScope, b.currentFnScope = scope, scope
		for i := range d.Params {
			b.declareBinding(scope, &d.Params[i].Binding, SymbolParameter)
			if d.Params[i].DefaultValue != nil {
				b.walkExpr(d.Params[i].DefaultValue, false)
			}
		}
		if d.PreferExpr && d.Expr != nil {
			b.walkExpr(d.Expr, false)
		} else {
			b.hoistStmts(d.Body, scope)
			for i := range d.Body {
				b.walkStmt(&d.Body[i])
			}
		}
		b.currentScope, b.currentFnScope = parentScope, parentFn
	case *ast.EClass:
		b.walkClass(&d.Class)
	case *ast.EUnary:
		isAssignOp := d.Op == ast.UnOpPreInc || d.Op == ast.UnOpPreDec || d.Op == ast.UnOpPostInc || d.Op == ast.UnOpPostDec
		b.walkExpr(&d.Value, isAssignOp)
	case *ast.EBinary:
		b.walkExpr(&d.Left, false)
		b.walkExpr(&d.Right, false)
	case *ast.EConditional:
		b.walkExpr(&d.Test, false)
		b.walkExpr(&d.Yes, false)
		b.walkExpr(&d.No, false)
	case *ast.ECall:
		b.walkExpr(&d.Target, false)
		for i := range d.Args {
			b.walkExpr(&d.Args[i], false)
		}
	case *ast.ENew:
		b.walkExpr(&d.Target, false)
		for i := range d.Args {
			b.walkExpr(&d.Args[i], false)
		}
	case *ast.EDot:
		b.walkExpr(&d.Target, false)
	case *ast.EIndex:
		b.walkExpr(&d.Target, false)
		b.walkExpr(&d.Index, false)
	case *ast.EAssign:
		b.walkExpr(&d.Left, true)
		b.walkExpr(&d.Right, false)
	case *ast.ESequence:
		for i := range d.Items {
			b.walkExpr(&d.Items[i], false)
		}
	case *ast.EYield:
		if d.Value != nil {
			b.walkExpr(d.Value, false)
		}
	case *ast.EAwait:
		b.walkExpr(&d.Value, false)
	case *ast.EImportCall:
		b.walkExpr(&d.Arg, false)
		if d.Assertion != nil {
			b.walkExpr(d.Assertion, false)
		}
	case *ast.EAnnotation:
		b.walkExpr(&d.Value, isWrite)
	case *ast.EJSXElement:
		for i := range d.Attributes {
			if d.Attributes[i].Value != nil {
				b.walkExpr(d.Attributes[i].Value, false)
			}
		}
		for i := range d.Children {
			b.walkJSXChild(&d.Children[i])
		}
	}
}

func (b *builder) walkJSXChild(c *ast.JSXChild) {
	switch d := c.Data.(type) {
	case *ast.JSXExprChild:
		b.walkExpr(&d.Value, false)
	case *ast.JSXElemChild:
		b.walkExpr(&d.Value, false)
	}
}
