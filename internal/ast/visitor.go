package ast

// Visitor receives pre-order Enter and post-order Exit callbacks for every
// statement and expression node. It plays the role spec.md §2 assigns to
// "visitor generation": here it is hand-written instead of codegen'd, but
// every pass (semantic builder, linter, minifier) shares this single walk
// instead of re-deriving its own tree recursion, which is the property that
// matters for the shared-AST invariants in spec.md §3.
//
// Any hook may be nil; WalkProgram skips nil hooks.
type Visitor struct {
	EnterStmt func(*Stmt)
	ExitStmt  func(*Stmt)
	EnterExpr func(*Expr)
	ExitExpr  func(*Expr)
}

func (v *Visitor) enterStmt(s *Stmt) {
	if v.EnterStmt != nil {
		v.EnterStmt(s)
	}
}
func (v *Visitor) exitStmt(s *Stmt) {
	if v.ExitStmt != nil {
		v.ExitStmt(s)
	}
}
func (v *Visitor) enterExpr(e *Expr) {
	if v.EnterExpr != nil {
		v.EnterExpr(e)
	}
}
func (v *Visitor) exitExpr(e *Expr) {
	if v.ExitExpr != nil {
		v.ExitExpr(e)
	}
}

// WalkProgram walks every statement in program.Body in source order.
func WalkProgram(p *Program, v *Visitor) {
	for i := range p.Body {
		WalkStmt(&p.Body[i], v)
	}
}

// WalkStmts walks a statement list, e.g. a block or function body.
func WalkStmts(stmts []Stmt, v *Visitor) {
	for i := range stmts {
		WalkStmt(&stmts[i], v)
	}
}

// WalkStmt walks a single statement and its children.
func WalkStmt(s *Stmt, v *Visitor) {
	if s == nil || s.Data == nil {
		return
	}
	v.enterStmt(s)
	switch d := s.Data.(type) {
	case *SExpr:
		WalkExpr(&d.Value, v)
	case *SBlock:
		WalkStmts(d.Body, v)
	case *SEmpty, *SDebugger, *SDirective:
		// leaves
	case *SVarDecl:
		for i := range d.Decls {
			walkBinding(&d.Decls[i].Binding, v)
			if d.Decls[i].Value != nil {
				WalkExpr(d.Decls[i].Value, v)
			}
		}
	case *SFunctionDecl:
		walkFunction(&d.Fn, v)
	case *SClassDecl:
		walkClass(&d.Class, v)
	case *SReturn:
		if d.Value != nil {
			WalkExpr(d.Value, v)
		}
	case *SIf:
		WalkExpr(&d.Test, v)
		WalkStmt(&d.Yes, v)
		if d.No.Data != nil {
			WalkStmt(&d.No, v)
		}
	case *SFor:
		if d.Init.Data != nil {
			WalkStmt(&d.Init, v)
		}
		if d.Test != nil {
			WalkExpr(d.Test, v)
		}
		if d.Update != nil {
			WalkExpr(d.Update, v)
		}
		WalkStmt(&d.Body, v)
	case *SForInOf:
		WalkStmt(&d.Init, v)
		WalkExpr(&d.Value, v)
		WalkStmt(&d.Body, v)
	case *SWhile:
		WalkExpr(&d.Test, v)
		WalkStmt(&d.Body, v)
	case *SDoWhile:
		WalkStmt(&d.Body, v)
		WalkExpr(&d.Test, v)
	case *SBreak, *SContinue:
		// leaves (labels carry no sub-nodes)
	case *SThrow:
		WalkExpr(&d.Value, v)
	case *STry:
		WalkStmts(d.Block, v)
		if d.Catch != nil {
			if d.Catch.Binding != nil {
				walkBinding(d.Catch.Binding, v)
			}
			WalkStmts(d.Catch.Body, v)
		}
		if d.Finally != nil {
			WalkStmts(*d.Finally, v)
		}
	case *SSwitch:
		WalkExpr(&d.Test, v)
		for i := range d.Cases {
			if d.Cases[i].Test != nil {
				WalkExpr(d.Cases[i].Test, v)
			}
			WalkStmts(d.Cases[i].Body, v)
		}
	case *SLabel:
		WalkStmt(&d.Body, v)
	case *SImportDecl:
		// specifiers carry no sub-expressions
	case *SExportNamedDecl:
		if d.Decl.Data != nil {
			WalkStmt(&d.Decl, v)
		}
	case *SExportDefaultDecl:
		WalkStmt(&d.Value, v)
	case *SExportAllDecl:
		// leaf
	}
	v.exitStmt(s)
}

// WalkExpr walks a single expression and its children.
func WalkExpr(e *Expr, v *Visitor) {
	if e == nil || e.Data == nil {
		return
	}
	v.enterExpr(e)
	switch d := e.Data.(type) {
	case *ENumber, *EBigInt, *EString, *EBoolean, *ENull, *EUndefined,
		*EIdentifier, *EPrivateIdentifier, *EThis, *ESuper, *ERegExp,
		*EMissing, *EImportMeta:
		// leaves
	case *ETemplate:
		if d.Tag != nil {
			WalkExpr(d.Tag, v)
		}
		for i := range d.Parts {
			WalkExpr(&d.Parts[i], v)
		}
	case *EArray:
		for i := range d.Items {
			WalkExpr(&d.Items[i], v)
		}
	case *EObject:
		for i := range d.Properties {
			walkProperty(&d.Properties[i], v)
		}
	case *ESpread:
		WalkExpr(&d.Value, v)
	case *EFunction:
		walkFunction(&d.Fn, v)
	case *EArrow:
		for i := range d.Params {
			walkParam(&d.Params[i], v)
		}
		if d.PreferExpr && d.Expr != nil {
			WalkExpr(d.Expr, v)
		} else {
			WalkStmts(d.Body, v)
		}
	case *EClass:
		walkClass(&d.Class, v)
	case *EUnary:
		WalkExpr(&d.Value, v)
	case *EBinary:
		WalkExpr(&d.Left, v)
		WalkExpr(&d.Right, v)
	case *EConditional:
		WalkExpr(&d.Test, v)
		WalkExpr(&d.Yes, v)
		WalkExpr(&d.No, v)
	case *ECall:
		WalkExpr(&d.Target, v)
		for i := range d.Args {
			WalkExpr(&d.Args[i], v)
		}
	case *ENew:
		WalkExpr(&d.Target, v)
		for i := range d.Args {
			WalkExpr(&d.Args[i], v)
		}
	case *EDot:
		WalkExpr(&d.Target, v)
	case *EIndex:
		WalkExpr(&d.Target, v)
		WalkExpr(&d.Index, v)
	case *EAssign:
		WalkExpr(&d.Left, v)
		WalkExpr(&d.Right, v)
	case *ESequence:
		for i := range d.Items {
			WalkExpr(&d.Items[i], v)
		}
	case *EYield:
		if d.Value != nil {
			WalkExpr(d.Value, v)
		}
	case *EAwait:
		WalkExpr(&d.Value, v)
	case *EImportCall:
		WalkExpr(&d.Arg, v)
		if d.Assertion != nil {
			WalkExpr(d.Assertion, v)
		}
	case *EAnnotation:
		WalkExpr(&d.Value, v)
	case *EJSXElement:
		for i := range d.Attributes {
			if d.Attributes[i].Value != nil {
				WalkExpr(d.Attributes[i].Value, v)
			}
		}
		for i := range d.Children {
			walkJSXChild(&d.Children[i], v)
		}
	}
	v.exitExpr(e)
}

func walkBinding(b *Binding, v *Visitor) {
	if b == nil || b.Data == nil {
		return
	}
	switch d := b.Data.(type) {
	case *BIdentifier:
	case *BArray:
		for i := range d.Items {
			walkBinding(&d.Items[i].Binding, v)
			if d.Items[i].DefaultValue != nil {
				WalkExpr(d.Items[i].DefaultValue, v)
			}
		}
	case *BObject:
		for i := range d.Properties {
			walkBinding(&d.Properties[i].Value, v)
			if d.Properties[i].DefaultValue != nil {
				WalkExpr(d.Properties[i].DefaultValue, v)
			}
		}
	}
}

func walkParam(p *Param, v *Visitor) {
	walkBinding(&p.Binding, v)
	if p.DefaultValue != nil {
		WalkExpr(p.DefaultValue, v)
	}
}

func walkFunction(fn *Function, v *Visitor) {
	for i := range fn.Params {
		walkParam(&fn.Params[i], v)
	}
	WalkStmts(fn.Body, v)
}

func walkClass(c *Class, v *Visitor) {
	if c.Extends != nil {
		WalkExpr(c.Extends, v)
	}
	for i := range c.Properties {
		if c.Properties[i].Value != nil {
			WalkExpr(c.Properties[i].Value, v)
		}
	}
}

func walkProperty(p *Property, v *Visitor) {
	if p.IsComputed {
		WalkExpr(&p.Key.Value, v)
	}
	if p.Value != nil {
		WalkExpr(p.Value, v)
	}
	if p.Initializer != nil {
		WalkExpr(p.Initializer, v)
	}
}

func walkJSXChild(c *JSXChild, v *Visitor) {
	switch d := c.Data.(type) {
	case *JSXText:
	case *JSXExprChild:
		WalkExpr(&d.Value, v)
	case *JSXElemChild:
		WalkExpr(&d.Value, v)
	}
}
