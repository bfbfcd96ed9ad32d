package ast

// Expr is a node in the Expression discriminated union. Data's concrete type
// is one of the E* structs below; callers switch on it the same way the
// teacher's js_ast package does (a type switch over an interface), which
// the linter's rule dispatch relies on for branch-predictable traversal
// instead of reflection or a vtable per rule.
type Expr struct {
	Span Span
	Data E
}

// E is the marker interface implemented by every expression node.
type E interface{ isExpr() }

type (
	// ENumber is a numeric literal. Value is the parsed IEEE-754 double;
	// Raw preserves the original source text for cases (minifier digit
	// trimming, codegen) that need the exact spelling.
	ENumber struct {
		Value float64
		Raw   string
	}

	// EBigInt is an arbitrary-precision integer literal, e.g. "10n". Value
	// keeps the digits (without the trailing "n") in base-10 or whichever
	// base Base indicates.
	EBigInt struct {
		Value string
		Base  int
	}

	EString struct {
		Value []uint16 // UTF-16 code units, matching JS string semantics
	}

	EBoolean struct{ Value bool }
	ENull    struct{}
	EUndefined struct{}

	// EIdentifier is an IdentifierReference occurrence. ReferenceId is
	// filled in by the semantic pass; it is InvalidReferenceId until then.
	EIdentifier struct {
		Name        Atom
		ReferenceId ReferenceId
	}

	EPrivateIdentifier struct {
		Name        Atom
		ReferenceId ReferenceId
	}

	EThis  struct{}
	ESuper struct{}

	ERegExp struct {
		Pattern string
		Flags   string
	}

	// ETemplate represents both tagged and untagged template literals.
	// Parts[i] sits between Quasis[i] and Quasis[i+1]; len(Quasis) ==
	// len(Parts)+1.
	ETemplate struct {
		Tag    *Expr
		Quasis []TemplatePart
		Parts  []Expr
	}

	EArray struct {
		Items        []Expr // may contain *ESpread or *EMissing (elision)
		TrailingComma bool
	}

	// EMissing represents an elided array element, e.g. the hole in "[1,,3]".
	EMissing struct{}

	EObject struct {
		Properties []Property
	}

	ESpread struct{ Value Expr }

	// EFunction covers function expressions; arrows are EArrow.
	EFunction struct{ Fn Function }

	EArrow struct {
		Params     []Param
		Body       []Stmt
		PreferExpr bool // true when the body is a single concise expression
		Expr       *Expr
		IsAsync    bool
	}

	EClass struct{ Class Class }

	EUnary struct {
		Op    UnOp
		Value Expr
	}

	EBinary struct {
		Op    BinOp
		Left  Expr
		Right Expr
	}

	// EConditional is the ternary "test ? yes : no".
	EConditional struct {
		Test Expr
		Yes  Expr
		No   Expr
	}

	OptionalChain uint8

	// ECall is a function call, and also models optional-chain calls
	// ("a?.()") via OptionalChain, matching the teacher's representation.
	ECall struct {
		Target        Expr
		Args          []Expr
		OptionalChain OptionalChain
		IsNew         bool
		IsDirectEval  bool
	}

	// ENew is a "new Target(args)" expression, kept distinct from ECall so
	// minifier/value-type rules that only apply to plain calls don't need
	// to re-check IsNew everywhere.
	ENew struct {
		Target Expr
		Args   []Expr
	}

	// EDot is static member access, "target.name".
	EDot struct {
		Target        Expr
		Name          Atom
		OptionalChain OptionalChain
	}

	// EIndex is computed member access, "target[index]".
	EIndex struct {
		Target        Expr
		Index         Expr
		OptionalChain OptionalChain
	}

	EAssign struct {
		Op    BinOp // one of the BinOp*Assign values, or BinOpAssign
		Left  Expr
		Right Expr
	}

	ESequence struct{ Items []Expr }

	EYield struct {
		Value    *Expr
		Delegate bool
	}

	EAwait struct{ Value Expr }

	// EImportMeta is "import.meta".
	EImportMeta struct{}

	// EImportCall is a dynamic "import(...)" expression.
	EImportCall struct {
		Arg       Expr
		Assertion *Expr
	}

	// EAnnotation wraps a TypeScript-only node (as/satisfies/non-null) so
	// downstream passes that are not TypeScript-aware can unwrap to the
	// underlying JS expression in one step, mirroring the teacher's
	// EAnnotation escape hatch (used the same way in js_ast_helpers.go).
	EAnnotation struct {
		Value Expr
		Kind  TSAnnotationKind
		Type  *TSType // nil for non-null "!"
	}

	// EJSXElement is a JSX element or fragment.
	EJSXElement struct {
		TagName    Atom // empty for fragments ("<>...</>")
		Attributes []JSXAttribute
		Children   []JSXChild
		SelfClosing bool
	}
)

func (*ENumber) isExpr()            {}
func (*EBigInt) isExpr()            {}
func (*EString) isExpr()            {}
func (*EBoolean) isExpr()           {}
func (*ENull) isExpr()              {}
func (*EUndefined) isExpr()         {}
func (*EIdentifier) isExpr()        {}
func (*EPrivateIdentifier) isExpr() {}
func (*EThis) isExpr()              {}
func (*ESuper) isExpr()             {}
func (*ERegExp) isExpr()            {}
func (*ETemplate) isExpr()          {}
func (*EArray) isExpr()             {}
func (*EMissing) isExpr()           {}
func (*EObject) isExpr()            {}
func (*ESpread) isExpr()            {}
func (*EFunction) isExpr()          {}
func (*EArrow) isExpr()             {}
func (*EClass) isExpr()             {}
func (*EUnary) isExpr()             {}
func (*EBinary) isExpr()            {}
func (*EConditional) isExpr()       {}
func (*ECall) isExpr()              {}
func (*ENew) isExpr()               {}
func (*EDot) isExpr()               {}
func (*EIndex) isExpr()             {}
func (*EAssign) isExpr()            {}
func (*ESequence) isExpr()          {}
func (*EYield) isExpr()             {}
func (*EAwait) isExpr()             {}
func (*EImportMeta) isExpr()        {}
func (*EImportCall) isExpr()        {}
func (*EAnnotation) isExpr()        {}
func (*EJSXElement) isExpr()        {}

const (
	OptionalChainNone OptionalChain = iota
	OptionalChainStart              // "a?.b"
	OptionalChainContinue           // "a?.b.c"
)

type TemplatePart struct {
	Span Span
	Raw  string
	// Cooked is the decoded text, nil if the template has an invalid escape
	// (tagged templates may still reference Raw in that case).
	Cooked []uint16
}

// Property is one entry of an object literal or class body when Kind is
// a method/getter/setter, mirroring the teacher's Property struct.
type Property struct {
	Key        PropertyKey
	Value      *Expr
	Initializer *Expr // default value in destructuring patterns
	Kind       PropertyKind
	IsComputed bool
	IsStatic   bool
	IsSpread   bool
}

type PropertyKind uint8

const (
	PropertyNormal PropertyKind = iota
	PropertyGet
	PropertySet
	PropertyMethod
	PropertyShorthand
)

// PropertyKey is a property name: either a plain identifier/string/number
// literal, or (if IsComputed) an arbitrary expression.
type PropertyKey struct {
	Span  Span
	Value Expr
}

// Function describes the shared shape of function declarations and
// expressions.
type Function struct {
	Name       *Atom
	Params     []Param
	Body       []Stmt
	IsAsync    bool
	IsGenerator bool
}

type Param struct {
	Binding      Binding
	DefaultValue *Expr
	IsRest       bool
	TSType       *TSType
}

// Binding is a BindingPattern: an identifier, or a destructuring array/object
// pattern, recursively.
type Binding struct {
	Span Span
	Data B
}

type B interface{ isBinding() }

type (
	BIdentifier struct {
		Name     Atom
		SymbolId SymbolId
	}
	BArray struct {
		Items         []ArrayBindingItem
		HasRestElement bool
	}
	BObject struct {
		Properties     []ObjectBindingProperty
		HasRestElement bool
	}
)

func (*BIdentifier) isBinding() {}
func (*BArray) isBinding()      {}
func (*BObject) isBinding()     {}

type ArrayBindingItem struct {
	Binding      Binding
	DefaultValue *Expr
	IsRest       bool
}

type ObjectBindingProperty struct {
	Key          PropertyKey
	Value        Binding
	DefaultValue *Expr
	IsComputed   bool
	IsRest       bool
}

// Class is the shared shape of class declarations and expressions.
type Class struct {
	Name       *Atom
	Extends    *Expr
	Properties []ClassMember
}

type ClassMember struct {
	Key        PropertyKey
	Value      *Expr // method function expression, or field initializer
	Kind       PropertyKind
	IsStatic   bool
	IsComputed bool
	IsField    bool
}

// TSAnnotationKind distinguishes the three TypeScript expression wrappers
// the parser recognizes but never elaborates (spec.md §1 Non-goals).
type TSAnnotationKind uint8

const (
	TSAnnotationAs TSAnnotationKind = iota
	TSAnnotationSatisfies
	TSAnnotationNonNull
)

// TSType is a placeholder type-annotation node: the parser records its span
// and raw text but does not build a structured type AST, since spec.md is
// explicit that type annotations are parsed but not elaborated.
type TSType struct {
	Span Span
	Raw  string
}
