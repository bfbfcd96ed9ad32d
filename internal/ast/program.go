package ast

// SymbolId, ScopeId, and ReferenceId are dense indices into the semantic
// pass's side vectors (spec.md §3.4). They live in this package, not
// internal/semantic, because AST nodes created by the parser (EIdentifier,
// BIdentifier) carry a slot for them from the start; the parser leaves the
// slots invalid and the semantic builder fills them in during its own pass,
// per the "lazily-filled symbol table" design.
type (
	SymbolId    uint32
	ScopeId     uint32
	ReferenceId uint32
)

const (
	InvalidSymbolId    SymbolId    = 1<<32 - 1
	InvalidScopeId     ScopeId     = 1<<32 - 1
	InvalidReferenceId ReferenceId = 1<<32 - 1
)

// SourceType describes how a file should be parsed, per spec.md §4.1
// "Inputs".
type SourceType struct {
	IsModule     bool
	IsTypeScript bool
	IsJSX        bool
	IsDeclaration bool // ".d.ts"
}

func (t SourceType) IsTSX() bool { return t.IsTypeScript && t.IsJSX }

// Trivia is a single comment or preserved whitespace token kept alongside
// the AST for consumers like a formatter; the core only threads it through.
type Trivia struct {
	Span      Span
	Text      string
	IsBlock   bool
	HasNewlineBefore bool
}

// Program is the root AST node (spec.md §4.1 "Outputs").
type Program struct {
	SourceType SourceType
	Directives []string
	Body       []Stmt
	Hashbang   string
	Span       Span
	Trivia     []Trivia
}

// Ident is a convenience constructor used throughout the parser.
func Ident(span Span, name Atom) Expr {
	return Expr{Span: span, Data: &EIdentifier{Name: name, ReferenceId: InvalidReferenceId}}
}

// IdentBinding is the Binding counterpart of Ident.
func IdentBinding(span Span, name Atom) Binding {
	return Binding{Span: span, Data: &BIdentifier{Name: name, SymbolId: InvalidSymbolId}}
}
