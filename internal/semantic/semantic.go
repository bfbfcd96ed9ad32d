// Package semantic builds the scope tree, symbol table, and reference graph
// for a parsed Program. Grounded on the teacher's js_parser binding/scope
// passes (parseStmtsUpTo's hoisting pre-scan, pushScopeForParsePass,
// declareSymbol), but REDESIGNED per spec.md §4.2 into a standalone pass
// that runs after parsing instead of being fused into it: the parser here
// never touches SymbolId/ScopeId, it only leaves the invalid sentinel, so
// this package is the sole owner of id assignment.
package semantic

import (
	"github.com/oxc-go/oxc-core/internal/ast"
)

type ScopeKind uint8

const (
	ScopeGlobal ScopeKind = iota
	ScopeModule
	ScopeFunction
	ScopeBlock
	ScopeCatch
	ScopeFor
	ScopeClass
)

type Scope struct {
	Id       ast.ScopeId
	Kind     ScopeKind
	Parent   ast.ScopeId
	Children []ast.ScopeId
	Bindings map[ast.Atom]ast.SymbolId
}

type SymbolFlags uint16

const (
	SymbolVar SymbolFlags = 1 << iota
	SymbolLet
	SymbolConst
	SymbolFunction
	SymbolClass
	SymbolParameter
	SymbolCatchParam
	SymbolImport
	SymbolExported
	SymbolUsed
)

type Symbol struct {
	Id         ast.SymbolId
	Name       ast.Atom
	ScopeId    ast.ScopeId
	Flags      SymbolFlags
	References []ast.ReferenceId
	Span       ast.Span
}

type Reference struct {
	Id       ast.ReferenceId
	Name     ast.Atom
	SymbolId ast.SymbolId // InvalidSymbolId until resolved; stays invalid for globals
	ScopeId  ast.ScopeId
	Span     ast.Span
	IsWrite  bool
}

// ModuleRecord holds the import/export surface of one file, consumed both
// by lint rules (no_nodejs_modules, import/export correctness checks) and
// by the module lexer's cross-check in its own test suite.
type ModuleRecord struct {
	Imports        []ImportEntry
	Exports        []ExportEntry
	ReExports      []ReExportEntry
	HasModuleSyntax bool
}

type ImportEntry struct {
	Source   ast.Atom
	Imported ast.Atom // empty for default/namespace
	Local    ast.Atom
	IsType   bool
}

type ExportEntry struct {
	Local    ast.Atom
	Exported ast.Atom
}

type ReExportEntry struct {
	Source   ast.Atom
	Imported ast.Atom // empty means "export *"
	Exported ast.Atom
}

// Model is the full output of Build: every scope, symbol, and reference
// plus the derived module record, addressable by the dense ids Build
// assigns.
type Model struct {
	Scopes     []Scope
	Symbols    []Symbol
	References []Reference
	Module     ModuleRecord
	Program    *ast.Program
}

func (m *Model) SymbolReferences(id ast.SymbolId) []ast.ReferenceId {
	if int(id) >= len(m.Symbols) {
		return nil
	}
	return m.Symbols[id].References
}

func (m *Model) ScopeBinding(scope ast.ScopeId, name ast.Atom) (ast.SymbolId, bool) {
	for {
		s := &m.Scopes[scope]
		if id, ok := s.Bindings[name]; ok {
			return id, true
		}
		if s.Parent == ast.InvalidScopeId {
			return ast.InvalidSymbolId, false
		}
		scope = s.Parent
	}
}

type builder struct {
	model          Model
	pendingRefs    []pendingRef
	currentScope   ast.ScopeId
	currentFnScope ast.ScopeId
	interner       *ast.Interner
}

type pendingRef struct {
	refId ast.ReferenceId
	scope ast.ScopeId
}

// Build runs the two-phase pass described in spec.md §4.2: a hoist
// pre-scan per scope that declares every var/function/class/let/const/param
// binding before any reference in that scope is resolved, followed by a
// single traversal that creates References and bubbles each one up the
// scope chain; anything left unresolved at the top becomes an implicit
// global (flagged, never a hard error, matching real JS semantics).
func Build(program *ast.Program, sourceType ast.SourceType) *Model {
	b := &builder{interner: ast.NewInterner()}
	kind := ScopeGlobal
	if sourceType.IsModule {
		kind = ScopeModule
	}
	globalId := b.pushScope(kind, ast.InvalidScopeId)
	b.currentScope = globalId
	b.currentFnScope = globalId

	b.hoistStmts(program.Body, globalId)
	for i := range program.Body {
		b.walkStmt(&program.Body[i])
	}
	b.resolvePending()
	b.buildModuleRecord(program)

	b.model.Program = program
	return &b.model
}

func (b *builder) pushScope(kind ScopeKind, parent ast.ScopeId) ast.ScopeId {
	id := ast.ScopeId(len(b.model.Scopes))
	b.model.Scopes = append(b.model.Scopes, Scope{Id: id, Kind: kind, Parent: parent, Bindings: map[ast.Atom]ast.SymbolId{}})
	if parent != ast.InvalidScopeId {
		b.model.Scopes[parent].Children = append(b.model.Scopes[parent].Children, id)
	}
	return id
}

func (b *builder) declare(scope ast.ScopeId, name ast.Atom, flags SymbolFlags, span ast.Span) ast.SymbolId {
	s := &b.model.Scopes[scope]
	if existing, ok := s.Bindings[name]; ok {
		b.model.Symbols[existing].Flags |= flags
		return existing
	}
	id := ast.SymbolId(len(b.model.Symbols))
	b.model.Symbols = append(b.model.Symbols, Symbol{Id: id, Name: name, ScopeId: scope, Flags: flags, Span: span})
	s.Bindings[name] = id
	return id
}

func (b *builder) declareBinding(scope ast.ScopeId, binding *ast.Binding, flags SymbolFlags) {
	if binding == nil || binding.Data == nil {
		return
	}
	switch d := binding.Data.(type) {
	case *ast.BIdentifier:
		d.SymbolId = b.declare(scope, d.Name, flags, binding.Span)
	case *ast.BArray:
		for i := range d.Items {
			b.declareBinding(scope, &d.Items[i].Binding, flags)
		}
	case *ast.BObject:
		for i := range d.Properties {
			b.declareBinding(scope, &d.Properties[i].Value, flags)
		}
	}
}

// hoistStmts declares var/function bindings for the nearest function or
// global/module scope, and let/const/class bindings for the given block
// scope itself, matching JS's two hoisting tiers (spec.md §4.2 step 2).
func (b *builder) hoistStmts(stmts []ast.Stmt, blockScope ast.ScopeId) {
	fnScope := b.nearestFunctionOrGlobalScope(blockScope)
	for i := range stmts {
		b.hoistStmt(&stmts[i], blockScope, fnScope)
	}
}

func (b *builder) nearestFunctionOrGlobalScope(scope ast.ScopeId) ast.ScopeId {
	for {
		k := b.model.Scopes[scope].Kind
		if k == ScopeFunction || k == ScopeGlobal || k == ScopeModule {
			return scope
		}
		parent := b.model.Scopes[scope].Parent
		if parent == ast.InvalidScopeId {
			return scope
		}
		scope = parent
	}
}

func (b *builder) hoistStmt(s *ast.Stmt, blockScope, fnScope ast.ScopeId) {
	switch d := s.Data.(type) {
	case *ast.SVarDecl:
		flags := varKindFlags(d.Kind)
		target := fnScope
		if d.Kind != ast.VarVar {
			target = blockScope
		}
		for i := range d.Decls {
			b.declareBinding(target, &d.Decls[i].Binding, flags)
		}
	case *ast.SFunctionDecl:
		if d.Fn.Name != nil {
			b.declare(blockScope, *d.Fn.Name, SymbolFunction, s.Span)
		}
	case *ast.SClassDecl:
		if d.Class.Name != nil {
			b.declare(blockScope, *d.Class.Name, SymbolClass, s.Span)
		}
	case *ast.SBlock:
		// let/const/class inside the block are declared by hoistLexicalOnly
		// when walkStmt enters it; everything else hoists out of it.
		for i := range d.Body {
			switch inner := d.Body[i].Data.(type) {
			case *ast.SClassDecl:
			case *ast.SVarDecl:
				if inner.Kind == ast.VarVar {
					b.hoistStmt(&d.Body[i], blockScope, fnScope)
				}
			default:
				b.hoistStmt(&d.Body[i], blockScope, fnScope)
			}
		}
	case *ast.SIf:
		b.hoistStmt(&d.Yes, blockScope, fnScope)
		if d.No.Data != nil {
			b.hoistStmt(&d.No, blockScope, fnScope)
		}
	case *ast.SFor:
		if d.Init.Data != nil {
			b.hoistStmt(&d.Init, blockScope, fnScope)
		}
		b.hoistStmt(&d.Body, blockScope, fnScope)
	case *ast.SForInOf:
		b.hoistStmt(&d.Init, blockScope, fnScope)
		b.hoistStmt(&d.Body, blockScope, fnScope)
	case *ast.SWhile:
		b.hoistStmt(&d.Body, blockScope, fnScope)
	case *ast.SDoWhile:
		b.hoistStmt(&d.Body, blockScope, fnScope)
	case *ast.STry:
		for i := range d.Block {
			b.hoistStmt(&d.Block[i], blockScope, fnScope)
		}
		if d.Catch != nil {
			for i := range d.Catch.Body {
				b.hoistStmt(&d.Catch.Body[i], blockScope, fnScope)
			}
		}
		if d.Finally != nil {
			for i := range *d.Finally {
				b.hoistStmt(&(*d.Finally)[i], blockScope, fnScope)
			}
		}
	case *ast.SSwitch:
		for ci := range d.Cases {
			for i := range d.Cases[ci].Body {
				b.hoistStmt(&d.Cases[ci].Body[i], blockScope, fnScope)
			}
		}
	case *ast.SLabel:
		b.hoistStmt(&d.Body, blockScope, fnScope)
	case *ast.SExportNamedDecl:
		if d.Decl.Data != nil {
			b.hoistStmt(&d.Decl, blockScope, fnScope)
		}
	case *ast.SExportDefaultDecl:
		b.hoistStmt(&d.Value, blockScope, fnScope)
	}
}

func varKindFlags(k ast.VarKind) SymbolFlags {
	switch k {
	case ast.VarLet:
		return SymbolLet
	case ast.VarConst:
		return SymbolConst
	default:
		return SymbolVar
	}
}

func (b *builder) resolvePending() {
	for _, pr := range b.pendingRefs {
		ref := &b.model.References[pr.refId]
		if symId, ok := b.model.ScopeBinding(pr.scope, ref.Name); ok {
			ref.SymbolId = symId
			b.model.Symbols[symId].References = append(b.model.Symbols[symId].References, pr.refId)
			b.model.Symbols[symId].Flags |= SymbolUsed
		}
	}
}

func (b *builder) addReference(name ast.Atom, span ast.Span, isWrite bool) ast.ReferenceId {
	id := ast.ReferenceId(len(b.model.References))
	b.model.References = append(b.model.References, Reference{Id: id, Name: name, SymbolId: ast.InvalidSymbolId, ScopeId: b.currentScope, Span: span, IsWrite: isWrite})
	b.pendingRefs = append(b.pendingRefs, pendingRef{refId: id, scope: b.currentScope})
	return id
}

// buildModuleRecord walks only the top level looking for import/export
// statements, grounded on the module-lexer's own single-pass approach
// (SPEC_FULL.md §4.6) but reusing the already-built AST instead of
// re-lexing.
func (b *builder) buildModuleRecord(program *ast.Program) {
	rec := &b.model.Module
	for i := range program.Body {
		switch d := program.Body[i].Data.(type) {
		case *ast.SImportDecl:
			rec.HasModuleSyntax = true
			for _, spec := range d.Specifiers {
				rec.Imports = append(rec.Imports, ImportEntry{Source: d.Source, Imported: spec.Imported, Local: spec.Local, IsType: d.IsTypeOnly})
			}
			if len(d.Specifiers) == 0 {
				rec.Imports = append(rec.Imports, ImportEntry{Source: d.Source, IsType: d.IsTypeOnly})
			}
		case *ast.SExportNamedDecl:
			rec.HasModuleSyntax = true
			if d.Source != nil {
				for _, spec := range d.Specifiers {
					rec.ReExports = append(rec.ReExports, ReExportEntry{Source: *d.Source, Imported: spec.Local, Exported: spec.Exported})
				}
			} else {
				for _, spec := range d.Specifiers {
					rec.Exports = append(rec.Exports, ExportEntry{Local: spec.Local, Exported: spec.Exported})
				}
				switch decl := d.Decl.Data.(type) {
				case *ast.SVarDecl:
					for j := range decl.Decls {
						if id, ok := decl.Decls[j].Binding.Data.(*ast.BIdentifier); ok {
							rec.Exports = append(rec.Exports, ExportEntry{Local: id.Name, Exported: id.Name})
						}
					}
				case *ast.SFunctionDecl:
					if decl.Fn.Name != nil {
						rec.Exports = append(rec.Exports, ExportEntry{Local: *decl.Fn.Name, Exported: *decl.Fn.Name})
					}
				case *ast.SClassDecl:
					if decl.Class.Name != nil {
						rec.Exports = append(rec.Exports, ExportEntry{Local: *decl.Class.Name, Exported: *decl.Class.Name})
					}
				}
			}
		case *ast.SExportDefaultDecl:
			rec.HasModuleSyntax = true
			def := b.interner.Intern("default")
			rec.Exports = append(rec.Exports, ExportEntry{Local: def, Exported: def})
		case *ast.SExportAllDecl:
			rec.HasModuleSyntax = true
			var alias ast.Atom
			if d.Alias != nil {
				alias = *d.Alias
			}
			rec.ReExports = append(rec.ReExports, ReExportEntry{Source: d.Source, Exported: alias})
		}
	}
}
