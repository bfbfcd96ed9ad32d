package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxc-go/oxc-core/internal/ast"
	"github.com/oxc-go/oxc-core/internal/parser"
)

func build(t *testing.T, src string, st ast.SourceType) (*ast.Program, *Model) {
	t.Helper()
	prog, msgs := parser.Parse("<test>", src, st)
	require.Empty(t, msgs, "unexpected parse diagnostics for %q", src)
	return prog, Build(prog, st)
}

func TestEveryIdentifierReferenceGetsAReferenceId(t *testing.T) {
	// spec.md §8 universal invariant 2: every IdentifierReference resolves
	// to a ReferenceId, whether or not the name turns out to be bound.
	_, m := build(t, "var x = 1; x + y;", ast.SourceType{})
	for _, ref := range m.References {
		assert.NotEqual(t, ast.InvalidReferenceId, ref.Id)
	}
	assert.GreaterOrEqual(t, len(m.References), 2)
}

func TestForwardReferenceWithinScopeResolves(t *testing.T) {
	// spec.md §4.2 step 1: function declarations hoist, so a call that
	// textually precedes the declaration still resolves within the scope.
	_, m := build(t, "f(); function f() {}", ast.SourceType{})
	require.Len(t, m.References, 1)
	assert.NotEqual(t, ast.InvalidSymbolId, m.References[0].SymbolId)
}

func TestUnresolvedReferenceBecomesGlobal(t *testing.T) {
	_, m := build(t, "console.log(1);", ast.SourceType{})
	require.NotEmpty(t, m.References)
	found := false
	for _, ref := range m.References {
		if ref.Name.String() == "console" {
			found = true
			assert.Equal(t, ast.InvalidSymbolId, ref.SymbolId, "console must stay unresolved as a global")
		}
	}
	assert.True(t, found)
}

func TestVarHoistsToFunctionScopeNotBlockScope(t *testing.T) {
	// "var" declared inside a block is visible from the enclosing function,
	// unlike "let"/"const" (spec.md §4.2 step 1 "Pre-scan for hoisted bindings").
	prog, m := build(t, "function f() { { var x = 1; } return x; }", ast.SourceType{})
	fn := prog.Body[0].Data.(*ast.SFunctionDecl)
	fnScope := ast.ScopeId(0)
	for i := range m.Scopes {
		if m.Scopes[i].Kind == ScopeFunction {
			fnScope = m.Scopes[i].Id
		}
	}
	require.NotEmpty(t, fn.Fn.Body)
	_, ok := m.ScopeBinding(fnScope, internAtom(t, m, "x"))
	assert.True(t, ok, "var x must be visible from the function's own scope")
}

func TestReferenceRoundTrip(t *testing.T) {
	// spec.md §8 universal invariant 3: a symbol's recorded References
	// equal the set of resolved references pointing at it.
	_, m := build(t, "var x = 1; x; x;", ast.SourceType{})
	for _, sym := range m.Symbols {
		if sym.Name.String() != "x" {
			continue
		}
		count := 0
		for _, ref := range m.References {
			if ref.SymbolId == sym.Id {
				count++
			}
		}
		assert.Equal(t, count, len(sym.References))
	}
}

func TestSymbolReferencesHelper(t *testing.T) {
	_, m := build(t, "let a = 1; a + 1;", ast.SourceType{})
	require.NotEmpty(t, m.Symbols)
	refs := m.SymbolReferences(m.Symbols[0].Id)
	assert.NotEmpty(t, refs)
}

func TestModuleRecordCollectsImportsAndExports(t *testing.T) {
	prog, m := build(t, `import { a } from "mod"; export const b = 1;`, ast.SourceType{IsModule: true})
	require.Len(t, prog.Body, 2)
	assert.True(t, m.Module.HasModuleSyntax)
	require.Len(t, m.Module.Imports, 1)
	assert.Equal(t, "mod", m.Module.Imports[0].Source.String())
	require.Len(t, m.Module.Exports, 1)
	assert.Equal(t, "b", m.Module.Exports[0].Exported.String())
}

func TestDuplicateVarDeclarationIsLegal(t *testing.T) {
	// var/var re-declaration is legal per spec.md §4.2 step 2; only a
	// single Symbol should be created, with flags merged.
	_, m := build(t, "var x = 1; var x = 2;", ast.SourceType{})
	count := 0
	for _, s := range m.Symbols {
		if s.Name.String() == "x" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

// internAtom looks up the Atom for name by scanning the model's own symbol
// table, avoiding a second, separately-interned Interner whose Atom would
// not compare equal by pointer to the one the builder produced.
func internAtom(t *testing.T, m *Model, name string) ast.Atom {
	t.Helper()
	for _, s := range m.Symbols {
		if s.Name.String() == name {
			return s.Name
		}
	}
	t.Fatalf("no symbol named %q", name)
	return ast.Atom{}
}
