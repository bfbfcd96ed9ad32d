package modulelexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxc-go/oxc-core/internal/ast"
	"github.com/oxc-go/oxc-core/internal/parser"
)

func lex(t *testing.T, src string, st ast.SourceType) Result {
	t.Helper()
	prog, msgs := parser.Parse("<test>", src, st)
	require.Empty(t, msgs, "unexpected parse diagnostics for %q", src)
	return Lex(prog)
}

func TestEmptyProgramIsFacadeWithoutModuleSyntax(t *testing.T) {
	// spec.md §8 boundary behaviour: empty input yields empty arrays,
	// facade=true, has_module_syntax=false.
	r := lex(t, "", ast.SourceType{IsModule: true})
	assert.Empty(t, r.Imports)
	assert.Empty(t, r.Exports)
	assert.True(t, r.Facade)
	assert.False(t, r.HasModuleSyntax)
}

func TestImportOnlyFileIsFacade(t *testing.T) {
	// spec.md §8 boundary behaviour: a file consisting only of import
	// statements has facade=true, has_module_syntax=true.
	r := lex(t, `import { a } from "mod";`, ast.SourceType{IsModule: true})
	assert.True(t, r.Facade)
	assert.True(t, r.HasModuleSyntax)
	require.Len(t, r.Imports, 1)
	assert.Equal(t, "mod", r.Imports[0].Source)
	assert.False(t, r.Imports[0].IsDynamic)
}

func TestReExportOnlyFileIsFacade(t *testing.T) {
	r := lex(t, `export { a } from "mod"; export * from "other";`, ast.SourceType{IsModule: true})
	assert.True(t, r.Facade)
	require.Len(t, r.Imports, 2)
	require.Len(t, r.Exports, 2)
}

func TestInlineExportDeclarationIsNotFacade(t *testing.T) {
	// "export const x = 1" can run arbitrary code at module-evaluation
	// time, so it must clear facade even though it's still ESM syntax.
	r := lex(t, `export const x = 1;`, ast.SourceType{IsModule: true})
	assert.False(t, r.Facade)
	require.Len(t, r.Exports, 1)
	assert.Equal(t, "x", r.Exports[0].Name)
}

func TestExportDefaultIsNotFacade(t *testing.T) {
	r := lex(t, `export default function f() {}`, ast.SourceType{IsModule: true})
	assert.False(t, r.Facade)
	require.Len(t, r.Exports, 1)
	assert.Equal(t, "default", r.Exports[0].Name)
}

func TestPlainExpressionStatementClearsFacade(t *testing.T) {
	r := lex(t, `import { a } from "mod"; console.log(a);`, ast.SourceType{IsModule: true})
	assert.False(t, r.Facade)
	assert.True(t, r.HasModuleSyntax)
}

func TestUnexportedDeclarationPreservesFacade(t *testing.T) {
	// A plain function/var declaration (not itself exported) is still a
	// "Declaration" in the grammar and doesn't disqualify facade status.
	r := lex(t, `import { a } from "mod"; function helper() {}`, ast.SourceType{IsModule: true})
	assert.True(t, r.Facade)
}

func TestDynamicImportRecordsSpecifierAndSpan(t *testing.T) {
	r := lex(t, `const p = import("mod");`, ast.SourceType{IsModule: true})
	require.Len(t, r.Imports, 1)
	assert.True(t, r.Imports[0].IsDynamic)
	assert.Equal(t, "mod", r.Imports[0].Source)
	assert.True(t, r.HasModuleSyntax)
}

func TestDynamicImportWithNonLiteralArgumentHasNoSpecifier(t *testing.T) {
	r := lex(t, `const p = import(x);`, ast.SourceType{IsModule: true})
	require.Len(t, r.Imports, 1)
	assert.Equal(t, "", r.Imports[0].Source)
}

func TestImportMetaIsRecordedAsImport(t *testing.T) {
	r := lex(t, `console.log(import.meta.url);`, ast.SourceType{IsModule: true})
	require.Len(t, r.Imports, 1)
	assert.True(t, r.Imports[0].IsMeta)
	assert.True(t, r.HasModuleSyntax)
}

func TestModuleLexerIsDeterministicAcrossReparse(t *testing.T) {
	// spec.md §8 universal invariant 8: imports/exports are invariant
	// under re-parsing the same source.
	src := `import a, { b as c } from "mod"; export { c }; export default 1;`
	r1 := lex(t, src, ast.SourceType{IsModule: true})
	r2 := lex(t, src, ast.SourceType{IsModule: true})
	assert.Equal(t, r1, r2)
}
