package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxc-go/oxc-core/internal/ast"
)

func parseScript(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, msgs := Parse("<test>", src, ast.SourceType{})
	require.Empty(t, msgs, "unexpected parse diagnostics for %q", src)
	return prog
}

func TestParseEmptyProgram(t *testing.T) {
	prog := parseScript(t, "")
	assert.Empty(t, prog.Body)
	assert.Equal(t, ast.Span{Start: 0, End: 0}, prog.Span)
}

func TestParseHashbang(t *testing.T) {
	prog, msgs := Parse("<test>", "#!/usr/bin/env node\nvar x = 1;", ast.SourceType{})
	require.Empty(t, msgs)
	assert.Equal(t, "#!/usr/bin/env node", prog.Hashbang)
	require.Len(t, prog.Body, 1)
}

func TestParseDirectivePrologue(t *testing.T) {
	prog := parseScript(t, `"use strict"; x;`)
	require.Len(t, prog.Body, 2)
	_, ok := prog.Body[0].Data.(*ast.SDirective)
	require.True(t, ok, "first statement must be a directive")
	assert.Equal(t, []string{"use strict"}, prog.Directives)
}

func TestParseVarDecl(t *testing.T) {
	prog := parseScript(t, "var x = 1, y = 2;")
	require.Len(t, prog.Body, 1)
	decl, ok := prog.Body[0].Data.(*ast.SVarDecl)
	require.True(t, ok)
	assert.Len(t, decl.Decls, 2)
}

func TestParseIfElse(t *testing.T) {
	prog := parseScript(t, "if (a) b(); else c();")
	require.Len(t, prog.Body, 1)
	ifStmt, ok := prog.Body[0].Data.(*ast.SIf)
	require.True(t, ok)
	assert.NotNil(t, ifStmt.No.Data)
}

func TestParseBinaryPrecedence(t *testing.T) {
	// "a + b * c" must parse as "a + (b * c)": the top node is BinOpAdd
	// whose right operand is itself a BinOpMultiply node.
	prog := parseScript(t, "a + b * c;")
	require.Len(t, prog.Body, 1)
	exprStmt, ok := prog.Body[0].Data.(*ast.SExpr)
	require.True(t, ok)
	add, ok := exprStmt.Value.Data.(*ast.EBinary)
	require.True(t, ok)
	assert.Equal(t, ast.BinOpAdd, add.Op)
	mul, ok := add.Right.Data.(*ast.EBinary)
	require.True(t, ok)
	assert.Equal(t, ast.BinOpMul, mul.Op)
}

func TestParseArrowFromCoverGrammar(t *testing.T) {
	// "(a, b) => a + b" is first tried as an arrow parameter list, which the
	// following "=>" confirms; a parenthesized expression is only the
	// fallback (spec.md §4.1 "Cover grammars").
	prog := parseScript(t, "const f = (a, b) => a + b;")
	require.Len(t, prog.Body, 1)
	decl, ok := prog.Body[0].Data.(*ast.SVarDecl)
	require.True(t, ok)
	require.Len(t, decl.Decls, 1)
	require.NotNil(t, decl.Decls[0].Value)
	arrow, ok := decl.Decls[0].Value.Data.(*ast.EArrow)
	require.True(t, ok, "expected EArrow, got %T", decl.Decls[0].Value.Data)
	assert.Len(t, arrow.Params, 2)
}

func TestParseRegexVsDivisionContext(t *testing.T) {
	// After an identifier (an expression-closer) "/" is division.
	prog := parseScript(t, "a / b;")
	exprStmt := prog.Body[0].Data.(*ast.SExpr)
	_, isBinary := exprStmt.Value.Data.(*ast.EBinary)
	assert.True(t, isBinary, "expected division to parse as a binary expression")

	// In a primary-expression position "/" starts a regex literal.
	prog2 := parseScript(t, "x = /abc/g;")
	assign := prog2.Body[0].Data.(*ast.SExpr)
	bin := assign.Value.Data.(*ast.EBinary)
	_, isRegex := bin.Right.Data.(*ast.ERegExp)
	assert.True(t, isRegex, "expected a regex literal on the right of the assignment")
}

func TestASINewlineAfterReturn(t *testing.T) {
	// spec.md §4.1: a newline after "return" forces semicolon insertion, so
	// the returned value is empty and "x" becomes the next statement.
	prog, msgs := Parse("<test>", "function f() {\n return\n x;\n}", ast.SourceType{})
	require.Empty(t, msgs)
	require.Len(t, prog.Body, 1)
	fn, ok := prog.Body[0].Data.(*ast.SFunctionDecl)
	require.True(t, ok)
	require.Len(t, fn.Fn.Body, 2)
	ret, ok := fn.Fn.Body[0].Data.(*ast.SReturn)
	require.True(t, ok)
	assert.Nil(t, ret.Value)
}

func TestParserRecoversFromSyntaxError(t *testing.T) {
	// The parser must not abort on the first error (spec.md §4.1 "Failure
	// semantics"); it keeps going and still returns a usable partial AST.
	prog, msgs := Parse("<test>", "var ; var y = 1;", ast.SourceType{})
	assert.NotEmpty(t, msgs)
	assert.NotEmpty(t, prog.Body)
}

func TestParseTemplateLiteral(t *testing.T) {
	prog := parseScript(t, "`a${b}c`;")
	exprStmt := prog.Body[0].Data.(*ast.SExpr)
	_, ok := exprStmt.Value.Data.(*ast.ETemplate)
	require.True(t, ok)
}

func TestParseTypeScriptNonNull(t *testing.T) {
	prog, msgs := Parse("<test>", "x!.y;", ast.SourceType{IsTypeScript: true})
	require.Empty(t, msgs)
	require.Len(t, prog.Body, 1)
}

func TestParseModuleImport(t *testing.T) {
	prog, msgs := Parse("<test>", `import { a } from "mod";`, ast.SourceType{IsModule: true})
	require.Empty(t, msgs)
	require.Len(t, prog.Body, 1)
}
