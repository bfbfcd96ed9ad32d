package minifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxc-go/oxc-core/internal/ast"
	"github.com/oxc-go/oxc-core/internal/helpers"
)

func ident(name string) ast.Expr {
	in := ast.NewInterner()
	return ast.Ident(ast.Span{}, in.Intern(name))
}

func str(s string) ast.Expr {
	return ast.Expr{Data: &ast.EString{Value: helpers.StringToUTF16(s)}}
}

func num(n float64) ast.Expr {
	return ast.Expr{Data: &ast.ENumber{Value: n}}
}

// x["true"] -> x.true, and x["😊"] is left alone since it isn't a valid
// identifier name, matching spec.md §8 seed test 1.
func TestConvertToDottedProperty(t *testing.T) {
	e := ast.Expr{Data: &ast.EIndex{Target: ident("x"), Index: str("true")}}
	c := &Context{Opts: DefaultOptions(), Globals: TrustAllGlobals}
	compressExpr(&e, c)

	dot, ok := e.Data.(*ast.EDot)
	require.True(t, ok, "expected EIndex to become EDot")
	assert.Equal(t, "true", dot.Name.String())

	e2 := ast.Expr{Data: &ast.EIndex{Target: ident("x"), Index: str("😊")}}
	c2 := &Context{Opts: DefaultOptions(), Globals: TrustAllGlobals}
	compressExpr(&e2, c2)
	_, stillIndex := e2.Data.(*ast.EIndex)
	assert.True(t, stillIndex, "non-identifier key must not be converted")
}

// x["0"] -> x[0]: a canonical non-negative integer index loses its quotes.
func TestConvertToDottedProperty_CanonicalIndex(t *testing.T) {
	e := ast.Expr{Data: &ast.EIndex{Target: ident("x"), Index: str("0")}}
	c := &Context{Opts: DefaultOptions(), Globals: TrustAllGlobals}
	compressExpr(&e, c)

	idx, ok := e.Data.(*ast.EIndex)
	require.True(t, ok)
	n, ok := idx.Index.Data.(*ast.ENumber)
	require.True(t, ok)
	assert.Equal(t, float64(0), n.Value)
}

func TestTypeOf(t *testing.T) {
	typeofExpr := ast.Expr{Data: &ast.EUnary{Op: ast.UnOpTypeof, Value: ident("foo")}}
	assert.Equal(t, TString, TypeOf(&typeofExpr))

	concat := ast.Expr{Data: &ast.EBinary{Op: ast.BinOpAdd, Left: ident("foo"), Right: str("bar")}}
	assert.Equal(t, TString, TypeOf(&concat))

	sub := ast.Expr{Data: &ast.EBinary{Op: ast.BinOpSub, Left: ident("a"), Right: ident("b")}}
	assert.Equal(t, TNumber, TypeOf(&sub))

	// Both operands statically BigInt: the product is BigInt too. Mixing a
	// BigInt operand with an operand of unknown type is left Undetermined
	// since that actually throws at runtime rather than coercing.
	bigintMul := ast.Expr{Data: &ast.EBinary{
		Op:    ast.BinOpMul,
		Left:  ast.Expr{Data: &ast.EBigInt{Value: "2"}},
		Right: ast.Expr{Data: &ast.EBigInt{Value: "3"}},
	}}
	assert.Equal(t, TBigInt, TypeOf(&bigintMul))

	mixedMul := ast.Expr{Data: &ast.EBinary{Op: ast.BinOpMul, Left: ident("foo"), Right: ast.Expr{Data: &ast.EBigInt{Value: "1"}}}}
	assert.Equal(t, Undetermined, TypeOf(&mixedMul))
}

func TestConstantFoldAddition(t *testing.T) {
	e := ast.Expr{Data: &ast.EBinary{Op: ast.BinOpAdd, Left: num(1), Right: num(2)}}
	c := &Context{Opts: DefaultOptions(), Globals: TrustAllGlobals}
	compressExpr(&e, c)

	n, ok := e.Data.(*ast.ENumber)
	require.True(t, ok)
	assert.Equal(t, float64(3), n.Value)
}

// "x || (x = 3)" -> "x ||= 3", the logical-assignment-operator fold.
func TestFoldLogicalAssign(t *testing.T) {
	e := ast.Expr{Data: &ast.EBinary{
		Op:   ast.BinOpLogicalOr,
		Left: ident("x"),
		Right: ast.Expr{Data: &ast.EAssign{Op: ast.BinOpAssign, Left: ident("x"), Right: num(3)}},
	}}
	c := &Context{Opts: DefaultOptions(), Globals: TrustAllGlobals}
	compressExpr(&e, c)

	assign, ok := e.Data.(*ast.EAssign)
	require.True(t, ok)
	assert.Equal(t, ast.BinOpLogicalOrAssign, assign.Op)
}

// function f(){if(x)return; x=3; return;} -> function f(){x||=3;}
// spec.md §8 seed test 2, composed across several fixed-point iterations of
// invertEarlyReturn, compressIf, foldLogicalAssign, and
// trimTrailingEmptyReturn.
func TestIfMinimiseEarlyReturn(t *testing.T) {
	body := []ast.Stmt{
		{Data: &ast.SIf{Test: ident("x"), Yes: ast.Stmt{Data: &ast.SReturn{}}}},
		{Data: &ast.SExpr{Value: ast.Expr{Data: &ast.EAssign{Op: ast.BinOpAssign, Left: ident("x"), Right: num(3)}}}},
		{Data: &ast.SReturn{}},
	}
	program := &ast.Program{Body: []ast.Stmt{
		{Data: &ast.SFunctionDecl{Fn: ast.Function{Body: body}}},
	}}

	_, _ = Run(program, DefaultOptions(), TrustAllGlobals)

	require.Len(t, program.Body, 1)
	fn, ok := program.Body[0].Data.(*ast.SFunctionDecl)
	require.True(t, ok)
	require.Len(t, fn.Fn.Body, 1, "the whole body should collapse to one statement")

	exprStmt, ok := fn.Fn.Body[0].Data.(*ast.SExpr)
	require.True(t, ok, "expected a single expression statement, got %T", fn.Fn.Body[0].Data)
	assign, ok := exprStmt.Value.Data.(*ast.EAssign)
	require.True(t, ok, "expected x ||= 3, got %T", exprStmt.Value.Data)
	assert.Equal(t, ast.BinOpLogicalOrAssign, assign.Op)
}

// Dropping a trailing "console.log(...)" expression statement when
// DropConsole is enabled, and leaving other calls alone.
func TestDropConsole(t *testing.T) {
	call := ast.Expr{Data: &ast.ECall{Target: ast.Expr{Data: &ast.EDot{Target: ident("console"), Name: ast.NewInterner().Intern("log")}}, Args: []ast.Expr{str("hi")}}}
	program := &ast.Program{Body: []ast.Stmt{{Data: &ast.SExpr{Value: call}}}}

	opts := DefaultOptions()
	opts.DropConsole = true
	_, _ = Run(program, opts, TrustAllGlobals)

	assert.Empty(t, program.Body)
}

// Sequence folding must never discard an earlier item with side effects,
// even when the sequence's final value is a constant (regression test for
// the ESequence case in Evaluate).
func TestSequenceWithSideEffectIsNotCollapsedAwayEntirely(t *testing.T) {
	call := ast.Expr{Data: &ast.ECall{Target: ident("sideEffect"), Args: nil}}
	e := ast.Expr{Data: &ast.ESequence{Items: []ast.Expr{call, num(2)}}}
	c := &Context{Opts: DefaultOptions(), Globals: TrustAllGlobals}
	compressExpr(&e, c)

	seq, ok := e.Data.(*ast.ESequence)
	require.True(t, ok, "the call must survive folding, got %T", e.Data)
	require.Len(t, seq.Items, 2)
	_, stillCall := seq.Items[0].Data.(*ast.ECall)
	assert.True(t, stillCall)
}

func TestDeadCodeAfterReturnIsDropped(t *testing.T) {
	stmts := []ast.Stmt{
		{Data: &ast.SReturn{}},
		{Data: &ast.SExpr{Value: ident("unreachable")}},
	}
	c := &Context{Opts: DefaultOptions(), Globals: TrustAllGlobals}
	out := compressStmts(stmts, c, true)
	assert.Empty(t, out, "the function body reduces to nothing: the return is implicit at the end")
}
