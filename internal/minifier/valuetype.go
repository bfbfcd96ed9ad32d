package minifier

import "github.com/oxc-go/oxc-core/internal/ast"

// ValueType is the shallow static type lattice spec.md §4.4 "Value-type and
// constant evaluation" describes. Grounded on the teacher's
// js_ast.TypeofExpr/js_ast.KnownPrimitiveType (js_ast_helpers.go), kept as
// its own small enum here since the teacher's PrimitiveType bundles in a
// "Mixed" case this package doesn't need (spec.md uses Undetermined for the
// same role).
type ValueType uint8

const (
	Undetermined ValueType = iota
	TUndefined
	TNull
	TBoolean
	TNumber
	TBigInt
	TString
	TObject
)

// TypeOf performs the case analysis of spec.md §4.4: literals give their own
// type, typeof/delete/void/unary-plus have fixed types, "+" joins operand
// types, other arithmetic produces Number/BigInt, comparisons are always
// Boolean, and logical/conditional operators propagate the join of both
// sides.
func TypeOf(e *ast.Expr) ValueType {
	if e == nil || e.Data == nil {
		return Undetermined
	}
	switch d := e.Data.(type) {
	case *ast.ENumber:
		return TNumber
	case *ast.EBigInt:
		return TBigInt
	case *ast.EString:
		return TString
	case *ast.EBoolean:
		return TBoolean
	case *ast.ENull:
		return TNull
	case *ast.EUndefined:
		return TUndefined
	case *ast.ETemplate:
		if d.Tag == nil {
			return TString
		}
		return Undetermined
	case *ast.EArray, *ast.EObject, *ast.EFunction, *ast.EArrow, *ast.EClass, *ast.ERegExp:
		return TObject
	case *ast.EUnary:
		return typeOfUnary(d)
	case *ast.EBinary:
		return typeOfBinary(d.Op, &d.Left, &d.Right)
	case *ast.EConditional:
		return join(TypeOf(&d.Yes), TypeOf(&d.No))
	case *ast.EAssign:
		if d.Op == ast.BinOpAssign {
			return TypeOf(&d.Right)
		}
		if d.Op.IsShortCircuit() {
			return Undetermined
		}
		return typeOfBinary(arithmeticOpFor(d.Op), &d.Left, &d.Right)
	case *ast.ESequence:
		if len(d.Items) == 0 {
			return Undetermined
		}
		return TypeOf(&d.Items[len(d.Items)-1])
	case *ast.EAnnotation:
		return TypeOf(&d.Value)
	}
	return Undetermined
}

func typeOfUnary(d *ast.EUnary) ValueType {
	switch d.Op {
	case ast.UnOpTypeof:
		return TString
	case ast.UnOpDelete:
		return TBoolean
	case ast.UnOpVoid:
		return TUndefined
	case ast.UnOpNot:
		return TBoolean
	case ast.UnOpPos:
		return TNumber
	case ast.UnOpNeg, ast.UnOpCpl:
		vt := TypeOf(&d.Value)
		if vt == TBigInt {
			return TBigInt
		}
		return TNumber
	case ast.UnOpPreInc, ast.UnOpPreDec, ast.UnOpPostInc, ast.UnOpPostDec:
		vt := TypeOf(&d.Value)
		if vt == TBigInt {
			return TBigInt
		}
		return TNumber
	}
	return Undetermined
}

// arithmeticOpFor maps a compound-assignment operator back to its plain
// binary form so typeOfBinary can be reused for both "a += b" and "a + b".
func arithmeticOpFor(op ast.BinOp) ast.BinOp {
	switch op {
	case ast.BinOpAddAssign:
		return ast.BinOpAdd
	case ast.BinOpSubAssign:
		return ast.BinOpSub
	case ast.BinOpMulAssign:
		return ast.BinOpMul
	case ast.BinOpDivAssign:
		return ast.BinOpDiv
	case ast.BinOpRemAssign:
		return ast.BinOpRem
	case ast.BinOpPowAssign:
		return ast.BinOpPow
	case ast.BinOpShlAssign:
		return ast.BinOpShl
	case ast.BinOpShrAssign:
		return ast.BinOpShr
	case ast.BinOpUShrAssign:
		return ast.BinOpUShr
	case ast.BinOpBitwiseAndAssign:
		return ast.BinOpBitwiseAnd
	case ast.BinOpBitwiseOrAssign:
		return ast.BinOpBitwiseOr
	case ast.BinOpBitwiseXorAssign:
		return ast.BinOpBitwiseXor
	default:
		return ast.BinOpAdd
	}
}

func typeOfBinary(op ast.BinOp, left, right *ast.Expr) ValueType {
	switch op {
	case ast.BinOpAdd:
		lt, rt := TypeOf(left), TypeOf(right)
		if lt == TString || rt == TString {
			return TString
		}
		if lt == TBigInt && rt == TBigInt {
			return TBigInt
		}
		if isNonStringNonBigIntPrimitive(lt) && isNonStringNonBigIntPrimitive(rt) {
			return TNumber
		}
		return Undetermined
	case ast.BinOpSub, ast.BinOpMul, ast.BinOpDiv, ast.BinOpRem, ast.BinOpPow,
		ast.BinOpShl, ast.BinOpShr, ast.BinOpUShr,
		ast.BinOpBitwiseAnd, ast.BinOpBitwiseOr, ast.BinOpBitwiseXor:
		lt, rt := TypeOf(left), TypeOf(right)
		if lt == TBigInt && rt == TBigInt {
			return TBigInt
		}
		if lt == TBigInt || rt == TBigInt {
			return Undetermined // mixing BigInt with non-BigInt throws at runtime
		}
		return TNumber
	case ast.BinOpLt, ast.BinOpLe, ast.BinOpGt, ast.BinOpGe,
		ast.BinOpIn, ast.BinOpInstanceof,
		ast.BinOpLooseEq, ast.BinOpLooseNe, ast.BinOpStrictEq, ast.BinOpStrictNe:
		return TBoolean
	case ast.BinOpLogicalOr, ast.BinOpLogicalAnd, ast.BinOpNullishCoalescing:
		return join(TypeOf(left), TypeOf(right))
	case ast.BinOpComma:
		return TypeOf(right)
	}
	return Undetermined
}

func isNonStringNonBigIntPrimitive(t ValueType) bool {
	switch t {
	case TUndefined, TNull, TBoolean, TNumber:
		return true
	}
	return false
}

// join is the "propagate the join of the two sides" rule: equal types stay
// that type, anything else collapses to Undetermined.
func join(a, b ValueType) ValueType {
	if a == b {
		return a
	}
	return Undetermined
}
