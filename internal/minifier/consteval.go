package minifier

import (
	"math"
	"strconv"
	"strings"

	"github.com/oxc-go/oxc-core/internal/ast"
	"github.com/oxc-go/oxc-core/internal/helpers"
)

// ConstantValue is the bounded result of folding an expression, grounded on
// the teacher's js_ast.ExprToConstantValue but reshaped to carry a
// ValueType instead of reusing the printer's own value representation,
// since this package never needs to re-serialize through the printer.
type ConstantValue struct {
	Type   ValueType
	Number float64
	String []uint16
	Bool   bool
}

// GlobalContext tells the evaluator whether an identifier name still refers
// to the real global binding, so "undefined"/"NaN"/"Infinity" only fold when
// they have not been shadowed by a local declaration (spec.md §9 Open
// Questions: "Constant evaluation treats NaN/Infinity/undefined as possibly
// shadowed").
type GlobalContext interface {
	IsUnshadowedGlobal(name string) bool
}

// trustAllGlobals is the GlobalContext used by tests and any caller that
// doesn't care about shadowing, equivalent to the stricter mode spec.md §9
// floats as a possible "trust_globals" option; this package doesn't expose
// that knob on CompressOptions (see DESIGN.md), but callers that want the
// behavior can pass this in directly.
type trustAllGlobals struct{}

func (trustAllGlobals) IsUnshadowedGlobal(string) bool { return true }

var TrustAllGlobals GlobalContext = trustAllGlobals{}

// Evaluate folds expr to a ConstantValue when possible: literals, identity
// operators, string concatenation, IEEE-754 numeric arithmetic (via
// helpers.ConstFloat so results stay bit-identical across platforms),
// ToInt32/ToUint32 bitwise coercion, and logical short-circuiting. Returns
// ok=false for anything not bounded by this list (calls, member loads,
// unresolved identifiers, etc).
func Evaluate(expr *ast.Expr, ctx GlobalContext) (ConstantValue, bool) {
	if expr == nil || expr.Data == nil {
		return ConstantValue{}, false
	}
	switch d := expr.Data.(type) {
	case *ast.ENumber:
		return ConstantValue{Type: TNumber, Number: d.Value}, true
	case *ast.EString:
		return ConstantValue{Type: TString, String: d.Value}, true
	case *ast.EBoolean:
		return ConstantValue{Type: TBoolean, Bool: d.Value}, true
	case *ast.ENull:
		return ConstantValue{Type: TNull}, true
	case *ast.EUndefined:
		return ConstantValue{Type: TUndefined}, true
	case *ast.EIdentifier:
		name := d.Name.String()
		switch name {
		case "undefined":
			if ctx != nil && ctx.IsUnshadowedGlobal("undefined") {
				return ConstantValue{Type: TUndefined}, true
			}
		case "NaN":
			if ctx != nil && ctx.IsUnshadowedGlobal("NaN") {
				return ConstantValue{Type: TNumber, Number: math.NaN()}, true
			}
		case "Infinity":
			if ctx != nil && ctx.IsUnshadowedGlobal("Infinity") {
				return ConstantValue{Type: TNumber, Number: math.Inf(1)}, true
			}
		}
		return ConstantValue{}, false
	case *ast.ETemplate:
		if d.Tag != nil {
			return ConstantValue{}, false
		}
		var sb []uint16
		for i, q := range d.Quasis {
			if q.Cooked == nil {
				return ConstantValue{}, false
			}
			sb = append(sb, q.Cooked...)
			if i < len(d.Parts) {
				v, ok := Evaluate(&d.Parts[i], ctx)
				if !ok {
					return ConstantValue{}, false
				}
				sb = append(sb, helpers.StringToUTF16(stringify(v))...)
			}
		}
		return ConstantValue{Type: TString, String: sb}, true
	case *ast.EUnary:
		return evalUnary(d, ctx)
	case *ast.EBinary:
		return evalBinary(d.Op, &d.Left, &d.Right, ctx)
	case *ast.EConditional:
		test, ok := Evaluate(&d.Test, ctx)
		if !ok {
			return ConstantValue{}, false
		}
		if toBoolean(test) {
			return Evaluate(&d.Yes, ctx)
		}
		return Evaluate(&d.No, ctx)
	case *ast.ESequence:
		if len(d.Items) == 0 {
			return ConstantValue{}, false
		}
		// The comma operator's static value is always just the last item's,
		// but folding the whole sequence down to that value would silently
		// discard any earlier item's side effects; only do it when every
		// earlier item is provably side-effect free.
		sideEffectCtx := SideEffectContext{Globals: ctx, Treeshake: TreeShakeOptions{PropertyReadSideEffects: PropertyReadAll, UnknownGlobalSideEffects: true}}
		for i := 0; i < len(d.Items)-1; i++ {
			if MayHaveSideEffects(&d.Items[i], sideEffectCtx) {
				return ConstantValue{}, false
			}
		}
		return Evaluate(&d.Items[len(d.Items)-1], ctx)
	case *ast.EAnnotation:
		return Evaluate(&d.Value, ctx)
	}
	return ConstantValue{}, false
}

func evalUnary(d *ast.EUnary, ctx GlobalContext) (ConstantValue, bool) {
	switch d.Op {
	case ast.UnOpNot:
		v, ok := Evaluate(&d.Value, ctx)
		if !ok {
			return ConstantValue{}, false
		}
		return ConstantValue{Type: TBoolean, Bool: !toBoolean(v)}, true
	case ast.UnOpVoid:
		if _, ok := Evaluate(&d.Value, ctx); !ok {
			return ConstantValue{}, false
		}
		return ConstantValue{Type: TUndefined}, true
	case ast.UnOpTypeof:
		// typeof is never folded here; its result type is reported by
		// TypeOf instead.
		return ConstantValue{}, false
	case ast.UnOpPos:
		v, ok := Evaluate(&d.Value, ctx)
		if !ok || v.Type == TBigInt {
			return ConstantValue{}, false
		}
		return ConstantValue{Type: TNumber, Number: toNumber(v)}, true
	case ast.UnOpNeg:
		v, ok := Evaluate(&d.Value, ctx)
		if !ok {
			return ConstantValue{}, false
		}
		return ConstantValue{Type: TNumber, Number: helpers.NewConstFloat(toNumber(v)).Neg().Value()}, true
	case ast.UnOpCpl:
		v, ok := Evaluate(&d.Value, ctx)
		if !ok {
			return ConstantValue{}, false
		}
		return ConstantValue{Type: TNumber, Number: float64(^toInt32(toNumber(v)))}, true
	}
	return ConstantValue{}, false
}

func evalBinary(op ast.BinOp, left, right *ast.Expr, ctx GlobalContext) (ConstantValue, bool) {
	if op.IsShortCircuit() {
		lv, ok := Evaluate(left, ctx)
		if !ok {
			return ConstantValue{}, false
		}
		switch op {
		case ast.BinOpLogicalAnd:
			if !toBoolean(lv) {
				return lv, true
			}
			return Evaluate(right, ctx)
		case ast.BinOpLogicalOr:
			if toBoolean(lv) {
				return lv, true
			}
			return Evaluate(right, ctx)
		case ast.BinOpNullishCoalescing:
			if lv.Type != TNull && lv.Type != TUndefined {
				return lv, true
			}
			return Evaluate(right, ctx)
		}
	}

	lv, lok := Evaluate(left, ctx)
	rv, rok := Evaluate(right, ctx)
	if !lok || !rok {
		return ConstantValue{}, false
	}

	switch op {
	case ast.BinOpAdd:
		if lv.Type == TString || rv.Type == TString {
			return ConstantValue{Type: TString, String: append(append([]uint16{}, lv.asUTF16()...), rv.asUTF16()...)}, true
		}
		if lv.Type == TBigInt || rv.Type == TBigInt {
			return ConstantValue{}, false
		}
		return ConstantValue{Type: TNumber, Number: helpers.NewConstFloat(toNumber(lv)).Add(helpers.NewConstFloat(toNumber(rv))).Value()}, true
	case ast.BinOpSub:
		return numResult(helpers.NewConstFloat(toNumber(lv)).Sub(helpers.NewConstFloat(toNumber(rv)))), true
	case ast.BinOpMul:
		return numResult(helpers.NewConstFloat(toNumber(lv)).Mul(helpers.NewConstFloat(toNumber(rv)))), true
	case ast.BinOpDiv:
		return numResult(helpers.NewConstFloat(toNumber(lv)).Div(helpers.NewConstFloat(toNumber(rv)))), true
	case ast.BinOpRem:
		return ConstantValue{Type: TNumber, Number: math.Mod(toNumber(lv), toNumber(rv))}, true
	case ast.BinOpPow:
		return numResult(helpers.NewConstFloat(toNumber(lv)).Pow(helpers.NewConstFloat(toNumber(rv)))), true
	case ast.BinOpShl:
		return ConstantValue{Type: TNumber, Number: float64(toInt32(toNumber(lv)) << (toUint32(toNumber(rv)) & 31))}, true
	case ast.BinOpShr:
		return ConstantValue{Type: TNumber, Number: float64(toInt32(toNumber(lv)) >> (toUint32(toNumber(rv)) & 31))}, true
	case ast.BinOpUShr:
		return ConstantValue{Type: TNumber, Number: float64(toUint32(toNumber(lv)) >> (toUint32(toNumber(rv)) & 31))}, true
	case ast.BinOpBitwiseAnd:
		return ConstantValue{Type: TNumber, Number: float64(toInt32(toNumber(lv)) & toInt32(toNumber(rv)))}, true
	case ast.BinOpBitwiseOr:
		return ConstantValue{Type: TNumber, Number: float64(toInt32(toNumber(lv)) | toInt32(toNumber(rv)))}, true
	case ast.BinOpBitwiseXor:
		return ConstantValue{Type: TNumber, Number: float64(toInt32(toNumber(lv)) ^ toInt32(toNumber(rv)))}, true
	case ast.BinOpLt:
		return compare(lv, rv, func(c int, ok bool) bool { return ok && c < 0 })
	case ast.BinOpLe:
		return compare(lv, rv, func(c int, ok bool) bool { return ok && c <= 0 })
	case ast.BinOpGt:
		return compare(lv, rv, func(c int, ok bool) bool { return ok && c > 0 })
	case ast.BinOpGe:
		return compare(lv, rv, func(c int, ok bool) bool { return ok && c >= 0 })
	case ast.BinOpStrictEq:
		return ConstantValue{Type: TBoolean, Bool: strictEquals(lv, rv)}, true
	case ast.BinOpStrictNe:
		return ConstantValue{Type: TBoolean, Bool: !strictEquals(lv, rv)}, true
	case ast.BinOpLooseEq:
		if lv.Type == rv.Type {
			return ConstantValue{Type: TBoolean, Bool: strictEquals(lv, rv)}, true
		}
		// Only fold the unambiguous null/undefined-vs-null/undefined case;
		// everything else needs full ToPrimitive coercion this package
		// doesn't model.
		if isNullish(lv) && isNullish(rv) {
			return ConstantValue{Type: TBoolean, Bool: true}, true
		}
		return ConstantValue{}, false
	case ast.BinOpLooseNe:
		eq, ok := evalBinary(ast.BinOpLooseEq, left, right, ctx)
		if !ok {
			return ConstantValue{}, false
		}
		return ConstantValue{Type: TBoolean, Bool: !eq.Bool}, true
	case ast.BinOpComma:
		return rv, true
	}
	return ConstantValue{}, false
}

func numResult(f helpers.ConstFloat) ConstantValue {
	return ConstantValue{Type: TNumber, Number: f.Value()}
}

func isNullish(v ConstantValue) bool { return v.Type == TNull || v.Type == TUndefined }

func compare(lv, rv ConstantValue, pred func(c int, ok bool) bool) (ConstantValue, bool) {
	if lv.Type == TString && rv.Type == TString {
		c := strings.Compare(helpers.UTF16ToString(lv.String), helpers.UTF16ToString(rv.String))
		return ConstantValue{Type: TBoolean, Bool: pred(c, true)}, true
	}
	a, b := toNumber(lv), toNumber(rv)
	if math.IsNaN(a) || math.IsNaN(b) {
		return ConstantValue{Type: TBoolean, Bool: false}, true
	}
	c := 0
	if a < b {
		c = -1
	} else if a > b {
		c = 1
	}
	return ConstantValue{Type: TBoolean, Bool: pred(c, true)}, true
}

func strictEquals(a, b ConstantValue) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case TUndefined, TNull:
		return true
	case TBoolean:
		return a.Bool == b.Bool
	case TNumber:
		return a.Number == b.Number
	case TString:
		return helpers.UTF16EqualsUTF16(a.String, b.String)
	}
	return false
}

func (v ConstantValue) asUTF16() []uint16 {
	if v.Type == TString {
		return v.String
	}
	return helpers.StringToUTF16(stringify(v))
}

func stringify(v ConstantValue) string {
	switch v.Type {
	case TString:
		return helpers.UTF16ToString(v.String)
	case TNumber:
		return formatNumber(v.Number)
	case TBoolean:
		if v.Bool {
			return "true"
		}
		return "false"
	case TNull:
		return "null"
	case TUndefined:
		return "undefined"
	}
	return ""
}

func toBoolean(v ConstantValue) bool {
	switch v.Type {
	case TUndefined, TNull:
		return false
	case TBoolean:
		return v.Bool
	case TNumber:
		return v.Number != 0 && !math.IsNaN(v.Number)
	case TString:
		return len(v.String) > 0
	}
	return true
}

func toNumber(v ConstantValue) float64 {
	switch v.Type {
	case TNumber:
		return v.Number
	case TBoolean:
		if v.Bool {
			return 1
		}
		return 0
	case TNull:
		return 0
	case TUndefined:
		return math.NaN()
	case TString:
		return parseNumericLiteral(strings.TrimSpace(helpers.UTF16ToString(v.String)))
	}
	return math.NaN()
}

func parseNumericLiteral(s string) float64 {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// formatNumber renders f the way ToString(Number) would for the finite,
// non-exponential range this package's ToBoolean/string-concat folding
// needs; values outside that range fall back to Go's shortest round-trip
// form, which matches ECMAScript's significant-digit algorithm closely
// enough for constant folding (codegen is expected to re-derive the exact
// textual form for output, not this helper).
func formatNumber(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.IsInf(f, 1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	if f == 0 {
		if math.Signbit(f) {
			return "0"
		}
		return "0"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// toInt32/toUint32 implement the ECMAScript ToInt32/ToUint32 abstract
// operations used by bitwise operators, matching spec.md §4.4's explicit
// call-out that bit ops need JS's 32-bit coercion rather than Go's.
func toInt32(f float64) int32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	u := toUint32(f)
	return int32(u)
}

func toUint32(f float64) uint32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	f = math.Trunc(f)
	m := math.Mod(f, 4294967296)
	if m < 0 {
		m += 4294967296
	}
	return uint32(m)
}
