package minifier

import "github.com/oxc-go/oxc-core/internal/ast"

// PropertyReadSideEffects configures whether a property load ("a.b" /
// "a[b]") is assumed to be able to run a getter, matching
// CompressOptions.Treeshake.PropertyReadSideEffects (spec.md §6).
type PropertyReadSideEffects uint8

const (
	PropertyReadAll PropertyReadSideEffects = iota
	PropertyReadNone
	PropertyReadOnlyUnknownGlobals
)

// TreeShakeOptions mirrors spec.md §6's CompressOptions.treeshake struct.
type TreeShakeOptions struct {
	Annotations             bool
	ManualPureFunctions     []string
	PropertyReadSideEffects PropertyReadSideEffects
	UnknownGlobalSideEffects bool
}

// SideEffectContext is the minimal read-only view MayHaveSideEffects needs:
// whether a bare identifier is a known, unshadowed global (reused from
// GlobalContext so callers only build one implementation), plus the
// tree-shake configuration.
type SideEffectContext struct {
	Globals   GlobalContext
	Treeshake TreeShakeOptions
}

// MayHaveSideEffects conservatively decides whether dropping expr (as a
// whole, unused expression) would change observable behavior, per spec.md
// §4.4: calls are assumed impure unless their callee is a manually-declared
// pure function, member loads on possibly-nullish receivers can trigger
// getters, and references to unknown globals count as effectful unless
// UnknownGlobalSideEffects says otherwise. Grounded on the teacher's
// js_ast_helpers.go ExprCanBeRemovedIfUnused, generalized to take the
// TreeShakeOptions knobs spec.md names instead of the teacher's fixed rules.
func MayHaveSideEffects(e *ast.Expr, ctx SideEffectContext) bool {
	if e == nil || e.Data == nil {
		return false
	}
	switch d := e.Data.(type) {
	case *ast.ENumber, *ast.EBigInt, *ast.EString, *ast.EBoolean,
		*ast.ENull, *ast.EUndefined, *ast.EThis, *ast.ERegExp,
		*ast.EMissing, *ast.EFunction, *ast.EArrow, *ast.EImportMeta:
		return false
	case *ast.EIdentifier:
		return isUnknownGlobalReference(d.ReferenceId, ctx)
	case *ast.ETemplate:
		if d.Tag != nil {
			return true
		}
		for i := range d.Parts {
			if MayHaveSideEffects(&d.Parts[i], ctx) {
				return true
			}
		}
		return false
	case *ast.EArray:
		for i := range d.Items {
			if MayHaveSideEffects(&d.Items[i], ctx) {
				return true
			}
		}
		return false
	case *ast.ESpread:
		return true // iteration can run arbitrary user code
	case *ast.EObject:
		for i := range d.Properties {
			p := &d.Properties[i]
			if p.Kind == ast.PropertyGet || p.Kind == ast.PropertySet || p.IsSpread {
				return true
			}
			if p.IsComputed && MayHaveSideEffects(&p.Key.Value, ctx) {
				return true
			}
			if p.Value != nil && MayHaveSideEffects(p.Value, ctx) {
				return true
			}
		}
		return false
	case *ast.EUnary:
		switch d.Op {
		case ast.UnOpDelete, ast.UnOpPreInc, ast.UnOpPreDec, ast.UnOpPostInc, ast.UnOpPostDec:
			return true
		}
		return MayHaveSideEffects(&d.Value, ctx)
	case *ast.EBinary:
		if d.Op.IsAssign() {
			return true
		}
		return MayHaveSideEffects(&d.Left, ctx) || MayHaveSideEffects(&d.Right, ctx)
	case *ast.EConditional:
		return MayHaveSideEffects(&d.Test, ctx) || MayHaveSideEffects(&d.Yes, ctx) || MayHaveSideEffects(&d.No, ctx)
	case *ast.ESequence:
		for i := range d.Items {
			if MayHaveSideEffects(&d.Items[i], ctx) {
				return true
			}
		}
		return false
	case *ast.EAssign:
		return true
	case *ast.EDot:
		if d.OptionalChain != ast.OptionalChainNone {
			return true // the chain can short-circuit, which is a branch
		}
		return mayGetterFire(&d.Target, ctx) || MayHaveSideEffects(&d.Target, ctx)
	case *ast.EIndex:
		return mayGetterFire(&d.Target, ctx) || MayHaveSideEffects(&d.Target, ctx) || MayHaveSideEffects(&d.Index, ctx)
	case *ast.ECall, *ast.ENew:
		return !isManuallyPureCall(e, ctx)
	case *ast.EAwait, *ast.EYield, *ast.EImportCall:
		return true
	case *ast.EClass:
		return true // extends/computed keys/static blocks can run code
	case *ast.EAnnotation:
		return MayHaveSideEffects(&d.Value, ctx)
	}
	return true
}

func mayGetterFire(target *ast.Expr, ctx SideEffectContext) bool {
	switch ctx.Treeshake.PropertyReadSideEffects {
	case PropertyReadNone:
		return false
	case PropertyReadOnlyUnknownGlobals:
		id, ok := target.Data.(*ast.EIdentifier)
		return ok && isUnknownGlobalReference(id.ReferenceId, ctx)
	default:
		return true
	}
}

func isUnknownGlobalReference(refID ast.ReferenceId, ctx SideEffectContext) bool {
	if refID != ast.InvalidReferenceId {
		return false // resolved to a local symbol, not a global
	}
	return ctx.Treeshake.UnknownGlobalSideEffects
}

func isManuallyPureCall(e *ast.Expr, ctx SideEffectContext) bool {
	if len(ctx.Treeshake.ManualPureFunctions) == 0 {
		return false
	}
	var target *ast.Expr
	switch d := e.Data.(type) {
	case *ast.ECall:
		target = &d.Target
	case *ast.ENew:
		target = &d.Target
	default:
		return false
	}
	name, ok := calleeName(target)
	if !ok {
		return false
	}
	for _, p := range ctx.Treeshake.ManualPureFunctions {
		if p == name {
			return true
		}
	}
	return false
}

func calleeName(e *ast.Expr) (string, bool) {
	switch d := e.Data.(type) {
	case *ast.EIdentifier:
		return d.Name.String(), true
	case *ast.EDot:
		base, ok := calleeName(&d.Target)
		if !ok {
			return "", false
		}
		return base + "." + d.Name.String(), true
	}
	return "", false
}
