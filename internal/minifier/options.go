// Package minifier implements the peephole compression passes described in
// spec.md §4.4/§6: constant folding, dead-code elimination, statement
// joining, and if-statement mangling. Grounded on the teacher's
// internal/js_parser mangleStmts/mangleIf/mangleFor family and
// internal/js_ast/js_ast_helpers.go's ToBooleanWithSideEffects/
// SimplifyUnusedExpr, pulled out of the parser into a standalone pass that
// runs on the already-built AST and semantic model (spec.md's minifier is
// not fused into parsing the way the teacher's is).
package minifier

import "github.com/oxc-go/oxc-core/internal/estarget"

// UnusedMode is CompressOptions.unused from spec.md §6.
type UnusedMode uint8

const (
	UnusedRemove UnusedMode = iota
	UnusedKeepAssign
	UnusedKeep
)

// KeepNamesOptions mirrors CompressOptions.keep_names.
type KeepNamesOptions struct {
	Function bool
	Class    bool
}

// Profile selects one of spec.md §4.4's named presets.
type Profile uint8

const (
	ProfileSmallest Profile = iota
	ProfileSafest
	ProfileDCEOnly
	ProfileCustom
)

// CompressOptions mirrors spec.md §6's compress configuration surface
// field-for-field.
type CompressOptions struct {
	Profile       Profile
	Target        []estarget.Target
	DropDebugger  bool
	DropConsole   bool
	JoinVars      bool
	Sequences     bool
	Unused        UnusedMode
	KeepNames     KeepNamesOptions
	Treeshake     TreeShakeOptions
	MaxIterations int // 0 means the default of 10, matching the fixed-point cap
}

// DefaultOptions returns the "safest" compression option set: every
// syntax-preserving pass enabled, console calls kept (dropping console
// output silently surprises users more often than it helps) and unknown
// global reads treated as potentially effectful.
func DefaultOptions() CompressOptions {
	return CompressOptions{
		Profile:       ProfileSafest,
		DropDebugger:  true,
		DropConsole:   false,
		JoinVars:      true,
		Sequences:     true,
		Unused:        UnusedRemove,
		Treeshake:     TreeShakeOptions{PropertyReadSideEffects: PropertyReadAll, UnknownGlobalSideEffects: true},
		MaxIterations: 10,
	}
}

// SmallestOptions additionally drops console calls, matching the "smallest"
// preset's bias toward size over debuggability.
func SmallestOptions() CompressOptions {
	o := DefaultOptions()
	o.Profile = ProfileSmallest
	o.DropConsole = true
	return o
}

func (o CompressOptions) iterationCap() int {
	if o.MaxIterations <= 0 {
		return 10
	}
	return o.MaxIterations
}
