package minifier

import "github.com/oxc-go/oxc-core/internal/ast"

// Context carries the configuration and mutable changed-flag every pass in
// this package shares, mirroring the teacher's parser-local "mangle" state
// but scoped to just this standalone pass (spec.md §4.4's passes have no
// parser to hang state off of).
type Context struct {
	Opts    CompressOptions
	Globals GlobalContext

	// SymbolTableStale is set once a pass removes or rewrites a binding in a
	// way the semantic model's Symbol/Reference tables no longer describe
	// accurately. Per spec.md §3.5, once set, symbol-dependent passes are
	// skipped for the rest of the current fixed-point iteration instead of
	// operating on stale data.
	SymbolTableStale bool

	changed bool
}

func (c *Context) sideEffectCtx() SideEffectContext {
	return SideEffectContext{Globals: c.Globals, Treeshake: c.Opts.Treeshake}
}

// Run mutates program's statement list to a fixed point by repeatedly
// applying every pass until none reports a change or the iteration cap is
// hit, per spec.md §4.4 "Fixed-point". Returns the number of iterations
// actually run and whether the symbol table should be considered stale
// afterward.
func Run(program *ast.Program, opts CompressOptions, globals GlobalContext) (iterations int, symbolTableStale bool) {
	if globals == nil {
		globals = TrustAllGlobals
	}
	c := &Context{Opts: opts, Globals: globals}
	cap := opts.iterationCap()
	for iterations = 0; iterations < cap; iterations++ {
		c.changed = false
		program.Body = compressStmts(program.Body, c, true)
		if !c.changed {
			iterations++
			break
		}
	}
	return iterations, c.SymbolTableStale
}
