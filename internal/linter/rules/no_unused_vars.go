// Package rules is the built-in rule set, grouped one file per rule in the
// teacher's own multi-file-per-concern layout (internal/js_parser splits
// across js_parser.go/js_parser_lower_class.go/etc rather than one giant
// file). Each rule is grounded either directly on an original_source
// crates/oxc_linter rule file (named in its doc comment) or, where
// SPEC_FULL.md names the rule without an original_source counterpart, on
// the well-known ESLint semantics of the same name.
package rules

import (
	"fmt"

	"github.com/oxc-go/oxc-core/internal/linter"
	"github.com/oxc-go/oxc-core/internal/semantic"
)

// NoUnusedVars flags bindings that are declared but never read, using the
// symbol-classification detail from
// crates/oxc_linter/src/rules/eslint/no_unused_vars/symbol.rs (SPEC_FULL.md
// §10): parameters, catch bindings, functions, and classes are reported
// with a different message than a plain local, instead of one blanket
// "declared but never used" text. Rest-sibling bindings are not told apart
// and are reported as plain variables.
type NoUnusedVars struct{}

func (NoUnusedVars) ID() string                        { return "no-unused-vars" }
func (NoUnusedVars) Plugin() string                    { return "eslint" }
func (NoUnusedVars) DefaultSeverity() linter.Severity   { return linter.SeverityWarn }

func (NoUnusedVars) Run(ctx *linter.RuleContext) {
	for _, sym := range ctx.Model.Symbols {
		if sym.Flags&semantic.SymbolUsed != 0 {
			continue
		}
		if sym.Flags&semantic.SymbolImport != 0 || sym.Flags&semantic.SymbolExported != 0 {
			continue
		}
		if sym.Name.String() == "" || sym.Name.String() == "_" {
			continue
		}
		kind := classify(sym.Flags)
		ctx.Report(sym.Span, fmt.Sprintf("%s '%s' is defined but never used", kind, sym.Name.String()))
	}
}

func classify(flags semantic.SymbolFlags) string {
	switch {
	case flags&semantic.SymbolCatchParam != 0:
		return "catch binding"
	case flags&semantic.SymbolParameter != 0:
		return "argument"
	case flags&semantic.SymbolFunction != 0:
		return "function"
	case flags&semantic.SymbolClass != 0:
		return "class"
	default:
		return "variable"
	}
}
