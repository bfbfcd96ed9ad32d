// The two regex lint rules below are the reason internal/regexp exists
// (SPEC_FULL.md §6.1): no other component needs a regex-pattern AST.
package rules

import (
	"fmt"

	"github.com/oxc-go/oxc-core/internal/ast"
	"github.com/oxc-go/oxc-core/internal/linter"
	"github.com/oxc-go/oxc-core/internal/regexp"
)

// NoDupeRegexpFlags flags a regex literal whose flag string repeats a
// letter, e.g. /foo/gg, which is a SyntaxError at runtime in most engines
// but easy to introduce via a careless string edit before this rule
// existed to catch it pre-parse.
type NoDupeRegexpFlags struct{}

func (NoDupeRegexpFlags) ID() string                      { return "no-dupe-regexp-flags" }
func (NoDupeRegexpFlags) Plugin() string                  { return "regexp" }
func (NoDupeRegexpFlags) DefaultSeverity() linter.Severity { return linter.SeverityError }

func (NoDupeRegexpFlags) Run(ctx *linter.RuleContext) {
	ast.WalkProgram(ctx.Program, &ast.Visitor{
		EnterExpr: func(e *ast.Expr) {
			re, ok := e.Data.(*ast.ERegExp)
			if !ok {
				return
			}
			for _, c := range regexp.DuplicateFlags(re.Flags) {
				ctx.Report(e.Span, fmt.Sprintf("duplicate regular expression flag '%c'", c))
			}
		},
	})
}

// NoRedundantCharClassRange flags a character class range fully covered by
// an earlier range in the same class, e.g. [a-zA-Za-z] where the trailing
// "a-z" repeats the first.
type NoRedundantCharClassRange struct{}

func (NoRedundantCharClassRange) ID() string                      { return "no-redundant-char-class-range" }
func (NoRedundantCharClassRange) Plugin() string                  { return "regexp" }
func (NoRedundantCharClassRange) DefaultSeverity() linter.Severity { return linter.SeverityWarn }

func (NoRedundantCharClassRange) Run(ctx *linter.RuleContext) {
	ast.WalkProgram(ctx.Program, &ast.Visitor{
		EnterExpr: func(e *ast.Expr) {
			re, ok := e.Data.(*ast.ERegExp)
			if !ok {
				return
			}
			pattern, err := regexp.Parse(re.Pattern, re.Flags)
			if err != nil {
				return // not this rule's concern; a syntax-level regex diagnostic would own parse failures
			}
			walkRegexpNode(&pattern.Body, func(c *regexp.CharClass) {
				if redundant := regexp.RedundantRanges(c); len(redundant) > 0 {
					ctx.Report(e.Span, "character class contains a redundant range")
				}
			})
		},
	})
}

func walkRegexpNode(d *regexp.Disjunction, visit func(*regexp.CharClass)) {
	for ai := range d.Alternatives {
		for _, item := range d.Alternatives[ai].Items {
			walkRegexpItem(item, visit)
		}
	}
}

func walkRegexpItem(n regexp.Node, visit func(*regexp.CharClass)) {
	switch d := n.(type) {
	case *regexp.CharClass:
		visit(d)
	case *regexp.Group:
		walkRegexpNode(&d.Body, visit)
	case *regexp.Quantifier:
		walkRegexpItem(d.Body, visit)
	}
}
