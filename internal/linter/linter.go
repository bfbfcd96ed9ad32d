// Package linter implements the rule-plugin lint engine: a Rule interface,
// a RuleContext passed to each rule, a registry grouped by plugin, Fix
// representation with an LSP-code-action-shaped Kind/Title (see DESIGN.md
// "Supplemented features"), and the fix-all overlap/touch drop policy.
// Dispatch is a tagged-union type switch over *ast.Stmt/*ast.Expr, the same
// style the AST package itself uses for its E/S marker interfaces, rather
// than reflection or a vtable-based visitor registry. Findings are emitted
// as logger.Msg (DKind KindLint) so they flow through the same
// sorting/rendering/fingerprinting path as parser and semantic diagnostics
// instead of a parallel diagnostic type.
package linter

import (
	"sort"

	"github.com/oxc-go/oxc-core/internal/ast"
	"github.com/oxc-go/oxc-core/internal/logger"
	"github.com/oxc-go/oxc-core/internal/semantic"
)

// Severity mirrors the lint-specific levels a rule can be configured at.
// SeverityOff disables the rule entirely; Warn/Error map onto logger.Warning
// and logger.Error respectively once a Finding becomes a logger.Msg.
type Severity uint8

const (
	SeverityOff Severity = iota
	SeverityWarn
	SeverityError
)

func (s Severity) msgKind() logger.MsgKind {
	if s == SeverityError {
		return logger.Error
	}
	return logger.Warning
}

// FixKind orders fixes from safest to least safe, the same lattice an LSP
// code-action menu would present (see SPEC_FULL.md §10 "LSP code actions
// shape").
type FixKind uint8

const (
	FixSafe FixKind = iota
	FixSuggestion
	FixDangerous
)

// Fix is a single textual replacement a rule proposes for a finding.
type Fix struct {
	Span        ast.Span
	Replacement string
	Kind        FixKind
	Title       string
}

// Finding is one lint result: a logger.Msg ready for the shared
// sort/render/fingerprint path, plus the span and fixes a rule attached to
// it (logger.Msg has no room for either, since non-lint diagnostics never
// carry them).
type Finding struct {
	Msg  logger.Msg
	Span ast.Span
	Fixes []Fix
}

// RuleContext is the read-only view a Rule gets of one file's already-built
// AST and semantic model, plus the report sink.
type RuleContext struct {
	Program  *ast.Program
	Model    *semantic.Model
	Source   *logger.Source
	Severity Severity

	report func(span ast.Span, message string, fixes []Fix)
}

// Report records one finding at span with message, optionally carrying
// fixes a consumer may choose to apply.
func (c *RuleContext) Report(span ast.Span, message string, fixes ...Fix) {
	c.report(span, message, fixes)
}

// Rule is one lint check. Run is called once per file; rules that only
// care about statements or expressions register an ast.Visitor internally
// rather than the engine dispatching per-node, since rules vary widely in
// which node shapes they care about and a per-node callback table would
// just be a worse version of the visitor that already exists.
type Rule interface {
	ID() string
	Plugin() string
	DefaultSeverity() Severity
	Run(ctx *RuleContext)
}

// RuleEntry pairs a rule with its configured severity, the unit the
// registry stores per (plugin, rule) key.
type RuleEntry struct {
	Rule     Rule
	Severity Severity
}

// Registry groups rules by plugin so config toggles ("plugin:category" or
// "plugin/rule") can address either a whole plugin or one rule within it.
type Registry struct {
	byPlugin map[string][]RuleEntry
}

func NewRegistry() *Registry {
	return &Registry{byPlugin: map[string][]RuleEntry{}}
}

func (r *Registry) Register(rule Rule) {
	plugin := rule.Plugin()
	r.byPlugin[plugin] = append(r.byPlugin[plugin], RuleEntry{Rule: rule, Severity: rule.DefaultSeverity()})
}

// SetSeverity overrides a single rule's severity; SeverityOff disables it.
// The bool result reports whether plugin/ruleID matched a registered rule,
// so callers can surface a diagnostic for a typo'd config entry instead of
// silently ignoring it.
func (r *Registry) SetSeverity(plugin, ruleID string, sev Severity) bool {
	entries := r.byPlugin[plugin]
	found := false
	for i := range entries {
		if entries[i].Rule.ID() == ruleID {
			entries[i].Severity = sev
			found = true
		}
	}
	return found
}

// RuleNames returns every registered "plugin/rule" key, used to build typo
// suggestions for config entries that don't match any rule.
func (r *Registry) RuleNames() []string {
	var out []string
	for plugin, entries := range r.byPlugin {
		for _, e := range entries {
			out = append(out, plugin+"/"+e.Rule.ID())
		}
	}
	return out
}

// Clone returns a Registry with the same rules and severities, safe to
// mutate independently (used to apply per-path overrides without disturbing
// the base configuration other files still resolve against).
func (r *Registry) Clone() *Registry {
	clone := NewRegistry()
	for plugin, entries := range r.byPlugin {
		clone.byPlugin[plugin] = append([]RuleEntry(nil), entries...)
	}
	return clone
}

func (r *Registry) Entries() []RuleEntry {
	var out []RuleEntry
	plugins := make([]string, 0, len(r.byPlugin))
	for p := range r.byPlugin {
		plugins = append(plugins, p)
	}
	sort.Strings(plugins)
	for _, p := range plugins {
		out = append(out, r.byPlugin[p]...)
	}
	return out
}

// Run executes every enabled rule in the registry over one file's program
// and semantic model, returning findings sorted by position (spec.md §5
// "Ordering guarantees").
func Run(reg *Registry, program *ast.Program, model *semantic.Model, source *logger.Source) []Finding {
	var findings []Finding
	for _, entry := range reg.Entries() {
		if entry.Severity == SeverityOff {
			continue
		}
		entry := entry
		ctx := &RuleContext{
			Program:  program,
			Model:    model,
			Source:   source,
			Severity: entry.Severity,
			report: func(span ast.Span, message string, fixes []Fix) {
				r := logger.RangeFromSpan(span.Start, span.End)
				findings = append(findings, Finding{
					Msg: logger.Msg{
						Kind:   entry.Severity.msgKind(),
						DKind:  logger.KindLint,
						RuleId: entry.Rule.Plugin() + "/" + entry.Rule.ID(),
						Data:   logger.MsgData{Text: message, Location: source.LocationForRange(r)},
					},
					Span:  span,
					Fixes: fixes,
				})
			},
		}
		entry.Rule.Run(ctx)
	}
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Span.Start != findings[j].Span.Start {
			return findings[i].Span.Start < findings[j].Span.Start
		}
		return findings[i].Msg.RuleId < findings[j].Msg.RuleId
	})
	return findings
}

// FixAll selects a non-overlapping subset of fixes to apply together,
// ordered by span start, dropping any fix that overlaps or merely touches
// (shares a boundary with) a fix already accepted — the same conservative
// policy ESLint's "fix all" and the teacher's own minifier fixed-point
// driver use to avoid producing a result that depends on application
// order.
func FixAll(findings []Finding, kindLimit FixKind) []Fix {
	var candidates []Fix
	for _, f := range findings {
		for _, fix := range f.Fixes {
			if fix.Kind <= kindLimit {
				candidates = append(candidates, fix)
			}
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Span.Start < candidates[j].Span.Start })

	var accepted []Fix
	for _, f := range candidates {
		conflict := false
		for _, a := range accepted {
			if f.Span.OverlapsOrTouches(a.Span) {
				conflict = true
				break
			}
		}
		if !conflict {
			accepted = append(accepted, f)
		}
	}
	return accepted
}

// ApplyFixes rewrites source by applying non-overlapping fixes (already
// sorted and filtered by FixAll) back to front so earlier spans stay valid.
func ApplyFixes(source string, fixes []Fix) string {
	out := []byte(source)
	for i := len(fixes) - 1; i >= 0; i-- {
		f := fixes[i]
		if int(f.Span.End) > len(out) || f.Span.Start > f.Span.End {
			continue
		}
		var buf []byte
		buf = append(buf, out[:f.Span.Start]...)
		buf = append(buf, f.Replacement...)
		buf = append(buf, out[f.Span.End:]...)
		out = buf
	}
	return string(out)
}
