package linter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxc-go/oxc-core/internal/ast"
	"github.com/oxc-go/oxc-core/internal/linter"
)

func TestFixAllDropsOverlapping(t *testing.T) {
	findings := []linter.Finding{
		{Fixes: []linter.Fix{{Span: ast.Span{Start: 0, End: 5}, Replacement: "a"}}},
		{Fixes: []linter.Fix{{Span: ast.Span{Start: 3, End: 8}, Replacement: "b"}}},
		{Fixes: []linter.Fix{{Span: ast.Span{Start: 5, End: 12}, Replacement: "c"}}},
	}
	accepted := linter.FixAll(findings, linter.FixDangerous)
	require.Len(t, accepted, 1) // second and third both touch/overlap the first
	require.Equal(t, "a", accepted[0].Replacement)
}

func TestFixAllRespectsKindLimit(t *testing.T) {
	findings := []linter.Finding{
		{Fixes: []linter.Fix{{Span: ast.Span{Start: 0, End: 1}, Kind: linter.FixDangerous}}},
	}
	require.Empty(t, linter.FixAll(findings, linter.FixSafe))
	require.Len(t, linter.FixAll(findings, linter.FixDangerous), 1)
}

func TestApplyFixes(t *testing.T) {
	src := "var x = 1;"
	fixes := []linter.Fix{{Span: ast.Span{Start: 0, End: 3}, Replacement: "let"}}
	require.Equal(t, "let x = 1;", linter.ApplyFixes(src, fixes))
}

func TestRegistrySeverityOverride(t *testing.T) {
	reg := linter.NewRegistry()
	reg.Register(stubRule{})
	reg.SetSeverity("test", "stub", linter.SeverityOff)
	entries := reg.Entries()
	require.Len(t, entries, 1)
	require.Equal(t, linter.SeverityOff, entries[0].Severity)
}

type stubRule struct{}

func (stubRule) ID() string                      { return "stub" }
func (stubRule) Plugin() string                  { return "test" }
func (stubRule) DefaultSeverity() linter.Severity { return linter.SeverityWarn }
func (stubRule) Run(ctx *linter.RuleContext)      {}
