package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxc-go/oxc-core/internal/ast"
	"github.com/oxc-go/oxc-core/internal/linter"
	"github.com/oxc-go/oxc-core/internal/linter/rules"
	"github.com/oxc-go/oxc-core/internal/logger"
	"github.com/oxc-go/oxc-core/internal/parser"
	"github.com/oxc-go/oxc-core/internal/semantic"
)

func lintSource(t *testing.T, src string, rule linter.Rule) []linter.Finding {
	t.Helper()
	program, msgs := parser.Parse("test.js", src, ast.SourceType{})
	require.Empty(t, msgs)
	model := semantic.Build(program, ast.SourceType{})
	reg := linter.NewRegistry()
	reg.Register(rule)
	source := &logger.Source{PrettyPath: "test.js", Contents: src}
	return linter.Run(reg, program, model, source)
}

func TestNoUnusedVars(t *testing.T) {
	findings := lintSource(t, "function f() { let x = 1; return 2; }", rules.NoUnusedVars{})
	require.Len(t, findings, 1)
	require.Contains(t, findings[0].Msg.Data.Text, "x")
}

func TestNoUnusedVarsIgnoresUsed(t *testing.T) {
	findings := lintSource(t, "function f() { let x = 1; return x; }", rules.NoUnusedVars{})
	require.Empty(t, findings)
}

func TestNoVar(t *testing.T) {
	findings := lintSource(t, "var x = 1;", rules.NoVar{})
	require.Len(t, findings, 1)
}

func TestNoDebuggerHasFix(t *testing.T) {
	findings := lintSource(t, "debugger;", rules.NoDebugger{})
	require.Len(t, findings, 1)
	require.Len(t, findings[0].Fixes, 1)
	require.Equal(t, linter.FixSafe, findings[0].Fixes[0].Kind)
}

func TestEqeqeqAllowsNullCheck(t *testing.T) {
	findings := lintSource(t, "x == null;", rules.Eqeqeq{})
	require.Empty(t, findings)
}

func TestEqeqeqFlagsLooseEquality(t *testing.T) {
	findings := lintSource(t, "x == 1;", rules.Eqeqeq{})
	require.Len(t, findings, 1)
}

func TestNoLabels(t *testing.T) {
	findings := lintSource(t, "outer: for (;;) { break outer; }", rules.NoLabels{})
	require.Len(t, findings, 1)
}

func TestNoNodejsModules(t *testing.T) {
	findings := lintSource(t, "import fs from 'fs';", rules.NoNodejsModules{})
	require.Len(t, findings, 1)
}

func TestNoDupeRegexpFlags(t *testing.T) {
	findings := lintSource(t, "const re = /foo/gg;", rules.NoDupeRegexpFlags{})
	require.Len(t, findings, 1)
}

func TestMaxDepth(t *testing.T) {
	src := `function f() {
		if (true) {
			if (true) {
				if (true) {
					if (true) {
						if (true) {}
					}
				}
			}
		}
	}`
	findings := lintSource(t, src, rules.NewMaxDepth(3))
	require.NotEmpty(t, findings)
}
