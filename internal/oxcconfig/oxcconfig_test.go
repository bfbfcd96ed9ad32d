package oxcconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxc-go/oxc-core/internal/linter"
	"github.com/oxc-go/oxc-core/internal/linter/rules"
	"github.com/oxc-go/oxc-core/internal/minifier"
)

func TestParseFilterKeyRule(t *testing.T) {
	kind, plugin, name, err := ParseFilterKey("eslint/no-debugger")
	require.NoError(t, err)
	assert.Equal(t, FilterRule, kind)
	assert.Equal(t, "eslint", plugin)
	assert.Equal(t, "no-debugger", name)
}

func TestParseFilterKeyCategory(t *testing.T) {
	kind, _, name, err := ParseFilterKey("correctness")
	require.NoError(t, err)
	assert.Equal(t, FilterCategory, kind)
	assert.Equal(t, "correctness", name)
}

func TestParseFilterKeyGeneric(t *testing.T) {
	kind, _, name, err := ParseFilterKey("no-debugger")
	require.NoError(t, err)
	assert.Equal(t, FilterGeneric, kind)
	assert.Equal(t, "no-debugger", name)
}

func TestParseFilterKeyMalformed(t *testing.T) {
	_, _, _, err := ParseFilterKey("eslint/")
	assert.Error(t, err)
	_, _, _, err = ParseFilterKey("/no-debugger")
	assert.Error(t, err)
}

func TestLoadJSON(t *testing.T) {
	contents := []byte(`{
		"plugins": {"eslint": true, "react": false},
		"rules": {"eslint/no-debugger": "error", "correctness": "warn"},
		"compress": {"profile": "smallest", "dropDebugger": true}
	}`)
	cfg, err := Load("oxlint.json", contents)
	require.NoError(t, err)
	assert.True(t, cfg.Plugins["eslint"])
	assert.False(t, cfg.Plugins["react"])
	require.Len(t, cfg.Filters, 2)
	assert.True(t, cfg.Compress.DropDebugger)
}

func TestLoadYAML(t *testing.T) {
	contents := []byte("plugins:\n  eslint: true\nrules:\n  eslint/no-var: warn\n")
	cfg, err := Load("oxlint.yaml", contents)
	require.NoError(t, err)
	assert.True(t, cfg.Plugins["eslint"])
	require.Len(t, cfg.Filters, 1)
	assert.Equal(t, linter.SeverityWarn, cfg.Filters[0].Severity)
}

func TestLoadInvalidSeverityIsError(t *testing.T) {
	contents := []byte(`{"rules": {"eslint/no-var": "catastrophic"}}`)
	_, err := Load("oxlint.json", contents)
	assert.Error(t, err)
}

func TestLoadOverridesRequireRuleFilters(t *testing.T) {
	contents := []byte(`{"overrides": [{"files": ["**/*.test.js"], "rules": {"correctness": "off"}}]}`)
	_, err := Load("oxlint.json", contents)
	assert.Error(t, err, "a path override must name a specific plugin/rule pair")
}

func TestLoadOverridesWithRuleFilter(t *testing.T) {
	contents := []byte(`{"overrides": [{"files": ["**/*.test.js"], "rules": {"eslint/no-debugger": "off"}}]}`)
	cfg, err := Load("oxlint.json", contents)
	require.NoError(t, err)
	require.Len(t, cfg.Overrides, 1)
	require.Len(t, cfg.Overrides[0].Sets, 1)
	assert.Equal(t, "no-debugger", cfg.Overrides[0].Sets[0].Rule)
}

func TestDefaultCompressOptionsWhenAbsent(t *testing.T) {
	cfg, err := Load("oxlint.json", []byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, minifier.DefaultOptions(), cfg.Compress)
}

func TestApplyFiltersDisablesPluginWideRules(t *testing.T) {
	reg := rules.Default()
	cfg := &Config{Plugins: map[string]bool{"eslint": false}}
	ApplyFilters(reg, cfg)
	for _, entry := range reg.Entries() {
		if entry.Rule.Plugin() == "eslint" {
			assert.Equal(t, linter.SeverityOff, entry.Severity, entry.Rule.ID())
		}
	}
}

func TestApplyFiltersPerRuleOverrideWins(t *testing.T) {
	reg := rules.Default()
	cfg := &Config{Filters: []Filter{{Kind: FilterRule, Plugin: "eslint", Name: "no-debugger", Severity: linter.SeverityOff}}}
	ApplyFilters(reg, cfg)
	for _, entry := range reg.Entries() {
		if entry.Rule.Plugin() == "eslint" && entry.Rule.ID() == "no-debugger" {
			assert.Equal(t, linter.SeverityOff, entry.Severity)
		}
	}
}
