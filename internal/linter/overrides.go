package linter

import "github.com/bmatcuk/doublestar/v4"

// SeverityOverride sets one (plugin, rule) pair's severity; Rule == "" means
// every rule currently registered under Plugin.
type SeverityOverride struct {
	Plugin   string
	Rule     string
	Severity Severity
}

// PathOverride is one entry of spec.md §4.3's "path-specific overrides
// applied when the file matches a glob": Files holds the glob patterns (in
// the doublestar/v4 syntax, e.g. "**/*.test.js"), Sets the severities to
// apply when a file matches one of them.
type PathOverride struct {
	Files []string
	Sets  []SeverityOverride
}

// ResolveForPath applies every PathOverride whose glob matches relPath, in
// order, to a clone of base — later entries win, per spec.md §4.3's "Per-rule
// overrides, in config-file order; later entries win" rule extended to
// path scope. relPath should already be slash-separated and relative to the
// project root, matching the convention doublestar.Match expects.
func ResolveForPath(base *Registry, overrides []PathOverride, relPath string) *Registry {
	reg := base.Clone()
	for _, ov := range overrides {
		if !matchesAny(ov.Files, relPath) {
			continue
		}
		for _, set := range ov.Sets {
			if set.Rule != "" {
				reg.SetSeverity(set.Plugin, set.Rule, set.Severity)
				continue
			}
			for i, entry := range reg.byPlugin[set.Plugin] {
				reg.byPlugin[set.Plugin][i] = RuleEntry{Rule: entry.Rule, Severity: set.Severity}
			}
		}
	}
	return reg
}

func matchesAny(globs []string, relPath string) bool {
	for _, g := range globs {
		if ok, err := doublestar.Match(g, relPath); err == nil && ok {
			return true
		}
	}
	return false
}
