package rules

import "github.com/oxc-go/oxc-core/internal/linter"

// Default returns a Registry with every rule this package ships, at its
// default severity, the set cmd/oxcgo starts from before a config file's
// plugin/rule filters narrow it.
func Default() *linter.Registry {
	reg := linter.NewRegistry()
	reg.Register(Eqeqeq{})
	reg.Register(NewMaxDepth(4))
	reg.Register(NoDebugger{})
	reg.Register(NoExtraBind{})
	reg.Register(NoLabels{})
	reg.Register(NoNodejsModules{})
	reg.Register(NoUnusedVars{})
	reg.Register(NoVar{})
	reg.Register(NoDupeRegexpFlags{})
	reg.Register(NoRedundantCharClassRange{})
	return reg
}
