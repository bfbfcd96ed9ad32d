package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oxc-go/oxc-core/internal/ast"
	"github.com/oxc-go/oxc-core/internal/linter"
	"github.com/oxc-go/oxc-core/internal/linter/rules"
	"github.com/oxc-go/oxc-core/internal/logger"
	"github.com/oxc-go/oxc-core/internal/minifier"
	"github.com/oxc-go/oxc-core/internal/oxcconfig"
)

// resolveSourceType maps a file extension to a parse mode, the same
// loader-by-extension convention the teacher's --loader:X=L flag expresses
// explicitly on the command line; oxcgo infers it instead since every
// subcommand here takes a fixed set of source kinds.
func resolveSourceType(path string) ast.SourceType {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".d.ts") {
		return ast.SourceType{IsModule: true, IsTypeScript: true, IsDeclaration: true}
	}
	switch filepath.Ext(lower) {
	case ".ts":
		return ast.SourceType{IsModule: true, IsTypeScript: true}
	case ".tsx":
		return ast.SourceType{IsModule: true, IsTypeScript: true, IsJSX: true}
	case ".jsx":
		return ast.SourceType{IsModule: true, IsJSX: true}
	case ".cjs":
		return ast.SourceType{IsModule: false}
	default:
		return ast.SourceType{IsModule: true}
	}
}

func readSource(path string) (string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(contents), nil
}

func writeSource(path, contents string) error {
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// loadConfig reads an oxcgo config file if configPath is non-empty,
// returning a config with cmd/oxcgo-friendly zero values (every plugin on,
// default compress options) otherwise.
func loadConfig(configPath string) (*oxcconfig.Config, error) {
	if configPath == "" {
		return &oxcconfig.Config{Compress: minifier.DefaultOptions()}, nil
	}
	contents, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", configPath, err)
	}
	return oxcconfig.Load(configPath, contents)
}

// buildRegistry returns the default rule set narrowed by cfg's plugin and
// rule filters, printing a warning to stderr for any filter that didn't
// match a registered rule.
func buildRegistry(cfg *oxcconfig.Config) *linter.Registry {
	reg := rules.Default()
	for _, w := range oxcconfig.ApplyFilters(reg, cfg) {
		fmt.Fprintln(os.Stderr, "oxcgo: "+w)
	}
	return reg
}

func printMsgs(msgs []logger.Msg) {
	if len(msgs) == 0 {
		return
	}
	logger.PrintToStderr(msgs)
}

func printFindings(findings []linter.Finding) {
	msgs := make([]logger.Msg, len(findings))
	for i, f := range findings {
		msgs[i] = f.Msg
	}
	logger.PrintToStderr(msgs)
}
