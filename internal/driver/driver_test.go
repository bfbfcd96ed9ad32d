package driver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxc-go/oxc-core/internal/ast"
	"github.com/oxc-go/oxc-core/internal/linter/rules"
	"github.com/oxc-go/oxc-core/internal/minifier"
	"github.com/oxc-go/oxc-core/internal/oxcconfig"
)

func newTestDriver(t *testing.T, cacheSize int) *Driver {
	t.Helper()
	d, err := New(rules.Default(), &oxcconfig.Config{Compress: minifier.DefaultOptions()}, 2, cacheSize)
	require.NoError(t, err)
	return d
}

func TestRunReturnsOneResultPerFileInOrder(t *testing.T) {
	d := newTestDriver(t, 0)
	files := []FileInput{
		{Path: "a.js", Contents: "var a = 1;"},
		{Path: "b.js", Contents: "var b = 2;"},
	}
	results, err := d.Run(context.Background(), files, Options{})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "a.js", results[0].Path)
	assert.Equal(t, "b.js", results[1].Path)
	assert.NoError(t, results[0].Err)
	assert.NotNil(t, results[0].Program)
	assert.NotNil(t, results[0].Model)
}

func TestRunLintReportsDebuggerFinding(t *testing.T) {
	d := newTestDriver(t, 0)
	files := []FileInput{{Path: "debug.js", Contents: "debugger;"}}
	results, err := d.Run(context.Background(), files, Options{Lint: true})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.NotEmpty(t, results[0].Findings)
}

func TestRunModLexPopulatesModuleRecord(t *testing.T) {
	d := newTestDriver(t, 0)
	src := "import {x} from 'mod';\nexport {x};"
	files := []FileInput{{Path: "mod.js", Contents: src, SourceType: ast.SourceType{IsModule: true}}}
	results, err := d.Run(context.Background(), files, Options{ModLex: true})
	require.NoError(t, err)
	require.NotNil(t, results[0].ModuleRecord)
	assert.True(t, results[0].ModuleRecord.HasModuleSyntax)
	assert.Len(t, results[0].ModuleRecord.Imports, 1)
}

func TestRunSyntaxErrorAbortsLintStage(t *testing.T) {
	d := newTestDriver(t, 0)
	files := []FileInput{{Path: "bad.js", Contents: "var = ;"}}
	results, err := d.Run(context.Background(), files, Options{Lint: true})
	require.NoError(t, err)
	assert.NotEmpty(t, results[0].ParseMsgs)
	assert.Empty(t, results[0].Findings)
}

func TestCacheReusesParseResultForIdenticalContent(t *testing.T) {
	d := newTestDriver(t, 16)
	files := []FileInput{{Path: "cached.js", Contents: "var x = 1;"}}

	first, err := d.Run(context.Background(), files, Options{})
	require.NoError(t, err)
	require.NotNil(t, first[0].Program)

	second, err := d.Run(context.Background(), files, Options{})
	require.NoError(t, err)
	// A cache hit skips reparsing entirely, so ParseMsgs comes back nil
	// rather than a freshly recomputed empty slice.
	assert.Nil(t, second[0].ParseMsgs)
}

func TestMinifyRequestNeverConsultsCache(t *testing.T) {
	d := newTestDriver(t, 16)
	files := []FileInput{{Path: "m.js", Contents: "var x = 1; var y = x;"}}

	_, err := d.Run(context.Background(), files, Options{Minify: true, Compress: minifier.DefaultOptions()})
	require.NoError(t, err)

	plain, err := d.Run(context.Background(), files, Options{})
	require.NoError(t, err)
	require.NotNil(t, plain[0].Program)
	// If the minify run had poisoned the cache with its mutated tree, a
	// later plain parse would see the minifier's rewritten output instead
	// of the two original top-level declarations.
	assert.Len(t, plain[0].Program.Body, 2)
}

func TestContentHashIsStableAndContentSensitive(t *testing.T) {
	assert.Equal(t, contentHash("abc"), contentHash("abc"))
	assert.NotEqual(t, contentHash("abc"), contentHash("abd"))
}

func TestPanicErrorUnwrapsUnderlyingError(t *testing.T) {
	err := internalPanic(assertionError{"boom"})
	var pe *PanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "boom", pe.Error())
	assert.NotEmpty(t, pe.Stack)
}

type assertionError struct{ msg string }

func (e assertionError) Error() string { return e.msg }
