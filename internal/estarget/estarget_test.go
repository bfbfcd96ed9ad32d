package estarget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGenerationTargets(t *testing.T) {
	targets, err := Parse("es2020")
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.False(t, targets[0].IsEngine)
	assert.Equal(t, ES2020, targets[0].Generation)
}

func TestParseEngineTargetVariants(t *testing.T) {
	for _, raw := range []string{"chrome90", "chrome 90", "node18.0", "node 18.0.3"} {
		targets, err := Parse(raw)
		require.NoError(t, err, raw)
		require.Len(t, targets, 1, raw)
		assert.True(t, targets[0].IsEngine, raw)
	}
}

func TestParseEngineVersionComponents(t *testing.T) {
	targets, err := Parse("node18.2.1")
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Equal(t, "node", targets[0].Engine.Name)
	assert.Equal(t, 18, targets[0].Engine.Major)
	assert.Equal(t, 2, targets[0].Engine.Minor)
	assert.Equal(t, 1, targets[0].Engine.Patch)
}

func TestParseCommaSeparatedList(t *testing.T) {
	targets, err := Parse("es2020,chrome90,node18")
	require.NoError(t, err)
	require.Len(t, targets, 3)
}

func TestParseUnknownEngineIsError(t *testing.T) {
	_, err := Parse("definitelynotarealengine10")
	require.Error(t, err)
	perr, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, ErrUnknownToken, perr.Kind)
}

func TestParseDuplicateTargetIsError(t *testing.T) {
	_, err := Parse("chrome90,chrome95")
	require.Error(t, err)
	perr, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, ErrDuplicateTarget, perr.Kind)
}

func TestParseMalformedVersionIsError(t *testing.T) {
	_, err := Parse("node1.2.3.4")
	require.Error(t, err)
	perr, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, ErrMalformedVersion, perr.Kind)
}

func TestEsnextDisablesDownLevelling(t *testing.T) {
	targets, err := Parse("esnext")
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.True(t, targets[0].Generation.AtLeast(ES2023))
}

func TestGenerationAtLeastOrdering(t *testing.T) {
	assert.True(t, ES2020.AtLeast(ES5))
	assert.False(t, ES5.AtLeast(ES2020))
}

func TestEngineVersionIsBefore(t *testing.T) {
	ev := EngineVersion{Name: "node", Major: 18, Minor: 0}
	assert.True(t, ev.IsBefore(18, 5))
	assert.False(t, ev.IsBefore(18, 0))
	assert.False(t, ev.IsBefore(17, 0))
}

func TestEmptyTargetSpecYieldsNoTargets(t *testing.T) {
	targets, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, targets)
}
