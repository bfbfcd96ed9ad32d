package regexp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLiteralSequence(t *testing.T) {
	pat, err := Parse("abc", "g")
	require.NoError(t, err)
	require.Len(t, pat.Body.Alternatives, 1)
	assert.Len(t, pat.Body.Alternatives[0].Items, 3)
	assert.Equal(t, "g", pat.Flags)
}

func TestParseDisjunction(t *testing.T) {
	pat, err := Parse("a|bc", "")
	require.NoError(t, err)
	require.Len(t, pat.Body.Alternatives, 2)
	assert.Len(t, pat.Body.Alternatives[0].Items, 1)
	assert.Len(t, pat.Body.Alternatives[1].Items, 2)
}

func TestParseCharClass(t *testing.T) {
	pat, err := Parse("[a-z0-9]", "")
	require.NoError(t, err)
	cls, ok := pat.Body.Alternatives[0].Items[0].(*CharClass)
	require.True(t, ok)
	assert.False(t, cls.Negated)
	require.Len(t, cls.Ranges, 2)
	assert.Equal(t, CharRange{Lo: 'a', Hi: 'z'}, cls.Ranges[0])
}

func TestParseNegatedCharClass(t *testing.T) {
	pat, err := Parse("[^abc]", "")
	require.NoError(t, err)
	cls := pat.Body.Alternatives[0].Items[0].(*CharClass)
	assert.True(t, cls.Negated)
}

func TestParseQuantifiers(t *testing.T) {
	cases := map[string][2]int{
		"a*":    {0, -1},
		"a+":    {1, -1},
		"a?":    {0, 1},
		"a{2}":  {2, 2},
		"a{2,}": {2, -1},
		"a{2,5}": {2, 5},
	}
	for src, want := range cases {
		pat, err := Parse(src, "")
		require.NoError(t, err, src)
		q, ok := pat.Body.Alternatives[0].Items[0].(*Quantifier)
		require.True(t, ok, src)
		assert.Equal(t, want[0], q.Min, src)
		assert.Equal(t, want[1], q.Max, src)
	}
}

func TestParseLazyQuantifier(t *testing.T) {
	pat, err := Parse("a+?", "")
	require.NoError(t, err)
	q := pat.Body.Alternatives[0].Items[0].(*Quantifier)
	assert.False(t, q.Greedy)
}

func TestParseNonCapturingGroup(t *testing.T) {
	pat, err := Parse("(?:ab)", "")
	require.NoError(t, err)
	g, ok := pat.Body.Alternatives[0].Items[0].(*Group)
	require.True(t, ok)
	assert.False(t, g.Capturing)
}

func TestParseNamedGroup(t *testing.T) {
	pat, err := Parse("(?<year>\\d+)", "")
	require.NoError(t, err)
	g := pat.Body.Alternatives[0].Items[0].(*Group)
	assert.True(t, g.Capturing)
	assert.Equal(t, "year", g.Name)
}

func TestParseClassEscapes(t *testing.T) {
	pat, err := Parse("\\d\\w\\s", "")
	require.NoError(t, err)
	require.Len(t, pat.Body.Alternatives[0].Items, 3)
	esc, ok := pat.Body.Alternatives[0].Items[0].(*ClassEscape)
	require.True(t, ok)
	assert.Equal(t, byte('d'), esc.Kind)
}

func TestParseUnterminatedGroupIsError(t *testing.T) {
	_, err := Parse("(abc", "")
	assert.Error(t, err)
}

func TestParseUnterminatedClassIsError(t *testing.T) {
	_, err := Parse("[abc", "")
	assert.Error(t, err)
}

func TestDuplicateFlags(t *testing.T) {
	assert.Equal(t, []byte{'g'}, DuplicateFlags("gig"))
	assert.Nil(t, DuplicateFlags("gi"))
}

func TestRedundantRanges(t *testing.T) {
	cls := &CharClass{Ranges: []CharRange{{Lo: 'a', Hi: 'z'}, {Lo: 'b', Hi: 'c'}}}
	redundant := RedundantRanges(cls)
	require.Len(t, redundant, 1)
	assert.Equal(t, CharRange{Lo: 'b', Hi: 'c'}, redundant[0])
}

func TestRedundantRangesNoneWhenDisjoint(t *testing.T) {
	cls := &CharClass{Ranges: []CharRange{{Lo: 'a', Hi: 'c'}, {Lo: 'x', Hi: 'z'}}}
	assert.Empty(t, RedundantRanges(cls))
}
