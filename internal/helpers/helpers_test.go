package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstFloatArithmeticRoundTrips(t *testing.T) {
	a := NewConstFloat(2)
	b := NewConstFloat(3)
	assert.Equal(t, 5.0, a.Add(b).Value())
	assert.Equal(t, -1.0, a.Sub(b).Value())
	assert.Equal(t, 6.0, a.Mul(b).Value())
	assert.Equal(t, 8.0, b.Pow(a).Value())
	assert.Equal(t, -2.0, a.Neg().Value())
}

func TestConstFloatDivByZeroIsNaN(t *testing.T) {
	result := NewConstFloat(0).Div(NewConstFloat(0)).Value()
	assert.NotEqual(t, result, result) // NaN is the only value unequal to itself
}

func TestStringToUTF16RoundTrip(t *testing.T) {
	for _, s := range []string{"", "abc", "héllo", "\U0001F600"} {
		assert.Equal(t, s, UTF16ToString(StringToUTF16(s)), s)
	}
}

func TestUTF16EqualsUTF16(t *testing.T) {
	assert.True(t, UTF16EqualsUTF16(StringToUTF16("abc"), StringToUTF16("abc")))
	assert.False(t, UTF16EqualsUTF16(StringToUTF16("abc"), StringToUTF16("abd")))
	assert.False(t, UTF16EqualsUTF16(StringToUTF16("abc"), StringToUTF16("ab")))
}

func TestQuoteRuleNameEscapesControlCharacters(t *testing.T) {
	assert.Equal(t, `"a\nb"`, QuoteRuleName("a\nb"))
	assert.Equal(t, `"say \"hi\""`, QuoteRuleName(`say "hi"`))
	assert.Equal(t, `"eslint/no-var"`, QuoteRuleName("eslint/no-var"))
}

func TestQuotedFileList(t *testing.T) {
	assert.Equal(t, `"a.ts", "b.ts"`, QuotedFileList([]string{"a.ts", "b.ts"}))
	assert.Equal(t, "", QuotedFileList(nil))
}

func TestRuleNameTypoDetectorFindsOneCharacterEdits(t *testing.T) {
	detector := NewRuleNameTypoDetector([]string{"no-debugger", "no-var"})
	corrected, ok := detector.SuggestRuleName("no-debuger")
	require.True(t, ok)
	assert.Equal(t, "no-debugger", corrected)

	_, ok = detector.SuggestRuleName("totally-unrelated")
	assert.False(t, ok)
}

func TestPrettyPrintedStackIncludesCaller(t *testing.T) {
	stack := PrettyPrintedStack()
	assert.Contains(t, stack, "helpers_test.go")
}
