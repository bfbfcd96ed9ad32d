package helpers

import "unicode/utf8"

// RuleNameTypoDetector suggests a close match for an unrecognized
// "plugin/rule" key from a config file's filter list, so oxcconfig.ApplyFilters
// can turn an unknown-rule warning into a "did you mean ...?" hint.
type RuleNameTypoDetector struct {
	oneCharTypos map[string]string
}

// NewRuleNameTypoDetector indexes every registered rule name by its
// one-character-deleted forms, so a typo that dropped or misplaced a single
// character resolves back to the name it was meant to be.
func NewRuleNameTypoDetector(validNames []string) RuleNameTypoDetector {
	detector := RuleNameTypoDetector{oneCharTypos: make(map[string]string)}

	for _, correct := range validNames {
		if len(correct) > 3 {
			for i, ch := range correct {
				detector.oneCharTypos[correct[:i]+correct[i+utf8.RuneLen(ch):]] = correct
			}
		}
	}

	return detector
}

// SuggestRuleName returns the registered rule name attempted most plausibly
// refers to, checking both a single deleted character and a single
// misplaced one.
func (detector RuleNameTypoDetector) SuggestRuleName(attempted string) (string, bool) {
	if corrected, ok := detector.oneCharTypos[attempted]; ok {
		return corrected, true
	}

	for i, ch := range attempted {
		if corrected, ok := detector.oneCharTypos[attempted[:i]+attempted[i+utf8.RuneLen(ch):]]; ok {
			return corrected, true
		}
	}

	return "", false
}
