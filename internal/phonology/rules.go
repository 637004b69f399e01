package phonology

import (
	"regexp"
	"slices"
	"strings"
)

// clusterPattern detects two or more consecutive characters outside a
// fixed Latin vowel set. The set is intentionally NOT the language's
// configured vowel inventory; the original engine shipped with this
// constant and correcting it would change which words get flagged.
var clusterPattern = regexp.MustCompile(`[^aeiouāēīōū]{2,}`)

// checkRules applies the recognized phonotactic rule intents to the
// raw IPA string. Rule text is free-form; recognition is plain
// case-insensitive substring search, and the three intents fire
// independently. Text that matches no intent yields nothing.
func checkRules(ipa, rules string, consonants []string) []Violation {
	text := strings.ToLower(strings.TrimSpace(rules))
	if text == "" {
		return nil
	}

	var violations []Violation

	if strings.Contains(text, "no consonant cluster") || strings.Contains(text, "no clusters") {
		if clusterPattern.MatchString(strings.ToLower(ipa)) {
			violations = append(violations, Violation{
				Type:        ViolationPhonotacticRule,
				Severity:    SeverityWarning,
				Description: "contains a consonant cluster, but the rules forbid clusters",
			})
		}
	}

	if strings.Contains(text, "no final consonant") || strings.Contains(text, "words end in vowel") {
		if r, ok := lastRune(ipa); ok && slices.Contains(consonants, string(r)) {
			violations = append(violations, Violation{
				Type:        ViolationPhonotacticRule,
				Severity:    SeverityWarning,
				Description: "ends in a consonant, but the rules require words to end in a vowel",
			})
		}
	}

	if strings.Contains(text, "no initial consonant") || strings.Contains(text, "words start with vowel") {
		if r, ok := firstRune(ipa); ok && slices.Contains(consonants, string(r)) {
			violations = append(violations, Violation{
				Type:        ViolationPhonotacticRule,
				Severity:    SeverityWarning,
				Description: "starts with a consonant, but the rules require words to start with a vowel",
			})
		}
	}

	return violations
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}

func lastRune(s string) (rune, bool) {
	var (
		last rune
		ok   bool
	)
	for _, r := range s {
		last, ok = r, true
	}
	return last, ok
}
