package language

import "fmt"

// templateAdvisories inspects a syllable structure template and returns
// non-fatal notes. The validator accepts any template (unknown
// characters simply fail to match syllables), so unexpected characters
// are flagged here instead of rejected.
func templateAdvisories(template string) []string {
	var advisories []string

	depth := 0
	for _, r := range template {
		switch r {
		case 'C', 'V':
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				advisories = append(advisories, "syllable template has an unmatched ')'")
				depth = 0
			}
		default:
			advisories = append(advisories, fmt.Sprintf("syllable template contains unexpected character %q; only C, V, ( and ) affect matching", r))
		}
	}
	if depth > 0 {
		advisories = append(advisories, "syllable template has an unmatched '('")
	}

	return advisories
}
