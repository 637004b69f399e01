package phonology

import (
	"fmt"
	"regexp"
	"strings"
)

// splitSyllables splits a word on literal '.' and '/' separators,
// discarding empty fragments. A word without separators is one
// syllable.
func splitSyllables(ipa string) []string {
	parts := strings.FieldsFunc(ipa, func(r rune) bool {
		return r == '.' || r == '/'
	})
	if len(parts) == 0 {
		return []string{ipa}
	}
	return parts
}

// deriveShape reduces a syllable to its C/V skeleton using the same
// greedy longest-match scan as the tokenizer, consulting vowels and
// diphthongs before consonants at each match length. Characters that
// match neither category are skipped without complaint; shape
// derivation never reports invalid phonemes; that is the tokenizer's
// job.
func deriveShape(syllable string, consonants, nuclei phonemeSet) string {
	runes := []rune(syllable)

	var shape strings.Builder
	i := 0
	for i < len(runes) {
		advanced := false
		for n := maxPhonemeLen; n >= 1; n-- {
			if i+n > len(runes) {
				continue
			}
			seg := string(runes[i : i+n])
			if nuclei.contains(seg) {
				shape.WriteByte('V')
				i += n
				advanced = true
				break
			}
			if consonants.contains(seg) {
				shape.WriteByte('C')
				i += n
				advanced = true
				break
			}
		}
		if !advanced {
			i++
		}
	}

	return shape.String()
}

// shapeMatches reports whether a derived C/V shape satisfies the
// structure template. The shape passes when it equals the template
// with optional groups removed, or when it matches the template with
// each "(...)" treated as a single optional group. A template that
// does not compile as a pattern matches nothing.
func shapeMatches(shape, template string) bool {
	required := strings.NewReplacer("(", "", ")", "").Replace(template)
	if shape == required {
		return true
	}

	pattern := "^" + strings.ReplaceAll(template, ")", ")?") + "$"
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(shape)
}

// checkSyllables produces one warning per syllable whose shape fits
// neither the exact required skeleton nor the optional-group pattern.
func checkSyllables(ipa, template string, consonants, nuclei phonemeSet) []Violation {
	var violations []Violation
	for _, syl := range splitSyllables(ipa) {
		shape := deriveShape(syl, consonants, nuclei)
		if shapeMatches(shape, template) {
			continue
		}
		violations = append(violations, Violation{
			Type:        ViolationSyllableStructure,
			Severity:    SeverityWarning,
			Description: fmt.Sprintf("syllable %q has shape %s, expected %s", syl, shape, template),
		})
	}
	return violations
}
