package phonology

// Separators that may appear in an IPA transcription without being
// part of any phoneme: syllable breaks, phonemic slashes, length and
// stress marks, spaces, and hyphens.
var ignorableSeparators = map[rune]struct{}{
	'.': {},
	'/': {},
	'ː': {},
	'ˈ': {},
	'ˌ': {},
	' ': {},
	'-': {},
}

// invalidPhonemes scans ipa left to right with a greedy longest-match
// cursor (match lengths 3→2→1, no backtracking) against the candidate
// set and returns the characters that matched nothing, deduplicated in
// first-occurrence order. Ignorable separators are skipped.
//
// Greedy matching is a heuristic: when the inventory contains both a
// multigraph and one of its prefixes (say "th" and "t"), a literal
// "t"+"h" sequence is consumed as the multigraph. Inherited behavior,
// not corrected here.
func invalidPhonemes(ipa string, candidates phonemeSet) []string {
	runes := []rune(ipa)

	var invalid []string
	seen := make(map[rune]struct{})

	i := 0
	for i < len(runes) {
		n := matchLen(runes, i, candidates)
		if n > 0 {
			i += n
			continue
		}

		r := runes[i]
		if _, sep := ignorableSeparators[r]; !sep {
			if _, dup := seen[r]; !dup {
				seen[r] = struct{}{}
				invalid = append(invalid, string(r))
			}
		}
		i++
	}

	return invalid
}

// matchLen returns the length (in runes) of the longest candidate
// phoneme starting at runes[i], or 0 when none matches.
func matchLen(runes []rune, i int, candidates phonemeSet) int {
	for n := maxPhonemeLen; n >= 1; n-- {
		if i+n > len(runes) {
			continue
		}
		if candidates.contains(string(runes[i : i+n])) {
			return n
		}
	}
	return 0
}
