// Package phonology implements the phonological constraint and
// transliteration engine: IPA tokenization against a declared phoneme
// inventory, syllable-shape checking against a structure template,
// heuristic phonotactic rule checks, and rule-driven bidirectional
// conversion between a user-defined alphabet and IPA.
//
// All operations are pure: each call takes an immutable configuration
// snapshot and an input string and returns a freshly allocated result.
// A configuration change produces a new snapshot, never an in-place
// mutation.
package phonology

// Inventory is the declared phoneme set of a language, split into the
// three categories the editor exposes. Entries are grapheme strings of
// 1–3 Unicode scalar values (IPA symbols, possibly with diacritics).
//
// Uniqueness across categories is not enforced; when the same symbol
// appears in more than one category, scan order decides its
// classification (see deriveShape).
type Inventory struct {
	Consonants []string
	Vowels     []string
	Diphthongs []string
}

// maxPhonemeLen is the longest grapheme the scanner will attempt to
// match. Inventory entries longer than this are never matched.
const maxPhonemeLen = 3

// phonemeSet is a lookup set of grapheme strings.
type phonemeSet map[string]struct{}

func newPhonemeSet(groups ...[]string) phonemeSet {
	s := make(phonemeSet)
	for _, g := range groups {
		for _, p := range g {
			if p == "" {
				continue
			}
			s[p] = struct{}{}
		}
	}
	return s
}

func (s phonemeSet) contains(p string) bool {
	_, ok := s[p]
	return ok
}

// All returns the union of all three categories, in category order.
// Duplicates across categories are preserved.
func (inv Inventory) All() []string {
	all := make([]string, 0, len(inv.Consonants)+len(inv.Vowels)+len(inv.Diphthongs))
	all = append(all, inv.Consonants...)
	all = append(all, inv.Vowels...)
	all = append(all, inv.Diphthongs...)
	return all
}
