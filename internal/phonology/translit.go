package phonology

import (
	"sort"
	"strings"
)

// AlphabetMapping holds the per-category grapheme→phoneme tables a
// user configures for their alphabet. Keys are unique within one
// category; the same phoneme value may appear under several keys.
type AlphabetMapping struct {
	Consonants map[string]string
	Vowels     map[string]string
	Diphthongs map[string]string
}

// mappingPair is one grapheme→phoneme rule in a merged mapping.
type mappingPair struct {
	key   string
	value string
}

// MergedMapping is a flattened alphabet mapping with a deterministic
// rule order, ready for transliteration in either direction.
type MergedMapping struct {
	pairs []mappingPair
}

// Merge flattens the three category maps into one mapping, layering
// diphthongs, then consonants, then vowels. When the same key appears
// in more than one category the later layer's phoneme wins; the key
// keeps its original position. This precedence is observable whenever
// a user configures overlapping graphemes across categories, so it
// must not change.
func (m AlphabetMapping) Merge() MergedMapping {
	var merged MergedMapping
	index := make(map[string]int)

	layer := func(table map[string]string) {
		for _, key := range sortedKeys(table) {
			if i, ok := index[key]; ok {
				merged.pairs[i].value = table[key]
				continue
			}
			index[key] = len(merged.pairs)
			merged.pairs = append(merged.pairs, mappingPair{key: key, value: table[key]})
		}
	}

	layer(m.Diphthongs)
	layer(m.Consonants)
	layer(m.Vowels)

	return merged
}

// AlphabetToIPA converts alphabet spelling to IPA. The input is
// lowercased, then every rule is applied as a global literal
// replacement, longest key first, each step operating on the output of
// the previous one. Because replacement is sequential, a phoneme
// inserted by a longer-key rule can be re-matched by a later
// shorter-key rule whose key occurs inside it; that hazard is part of
// the contract and must not be "fixed" by a simultaneous replace.
func AlphabetToIPA(text string, mapping MergedMapping) string {
	out := strings.ToLower(text)
	for _, p := range mapping.byKeyLength() {
		out = strings.ReplaceAll(out, p.key, p.value)
	}
	return out
}

// IPAToAlphabet converts IPA back to alphabet spelling using the
// reversed mapping (phoneme→grapheme; on duplicate phonemes the rule
// written last during merging wins), with the same longest-key-first
// sequential replacement strategy. Text with no matching phonemes is
// returned unchanged.
func IPAToAlphabet(text string, mapping MergedMapping) string {
	reversed := mapping.reversed()
	out := text
	for _, p := range reversed.byKeyLength() {
		out = strings.ReplaceAll(out, p.key, p.value)
	}
	return out
}

// byKeyLength returns the rules sorted by descending key length,
// preserving merge order between keys of equal length.
func (m MergedMapping) byKeyLength() []mappingPair {
	pairs := make([]mappingPair, len(m.pairs))
	copy(pairs, m.pairs)
	sort.SliceStable(pairs, func(i, j int) bool {
		return len([]rune(pairs[i].key)) > len([]rune(pairs[j].key))
	})
	return pairs
}

// reversed swaps keys and values. A phoneme mapped from several
// graphemes keeps its first position but takes the last grapheme
// written, mirroring how the merged table itself is built.
func (m MergedMapping) reversed() MergedMapping {
	var rev MergedMapping
	index := make(map[string]int)
	for _, p := range m.pairs {
		if i, ok := index[p.value]; ok {
			rev.pairs[i].value = p.key
			continue
		}
		index[p.value] = len(rev.pairs)
		rev.pairs = append(rev.pairs, mappingPair{key: p.value, value: p.key})
	}
	return rev
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
