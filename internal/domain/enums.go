package domain

// UserRole controls access to administrative operations.
type UserRole string

const (
	UserRoleUser  UserRole = "USER"
	UserRoleAdmin UserRole = "ADMIN"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

// PartOfSpeech represents the grammatical category of a word.
type PartOfSpeech string

const (
	PartOfSpeechNoun         PartOfSpeech = "NOUN"
	PartOfSpeechVerb         PartOfSpeech = "VERB"
	PartOfSpeechAdjective    PartOfSpeech = "ADJECTIVE"
	PartOfSpeechAdverb       PartOfSpeech = "ADVERB"
	PartOfSpeechPronoun      PartOfSpeech = "PRONOUN"
	PartOfSpeechPreposition  PartOfSpeech = "PREPOSITION"
	PartOfSpeechConjunction  PartOfSpeech = "CONJUNCTION"
	PartOfSpeechInterjection PartOfSpeech = "INTERJECTION"
	PartOfSpeechParticle     PartOfSpeech = "PARTICLE"
	PartOfSpeechOther        PartOfSpeech = "OTHER"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective, PartOfSpeechAdverb,
		PartOfSpeechPronoun, PartOfSpeechPreposition, PartOfSpeechConjunction,
		PartOfSpeechInterjection, PartOfSpeechParticle, PartOfSpeechOther:
		return true
	}
	return false
}

// TransliterationDirection selects which way Transliterate converts.
type TransliterationDirection string

const (
	DirectionAlphabetToIPA TransliterationDirection = "alphabet_to_ipa"
	DirectionIPAToAlphabet TransliterationDirection = "ipa_to_alphabet"
)

func (d TransliterationDirection) String() string { return string(d) }

func (d TransliterationDirection) IsValid() bool {
	switch d {
	case DirectionAlphabetToIPA, DirectionIPAToAlphabet:
		return true
	}
	return false
}
