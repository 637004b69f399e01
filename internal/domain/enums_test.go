package domain

import "testing"

func TestEnumValidity(t *testing.T) {
	t.Parallel()

	if !PartOfSpeechNoun.IsValid() || PartOfSpeech("GERUND").IsValid() {
		t.Error("PartOfSpeech.IsValid misclassifies")
	}
	if !UserRoleAdmin.IsValid() || UserRole("OWNER").IsValid() {
		t.Error("UserRole.IsValid misclassifies")
	}
	if !DirectionAlphabetToIPA.IsValid() || !DirectionIPAToAlphabet.IsValid() {
		t.Error("known transliteration directions reported invalid")
	}
	if TransliterationDirection("sideways").IsValid() {
		t.Error("unknown transliteration direction reported valid")
	}
}
