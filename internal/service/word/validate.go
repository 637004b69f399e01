package word

import (
	"context"
	"strconv"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/domain"
	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/phonology"
)

// ValidationReport is the result of a dry-run IPA check.
type ValidationReport struct {
	Result  phonology.ValidationResult
	Summary string
}

// ValidateIPA runs the language's validator over an IPA string without
// touching any word. Used by editors for live feedback.
func (s *Service) ValidateIPA(ctx context.Context, languageID uuid.UUID, ipa string) (*ValidationReport, error) {
	if utf8.RuneCountInString(ipa) > maxIPALen {
		return nil, domain.NewValidationError("ipa", "too long (max "+strconv.Itoa(maxIPALen)+")")
	}

	lang, err := s.ownedLanguage(ctx, languageID)
	if err != nil {
		return nil, err
	}

	result := lang.Validator().Validate(ipa)
	return &ValidationReport{
		Result:  result,
		Summary: phonology.Summarize(result),
	}, nil
}

// Transliterate converts text between a language's alphabet and IPA
// using its merged mapping.
func (s *Service) Transliterate(ctx context.Context, languageID uuid.UUID, text string, direction domain.TransliterationDirection) (string, error) {
	if !direction.IsValid() {
		return "", domain.NewValidationError("direction", "invalid value (allowed: alphabet_to_ipa, ipa_to_alphabet)")
	}
	if utf8.RuneCountInString(text) > maxIPALen {
		return "", domain.NewValidationError("text", "too long (max "+strconv.Itoa(maxIPALen)+")")
	}

	lang, err := s.ownedLanguage(ctx, languageID)
	if err != nil {
		return "", err
	}

	mapping := lang.Mapping()
	if direction == domain.DirectionAlphabetToIPA {
		return phonology.AlphabetToIPA(text, mapping), nil
	}
	return phonology.IPAToAlphabet(text, mapping), nil
}
