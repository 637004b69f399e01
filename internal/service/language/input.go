package language

import (
	"strconv"
	"unicode/utf8"

	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/domain"
	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/phonology"
)

const (
	maxNameLen        = 100
	maxDescriptionLen = 2000
	maxRulesLen       = 5000
	maxTemplateLen    = 64
	maxPhonemesPer    = 200
	maxPhonemeRunes   = 8
)

// CreateInput holds parameters for creating a language.
type CreateInput struct {
	Name             string
	Description      string
	Phonemes         phonology.Inventory
	AlphabetMappings phonology.AlphabetMapping
	Syllables        string
	Rules            string
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max " + strconv.Itoa(maxNameLen) + ")"})
	}

	if utf8.RuneCountInString(i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long (max " + strconv.Itoa(maxDescriptionLen) + ")"})
	}

	if utf8.RuneCountInString(i.Syllables) > maxTemplateLen {
		errs = append(errs, domain.FieldError{Field: "syllables", Message: "too long (max " + strconv.Itoa(maxTemplateLen) + ")"})
	}

	if utf8.RuneCountInString(i.Rules) > maxRulesLen {
		errs = append(errs, domain.FieldError{Field: "rules", Message: "too long (max " + strconv.Itoa(maxRulesLen) + ")"})
	}

	errs = append(errs, validateInventory(i.Phonemes)...)
	errs = append(errs, validateMappings(i.AlphabetMappings)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for updating a language. It carries the
// full configuration; the stored row is replaced wholesale.
type UpdateInput struct {
	Name             string
	Description      string
	Phonemes         phonology.Inventory
	AlphabetMappings phonology.AlphabetMapping
	Syllables        string
	Rules            string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	return CreateInput(i).Validate()
}

func validateInventory(inv phonology.Inventory) []domain.FieldError {
	var errs []domain.FieldError

	groups := []struct {
		field    string
		phonemes []string
	}{
		{"phonemes.consonants", inv.Consonants},
		{"phonemes.vowels", inv.Vowels},
		{"phonemes.diphthongs", inv.Diphthongs},
	}

	for _, g := range groups {
		if len(g.phonemes) > maxPhonemesPer {
			errs = append(errs, domain.FieldError{Field: g.field, Message: "too many (max " + strconv.Itoa(maxPhonemesPer) + ")"})
			continue
		}
		for idx, p := range g.phonemes {
			if p == "" {
				errs = append(errs, domain.FieldError{Field: g.field + "[" + strconv.Itoa(idx) + "]", Message: "required"})
			} else if utf8.RuneCountInString(p) > maxPhonemeRunes {
				errs = append(errs, domain.FieldError{Field: g.field + "[" + strconv.Itoa(idx) + "]", Message: "too long (max " + strconv.Itoa(maxPhonemeRunes) + ")"})
			}
		}
	}

	return errs
}

func validateMappings(m phonology.AlphabetMapping) []domain.FieldError {
	var errs []domain.FieldError

	groups := []struct {
		field   string
		mapping map[string]string
	}{
		{"alphabet_mappings.consonants", m.Consonants},
		{"alphabet_mappings.vowels", m.Vowels},
		{"alphabet_mappings.diphthongs", m.Diphthongs},
	}

	for _, g := range groups {
		if len(g.mapping) > maxPhonemesPer {
			errs = append(errs, domain.FieldError{Field: g.field, Message: "too many (max " + strconv.Itoa(maxPhonemesPer) + ")"})
			continue
		}
		for key, value := range g.mapping {
			if key == "" || value == "" {
				errs = append(errs, domain.FieldError{Field: g.field, Message: "empty key or value"})
				break
			}
		}
	}

	return errs
}
