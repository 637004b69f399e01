package word

import (
	"strconv"
	"unicode/utf8"

	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/domain"
)

const (
	maxTextLen         = 200
	maxIPALen          = 500
	maxMeaningLen      = 1000
	maxTranslations    = 20
	maxPartsOfSpeech   = 5
	maxLanguageCodeLen = 8
)

// TranslationInput holds parameters for a single translation.
type TranslationInput struct {
	LanguageCode string
	Meaning      string
}

// CreateInput holds parameters for creating a word.
type CreateInput struct {
	Text         string
	IPA          string
	POS          []domain.PartOfSpeech
	IsRoot       bool
	Translations []TranslationInput
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	} else if utf8.RuneCountInString(i.Text) > maxTextLen {
		errs = append(errs, domain.FieldError{Field: "text", Message: "too long (max " + strconv.Itoa(maxTextLen) + ")"})
	}

	if utf8.RuneCountInString(i.IPA) > maxIPALen {
		errs = append(errs, domain.FieldError{Field: "ipa", Message: "too long (max " + strconv.Itoa(maxIPALen) + ")"})
	}

	if len(i.POS) > maxPartsOfSpeech {
		errs = append(errs, domain.FieldError{Field: "pos", Message: "too many (max " + strconv.Itoa(maxPartsOfSpeech) + ")"})
	}
	for idx, p := range i.POS {
		if !p.IsValid() {
			errs = append(errs, domain.FieldError{Field: "pos[" + strconv.Itoa(idx) + "]", Message: "invalid value"})
		}
	}

	if len(i.Translations) > maxTranslations {
		errs = append(errs, domain.FieldError{Field: "translations", Message: "too many (max " + strconv.Itoa(maxTranslations) + ")"})
	}
	for idx, tr := range i.Translations {
		field := "translations[" + strconv.Itoa(idx) + "]"
		if tr.Meaning == "" {
			errs = append(errs, domain.FieldError{Field: field + ".meaning", Message: "required"})
		} else if utf8.RuneCountInString(tr.Meaning) > maxMeaningLen {
			errs = append(errs, domain.FieldError{Field: field + ".meaning", Message: "too long (max " + strconv.Itoa(maxMeaningLen) + ")"})
		}
		if utf8.RuneCountInString(tr.LanguageCode) > maxLanguageCodeLen {
			errs = append(errs, domain.FieldError{Field: field + ".language_code", Message: "too long (max " + strconv.Itoa(maxLanguageCodeLen) + ")"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for updating a word. The word row and
// its translations are replaced wholesale.
type UpdateInput struct {
	Text         string
	IPA          string
	POS          []domain.PartOfSpeech
	IsRoot       bool
	Translations []TranslationInput
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	return CreateInput(i).Validate()
}

// FindInput holds parameters for searching a language's words.
type FindInput struct {
	Search    *string
	IsRoot    *bool
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

// Validate validates the find input.
func (i FindInput) Validate() error {
	var errs []domain.FieldError

	if i.SortBy != "" {
		switch i.SortBy {
		case "text", "created_at", "updated_at":
			// valid
		default:
			errs = append(errs, domain.FieldError{Field: "sort_by", Message: "invalid value (allowed: text, created_at, updated_at)"})
		}
	}

	if i.SortOrder != "" {
		switch i.SortOrder {
		case "ASC", "DESC":
			// valid
		default:
			errs = append(errs, domain.FieldError{Field: "sort_order", Message: "invalid value (allowed: ASC, DESC)"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// filter converts the input to a repository filter.
func (i FindInput) filter() domain.WordFilter {
	return domain.WordFilter{
		Search:    i.Search,
		IsRoot:    i.IsRoot,
		SortBy:    i.SortBy,
		SortOrder: i.SortOrder,
		Limit:     i.Limit,
		Offset:    i.Offset,
	}
}
