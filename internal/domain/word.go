package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/phonology"
)

// Word is a dictionary entry in a constructed language. Validation is
// the snapshot produced by the language's validator when the word was
// last written; it is advisory data, stored alongside the word so the
// editor can render warnings without re-validating.
type Word struct {
	ID         uuid.UUID
	LanguageID uuid.UUID
	Text       string
	IPA        string
	POS        []PartOfSpeech
	IsRoot     bool
	Validation *phonology.ValidationResult
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Translations []Translation
}

// Translation is one meaning of a word in a natural language.
type Translation struct {
	ID           uuid.UUID
	WordID       uuid.UUID
	LanguageCode string
	Meaning      string
	CreatedAt    time.Time
}

// DefaultTranslationLanguage is used when a translation does not name
// its target language.
const DefaultTranslationLanguage = "en"
