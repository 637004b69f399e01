package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/phonology"
)

// DefaultSyllableTemplate is assigned to languages created without an
// explicit structure template.
const DefaultSyllableTemplate = "CV"

// Language is a user's constructed language: its phoneme inventory,
// alphabet mapping, syllable structure template, and free-text
// phonotactic rules.
type Language struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Name             string
	Description      string
	Phonemes         phonology.Inventory
	AlphabetMappings phonology.AlphabetMapping
	Syllables        string
	Rules            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Validator builds a fresh phonology validator from the language's
// current configuration. The snapshot is immutable; callers must build
// a new one after the language changes rather than reusing a stale
// instance.
func (l *Language) Validator() *phonology.Validator {
	return phonology.NewValidator(l.Phonemes, l.Syllables, l.Rules)
}

// Mapping returns the merged alphabet↔phoneme mapping used for
// transliteration.
func (l *Language) Mapping() phonology.MergedMapping {
	return l.AlphabetMappings.Merge()
}
