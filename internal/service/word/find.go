package word

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/domain"
)

// Get returns a word in a language owned by the context user.
func (s *Service) Get(ctx context.Context, wordID uuid.UUID) (*domain.Word, error) {
	word, _, err := s.ownedWord(ctx, wordID)
	if err != nil {
		return nil, err
	}
	return word, nil
}

// Find returns a filtered page of a language's words and the total
// count for the filter.
func (s *Service) Find(ctx context.Context, languageID uuid.UUID, input FindInput) ([]domain.Word, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	if _, err := s.ownedLanguage(ctx, languageID); err != nil {
		return nil, 0, err
	}

	words, total, err := s.words.Find(ctx, languageID, input.filter())
	if err != nil {
		return nil, 0, fmt.Errorf("word.Find: %w", err)
	}
	return words, total, nil
}
