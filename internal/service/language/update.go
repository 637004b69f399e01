package language

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/domain"
)

// Update replaces a language's configuration wholesale. Words validated
// under the previous configuration keep their stored snapshots; they
// are re-validated only when rewritten.
func (s *Service) Update(ctx context.Context, languageID uuid.UUID, input UpdateInput) (*Result, error) {
	input.Name = strings.TrimSpace(input.Name)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	lang, err := s.GetOwned(ctx, languageID)
	if err != nil {
		return nil, err
	}

	if input.Syllables == "" {
		input.Syllables = domain.DefaultSyllableTemplate
	}

	lang.Name = input.Name
	lang.Description = input.Description
	lang.Phonemes = input.Phonemes
	lang.AlphabetMappings = input.AlphabetMappings
	lang.Syllables = input.Syllables
	lang.Rules = input.Rules
	lang.UpdatedAt = time.Now().UTC()

	updated, err := s.languages.Update(ctx, lang)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewValidationError("name", "already taken")
		}
		return nil, fmt.Errorf("language.Update: %w", err)
	}

	s.log.InfoContext(ctx, "language updated",
		slog.String("language_id", languageID.String()))

	return &Result{
		Language:   updated,
		Advisories: templateAdvisories(updated.Syllables),
	}, nil
}

// Delete removes a language and, through schema cascades, its words.
func (s *Service) Delete(ctx context.Context, languageID uuid.UUID) error {
	if _, err := s.GetOwned(ctx, languageID); err != nil {
		return err
	}

	if err := s.languages.Delete(ctx, languageID); err != nil {
		return fmt.Errorf("language.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "language deleted",
		slog.String("language_id", languageID.String()))

	return nil
}
