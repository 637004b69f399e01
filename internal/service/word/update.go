package word

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

// Update rewrites a word and its translations. The IPA is re-validated
// against the language's current phonology and the fresh snapshot
// replaces the stored one.
func (s *Service) Update(ctx context.Context, wordID uuid.UUID, input UpdateInput) (*domain.Word, error) {
	input.Text = strings.TrimSpace(input.Text)
	input.IPA = strings.TrimSpace(input.IPA)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	word, lang, err := s.ownedWord(ctx, wordID)
	if err != nil {
		return nil, err
	}

	normalized := domain.NormalizeText(input.Text)
	if normalized == "" {
		return nil, domain.NewValidationError("text", "required")
	}

	// Renaming onto another word's text is a conflict.
	if normalized != domain.NormalizeText(word.Text) {
		existing, err := s.words.GetByText(ctx, word.LanguageID, normalized)
		if err == nil && existing.ID != word.ID {
			return nil, domain.ErrAlreadyExists
		}
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("word.Update check duplicate: %w", err)
		}
	}

	validation := lang.Validator().Validate(input.IPA)

	now := time.Now().UTC()
	word.Text = input.Text
	word.IPA = input.IPA
	word.POS = input.POS
	word.IsRoot = input.IsRoot
	word.Validation = &validation
	word.UpdatedAt = now
	word.Translations = translationsFromInput(input.Translations, now)

	var updated *domain.Word
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.words.Update(txCtx, word)
		return updateErr
	})
	if txErr != nil {
		if errors.Is(txErr, domain.ErrAlreadyExists) {
			return nil, domain.ErrAlreadyExists
		}
		return nil, fmt.Errorf("word.Update: %w", txErr)
	}

	s.log.InfoContext(ctx, "word updated",
		slog.String("word_id", wordID.String()),
		slog.Bool("ipa_valid", validation.IsValid))

	return updated, nil
}

// Delete removes a word and its translations.
func (s *Service) Delete(ctx context.Context, wordID uuid.UUID) error {
	if _, _, err := s.ownedWord(ctx, wordID); err != nil {
		return err
	}

	if err := s.words.Delete(ctx, wordID); err != nil {
		return fmt.Errorf("word.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "word deleted", slog.String("word_id", wordID.String()))
	return nil
}
