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

// Create adds a word to a language owned by the context user. The
// word's IPA is validated against the language's phonology and the
// result is stored with the word; phonology violations never block the
// write.
func (s *Service) Create(ctx context.Context, languageID uuid.UUID, input CreateInput) (*domain.Word, error) {
	input.Text = strings.TrimSpace(input.Text)
	input.IPA = strings.TrimSpace(input.IPA)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	lang, err := s.ownedLanguage(ctx, languageID)
	if err != nil {
		return nil, err
	}

	normalized := domain.NormalizeText(input.Text)
	if normalized == "" {
		return nil, domain.NewValidationError("text", "required")
	}

	count, err := s.words.CountByLanguage(ctx, languageID)
	if err != nil {
		return nil, fmt.Errorf("word.Create count: %w", err)
	}
	if count >= s.cfg.MaxWordsPerLanguage {
		return nil, domain.NewValidationError("words", "limit reached")
	}

	// Duplicate check; the unique index backs this up under races.
	_, err = s.words.GetByText(ctx, languageID, normalized)
	if err == nil {
		return nil, domain.ErrAlreadyExists
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("word.Create check duplicate: %w", err)
	}

	validation := lang.Validator().Validate(input.IPA)

	now := time.Now().UTC()
	word := &domain.Word{
		ID:           uuid.New(),
		LanguageID:   languageID,
		Text:         input.Text,
		IPA:          input.IPA,
		POS:          input.POS,
		IsRoot:       input.IsRoot,
		Validation:   &validation,
		CreatedAt:    now,
		UpdatedAt:    now,
		Translations: translationsFromInput(input.Translations, now),
	}

	var created *domain.Word
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.words.Create(txCtx, word)
		return createErr
	})
	if txErr != nil {
		if errors.Is(txErr, domain.ErrAlreadyExists) {
			return nil, domain.ErrAlreadyExists
		}
		return nil, fmt.Errorf("word.Create: %w", txErr)
	}

	s.log.InfoContext(ctx, "word created",
		slog.String("word_id", created.ID.String()),
		slog.String("language_id", languageID.String()),
		slog.Bool("ipa_valid", validation.IsValid))

	return created, nil
}

func translationsFromInput(inputs []TranslationInput, now time.Time) []domain.Translation {
	translations := make([]domain.Translation, 0, len(inputs))
	for _, in := range inputs {
		code := in.LanguageCode
		if code == "" {
			code = domain.DefaultTranslationLanguage
		}
		translations = append(translations, domain.Translation{
			ID:           uuid.New(),
			LanguageCode: code,
			Meaning:      in.Meaning,
			CreatedAt:    now,
		})
	}
	return translations
}
