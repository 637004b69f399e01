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
	"github.com/CodaCrew-Code-Labs/conlang-backend/pkg/ctxutil"
)

// Result is returned by Create and Update. Advisories are non-fatal
// notes about the language's configuration, such as unusual syllable
// template characters.
type Result struct {
	Language   *domain.Language
	Advisories []string
}

// Create creates a new language owned by the context user.
// Returns ErrAlreadyExists if the user already has a language with the
// same name.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Result, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Name = strings.TrimSpace(input.Name)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	count, err := s.languages.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("language.Create count: %w", err)
	}
	if count >= s.cfg.MaxLanguagesPerUser {
		return nil, domain.NewValidationError("languages", "limit reached")
	}

	if input.Syllables == "" {
		input.Syllables = domain.DefaultSyllableTemplate
	}

	now := time.Now().UTC()
	lang := &domain.Language{
		ID:               uuid.New(),
		UserID:           userID,
		Name:             input.Name,
		Description:      input.Description,
		Phonemes:         input.Phonemes,
		AlphabetMappings: input.AlphabetMappings,
		Syllables:        input.Syllables,
		Rules:            input.Rules,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := s.languages.Create(ctx, lang)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("language.Create: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("language.Create: %w", err)
	}

	s.log.InfoContext(ctx, "language created",
		slog.String("language_id", created.ID.String()),
		slog.String("user_id", userID.String()))

	return &Result{
		Language:   created,
		Advisories: templateAdvisories(created.Syllables),
	}, nil
}
