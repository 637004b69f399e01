// Package language implements CRUD and ownership rules for constructed
// languages and their phonology configuration.
package language

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/config"
	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/domain"
	"github.com/CodaCrew-Code-Labs/conlang-backend/pkg/ctxutil"
)

// languageRepo defines the language repository interface needed by language service.
type languageRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Language, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Language, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	Create(ctx context.Context, lang *domain.Language) (*domain.Language, error)
	Update(ctx context.Context, lang *domain.Language) (*domain.Language, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service implements language business logic.
type Service struct {
	log       *slog.Logger
	languages languageRepo
	cfg       config.LexiconConfig
}

// New creates a new language service instance.
func New(logger *slog.Logger, languages languageRepo, cfg config.LexiconConfig) *Service {
	return &Service{
		log:       logger.With("service", "language"),
		languages: languages,
		cfg:       cfg,
	}
}

// GetOwned loads a language and verifies it belongs to the context
// user. Returns ErrNotFound rather than ErrForbidden for other users'
// languages so their IDs are not probeable.
func (s *Service) GetOwned(ctx context.Context, languageID uuid.UUID) (*domain.Language, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	lang, err := s.languages.GetByID(ctx, languageID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("language.GetOwned: %w", err)
	}

	if lang.UserID != userID {
		return nil, domain.ErrNotFound
	}

	return lang, nil
}
