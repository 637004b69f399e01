// Package word implements the word list: CRUD with language-ownership
// checks, validate-on-write phonology snapshots, dry-run IPA checks,
// and transliteration.
package word

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

// wordRepo defines the word repository interface needed by word service.
type wordRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	GetByText(ctx context.Context, languageID uuid.UUID, textNormalized string) (*domain.Word, error)
	CountByLanguage(ctx context.Context, languageID uuid.UUID) (int, error)
	Find(ctx context.Context, languageID uuid.UUID, filter domain.WordFilter) ([]domain.Word, int, error)
	Create(ctx context.Context, word *domain.Word) (*domain.Word, error)
	Update(ctx context.Context, word *domain.Word) (*domain.Word, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// languageRepo defines the language repository interface needed by word service.
type languageRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Language, error)
}

// txManager defines the transaction manager interface needed by word service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements word business logic.
type Service struct {
	log       *slog.Logger
	words     wordRepo
	languages languageRepo
	tx        txManager
	cfg       config.LexiconConfig
}

// New creates a new word service instance.
func New(
	logger *slog.Logger,
	words wordRepo,
	languages languageRepo,
	tx txManager,
	cfg config.LexiconConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "word"),
		words:     words,
		languages: languages,
		tx:        tx,
		cfg:       cfg,
	}
}

// ownedLanguage loads a language and verifies it belongs to the
// context user. Other users' languages read as ErrNotFound.
func (s *Service) ownedLanguage(ctx context.Context, languageID uuid.UUID) (*domain.Language, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	lang, err := s.languages.GetByID(ctx, languageID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get language: %w", err)
	}

	if lang.UserID != userID {
		return nil, domain.ErrNotFound
	}

	return lang, nil
}

// ownedWord loads a word together with its owning language, verifying
// ownership through the language.
func (s *Service) ownedWord(ctx context.Context, wordID uuid.UUID) (*domain.Word, *domain.Language, error) {
	word, err := s.words.GetByID(ctx, wordID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("get word: %w", err)
	}

	lang, err := s.ownedLanguage(ctx, word.LanguageID)
	if err != nil {
		return nil, nil, err
	}

	return word, lang, nil
}
