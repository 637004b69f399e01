package language

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/domain"
	"github.com/CodaCrew-Code-Labs/conlang-backend/pkg/ctxutil"
)

// Get returns a language owned by the context user.
func (s *Service) Get(ctx context.Context, languageID uuid.UUID) (*domain.Language, error) {
	return s.GetOwned(ctx, languageID)
}

// List returns all languages owned by the context user, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Language, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	languages, err := s.languages.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("language.List: %w", err)
	}
	return languages, nil
}
