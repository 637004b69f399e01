// Command seeder creates a demo account with a sample language and a
// small word list. It is intended for local development, not as part
// of the main server.
//
// Flags:
//
//	--email     demo account email (default: demo@example.com)
//	--password  demo account password (default: demo-password)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/adapter/postgres"
	languagerepo "github.com/CodaCrew-Code-Labs/conlang-backend/internal/adapter/postgres/language"
	userrepo "github.com/CodaCrew-Code-Labs/conlang-backend/internal/adapter/postgres/user"
	wordrepo "github.com/CodaCrew-Code-Labs/conlang-backend/internal/adapter/postgres/word"
	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/app"
	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/config"
	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/domain"
	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/phonology"
)

func main() {
	emailFlag := flag.String("email", "demo@example.com", "demo account email")
	passwordFlag := flag.String("password", "demo-password", "demo account password")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := seed(ctx, logger, pool, cfg, *emailFlag, *passwordFlag); err != nil {
		logger.Error("seed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func seed(ctx context.Context, logger *slog.Logger, pool *pgxpool.Pool, cfg *config.Config, email, password string) error {
	users := userrepo.New(pool)
	languages := languagerepo.New(pool)
	words := wordrepo.New(pool)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cfg.Auth.PasswordHashCost)
	if err != nil {
		return err
	}

	now := time.Now()
	user, err := users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        email,
		Username:     "demo",
		PasswordHash: string(hash),
		Role:         domain.UserRoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			logger.Info("demo account already exists", slog.String("email", email))
			return nil
		}
		return err
	}

	lang, err := languages.Create(ctx, &domain.Language{
		ID:          uuid.New(),
		UserID:      user.ID,
		Name:        "Kalani",
		Description: "A demo island language with simple CV(C) syllables.",
		Phonemes: phonology.Inventory{
			Consonants: []string{"p", "t", "k", "s", "m", "n", "l"},
			Vowels:     []string{"a", "i", "u"},
			Diphthongs: []string{"ai", "au"},
		},
		AlphabetMappings: phonology.AlphabetMapping{
			Consonants: map[string]string{"p": "p", "t": "t", "k": "k", "s": "s", "m": "m", "n": "n", "l": "l"},
			Vowels:     map[string]string{"a": "a", "i": "i", "u": "u"},
			Diphthongs: map[string]string{"ai": "ai", "au": "au"},
		},
		Syllables: "CV(C)",
		Rules:     "no word may end in /s/",
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return err
	}

	validator := lang.Validator()

	demo := []struct {
		text    string
		ipa     string
		pos     domain.PartOfSpeech
		isRoot  bool
		meaning string
	}{
		{"kala", "kala", domain.PartOfSpeechNoun, true, "fish"},
		{"minau", "minau", domain.PartOfSpeechNoun, true, "moon"},
		{"tupan", "tupan", domain.PartOfSpeechVerb, true, "to sail"},
		{"silai", "silai", domain.PartOfSpeechAdjective, false, "bright"},
	}

	for _, d := range demo {
		validation := validator.Validate(d.ipa)
		_, err := words.Create(ctx, &domain.Word{
			ID:         uuid.New(),
			LanguageID: lang.ID,
			Text:       d.text,
			IPA:        d.ipa,
			POS:        []domain.PartOfSpeech{d.pos},
			IsRoot:     d.isRoot,
			Validation: &validation,
			CreatedAt:  now,
			UpdatedAt:  now,
			Translations: []domain.Translation{
				{LanguageCode: domain.DefaultTranslationLanguage, Meaning: d.meaning},
			},
		})
		if err != nil {
			return err
		}
	}

	logger.Info("seeded demo data",
		slog.String("email", email),
		slog.String("language", lang.Name),
		slog.Int("words", len(demo)),
	)
	return nil
}
