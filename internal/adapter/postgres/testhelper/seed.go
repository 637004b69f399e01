package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/domain"
	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/phonology"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a bcrypt-shaped placeholder hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Username:     "testuser-" + suffix,
		PasswordHash: "$2a$10$" + suffix + suffix + suffix + "abcdefg",
		Role:         domain.UserRoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Username, user.PasswordHash, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedLanguage creates a language for the given user with a small but
// complete phonology: a phoneme inventory, alphabet mappings, a syllable
// template, and one phonotactic rule. Returns a filled domain.Language.
func SeedLanguage(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Language {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)

	lang := domain.Language{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        "Testlang " + suffix,
		Description: "Seeded language " + suffix,
		Phonemes: phonology.Inventory{
			Consonants: []string{"p", "t", "k", "s", "m", "n"},
			Vowels:     []string{"a", "i", "u"},
			Diphthongs: []string{"ai", "au"},
		},
		AlphabetMappings: phonology.AlphabetMapping{
			Consonants: map[string]string{"p": "p", "t": "t", "k": "k", "s": "s", "m": "m", "n": "n"},
			Vowels:     map[string]string{"a": "a", "i": "i", "u": "u"},
			Diphthongs: map[string]string{"ai": "ai", "au": "au"},
		},
		Syllables: "CV(C)",
		Rules:     "no final consonant clusters",
		CreatedAt: now,
		UpdatedAt: now,
	}

	phonemes, err := json.Marshal(map[string][]string{
		"consonants": lang.Phonemes.Consonants,
		"vowels":     lang.Phonemes.Vowels,
		"diphthongs": lang.Phonemes.Diphthongs,
	})
	if err != nil {
		t.Fatalf("testhelper: SeedLanguage marshal phonemes: %v", err)
	}

	mappings, err := json.Marshal(map[string]map[string]string{
		"consonants": lang.AlphabetMappings.Consonants,
		"vowels":     lang.AlphabetMappings.Vowels,
		"diphthongs": lang.AlphabetMappings.Diphthongs,
	})
	if err != nil {
		t.Fatalf("testhelper: SeedLanguage marshal mappings: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO languages (id, user_id, name, description, phonemes, alphabet_mappings, syllables, rules, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		lang.ID, lang.UserID, lang.Name, lang.Description, phonemes, mappings, lang.Syllables, lang.Rules, lang.CreatedAt, lang.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLanguage insert language: %v", err)
	}

	return lang
}

// SeedWord creates a word in the given language with one translation
// and a stored validation snapshot. Returns a filled domain.Word.
func SeedWord(t *testing.T, pool *pgxpool.Pool, languageID uuid.UUID, text string) domain.Word {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)

	word := domain.Word{
		ID:         uuid.New(),
		LanguageID: languageID,
		Text:       text,
		IPA:        text,
		POS:        []domain.PartOfSpeech{domain.PartOfSpeechNoun},
		IsRoot:     true,
		Validation: &phonology.ValidationResult{IsValid: true, Violations: []phonology.Violation{}},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	validation, err := json.Marshal(word.Validation)
	if err != nil {
		t.Fatalf("testhelper: SeedWord marshal validation: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO words (id, language_id, text, text_normalized, ipa, pos, is_root, validation, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		word.ID, word.LanguageID, word.Text, domain.NormalizeText(word.Text),
		word.IPA, []string{string(domain.PartOfSpeechNoun)}, word.IsRoot, validation,
		word.CreatedAt, word.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert word: %v", err)
	}

	tr := domain.Translation{
		ID:           uuid.New(),
		WordID:       word.ID,
		LanguageCode: domain.DefaultTranslationLanguage,
		Meaning:      "meaning " + suffix,
		CreatedAt:    now,
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO translations (id, word_id, language_code, meaning, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		tr.ID, tr.WordID, tr.LanguageCode, tr.Meaning, tr.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert translation: %v", err)
	}
	word.Translations = []domain.Translation{tr}

	return word
}
