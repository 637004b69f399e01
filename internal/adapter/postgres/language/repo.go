// Package language implements the Language repository using PostgreSQL.
// The phoneme inventory and alphabet mappings are stored as JSONB.
package language

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/CodaCrew-Code-Labs/conlang-backend/internal/adapter/postgres"
	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/domain"
	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/phonology"
)

// Repo provides language persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new language repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const languageColumns = `id, user_id, name, description, phonemes, alphabet_mappings, syllables, rules, created_at, updated_at`

const getByIDSQL = `
SELECT ` + languageColumns + `
FROM languages
WHERE id = $1`

const listByUserSQL = `
SELECT ` + languageColumns + `
FROM languages
WHERE user_id = $1
ORDER BY created_at DESC`

const countByUserSQL = `
SELECT count(*) FROM languages WHERE user_id = $1`

const createSQL = `
INSERT INTO languages (id, user_id, name, description, phonemes, alphabet_mappings, syllables, rules, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + languageColumns

const updateSQL = `
UPDATE languages
SET name = $2, description = $3, phonemes = $4, alphabet_mappings = $5, syllables = $6, rules = $7, updated_at = $8
WHERE id = $1
RETURNING ` + languageColumns

const deleteSQL = `
DELETE FROM languages WHERE id = $1`

// GetByID returns a language by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Language, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	lang, err := scanLanguage(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "language", id)
	}
	return lang, nil
}

// ListByUser returns all languages owned by a user, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Language, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, postgres.MapError(err, "language", uuid.Nil)
	}
	defer rows.Close()

	var langs []domain.Language
	for rows.Next() {
		lang, err := scanLanguage(rows)
		if err != nil {
			return nil, postgres.MapError(err, "language", uuid.Nil)
		}
		langs = append(langs, *lang)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "language", uuid.Nil)
	}

	return langs, nil
}

// CountByUser returns the number of languages owned by a user.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countByUserSQL, userID).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "language", uuid.Nil)
	}
	return count, nil
}

// Create inserts a new language and returns the persisted row.
func (r *Repo) Create(ctx context.Context, lang *domain.Language) (*domain.Language, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	phonemes, mappings, err := marshalConfig(lang)
	if err != nil {
		return nil, err
	}

	created, err := scanLanguage(q.QueryRow(ctx, createSQL,
		lang.ID, lang.UserID, lang.Name, lang.Description, phonemes, mappings,
		lang.Syllables, lang.Rules, lang.CreatedAt, lang.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "language", lang.ID)
	}
	return created, nil
}

// Update replaces the language's configuration and returns the new row.
func (r *Repo) Update(ctx context.Context, lang *domain.Language) (*domain.Language, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	phonemes, mappings, err := marshalConfig(lang)
	if err != nil {
		return nil, err
	}

	updated, err := scanLanguage(q.QueryRow(ctx, updateSQL,
		lang.ID, lang.Name, lang.Description, phonemes, mappings,
		lang.Syllables, lang.Rules, lang.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "language", lang.ID)
	}
	return updated, nil
}

// Delete removes a language; words cascade at the schema level.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "language", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "language", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

// jsonInventory mirrors the JSONB layout of the phonemes column.
type jsonInventory struct {
	Consonants []string `json:"consonants"`
	Vowels     []string `json:"vowels"`
	Diphthongs []string `json:"diphthongs"`
}

// jsonMappings mirrors the JSONB layout of the alphabet_mappings column.
type jsonMappings struct {
	Consonants map[string]string `json:"consonants"`
	Vowels     map[string]string `json:"vowels"`
	Diphthongs map[string]string `json:"diphthongs"`
}

func marshalConfig(lang *domain.Language) (phonemes []byte, mappings []byte, err error) {
	phonemes, err = json.Marshal(jsonInventory{
		Consonants: lang.Phonemes.Consonants,
		Vowels:     lang.Phonemes.Vowels,
		Diphthongs: lang.Phonemes.Diphthongs,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("marshal phonemes: %w", err)
	}

	mappings, err = json.Marshal(jsonMappings{
		Consonants: lang.AlphabetMappings.Consonants,
		Vowels:     lang.AlphabetMappings.Vowels,
		Diphthongs: lang.AlphabetMappings.Diphthongs,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("marshal alphabet mappings: %w", err)
	}

	return phonemes, mappings, nil
}

func scanLanguage(row pgx.Row) (*domain.Language, error) {
	var (
		lang        domain.Language
		phonemesRaw []byte
		mappingsRaw []byte
	)

	err := row.Scan(
		&lang.ID, &lang.UserID, &lang.Name, &lang.Description,
		&phonemesRaw, &mappingsRaw,
		&lang.Syllables, &lang.Rules,
		&lang.CreatedAt, &lang.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	var inv jsonInventory
	if err := json.Unmarshal(phonemesRaw, &inv); err != nil {
		return nil, fmt.Errorf("unmarshal phonemes: %w", err)
	}
	lang.Phonemes = phonology.Inventory{
		Consonants: inv.Consonants,
		Vowels:     inv.Vowels,
		Diphthongs: inv.Diphthongs,
	}

	var maps jsonMappings
	if err := json.Unmarshal(mappingsRaw, &maps); err != nil {
		return nil, fmt.Errorf("unmarshal alphabet mappings: %w", err)
	}
	lang.AlphabetMappings = phonology.AlphabetMapping{
		Consonants: maps.Consonants,
		Vowels:     maps.Vowels,
		Diphthongs: maps.Diphthongs,
	}

	return &lang, nil
}
