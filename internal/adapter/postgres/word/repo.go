// Package word implements the Word repository using PostgreSQL.
// Fixed-shape queries use raw SQL; the filtered list query is built
// dynamically with squirrel. The stored validation snapshot is JSONB.
package word

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/CodaCrew-Code-Labs/conlang-backend/internal/adapter/postgres"
	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/domain"
	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/phonology"
)

// Repo provides word and translation persistence backed by PostgreSQL.
// Create and Update touch both the words and translations tables;
// callers are expected to run them inside a transaction.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// psql builds queries with PostgreSQL $n placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const wordColumns = `id, language_id, text, ipa, pos, is_root, validation, created_at, updated_at`

const getByIDSQL = `
SELECT ` + wordColumns + `
FROM words
WHERE id = $1`

const getByTextSQL = `
SELECT ` + wordColumns + `
FROM words
WHERE language_id = $1 AND text_normalized = $2`

const countByLanguageSQL = `
SELECT count(*) FROM words WHERE language_id = $1`

const createSQL = `
INSERT INTO words (id, language_id, text, text_normalized, ipa, pos, is_root, validation, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + wordColumns

const updateSQL = `
UPDATE words
SET text = $2, text_normalized = $3, ipa = $4, pos = $5, is_root = $6, validation = $7, updated_at = $8
WHERE id = $1
RETURNING ` + wordColumns

const deleteSQL = `
DELETE FROM words WHERE id = $1`

const getTranslationsSQL = `
SELECT id, word_id, language_code, meaning, created_at
FROM translations
WHERE word_id = $1
ORDER BY created_at`

const getTranslationsByWordIDsSQL = `
SELECT id, word_id, language_code, meaning, created_at
FROM translations
WHERE word_id = ANY($1::uuid[])
ORDER BY word_id, created_at`

const insertTranslationSQL = `
INSERT INTO translations (id, word_id, language_code, meaning, created_at)
VALUES ($1, $2, $3, $4, $5)`

const deleteTranslationsSQL = `
DELETE FROM translations WHERE word_id = $1`

// GetByID returns a word with its translations.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	word, err := scanWord(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "word", id)
	}

	translations, err := r.translationsFor(ctx, word.ID)
	if err != nil {
		return nil, err
	}
	word.Translations = translations

	return word, nil
}

// GetByText returns the word with the given normalized text in a
// language, without translations.
func (r *Repo) GetByText(ctx context.Context, languageID uuid.UUID, textNormalized string) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	word, err := scanWord(q.QueryRow(ctx, getByTextSQL, languageID, textNormalized))
	if err != nil {
		return nil, postgres.MapError(err, "word", uuid.Nil)
	}
	return word, nil
}

// CountByLanguage returns the number of words in a language.
func (r *Repo) CountByLanguage(ctx context.Context, languageID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countByLanguageSQL, languageID).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "word", uuid.Nil)
	}
	return count, nil
}

// Find returns a filtered page of a language's words plus the total
// count for the filter, with translations attached.
func (r *Repo) Find(ctx context.Context, languageID uuid.UUID, filter domain.WordFilter) ([]domain.Word, int, error) {
	filter.Normalize()
	q := postgres.QuerierFromCtx(ctx, r.pool)

	base := psql.Select().From("words").Where(squirrel.Eq{"language_id": languageID})
	if filter.Search != nil && *filter.Search != "" {
		base = base.Where(squirrel.ILike{"text_normalized": "%" + domain.NormalizeText(*filter.Search) + "%"})
	}
	if filter.IsRoot != nil {
		base = base.Where(squirrel.Eq{"is_root": *filter.IsRoot})
	}

	countSQL, countArgs, err := base.Column("count(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "word", uuid.Nil)
	}

	// SortBy/SortOrder are whitelisted by Normalize, safe to splice.
	orderBy := filter.SortBy + " " + filter.SortOrder
	if filter.SortBy == "text" {
		orderBy = "text_normalized " + filter.SortOrder
	}

	listSQL, listArgs, err := base.Columns(wordColumns).
		OrderBy(orderBy, "id "+filter.SortOrder).
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "word", uuid.Nil)
	}
	defer rows.Close()

	var words []domain.Word
	for rows.Next() {
		word, err := scanWord(rows)
		if err != nil {
			return nil, 0, postgres.MapError(err, "word", uuid.Nil)
		}
		words = append(words, *word)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError(err, "word", uuid.Nil)
	}

	if err := r.attachTranslations(ctx, words); err != nil {
		return nil, 0, err
	}

	return words, total, nil
}

// Create inserts a word and its translations.
func (r *Repo) Create(ctx context.Context, word *domain.Word) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	validation, err := marshalValidation(word.Validation)
	if err != nil {
		return nil, err
	}

	created, err := scanWord(q.QueryRow(ctx, createSQL,
		word.ID, word.LanguageID, word.Text, domain.NormalizeText(word.Text),
		word.IPA, posStrings(word.POS), word.IsRoot, validation,
		word.CreatedAt, word.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "word", word.ID)
	}

	created.Translations, err = r.writeTranslations(ctx, created.ID, word.Translations)
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Update rewrites a word and replaces its translations wholesale.
func (r *Repo) Update(ctx context.Context, word *domain.Word) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	validation, err := marshalValidation(word.Validation)
	if err != nil {
		return nil, err
	}

	updated, err := scanWord(q.QueryRow(ctx, updateSQL,
		word.ID, word.Text, domain.NormalizeText(word.Text),
		word.IPA, posStrings(word.POS), word.IsRoot, validation, word.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "word", word.ID)
	}

	if _, err := q.Exec(ctx, deleteTranslationsSQL, word.ID); err != nil {
		return nil, postgres.MapError(err, "translation", word.ID)
	}

	updated.Translations, err = r.writeTranslations(ctx, word.ID, word.Translations)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes a word; translations cascade at the schema level.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "word", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "word", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Translations
// ---------------------------------------------------------------------------

func (r *Repo) translationsFor(ctx context.Context, wordID uuid.UUID) ([]domain.Translation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getTranslationsSQL, wordID)
	if err != nil {
		return nil, postgres.MapError(err, "translation", wordID)
	}
	defer rows.Close()

	return scanTranslations(rows)
}

// attachTranslations loads translations for a page of words in one
// query and groups them by word.
func (r *Repo) attachTranslations(ctx context.Context, words []domain.Word) error {
	if len(words) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(words))
	byID := make(map[uuid.UUID]*domain.Word, len(words))
	for i := range words {
		ids[i] = words[i].ID
		byID[words[i].ID] = &words[i]
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getTranslationsByWordIDsSQL, ids)
	if err != nil {
		return postgres.MapError(err, "translation", uuid.Nil)
	}
	defer rows.Close()

	translations, err := scanTranslations(rows)
	if err != nil {
		return err
	}

	for _, tr := range translations {
		if w, ok := byID[tr.WordID]; ok {
			w.Translations = append(w.Translations, tr)
		}
	}
	return nil
}

func (r *Repo) writeTranslations(ctx context.Context, wordID uuid.UUID, translations []domain.Translation) ([]domain.Translation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	written := make([]domain.Translation, 0, len(translations))
	for _, tr := range translations {
		if tr.Meaning == "" {
			continue
		}
		if tr.ID == uuid.Nil {
			tr.ID = uuid.New()
		}
		tr.WordID = wordID
		if tr.LanguageCode == "" {
			tr.LanguageCode = domain.DefaultTranslationLanguage
		}

		if _, err := q.Exec(ctx, insertTranslationSQL,
			tr.ID, tr.WordID, tr.LanguageCode, tr.Meaning, tr.CreatedAt,
		); err != nil {
			return nil, postgres.MapError(err, "translation", tr.ID)
		}
		written = append(written, tr)
	}

	return written, nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

func marshalValidation(v *phonology.ValidationResult) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal validation: %w", err)
	}
	return raw, nil
}

func posStrings(pos []domain.PartOfSpeech) []string {
	out := make([]string, len(pos))
	for i, p := range pos {
		out[i] = string(p)
	}
	return out
}

func scanWord(row pgx.Row) (*domain.Word, error) {
	var (
		word          domain.Word
		pos           []string
		validationRaw []byte
	)

	err := row.Scan(
		&word.ID, &word.LanguageID, &word.Text, &word.IPA,
		&pos, &word.IsRoot, &validationRaw,
		&word.CreatedAt, &word.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	word.POS = make([]domain.PartOfSpeech, len(pos))
	for i, p := range pos {
		word.POS[i] = domain.PartOfSpeech(p)
	}

	if len(validationRaw) > 0 {
		var result phonology.ValidationResult
		if err := json.Unmarshal(validationRaw, &result); err != nil {
			return nil, fmt.Errorf("unmarshal validation: %w", err)
		}
		word.Validation = &result
	}

	return &word, nil
}

func scanTranslations(rows pgx.Rows) ([]domain.Translation, error) {
	var translations []domain.Translation
	for rows.Next() {
		var tr domain.Translation
		if err := rows.Scan(&tr.ID, &tr.WordID, &tr.LanguageCode, &tr.Meaning, &tr.CreatedAt); err != nil {
			return nil, postgres.MapError(err, "translation", uuid.Nil)
		}
		translations = append(translations, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "translation", uuid.Nil)
	}
	return translations, nil
}
