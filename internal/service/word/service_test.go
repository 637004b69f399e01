package word

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/config"
	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/domain"
	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/phonology"
	"github.com/CodaCrew-Code-Labs/conlang-backend/pkg/ctxutil"
)

// ===========================================================================
// Manual mocks (func fields)
// ===========================================================================

type mockWordRepo struct {
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	GetByTextFunc       func(ctx context.Context, languageID uuid.UUID, textNormalized string) (*domain.Word, error)
	CountByLanguageFunc func(ctx context.Context, languageID uuid.UUID) (int, error)
	FindFunc            func(ctx context.Context, languageID uuid.UUID, filter domain.WordFilter) ([]domain.Word, int, error)
	CreateFunc          func(ctx context.Context, word *domain.Word) (*domain.Word, error)
	UpdateFunc          func(ctx context.Context, word *domain.Word) (*domain.Word, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
}

func (m *mockWordRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockWordRepo) GetByText(ctx context.Context, languageID uuid.UUID, textNormalized string) (*domain.Word, error) {
	if m.GetByTextFunc != nil {
		return m.GetByTextFunc(ctx, languageID, textNormalized)
	}
	return nil, domain.ErrNotFound
}

func (m *mockWordRepo) CountByLanguage(ctx context.Context, languageID uuid.UUID) (int, error) {
	if m.CountByLanguageFunc != nil {
		return m.CountByLanguageFunc(ctx, languageID)
	}
	return 0, nil
}

func (m *mockWordRepo) Find(ctx context.Context, languageID uuid.UUID, filter domain.WordFilter) ([]domain.Word, int, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, languageID, filter)
	}
	return nil, 0, nil
}

func (m *mockWordRepo) Create(ctx context.Context, word *domain.Word) (*domain.Word, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, word)
	}
	return word, nil
}

func (m *mockWordRepo) Update(ctx context.Context, word *domain.Word) (*domain.Word, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, word)
	}
	return word, nil
}

func (m *mockWordRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockLanguageRepo struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Language, error)
}

func (m *mockLanguageRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Language, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// mockTxManager runs the callback directly, no transaction.
type mockTxManager struct{}

func (m *mockTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// ===========================================================================
// Helpers
// ===========================================================================

func newTestService(words *mockWordRepo, languages *mockLanguageRepo) *Service {
	logger := slog.New(slog.NewTextHandler(nil, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(logger, words, languages, &mockTxManager{}, config.LexiconConfig{MaxLanguagesPerUser: 3, MaxWordsPerLanguage: 5})
}

func testLanguage(userID uuid.UUID) *domain.Language {
	return &domain.Language{
		ID:     uuid.New(),
		UserID: userID,
		Name:   "Kalani",
		Phonemes: phonology.Inventory{
			Consonants: []string{"k", "l", "n", "t"},
			Vowels:     []string{"a", "i"},
		},
		AlphabetMappings: phonology.AlphabetMapping{
			Consonants: map[string]string{"k": "k", "l": "l", "n": "n", "t": "t"},
			Vowels:     map[string]string{"a": "a", "i": "i"},
		},
		Syllables: "CV",
		Rules:     "",
	}
}

func languageRepoFor(lang *domain.Language) *mockLanguageRepo {
	return &mockLanguageRepo{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Language, error) {
			if id == lang.ID {
				return lang, nil
			}
			return nil, domain.ErrNotFound
		},
	}
}

// ===========================================================================
// Create
// ===========================================================================

func TestCreate_StoresValidationSnapshot(t *testing.T) {
	userID := uuid.New()
	lang := testLanguage(userID)

	var created *domain.Word
	words := &mockWordRepo{
		CreateFunc: func(ctx context.Context, word *domain.Word) (*domain.Word, error) {
			created = word
			return word, nil
		},
	}
	svc := newTestService(words, languageRepoFor(lang))

	ctx := ctxutil.WithUserID(context.Background(), userID)
	word, err := svc.Create(ctx, lang.ID, CreateInput{
		Text:         "kala",
		IPA:          "ka.la",
		POS:          []domain.PartOfSpeech{domain.PartOfSpeechNoun},
		IsRoot:       true,
		Translations: []TranslationInput{{Meaning: "fish"}},
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	require.NotNil(t, word.Validation)
	assert.True(t, word.Validation.IsValid)
	require.Len(t, word.Translations, 1)
	assert.Equal(t, domain.DefaultTranslationLanguage, word.Translations[0].LanguageCode)
}

func TestCreate_InvalidIPAStillStored(t *testing.T) {
	userID := uuid.New()
	lang := testLanguage(userID)
	svc := newTestService(&mockWordRepo{}, languageRepoFor(lang))

	ctx := ctxutil.WithUserID(context.Background(), userID)
	word, err := svc.Create(ctx, lang.ID, CreateInput{
		Text: "zubzub",
		IPA:  "zub",
	})
	require.NoError(t, err)

	require.NotNil(t, word.Validation)
	assert.False(t, word.Validation.IsValid)
	require.NotEmpty(t, word.Validation.Violations)
	assert.Equal(t, phonology.ViolationInvalidPhoneme, word.Validation.Violations[0].Type)
}

func TestCreate_DuplicateText(t *testing.T) {
	userID := uuid.New()
	lang := testLanguage(userID)

	words := &mockWordRepo{
		GetByTextFunc: func(ctx context.Context, languageID uuid.UUID, textNormalized string) (*domain.Word, error) {
			return &domain.Word{ID: uuid.New(), Text: "kala"}, nil
		},
	}
	svc := newTestService(words, languageRepoFor(lang))

	ctx := ctxutil.WithUserID(context.Background(), userID)
	_, err := svc.Create(ctx, lang.ID, CreateInput{Text: "KALA", IPA: "ka.la"})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestCreate_WordLimitReached(t *testing.T) {
	userID := uuid.New()
	lang := testLanguage(userID)

	words := &mockWordRepo{
		CountByLanguageFunc: func(ctx context.Context, languageID uuid.UUID) (int, error) {
			return 5, nil
		},
	}
	svc := newTestService(words, languageRepoFor(lang))

	ctx := ctxutil.WithUserID(context.Background(), userID)
	_, err := svc.Create(ctx, lang.ID, CreateInput{Text: "kala"})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "words", verr.Errors[0].Field)
}

func TestCreate_OtherUsersLanguageHidden(t *testing.T) {
	lang := testLanguage(uuid.New())
	svc := newTestService(&mockWordRepo{}, languageRepoFor(lang))

	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	_, err := svc.Create(ctx, lang.ID, CreateInput{Text: "kala"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_Unauthorized(t *testing.T) {
	lang := testLanguage(uuid.New())
	svc := newTestService(&mockWordRepo{}, languageRepoFor(lang))

	_, err := svc.Create(context.Background(), lang.ID, CreateInput{Text: "kala"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ===========================================================================
// Update
// ===========================================================================

func TestUpdate_RevalidatesIPA(t *testing.T) {
	userID := uuid.New()
	lang := testLanguage(userID)
	wordID := uuid.New()

	staleResult := phonology.ValidationResult{IsValid: false}
	words := &mockWordRepo{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
			return &domain.Word{
				ID:         id,
				LanguageID: lang.ID,
				Text:       "kala",
				IPA:        "zub",
				Validation: &staleResult,
			}, nil
		},
	}
	svc := newTestService(words, languageRepoFor(lang))

	ctx := ctxutil.WithUserID(context.Background(), userID)
	updated, err := svc.Update(ctx, wordID, UpdateInput{Text: "kala", IPA: "ka.la"})
	require.NoError(t, err)

	require.NotNil(t, updated.Validation)
	assert.True(t, updated.Validation.IsValid)
}

func TestUpdate_RenameOntoExistingWord(t *testing.T) {
	userID := uuid.New()
	lang := testLanguage(userID)

	words := &mockWordRepo{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
			return &domain.Word{ID: id, LanguageID: lang.ID, Text: "kala"}, nil
		},
		GetByTextFunc: func(ctx context.Context, languageID uuid.UUID, textNormalized string) (*domain.Word, error) {
			return &domain.Word{ID: uuid.New(), Text: "nila"}, nil
		},
	}
	svc := newTestService(words, languageRepoFor(lang))

	ctx := ctxutil.WithUserID(context.Background(), userID)
	_, err := svc.Update(ctx, uuid.New(), UpdateInput{Text: "nila", IPA: "ni.la"})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

// ===========================================================================
// Find / Delete
// ===========================================================================

func TestFind_PassesFilter(t *testing.T) {
	userID := uuid.New()
	lang := testLanguage(userID)

	var gotFilter domain.WordFilter
	words := &mockWordRepo{
		FindFunc: func(ctx context.Context, languageID uuid.UUID, filter domain.WordFilter) ([]domain.Word, int, error) {
			gotFilter = filter
			return []domain.Word{{Text: "kala"}}, 1, nil
		},
	}
	svc := newTestService(words, languageRepoFor(lang))

	search := "ka"
	ctx := ctxutil.WithUserID(context.Background(), userID)
	found, total, err := svc.Find(ctx, lang.ID, FindInput{Search: &search, SortBy: "text", SortOrder: "ASC"})
	require.NoError(t, err)

	assert.Equal(t, 1, total)
	assert.Len(t, found, 1)
	require.NotNil(t, gotFilter.Search)
	assert.Equal(t, "ka", *gotFilter.Search)
	assert.Equal(t, "text", gotFilter.SortBy)
}

func TestFind_InvalidSort(t *testing.T) {
	userID := uuid.New()
	lang := testLanguage(userID)
	svc := newTestService(&mockWordRepo{}, languageRepoFor(lang))

	ctx := ctxutil.WithUserID(context.Background(), userID)
	_, _, err := svc.Find(ctx, lang.ID, FindInput{SortBy: "ipa"})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "sort_by", verr.Errors[0].Field)
}

func TestDelete_ChecksOwnershipThroughLanguage(t *testing.T) {
	owner := uuid.New()
	lang := testLanguage(owner)
	deleted := false

	words := &mockWordRepo{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
			return &domain.Word{ID: id, LanguageID: lang.ID}, nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	svc := newTestService(words, languageRepoFor(lang))

	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	err := svc.Delete(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, deleted)

	ctx = ctxutil.WithUserID(context.Background(), owner)
	require.NoError(t, svc.Delete(ctx, uuid.New()))
	assert.True(t, deleted)
}

// ===========================================================================
// ValidateIPA / Transliterate
// ===========================================================================

func TestValidateIPA_DryRun(t *testing.T) {
	userID := uuid.New()
	lang := testLanguage(userID)
	svc := newTestService(&mockWordRepo{}, languageRepoFor(lang))

	ctx := ctxutil.WithUserID(context.Background(), userID)

	report, err := svc.ValidateIPA(ctx, lang.ID, "ka.la")
	require.NoError(t, err)
	assert.True(t, report.Result.IsValid)
	assert.Equal(t, "✓ No issues found", report.Summary)

	report, err = svc.ValidateIPA(ctx, lang.ID, "zub")
	require.NoError(t, err)
	assert.False(t, report.Result.IsValid)
	assert.Contains(t, report.Summary, "error")
}

func TestTransliterate_BothDirections(t *testing.T) {
	userID := uuid.New()
	lang := testLanguage(userID)
	svc := newTestService(&mockWordRepo{}, languageRepoFor(lang))

	ctx := ctxutil.WithUserID(context.Background(), userID)

	ipa, err := svc.Transliterate(ctx, lang.ID, "kala", domain.DirectionAlphabetToIPA)
	require.NoError(t, err)
	assert.Equal(t, "kala", ipa)

	alpha, err := svc.Transliterate(ctx, lang.ID, "kala", domain.DirectionIPAToAlphabet)
	require.NoError(t, err)
	assert.Equal(t, "kala", alpha)
}

func TestTransliterate_InvalidDirection(t *testing.T) {
	userID := uuid.New()
	lang := testLanguage(userID)
	svc := newTestService(&mockWordRepo{}, languageRepoFor(lang))

	ctx := ctxutil.WithUserID(context.Background(), userID)
	_, err := svc.Transliterate(ctx, lang.ID, "kala", "sideways")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "direction", verr.Errors[0].Field)
}
