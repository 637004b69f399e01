package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/domain"
	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/phonology"
	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/service/word"
)

// wordService defines the minimal interface needed by WordHandler.
type wordService interface {
	Create(ctx context.Context, languageID uuid.UUID, input word.CreateInput) (*domain.Word, error)
	Get(ctx context.Context, wordID uuid.UUID) (*domain.Word, error)
	Find(ctx context.Context, languageID uuid.UUID, input word.FindInput) ([]domain.Word, int, error)
	Update(ctx context.Context, wordID uuid.UUID, input word.UpdateInput) (*domain.Word, error)
	Delete(ctx context.Context, wordID uuid.UUID) error
	ValidateIPA(ctx context.Context, languageID uuid.UUID, ipa string) (*word.ValidationReport, error)
	Transliterate(ctx context.Context, languageID uuid.UUID, text string, direction domain.TransliterationDirection) (string, error)
}

// WordHandler serves word REST endpoints plus the phonology helpers
// (dry-run validation and transliteration) scoped to a language.
type WordHandler struct {
	svc wordService
	log *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(svc wordService, logger *slog.Logger) *WordHandler {
	return &WordHandler{svc: svc, log: logger.With("handler", "word")}
}

type translationPayload struct {
	LanguageCode string `json:"languageCode"`
	Meaning      string `json:"meaning"`
}

type wordRequest struct {
	Text         string               `json:"text"`
	IPA          string               `json:"ipa"`
	POS          []string             `json:"pos"`
	IsRoot       bool                 `json:"isRoot"`
	Translations []translationPayload `json:"translations"`
}

type wordResponse struct {
	ID           string                      `json:"id"`
	LanguageID   string                      `json:"languageId"`
	Text         string                      `json:"text"`
	IPA          string                      `json:"ipa"`
	POS          []string                    `json:"pos"`
	IsRoot       bool                        `json:"isRoot"`
	Validation   *phonology.ValidationResult `json:"validation,omitempty"`
	Translations []translationPayload        `json:"translations"`
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
}

type wordListResponse struct {
	Words  []wordResponse `json:"words"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

type validateRequest struct {
	IPA string `json:"ipa"`
}

type validateResponse struct {
	Result  phonology.ValidationResult `json:"result"`
	Summary string                     `json:"summary"`
}

type transliterateRequest struct {
	Text      string `json:"text"`
	Direction string `json:"direction"`
}

type transliterateResponse struct {
	Result string `json:"result"`
}

// Create handles POST /v1/languages/{id}/words.
func (h *WordHandler) Create(w http.ResponseWriter, r *http.Request) {
	languageID, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid language id")
		return
	}

	var req wordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), languageID, word.CreateInput(fromWordRequest(req)))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toWordResponse(created))
}

// Get handles GET /v1/words/{id}.
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	found, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(found))
}

// List handles GET /v1/languages/{id}/words.
//
// Supported query parameters: search, isRoot, sortBy, sortOrder,
// limit, offset.
func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	languageID, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid language id")
		return
	}

	input := findInputFromQuery(r)

	// Echo the effective page bounds, not the raw query values.
	page := domain.WordFilter{Limit: input.Limit, Offset: input.Offset}
	page.Normalize()
	input.Limit, input.Offset = page.Limit, page.Offset

	words, total, err := h.svc.Find(r.Context(), languageID, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := wordListResponse{
		Words:  make([]wordResponse, 0, len(words)),
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	for i := range words {
		resp.Words = append(resp.Words, toWordResponse(&words[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Update handles PUT /v1/words/{id}.
func (h *WordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	var req wordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), id, fromWordRequest(req))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(updated))
}

// Delete handles DELETE /v1/words/{id}.
func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Validate handles POST /v1/languages/{id}/validate. It runs the
// language's validator over an IPA string without storing anything.
func (h *WordHandler) Validate(w http.ResponseWriter, r *http.Request) {
	languageID, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid language id")
		return
	}

	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.svc.ValidateIPA(r.Context(), languageID, req.IPA)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, validateResponse{
		Result:  report.Result,
		Summary: report.Summary,
	})
}

// Transliterate handles POST /v1/languages/{id}/transliterate.
func (h *WordHandler) Transliterate(w http.ResponseWriter, r *http.Request) {
	languageID, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid language id")
		return
	}

	var req transliterateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Transliterate(r.Context(), languageID, req.Text, domain.TransliterationDirection(req.Direction))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, transliterateResponse{Result: result})
}

func findInputFromQuery(r *http.Request) word.FindInput {
	q := r.URL.Query()

	input := word.FindInput{
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}

	if v := q.Get("search"); v != "" {
		input.Search = &v
	}
	if v := q.Get("isRoot"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			input.IsRoot = &b
		}
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			input.Limit = n
		}
	}
	if v := q.Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			input.Offset = n
		}
	}

	return input
}

func fromWordRequest(req wordRequest) word.UpdateInput {
	pos := make([]domain.PartOfSpeech, 0, len(req.POS))
	for _, p := range req.POS {
		pos = append(pos, domain.PartOfSpeech(p))
	}

	translations := make([]word.TranslationInput, 0, len(req.Translations))
	for _, tr := range req.Translations {
		translations = append(translations, word.TranslationInput{
			LanguageCode: tr.LanguageCode,
			Meaning:      tr.Meaning,
		})
	}

	return word.UpdateInput{
		Text:         req.Text,
		IPA:          req.IPA,
		POS:          pos,
		IsRoot:       req.IsRoot,
		Translations: translations,
	}
}

func toWordResponse(wd *domain.Word) wordResponse {
	pos := make([]string, 0, len(wd.POS))
	for _, p := range wd.POS {
		pos = append(pos, string(p))
	}

	translations := make([]translationPayload, 0, len(wd.Translations))
	for _, tr := range wd.Translations {
		translations = append(translations, translationPayload{
			LanguageCode: tr.LanguageCode,
			Meaning:      tr.Meaning,
		})
	}

	return wordResponse{
		ID:           wd.ID.String(),
		LanguageID:   wd.LanguageID.String(),
		Text:         wd.Text,
		IPA:          wd.IPA,
		POS:          pos,
		IsRoot:       wd.IsRoot,
		Validation:   wd.Validation,
		Translations: translations,
		CreatedAt:    wd.CreatedAt,
		UpdatedAt:    wd.UpdatedAt,
	}
}
