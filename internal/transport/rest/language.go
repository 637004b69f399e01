package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/domain"
	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/phonology"
	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/service/language"
)

// languageService defines the minimal interface needed by LanguageHandler.
type languageService interface {
	Create(ctx context.Context, input language.CreateInput) (*language.Result, error)
	Get(ctx context.Context, languageID uuid.UUID) (*domain.Language, error)
	List(ctx context.Context) ([]domain.Language, error)
	Update(ctx context.Context, languageID uuid.UUID, input language.UpdateInput) (*language.Result, error)
	Delete(ctx context.Context, languageID uuid.UUID) error
}

// LanguageHandler serves language REST endpoints.
type LanguageHandler struct {
	svc languageService
	log *slog.Logger
}

// NewLanguageHandler creates a LanguageHandler.
func NewLanguageHandler(svc languageService, logger *slog.Logger) *LanguageHandler {
	return &LanguageHandler{svc: svc, log: logger.With("handler", "language")}
}

type inventoryPayload struct {
	Consonants []string `json:"consonants"`
	Vowels     []string `json:"vowels"`
	Diphthongs []string `json:"diphthongs"`
}

type mappingsPayload struct {
	Consonants map[string]string `json:"consonants"`
	Vowels     map[string]string `json:"vowels"`
	Diphthongs map[string]string `json:"diphthongs"`
}

type languageRequest struct {
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	Phonemes         inventoryPayload `json:"phonemes"`
	AlphabetMappings mappingsPayload  `json:"alphabetMappings"`
	Syllables        string           `json:"syllables"`
	Rules            string           `json:"rules"`
}

type languageResponse struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Description      string           `json:"description,omitempty"`
	Phonemes         inventoryPayload `json:"phonemes"`
	AlphabetMappings mappingsPayload  `json:"alphabetMappings"`
	Syllables        string           `json:"syllables"`
	Rules            string           `json:"rules,omitempty"`
	Advisories       []string         `json:"advisories,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

type languageListResponse struct {
	Languages []languageResponse `json:"languages"`
}

// Create handles POST /v1/languages.
func (h *LanguageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req languageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Create(r.Context(), language.CreateInput(fromLanguageRequest(req)))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toLanguageResponse(result.Language, result.Advisories))
}

// Get handles GET /v1/languages/{id}.
func (h *LanguageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid language id")
		return
	}

	lang, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toLanguageResponse(lang, nil))
}

// List handles GET /v1/languages.
func (h *LanguageHandler) List(w http.ResponseWriter, r *http.Request) {
	languages, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := languageListResponse{Languages: make([]languageResponse, 0, len(languages))}
	for i := range languages {
		resp.Languages = append(resp.Languages, toLanguageResponse(&languages[i], nil))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Update handles PUT /v1/languages/{id}.
func (h *LanguageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid language id")
		return
	}

	var req languageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Update(r.Context(), id, fromLanguageRequest(req))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toLanguageResponse(result.Language, result.Advisories))
}

// Delete handles DELETE /v1/languages/{id}.
func (h *LanguageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid language id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func fromLanguageRequest(req languageRequest) language.UpdateInput {
	return language.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Phonemes: phonology.Inventory{
			Consonants: req.Phonemes.Consonants,
			Vowels:     req.Phonemes.Vowels,
			Diphthongs: req.Phonemes.Diphthongs,
		},
		AlphabetMappings: phonology.AlphabetMapping{
			Consonants: req.AlphabetMappings.Consonants,
			Vowels:     req.AlphabetMappings.Vowels,
			Diphthongs: req.AlphabetMappings.Diphthongs,
		},
		Syllables: req.Syllables,
		Rules:     req.Rules,
	}
}

func toLanguageResponse(lang *domain.Language, advisories []string) languageResponse {
	return languageResponse{
		ID:          lang.ID.String(),
		Name:        lang.Name,
		Description: lang.Description,
		Phonemes: inventoryPayload{
			Consonants: lang.Phonemes.Consonants,
			Vowels:     lang.Phonemes.Vowels,
			Diphthongs: lang.Phonemes.Diphthongs,
		},
		AlphabetMappings: mappingsPayload{
			Consonants: lang.AlphabetMappings.Consonants,
			Vowels:     lang.AlphabetMappings.Vowels,
			Diphthongs: lang.AlphabetMappings.Diphthongs,
		},
		Syllables:  lang.Syllables,
		Rules:      lang.Rules,
		Advisories: advisories,
		CreatedAt:  lang.CreatedAt,
		UpdatedAt:  lang.UpdatedAt,
	}
}
