// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/skillprep/backend/internal/auth"
	"github.com/skillprep/backend/internal/domain/practice"
	"github.com/skillprep/backend/internal/service"
	"github.com/skillprep/backend/internal/textgen"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	practice *service.PracticeService
	verifier *auth.Verifier
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(ps *service.PracticeService, v *auth.Verifier, logger *slog.Logger) *Handler {
	return &Handler{
		practice: ps,
		verifier: v,
		logger:   logger,
	}
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error" example:"Session not found"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// validator is implemented by request bodies that check their own fields.
type validator interface {
	Validate() error
}

// decodeJSON decodes the body into v, answering 400 on malformed JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// decodeAndValidate decodes the body and runs its Validate method,
// answering 400 on either failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleServiceError maps service and domain errors to HTTP responses.
// Returns true if an error was handled (caller should return).
func (h *Handler) handleServiceError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}

	var genErr *textgen.GenerateError
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, "Session not found")
	case errors.Is(err, service.ErrPracticeSetNotFound):
		respondError(w, http.StatusNotFound, "Practice set not found")
	case errors.Is(err, service.ErrQuestionNotFound):
		respondError(w, http.StatusNotFound, "Question not found")
	case errors.Is(err, service.ErrSkillNotFound):
		respondError(w, http.StatusNotFound, "Skill not found")
	case errors.Is(err, service.ErrAnswerNotFound):
		respondError(w, http.StatusNotFound, "No answer recorded for this question")
	case errors.Is(err, practice.ErrPremiumRequired):
		respondError(w, http.StatusForbidden, "Premium required for this practice set")
	case errors.Is(err, textgen.ErrNoText):
		respondError(w, http.StatusBadGateway, "No explanation was generated")
	case errors.As(err, &genErr):
		respondError(w, http.StatusBadGateway, "Text generation is unavailable")
	default:
		h.logger.Error("request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}

// userID returns the caller's id. RequireAuth guarantees it is present.
func userID(r *http.Request) string {
	id, _ := auth.UserID(r.Context())
	return id
}
