package api

import (
	"net/http"
)

// ── Response types ──────────────────────────────────────────────────────────

type OptionResponse struct {
	ID   string `json:"id" example:"6f1c2b9e-0d4a-4a8e-9d51-2f0f3c7a1e11"`
	Text string `json:"text" example:"Paris"`
}

type PracticeQuestionResponse struct {
	ID       string           `json:"id" example:"0b8f6e2a-5c1d-4f7a-8e9b-1a2b3c4d5e6f"`
	Prompt   string           `json:"prompt" example:"What is the capital of France?"`
	Type     string           `json:"type" example:"multiple_choice"`
	Position int              `json:"position" example:"0"`
	Options  []OptionResponse `json:"options"`
}

type PracticeSetResponse struct {
	ID               string                     `json:"id" example:"3d5e7f90-1a2b-4c3d-8e4f-5a6b7c8d9e0f"`
	SkillID          string                     `json:"skill_id" example:"9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"`
	Title            string                     `json:"title" example:"European capitals"`
	EstimatedMinutes int                        `json:"estimated_minutes" example:"10"`
	IsPremium        bool                       `json:"is_premium" example:"false"`
	Questions        []PracticeQuestionResponse `json:"questions"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getPracticeSet returns a practice set with its questions.
// @Summary      Get a practice set
// @Description  Returns the set's questions in order. Option correctness is not exposed.
// @Tags         Practice sets
// @Produce      json
// @Security     BearerAuth
// @Param        practiceSetID  path      string  true  "Practice set ID"
// @Success      200            {object}  PracticeSetResponse
// @Failure      401            {object}  ErrorResponse
// @Failure      403            {object}  ErrorResponse  "premium required"
// @Failure      404            {object}  ErrorResponse
// @Router       /api/practice-sets/{practiceSetID} [get]
func (h *Handler) getPracticeSet(w http.ResponseWriter, r *http.Request) {
	view, err := h.practice.GetPracticeSet(r.Context(), userID(r), r.PathValue("practiceSetID"))
	if h.handleServiceError(w, err) {
		return
	}

	questions := make([]PracticeQuestionResponse, len(view.Questions))
	for i, q := range view.Questions {
		options := make([]OptionResponse, len(q.Options))
		for j, opt := range q.Options {
			options[j] = OptionResponse{ID: opt.ID, Text: opt.Text}
		}
		questions[i] = PracticeQuestionResponse{
			ID:       q.ID,
			Prompt:   q.Prompt,
			Type:     q.Type,
			Position: q.Position,
			Options:  options,
		}
	}

	respondJSON(w, http.StatusOK, PracticeSetResponse{
		ID:               view.Set.ID,
		SkillID:          view.Set.SkillID,
		Title:            view.Set.Title,
		EstimatedMinutes: view.Set.EstimatedMinutes,
		IsPremium:        view.Set.IsPremium,
		Questions:        questions,
	})
}
