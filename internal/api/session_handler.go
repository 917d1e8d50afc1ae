package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/skillprep/backend/internal/domain/practice"
	"github.com/skillprep/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateSessionRequest struct {
	PracticeSetID string `json:"practice_set_id" example:"3d5e7f90-1a2b-4c3d-8e4f-5a6b7c8d9e0f"`
}

func (r *CreateSessionRequest) Validate() error {
	if r.PracticeSetID == "" {
		return errors.New("practice_set_id required")
	}
	return nil
}

type SessionPracticeSet struct {
	ID               string `json:"id" example:"3d5e7f90-1a2b-4c3d-8e4f-5a6b7c8d9e0f"`
	Title            string `json:"title" example:"European capitals"`
	EstimatedMinutes int    `json:"estimated_minutes" example:"10"`
}

type CreateSessionResponse struct {
	ID          string             `json:"id" example:"7c6b5a49-3827-4165-9f8e-7d6c5b4a3928"`
	PracticeSet SessionPracticeSet `json:"practice_set"`
	StartedAt   time.Time          `json:"started_at"`
}

type AddAnswerRequest struct {
	QuestionID string  `json:"question_id" example:"0b8f6e2a-5c1d-4f7a-8e9b-1a2b3c4d5e6f"`
	OptionID   *string `json:"option_id,omitempty" example:"6f1c2b9e-0d4a-4a8e-9d51-2f0f3c7a1e11"`
	AnswerText *string `json:"answer_text,omitempty"`
}

func (r *AddAnswerRequest) Validate() error {
	if r.QuestionID == "" {
		return errors.New("question_id required")
	}
	return nil
}

// AnswerResponse is the stored answer row.
type AnswerResponse struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	QuestionID string    `json:"question_id"`
	OptionID   *string   `json:"option_id"`
	AnswerText *string   `json:"answer_text"`
	IsCorrect  *bool     `json:"is_correct"`
	AnsweredAt time.Time `json:"answered_at"`
}

type CompleteSessionRequest struct {
	TimeTakenSeconds *float64 `json:"time_taken_seconds" example:"312.5"`
}

type CompletedPracticeSet struct {
	ID        string  `json:"id"`
	Title     string  `json:"title" example:"European capitals"`
	SkillSlug string  `json:"skill_slug" example:"geography"`
	SkillName *string `json:"skill_name" example:"Geography"`
}

type CompleteSessionResponse struct {
	PracticeSet CompletedPracticeSet      `json:"practice_set"`
	Stats       practice.SessionStats     `json:"stats"`
	Answers     []practice.EnrichedAnswer `json:"answers"`
	CompletedAt time.Time                 `json:"completed_at"`
}

type RecentSessionResponse struct {
	ID               string     `json:"id"`
	PracticeSetID    string     `json:"practice_set_id"`
	CompletedAt      *time.Time `json:"completed_at"`
	TotalQuestions   int        `json:"total_questions" example:"10"`
	CorrectQuestions int        `json:"correct_questions" example:"7"`
	Score            float64    `json:"score" example:"70"`
	PracticeSetTitle string     `json:"practice_set_title" example:"European capitals"`
	SkillSlug        string     `json:"skill_slug" example:"geography"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createSession starts a practice session.
// @Summary      Start a practice session
// @Tags         Practice sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      CreateSessionRequest  true  "Practice set to start"
// @Success      201   {object}  CreateSessionResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse  "premium required"
// @Failure      404   {object}  ErrorResponse  "practice set not found"
// @Router       /api/practice-sessions [post]
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, set, err := h.practice.StartSession(r.Context(), userID(r), req.PracticeSetID)
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusCreated, CreateSessionResponse{
		ID: session.ID,
		PracticeSet: SessionPracticeSet{
			ID:               set.ID,
			Title:            set.Title,
			EstimatedMinutes: set.EstimatedMinutes,
		},
		StartedAt: session.StartedAt,
	})
}

// addAnswer records one answer.
// @Summary      Submit an answer
// @Description  Correctness is decided at submission for multiple-choice answers; free text is stored with is_correct null.
// @Tags         Practice sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        sessionID  path      string            true  "Session ID"
// @Param        body       body      AddAnswerRequest  true  "Answer"
// @Success      201        {object}  AnswerResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      401        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse  "session or question not found"
// @Router       /api/practice-sessions/{sessionID}/answers [post]
func (h *Handler) addAnswer(w http.ResponseWriter, r *http.Request) {
	var req AddAnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	answer, err := h.practice.SubmitAnswer(r.Context(), userID(r), r.PathValue("sessionID"), service.AnswerInput{
		QuestionID: req.QuestionID,
		OptionID:   req.OptionID,
		AnswerText: req.AnswerText,
	})
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusCreated, AnswerResponse{
		ID:         answer.ID,
		SessionID:  answer.SessionID,
		QuestionID: answer.QuestionID,
		OptionID:   answer.OptionID,
		AnswerText: answer.AnswerText,
		IsCorrect:  answer.IsCorrect,
		AnsweredAt: answer.AnsweredAt,
	})
}

// completeSession scores and closes a session.
// @Summary      Complete a practice session
// @Description  Scores every recorded answer against the set's questions and persists the stats. The body is optional.
// @Tags         Practice sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        sessionID  path      string                  true   "Session ID"
// @Param        body       body      CompleteSessionRequest  false  "Elapsed time"
// @Success      200        {object}  CompleteSessionResponse
// @Failure      401        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /api/practice-sessions/{sessionID}/complete [post]
func (h *Handler) completeSession(w http.ResponseWriter, r *http.Request) {
	// Body is optional; anything unparsable counts as empty.
	var req CompleteSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		req = CompleteSessionRequest{}
	}

	report, err := h.practice.CompleteSession(r.Context(), userID(r), r.PathValue("sessionID"), req.TimeTakenSeconds)
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, CompleteSessionResponse{
		PracticeSet: CompletedPracticeSet{
			ID:        report.PracticeSet.ID,
			Title:     report.PracticeSet.Title,
			SkillSlug: report.Skill.Slug,
			SkillName: report.Skill.Name,
		},
		Stats:       report.Stats,
		Answers:     report.Answers,
		CompletedAt: report.CompletedAt,
	})
}

// recentSessions lists the caller's latest sessions.
// @Summary      Recent practice sessions
// @Tags         Practice sessions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   RecentSessionResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /api/practice-sessions/recent [get]
func (h *Handler) recentSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.practice.RecentSessions(r.Context(), userID(r))
	if h.handleServiceError(w, err) {
		return
	}

	response := make([]RecentSessionResponse, len(sessions))
	for i, s := range sessions {
		response[i] = RecentSessionResponse{
			ID:               s.ID,
			PracticeSetID:    s.PracticeSetID,
			CompletedAt:      s.CompletedAt,
			TotalQuestions:   s.TotalQuestions,
			CorrectQuestions: s.CorrectQuestions,
			Score:            s.Score,
			PracticeSetTitle: s.PracticeSetTitle,
			SkillSlug:        s.SkillSlug,
		}
	}

	respondJSON(w, http.StatusOK, response)
}
