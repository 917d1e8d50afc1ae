package api

import (
	"errors"
	"net/http"
)

type ExplainRequest struct {
	QuestionID string `json:"question_id" example:"0b8f6e2a-5c1d-4f7a-8e9b-1a2b3c4d5e6f"`
}

func (r *ExplainRequest) Validate() error {
	if r.QuestionID == "" {
		return errors.New("question_id required")
	}
	return nil
}

type ExplainResponse struct {
	QuestionID  string `json:"question_id"`
	Explanation string `json:"explanation" example:"Paris has been France's capital since the 10th century; Lyon is its third-largest city."`
	Model       string `json:"model" example:"gemini-2.0-flash"`
}

// explainAnswer generates an explanation for one answered question.
// @Summary      Explain an answer
// @Description  Asks the text-generation model why the correct answer is right and where the caller's answer went wrong.
// @Tags         Practice sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        sessionID  path      string          true  "Session ID"
// @Param        body       body      ExplainRequest  true  "Question to explain"
// @Success      200        {object}  ExplainResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      401        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Failure      502        {object}  ErrorResponse  "model produced no text"
// @Router       /api/practice-sessions/{sessionID}/explain [post]
func (h *Handler) explainAnswer(w http.ResponseWriter, r *http.Request) {
	var req ExplainRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	exp, err := h.practice.Explain(r.Context(), userID(r), r.PathValue("sessionID"), req.QuestionID)
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, ExplainResponse{
		QuestionID:  exp.QuestionID,
		Explanation: exp.Text,
		Model:       exp.Model,
	})
}
