package textgen

import (
	"fmt"
	"strings"
)

// ExplanationInput is what the learner saw and answered.
type ExplanationInput struct {
	Prompt        string
	UserAnswer    string // empty when unanswered
	CorrectAnswer string // empty for free-text questions
}

// BuildExplanationPrompt asks for a short tutor-style explanation of why
// the correct answer is right and, when it differs, where the learner's
// answer went wrong.
func BuildExplanationPrompt(in ExplanationInput) string {
	userAnswer := strings.TrimSpace(in.UserAnswer)
	if userAnswer == "" {
		userAnswer = "(no answer)"
	}

	reference := "There is no single reference answer; judge the learner's answer on its merits."
	if in.CorrectAnswer != "" {
		reference = "CORRECT ANSWER:\n" + in.CorrectAnswer
	}

	return fmt.Sprintf(`You are a patient tutor reviewing one practice question.

RULES:
- Explain in at most 4 sentences why the correct answer is right.
- If the learner's answer is wrong or incomplete, say what they missed.
- Do not repeat the question. Plain text only, no markdown.

QUESTION:
%s

%s

LEARNER'S ANSWER:
%s`,
		strings.TrimSpace(in.Prompt), reference, userAnswer)
}
