package practice

import (
	"time"

	"github.com/skillprep/backend/internal/id"
)

// Profile carries the per-user flags the practice flows care about.
type Profile struct {
	UserID    string
	IsPremium bool
}

type Skill struct {
	ID   string
	Slug string
	Name *string
}

// PracticeSet is a named, orderable collection of questions, optionally
// restricted to premium users.
type PracticeSet struct {
	ID               string
	SkillID          string
	Title            string
	EstimatedMinutes int
	IsPremium        bool
}

type Question struct {
	ID            string
	PracticeSetID string
	Prompt        string
	Type          string
	Position      int
	Options       []Option
}

type Option struct {
	ID         string
	QuestionID string
	Text       string
	IsCorrect  bool
}

// Session is one user's timed attempt at a practice set. The stats fields
// stay zero until the session is completed.
type Session struct {
	ID               string
	UserID           string
	PracticeSetID    string
	StartedAt        time.Time
	CompletedAt      *time.Time
	TimeTakenSeconds *float64
	TotalQuestions   int
	CorrectQuestions int
	Score            float64
}

// Answer is a single recorded response within a session. IsCorrect is nil
// when correctness could not be decided at submission time (free text, or
// a question without a correct option).
type Answer struct {
	ID         string
	SessionID  string
	QuestionID string
	OptionID   *string
	AnswerText *string
	IsCorrect  *bool
	AnsweredAt time.Time
}

// NewSession starts a session for userID on the given set.
func NewSession(userID, practiceSetID string, now time.Time) *Session {
	return &Session{
		ID:            id.New(),
		UserID:        userID,
		PracticeSetID: practiceSetID,
		StartedAt:     now.UTC(),
	}
}

// NewAnswer records a response to q. Correctness is decided here, once,
// and never recomputed when the session is scored.
func NewAnswer(sessionID string, q *Question, optionID, answerText *string, now time.Time) *Answer {
	return &Answer{
		ID:         id.New(),
		SessionID:  sessionID,
		QuestionID: q.ID,
		OptionID:   optionID,
		AnswerText: answerText,
		IsCorrect:  CheckOption(q, optionID),
		AnsweredAt: now.UTC(),
	}
}

// CorrectOption returns the first option flagged correct, or nil.
func (q *Question) CorrectOption() *Option {
	for i := range q.Options {
		if q.Options[i].IsCorrect {
			return &q.Options[i]
		}
	}
	return nil
}

// CheckOption reports whether optionID is the correct option of q. It
// returns nil when no option was chosen or q has no correct option.
func CheckOption(q *Question, optionID *string) *bool {
	if optionID == nil || *optionID == "" {
		return nil
	}
	correct := q.CorrectOption()
	if correct == nil {
		return nil
	}
	ok := *optionID == correct.ID
	return &ok
}
