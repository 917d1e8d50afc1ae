// internal/service/practice.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/skillprep/backend/internal/domain/practice"
	"github.com/skillprep/backend/internal/store"
	"github.com/skillprep/backend/internal/textgen"
)

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrPracticeSetNotFound = errors.New("practice set not found")
	ErrQuestionNotFound    = errors.New("question not found")
	ErrSkillNotFound       = errors.New("skill not found")
	ErrAnswerNotFound      = errors.New("no answer recorded for this question")
)

// RecentLimit is how many sessions RecentSessions returns.
const RecentLimit = 10

// PracticeService runs the practice-session workflows on top of the store.
// It holds no per-request state and is safe for concurrent use.
type PracticeService struct {
	store     store.Store
	generator textgen.Generator
	logger    *slog.Logger
	now       func() time.Time
}

// NewPracticeService creates a PracticeService.
func NewPracticeService(s store.Store, g textgen.Generator, logger *slog.Logger) *PracticeService {
	return &PracticeService{
		store:     s,
		generator: g,
		logger:    logger,
		now:       time.Now,
	}
}

// SetClock replaces the time source. Tests only.
func (ps *PracticeService) SetClock(now func() time.Time) {
	ps.now = now
}

// PracticeSetView is a practice set with its ordered questions.
type PracticeSetView struct {
	Set       *practice.PracticeSet
	Questions []practice.Question
}

// AnswerInput is a single submitted answer.
type AnswerInput struct {
	QuestionID string
	OptionID   *string
	AnswerText *string
}

// CompletionReport is everything returned when a session is completed.
type CompletionReport struct {
	PracticeSet *practice.PracticeSet
	Skill       *practice.Skill
	Stats       practice.SessionStats
	Answers     []practice.EnrichedAnswer
	CompletedAt time.Time
}

// Explanation is a generated explanation for one answered question.
type Explanation struct {
	QuestionID string
	Text       string
	Model      string
}

// ============================================================================
// Practice sets
// ============================================================================

// GetPracticeSet loads a set and its questions, enforcing premium gating.
func (ps *PracticeService) GetPracticeSet(ctx context.Context, userID, practiceSetID string) (*PracticeSetView, error) {
	set, err := ps.accessibleSet(ctx, userID, practiceSetID)
	if err != nil {
		return nil, err
	}

	questions, err := ps.store.ListQuestions(ctx, set.ID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return &PracticeSetView{Set: set, Questions: questions}, nil
}

func (ps *PracticeService) accessibleSet(ctx context.Context, userID, practiceSetID string) (*practice.PracticeSet, error) {
	set, err := ps.store.GetPracticeSet(ctx, practiceSetID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrPracticeSetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get practice set: %w", err)
	}

	profile, err := ps.store.GetProfile(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	if err := practice.CheckAccess(set, profile); err != nil {
		return nil, err
	}
	return set, nil
}

// ============================================================================
// Sessions
// ============================================================================

// StartSession creates a session for userID on an accessible practice set.
func (ps *PracticeService) StartSession(ctx context.Context, userID, practiceSetID string) (*practice.Session, *practice.PracticeSet, error) {
	set, err := ps.accessibleSet(ctx, userID, practiceSetID)
	if err != nil {
		return nil, nil, err
	}

	session := practice.NewSession(userID, set.ID, ps.now())
	if err := ps.store.SaveSession(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("save session: %w", err)
	}

	ps.logger.Info("session started", "session_id", session.ID, "practice_set_id", set.ID)
	return session, set, nil
}

// ownedSession loads a session and hides sessions of other users behind
// ErrSessionNotFound.
func (ps *PracticeService) ownedSession(ctx context.Context, userID, sessionID string) (*practice.Session, error) {
	session, err := ps.store.GetSession(ctx, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if session.CheckOwner(userID) != nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// SubmitAnswer records an answer. Correctness is decided here from the
// question's options.
func (ps *PracticeService) SubmitAnswer(ctx context.Context, userID, sessionID string, in AnswerInput) (*practice.Answer, error) {
	session, err := ps.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	question, err := ps.store.GetQuestion(ctx, in.QuestionID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrQuestionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}
	if question.PracticeSetID != session.PracticeSetID {
		return nil, ErrQuestionNotFound
	}

	answer := practice.NewAnswer(session.ID, question, in.OptionID, in.AnswerText, ps.now())
	if err := ps.store.SaveAnswer(ctx, answer); err != nil {
		return nil, fmt.Errorf("save answer: %w", err)
	}
	return answer, nil
}

// CompleteSession scores the session's answers, persists the stats, and
// returns the enriched report. Completing again recomputes and overwrites.
func (ps *PracticeService) CompleteSession(ctx context.Context, userID, sessionID string, timeTakenSeconds *float64) (*CompletionReport, error) {
	session, err := ps.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	answers, err := ps.store.ListAnswers(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	questions, err := ps.store.ListQuestions(ctx, session.PracticeSetID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	total, err := ps.store.CountQuestions(ctx, session.PracticeSetID)
	if err != nil {
		return nil, fmt.Errorf("count questions: %w", err)
	}

	enriched, stats := practice.Score(answers, questions, total)
	stats.TimeTakenSeconds = timeTakenSeconds

	completedAt := ps.now().UTC()
	if err := ps.store.CompleteSession(ctx, session.ID, store.Completion{CompletedAt: completedAt, Stats: stats}); err != nil {
		return nil, fmt.Errorf("complete session: %w", err)
	}

	set, err := ps.store.GetPracticeSet(ctx, session.PracticeSetID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrPracticeSetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get practice set: %w", err)
	}
	skill, err := ps.store.GetSkill(ctx, set.SkillID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrSkillNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get skill: %w", err)
	}

	ps.logger.Info("session completed",
		"session_id", session.ID,
		"answers", len(answers),
		"total_questions", stats.TotalQuestions,
		"correct_questions", stats.CorrectQuestions,
		"score", stats.Score,
	)

	return &CompletionReport{
		PracticeSet: set,
		Skill:       skill,
		Stats:       stats,
		Answers:     enriched,
		CompletedAt: completedAt,
	}, nil
}

// RecentSessions returns the user's latest sessions with set titles and
// skill slugs.
func (ps *PracticeService) RecentSessions(ctx context.Context, userID string) ([]store.RecentSession, error) {
	sessions, err := ps.store.ListRecentSessions(ctx, userID, RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent sessions: %w", err)
	}
	return sessions, nil
}

// ============================================================================
// Explanations
// ============================================================================

// Explain generates an explanation for the user's latest answer to
// questionID within the session.
func (ps *PracticeService) Explain(ctx context.Context, userID, sessionID, questionID string) (*Explanation, error) {
	session, err := ps.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	answers, err := ps.store.ListAnswers(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	var latest *practice.Answer
	for i := range answers {
		if answers[i].QuestionID == questionID {
			latest = &answers[i]
		}
	}
	if latest == nil {
		return nil, ErrAnswerNotFound
	}

	question, err := ps.store.GetQuestion(ctx, questionID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrQuestionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}

	enriched, _ := practice.Score([]practice.Answer{*latest}, []practice.Question{*question}, 1)
	view := enriched[0]

	in := textgen.ExplanationInput{Prompt: question.Prompt}
	if view.UserAnswer != nil {
		in.UserAnswer = *view.UserAnswer
	}
	if view.CorrectOptionText != nil {
		in.CorrectAnswer = *view.CorrectOptionText
	}

	res, err := ps.generator.Generate(ctx, textgen.BuildExplanationPrompt(in))
	if err != nil {
		ps.logger.Error("explanation failed", "session_id", session.ID, "question_id", questionID, "error", err)
		return nil, err
	}

	return &Explanation{QuestionID: questionID, Text: res.Text, Model: res.Model}, nil
}
