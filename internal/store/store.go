package store

import (
	"context"
	"errors"
	"time"

	"github.com/skillprep/backend/internal/domain/practice"
)

var (
	ErrNotFound = errors.New("not found")
)

// Store is the persistence collaborator of the practice flows. It returns
// rows as-is; authorization is the caller's job.
type Store interface {
	SaveProfile(ctx context.Context, p *practice.Profile) error
	GetProfile(ctx context.Context, userID string) (*practice.Profile, error)

	SaveSkill(ctx context.Context, s *practice.Skill) error
	GetSkill(ctx context.Context, id string) (*practice.Skill, error)

	SavePracticeSet(ctx context.Context, ps *practice.PracticeSet) error
	GetPracticeSet(ctx context.Context, id string) (*practice.PracticeSet, error)

	// SaveQuestion inserts the question together with its options.
	SaveQuestion(ctx context.Context, q *practice.Question) error
	GetQuestion(ctx context.Context, id string) (*practice.Question, error)
	ListQuestions(ctx context.Context, practiceSetID string) ([]practice.Question, error)
	CountQuestions(ctx context.Context, practiceSetID string) (int, error)

	SaveSession(ctx context.Context, s *practice.Session) error
	GetSession(ctx context.Context, id string) (*practice.Session, error)
	CompleteSession(ctx context.Context, sessionID string, c Completion) error
	ListRecentSessions(ctx context.Context, userID string, limit int) ([]RecentSession, error)

	SaveAnswer(ctx context.Context, a *practice.Answer) error
	ListAnswers(ctx context.Context, sessionID string) ([]practice.Answer, error)

	Close() error
}

// Completion holds the values written to a session when it is completed.
type Completion struct {
	CompletedAt time.Time
	Stats       practice.SessionStats
}

// RecentSession is a session row joined with its practice set title and
// skill slug.
type RecentSession struct {
	practice.Session
	PracticeSetTitle string
	SkillSlug        string
}
