package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/skillprep/backend/internal/domain/practice"
	"github.com/skillprep/backend/internal/store"
)

// NewStore opens a fresh SQLite store in a temp directory. It is closed
// when the test ends.
func NewStore(t *testing.T) *store.SQLStore {
	t.Helper()

	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// Fixture is a seeded practice set: one skill, one set, and three
// questions. Questions[0] and Questions[1] are multiple choice with the
// correct option second; Questions[2] is free text with no options.
type Fixture struct {
	Skill     *practice.Skill
	Set       *practice.PracticeSet
	Questions []practice.Question
}

// SeedPracticeSet inserts a Fixture. IDs are prefixed with prefix so that
// several fixtures can live in one store.
func SeedPracticeSet(t *testing.T, s store.Store, prefix string, premium bool) *Fixture {
	t.Helper()
	ctx := context.Background()

	skillName := "Geography " + prefix
	f := &Fixture{
		Skill: &practice.Skill{ID: prefix + "-skill", Slug: prefix + "-geography", Name: &skillName},
		Set: &practice.PracticeSet{
			ID:               prefix + "-set",
			SkillID:          prefix + "-skill",
			Title:            "Capitals " + prefix,
			EstimatedMinutes: 5,
			IsPremium:        premium,
		},
	}
	f.Questions = []practice.Question{
		{
			ID: prefix + "-q1", PracticeSetID: f.Set.ID, Prompt: "Capital of France?", Type: "multiple_choice", Position: 0,
			Options: []practice.Option{
				{ID: prefix + "-q1-a", QuestionID: prefix + "-q1", Text: "Lyon"},
				{ID: prefix + "-q1-b", QuestionID: prefix + "-q1", Text: "Paris", IsCorrect: true},
			},
		},
		{
			ID: prefix + "-q2", PracticeSetID: f.Set.ID, Prompt: "Capital of Italy?", Type: "multiple_choice", Position: 1,
			Options: []practice.Option{
				{ID: prefix + "-q2-a", QuestionID: prefix + "-q2", Text: "Milan"},
				{ID: prefix + "-q2-b", QuestionID: prefix + "-q2", Text: "Rome", IsCorrect: true},
			},
		},
		{
			ID: prefix + "-q3", PracticeSetID: f.Set.ID, Prompt: "Describe the Seine.", Type: "free_text", Position: 2,
		},
	}

	if err := s.SaveSkill(ctx, f.Skill); err != nil {
		t.Fatalf("failed to seed skill: %v", err)
	}
	if err := s.SavePracticeSet(ctx, f.Set); err != nil {
		t.Fatalf("failed to seed practice set: %v", err)
	}
	for i := range f.Questions {
		if err := s.SaveQuestion(ctx, &f.Questions[i]); err != nil {
			t.Fatalf("failed to seed question: %v", err)
		}
	}
	return f
}

// SeedProfile inserts a profile for userID.
func SeedProfile(t *testing.T, s store.Store, userID string, premium bool) {
	t.Helper()
	if err := s.SaveProfile(context.Background(), &practice.Profile{UserID: userID, IsPremium: premium}); err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}
}

func StrPtr(s string) *string { return &s }
func BoolPtr(b bool) *bool { return &b }
func FloatPtr(f float64) *float64 { return &f }
