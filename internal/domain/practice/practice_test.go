package practice_test

import (
	"errors"
	"testing"
	"time"

	"github.com/skillprep/backend/internal/domain/practice"
)

func TestCheckAccess(t *testing.T) {
	free := &practice.PracticeSet{ID: "free"}
	premium := &practice.PracticeSet{ID: "premium", IsPremium: true}

	tests := []struct {
		name    string
		set     *practice.PracticeSet
		profile *practice.Profile
		wantErr error
	}{
		{"free set, no profile", free, nil, nil},
		{"free set, basic user", free, &practice.Profile{UserID: "u"}, nil},
		{"premium set, premium user", premium, &practice.Profile{UserID: "u", IsPremium: true}, nil},
		{"premium set, basic user", premium, &practice.Profile{UserID: "u"}, practice.ErrPremiumRequired},
		{"premium set, no profile", premium, nil, practice.ErrPremiumRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := practice.CheckAccess(tt.set, tt.profile)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCheckOwner(t *testing.T) {
	s := practice.NewSession("alice", "set-1", time.Now())

	if err := s.CheckOwner("alice"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := s.CheckOwner("bob"); !errors.Is(err, practice.ErrNotOwner) {
		t.Errorf("expected ErrNotOwner, got %v", err)
	}
}

func TestNewSession(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	s := practice.NewSession("alice", "set-1", now)

	if s.ID == "" {
		t.Error("expected non-empty ID")
	}
	if s.StartedAt.Location() != time.UTC {
		t.Errorf("expected UTC start time, got %v", s.StartedAt.Location())
	}
	if !s.StartedAt.Equal(now) {
		t.Errorf("expected %v, got %v", now, s.StartedAt)
	}
	if s.CompletedAt != nil {
		t.Error("expected new session to be incomplete")
	}
}

func TestCheckOption(t *testing.T) {
	q := &practice.Question{
		ID: "q1",
		Options: []practice.Option{
			{ID: "a", Text: "wrong"},
			{ID: "b", Text: "right", IsCorrect: true},
		},
	}

	if got := practice.CheckOption(q, strPtr("b")); got == nil || !*got {
		t.Errorf("expected true for correct option, got %v", got)
	}
	if got := practice.CheckOption(q, strPtr("a")); got == nil || *got {
		t.Errorf("expected false for wrong option, got %v", got)
	}
	if got := practice.CheckOption(q, nil); got != nil {
		t.Errorf("expected nil without an option, got %v", *got)
	}
	if got := practice.CheckOption(q, strPtr("")); got != nil {
		t.Errorf("expected nil for empty option id, got %v", *got)
	}

	noCorrect := &practice.Question{ID: "q2", Options: []practice.Option{{ID: "a"}}}
	if got := practice.CheckOption(noCorrect, strPtr("a")); got != nil {
		t.Errorf("expected nil without a correct option, got %v", *got)
	}
}

func TestNewAnswer(t *testing.T) {
	q := &practice.Question{
		ID:      "q1",
		Options: []practice.Option{{ID: "b", IsCorrect: true}},
	}

	a := practice.NewAnswer("sess", q, strPtr("b"), nil, time.Now())

	if a.ID == "" || a.SessionID != "sess" || a.QuestionID != "q1" {
		t.Errorf("unexpected answer: %+v", a)
	}
	if a.IsCorrect == nil || !*a.IsCorrect {
		t.Error("expected answer to be marked correct")
	}

	text := practice.NewAnswer("sess", q, nil, strPtr("free text"), time.Now())
	if text.IsCorrect != nil {
		t.Error("expected free-text answer to have no correctness")
	}
}
