package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/skillprep/backend/internal/domain/practice"
)

// SQLStore implements Store on database/sql. The same queries serve SQLite
// and PostgreSQL; placeholders are written as "?" and rebound per dialect.
type SQLStore struct {
	db      *sql.DB
	dialect dialect
}

// Compile-time check: *SQLStore satisfies the Store interface.
var _ Store = (*SQLStore)(nil)

type dialect int

const (
	dialectSQLite dialect = iota
	dialectPostgres
)

func (s *SQLStore) Close() error {
	return s.db.Close()
}

// rebind rewrites "?" placeholders into the dialect's form.
func (s *SQLStore) rebind(query string) string {
	if s.dialect != dialectPostgres {
		return query
	}
	return sqlx.Rebind(sqlx.DOLLAR, query)
}

func (s *SQLStore) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.db.ExecContext(ctx, s.rebind(query), args...)
}

func (s *SQLStore) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return s.db.QueryContext(ctx, s.rebind(query), args...)
}

func (s *SQLStore) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return s.db.QueryRowContext(ctx, s.rebind(query), args...)
}

// expectOne maps a zero-row update to ErrNotFound.
func expectOne(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ============================================================================
// Profiles & skills
// ============================================================================

func (s *SQLStore) SaveProfile(ctx context.Context, p *practice.Profile) error {
	_, err := s.exec(ctx, "INSERT INTO profiles (user_id, is_premium) VALUES (?, ?)", p.UserID, p.IsPremium)
	return err
}

func (s *SQLStore) GetProfile(ctx context.Context, userID string) (*practice.Profile, error) {
	var p practice.Profile
	err := s.queryRow(ctx, "SELECT user_id, is_premium FROM profiles WHERE user_id = ?", userID).
		Scan(&p.UserID, &p.IsPremium)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQLStore) SaveSkill(ctx context.Context, sk *practice.Skill) error {
	_, err := s.exec(ctx, "INSERT INTO skills (id, slug, name) VALUES (?, ?, ?)", sk.ID, sk.Slug, sk.Name)
	return err
}

func (s *SQLStore) GetSkill(ctx context.Context, id string) (*practice.Skill, error) {
	var sk practice.Skill
	var name sql.NullString
	err := s.queryRow(ctx, "SELECT id, slug, name FROM skills WHERE id = ?", id).
		Scan(&sk.ID, &sk.Slug, &name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if name.Valid {
		sk.Name = &name.String
	}
	return &sk, nil
}

// ============================================================================
// Practice sets & questions
// ============================================================================

func (s *SQLStore) SavePracticeSet(ctx context.Context, ps *practice.PracticeSet) error {
	_, err := s.exec(ctx,
		"INSERT INTO practice_sets (id, skill_id, title, estimated_minutes, is_premium) VALUES (?, ?, ?, ?, ?)",
		ps.ID, ps.SkillID, ps.Title, ps.EstimatedMinutes, ps.IsPremium,
	)
	return err
}

func (s *SQLStore) GetPracticeSet(ctx context.Context, id string) (*practice.PracticeSet, error) {
	var ps practice.PracticeSet
	err := s.queryRow(ctx,
		"SELECT id, skill_id, title, estimated_minutes, is_premium FROM practice_sets WHERE id = ?", id,
	).Scan(&ps.ID, &ps.SkillID, &ps.Title, &ps.EstimatedMinutes, &ps.IsPremium)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ps, nil
}

func (s *SQLStore) SaveQuestion(ctx context.Context, q *practice.Question) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, s.rebind(
		"INSERT INTO questions (id, practice_set_id, prompt, type, position) VALUES (?, ?, ?, ?, ?)"),
		q.ID, q.PracticeSetID, q.Prompt, q.Type, q.Position,
	)
	if err != nil {
		return err
	}

	for i, opt := range q.Options {
		_, err = tx.ExecContext(ctx, s.rebind(
			"INSERT INTO question_options (id, question_id, text, is_correct, position) VALUES (?, ?, ?, ?, ?)"),
			opt.ID, q.ID, opt.Text, opt.IsCorrect, i,
		)
		if err != nil {
			return fmt.Errorf("insert option %s: %w", opt.ID, err)
		}
	}

	return tx.Commit()
}

func (s *SQLStore) GetQuestion(ctx context.Context, id string) (*practice.Question, error) {
	var q practice.Question
	err := s.queryRow(ctx,
		"SELECT id, practice_set_id, prompt, type, position FROM questions WHERE id = ?", id,
	).Scan(&q.ID, &q.PracticeSetID, &q.Prompt, &q.Type, &q.Position)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.query(ctx,
		"SELECT id, question_id, text, is_correct FROM question_options WHERE question_id = ? ORDER BY position",
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var opt practice.Option
		if err := rows.Scan(&opt.ID, &opt.QuestionID, &opt.Text, &opt.IsCorrect); err != nil {
			return nil, err
		}
		q.Options = append(q.Options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &q, nil
}

// ListQuestions returns the set's questions ordered by position, each with
// its options. Two queries, joined in memory.
func (s *SQLStore) ListQuestions(ctx context.Context, practiceSetID string) ([]practice.Question, error) {
	rows, err := s.query(ctx,
		"SELECT id, practice_set_id, prompt, type, position FROM questions WHERE practice_set_id = ? ORDER BY position, id",
		practiceSetID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []practice.Question
	index := make(map[string]int)
	for rows.Next() {
		var q practice.Question
		if err := rows.Scan(&q.ID, &q.PracticeSetID, &q.Prompt, &q.Type, &q.Position); err != nil {
			return nil, err
		}
		index[q.ID] = len(questions)
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	optRows, err := s.query(ctx, `
		SELECT o.id, o.question_id, o.text, o.is_correct
		FROM question_options o
		JOIN questions q ON q.id = o.question_id
		WHERE q.practice_set_id = ?
		ORDER BY o.question_id, o.position`,
		practiceSetID,
	)
	if err != nil {
		return nil, err
	}
	defer optRows.Close()

	for optRows.Next() {
		var opt practice.Option
		if err := optRows.Scan(&opt.ID, &opt.QuestionID, &opt.Text, &opt.IsCorrect); err != nil {
			return nil, err
		}
		if i, ok := index[opt.QuestionID]; ok {
			questions[i].Options = append(questions[i].Options, opt)
		}
	}
	return questions, optRows.Err()
}

func (s *SQLStore) CountQuestions(ctx context.Context, practiceSetID string) (int, error) {
	var n int
	err := s.queryRow(ctx, "SELECT COUNT(*) FROM questions WHERE practice_set_id = ?", practiceSetID).Scan(&n)
	return n, err
}

// ============================================================================
// Sessions
// ============================================================================

const sessionColumns = `id, user_id, practice_set_id, started_at, completed_at,
	time_taken_seconds, total_questions, correct_questions, score`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner, dest *practice.Session, extra ...any) error {
	var completedAt sql.NullTime
	var timeTaken sql.NullFloat64

	fields := []any{
		&dest.ID, &dest.UserID, &dest.PracticeSetID, &dest.StartedAt, &completedAt,
		&timeTaken, &dest.TotalQuestions, &dest.CorrectQuestions, &dest.Score,
	}
	if err := row.Scan(append(fields, extra...)...); err != nil {
		return err
	}

	if completedAt.Valid {
		t := completedAt.Time.UTC()
		dest.CompletedAt = &t
	}
	if timeTaken.Valid {
		dest.TimeTakenSeconds = &timeTaken.Float64
	}
	dest.StartedAt = dest.StartedAt.UTC()
	return nil
}

func (s *SQLStore) SaveSession(ctx context.Context, sess *practice.Session) error {
	_, err := s.exec(ctx,
		"INSERT INTO practice_sessions (id, user_id, practice_set_id, started_at) VALUES (?, ?, ?, ?)",
		sess.ID, sess.UserID, sess.PracticeSetID, sess.StartedAt,
	)
	return err
}

func (s *SQLStore) GetSession(ctx context.Context, id string) (*practice.Session, error) {
	var sess practice.Session
	err := scanSession(s.queryRow(ctx, "SELECT "+sessionColumns+" FROM practice_sessions WHERE id = ?", id), &sess)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// CompleteSession overwrites the session's stats. Completing twice keeps
// the latest values.
func (s *SQLStore) CompleteSession(ctx context.Context, sessionID string, c Completion) error {
	var timeTaken sql.NullFloat64
	if c.Stats.TimeTakenSeconds != nil {
		timeTaken = sql.NullFloat64{Float64: *c.Stats.TimeTakenSeconds, Valid: true}
	}

	result, err := s.exec(ctx, `
		UPDATE practice_sessions
		SET completed_at = ?, time_taken_seconds = ?, total_questions = ?, correct_questions = ?, score = ?
		WHERE id = ?`,
		c.CompletedAt, timeTaken, c.Stats.TotalQuestions, c.Stats.CorrectQuestions, c.Stats.Score, sessionID,
	)
	if err != nil {
		return err
	}
	return expectOne(result)
}

// ListRecentSessions returns the user's sessions newest first. Sessions
// still in progress have no completed_at and sort ahead of completed ones,
// as a descending order puts NULLs first on PostgreSQL.
func (s *SQLStore) ListRecentSessions(ctx context.Context, userID string, limit int) ([]RecentSession, error) {
	rows, err := s.query(ctx, `
		SELECT s.id, s.user_id, s.practice_set_id, s.started_at, s.completed_at,
			s.time_taken_seconds, s.total_questions, s.correct_questions, s.score,
			COALESCE(ps.title, ''), COALESCE(sk.slug, '')
		FROM practice_sessions s
		LEFT JOIN practice_sets ps ON ps.id = s.practice_set_id
		LEFT JOIN skills sk ON sk.id = ps.skill_id
		WHERE s.user_id = ?
		ORDER BY s.completed_at IS NULL DESC, s.completed_at DESC, s.started_at DESC
		LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []RecentSession
	for rows.Next() {
		var rs RecentSession
		if err := scanSession(rows, &rs.Session, &rs.PracticeSetTitle, &rs.SkillSlug); err != nil {
			return nil, err
		}
		sessions = append(sessions, rs)
	}
	return sessions, rows.Err()
}

// ============================================================================
// Answers
// ============================================================================

func (s *SQLStore) SaveAnswer(ctx context.Context, a *practice.Answer) error {
	_, err := s.exec(ctx, `
		INSERT INTO practice_answers (id, session_id, question_id, option_id, answer_text, is_correct, answered_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.SessionID, a.QuestionID, a.OptionID, a.AnswerText, a.IsCorrect, a.AnsweredAt,
	)
	return err
}

// ListAnswers returns the session's answers in submission order.
func (s *SQLStore) ListAnswers(ctx context.Context, sessionID string) ([]practice.Answer, error) {
	rows, err := s.query(ctx, `
		SELECT id, session_id, question_id, option_id, answer_text, is_correct, answered_at
		FROM practice_answers
		WHERE session_id = ?
		ORDER BY answered_at, id`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []practice.Answer
	for rows.Next() {
		var a practice.Answer
		var optionID, answerText sql.NullString
		var isCorrect sql.NullBool
		if err := rows.Scan(&a.ID, &a.SessionID, &a.QuestionID, &optionID, &answerText, &isCorrect, &a.AnsweredAt); err != nil {
			return nil, err
		}
		if optionID.Valid {
			a.OptionID = &optionID.String
		}
		if answerText.Valid {
			a.AnswerText = &answerText.String
		}
		if isCorrect.Valid {
			a.IsCorrect = &isCorrect.Bool
		}
		a.AnsweredAt = a.AnsweredAt.UTC()
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

// Open returns the store for the configured driver ("sqlite" or "postgres").
func Open(ctx context.Context, driver, dsn string) (*SQLStore, error) {
	switch driver {
	case "sqlite":
		return NewSQLite(dsn)
	case "postgres":
		return NewPostgres(ctx, dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
