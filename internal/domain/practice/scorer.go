package practice

// EnrichedAnswer is an answer resolved against its question for display.
type EnrichedAnswer struct {
	QuestionID        string  `json:"question_id"`
	Prompt            *string `json:"prompt"`
	UserAnswer        *string `json:"user_answer"`
	UserOptionText    *string `json:"user_option_text"`
	AnswerText        *string `json:"answer_text"`
	IsCorrect         *bool   `json:"is_correct"`
	CorrectOptionText *string `json:"correct_option_text"`
	CorrectAnswer     *string `json:"correct_answer"` // alias of CorrectOptionText
}

// SessionStats is the aggregate persisted back to a completed session.
// TimeTakenSeconds is reported by the client and filled in by the caller.
type SessionStats struct {
	TotalQuestions   int     `json:"total_questions"`
	CorrectQuestions int     `json:"correct_questions"`
	TimeTakenSeconds *float64 `json:"time_taken_seconds"`
	Score            float64 `json:"score"`
}

// Score joins recorded answers against the practice set's questions and
// computes the session stats.
//
// totalQuestions is the authoritative size of the set and may differ from
// len(questions). Answers whose question is missing are still reported, with
// nil prompt and correct answer. Stored correctness flags are taken as-is.
func Score(answers []Answer, questions []Question, totalQuestions int) ([]EnrichedAnswer, SessionStats) {
	byID := make(map[string]*Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	enriched := make([]EnrichedAnswer, 0, len(answers))
	correct := 0

	for _, a := range answers {
		ea := EnrichedAnswer{
			QuestionID: a.QuestionID,
			AnswerText: a.AnswerText,
			IsCorrect:  a.IsCorrect,
		}

		if q, ok := byID[a.QuestionID]; ok {
			ea.Prompt = &q.Prompt

			options := make(map[string]*Option, len(q.Options))
			for i := range q.Options {
				options[q.Options[i].ID] = &q.Options[i]
			}
			if a.OptionID != nil {
				if opt, ok := options[*a.OptionID]; ok {
					ea.UserOptionText = &opt.Text
				}
			}
			if opt := q.CorrectOption(); opt != nil {
				ea.CorrectOptionText = &opt.Text
			}
		}
		ea.CorrectAnswer = ea.CorrectOptionText

		// Free text wins; an empty string falls back to the chosen option.
		if a.AnswerText != nil && *a.AnswerText != "" {
			ea.UserAnswer = a.AnswerText
		} else {
			ea.UserAnswer = ea.UserOptionText
		}

		if a.IsCorrect != nil && *a.IsCorrect {
			correct++
		}
		enriched = append(enriched, ea)
	}

	stats := SessionStats{
		TotalQuestions:   totalQuestions,
		CorrectQuestions: correct,
	}
	if totalQuestions > 0 {
		stats.Score = 100 * float64(correct) / float64(totalQuestions)
	}
	return enriched, stats
}
