package models

import "time"

// QuestionType identifies the kind of exercise a question record holds.
type QuestionType string

const (
	// SingleChoice is a four-option multiple choice question.
	SingleChoice QuestionType = "single_choice"
	// FillBlank is a sentence with a blank to fill in.
	FillBlank QuestionType = "fill_blank"
)

// QuestionRecord is one question instance inside a practice session.
// Content fields are produced by the generation collaborator and are
// opaque to the scheduling core.
type QuestionRecord struct {
	ID          int          `json:"id" db:"id"`
	QuestionID  string       `json:"question_id" db:"question_id"`
	PracticeID  string       `json:"practice_id" db:"practice_id"`
	Timestamp   time.Time    `json:"timestamp" db:"timestamp"`
	Type        QuestionType `json:"question_type" db:"question_type"`
	Word        string       `json:"word" db:"word"`
	Question    string       `json:"question_content" db:"question_content"`
	Hint        string       `json:"hint" db:"hint"`
	Options     StringSet    `json:"options" db:"options"` // Empty for fill-blank questions
	Answer      string       `json:"correct_answer" db:"correct_answer"`
	UserAnswer  string       `json:"user_answer" db:"user_answer"`
	IsCorrect   bool         `json:"is_correct" db:"is_correct"`
	Explanation string       `json:"explanation" db:"explanation"`
	Difficulty  int          `json:"difficulty" db:"difficulty"`
	Language    string       `json:"language" db:"language"`
}
