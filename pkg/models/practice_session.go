package models

import "time"

// PracticeSession summarizes one completed (or abandoned) learning episode.
type PracticeSession struct {
	ID            int       `json:"id" db:"id"`
	PracticeID    string    `json:"practice_id" db:"practice_id"`
	Timestamp     time.Time `json:"timestamp" db:"timestamp"`
	Language      string    `json:"language" db:"language"`
	SourceArticle string    `json:"source_article" db:"source_article"`
	WordsLearned  StringSet `json:"words_learned" db:"words_learned"`
	QuestionCount int       `json:"question_count" db:"question_count"`
	CorrectCount  int       `json:"correct_count" db:"correct_count"` // First-attempt correct answers
	Accuracy      float64   `json:"accuracy" db:"accuracy"`
	Difficulty    int       `json:"difficulty" db:"difficulty"`
	TimeSpent     int       `json:"time_spent" db:"time_spent"` // Seconds
	Abandoned     bool      `json:"abandoned" db:"abandoned"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
