package models

import "time"

// Defaults for a word that has never been reviewed.
const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
)

// WordProgress tracks learning state for a single (word, language) pair.
// It is mutated only by the review scheduler after an answered question.
type WordProgress struct {
	ID              int        `json:"id" db:"id"`
	Word            string     `json:"word" db:"word"`
	Language        string     `json:"language" db:"language"`
	TotalAttempts   int        `json:"total_attempts" db:"total_attempts"`
	CorrectAttempts int        `json:"correct_attempts" db:"correct_attempts"`
	EaseFactor      float64    `json:"ease_factor" db:"ease_factor"`
	Interval        int        `json:"interval" db:"interval"` // Days until next review; 0 before first success
	LastReview      *time.Time `json:"last_review" db:"last_review"`
	NextReview      *time.Time `json:"next_review" db:"next_review"`
	MasteryLevel    float64    `json:"mastery_level" db:"mastery_level"` // Normalized [0,1] proficiency estimate
	Reinforce       bool       `json:"reinforce" db:"reinforce"`         // External signal: due even before first review
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

// NewWordProgress returns initial progress for a word seen for the first time.
func NewWordProgress(word, language string) WordProgress {
	return WordProgress{
		Word:       word,
		Language:   language,
		EaseFactor: DefaultEaseFactor,
	}
}

// Accuracy returns the rolling share of correct attempts.
func (p WordProgress) Accuracy() float64 {
	if p.TotalAttempts == 0 {
		return 0
	}
	return float64(p.CorrectAttempts) / float64(p.TotalAttempts)
}

// Reviewed reports whether the word has been answered at least once.
func (p WordProgress) Reviewed() bool {
	return p.TotalAttempts > 0
}
