package models

import "time"

// Word is a vocabulary item available as new-session material.
type Word struct {
	ID            int       `json:"id" db:"id"`
	Word          string    `json:"word" db:"word"`
	Language      string    `json:"language" db:"language"`
	Translation   string    `json:"translation" db:"translation"`
	Context       string    `json:"context" db:"context"`
	TopicID       int64     `json:"topic_id" db:"topic_id"`
	Difficulty    int       `json:"difficulty" db:"difficulty"` // 1-10 scale
	Pronunciation string    `json:"pronunciation" db:"pronunciation"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
