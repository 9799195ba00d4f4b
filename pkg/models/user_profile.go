package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// LanguageSettings holds per-language learning preferences and totals.
type LanguageSettings struct {
	Level              int    `json:"level"` // Vocabulary level, 1-10
	DailyMinutes       int    `json:"daily_minutes"`
	PracticeCount      int    `json:"practice_count"`
	WordsLearned       int    `json:"words_learned"`
	Goal               string `json:"goal"`
	QuestionPreference string `json:"question_preference"`
}

// LanguageMap maps a language name to its settings, stored as a JSON column.
type LanguageMap map[string]LanguageSettings

// Value implements driver.Valuer.
func (m LanguageMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(map[string]LanguageSettings(m))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (m *LanguageMap) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		return json.Unmarshal(v, (*map[string]LanguageSettings)(m))
	case string:
		return json.Unmarshal([]byte(v), (*map[string]LanguageSettings)(m))
	default:
		return fmt.Errorf("cannot scan %T into LanguageMap", src)
	}
}

// UserProfile is the single learner's onboarding record. The store holds
// one row; multi-tenant isolation is out of scope.
type UserProfile struct {
	ID                 int         `json:"id" db:"id"`
	UserID             string      `json:"user_id" db:"user_id"`
	LearningLanguages  LanguageMap `json:"learning_languages" db:"learning_languages"`
	CurrentLanguage    string      `json:"current_language" db:"current_language"`
	TotalPracticeCount int         `json:"total_practice_count" db:"total_practice_count"`
	TotalWordsLearned  int         `json:"total_words_learned" db:"total_words_learned"`
	CreatedAt          time.Time   `json:"created_at" db:"created_at"`
	LastPractice       *time.Time  `json:"last_practice" db:"last_practice"`
}
