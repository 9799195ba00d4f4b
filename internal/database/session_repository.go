package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/lingocoach/pkg/models"
)

// SessionRepository handles database operations for practice session records
type SessionRepository struct{}

// NewSessionRepository creates a new repository instance
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{}
}

// AppendSession inserts a finalized session summary
func (r *SessionRepository) AppendSession(session *models.PracticeSession) error {
	query := rebind(`
		INSERT INTO practice_sessions (
			practice_id, timestamp, language, source_article, words_learned,
			question_count, correct_count, accuracy, difficulty, time_spent, abandoned
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := DB.Exec(
		query,
		session.PracticeID,
		session.Timestamp,
		session.Language,
		session.SourceArticle,
		session.WordsLearned,
		session.QuestionCount,
		session.CorrectCount,
		session.Accuracy,
		session.Difficulty,
		session.TimeSpent,
		session.Abandoned,
	)
	if err != nil {
		return fmt.Errorf("failed to append session: %v", err)
	}
	return nil
}

// GetByPracticeID returns a session summary, or nil when unknown
func (r *SessionRepository) GetByPracticeID(practiceID string) (*models.PracticeSession, error) {
	var session models.PracticeSession
	query := rebind("SELECT * FROM practice_sessions WHERE practice_id = ?")
	err := DB.Get(&session, query, practiceID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %v", err)
	}
	return &session, nil
}

// RecentAccuracies returns the accuracy of the last n completed sessions for
// a language, most recent first. Abandoned sessions are skipped.
func (r *SessionRepository) RecentAccuracies(language string, n int) ([]float64, error) {
	accuracies := []float64{}
	query := rebind(`
		SELECT accuracy FROM practice_sessions
		WHERE language = ? AND NOT abandoned
		ORDER BY timestamp DESC
		LIMIT ?
	`)
	if err := DB.Select(&accuracies, query, language, n); err != nil {
		return nil, fmt.Errorf("failed to get recent accuracies: %v", err)
	}
	return accuracies, nil
}
