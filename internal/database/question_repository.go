package database

import (
	"fmt"

	"github.com/example/lingocoach/pkg/models"
)

// QuestionRepository handles database operations for question records
type QuestionRepository struct{}

// NewQuestionRepository creates a new repository instance
func NewQuestionRepository() *QuestionRepository {
	return &QuestionRepository{}
}

// AppendQuestions inserts generated question records for a session
func (r *QuestionRepository) AppendQuestions(questions []models.QuestionRecord) error {
	query := rebind(`
		INSERT INTO question_history (
			question_id, practice_id, timestamp, question_type, word,
			question_content, hint, options, correct_answer, user_answer,
			is_correct, explanation, difficulty, language
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	for _, q := range questions {
		_, err := DB.Exec(
			query,
			q.QuestionID,
			q.PracticeID,
			q.Timestamp,
			q.Type,
			q.Word,
			q.Question,
			q.Hint,
			q.Options,
			q.Answer,
			q.UserAnswer,
			q.IsCorrect,
			q.Explanation,
			q.Difficulty,
			q.Language,
		)
		if err != nil {
			return fmt.Errorf("failed to append question %s: %v", q.QuestionID, err)
		}
	}
	return nil
}

// SetOutcome records the learner's answer for a question
func (r *QuestionRepository) SetOutcome(questionID, userAnswer string, isCorrect bool) error {
	query := rebind("UPDATE question_history SET user_answer = ?, is_correct = ? WHERE question_id = ?")
	_, err := DB.Exec(query, userAnswer, isCorrect, questionID)
	if err != nil {
		return fmt.Errorf("failed to set question outcome: %v", err)
	}
	return nil
}

// ByPractice returns all question records of a session in insertion order
func (r *QuestionRepository) ByPractice(practiceID string) ([]models.QuestionRecord, error) {
	questions := []models.QuestionRecord{}
	query := rebind("SELECT * FROM question_history WHERE practice_id = ? ORDER BY id")
	if err := DB.Select(&questions, query, practiceID); err != nil {
		return nil, fmt.Errorf("failed to get questions: %v", err)
	}
	return questions, nil
}

// WrongByPractice returns the missed questions of a session
func (r *QuestionRepository) WrongByPractice(practiceID string) ([]models.QuestionRecord, error) {
	questions := []models.QuestionRecord{}
	query := rebind("SELECT * FROM question_history WHERE practice_id = ? AND NOT is_correct ORDER BY id")
	if err := DB.Select(&questions, query, practiceID); err != nil {
		return nil, fmt.Errorf("failed to get wrong questions: %v", err)
	}
	return questions, nil
}
