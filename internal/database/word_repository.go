package database

import (
	"fmt"

	"github.com/example/lingocoach/pkg/models"
)

// WordRepository handles database operations for vocabulary items
type WordRepository struct{}

// NewWordRepository creates a new repository instance
func NewWordRepository() *WordRepository {
	return &WordRepository{}
}

// GetByTopic returns words for a specific topic
func (r *WordRepository) GetByTopic(topicID int64) ([]models.Word, error) {
	words := []models.Word{}
	query := rebind("SELECT * FROM words WHERE topic_id = ? ORDER BY word")
	if err := DB.Select(&words, query, topicID); err != nil {
		return nil, fmt.Errorf("failed to get words by topic: %v", err)
	}
	return words, nil
}

// Create inserts a new word
func (r *WordRepository) Create(word *models.Word) error {
	if DB.DriverName() == "postgres" {
		query := `
			INSERT INTO words (word, language, translation, context, topic_id, difficulty, pronunciation)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`
		return DB.QueryRow(
			query,
			word.Word,
			word.Language,
			word.Translation,
			word.Context,
			word.TopicID,
			word.Difficulty,
			word.Pronunciation,
		).Scan(&word.ID)
	}

	query := `
		INSERT INTO words (word, language, translation, context, topic_id, difficulty, pronunciation)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	result, err := DB.Exec(
		query,
		word.Word,
		word.Language,
		word.Translation,
		word.Context,
		word.TopicID,
		word.Difficulty,
		word.Pronunciation,
	)
	if err != nil {
		return fmt.Errorf("failed to create word: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %v", err)
	}
	word.ID = int(id)
	return nil
}

// NewWordPool returns words from a topic that the learner has not started
// yet, ordered by difficulty then alphabetically, limited to count.
func (r *WordRepository) NewWordPool(language string, topicID int64, count int) ([]models.Word, error) {
	words := []models.Word{}
	query := rebind(`
		SELECT w.* FROM words w
		LEFT JOIN word_progress p ON p.word = w.word AND p.language = w.language
		WHERE w.language = ? AND w.topic_id = ? AND p.id IS NULL
		ORDER BY w.difficulty, w.word
		LIMIT ?
	`)
	if err := DB.Select(&words, query, language, topicID, count); err != nil {
		return nil, fmt.Errorf("failed to get new word pool: %v", err)
	}
	return words, nil
}

// Search finds words by pattern matching on the word or its translation
func (r *WordRepository) Search(pattern string) ([]models.Word, error) {
	words := []models.Word{}
	like := "%" + pattern + "%"
	query := rebind(`
		SELECT * FROM words
		WHERE LOWER(word) LIKE LOWER(?) OR LOWER(translation) LIKE LOWER(?)
		ORDER BY word
	`)
	if err := DB.Select(&words, query, like, like); err != nil {
		return nil, fmt.Errorf("failed to search words: %v", err)
	}
	return words, nil
}
