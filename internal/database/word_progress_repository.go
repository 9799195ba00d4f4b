package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/lingocoach/pkg/models"
)

// WordProgressRepository handles database operations for per-word learning state
type WordProgressRepository struct{}

// NewWordProgressRepository creates a new repository instance
func NewWordProgressRepository() *WordProgressRepository {
	return &WordProgressRepository{}
}

// GetProgress returns progress for a word, or nil if the word has never been seen
func (r *WordProgressRepository) GetProgress(word, language string) (*models.WordProgress, error) {
	var progress models.WordProgress
	query := rebind("SELECT * FROM word_progress WHERE word = ? AND language = ?")
	err := DB.Get(&progress, query, word, language)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word progress: %v", err)
	}
	return &progress, nil
}

// DueCandidates returns progress records that may be due as of the given date:
// anything whose next review has arrived plus unreviewed words flagged for
// reinforcement. Final filtering and ordering belong to the selector.
func (r *WordProgressRepository) DueCandidates(language string, asOf time.Time) ([]models.WordProgress, error) {
	progress := []models.WordProgress{}
	query := rebind(`
		SELECT * FROM word_progress
		WHERE language = ?
		AND (next_review <= ? OR (next_review IS NULL AND total_attempts = 0 AND reinforce))
		ORDER BY word
	`)
	if err := DB.Select(&progress, query, language, asOf); err != nil {
		return nil, fmt.Errorf("failed to get due candidates: %v", err)
	}
	return progress, nil
}

// All returns every progress record for a language
func (r *WordProgressRepository) All(language string) ([]models.WordProgress, error) {
	progress := []models.WordProgress{}
	query := rebind("SELECT * FROM word_progress WHERE language = ? ORDER BY word")
	if err := DB.Select(&progress, query, language); err != nil {
		return nil, fmt.Errorf("failed to get word progress: %v", err)
	}
	return progress, nil
}

// PutProgress creates or updates a progress record
func (r *WordProgressRepository) PutProgress(progress *models.WordProgress) error {
	if DB.DriverName() == "postgres" {
		query := `
			INSERT INTO word_progress (
				word, language, total_attempts, correct_attempts, ease_factor,
				interval, last_review, next_review, mastery_level, reinforce
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (word, language) DO UPDATE SET
				total_attempts = EXCLUDED.total_attempts,
				correct_attempts = EXCLUDED.correct_attempts,
				ease_factor = EXCLUDED.ease_factor,
				interval = EXCLUDED.interval,
				last_review = EXCLUDED.last_review,
				next_review = EXCLUDED.next_review,
				mastery_level = EXCLUDED.mastery_level,
				reinforce = EXCLUDED.reinforce,
				updated_at = NOW()
			RETURNING id
		`
		return DB.QueryRow(
			query,
			progress.Word,
			progress.Language,
			progress.TotalAttempts,
			progress.CorrectAttempts,
			progress.EaseFactor,
			progress.Interval,
			progress.LastReview,
			progress.NextReview,
			progress.MasteryLevel,
			progress.Reinforce,
		).Scan(&progress.ID)
	}

	// SQLite upsert
	query := `
		INSERT INTO word_progress (
			word, language, total_attempts, correct_attempts, ease_factor,
			interval, last_review, next_review, mastery_level, reinforce
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (word, language) DO UPDATE SET
			total_attempts = excluded.total_attempts,
			correct_attempts = excluded.correct_attempts,
			ease_factor = excluded.ease_factor,
			interval = excluded.interval,
			last_review = excluded.last_review,
			next_review = excluded.next_review,
			mastery_level = excluded.mastery_level,
			reinforce = excluded.reinforce,
			updated_at = CURRENT_TIMESTAMP
	`
	_, err := DB.Exec(
		query,
		progress.Word,
		progress.Language,
		progress.TotalAttempts,
		progress.CorrectAttempts,
		progress.EaseFactor,
		progress.Interval,
		progress.LastReview,
		progress.NextReview,
		progress.MasteryLevel,
		progress.Reinforce,
	)
	if err != nil {
		return fmt.Errorf("failed to save word progress: %v", err)
	}

	return DB.QueryRow(
		rebind("SELECT id FROM word_progress WHERE word = ? AND language = ?"),
		progress.Word, progress.Language,
	).Scan(&progress.ID)
}

// MasteryStats summarizes learning progress for a language
type MasteryStats struct {
	TotalWords     int     `db:"total_words"`
	MasteredWords  int     `db:"mastered_words"` // Mastery level >= 0.8
	LearningWords  int     `db:"learning_words"`
	AverageMastery float64 `db:"average_mastery"`
}

// GetMasteryStats returns mastery statistics for a language
func (r *WordProgressRepository) GetMasteryStats(language string) (*MasteryStats, error) {
	var stats MasteryStats
	query := rebind(`
		SELECT
			COUNT(*) AS total_words,
			COALESCE(SUM(CASE WHEN mastery_level >= 0.8 THEN 1 ELSE 0 END), 0) AS mastered_words,
			COALESCE(SUM(CASE WHEN mastery_level < 0.8 THEN 1 ELSE 0 END), 0) AS learning_words,
			COALESCE(AVG(mastery_level), 0) AS average_mastery
		FROM word_progress
		WHERE language = ?
	`)
	if err := DB.Get(&stats, query, language); err != nil {
		return nil, fmt.Errorf("failed to get mastery stats: %v", err)
	}
	return &stats, nil
}

// rebind rewrites ? placeholders for the active driver
func rebind(query string) string {
	return DB.Rebind(query)
}
