package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/lingocoach/pkg/models"
)

// ProfileRepository handles database operations for the learner profile.
// The store holds a single profile row.
type ProfileRepository struct{}

// NewProfileRepository creates a new repository instance
func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{}
}

// Get returns the learner profile, or nil before onboarding
func (r *ProfileRepository) Get() (*models.UserProfile, error) {
	var profile models.UserProfile
	err := DB.Get(&profile, "SELECT * FROM user_profile ORDER BY id LIMIT 1")
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user profile: %v", err)
	}
	return &profile, nil
}

// Save creates or updates the learner profile
func (r *ProfileRepository) Save(profile *models.UserProfile) error {
	if profile.ID == 0 {
		if DB.DriverName() == "postgres" {
			return DB.QueryRow(
				`INSERT INTO user_profile (
					user_id, learning_languages, current_language,
					total_practice_count, total_words_learned, last_practice
				) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
				profile.UserID,
				profile.LearningLanguages,
				profile.CurrentLanguage,
				profile.TotalPracticeCount,
				profile.TotalWordsLearned,
				profile.LastPractice,
			).Scan(&profile.ID)
		}

		result, err := DB.Exec(
			`INSERT INTO user_profile (
				user_id, learning_languages, current_language,
				total_practice_count, total_words_learned, last_practice
			) VALUES (?, ?, ?, ?, ?, ?)`,
			profile.UserID,
			profile.LearningLanguages,
			profile.CurrentLanguage,
			profile.TotalPracticeCount,
			profile.TotalWordsLearned,
			profile.LastPractice,
		)
		if err != nil {
			return fmt.Errorf("failed to create user profile: %v", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert ID: %v", err)
		}
		profile.ID = int(id)
		return nil
	}

	query := rebind(`
		UPDATE user_profile SET
			learning_languages = ?,
			current_language = ?,
			total_practice_count = ?,
			total_words_learned = ?,
			last_practice = ?
		WHERE id = ?
	`)
	_, err := DB.Exec(
		query,
		profile.LearningLanguages,
		profile.CurrentLanguage,
		profile.TotalPracticeCount,
		profile.TotalWordsLearned,
		profile.LastPractice,
		profile.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user profile: %v", err)
	}
	return nil
}
