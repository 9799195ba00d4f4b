package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/lingocoach/pkg/models"
)

// TopicRepository handles database operations for topics
type TopicRepository struct{}

// NewTopicRepository creates a new repository instance
func NewTopicRepository() *TopicRepository {
	return &TopicRepository{}
}

// GetAll returns all topics for a language
func (r *TopicRepository) GetAll(language string) ([]models.Topic, error) {
	topics := []models.Topic{}
	query := rebind("SELECT * FROM topics WHERE language = ? ORDER BY name")
	if err := DB.Select(&topics, query, language); err != nil {
		return nil, fmt.Errorf("failed to get topics: %v", err)
	}
	return topics, nil
}

// GetByName returns a topic by name, or nil when unknown
func (r *TopicRepository) GetByName(name, language string) (*models.Topic, error) {
	var topic models.Topic
	query := rebind("SELECT * FROM topics WHERE name = ? AND language = ?")
	err := DB.Get(&topic, query, name, language)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get topic: %v", err)
	}
	return &topic, nil
}

// GetOrCreate returns the topic with the given name, creating it if missing
func (r *TopicRepository) GetOrCreate(name, language string) (*models.Topic, error) {
	topic, err := r.GetByName(name, language)
	if err != nil {
		return nil, err
	}
	if topic != nil {
		return topic, nil
	}

	created := &models.Topic{Name: name, Language: language}
	if DB.DriverName() == "postgres" {
		err = DB.QueryRow(
			"INSERT INTO topics (name, language) VALUES ($1, $2) RETURNING id",
			name, language,
		).Scan(&created.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to create topic: %v", err)
		}
		return created, nil
	}

	result, err := DB.Exec("INSERT INTO topics (name, language) VALUES (?, ?)", name, language)
	if err != nil {
		return nil, fmt.Errorf("failed to create topic: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert ID: %v", err)
	}
	created.ID = id
	return created, nil
}
