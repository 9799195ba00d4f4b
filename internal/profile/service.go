package profile

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/lingocoach/pkg/models"
)

// ErrLastLanguage is returned when removing the only learning language.
var ErrLastLanguage = errors.New("cannot remove the only learning language")

// ErrUnknownLanguage is returned for operations on a language the learner
// has not added.
var ErrUnknownLanguage = errors.New("unknown learning language")

// Store is the profile persistence the service needs.
type Store interface {
	Get() (*models.UserProfile, error)
	Save(profile *models.UserProfile) error
}

// AccuracySource provides recent session accuracies for difficulty tuning.
type AccuracySource interface {
	RecentAccuracies(language string, n int) ([]float64, error)
}

// Service manages the learner profile: onboarding, language switching and
// adaptive difficulty.
type Service struct {
	store      Store
	accuracies AccuracySource
}

// NewService creates a profile service
func NewService(store Store, accuracies AccuracySource) *Service {
	return &Service{store: store, accuracies: accuracies}
}

// SetupRequest holds first-time onboarding input
type SetupRequest struct {
	Language           string
	VocabularyLevel    int
	DailyMinutes       int
	Goal               string
	QuestionPreference string
}

// Setup creates the learner profile with a single learning language
func (s *Service) Setup(req SetupRequest) (*models.UserProfile, error) {
	profile := &models.UserProfile{
		UserID:          uuid.NewString(),
		CurrentLanguage: req.Language,
		LearningLanguages: models.LanguageMap{
			req.Language: {
				Level:              clampLevel(req.VocabularyLevel),
				DailyMinutes:       req.DailyMinutes,
				Goal:               req.Goal,
				QuestionPreference: req.QuestionPreference,
			},
		},
	}
	if err := s.store.Save(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// AddLanguage adds a new learning language to the profile
func (s *Service) AddLanguage(language string, level, dailyMinutes int) error {
	profile, err := s.require()
	if err != nil {
		return err
	}
	if _, ok := profile.LearningLanguages[language]; ok {
		return fmt.Errorf("language %q already added", language)
	}
	profile.LearningLanguages[language] = models.LanguageSettings{
		Level:        clampLevel(level),
		DailyMinutes: dailyMinutes,
	}
	return s.store.Save(profile)
}

// RemoveLanguage drops a learning language. The last language cannot be
// removed; removing the current language switches to another one.
func (s *Service) RemoveLanguage(language string) error {
	profile, err := s.require()
	if err != nil {
		return err
	}
	if _, ok := profile.LearningLanguages[language]; !ok {
		return ErrUnknownLanguage
	}
	if len(profile.LearningLanguages) <= 1 {
		return ErrLastLanguage
	}
	delete(profile.LearningLanguages, language)
	if profile.CurrentLanguage == language {
		for name := range profile.LearningLanguages {
			profile.CurrentLanguage = name
			break
		}
	}
	return s.store.Save(profile)
}

// CurrentLanguage reports the language currently being studied, or an
// empty string before onboarding.
func (s *Service) CurrentLanguage() (string, error) {
	profile, err := s.store.Get()
	if err != nil {
		return "", err
	}
	if profile == nil {
		return "", nil
	}
	return profile.CurrentLanguage, nil
}

// SwitchLanguage changes the current learning language
func (s *Service) SwitchLanguage(language string) error {
	profile, err := s.require()
	if err != nil {
		return err
	}
	if _, ok := profile.LearningLanguages[language]; !ok {
		return ErrUnknownLanguage
	}
	profile.CurrentLanguage = language
	return s.store.Save(profile)
}

// RecordPractice bumps the profile totals after a finalized session
func (s *Service) RecordPractice(language string, wordsLearned int, now time.Time) error {
	profile, err := s.require()
	if err != nil {
		return err
	}
	settings, ok := profile.LearningLanguages[language]
	if !ok {
		return ErrUnknownLanguage
	}
	settings.PracticeCount++
	settings.WordsLearned += wordsLearned
	profile.LearningLanguages[language] = settings
	profile.TotalPracticeCount++
	profile.TotalWordsLearned += wordsLearned
	profile.LastPractice = &now
	return s.store.Save(profile)
}

// AdjustedLevel returns the vocabulary level to use for the next session,
// tuned by the learner's recent performance in the current language.
func (s *Service) AdjustedLevel(language string) (int, error) {
	profile, err := s.require()
	if err != nil {
		return 0, err
	}
	settings, ok := profile.LearningLanguages[language]
	if !ok {
		return 0, ErrUnknownLanguage
	}

	recent, err := s.accuracies.RecentAccuracies(language, 5)
	if err != nil {
		return 0, fmt.Errorf("failed to get recent accuracies: %v", err)
	}
	return AdjustLevel(settings.Level, recent), nil
}

// AdjustLevel tunes a base vocabulary level by average recent accuracy:
// two levels up above 90%, one up above 80%, one down below 50% and two
// down below 40%, clamped to the 1-10 scale.
func AdjustLevel(base int, recentAccuracies []float64) int {
	if len(recentAccuracies) == 0 {
		return clampLevel(base)
	}

	sum := 0.0
	for _, a := range recentAccuracies {
		sum += a
	}
	avg := sum / float64(len(recentAccuracies)) * 100

	level := base
	switch {
	case avg >= 90:
		level = base + 2
	case avg >= 80:
		level = base + 1
	case avg <= 40:
		level = base - 2
	case avg <= 50:
		level = base - 1
	}
	return clampLevel(level)
}

func (s *Service) require() (*models.UserProfile, error) {
	profile, err := s.store.Get()
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("user profile is not set up")
	}
	return profile, nil
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 10 {
		return 10
	}
	return level
}
