package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/lingocoach/internal/review"
)

// Notifier receives reminders about words waiting for review.
type Notifier interface {
	SendDueReminder(language string, count int) error
}

// LanguageSource reports which language is currently being studied.
type LanguageSource interface {
	CurrentLanguage() (string, error)
}

// Scheduler periodically checks for due words and nudges the learner.
type Scheduler struct {
	scheduler *gocron.Scheduler
	selector  *review.Selector
	languages LanguageSource
	notifier  Notifier
}

// New creates a scheduler instance
func New(selector *review.Selector, languages LanguageSource, notifier Notifier) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		selector:  selector,
		languages: languages,
		notifier:  notifier,
	}
}

// Start begins the hourly due-words check without blocking.
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Hour().Do(s.checkDueWords)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) checkDueWords() {
	language, err := s.languages.CurrentLanguage()
	if err != nil {
		log.Printf("Error getting current language: %v", err)
		return
	}
	if language == "" {
		return
	}

	due, err := s.selector.SelectDue(language, time.Now())
	if err != nil {
		log.Printf("Error selecting due words: %v", err)
		return
	}
	if len(due) == 0 {
		return
	}

	if err := s.notifier.SendDueReminder(language, len(due)); err != nil {
		log.Printf("Error sending due reminder: %v", err)
	}
}

// RunManualCheck forces an immediate due-words check for a language.
func (s *Scheduler) RunManualCheck(language string) error {
	due, err := s.selector.SelectDue(language, time.Now())
	if err != nil {
		return err
	}
	if len(due) > 0 {
		return s.notifier.SendDueReminder(language, len(due))
	}
	return nil
}
