package practice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/lingocoach/internal/ai"
	"github.com/example/lingocoach/internal/review"
	"github.com/example/lingocoach/internal/session"
	"github.com/example/lingocoach/pkg/models"
)

// WordSource provides candidate new words for a topic.
type WordSource interface {
	NewWordPool(language string, topicID int64, count int) ([]models.Word, error)
}

// QuestionStore persists generated questions and their outcomes.
type QuestionStore interface {
	AppendQuestions(questions []models.QuestionRecord) error
	SetOutcome(questionID, userAnswer string, isCorrect bool) error
}

// Generator is the content-generation collaborator.
type Generator interface {
	GenerateQuestions(ctx context.Context, req ai.GenerateRequest) ([]models.QuestionRecord, error)
}

// Grader is the answer-judging collaborator.
type Grader interface {
	GradeAnswer(ctx context.Context, question models.QuestionRecord, userAnswer string) (bool, error)
}

// ActiveSession is one in-flight practice episode: the plan being worked
// through and the questions generated for it.
type ActiveSession struct {
	PracticeID string
	Language   string
	Source     string
	Difficulty int
	Plan       *session.Plan
	Questions  []models.QuestionRecord
}

// Service drives the session lifecycle: due-set selection, composition,
// question generation, grading and finalization.
type Service struct {
	selector  *review.Selector
	words     WordSource
	questions QuestionStore
	generator Generator
	grader    Grader
	processor *session.Processor
}

// NewService wires the session lifecycle dependencies together.
func NewService(
	selector *review.Selector,
	words WordSource,
	questions QuestionStore,
	generator Generator,
	grader Grader,
	processor *session.Processor,
) *Service {
	return &Service{
		selector:  selector,
		words:     words,
		questions: questions,
		generator: generator,
		grader:    grader,
		processor: processor,
	}
}

// StartRequest describes the session to build.
type StartRequest struct {
	Language string
	Topic    *models.Topic
	Article  string // Source article text for new-word questions
	Source   string // Article or topic name recorded on the session
	Level    int    // Vocabulary level, 1-10
	Options  session.Options
}

// Start composes a session plan from today's due words and the topic's new
// word pool, generates its questions and records them. Returns
// session.ErrNoContentAvailable when no plan can be built; callers fall back
// to another topic or article.
func (s *Service) Start(ctx context.Context, req StartRequest, now time.Time) (*ActiveSession, error) {
	due, err := s.selector.SelectDue(req.Language, now)
	if err != nil {
		return nil, err
	}

	var fresh []string
	if req.Topic != nil {
		pool, err := s.words.NewWordPool(req.Language, req.Topic.ID, req.Options.TargetSize)
		if err != nil {
			return nil, err
		}
		for _, w := range pool {
			fresh = append(fresh, w.Word)
		}
	}

	plan, err := session.Compose(review.Words(due), fresh, req.Options)
	if err != nil {
		return nil, err
	}

	practiceID := uuid.NewString()
	questions, err := s.generator.GenerateQuestions(ctx, ai.GenerateRequest{
		PracticeID: practiceID,
		Plan:       plan,
		Article:    req.Article,
		Language:   req.Language,
		Level:      req.Level,
	})
	if err != nil {
		return nil, err
	}
	if err := s.questions.AppendQuestions(questions); err != nil {
		return nil, err
	}

	return &ActiveSession{
		PracticeID: practiceID,
		Language:   req.Language,
		Source:     req.Source,
		Difficulty: req.Level,
		Plan:       plan,
		Questions:  questions,
	}, nil
}

// Answer grades the learner's answer to one question and records the outcome.
func (s *Service) Answer(ctx context.Context, question models.QuestionRecord, userAnswer string) (bool, error) {
	correct, err := s.grader.GradeAnswer(ctx, question, userAnswer)
	if err != nil {
		return false, fmt.Errorf("failed to grade answer: %v", err)
	}
	if err := s.questions.SetOutcome(question.QuestionID, userAnswer, correct); err != nil {
		return false, err
	}
	return correct, nil
}

// Finish closes the session once the caller's retry loop has produced a
// final correct outcome for every planned word.
func (s *Service) Finish(active *ActiveSession, outcomes []session.QuestionOutcome, timeSpent int, now time.Time) (*session.Result, error) {
	return s.processor.Finalize(active.Plan, outcomes, session.Meta{
		Language:      active.Language,
		SourceArticle: active.Source,
		Difficulty:    active.Difficulty,
		TimeSpent:     timeSpent,
	}, now)
}

// Abandon discards the session without touching word progress.
func (s *Service) Abandon(active *ActiveSession, now time.Time) (*models.PracticeSession, error) {
	return s.processor.Abandon(active.Plan, session.Meta{
		Language:      active.Language,
		SourceArticle: active.Source,
		Difficulty:    active.Difficulty,
	}, now)
}
