package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/lingocoach/internal/review"
	"github.com/example/lingocoach/pkg/models"
)

// ErrIncompleteSession signals that finalize was called before every planned
// word had a (final, correct) outcome. This is a caller bug and is surfaced
// rather than silently corrected.
var ErrIncompleteSession = errors.New("incomplete session")

// QuestionOutcome is one answered question: the word it tested and whether
// the learner's answer was correct. Retries of missed questions appear as
// additional outcomes for the same word, after the initial pass.
type QuestionOutcome struct {
	Word    string
	Correct bool
}

// ProgressStore is the word progress persistence the processor writes through.
type ProgressStore interface {
	GetProgress(word, language string) (*models.WordProgress, error)
	PutProgress(progress *models.WordProgress) error
}

// SessionStore appends finalized session summaries.
type SessionStore interface {
	AppendSession(session *models.PracticeSession) error
}

// Meta carries the session attributes the processor cannot derive from
// outcomes alone.
type Meta struct {
	Language      string
	SourceArticle string
	Difficulty    int
	TimeSpent     int // Seconds
}

// Result is what a finalized session produced.
type Result struct {
	Session *models.PracticeSession
	Updated []models.WordProgress
}

// Processor finalizes completed sessions: it applies the review scheduler
// once per word and appends the session summary record.
type Processor struct {
	strategy review.Strategy
	progress ProgressStore
	sessions SessionStore
}

// NewProcessor creates a result processor using the given scheduling strategy.
func NewProcessor(strategy review.Strategy, progress ProgressStore, sessions SessionStore) *Processor {
	return &Processor{
		strategy: strategy,
		progress: progress,
		sessions: sessions,
	}
}

// Finalize closes a session. Outcomes must cover every planned word and each
// word's final outcome must be correct; the caller owns the retry loop that
// makes this true. Interval and ease updates use only the final outcome per
// word; earlier misses count toward the accuracy denominators but do not
// shrink interval growth beyond the ease adjustment already applied.
func (pr *Processor) Finalize(plan *Plan, outcomes []QuestionOutcome, meta Meta, now time.Time) (*Result, error) {
	byWord := make(map[string][]QuestionOutcome)
	for _, o := range outcomes {
		byWord[o.Word] = append(byWord[o.Word], o)
	}

	planned := plan.PlannedWords()
	for _, w := range planned {
		word := byWord[w]
		if len(word) == 0 {
			return nil, fmt.Errorf("%w: no outcome for planned word %q", ErrIncompleteSession, w)
		}
		if !word[len(word)-1].Correct {
			return nil, fmt.Errorf("%w: final outcome for %q is incorrect", ErrIncompleteSession, w)
		}
	}

	result := &Result{Updated: make([]models.WordProgress, 0, len(planned))}
	for _, w := range planned {
		updated, err := pr.updateWord(w, byWord[w], meta.Language, now)
		if err != nil {
			return nil, err
		}
		result.Updated = append(result.Updated, updated)
	}

	result.Session = pr.summarize(plan, outcomes, meta, now, false)
	if err := pr.sessions.AppendSession(result.Session); err != nil {
		return nil, fmt.Errorf("failed to append session record: %v", err)
	}
	return result, nil
}

// Abandon discards an in-progress session. The plan's words are left
// untouched; only an abandoned session record is appended.
func (pr *Processor) Abandon(plan *Plan, meta Meta, now time.Time) (*models.PracticeSession, error) {
	session := pr.summarize(plan, nil, meta, now, true)
	if err := pr.sessions.AppendSession(session); err != nil {
		return nil, fmt.Errorf("failed to append session record: %v", err)
	}
	return session, nil
}

// updateWord applies the scheduler exactly once for this session, using the
// final outcome. Earlier attempts in the same session feed the counters only.
func (pr *Processor) updateWord(word string, outcomes []QuestionOutcome, language string, now time.Time) (models.WordProgress, error) {
	progress, err := pr.progress.GetProgress(word, language)
	if err != nil {
		return models.WordProgress{}, fmt.Errorf("failed to load progress for %q: %v", word, err)
	}
	if progress == nil {
		p := models.NewWordProgress(word, language)
		progress = &p
	}

	for _, o := range outcomes[:len(outcomes)-1] {
		progress.TotalAttempts++
		if o.Correct {
			progress.CorrectAttempts++
		}
	}

	final := outcomes[len(outcomes)-1]
	updated, err := pr.strategy.Update(*progress, review.NewOutcome(final.Correct), now)
	if err != nil {
		return models.WordProgress{}, err
	}

	if err := pr.progress.PutProgress(&updated); err != nil {
		return models.WordProgress{}, fmt.Errorf("failed to save progress for %q: %v", word, err)
	}
	return updated, nil
}

func (pr *Processor) summarize(plan *Plan, outcomes []QuestionOutcome, meta Meta, now time.Time, abandoned bool) *models.PracticeSession {
	questionCount := len(plan.Entries)

	// Outcomes beyond the planned slots are retries of missed questions;
	// only the initial pass counts toward first-attempt accuracy.
	correct := 0
	firstPass := outcomes
	if len(firstPass) > questionCount {
		firstPass = firstPass[:questionCount]
	}
	for _, o := range firstPass {
		if o.Correct {
			correct++
		}
	}

	accuracy := 0.0
	if questionCount > 0 && !abandoned {
		accuracy = float64(correct) / float64(questionCount)
	}

	return &models.PracticeSession{
		PracticeID:    uuid.NewString(),
		Timestamp:     now,
		Language:      meta.Language,
		SourceArticle: meta.SourceArticle,
		WordsLearned:  models.NewStringSet(plan.PlannedWords()),
		QuestionCount: questionCount,
		CorrectCount:  correct,
		Accuracy:      accuracy,
		Difficulty:    meta.Difficulty,
		TimeSpent:     meta.TimeSpent,
		Abandoned:     abandoned,
	}
}
