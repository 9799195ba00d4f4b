package review

import (
	"errors"
	"fmt"
	"time"

	"github.com/example/lingocoach/pkg/models"
)

// ErrInvalidProgressState signals malformed input to a scheduler update.
// It should be unreachable when progress is mutated only through a Strategy;
// seeing it means the stored state is corrupt.
var ErrInvalidProgressState = errors.New("invalid progress state")

// Outcome is the answer signal a scheduler update consumes.
type Outcome struct {
	Correct bool
	Quality int // SM-2 recall quality, 0-5
}

// NewOutcome maps a plain correct/incorrect answer to an outcome using the
// default quality mapping (correct without timing data counts as "correct
// after some hesitation").
func NewOutcome(correct bool) Outcome {
	return Outcome{Correct: correct, Quality: QualityFor(correct, -1)}
}

// QualityFor derives a 0-5 recall quality from correctness and response time.
// Negative seconds means no timing data was captured.
func QualityFor(correct bool, seconds float64) int {
	if !correct {
		// Incorrect but the answer felt familiar
		return 2
	}
	switch {
	case seconds < 0:
		return 4
	case seconds < 3:
		return 5
	case seconds < 10:
		return 4
	default:
		return 3
	}
}

// Strategy computes the next review state for a word after an answer.
// Implementations must be pure functions of their inputs plus today's date
// so that updates can be replayed deterministically.
type Strategy interface {
	Name() string
	Update(progress models.WordProgress, outcome Outcome, today time.Time) (models.WordProgress, error)
}

// ForName returns the configured strategy, defaulting to SM-2.
func ForName(name string) Strategy {
	switch name {
	case "leitner":
		return NewLeitner()
	default:
		return NewSM2()
	}
}

// validate rejects progress state no scheduler could have produced.
func validate(p models.WordProgress) error {
	if p.EaseFactor < models.MinEaseFactor {
		return fmt.Errorf("%w: ease factor %.2f below %.1f for %q", ErrInvalidProgressState, p.EaseFactor, models.MinEaseFactor, p.Word)
	}
	if p.Interval < 0 {
		return fmt.Errorf("%w: negative interval %d for %q", ErrInvalidProgressState, p.Interval, p.Word)
	}
	return nil
}

// Mastery combines rolling accuracy with normalized interval length into a
// [0,1] proficiency estimate. It is monotone in both signals: more correct
// answers or a longer interval never lower the result.
func Mastery(correctAttempts, totalAttempts, interval int) float64 {
	accuracy := 0.0
	if totalAttempts > 0 {
		accuracy = float64(correctAttempts) / float64(totalAttempts)
	}
	retention := float64(interval) / 30.0
	if retention > 1 {
		retention = 1
	}
	m := 0.7*accuracy + 0.3*retention
	if m < 0 {
		return 0
	}
	if m > 1 {
		return 1
	}
	return m
}
