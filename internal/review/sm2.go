package review

import (
	"math"
	"time"

	"github.com/example/lingocoach/pkg/models"
)

// SM2 implements the SuperMemo-2 spaced repetition algorithm.
type SM2 struct {
	// Maximum review interval in days
	MaxInterval int
}

// NewSM2 creates an SM-2 strategy with default settings.
func NewSM2() *SM2 {
	return &SM2{
		MaxInterval: 365,
	}
}

// Name implements Strategy.
func (s *SM2) Name() string { return "sm2" }

// Update applies the SM-2 update rule and recomputes the mastery level.
// Today is the review date: the next review is scheduled relative to it.
func (s *SM2) Update(p models.WordProgress, outcome Outcome, today time.Time) (models.WordProgress, error) {
	if err := validate(p); err != nil {
		return models.WordProgress{}, err
	}

	p.TotalAttempts++
	if outcome.Correct {
		p.CorrectAttempts++

		// EF' = EF + (0.1 - (5-q) * (0.08 + (5-q)*0.02)), floored at 1.3
		q := float64(clampQuality(outcome.Quality))
		ef := p.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
		if ef < models.MinEaseFactor {
			ef = models.MinEaseFactor
		}
		p.EaseFactor = ef

		// Interval sequence: 1 after the first success, 6 after the second,
		// then ease-scaled growth.
		switch p.Interval {
		case 0:
			p.Interval = 1
		case 1:
			p.Interval = 6
		default:
			p.Interval = int(math.Round(float64(p.Interval) * ef))
		}
		if p.Interval > s.MaxInterval {
			p.Interval = s.MaxInterval
		}
	} else {
		// Failed recall: back to a one-day interval, ease penalized.
		p.Interval = 1
		ef := p.EaseFactor - 0.2
		if ef < models.MinEaseFactor {
			ef = models.MinEaseFactor
		}
		p.EaseFactor = ef
	}

	reviewed := today
	next := today.AddDate(0, 0, p.Interval)
	p.LastReview = &reviewed
	p.NextReview = &next
	p.MasteryLevel = Mastery(p.CorrectAttempts, p.TotalAttempts, p.Interval)

	return p, nil
}

func clampQuality(q int) int {
	if q < 0 {
		return 0
	}
	if q > 5 {
		return 5
	}
	return q
}
