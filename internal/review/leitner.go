package review

import (
	"time"

	"github.com/example/lingocoach/pkg/models"
)

// Leitner is a box-based alternative to SM-2: a correct answer promotes the
// word to the next box (doubling the interval), an incorrect one sends it
// back to box one. The ease factor is carried through unchanged so the two
// strategies can be swapped without migrating stored state.
type Leitner struct {
	// Interval in days for each box, smallest first
	Boxes []int
}

// NewLeitner creates a Leitner strategy with the default box ladder.
func NewLeitner() *Leitner {
	return &Leitner{
		Boxes: []int{1, 2, 4, 8, 16, 32, 64},
	}
}

// Name implements Strategy.
func (l *Leitner) Name() string { return "leitner" }

// Update implements Strategy.
func (l *Leitner) Update(p models.WordProgress, outcome Outcome, today time.Time) (models.WordProgress, error) {
	if err := validate(p); err != nil {
		return models.WordProgress{}, err
	}

	p.TotalAttempts++
	if outcome.Correct {
		p.CorrectAttempts++
		p.Interval = l.nextBox(p.Interval)
	} else {
		p.Interval = l.Boxes[0]
	}

	reviewed := today
	next := today.AddDate(0, 0, p.Interval)
	p.LastReview = &reviewed
	p.NextReview = &next
	p.MasteryLevel = Mastery(p.CorrectAttempts, p.TotalAttempts, p.Interval)

	return p, nil
}

// nextBox returns the smallest box interval strictly above the current one,
// or the top box if the word is already there.
func (l *Leitner) nextBox(interval int) int {
	for _, days := range l.Boxes {
		if days > interval {
			return days
		}
	}
	return l.Boxes[len(l.Boxes)-1]
}
