package review

import (
	"fmt"
	"sort"
	"time"

	"github.com/example/lingocoach/pkg/models"
)

// ProgressSource is the read side of the word progress store the selector needs.
type ProgressSource interface {
	DueCandidates(language string, asOf time.Time) ([]models.WordProgress, error)
}

// Selector picks the ordered set of words due for reinforcement on a date.
type Selector struct {
	source ProgressSource
}

// NewSelector creates a selector reading candidates from the given store.
func NewSelector(source ProgressSource) *Selector {
	return &Selector{source: source}
}

// SelectDue returns the words due for review as of the given date, most
// overdue first. Read-only.
func (s *Selector) SelectDue(language string, asOf time.Time) ([]models.WordProgress, error) {
	candidates, err := s.source.DueCandidates(language, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to load due candidates: %v", err)
	}
	return FilterDue(candidates, asOf), nil
}

// FilterDue filters and orders progress records by due-ness as of a date.
// A word is due when its next review date has arrived (inclusive), or when
// it has never been reviewed but carries the reinforce flag. Ordering is
// deterministic: overdue duration descending, then lowest mastery, then the
// word itself. Unreviewed flagged words count as overdue by zero.
func FilterDue(candidates []models.WordProgress, asOf time.Time) []models.WordProgress {
	var due []models.WordProgress
	for _, p := range candidates {
		if isDue(p, asOf) {
			due = append(due, p)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		oi, oj := overdue(due[i], asOf), overdue(due[j], asOf)
		if oi != oj {
			return oi > oj
		}
		if due[i].MasteryLevel != due[j].MasteryLevel {
			return due[i].MasteryLevel < due[j].MasteryLevel
		}
		return due[i].Word < due[j].Word
	})

	return due
}

// Words extracts the word keys from an ordered progress list.
func Words(progress []models.WordProgress) []string {
	words := make([]string, len(progress))
	for i, p := range progress {
		words[i] = p.Word
	}
	return words
}

func isDue(p models.WordProgress, asOf time.Time) bool {
	if p.NextReview != nil {
		return !p.NextReview.After(asOf)
	}
	return !p.Reviewed() && p.Reinforce
}

func overdue(p models.WordProgress, asOf time.Time) time.Duration {
	if p.NextReview == nil {
		return 0
	}
	return asOf.Sub(*p.NextReview)
}
