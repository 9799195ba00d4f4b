package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/lingocoach/pkg/models"
)

func TestLeitnerPromotesThroughBoxes(t *testing.T) {
	l := NewLeitner()
	p := models.NewWordProgress("cadence", "english")

	var err error
	for _, want := range []int{1, 2, 4, 8, 16, 32, 64} {
		p, err = l.Update(p, NewOutcome(true), today)
		require.NoError(t, err)
		assert.Equal(t, want, p.Interval)
	}

	// Already in the top box: stays there.
	p, err = l.Update(p, NewOutcome(true), today)
	require.NoError(t, err)
	assert.Equal(t, 64, p.Interval)
}

func TestLeitnerIncorrectReturnsToFirstBox(t *testing.T) {
	l := NewLeitner()
	p := models.NewWordProgress("cadence", "english")
	p.Interval = 16
	p.TotalAttempts = 5
	p.CorrectAttempts = 5

	updated, err := l.Update(p, NewOutcome(false), today)
	require.NoError(t, err)

	assert.Equal(t, 1, updated.Interval)
	assert.Equal(t, today.AddDate(0, 0, 1), *updated.NextReview)
}

func TestLeitnerKeepsEaseFactorUntouched(t *testing.T) {
	l := NewLeitner()
	p := models.NewWordProgress("cadence", "english")

	correct, err := l.Update(p, NewOutcome(true), today)
	require.NoError(t, err)
	assert.Equal(t, p.EaseFactor, correct.EaseFactor)

	wrong, err := l.Update(p, NewOutcome(false), today)
	require.NoError(t, err)
	assert.Equal(t, p.EaseFactor, wrong.EaseFactor)
}

func TestForName(t *testing.T) {
	assert.Equal(t, "leitner", ForName("leitner").Name())
	assert.Equal(t, "sm2", ForName("sm2").Name())
	assert.Equal(t, "sm2", ForName("").Name())
}
