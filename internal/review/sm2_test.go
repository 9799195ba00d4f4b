package review

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/lingocoach/pkg/models"
)

var today = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func TestSM2FirstCorrectAnswer(t *testing.T) {
	p := models.NewWordProgress("ubiquitous", "english")

	updated, err := NewSM2().Update(p, NewOutcome(true), today)
	require.NoError(t, err)

	assert.Equal(t, 1, updated.Interval)
	assert.Equal(t, 1, updated.TotalAttempts)
	assert.Equal(t, 1, updated.CorrectAttempts)
	// Quality 4 leaves the ease factor unchanged.
	assert.InDelta(t, 2.5, updated.EaseFactor, 1e-9)
	require.NotNil(t, updated.NextReview)
	assert.Equal(t, today.AddDate(0, 0, 1), *updated.NextReview)
	require.NotNil(t, updated.LastReview)
	assert.Equal(t, today, *updated.LastReview)
}

func TestSM2SecondConsecutiveCorrect(t *testing.T) {
	s := NewSM2()
	p := models.NewWordProgress("ubiquitous", "english")

	p, err := s.Update(p, NewOutcome(true), today)
	require.NoError(t, err)
	p, err = s.Update(p, NewOutcome(true), today.AddDate(0, 0, 1))
	require.NoError(t, err)

	assert.Equal(t, 6, p.Interval)
	assert.Equal(t, today.AddDate(0, 0, 7), *p.NextReview)
}

func TestSM2MatureIntervalScalesByEase(t *testing.T) {
	p := models.NewWordProgress("serendipity", "english")
	p.Interval = 6
	p.TotalAttempts = 2
	p.CorrectAttempts = 2

	updated, err := NewSM2().Update(p, Outcome{Correct: true, Quality: 5}, today)
	require.NoError(t, err)

	// EF' = 2.5 + 0.1 = 2.6, interval' = round(6 * 2.6) = 16.
	assert.InDelta(t, 2.6, updated.EaseFactor, 1e-9)
	assert.Equal(t, 16, updated.Interval)
	assert.Equal(t, today.AddDate(0, 0, 16), *updated.NextReview)
}

func TestSM2IncorrectResetsInterval(t *testing.T) {
	p := models.NewWordProgress("ephemeral", "english")
	p.Interval = 6
	p.TotalAttempts = 2
	p.CorrectAttempts = 2

	updated, err := NewSM2().Update(p, NewOutcome(false), today)
	require.NoError(t, err)

	assert.Equal(t, 1, updated.Interval)
	assert.InDelta(t, 2.3, updated.EaseFactor, 1e-9)
	assert.Equal(t, today.AddDate(0, 0, 1), *updated.NextReview)
	assert.Equal(t, 3, updated.TotalAttempts)
	assert.Equal(t, 2, updated.CorrectAttempts)
}

func TestSM2EaseFactorNeverBelowFloor(t *testing.T) {
	s := NewSM2()
	p := models.NewWordProgress("obstinate", "english")

	var err error
	for i := 0; i < 10; i++ {
		p, err = s.Update(p, NewOutcome(false), today.AddDate(0, 0, i))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p.EaseFactor, models.MinEaseFactor)
	}
	assert.InDelta(t, models.MinEaseFactor, p.EaseFactor, 1e-9)
}

func TestSM2HesitantCorrectLowersEase(t *testing.T) {
	p := models.NewWordProgress("laborious", "english")
	p.Interval = 6

	updated, err := NewSM2().Update(p, Outcome{Correct: true, Quality: 3}, today)
	require.NoError(t, err)

	// EF' = 2.5 + (0.1 - 2*(0.08 + 2*0.02)) = 2.36
	assert.InDelta(t, 2.36, updated.EaseFactor, 1e-9)
}

func TestSM2CapsIntervalAtMaximum(t *testing.T) {
	p := models.NewWordProgress("perennial", "english")
	p.Interval = 300
	p.TotalAttempts = 8
	p.CorrectAttempts = 8

	updated, err := NewSM2().Update(p, NewOutcome(true), today)
	require.NoError(t, err)

	assert.Equal(t, 365, updated.Interval)
}

func TestSM2RejectsCorruptState(t *testing.T) {
	s := NewSM2()

	p := models.NewWordProgress("broken", "english")
	p.EaseFactor = 1.1
	_, err := s.Update(p, NewOutcome(true), today)
	require.ErrorIs(t, err, ErrInvalidProgressState)

	p = models.NewWordProgress("broken", "english")
	p.Interval = -3
	_, err = s.Update(p, NewOutcome(true), today)
	require.ErrorIs(t, err, ErrInvalidProgressState)
}

func TestSM2IsDeterministic(t *testing.T) {
	s := NewSM2()
	p := models.NewWordProgress("ubiquitous", "english")
	p.Interval = 6
	p.TotalAttempts = 3
	p.CorrectAttempts = 2

	a, err := s.Update(p, NewOutcome(true), today)
	require.NoError(t, err)
	b, err := s.Update(p, NewOutcome(true), today)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestQualityForTiming(t *testing.T) {
	assert.Equal(t, 2, QualityFor(false, 1))
	assert.Equal(t, 2, QualityFor(false, -1))
	assert.Equal(t, 5, QualityFor(true, 2.5))
	assert.Equal(t, 4, QualityFor(true, 7))
	assert.Equal(t, 3, QualityFor(true, 25))
	assert.Equal(t, 4, QualityFor(true, -1))
}

func TestMasteryMonotonicity(t *testing.T) {
	base := Mastery(4, 10, 6)

	assert.GreaterOrEqual(t, Mastery(5, 10, 6), base)
	assert.GreaterOrEqual(t, Mastery(4, 10, 12), base)

	assert.Equal(t, 0.0, Mastery(0, 0, 0))
	assert.InDelta(t, 1.0, Mastery(10, 10, 30), 1e-9)
	// Intervals past 30 days saturate the retention signal.
	assert.InDelta(t, Mastery(10, 10, 30), Mastery(10, 10, 365), 1e-9)
}
