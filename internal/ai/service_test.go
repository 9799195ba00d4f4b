package ai

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/lingocoach/internal/session"
	"github.com/example/lingocoach/pkg/models"
)

func generated() generatedQuestion {
	return generatedQuestion{
		Type:        "single_choice",
		Question:    "Which word means 'present everywhere'?",
		Options:     []string{"ubiquitous", "ephemeral", "obstinate", "serene"},
		Answer:      "ubiquitous",
		Explanation: "Ubiquitous describes something found everywhere.",
		Word:        "ubiquitous",
		Difficulty:  6,
	}
}

func TestToRecordAcceptsValidSingleChoice(t *testing.T) {
	req := GenerateRequest{PracticeID: "p1", Language: "english"}
	now := time.Now()

	record, ok := toRecord(generated(), req, now)
	require.True(t, ok)

	assert.NotEmpty(t, record.QuestionID)
	assert.Equal(t, "p1", record.PracticeID)
	assert.Equal(t, models.SingleChoice, record.Type)
	assert.Equal(t, "english", record.Language)
	assert.Equal(t, 6, record.Difficulty)
	assert.Len(t, record.Options, 4)
}

func TestToRecordRejectsMalformedQuestions(t *testing.T) {
	req := GenerateRequest{PracticeID: "p1"}
	now := time.Now()

	missing := generated()
	missing.Answer = ""
	_, ok := toRecord(missing, req, now)
	assert.False(t, ok)

	badOptions := generated()
	badOptions.Options = []string{"a", "b"}
	_, ok = toRecord(badOptions, req, now)
	assert.False(t, ok)

	answerNotOffered := generated()
	answerNotOffered.Options = []string{"a", "b", "c", "d"}
	_, ok = toRecord(answerNotOffered, req, now)
	assert.False(t, ok)

	unknownType := generated()
	unknownType.Type = "essay"
	_, ok = toRecord(unknownType, req, now)
	assert.False(t, ok)
}

func TestToRecordFillBlankDropsOptions(t *testing.T) {
	q := generated()
	q.Type = "fill_blank"

	record, ok := toRecord(q, GenerateRequest{}, time.Now())
	require.True(t, ok)
	assert.Equal(t, models.FillBlank, record.Type)
	assert.Empty(t, record.Options)
}

func TestToRecordDefaultsOutOfRangeDifficulty(t *testing.T) {
	q := generated()
	q.Difficulty = 42

	record, ok := toRecord(q, GenerateRequest{}, time.Now())
	require.True(t, ok)
	assert.Equal(t, 5, record.Difficulty)
}

func TestBuildPromptNamesCoreWordsAndSlots(t *testing.T) {
	prompt := buildPrompt(GenerateRequest{
		Plan: &session.Plan{
			Entries: []session.Entry{
				{Word: "ubiquitous", Role: session.RoleReview},
				{Word: "cadence", Role: session.RoleNew},
			},
			CoreWords: []string{"ubiquitous", "cadence"},
		},
		Article:  "A short article about music.",
		Language: "english",
		Level:    5,
	})

	assert.Contains(t, prompt, "ubiquitous, cadence")
	assert.Contains(t, prompt, `word "ubiquitous" (review)`)
	assert.Contains(t, prompt, `word "cadence" (new)`)
	assert.Contains(t, prompt, "A short article about music.")
	assert.Contains(t, prompt, "level 5/10")
	assert.Equal(t, 2, strings.Count(prompt, "word \""))
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"is_correct": true}`, stripFences("```json\n{\"is_correct\": true}\n```"))
	assert.Equal(t, `{"is_correct": true}`, stripFences("```\n{\"is_correct\": true}\n```"))
	assert.Equal(t, `{"is_correct": true}`, stripFences(`{"is_correct": true}`))
}
