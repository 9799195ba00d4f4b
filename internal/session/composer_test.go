package session

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(n int, prefix string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%02d", prefix, i)
	}
	return out
}

func TestComposeFailsWithoutContent(t *testing.T) {
	_, err := Compose(nil, nil, DefaultOptions())
	require.ErrorIs(t, err, ErrNoContentAvailable)
}

func TestComposeCoreWordsDrawnFromDueSetFirst(t *testing.T) {
	due := words(6, "due")
	fresh := words(10, "new")

	plan, err := Compose(due, fresh, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, plan.CoreWords, 4)
	for _, w := range plan.CoreWords {
		assert.Contains(t, due, w)
	}
	assert.Len(t, plan.Entries, 15)
	assert.False(t, plan.UnderTarget)
}

func TestComposeCoreWordsFallBackToNewWords(t *testing.T) {
	due := []string{"only"}
	fresh := words(10, "new")

	plan, err := Compose(due, fresh, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, plan.CoreWords, 4)
	assert.Equal(t, "only", plan.CoreWords[0])
	for _, w := range plan.CoreWords[1:] {
		assert.Contains(t, fresh, w)
	}
}

func TestComposeEveryCoreWordGetsAtLeastOneQuestion(t *testing.T) {
	plan, err := Compose(words(6, "due"), words(10, "new"), DefaultOptions())
	require.NoError(t, err)

	counts := make(map[string]int)
	for _, e := range plan.Entries {
		counts[e.Word]++
	}
	for _, w := range plan.CoreWords {
		assert.GreaterOrEqual(t, counts[w], 1, "core word %q has no question", w)
	}
}

func TestComposeCapsQuestionsPerCoreWord(t *testing.T) {
	opts := DefaultOptions()
	plan, err := Compose(words(2, "due"), words(2, "new"), opts)
	require.NoError(t, err)

	counts := make(map[string]int)
	for _, e := range plan.Entries {
		counts[e.Word]++
	}
	for _, w := range plan.CoreWords {
		assert.LessOrEqual(t, counts[w], opts.MaxPerCore)
	}
}

func TestComposePlanSizeIsFeasibleMinimum(t *testing.T) {
	opts := DefaultOptions()

	// 2 due + 2 new: 4 core words, 3 questions each at most.
	plan, err := Compose(words(2, "due"), words(2, "new"), opts)
	require.NoError(t, err)
	assert.Len(t, plan.Entries, 12)
	assert.True(t, plan.UnderTarget)

	// Plenty of content fills the target exactly.
	plan, err = Compose(words(20, "due"), words(20, "new"), opts)
	require.NoError(t, err)
	assert.Len(t, plan.Entries, 15)
	assert.False(t, plan.UnderTarget)
}

func TestComposeExtraDueWordsBeforeExtraNewWords(t *testing.T) {
	due := words(7, "due")
	fresh := words(8, "new")

	plan, err := Compose(due, fresh, DefaultOptions())
	require.NoError(t, err)

	// 4 core + 8 repeats leaves 3 filler slots, exactly the remaining due
	// words; no new word is drawn beyond the core.
	planned := plan.PlannedWords()
	for _, w := range due {
		assert.Contains(t, planned, w)
	}
	assert.Len(t, planned, 7)
	assert.Equal(t, 0, countRole(plan.Entries, RoleNew))
}

func TestComposeCoreCountClamped(t *testing.T) {
	opts := DefaultOptions()
	opts.CoreCount = 9

	plan, err := Compose(words(10, "due"), nil, opts)
	require.NoError(t, err)
	assert.Len(t, plan.CoreWords, opts.CoreMax)

	opts.CoreCount = 1
	plan, err = Compose(words(10, "due"), nil, opts)
	require.NoError(t, err)
	assert.Len(t, plan.CoreWords, opts.CoreMin)
}

func TestComposeCoreSmallerThanMinimumWhenContentShort(t *testing.T) {
	plan, err := Compose([]string{"solo", "duo"}, nil, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"solo", "duo"}, plan.CoreWords)
	assert.Len(t, plan.Entries, 6)
	assert.True(t, plan.UnderTarget)
}

func TestComposeDropsDuplicatesAcrossPools(t *testing.T) {
	due := []string{"shared", "due1", "due1"}
	fresh := []string{"shared", "new1"}

	plan, err := Compose(due, fresh, DefaultOptions())
	require.NoError(t, err)

	seen := make(map[string]Role)
	for _, e := range plan.Entries {
		if prev, ok := seen[e.Word]; ok {
			assert.Equal(t, prev, e.Role, "word %q changed role across entries", e.Word)
			continue
		}
		seen[e.Word] = e.Role
	}
	assert.Equal(t, RoleReview, seen["shared"])
}
