package articles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolSaveListGet(t *testing.T) {
	pool, err := NewPool(t.TempDir())
	require.NoError(t, err)

	names, err := pool.List()
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, pool.Save("morning-news", "The quick brown fox."))
	require.NoError(t, pool.Save("evening-news", "Jumps over the lazy dog."))

	names, err = pool.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"morning-news.txt", "evening-news.txt"}, names)

	content, err := pool.Get("morning-news")
	require.NoError(t, err)
	assert.Equal(t, "The quick brown fox.", content)

	content, err = pool.Get("morning-news.txt")
	require.NoError(t, err)
	assert.Equal(t, "The quick brown fox.", content)
}

func TestPoolGetMissingArticle(t *testing.T) {
	pool, err := NewPool(t.TempDir())
	require.NoError(t, err)

	_, err = pool.Get("nonexistent")
	assert.Error(t, err)
}

func TestPoolRandom(t *testing.T) {
	pool, err := NewPool(t.TempDir())
	require.NoError(t, err)

	name, _, err := pool.Random()
	require.NoError(t, err)
	assert.Empty(t, name)

	require.NoError(t, pool.Save("only", "Single article."))

	name, content, err := pool.Random()
	require.NoError(t, err)
	assert.Equal(t, "only.txt", name)
	assert.Equal(t, "Single article.", content)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "hello-world", slugify("Hello, World!"))
	assert.Equal(t, "a-long-read", slugify("  A   Long    Read  "))
	assert.Empty(t, slugify("???"))
}
