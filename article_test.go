package rmguide_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rmguide"
)

func TestArticleID(t *testing.T) {
	t.Parallel()

	t.Run("formats chapter and article position", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "ch1-art3", rmguide.ArticleID(1, 3))
		assert.Equal(t, "ch15-art0", rmguide.ArticleID(15, 0))
	})
}

func TestArticle_RecomputeCounts(t *testing.T) {
	t.Parallel()

	t.Run("derives counts from body", func(t *testing.T) {
		t.Parallel()

		a := &rmguide.Article{Body: "Requirements management is a discipline."}
		a.RecomputeCounts()

		assert.Equal(t, 5, a.WordCount)
		assert.Equal(t, 40, a.CharCount)
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		t.Parallel()

		a := &rmguide.Article{Body: "TÜV SÜD"}
		a.RecomputeCounts()

		assert.Equal(t, 2, a.WordCount)
		assert.Equal(t, 7, a.CharCount)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		a := &rmguide.Article{Body: "one two three"}
		a.RecomputeCounts()
		first, second := a.WordCount, a.CharCount
		a.RecomputeCounts()

		assert.Equal(t, first, a.WordCount)
		assert.Equal(t, second, a.CharCount)
	})

	t.Run("ignores fields other than body", func(t *testing.T) {
		t.Parallel()

		a := &rmguide.Article{
			Body:    "only this counts",
			Title:   "A Long Title With Many Words In It",
			RawHTML: "<html><body>lots of markup here</body></html>",
		}
		a.RecomputeCounts()

		assert.Equal(t, 3, a.WordCount)
	})

	t.Run("empty body yields zero counts", func(t *testing.T) {
		t.Parallel()

		a := &rmguide.Article{WordCount: 99, CharCount: 99}
		a.RecomputeCounts()

		assert.Zero(t, a.WordCount)
		assert.Zero(t, a.CharCount)
	})
}

func TestArticle_Validate(t *testing.T) {
	t.Parallel()

	valid := func() *rmguide.Article {
		return &rmguide.Article{
			ID:            "ch1-art1",
			ChapterNumber: 1,
			ArticleNumber: 1,
			URL:           "https://example.com/guide/ch/art/",
		}
	}

	t.Run("accepts a valid article", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, valid().Validate())
	})

	t.Run("requires an ID", func(t *testing.T) {
		t.Parallel()
		a := valid()
		a.ID = ""
		err := a.Validate()
		assert.Equal(t, rmguide.EINVALID, rmguide.ErrorCode(err))
	})

	t.Run("requires a source URL", func(t *testing.T) {
		t.Parallel()
		a := valid()
		a.URL = ""
		err := a.Validate()
		assert.Equal(t, rmguide.EINVALID, rmguide.ErrorCode(err))
	})

	t.Run("requires a positive chapter number", func(t *testing.T) {
		t.Parallel()
		a := valid()
		a.ChapterNumber = 0
		err := a.Validate()
		assert.Equal(t, rmguide.EINVALID, rmguide.ErrorCode(err))
	})
}
