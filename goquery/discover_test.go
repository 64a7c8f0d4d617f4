package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rmguide"
	gq "rmguide/goquery"
)

func discoverChapter() (*rmguide.SiteMap, *rmguide.ChapterConfig) {
	ch := &rmguide.ChapterConfig{
		Number:   6,
		Title:    "Dynamic",
		Slug:     "dynamic",
		Discover: true,
		Articles: []*rmguide.ArticleConfig{{Number: 0, Title: "Overview"}},
	}
	site := &rmguide.SiteMap{
		BaseURL:  "https://www.example.com/guide",
		Chapters: []*rmguide.ChapterConfig{ch},
	}
	return site, ch
}

func TestExtractor_DiscoverLinks(t *testing.T) {
	t.Parallel()

	e := gq.NewExtractor()

	t.Run("keeps only links one segment under the chapter", func(t *testing.T) {
		t.Parallel()

		site, ch := discoverChapter()
		html := `<html><body>
			<a href="/guide/dynamic/alpha/">Alpha</a>
			<a href="/guide/dynamic/beta/">Beta</a>
			<a href="https://www.example.com/guide/dynamic/gamma/">Gamma</a>
			<a href="/guide/other-chapter/delta/">wrong chapter</a>
			<a href="/guide/dynamic/">the overview itself</a>
			<a href="/guide/dynamic/alpha/deeper/">nested too deep</a>
			<a href="https://other.com/guide/dynamic/epsilon/">other host</a>
			<a href="#section">fragment</a>
		</body></html>`

		links, err := e.DiscoverLinks(html, site, ch)
		require.NoError(t, err)
		require.Len(t, links, 3)
		assert.Equal(t, rmguide.DiscoveredArticle{Title: "Alpha", Slug: "alpha", URL: "https://www.example.com/guide/dynamic/alpha/"}, links[0])
		assert.Equal(t, "beta", links[1].Slug)
		assert.Equal(t, "gamma", links[2].Slug)
	})

	t.Run("deduplicates slugs keeping document order", func(t *testing.T) {
		t.Parallel()

		site, ch := discoverChapter()
		html := `<html><body>
			<a href="/guide/dynamic/beta/">Beta from nav</a>
			<a href="/guide/dynamic/alpha/">Alpha</a>
			<a href="/guide/dynamic/beta/">Beta again</a>
		</body></html>`

		links, err := e.DiscoverLinks(html, site, ch)
		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, "beta", links[0].Slug)
		assert.Equal(t, "Beta from nav", links[0].Title)
		assert.Equal(t, "alpha", links[1].Slug)
	})

	t.Run("resolves relative links against the overview URL", func(t *testing.T) {
		t.Parallel()

		site, ch := discoverChapter()
		html := `<html><body><a href="zeta/">Zeta</a></body></html>`

		links, err := e.DiscoverLinks(html, site, ch)
		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "zeta", links[0].Slug)
		assert.Equal(t, "https://www.example.com/guide/dynamic/zeta/", links[0].URL)
	})

	t.Run("returns nothing for a page with no candidates", func(t *testing.T) {
		t.Parallel()

		site, ch := discoverChapter()
		links, err := e.DiscoverLinks(`<html><body><p>no links</p></body></html>`, site, ch)
		require.NoError(t, err)
		assert.Empty(t, links)
	})
}
