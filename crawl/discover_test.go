package crawl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rmguide"
	"rmguide/crawl"
	"rmguide/mock"
)

func discoverySite() *rmguide.SiteMap {
	return &rmguide.SiteMap{
		Title:     "Test Guide",
		Publisher: "Test Publisher",
		BaseURL:   "https://example.com/guide",
		Chapters: []*rmguide.ChapterConfig{
			{
				Number: 1,
				Title:  "Static",
				Slug:   "static",
				Articles: []*rmguide.ArticleConfig{
					{Number: 0, Title: "Overview"},
					{Number: 1, Title: "Known", Slug: "known"},
				},
			},
			{
				Number:   2,
				Title:    "Dynamic",
				Slug:     "dynamic",
				Discover: true,
				Articles: []*rmguide.ArticleConfig{
					{Number: 0, Title: "Overview"},
				},
			},
		},
	}
}

func TestDiscoverer_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("materializes discovered articles in document order", func(t *testing.T) {
		t.Parallel()

		d := &crawl.Discoverer{
			Fetcher: &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
				assert.Equal(t, "https://example.com/guide/dynamic/", url)
				return "<html/>", nil
			}},
			Extractor: &mock.Extractor{DiscoverLinksFn: func(html string, site *rmguide.SiteMap, ch *rmguide.ChapterConfig) ([]rmguide.DiscoveredArticle, error) {
				return []rmguide.DiscoveredArticle{
					{Title: "First Found", Slug: "first-found"},
					{Title: "Second Found", Slug: "second-found"},
				}, nil
			}},
			RetryDelays: fastDelays,
		}

		resolved, failures := d.Resolve(context.Background(), discoverySite(), nil)

		require.Empty(t, failures)
		ch := resolved.Chapters[1]
		assert.False(t, ch.Discover)
		require.Len(t, ch.Articles, 3)
		assert.Equal(t, 0, ch.Articles[0].Number)
		assert.Equal(t, "Overview", ch.Articles[0].Title)
		assert.Equal(t, 1, ch.Articles[1].Number)
		assert.Equal(t, "first-found", ch.Articles[1].Slug)
		assert.Equal(t, 2, ch.Articles[2].Number)
		assert.Equal(t, "second-found", ch.Articles[2].Slug)
	})

	t.Run("leaves static chapters untouched", func(t *testing.T) {
		t.Parallel()

		d := &crawl.Discoverer{
			Fetcher: &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html/>", nil
			}},
			Extractor: &mock.Extractor{DiscoverLinksFn: func(html string, site *rmguide.SiteMap, ch *rmguide.ChapterConfig) ([]rmguide.DiscoveredArticle, error) {
				return nil, nil
			}},
			RetryDelays: fastDelays,
		}

		resolved, _ := d.Resolve(context.Background(), discoverySite(), nil)

		require.Len(t, resolved.Chapters[0].Articles, 2)
		assert.Equal(t, "known", resolved.Chapters[0].Articles[1].Slug)
	})

	t.Run("failed discovery yields zero articles and a chapter failure", func(t *testing.T) {
		t.Parallel()

		d := &crawl.Discoverer{
			Fetcher: &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", &rmguide.FetchError{URL: url, StatusCode: 404, Attempts: 1}
			}},
			Extractor:   &mock.Extractor{},
			RetryDelays: fastDelays,
		}

		resolved, failures := d.Resolve(context.Background(), discoverySite(), nil)

		require.Len(t, failures, 1)
		assert.Equal(t, 2, failures[0].ChapterNumber)
		assert.Contains(t, failures[0].Reason, "discovery failed")
		assert.Empty(t, resolved.Chapters[1].Articles)
		assert.False(t, resolved.Chapters[1].Discover)
	})

	t.Run("never mutates the input site map", func(t *testing.T) {
		t.Parallel()

		site := discoverySite()
		d := &crawl.Discoverer{
			Fetcher: &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html/>", nil
			}},
			Extractor: &mock.Extractor{DiscoverLinksFn: func(html string, s *rmguide.SiteMap, ch *rmguide.ChapterConfig) ([]rmguide.DiscoveredArticle, error) {
				return []rmguide.DiscoveredArticle{{Title: "Found", Slug: "found"}}, nil
			}},
			RetryDelays: fastDelays,
		}

		_, _ = d.Resolve(context.Background(), site, nil)

		assert.True(t, site.Chapters[1].Discover)
		assert.Len(t, site.Chapters[1].Articles, 1)
	})

	t.Run("reports discovery progress", func(t *testing.T) {
		t.Parallel()

		d := &crawl.Discoverer{
			Fetcher: &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html/>", nil
			}},
			Extractor: &mock.Extractor{DiscoverLinksFn: func(html string, s *rmguide.SiteMap, ch *rmguide.ChapterConfig) ([]rmguide.DiscoveredArticle, error) {
				return nil, nil
			}},
			RetryDelays: fastDelays,
		}

		var events []crawl.ProgressEvent
		_, _ = d.Resolve(context.Background(), discoverySite(), func(ev crawl.ProgressEvent) {
			events = append(events, ev)
		})

		require.Len(t, events, 1)
		assert.Equal(t, crawl.PhaseDiscovering, events[0].Phase)
		assert.Equal(t, "https://example.com/guide/dynamic/", events[0].URL)
	})
}
