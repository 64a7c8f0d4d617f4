package crawl_test

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rmguide"
	"rmguide/crawl"
	"rmguide/mock"
)

// passthroughExtractor returns a minimal result derived from the page URL so
// tests can tell articles apart without real markup.
func passthroughExtractor() *mock.Extractor {
	return &mock.Extractor{
		ExtractArticleFn: func(html string, pctx rmguide.PageContext) (*rmguide.ExtractResult, error) {
			return &rmguide.ExtractResult{
				Title:       "Title of " + pctx.URL,
				ContentHTML: html,
			}, nil
		},
		ExtractGlossaryFn: func(html string) ([]rmguide.GlossaryTerm, error) {
			return []rmguide.GlossaryTerm{
				{Term: "Baseline", Definition: "A fixed reference point."},
				{Term: "Traceability", Definition: "Linking artifacts across the lifecycle."},
			}, nil
		},
		DiscoverLinksFn: func(html string, site *rmguide.SiteMap, ch *rmguide.ChapterConfig) ([]rmguide.DiscoveredArticle, error) {
			return []rmguide.DiscoveredArticle{{Title: "Found Article", Slug: "found-article"}}, nil
		},
	}
}

func passthroughConverter() *mock.Converter {
	return &mock.Converter{ConvertFn: func(html string) (string, error) {
		return strings.TrimSpace(strings.NewReplacer("<p>", "", "</p>", "").Replace(html)), nil
	}}
}

func scrapeSite() *rmguide.SiteMap {
	site := discoverySite()
	site.GlossaryURL = "https://example.com/guide/glossary/"
	return site
}

func TestScraper_Run(t *testing.T) {
	t.Parallel()

	t.Run("assembles the full guide from a mixed run", func(t *testing.T) {
		t.Parallel()

		// Chapter 1 overview fails permanently; everything else succeeds.
		fetcher := &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			if url == "https://example.com/guide/static/" {
				return "", &rmguide.FetchError{URL: url, StatusCode: 404, Attempts: 1}
			}
			return fmt.Sprintf("<p>content of %s</p>", url), nil
		}}

		s := &crawl.Scraper{
			Fetcher:     fetcher,
			Extractor:   passthroughExtractor(),
			Converter:   passthroughConverter(),
			RetryDelays: fastDelays,
		}

		result, err := s.Run(context.Background(), scrapeSite(), nil)
		require.NoError(t, err)
		guide := result.Guide
		require.NoError(t, guide.Validate())

		// Chapter 1 lost its overview but kept its known article.
		require.Len(t, guide.Chapters, 2)
		ch1 := guide.Chapters[0]
		require.Len(t, ch1.Articles, 1)
		assert.Equal(t, "ch1-art1", ch1.Articles[0].ID)
		assert.Equal(t, rmguide.ContentTypeArticle, ch1.Articles[0].ContentType)

		// Chapter 2 resolved via discovery: overview plus one found article.
		ch2 := guide.Chapters[1]
		require.Len(t, ch2.Articles, 2)
		assert.Equal(t, "ch2-art0", ch2.Articles[0].ID)
		assert.Equal(t, rmguide.ContentTypeOverview, ch2.Articles[0].ContentType)
		assert.Equal(t, "ch2-art1", ch2.Articles[1].ID)
		assert.Equal(t, "https://example.com/guide/dynamic/found-article/", ch2.Articles[1].URL)

		// The failed unit is reported, not silently dropped.
		require.Len(t, result.Failures, 1)
		assert.Equal(t, "https://example.com/guide/static/", result.Failures[0].URL)
		assert.Equal(t, "ch1-art0", result.Failures[0].ArticleID)

		// Glossary was scraped alongside the articles.
		require.NotNil(t, guide.Glossary)
		assert.Equal(t, 2, guide.Glossary.TermCount())
		assert.Equal(t, "https://example.com/guide/glossary/", guide.Glossary.URL)
	})

	t.Run("derives counts and hash from the converted body", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			return "<p>three short words</p>", nil
		}}
		s := &crawl.Scraper{
			Fetcher:     fetcher,
			Extractor:   passthroughExtractor(),
			Converter:   passthroughConverter(),
			RetryDelays: fastDelays,
		}

		result, err := s.Run(context.Background(), scrapeSite(), nil)
		require.NoError(t, err)

		art := result.Guide.Chapters[0].Articles[0]
		assert.Equal(t, "three short words", art.Body)
		assert.Equal(t, 3, art.WordCount)
		assert.Equal(t, 17, art.CharCount)
		assert.Equal(t, crawl.ContentHash("three short words"), art.ContentHash)
		assert.Empty(t, art.RawHTML)
		assert.False(t, art.FetchedAt.IsZero())
	})

	t.Run("retains raw HTML only when asked", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			return "<p>body</p>", nil
		}}
		s := &crawl.Scraper{
			Fetcher:     fetcher,
			Extractor:   passthroughExtractor(),
			Converter:   passthroughConverter(),
			RetryDelays: fastDelays,
			RetainHTML:  true,
		}

		result, err := s.Run(context.Background(), scrapeSite(), nil)
		require.NoError(t, err)
		assert.Equal(t, "<p>body</p>", result.Guide.Chapters[0].Articles[0].RawHTML)
	})

	t.Run("output order is site-map order regardless of completion order", func(t *testing.T) {
		t.Parallel()

		site := &rmguide.SiteMap{
			Title:   "Test Guide",
			BaseURL: "https://example.com/guide",
			Chapters: []*rmguide.ChapterConfig{{
				Number: 1,
				Title:  "Only",
				Slug:   "only",
				Articles: []*rmguide.ArticleConfig{
					{Number: 0, Title: "Overview"},
					{Number: 1, Title: "A", Slug: "a"},
					{Number: 2, Title: "B", Slug: "b"},
					{Number: 3, Title: "C", Slug: "c"},
					{Number: 4, Title: "D", Slug: "d"},
					{Number: 5, Title: "E", Slug: "e"},
				},
			}},
		}

		fetcher := &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			time.Sleep(time.Duration(rand.Intn(20)) * time.Millisecond)
			return "<p>x</p>", nil
		}}
		s := &crawl.Scraper{
			Fetcher:     fetcher,
			Extractor:   passthroughExtractor(),
			Converter:   passthroughConverter(),
			Concurrency: 4,
			RetryDelays: fastDelays,
		}

		result, err := s.Run(context.Background(), site, nil)
		require.NoError(t, err)

		arts := result.Guide.Chapters[0].Articles
		require.Len(t, arts, 6)
		for i, art := range arts {
			assert.Equal(t, rmguide.ArticleID(1, i), art.ID)
		}
	})

	t.Run("fails the run only when every fetch failed", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			return "", &rmguide.FetchError{URL: url, StatusCode: 404, Attempts: 1}
		}}
		s := &crawl.Scraper{
			Fetcher:     fetcher,
			Extractor:   passthroughExtractor(),
			Converter:   passthroughConverter(),
			RetryDelays: fastDelays,
		}

		_, err := s.Run(context.Background(), scrapeSite(), nil)
		require.Error(t, err)
		assert.Equal(t, rmguide.EUNAVAILABLE, rmguide.ErrorCode(err))
	})

	t.Run("a single success keeps the run alive", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			if url == "https://example.com/guide/static/known/" {
				return "<p>survivor</p>", nil
			}
			return "", &rmguide.FetchError{URL: url, StatusCode: 404, Attempts: 1}
		}}
		s := &crawl.Scraper{
			Fetcher:     fetcher,
			Extractor:   passthroughExtractor(),
			Converter:   passthroughConverter(),
			RetryDelays: fastDelays,
		}

		result, err := s.Run(context.Background(), scrapeSite(), nil)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Guide.TotalArticles())
		assert.NotEmpty(t, result.Failures)
	})

	t.Run("rejects an invalid site map", func(t *testing.T) {
		t.Parallel()

		s := &crawl.Scraper{
			Fetcher:   &mock.Fetcher{},
			Extractor: passthroughExtractor(),
			Converter: passthroughConverter(),
		}

		_, err := s.Run(context.Background(), &rmguide.SiteMap{}, nil)
		require.Error(t, err)
		assert.Equal(t, rmguide.EINVALID, rmguide.ErrorCode(err))
	})

	t.Run("returns the context error on cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetcher := &mock.Fetcher{FetchFn: func(c context.Context, url string) (string, error) {
			cancel()
			return "<p>x</p>", nil
		}}
		s := &crawl.Scraper{
			Fetcher:     fetcher,
			Extractor:   passthroughExtractor(),
			Converter:   passthroughConverter(),
			RetryDelays: fastDelays,
		}

		_, err := s.Run(ctx, scrapeSite(), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("reports serialized monotonic progress", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			return "<p>x</p>", nil
		}}
		s := &crawl.Scraper{
			Fetcher:     fetcher,
			Extractor:   passthroughExtractor(),
			Converter:   passthroughConverter(),
			Concurrency: 3,
			RetryDelays: fastDelays,
		}

		var events []crawl.ProgressEvent
		_, err := s.Run(context.Background(), scrapeSite(), func(ev crawl.ProgressEvent) {
			events = append(events, ev)
		})
		require.NoError(t, err)

		// static: overview+known, dynamic: overview+found, plus glossary.
		last := 0
		var scraping int
		for _, ev := range events {
			switch ev.Phase {
			case crawl.PhaseScraping:
				scraping++
				assert.Equal(t, 5, ev.Total)
				assert.Greater(t, ev.Completed, last)
				last = ev.Completed
			case crawl.PhaseAssembling, crawl.PhaseDone:
				assert.Equal(t, 5, ev.Completed)
			}
		}
		assert.Equal(t, 5, scraping)
		assert.Equal(t, crawl.PhaseDone, events[len(events)-1].Phase)
	})
}

func TestPhase_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "idle", crawl.PhaseIdle.String())
	assert.Equal(t, "discovering", crawl.PhaseDiscovering.String())
	assert.Equal(t, "scraping", crawl.PhaseScraping.String())
	assert.Equal(t, "assembling", crawl.PhaseAssembling.String())
	assert.Equal(t, "done", crawl.PhaseDone.String())
}
