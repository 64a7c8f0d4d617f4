package crawl

import (
	"context"
	"time"

	"rmguide"
)

// Discoverer resolves the article lists of discovery-marked chapters by
// scraping their overview pages. Discovery always completes before any
// article fetch begins, because article identifiers depend on final position
// within their chapter.
type Discoverer struct {
	Fetcher     rmguide.Fetcher
	Extractor   rmguide.Extractor
	Limiter     rmguide.RateLimiter
	RetryDelays []time.Duration
}

// Resolve returns a fully-resolved clone of the site map. Chapters that
// fail discovery end up with zero articles and a chapter-granularity
// failure; discovery failures never abort the run.
func (d *Discoverer) Resolve(ctx context.Context, site *rmguide.SiteMap, progress ProgressFunc) (*rmguide.SiteMap, []rmguide.Failure) {
	resolved := site.Clone()
	var failures []rmguide.Failure

	for _, ch := range resolved.Chapters {
		if !ch.Discover {
			continue
		}

		overviewURL := resolved.OverviewURL(ch)
		if progress != nil {
			progress(ProgressEvent{Phase: PhaseDiscovering, URL: overviewURL})
		}

		articles, err := d.discoverChapter(ctx, resolved, ch, overviewURL)
		if err != nil {
			failures = append(failures, rmguide.Failure{
				URL:           overviewURL,
				ChapterNumber: ch.Number,
				Err:           err,
				Reason:        "discovery failed: " + err.Error(),
			})
			ch.Articles = nil
			ch.Discover = false
			continue
		}

		ch.Articles = articles
		ch.Discover = false
	}

	return resolved, failures
}

// discoverChapter fetches a chapter's overview page and materializes its
// article configs in document order. The overview itself keeps position 0.
func (d *Discoverer) discoverChapter(ctx context.Context, site *rmguide.SiteMap, ch *rmguide.ChapterConfig, overviewURL string) ([]*rmguide.ArticleConfig, error) {
	html, err := FetchWithRetry(ctx, overviewURL, d.Fetcher.Fetch, d.Limiter, d.RetryDelays)
	if err != nil {
		return nil, err
	}

	links, err := d.Extractor.DiscoverLinks(html, site, ch)
	if err != nil {
		return nil, err
	}

	articles := []*rmguide.ArticleConfig{{Number: 0, Title: "Overview"}}
	for i, link := range links {
		articles = append(articles, &rmguide.ArticleConfig{
			Number: i + 1,
			Title:  link.Title,
			Slug:   link.Slug,
		})
	}
	return articles, nil
}
