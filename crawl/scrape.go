// Package crawl orchestrates a scrape of the guide: discovery of
// dynamically-listed chapters, rate-limited concurrent fetching and
// extraction of every article and the glossary, and assembly of the results
// into the final document tree.
package crawl

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"rmguide"
)

// Phase identifies where a run is in its linear lifecycle.
type Phase int

// Run phases, in order. The lifecycle is linear with no cycles: discovery
// fully resolves the site map before any article fetch starts, and assembly
// only begins after every fetch unit has settled.
const (
	PhaseIdle Phase = iota
	PhaseDiscovering
	PhaseScraping
	PhaseAssembling
	PhaseDone
)

// String returns the phase name for logging.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDiscovering:
		return "discovering"
	case PhaseScraping:
		return "scraping"
	case PhaseAssembling:
		return "assembling"
	case PhaseDone:
		return "done"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Phase     Phase
	URL       string
	Completed int
	Total     int
	Err       error
}

// ProgressFunc is a callback for reporting run progress. It may be called
// from multiple goroutines; the scraper serializes invocations.
type ProgressFunc func(ProgressEvent)

// DefaultConcurrency bounds simultaneously in-flight fetches.
const DefaultConcurrency = 3

// Scraper drives a complete scrape of the guide.
type Scraper struct {
	Fetcher     rmguide.Fetcher
	Extractor   rmguide.Extractor
	Converter   rmguide.Converter
	Limiter     rmguide.RateLimiter
	Concurrency int
	RetryDelays []time.Duration
	RetainHTML  bool
}

// Result holds the outcome of a run: the assembled guide plus the explicit
// list of units that were skipped and why. Partial success yields a valid,
// smaller tree; loss is never silent.
type Result struct {
	Guide    *rmguide.Guide
	Failures []rmguide.Failure
}

// scrapeUnit is one article fetch+extract work item.
type scrapeUnit struct {
	chIdx, artIdx int
	chapter       *rmguide.ChapterConfig
	article       *rmguide.ArticleConfig
	url           string
}

// Run executes the full pipeline. Per-unit failures are absorbed and
// recorded; Run only returns an error when the site map is invalid, the
// context is canceled, or every scheduled fetch failed.
func (s *Scraper) Run(ctx context.Context, site *rmguide.SiteMap, progress ProgressFunc) (*Result, error) {
	if err := site.Validate(); err != nil {
		return nil, err
	}

	// Discovery must complete before scraping: article identifiers depend
	// on final position within their chapter.
	d := &Discoverer{
		Fetcher:     s.Fetcher,
		Extractor:   s.Extractor,
		Limiter:     s.Limiter,
		RetryDelays: s.RetryDelays,
	}
	resolved, failures := d.Resolve(ctx, site, progress)

	units := buildUnits(resolved)
	totalFetches := len(units)
	if resolved.GlossaryURL != "" {
		totalFetches++
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	// Results are indexed by chapter/article position, never by completion
	// order, so the output order always matches the site map.
	articles := make([][]*rmguide.Article, len(resolved.Chapters))
	unitErrs := make([][]error, len(resolved.Chapters))
	for i, ch := range resolved.Chapters {
		articles[i] = make([]*rmguide.Article, len(ch.Articles))
		unitErrs[i] = make([]error, len(ch.Articles))
	}
	var glossary *rmguide.Glossary
	var glossaryErr error

	var mu sync.Mutex
	completed := 0
	emit := func(ev ProgressEvent) {
		if progress == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		completed++
		ev.Completed = completed
		ev.Total = totalFetches
		progress(ev)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, u := range units {
		g.Go(func() error {
			art, err := s.scrapeArticle(gctx, resolved, u.chapter, u.article, u.url)
			articles[u.chIdx][u.artIdx] = art
			unitErrs[u.chIdx][u.artIdx] = err
			emit(ProgressEvent{Phase: PhaseScraping, URL: u.url, Err: err})
			return nil
		})
	}
	if resolved.GlossaryURL != "" {
		g.Go(func() error {
			glossary, glossaryErr = s.scrapeGlossary(gctx, resolved)
			emit(ProgressEvent{Phase: PhaseScraping, URL: resolved.GlossaryURL, Err: glossaryErr})
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Gather per-unit failures in site-map order.
	succeeded := 0
	for _, u := range units {
		if err := unitErrs[u.chIdx][u.artIdx]; err != nil {
			failures = append(failures, rmguide.Failure{
				URL:           u.url,
				ArticleID:     rmguide.ArticleID(u.chapter.Number, u.article.Number),
				ChapterNumber: u.chapter.Number,
				Err:           err,
				Reason:        err.Error(),
			})
			continue
		}
		succeeded++
	}
	if resolved.GlossaryURL != "" {
		if glossaryErr != nil {
			failures = append(failures, rmguide.Failure{
				URL:    resolved.GlossaryURL,
				Err:    glossaryErr,
				Reason: glossaryErr.Error(),
			})
		} else {
			succeeded++
		}
	}

	if totalFetches > 0 && succeeded == 0 {
		return nil, rmguide.Errorf(rmguide.EUNAVAILABLE, "all %d fetches failed", totalFetches)
	}

	if progress != nil {
		progress(ProgressEvent{Phase: PhaseAssembling, Completed: completed, Total: totalFetches})
	}
	guide := Assemble(resolved, articles, glossary)
	if progress != nil {
		progress(ProgressEvent{Phase: PhaseDone, Completed: completed, Total: totalFetches})
	}

	return &Result{Guide: guide, Failures: failures}, nil
}

// buildUnits flattens the resolved site map into article work items.
func buildUnits(site *rmguide.SiteMap) []scrapeUnit {
	var units []scrapeUnit
	for i, ch := range site.Chapters {
		for j, a := range ch.Articles {
			units = append(units, scrapeUnit{
				chIdx:   i,
				artIdx:  j,
				chapter: ch,
				article: a,
				url:     site.ArticleURL(ch, a),
			})
		}
	}
	return units
}

// scrapeArticle fetches and extracts a single article.
func (s *Scraper) scrapeArticle(ctx context.Context, site *rmguide.SiteMap, ch *rmguide.ChapterConfig, a *rmguide.ArticleConfig, url string) (*rmguide.Article, error) {
	html, err := FetchWithRetry(ctx, url, s.Fetcher.Fetch, s.Limiter, s.RetryDelays)
	if err != nil {
		return nil, err
	}

	res, err := s.Extractor.ExtractArticle(html, rmguide.PageContext{URL: url, Resolver: site})
	if err != nil {
		return nil, err
	}

	var body string
	if strings.TrimSpace(res.ContentHTML) != "" {
		body, err = s.Converter.Convert(res.ContentHTML)
		if err != nil {
			return nil, err
		}
	}

	contentType := rmguide.ContentTypeArticle
	if a.Number == 0 {
		contentType = rmguide.ContentTypeOverview
	}
	title := res.Title
	if title == "" {
		title = a.Title
	}

	art := &rmguide.Article{
		ID:              rmguide.ArticleID(ch.Number, a.Number),
		ChapterNumber:   ch.Number,
		ArticleNumber:   a.Number,
		Title:           title,
		URL:             url,
		ContentType:     contentType,
		Body:            body,
		Sections:        res.Sections,
		CrossReferences: res.CrossReferences,
		KeyConcepts:     res.KeyConcepts,
		Images:          res.Images,
		ContentHash:     ContentHash(body),
		FetchedAt:       time.Now().UTC(),
	}
	if s.RetainHTML {
		art.RawHTML = html
	}
	art.RecomputeCounts()

	return art, nil
}

// scrapeGlossary fetches and extracts the glossary page.
func (s *Scraper) scrapeGlossary(ctx context.Context, site *rmguide.SiteMap) (*rmguide.Glossary, error) {
	html, err := FetchWithRetry(ctx, site.GlossaryURL, s.Fetcher.Fetch, s.Limiter, s.RetryDelays)
	if err != nil {
		return nil, err
	}

	terms, err := s.Extractor.ExtractGlossary(html)
	if err != nil {
		return nil, err
	}

	return &rmguide.Glossary{
		URL:       site.GlossaryURL,
		Terms:     terms,
		FetchedAt: time.Now().UTC(),
	}, nil
}

// ContentHash computes a stable hash of article content using xxhash.
func ContentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
