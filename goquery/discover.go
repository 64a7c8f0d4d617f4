package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"rmguide"
)

// DiscoverLinks extracts candidate article links from a chapter overview
// page. Candidates are links whose target path is directly under the
// chapter's own URL path prefix, excluding the overview page itself.
// Duplicate slugs keep their first occurrence; order is document order.
func (e *Extractor) DiscoverLinks(rawHTML string, site *rmguide.SiteMap, ch *rmguide.ChapterConfig) ([]rmguide.DiscoveredArticle, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, rmguide.Errorf(rmguide.EINVALID, "failed to parse HTML: %v", err)
	}

	overviewURL := site.OverviewURL(ch)
	base, err := url.Parse(overviewURL)
	if err != nil {
		return nil, rmguide.Errorf(rmguide.EINVALID, "invalid overview URL %q: %v", overviewURL, err)
	}
	chapterPath := strings.TrimSuffix(base.Path, "/")

	seen := make(map[string]struct{})
	var articles []rmguide.DiscoveredArticle

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" || isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}
		target, err := url.Parse(resolved)
		if err != nil {
			return
		}
		if !strings.EqualFold(target.Host, base.Host) {
			return
		}

		// Articles live exactly one path segment below the chapter.
		path := strings.TrimSuffix(target.Path, "/")
		if !strings.HasPrefix(path, chapterPath+"/") {
			return
		}
		slug := strings.TrimPrefix(path, chapterPath+"/")
		if slug == "" || strings.Contains(slug, "/") {
			return
		}
		if _, ok := seen[slug]; ok {
			return
		}
		seen[slug] = struct{}{}

		articles = append(articles, rmguide.DiscoveredArticle{
			Title: collapseWhitespace(sel.Text()),
			Slug:  slug,
			URL:   resolved,
		})
	})

	return articles, nil
}
