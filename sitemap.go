package rmguide

import (
	"net/url"
	"strings"
)

// ArticleConfig describes one article within a chapter of the site map.
// Number 0 denotes the chapter's own overview page.
type ArticleConfig struct {
	Number int
	Title  string
	Slug   string
}

// ChapterConfig describes one chapter of the site map. When Discover is set
// the article list is not known up front and must be resolved at run time by
// scraping the chapter's overview page.
type ChapterConfig struct {
	Number   int
	Title    string
	Slug     string
	Discover bool
	Articles []*ArticleConfig
}

// SiteMap is the static, versioned description of the guide's page set.
// It is consumed read-only by the discoverer and the scraper.
type SiteMap struct {
	Title       string
	Publisher   string
	BaseURL     string
	GlossaryURL string
	Chapters    []*ChapterConfig
}

// OverviewURL returns the URL of a chapter's overview page.
func (m *SiteMap) OverviewURL(ch *ChapterConfig) string {
	return strings.TrimSuffix(m.BaseURL, "/") + "/" + ch.Slug + "/"
}

// ArticleURL returns the full URL of an article within a chapter.
// The overview article (number 0) maps to the chapter's overview URL.
func (m *SiteMap) ArticleURL(ch *ChapterConfig, a *ArticleConfig) string {
	if a.Number == 0 || a.Slug == "" {
		return m.OverviewURL(ch)
	}
	return strings.TrimSuffix(m.BaseURL, "/") + "/" + ch.Slug + "/" + a.Slug + "/"
}

// Validate returns an error if the site map is internally inconsistent.
func (m *SiteMap) Validate() error {
	if m.BaseURL == "" {
		return Errorf(EINVALID, "site map base URL required")
	}
	seen := make(map[int]struct{}, len(m.Chapters))
	last := 0
	for _, ch := range m.Chapters {
		if ch.Number < 1 {
			return Errorf(EINVALID, "chapter number must be positive, got %d", ch.Number)
		}
		if _, ok := seen[ch.Number]; ok {
			return Errorf(EINVALID, "duplicate chapter number %d", ch.Number)
		}
		if ch.Number < last {
			return Errorf(EINVALID, "chapter %d out of order", ch.Number)
		}
		if ch.Slug == "" {
			return Errorf(EINVALID, "chapter %d slug required", ch.Number)
		}
		seen[ch.Number] = struct{}{}
		last = ch.Number
	}
	return nil
}

// Clone returns a deep copy of the site map. The discoverer materializes
// discovered articles into a clone so the static configuration stays
// untouched.
func (m *SiteMap) Clone() *SiteMap {
	out := &SiteMap{
		Title:       m.Title,
		Publisher:   m.Publisher,
		BaseURL:     m.BaseURL,
		GlossaryURL: m.GlossaryURL,
		Chapters:    make([]*ChapterConfig, 0, len(m.Chapters)),
	}
	for _, ch := range m.Chapters {
		cc := &ChapterConfig{
			Number:   ch.Number,
			Title:    ch.Title,
			Slug:     ch.Slug,
			Discover: ch.Discover,
			Articles: make([]*ArticleConfig, 0, len(ch.Articles)),
		}
		for _, a := range ch.Articles {
			ac := *a
			cc.Articles = append(cc.Articles, &ac)
		}
		out.Chapters = append(out.Chapters, cc)
	}
	return out
}

// ResolveArticle maps a normalized URL to an article identifier within the
// site map. It reports ok=false when the URL is outside the guide's root
// domain or does not correspond to a known article.
func (m *SiteMap) ResolveArticle(rawURL string) (id string, ok bool) {
	base, err := url.Parse(m.BaseURL)
	if err != nil {
		return "", false
	}
	target, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	if !hostWithinRoot(base.Host, target.Host) {
		return "", false
	}

	basePath := strings.TrimSuffix(base.Path, "/")
	path := strings.TrimSuffix(target.Path, "/")
	if !strings.HasPrefix(path, basePath+"/") {
		return "", false
	}
	rel := strings.TrimPrefix(path, basePath+"/")
	segs := strings.Split(rel, "/")

	for _, ch := range m.Chapters {
		if ch.Slug != segs[0] {
			continue
		}
		switch len(segs) {
		case 1:
			// Chapter overview page.
			return ArticleID(ch.Number, 0), true
		case 2:
			for _, a := range ch.Articles {
				if a.Slug == segs[1] {
					return ArticleID(ch.Number, a.Number), true
				}
			}
		}
		return "", false
	}
	return "", false
}

// TargetResolver maps URLs to article identifiers. *SiteMap implements it.
type TargetResolver interface {
	ResolveArticle(rawURL string) (id string, ok bool)
}

var _ TargetResolver = (*SiteMap)(nil)

// hostWithinRoot reports whether host belongs to the same root domain as the
// base host. The "www." prefix is ignored on both sides so that links to
// example.com and www.example.com classify identically.
func hostWithinRoot(baseHost, host string) bool {
	b := strings.TrimPrefix(strings.ToLower(baseHost), "www.")
	h := strings.TrimPrefix(strings.ToLower(host), "www.")
	return h == b || strings.HasSuffix(h, "."+b)
}
