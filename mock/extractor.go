package mock

import "rmguide"

var _ rmguide.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of rmguide.Extractor.
type Extractor struct {
	ExtractArticleFn  func(html string, pctx rmguide.PageContext) (*rmguide.ExtractResult, error)
	ExtractGlossaryFn func(html string) ([]rmguide.GlossaryTerm, error)
	DiscoverLinksFn   func(html string, site *rmguide.SiteMap, ch *rmguide.ChapterConfig) ([]rmguide.DiscoveredArticle, error)
}

func (e *Extractor) ExtractArticle(html string, pctx rmguide.PageContext) (*rmguide.ExtractResult, error) {
	return e.ExtractArticleFn(html, pctx)
}

func (e *Extractor) ExtractGlossary(html string) ([]rmguide.GlossaryTerm, error) {
	return e.ExtractGlossaryFn(html)
}

func (e *Extractor) DiscoverLinks(html string, site *rmguide.SiteMap, ch *rmguide.ChapterConfig) ([]rmguide.DiscoveredArticle, error) {
	return e.DiscoverLinksFn(html, site, ch)
}
