package rmguide

// PageContext carries the information the extractor needs to normalize and
// classify links on a page.
type PageContext struct {
	// URL is the page's own URL, used to resolve relative links.
	URL string

	// Resolver classifies link targets against the resolved site map.
	// May be nil, in which case every reference classifies as external.
	Resolver TargetResolver
}

// ExtractResult holds the structured content extracted from an article page.
// A page with no recognizable main content yields a best-effort empty result
// (title only), never an error.
type ExtractResult struct {
	// Title comes from the page's top heading, falling back to <title>.
	Title string

	// ContentHTML is the main content region with boilerplate, scripts,
	// styles, and promotional blocks removed.
	ContentHTML string

	Sections        []Section
	CrossReferences []CrossReference
	KeyConcepts     []string
	Images          []ImageReference
}

// DiscoveredArticle is a candidate article link found on a chapter overview
// page, in document order.
type DiscoveredArticle struct {
	Title string
	Slug  string
	URL   string
}

// Extractor converts raw page markup into structured content.
type Extractor interface {
	// ExtractArticle extracts the structured content of an article or
	// chapter overview page.
	ExtractArticle(html string, pctx PageContext) (*ExtractResult, error)

	// ExtractGlossary extracts term/definition pairs from the glossary
	// page. Multiple markup patterns are tried in a fixed priority order;
	// the first pattern yielding at least one term wins.
	ExtractGlossary(html string) ([]GlossaryTerm, error)

	// DiscoverLinks extracts candidate article links from a chapter
	// overview page, filtered to targets under the chapter's own URL path
	// and excluding the overview page itself.
	DiscoverLinks(html string, site *SiteMap, ch *ChapterConfig) ([]DiscoveredArticle, error)
}

// Converter converts clean HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown. The input should be
	// clean HTML (e.g., ExtractResult.ContentHTML).
	Convert(html string) (string, error)
}
