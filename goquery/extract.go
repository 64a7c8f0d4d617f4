package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"rmguide"
)

// Ensure Extractor implements rmguide.Extractor at compile time.
var _ rmguide.Extractor = (*Extractor)(nil)

// Extractor extracts structured content from guide pages.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// titleSuffixes are stripped from <title> fallbacks.
var titleSuffixes = []string{" | Jama Software", " - Jama Software"}

// contentMatcher locates a candidate main-content region. Matchers return
// nil when their shape is absent from the page.
type contentMatcher struct {
	name string
	find func(doc *goquery.Document) *goquery.Selection
}

// contentMatchers is the fixed priority order for locating the main content
// region: the guide's own theme layout first, then progressively broader
// generic containers, finally <body>.
var contentMatchers = []contentMatcher{
	{"flex_cell_inner", func(doc *goquery.Document) *goquery.Selection {
		cells := doc.Find(".flex_cell_inner")
		if cells.Length() < 2 {
			return nil
		}
		// The second cell holds the article; the trailing section is CTA
		// chrome on every page of the guide.
		cell := cells.Eq(1)
		cell.ChildrenFiltered("section").Last().Remove()
		return cell
	}},
	{"flex_cell", func(doc *goquery.Document) *goquery.Selection {
		cells := doc.Find(".flex_cell")
		if cells.Length() < 2 {
			return nil
		}
		return cells.Eq(1)
	}},
	{"article", firstOf("article")},
	{"post-content", firstOf(".post-content")},
	{"entry-content", firstOf(".entry-content")},
	{"content-area", firstOf(".content-area")},
	{"main", firstOf("main")},
	{"main-content", firstOf("#main-content, .main-content")},
	{"body", firstOf("body")},
}

func firstOf(selector string) func(doc *goquery.Document) *goquery.Selection {
	return func(doc *goquery.Document) *goquery.Selection {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			return nil
		}
		return sel
	}
}

// ExtractArticle extracts the structured content of an article page. A page
// with no recognizable main content yields a best-effort empty result with
// the title only; it never fails the run.
func (e *Extractor) ExtractArticle(rawHTML string, pctx rmguide.PageContext) (*rmguide.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, rmguide.Errorf(rmguide.EINVALID, "failed to parse HTML: %v", err)
	}

	result := &rmguide.ExtractResult{
		Title: extractTitle(doc),
	}

	content := findContent(doc)
	if content == nil {
		return result, nil
	}

	base, err := url.Parse(pctx.URL)
	if err != nil {
		return nil, rmguide.Errorf(rmguide.EINVALID, "invalid page URL %q: %v", pctx.URL, err)
	}

	cleanContent(content)
	removePromoBlocks(content)

	result.CrossReferences = extractCrossReferences(content, base, pctx.Resolver)
	result.Images = extractImages(content, base)
	result.Sections = extractSections(content)
	result.KeyConcepts = extractKeyConcepts(content, result.Title)

	contentHTML, err := goquery.OuterHtml(content)
	if err != nil {
		return nil, rmguide.Errorf(rmguide.EINTERNAL, "failed to render content HTML: %v", err)
	}
	result.ContentHTML = contentHTML

	return result, nil
}

// extractTitle returns the page's top heading, falling back to <title> with
// site suffixes stripped.
func extractTitle(doc *goquery.Document) string {
	if h1 := doc.Find("h1").First(); h1.Length() > 0 {
		if t := collapseWhitespace(h1.Text()); t != "" {
			return t
		}
	}
	title := collapseWhitespace(doc.Find("title").First().Text())
	for _, suffix := range titleSuffixes {
		title = strings.TrimSuffix(title, suffix)
	}
	return title
}

// findContent tries each content matcher in priority order.
func findContent(doc *goquery.Document) *goquery.Selection {
	for _, m := range contentMatchers {
		if sel := m.find(doc); sel != nil {
			return sel
		}
	}
	return nil
}

// removedTags contain no article content and are stripped entirely.
const removedTags = "style, script, noscript, svg, iframe, object, embed, canvas, map, audio, video, source, track, template"

var hiddenStyleRe = regexp.MustCompile(`(?i)display:\s*none`)

// cleanContent strips non-content markup in place: scripts, styles, HTML
// comments, and hidden elements.
func cleanContent(content *goquery.Selection) {
	content.Find(removedTags).Remove()

	content.Find("[style]").Each(func(_ int, sel *goquery.Selection) {
		if style, ok := sel.Attr("style"); ok && hiddenStyleRe.MatchString(style) {
			sel.Remove()
		}
	})

	removeComments(content)
}

// removeComments drops comment nodes, which goquery selectors cannot reach.
func removeComments(content *goquery.Selection) {
	for _, node := range content.Nodes {
		var walk func(n *html.Node)
		walk = func(n *html.Node) {
			child := n.FirstChild
			for child != nil {
				next := child.NextSibling
				if child.Type == html.CommentNode {
					n.RemoveChild(child)
				} else {
					walk(child)
				}
				child = next
			}
		}
		walk(node)
	}
}

var (
	promoClassRe   = regexp.MustCompile(`(?i)avia-button`)
	promoHrefRe    = regexp.MustCompile(`(?i)(/trial/|/demo/|/pricing/|/contact/|/request/|#form)`)
	promoHeadingRe = regexp.MustCompile(`(?i)^(ready to find out more|book a demo)`)
)

// removePromoBlocks strips marketing chrome that is not guide content: CTA
// button rows, demo/trial links styled as buttons, and promotional sections
// introduced by headings like "Ready to Find Out More?".
func removePromoBlocks(content *goquery.Selection) {
	content.Find("[class]").Each(func(_ int, sel *goquery.Selection) {
		if class, ok := sel.Attr("class"); ok && promoClassRe.MatchString(class) {
			sel.Remove()
		}
	})

	content.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !promoHrefRe.MatchString(href) {
			return
		}
		class, _ := sel.Attr("class")
		lower := strings.ToLower(class)
		if strings.Contains(lower, "button") || strings.Contains(lower, "cta") {
			sel.Remove()
		}
	})

	content.Find("h1, h2, h3, h4").Each(func(_ int, sel *goquery.Selection) {
		if promoHeadingRe.MatchString(collapseWhitespace(sel.Text())) {
			sel.NextUntil("h1, h2, h3, h4").Remove()
			sel.Remove()
		}
	})
}

// extractCrossReferences records every hyperlink in the content once,
// deduplicated by normalized target with the first occurrence's text
// winning. A reference is internal iff the resolver maps its target to a
// known article.
func extractCrossReferences(content *goquery.Selection, base *url.URL, resolver rmguide.TargetResolver) []rmguide.CrossReference {
	seen := make(map[string]struct{})
	var refs []rmguide.CrossReference

	content.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		text := collapseWhitespace(sel.Text())
		if href == "" || text == "" || isNonHTTPLink(href) {
			return
		}

		target := resolveURL(base, href)
		if target == "" {
			return
		}
		if _, ok := seen[target]; ok {
			return
		}
		seen[target] = struct{}{}

		ref := rmguide.CrossReference{
			Text: text,
			URL:  target,
		}
		if resolver != nil {
			if id, ok := resolver.ResolveArticle(target); ok {
				ref.Internal = true
				ref.TargetID = id
			}
		}
		refs = append(refs, ref)
	})

	return refs
}

// extractImages records images in the content, resolving lazy-loading
// placeholders through data-src attributes and picking up figure captions
// and the nearest preceding heading as context.
func extractImages(content *goquery.Selection, base *url.URL) []rmguide.ImageReference {
	seen := make(map[string]struct{})
	var images []rmguide.ImageReference

	// Context tracking: the text of the last heading seen before the image
	// in document order.
	lastHeading := ""
	content.Find("h2, h3, h4, img").Each(func(_ int, sel *goquery.Selection) {
		if goquery.NodeName(sel) != "img" {
			lastHeading = collapseWhitespace(sel.Text())
			return
		}

		src, _ := sel.Attr("src")
		if strings.HasPrefix(src, "data:") || src == "" {
			if ds, ok := sel.Attr("data-src"); ok {
				src = ds
			} else if ds, ok := sel.Attr("data-lazy-src"); ok {
				src = ds
			}
		}
		if src == "" || strings.HasPrefix(src, "data:") {
			return
		}

		resolved := resolveURL(base, src)
		if resolved == "" {
			return
		}
		if _, ok := seen[resolved]; ok {
			return
		}
		seen[resolved] = struct{}{}

		img := rmguide.ImageReference{
			URL:     resolved,
			Context: lastHeading,
		}
		img.AltText, _ = sel.Attr("alt")
		img.Title, _ = sel.Attr("title")
		if figure := sel.ParentsFiltered("figure").First(); figure.Length() > 0 {
			img.Caption = collapseWhitespace(figure.Find("figcaption").First().Text())
		}
		images = append(images, img)
	})

	return images
}

// headingLevel returns the numeric depth of an hN node name, or 0.
func headingLevel(name string) int {
	if len(name) == 2 && name[0] == 'h' && name[1] >= '1' && name[1] <= '6' {
		return int(name[1] - '0')
	}
	return 0
}

// extractSections walks the content's headings in document order. Each
// heading starts a Section whose body is all paragraph and list content
// until the next heading of equal-or-shallower depth. Sections are stored
// flat; nesting survives through Level.
func extractSections(content *goquery.Selection) []rmguide.Section {
	type block struct {
		level int // 0 for body content
		text  string
	}

	var blocks []block
	// Paragraphs and list items carry the body; list items nested under a
	// matched paragraph would double-count, but the guide's markup keeps
	// them siblings.
	content.Find("h2, h3, h4, p, li").Each(func(_ int, sel *goquery.Selection) {
		if sel.ChildrenFiltered("p").Length() > 0 {
			return
		}
		name := goquery.NodeName(sel)
		text := collapseWhitespace(sel.Text())
		if text == "" {
			return
		}
		blocks = append(blocks, block{level: headingLevel(name), text: text})
	})

	var sections []rmguide.Section
	for i, b := range blocks {
		if b.level == 0 {
			continue
		}
		var body []string
		for _, next := range blocks[i+1:] {
			if next.level != 0 && next.level <= b.level {
				break
			}
			if next.level == 0 {
				body = append(body, next.text)
			}
		}
		sections = append(sections, rmguide.Section{
			Heading: b.text,
			Level:   b.level,
			Content: strings.Join(body, "\n\n"),
		})
	}

	return sections
}
