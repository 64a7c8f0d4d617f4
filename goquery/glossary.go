package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"rmguide"
)

// glossaryMatcher extracts term/definition pairs for one markup shape.
// Matchers return nil when the shape is absent.
type glossaryMatcher struct {
	name string
	find func(content *goquery.Selection) []rmguide.GlossaryTerm
}

// glossaryMatchers is the fixed priority order for glossary markup: a
// definition list, headings each followed by a definition paragraph, and
// bold terms inline with their definitions. The first matcher yielding at
// least one term wins.
var glossaryMatchers = []glossaryMatcher{
	{"definition-list", matchDefinitionList},
	{"heading-paragraph", matchHeadingParagraph},
	{"bold-inline", matchBoldInline},
}

// ExtractGlossary extracts term/definition pairs from the glossary page.
// Terms are deduplicated case-insensitively; the first occurrence wins.
func (e *Extractor) ExtractGlossary(rawHTML string) ([]rmguide.GlossaryTerm, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, rmguide.Errorf(rmguide.EINVALID, "failed to parse HTML: %v", err)
	}

	content := findContent(doc)
	if content == nil {
		return nil, nil
	}
	cleanContent(content)
	removePromoBlocks(content)

	for _, m := range glossaryMatchers {
		if terms := m.find(content); len(terms) > 0 {
			return dedupeTerms(terms), nil
		}
	}
	return nil, nil
}

// matchDefinitionList pairs <dt> terms with their <dd> definitions.
func matchDefinitionList(content *goquery.Selection) []rmguide.GlossaryTerm {
	var terms []rmguide.GlossaryTerm
	content.Find("dl").Each(func(_ int, dl *goquery.Selection) {
		dts := dl.Find("dt")
		dds := dl.Find("dd")
		n := dts.Length()
		if dds.Length() < n {
			n = dds.Length()
		}
		for i := 0; i < n; i++ {
			term := collapseWhitespace(dts.Eq(i).Text())
			def := collapseWhitespace(dds.Eq(i).Text())
			if term != "" && def != "" {
				terms = append(terms, rmguide.GlossaryTerm{Term: term, Definition: def})
			}
		}
	})
	return terms
}

// matchHeadingParagraph pairs each h2/h3/h4 with the first following
// paragraph.
func matchHeadingParagraph(content *goquery.Selection) []rmguide.GlossaryTerm {
	var terms []rmguide.GlossaryTerm
	currentTerm := ""
	content.Find("h2, h3, h4, p").Each(func(_ int, sel *goquery.Selection) {
		if headingLevel(goquery.NodeName(sel)) > 0 {
			currentTerm = collapseWhitespace(sel.Text())
			return
		}
		if currentTerm == "" {
			return
		}
		def := collapseWhitespace(sel.Text())
		if def != "" {
			terms = append(terms, rmguide.GlossaryTerm{Term: currentTerm, Definition: def})
			currentTerm = ""
		}
	})
	return terms
}

var leadingPunctRe = regexp.MustCompile(`^[:\s\-–—]+`)

// matchBoldInline pairs a paragraph's leading <strong>/<b> term with the
// remaining paragraph text.
func matchBoldInline(content *goquery.Selection) []rmguide.GlossaryTerm {
	var terms []rmguide.GlossaryTerm
	content.Find("p").Each(func(_ int, p *goquery.Selection) {
		bold := p.Find("strong, b").First()
		if bold.Length() == 0 {
			return
		}
		term := collapseWhitespace(bold.Text())
		full := collapseWhitespace(p.Text())
		def := strings.TrimPrefix(full, term)
		def = leadingPunctRe.ReplaceAllString(def, "")
		if term != "" && def != "" {
			terms = append(terms, rmguide.GlossaryTerm{Term: term, Definition: def})
		}
	})
	return terms
}

// dedupeTerms enforces case-insensitive term uniqueness, first wins.
func dedupeTerms(terms []rmguide.GlossaryTerm) []rmguide.GlossaryTerm {
	seen := make(map[string]struct{}, len(terms))
	out := terms[:0]
	for _, t := range terms {
		key := strings.ToLower(t.Term)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}
