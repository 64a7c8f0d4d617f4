package goquery

import (
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Key-concept heuristic. Deterministic and stable across runs on the same
// input:
//
//  1. Items of a list immediately following a heading containing
//     "key concept" (explicit markup).
//  2. Emphasized terms (strong/b/em) between 3 and 50 characters.
//  3. Capitalized multi-word phrases from the article title.
//  4. Only when 1–3 yield nothing: the most frequent capitalized multi-word
//     phrases in the body text, ranked by count then alphabetically.
//
// Candidates are stop-word filtered, deduplicated case-insensitively (first
// spelling wins), sorted alphabetically, and capped at maxKeyConcepts.
const (
	minConceptLen  = 3
	maxConceptLen  = 50
	maxKeyConcepts = 20
)

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "is": {}, "are": {},
	"was": {}, "were": {}, "be": {}, "been": {}, "being": {}, "have": {},
	"has": {}, "had": {}, "do": {}, "does": {}, "did": {}, "will": {},
	"would": {}, "could": {}, "should": {}, "may": {}, "might": {},
	"must": {}, "shall": {}, "can": {}, "how": {}, "what": {}, "why": {},
	"when": {}, "where": {}, "who": {}, "which": {}, "that": {}, "this": {},
	"these": {}, "those": {}, "it": {}, "its": {}, "you": {}, "your": {},
	"we": {}, "our": {}, "they": {}, "their": {}, "with": {}, "from": {},
	"by": {}, "about": {}, "into": {}, "through": {}, "during": {},
	"before": {}, "after": {}, "between": {}, "under": {}, "then": {},
	"once": {},
}

var capitalizedPhraseRe = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)+\b`)
var capitalizedWordRe = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)
var keyConceptHeadingRe = regexp.MustCompile(`(?i)key concepts?`)

// extractKeyConcepts applies the documented heuristic to the cleaned
// content region.
func extractKeyConcepts(content *goquery.Selection, title string) []string {
	seen := make(map[string]struct{})
	var concepts []string
	add := func(s string) {
		s = collapseWhitespace(s)
		n := len([]rune(s))
		if n < minConceptLen || n > maxConceptLen {
			return
		}
		key := strings.ToLower(s)
		if _, stop := stopWords[key]; stop {
			return
		}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		concepts = append(concepts, s)
	}

	// Explicit "key concepts" list markup.
	content.Find("h2, h3, h4").Each(func(_ int, sel *goquery.Selection) {
		if !keyConceptHeadingRe.MatchString(sel.Text()) {
			return
		}
		sel.NextAllFiltered("ul, ol").First().Find("li").Each(func(_ int, li *goquery.Selection) {
			add(li.Text())
		})
	})

	// Emphasized terms.
	content.Find("strong, b, em").Each(func(_ int, sel *goquery.Selection) {
		add(sel.Text())
	})

	// Capitalized phrases from the title.
	for _, phrase := range capitalizedWordRe.FindAllString(title, -1) {
		add(phrase)
	}

	// Fallback: frequent capitalized multi-word phrases in the body.
	if len(concepts) == 0 {
		counts := make(map[string]int)
		for _, phrase := range capitalizedPhraseRe.FindAllString(content.Text(), -1) {
			counts[phrase]++
		}
		phrases := make([]string, 0, len(counts))
		for p := range counts {
			phrases = append(phrases, p)
		}
		sort.Slice(phrases, func(i, j int) bool {
			if counts[phrases[i]] != counts[phrases[j]] {
				return counts[phrases[i]] > counts[phrases[j]]
			}
			return phrases[i] < phrases[j]
		})
		for _, p := range phrases {
			add(p)
		}
	}

	sort.Strings(concepts)
	if len(concepts) > maxKeyConcepts {
		concepts = concepts[:maxKeyConcepts]
	}
	return concepts
}
