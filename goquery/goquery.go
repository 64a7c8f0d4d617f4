// Package goquery implements rmguide.Extractor on top of goquery CSS
// selection. Page "shape" decisions (which content container holds the
// article, which glossary markup pattern is in use) are expressed as ordered
// lists of pure matcher functions tried in priority order, so no
// page-specific flags leak through the extractor.
package goquery

import (
	"net/url"
	"strings"
)

// isNonHTTPLink reports whether the href is a fragment, javascript:, mailto:
// or similar non-navigable link.
func isNonHTTPLink(href string) bool {
	if strings.HasPrefix(href, "#") {
		return true
	}
	for _, prefix := range []string{"javascript:", "mailto:", "tel:", "data:"} {
		if strings.HasPrefix(strings.ToLower(href), prefix) {
			return true
		}
	}
	return false
}

// resolveURL resolves href against base and returns the normalized absolute
// URL with any fragment stripped. Returns "" for unparseable hrefs.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	return resolved.String()
}

// collapseWhitespace trims and collapses runs of whitespace to single
// spaces, normalizing text pulled out of HTML.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
