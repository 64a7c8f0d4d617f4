package rmguide

import (
	"strings"
	"time"
)

// GlossaryTerm represents a single term/definition pair.
type GlossaryTerm struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// Glossary represents the guide's glossary page.
type Glossary struct {
	URL       string         `json:"url"`
	Terms     []GlossaryTerm `json:"terms"`
	FetchedAt time.Time      `json:"fetchedAt"`
}

// TermCount returns the number of terms in the glossary.
func (g *Glossary) TermCount() int {
	return len(g.Terms)
}

// Validate returns an error if the glossary contains invalid fields.
// Terms must be unique case-insensitively.
func (g *Glossary) Validate() error {
	if g.URL == "" {
		return Errorf(EINVALID, "glossary source URL required")
	}
	seen := make(map[string]struct{}, len(g.Terms))
	for _, t := range g.Terms {
		key := strings.ToLower(t.Term)
		if _, ok := seen[key]; ok {
			return Errorf(EINVALID, "duplicate glossary term %q", t.Term)
		}
		seen[key] = struct{}{}
	}
	return nil
}
