package rmguide

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// ContentType distinguishes the kinds of pages in the guide.
type ContentType string

// Content type constants for Article.ContentType.
const (
	ContentTypeArticle  ContentType = "article"
	ContentTypeOverview ContentType = "chapter_overview"
)

// ArticleID returns the canonical identifier for an article, derived from
// its chapter number and position within the chapter (e.g. "ch1-art3").
// Position 0 is the chapter's own overview page.
func ArticleID(chapter, article int) string {
	return fmt.Sprintf("ch%d-art%d", chapter, article)
}

// Article represents a single scraped page within a chapter.
type Article struct {
	ID            string      `json:"id"`
	ChapterNumber int         `json:"chapterNumber"`
	ArticleNumber int         `json:"articleNumber"`
	Title         string      `json:"title"`
	URL           string      `json:"url"`
	ContentType   ContentType `json:"contentType"`

	// Body is the full article content in markdown.
	Body string `json:"body"`

	// RawHTML is only retained when the run explicitly requests it.
	RawHTML string `json:"rawHtml,omitempty"`

	Sections        []Section        `json:"sections"`
	CrossReferences []CrossReference `json:"crossReferences"`
	KeyConcepts     []string         `json:"keyConcepts"`
	Images          []ImageReference `json:"images"`

	// WordCount and CharCount are always derived from Body via
	// RecomputeCounts; they are never set independently.
	WordCount int `json:"wordCount"`
	CharCount int `json:"charCount"`

	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// RecomputeCounts derives WordCount and CharCount from the article body.
// Recomputing is idempotent: counts depend only on Body.
func (a *Article) RecomputeCounts() {
	a.WordCount = len(strings.Fields(a.Body))
	a.CharCount = utf8.RuneCountInString(a.Body)
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.ID == "" {
		return Errorf(EINVALID, "article ID required")
	}
	if a.URL == "" {
		return Errorf(EINVALID, "article source URL required")
	}
	if a.ChapterNumber < 1 {
		return Errorf(EINVALID, "article chapter number must be positive")
	}
	return nil
}

// Section represents a heading-delimited block within an article. Sections
// are stored as a flat ordered list; nesting is preserved through Level.
type Section struct {
	Heading string `json:"heading"`
	Level   int    `json:"level"`
	Content string `json:"content"`
}

// CrossReference represents a hyperlink found inside an article body.
// A reference is internal iff its normalized target is under the guide's
// own root domain and resolves to a known article; TargetID carries the
// article identifier in that case.
type CrossReference struct {
	Text     string `json:"text"`
	URL      string `json:"url"`
	Internal bool   `json:"internal"`
	TargetID string `json:"targetId,omitempty"`
}

// ImageReference represents an image embedded in an article.
type ImageReference struct {
	URL     string `json:"url"`
	AltText string `json:"altText,omitempty"`
	Title   string `json:"title,omitempty"`
	Caption string `json:"caption,omitempty"`
	Context string `json:"context,omitempty"`
}
