package rmguide

import "time"

// Metadata describes a completed scrape of the guide.
type Metadata struct {
	Title         string    `json:"title"`
	Publisher     string    `json:"publisher"`
	BaseURL       string    `json:"baseUrl"`
	ScrapeID      string    `json:"scrapeId"`
	GeneratedAt   time.Time `json:"generatedAt"`
	TotalChapters int       `json:"totalChapters"`
}

// Chapter represents one chapter of the guide with its articles in
// site-map order.
type Chapter struct {
	Number      int        `json:"number"`
	Title       string     `json:"title"`
	OverviewURL string     `json:"overviewUrl"`
	Articles    []*Article `json:"articles"`
}

// ArticleCount returns the number of articles in the chapter.
func (c *Chapter) ArticleCount() int {
	return len(c.Articles)
}

// TotalWordCount returns the sum of word counts across the chapter's articles.
func (c *Chapter) TotalWordCount() int {
	var n int
	for _, a := range c.Articles {
		n += a.WordCount
	}
	return n
}

// Guide is the root of the assembled document tree. It is owned exclusively
// by the assembler until handed to serializers and is never mutated after
// assembly completes. Chapter order always matches site-map order.
type Guide struct {
	Metadata Metadata   `json:"metadata"`
	Chapters []*Chapter `json:"chapters"`
	Glossary *Glossary  `json:"glossary,omitempty"`
}

// TotalArticles returns the number of articles across all chapters.
func (g *Guide) TotalArticles() int {
	var n int
	for _, c := range g.Chapters {
		n += c.ArticleCount()
	}
	return n
}

// TotalWordCount returns the number of words across the entire guide.
func (g *Guide) TotalWordCount() int {
	var n int
	for _, c := range g.Chapters {
		n += c.TotalWordCount()
	}
	return n
}

// Validate checks tree-wide invariants: ascending unique chapter numbers and
// unique article identifiers across the whole tree.
func (g *Guide) Validate() error {
	seenIDs := make(map[string]struct{})
	lastChapter := 0
	for _, c := range g.Chapters {
		if c.Number <= lastChapter {
			return Errorf(EINVALID, "chapter %d out of order", c.Number)
		}
		lastChapter = c.Number
		for _, a := range c.Articles {
			if err := a.Validate(); err != nil {
				return err
			}
			if _, ok := seenIDs[a.ID]; ok {
				return Errorf(EINVALID, "duplicate article ID %q", a.ID)
			}
			seenIDs[a.ID] = struct{}{}
		}
	}
	if g.Glossary != nil {
		if err := g.Glossary.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Failure records a unit of work that could not be completed. Per-unit
// failures are absorbed at the unit boundary and surfaced alongside the
// assembled guide; they never abort a run on their own.
type Failure struct {
	URL           string `json:"url"`
	ArticleID     string `json:"articleId,omitempty"`
	ChapterNumber int    `json:"chapterNumber,omitempty"`
	Err           error  `json:"-"`
	Reason        string `json:"reason"`
}
