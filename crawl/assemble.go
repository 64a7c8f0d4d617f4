package crawl

import (
	"time"

	"github.com/google/uuid"

	"rmguide"
)

// Assemble folds completed results into the final document tree. It is pure
// with respect to the inputs: it never re-fetches and never mutates article
// or glossary content. Chapter and article order follow the resolved site
// map; failed units are simply absent. The articles slice is indexed by
// chapter/article position and may contain nils for failed units.
func Assemble(site *rmguide.SiteMap, articles [][]*rmguide.Article, glossary *rmguide.Glossary) *rmguide.Guide {
	guide := &rmguide.Guide{
		Metadata: rmguide.Metadata{
			Title:         site.Title,
			Publisher:     site.Publisher,
			BaseURL:       site.BaseURL,
			ScrapeID:      uuid.NewString(),
			GeneratedAt:   time.Now().UTC(),
			TotalChapters: len(site.Chapters),
		},
		Chapters: make([]*rmguide.Chapter, 0, len(site.Chapters)),
		Glossary: glossary,
	}

	for i, ch := range site.Chapters {
		chapter := &rmguide.Chapter{
			Number:      ch.Number,
			Title:       ch.Title,
			OverviewURL: site.OverviewURL(ch),
		}
		for _, art := range articles[i] {
			if art == nil {
				continue
			}
			chapter.Articles = append(chapter.Articles, art)
		}
		guide.Chapters = append(guide.Chapters, chapter)
	}

	return guide
}
