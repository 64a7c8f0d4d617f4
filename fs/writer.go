// Package fs serializes an assembled guide to files on disk in the three
// supported output forms: full hierarchical JSON, self-contained JSONL
// records, and a consolidated human-readable markdown document.
package fs

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"rmguide"
)

// Output formats.
const (
	FormatJSON     = "json"
	FormatJSONL    = "jsonl"
	FormatMarkdown = "markdown"
)

// Filenames per format.
const (
	jsonFilename     = "guide.json"
	jsonlFilename    = "guide.jsonl"
	markdownFilename = "guide.md"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatJSON, FormatJSONL, FormatMarkdown}
}

// Writer writes guide serializations into a base directory, creating it if
// needed.
type Writer struct {
	baseDir string
}

// NewWriter creates a Writer rooted at baseDir.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// Write serializes the guide in the given format and returns the path of
// the written file.
func (w *Writer) Write(guide *rmguide.Guide, format string) (string, error) {
	switch format {
	case FormatJSON:
		return w.writeJSON(guide)
	case FormatJSONL:
		return w.writeJSONL(guide)
	case FormatMarkdown:
		return w.writeMarkdown(guide)
	default:
		return "", rmguide.Errorf(rmguide.EINVALID, "unsupported output format %q", format)
	}
}

func (w *Writer) create(name string) (*os.File, string, error) {
	if err := os.MkdirAll(w.baseDir, 0o755); err != nil {
		return nil, "", err
	}
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return nil, "", err
	}
	return f, path, nil
}

// writeJSON writes the full hierarchical structure as one JSON document.
func (w *Writer) writeJSON(guide *rmguide.Guide) (string, error) {
	f, path, err := w.create(jsonFilename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonGuide(guide)); err != nil {
		return "", err
	}
	return path, f.Close()
}

// jsonDocument mirrors Guide with derived aggregates included, since
// methods don't serialize.
type jsonDocument struct {
	Metadata       rmguide.Metadata `json:"metadata"`
	Chapters       []jsonChapter    `json:"chapters"`
	Glossary       *jsonGlossary    `json:"glossary,omitempty"`
	TotalArticles  int              `json:"totalArticles"`
	TotalWordCount int              `json:"totalWordCount"`
}

type jsonChapter struct {
	Number         int                `json:"number"`
	Title          string             `json:"title"`
	OverviewURL    string             `json:"overviewUrl"`
	Articles       []*rmguide.Article `json:"articles"`
	ArticleCount   int                `json:"articleCount"`
	TotalWordCount int                `json:"totalWordCount"`
}

type jsonGlossary struct {
	*rmguide.Glossary
	TermCount int `json:"termCount"`
}

func jsonGuide(guide *rmguide.Guide) jsonDocument {
	doc := jsonDocument{
		Metadata:       guide.Metadata,
		Chapters:       make([]jsonChapter, 0, len(guide.Chapters)),
		TotalArticles:  guide.TotalArticles(),
		TotalWordCount: guide.TotalWordCount(),
	}
	for _, ch := range guide.Chapters {
		doc.Chapters = append(doc.Chapters, jsonChapter{
			Number:         ch.Number,
			Title:          ch.Title,
			OverviewURL:    ch.OverviewURL,
			Articles:       ch.Articles,
			ArticleCount:   ch.ArticleCount(),
			TotalWordCount: ch.TotalWordCount(),
		})
	}
	if guide.Glossary != nil {
		doc.Glossary = &jsonGlossary{Glossary: guide.Glossary, TermCount: guide.Glossary.TermCount()}
	}
	return doc
}

// articleRecord is a self-contained JSONL record: one article with its
// parent guide and chapter context duplicated on, independently parseable
// without the other records. Raw HTML is never included in records.
type articleRecord struct {
	Type          string `json:"type"`
	GuideTitle    string `json:"guideTitle"`
	ChapterNumber int    `json:"chapterNumber"`
	ChapterTitle  string `json:"chapterTitle"`
	*rmguide.Article
}

// termRecord is a self-contained JSONL record for one glossary term.
type termRecord struct {
	Type       string `json:"type"`
	GuideTitle string `json:"guideTitle"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// writeJSONL writes one record per article plus one record per glossary
// term.
func (w *Writer) writeJSONL(guide *rmguide.Guide) (string, error) {
	f, path, err := w.create(jsonlFilename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	enc := json.NewEncoder(bw)

	for _, ch := range guide.Chapters {
		for _, art := range ch.Articles {
			stripped := *art
			stripped.RawHTML = ""
			rec := articleRecord{
				Type:          "article",
				GuideTitle:    guide.Metadata.Title,
				ChapterNumber: ch.Number,
				ChapterTitle:  ch.Title,
				Article:       &stripped,
			}
			if err := enc.Encode(rec); err != nil {
				return "", err
			}
		}
	}
	if guide.Glossary != nil {
		for _, term := range guide.Glossary.Terms {
			rec := termRecord{
				Type:       "glossary_term",
				GuideTitle: guide.Metadata.Title,
				Term:       term.Term,
				Definition: term.Definition,
			}
			if err := enc.Encode(rec); err != nil {
				return "", err
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return "", err
	}
	return path, f.Close()
}

// writeMarkdown writes the consolidated human-readable document: metadata
// header, table of contents, chapters with their articles in reading order,
// then the glossary.
func (w *Writer) writeMarkdown(guide *rmguide.Guide) (string, error) {
	f, path, err := w.create(markdownFilename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if _, err := bw.WriteString(FormatGuide(guide)); err != nil {
		return "", err
	}
	if err := bw.Flush(); err != nil {
		return "", err
	}
	return path, f.Close()
}

// FormatGuide renders the consolidated markdown document.
func FormatGuide(guide *rmguide.Guide) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", guide.Metadata.Title)
	fmt.Fprintf(&b, "*Published by %s*\n", guide.Metadata.Publisher)
	fmt.Fprintf(&b, "*Generated on %s*\n\n---\n\n", guide.Metadata.GeneratedAt.Format("2006-01-02"))

	b.WriteString("## Table of Contents\n\n")
	for _, ch := range guide.Chapters {
		fmt.Fprintf(&b, "- **Chapter %d**: %s\n", ch.Number, ch.Title)
		for _, art := range ch.Articles {
			if art.ArticleNumber > 0 {
				fmt.Fprintf(&b, "  - %s\n", art.Title)
			}
		}
	}
	b.WriteString("\n---\n\n")

	for _, ch := range guide.Chapters {
		fmt.Fprintf(&b, "# Chapter %d: %s\n\n", ch.Number, ch.Title)
		for _, art := range ch.Articles {
			if art.ArticleNumber == 0 {
				b.WriteString("## Overview\n\n")
			} else {
				fmt.Fprintf(&b, "## %d. %s\n\n", art.ArticleNumber, art.Title)
			}
			fmt.Fprintf(&b, "*Source: %s*\n\n", art.URL)
			if art.Body != "" {
				b.WriteString(art.Body)
				b.WriteString("\n\n")
			}
			b.WriteString("---\n\n")
		}
	}

	if guide.Glossary != nil {
		b.WriteString("# Glossary\n\n")
		for _, term := range guide.Glossary.Terms {
			fmt.Fprintf(&b, "**%s**: %s\n\n", term.Term, term.Definition)
		}
	}

	return b.String()
}
