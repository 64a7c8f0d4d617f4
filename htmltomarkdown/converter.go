// Package htmltomarkdown implements rmguide.Converter using the
// html-to-markdown library.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"

	"rmguide"
)

// Ensure Converter implements rmguide.Converter at compile time.
var _ rmguide.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert clean content HTML to
// Markdown, preserving heading structure, lists, emphasis, links, and
// tables.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

var excessBlankLinesRe = regexp.MustCompile(`\n{3,}`)

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", rmguide.Errorf(rmguide.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	result = excessBlankLinesRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result), nil
}
