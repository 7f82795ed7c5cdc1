package article

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// NormalizeText strips markup from a raw description and decodes HTML
// entities, leaving plain text. Feed descriptions routinely arrive as
// HTML fragments ("<a href=...>Title</a>&nbsp;<font>...</font>").
func NormalizeText(raw string) string {
	if raw == "" {
		return ""
	}

	// goquery handles nesting and entities in one pass; fall back to
	// plain tag-stripping when parsing fails or eats everything.
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw)); err == nil {
		if text := strings.TrimSpace(doc.Text()); text != "" {
			return text
		}
	}

	stripped := htmlTagPattern.ReplaceAllString(raw, "")
	return strings.TrimSpace(html.UnescapeString(stripped))
}
