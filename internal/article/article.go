// Package article turns raw feed items into normalized, classified news
// records ready for JSON output.
package article

import (
	"errors"
	"strings"
	"time"

	"github.com/hvacintel/newsfetch/internal/feed"
)

var (
	ErrNoTitle   = errors.New("article has no title")
	ErrNoContent = errors.New("article has no content")
)

const defaultSource = "Unknown Source"

// Article is the output record. Field names are part of the downstream
// contract, don't rename the JSON tags.
type Article struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Summary     string   `json:"summary"`
	Source      string   `json:"source"`
	Category    string   `json:"category"`
	Industry    string   `json:"industry"`
	URL         string   `json:"url"`
	PublishedAt string   `json:"publishedAt"`
	Tags        []string `json:"tags"`
}

// Format assembles one Article from one raw feed item. industryHint, when
// non-empty, is stamped directly instead of re-scoring the text (used when
// terms are grouped by industry). Items without a title or with no usable
// description are rejected; the caller drops them and moves on.
func Format(item feed.RawItem, industryHint string) (Article, error) {
	title := strings.TrimSpace(item.Title)
	if title == "" {
		return Article{}, ErrNoTitle
	}

	content := NormalizeText(item.Description)
	if content == "" {
		return Article{}, ErrNoContent
	}

	source := strings.TrimSpace(item.Source)
	if source == "" {
		source = defaultSource
	}

	industry := industryHint
	if industry == "" {
		industry = ClassifyIndustry(title, content)
	}

	return Article{
		Title:       title,
		Content:     content,
		Summary:     Summarize(content),
		Source:      source,
		Category:    ClassifyCategory(title, content),
		Industry:    industry,
		URL:         item.URL,
		PublishedAt: ParseDate(item.Published).Format(time.RFC3339),
		Tags:        ExtractTags(title, content),
	}, nil
}
