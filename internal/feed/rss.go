package feed

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/hvacintel/newsfetch/internal/logger"
	"github.com/hvacintel/newsfetch/internal/retry"
)

// RSSSource fetches and parses news feeds with gofeed. Fetch errors are
// ordinarily per-term skippable (see fetcher.PolicySkip).
type RSSSource struct {
	parser *gofeed.Parser
	opts   Options
}

func NewRSSSource(opts Options) *RSSSource {
	opts.applyDefaults()

	parser := gofeed.NewParser()
	parser.UserAgent = userAgent
	parser.Client = &http.Client{Timeout: opts.Timeout}

	return &RSSSource{parser: parser, opts: opts}
}

func (s *RSSSource) Search(ctx context.Context, term string) ([]RawItem, error) {
	return s.fetch(ctx, s.opts.searchURL(term))
}

func (s *RSSSource) TopItems(ctx context.Context) ([]RawItem, error) {
	return s.fetch(ctx, s.opts.topURL())
}

func (s *RSSSource) fetch(ctx context.Context, feedURL string) ([]RawItem, error) {
	if err := s.opts.Limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var parsed *gofeed.Feed
	err := retry.WithRetry(ctx, s.opts.Retry, func() error {
		s.opts.Metrics.IncrementRequestsMade()

		f, err := s.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			return fmt.Errorf("parse feed: %w", err)
		}
		parsed = f
		return nil
	})
	if err != nil {
		return nil, err
	}

	items := make([]RawItem, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		items = append(items, fromFeedItem(item))
		if s.opts.MaxResults > 0 && len(items) >= s.opts.MaxResults {
			break
		}
	}

	logger.Debug("feed fetched", "url", feedURL, "items", len(items))
	return items, nil
}

func fromFeedItem(item *gofeed.Item) RawItem {
	description := item.Description
	if description == "" {
		description = item.Content
	}

	return RawItem{
		Title:       item.Title,
		Description: description,
		URL:         item.Link,
		Source:      publisherFromTitle(item.Title),
		Published:   item.Published,
	}
}

// publisherFromTitle pulls the publisher out of a Google News style
// headline ("Heat pump sales surge - HVAC Weekly"). gofeed does not
// surface the item-level <source> element, but the title suffix carries
// the same name.
func publisherFromTitle(title string) string {
	if i := strings.LastIndex(title, " - "); i >= 0 {
		return strings.TrimSpace(title[i+3:])
	}
	return ""
}
