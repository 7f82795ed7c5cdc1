package feed

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/hvacintel/newsfetch/internal/cache"
	"github.com/hvacintel/newsfetch/internal/logger"
	"github.com/hvacintel/newsfetch/internal/retry"
)

var ErrBadStatus = errors.New("unexpected HTTP status")

// rssDocument mirrors the Google News RSS payload. The item-level
// <source url="...">Publisher</source> element carries the publisher,
// which is the whole reason this backend parses the XML itself.
type rssDocument struct {
	XMLName xml.Name   `xml:"rss"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title string    `xml:"title"`
	Items []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string        `xml:"title"`
	Link        string        `xml:"link"`
	Description string        `xml:"description"`
	PubDate     string        `xml:"pubDate"`
	Source      rssItemSource `xml:"source"`
	GUID        string        `xml:"guid"`
}

type rssItemSource struct {
	URL  string `xml:"url,attr"`
	Text string `xml:",chardata"`
}

const responseTTL = 30 * time.Minute

// GNewsSource is a search-style client for the Google News RSS endpoint.
// Responses are cached per query for the run, so a term appearing under
// two industry groups is fetched once. Fetch errors are ordinarily
// run-fatal (see fetcher.PolicyFail).
type GNewsSource struct {
	client *resty.Client
	cache  *cache.Cache
	opts   Options
}

func NewGNewsSource(opts Options) *GNewsSource {
	opts.applyDefaults()

	client := resty.New()
	client.SetTimeout(opts.Timeout)
	client.SetHeader("User-Agent", userAgent)

	return &GNewsSource{
		client: client,
		cache:  cache.New(),
		opts:   opts,
	}
}

func (s *GNewsSource) Search(ctx context.Context, term string) ([]RawItem, error) {
	key := cache.Key("search", term, s.opts.Language, s.opts.Country)
	return s.fetch(ctx, s.opts.searchURL(term), key)
}

func (s *GNewsSource) TopItems(ctx context.Context) ([]RawItem, error) {
	key := cache.Key("top", s.opts.Language, s.opts.Country)
	return s.fetch(ctx, s.opts.topURL(), key)
}

func (s *GNewsSource) fetch(ctx context.Context, feedURL, cacheKey string) ([]RawItem, error) {
	if cached, ok := s.cache.Get(cacheKey); ok {
		logger.Debug("response cache hit", "url", feedURL)
		return cached.([]RawItem), nil
	}

	if err := s.opts.Limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var doc rssDocument
	err := retry.WithRetry(ctx, s.opts.Retry, func() error {
		s.opts.Metrics.IncrementRequestsMade()

		resp, err := s.client.R().SetContext(ctx).Get(feedURL)
		if err != nil {
			return fmt.Errorf("fetch feed: %w", err)
		}
		if resp.StatusCode() != http.StatusOK {
			return fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode())
		}

		doc = rssDocument{}
		if err := xml.Unmarshal(resp.Body(), &doc); err != nil {
			return fmt.Errorf("parse feed XML: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	items := make([]RawItem, 0, len(doc.Channel.Items))
	for _, item := range doc.Channel.Items {
		items = append(items, fromXMLItem(item))
		if s.opts.MaxResults > 0 && len(items) >= s.opts.MaxResults {
			break
		}
	}

	s.cache.Set(cacheKey, items, responseTTL)
	logger.Debug("feed fetched", "url", feedURL, "items", len(items))
	return items, nil
}

func fromXMLItem(item rssItem) RawItem {
	source := item.Source.Text
	if source == "" && item.Source.URL != "" {
		if u, err := url.Parse(item.Source.URL); err == nil {
			source = u.Host
		}
	}

	return RawItem{
		Title:       item.Title,
		Description: item.Description,
		URL:         item.Link,
		Source:      source,
		Published:   item.PubDate,
	}
}
