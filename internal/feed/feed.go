// Package feed pulls raw news items from a remote news source. Two
// backends are provided: an RSS feed client (gofeed) and a search-style
// client speaking the Google News RSS protocol directly. The rest of the
// pipeline only ever sees RawItem.
package feed

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/hvacintel/newsfetch/internal/metrics"
	"github.com/hvacintel/newsfetch/internal/ratelimit"
	"github.com/hvacintel/newsfetch/internal/retry"
)

// RawItem is an unprocessed article record straight from the source.
type RawItem struct {
	Title       string
	Description string // may contain HTML markup
	URL         string
	Source      string // publisher display name, may be empty
	Published   string // source-defined date string, may be empty
}

// Source is what the fetch pipeline runs against.
type Source interface {
	// Search returns the items matching one search term.
	Search(ctx context.Context, term string) ([]RawItem, error)
	// TopItems returns the current top headlines.
	TopItems(ctx context.Context) ([]RawItem, error)
}

const (
	defaultBaseURL = "https://news.google.com/rss"
	defaultTimeout = 10 * time.Second

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// Options configure a concrete source. The zero value works: defaults
// are filled in by the constructors.
type Options struct {
	Language   string // hl parameter, e.g. "en"
	Country    string // gl parameter, e.g. "US"
	Period     string // recency window appended to queries, e.g. "7d"
	Timeout    time.Duration
	MaxResults int // per-query item cap, 0 = unlimited

	Retry   retry.Config
	Limiter *ratelimit.Limiter
	Metrics *metrics.Metrics

	// BaseURL overrides the Google News endpoint, mainly for tests.
	BaseURL string
}

func (o *Options) applyDefaults() {
	if o.BaseURL == "" {
		o.BaseURL = defaultBaseURL
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.Retry.MaxAttempts <= 0 {
		o.Retry.MaxAttempts = 1
	}
	if o.Limiter == nil {
		o.Limiter = ratelimit.New(0, 0)
	}
	if o.Metrics == nil {
		o.Metrics = metrics.New()
	}
}

// searchURL builds the RSS search URL for one term, e.g.
// https://news.google.com/rss/search?q=heat+pump+when%3A7d&hl=en&gl=US&ceid=US:en
func (o *Options) searchURL(term string) string {
	q := term
	if o.Period != "" {
		q += " when:" + o.Period
	}

	v := url.Values{}
	v.Set("q", q)
	o.addLocale(v)

	return o.BaseURL + "/search?" + v.Encode()
}

// topURL builds the top-headlines feed URL.
func (o *Options) topURL() string {
	v := url.Values{}
	o.addLocale(v)

	if len(v) == 0 {
		return o.BaseURL
	}
	return o.BaseURL + "?" + v.Encode()
}

func (o *Options) addLocale(v url.Values) {
	if o.Language != "" {
		v.Set("hl", o.Language)
	}
	if o.Country != "" {
		v.Set("gl", o.Country)
		// ceid wants the bare language code: en-US becomes en
		v.Set("ceid", o.Country+":"+strings.Split(o.Language, "-")[0])
	}
}
