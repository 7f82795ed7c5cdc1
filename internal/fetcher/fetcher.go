// Package fetcher drives the end-to-end run: query each search term,
// dedupe by title, format items into articles and enforce the caps.
package fetcher

import (
	"context"
	"fmt"
	"strings"

	"github.com/hvacintel/newsfetch/internal/article"
	"github.com/hvacintel/newsfetch/internal/feed"
	"github.com/hvacintel/newsfetch/internal/logger"
	"github.com/hvacintel/newsfetch/internal/metrics"
)

// Fetch error policies.
const (
	// PolicySkip logs a failed term and proceeds with the rest.
	PolicySkip = "skip"
	// PolicyFail aborts the whole run on the first failed term.
	PolicyFail = "fail"
)

// Industry stamping modes for grouped runs.
const (
	// IndustryFromGroup stamps the term group's label on each article.
	IndustryFromGroup = "group"
	// IndustryFromScore re-derives the industry by keyword scoring.
	IndustryFromScore = "score"
)

// TermGroup binds an industry label to its search terms.
type TermGroup struct {
	Industry string
	Terms    []string
}

// Config carries the run policies. Zero values select skip + group.
type Config struct {
	ErrorPolicy  string
	IndustryMode string
	SeenTitles   []string // dedupe preseed, usually from the history file
	Metrics      *metrics.Metrics
}

type Fetcher struct {
	source       feed.Source
	errorPolicy  string
	industryMode string
	seen         map[string]struct{}
	m            *metrics.Metrics
}

func New(source feed.Source, cfg Config) *Fetcher {
	if cfg.ErrorPolicy == "" {
		cfg.ErrorPolicy = PolicySkip
	}
	if cfg.IndustryMode == "" {
		cfg.IndustryMode = IndustryFromGroup
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.New()
	}

	seen := make(map[string]struct{}, len(cfg.SeenTitles))
	for _, title := range cfg.SeenTitles {
		if title = strings.TrimSpace(title); title != "" {
			seen[title] = struct{}{}
		}
	}

	return &Fetcher{
		source:       source,
		errorPolicy:  cfg.ErrorPolicy,
		industryMode: cfg.IndustryMode,
		seen:         seen,
		m:            cfg.Metrics,
	}
}

// FetchFlat queries the flat term list in order and caps the total
// article count. Articles come back in fetch order, never re-sorted.
func (f *Fetcher) FetchFlat(ctx context.Context, terms []string, maxArticles int) ([]article.Article, error) {
	articles := make([]article.Article, 0, maxArticles)

	for _, term := range terms {
		if len(articles) >= maxArticles {
			break
		}

		items, err := f.query(ctx, term)
		if err != nil {
			if f.errorPolicy == PolicyFail {
				return nil, fmt.Errorf("fetch %q: %w", term, err)
			}
			continue
		}

		for _, item := range items {
			if len(articles) >= maxArticles {
				break
			}
			if a, ok := f.assemble(item, ""); ok {
				articles = append(articles, a)
			}
		}
	}

	return articles, nil
}

// FetchGrouped queries industry-grouped terms with a separate cap per
// industry. Once a group's cap is reached its remaining terms are not
// fetched. Group order, then fetch order, is preserved in the output.
func (f *Fetcher) FetchGrouped(ctx context.Context, groups []TermGroup, perIndustry int) ([]article.Article, error) {
	articles := make([]article.Article, 0, perIndustry*len(groups))

	for _, group := range groups {
		count := 0

		for _, term := range group.Terms {
			if count >= perIndustry {
				break
			}

			items, err := f.query(ctx, term)
			if err != nil {
				if f.errorPolicy == PolicyFail {
					return nil, fmt.Errorf("fetch %q for %s: %w", term, group.Industry, err)
				}
				continue
			}

			hint := ""
			if f.industryMode == IndustryFromGroup {
				hint = group.Industry
			}

			for _, item := range items {
				if count >= perIndustry {
					break
				}
				if a, ok := f.assemble(item, hint); ok {
					articles = append(articles, a)
					count++
				}
			}
		}
	}

	return articles, nil
}

// FetchTop runs the current top headlines through the same pipeline.
// With only one query to make, a fetch failure here is always an error.
func (f *Fetcher) FetchTop(ctx context.Context, maxArticles int) ([]article.Article, error) {
	items, err := f.source.TopItems(ctx)
	if err != nil {
		f.m.IncrementFetchFailures()
		return nil, fmt.Errorf("fetch top headlines: %w", err)
	}
	f.m.AddItemsFetched(len(items))

	articles := make([]article.Article, 0, maxArticles)
	for _, item := range items {
		if len(articles) >= maxArticles {
			break
		}
		if a, ok := f.assemble(item, ""); ok {
			articles = append(articles, a)
		}
	}

	return articles, nil
}

func (f *Fetcher) query(ctx context.Context, term string) ([]feed.RawItem, error) {
	f.m.IncrementTermsQueried()

	items, err := f.source.Search(ctx, term)
	if err != nil {
		f.m.IncrementFetchFailures()
		logger.Warn("term fetch failed", "term", term, "error", err)
		return nil, err
	}

	f.m.AddItemsFetched(len(items))
	logger.Debug("term fetched", "term", term, "items", len(items))
	return items, nil
}

// assemble dedupes and formats one raw item. A claimed title stays
// claimed even when formatting then drops the item, so a later duplicate
// can't resurrect it. The bool reports whether an article was produced.
func (f *Fetcher) assemble(item feed.RawItem, industryHint string) (article.Article, bool) {
	title := strings.TrimSpace(item.Title)
	if title == "" {
		f.m.IncrementItemsDropped()
		return article.Article{}, false
	}

	if _, dup := f.seen[title]; dup {
		f.m.IncrementDuplicatesSkipped()
		return article.Article{}, false
	}
	f.seen[title] = struct{}{}

	a, err := article.Format(item, industryHint)
	if err != nil {
		f.m.IncrementItemsDropped()
		logger.Warn("item dropped", "title", title, "error", err)
		return article.Article{}, false
	}

	f.m.IncrementArticlesEmitted()
	return a, true
}
