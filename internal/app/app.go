// Package app wires configuration, data source, history and fetcher
// into a single run.
package app

import (
	"context"
	"fmt"

	"github.com/hvacintel/newsfetch/internal/article"
	"github.com/hvacintel/newsfetch/internal/config"
	"github.com/hvacintel/newsfetch/internal/feed"
	"github.com/hvacintel/newsfetch/internal/fetcher"
	"github.com/hvacintel/newsfetch/internal/history"
	"github.com/hvacintel/newsfetch/internal/logger"
	"github.com/hvacintel/newsfetch/internal/metrics"
	"github.com/hvacintel/newsfetch/internal/ratelimit"
	"github.com/hvacintel/newsfetch/internal/retry"
)

// Run executes one fetch run and returns the final article list. Any
// returned error is fatal for the process; recoverable trouble has
// already been logged and skipped further down.
func Run(ctx context.Context, cfg *config.Config) ([]article.Article, error) {
	m := metrics.New()

	source, err := newSource(cfg, m)
	if err != nil {
		return nil, err
	}

	terms, err := config.LoadTerms(cfg.TermsPath)
	if err != nil {
		return nil, err
	}

	hist := history.Load(cfg.HistoryPath)
	if hist.Len() > 0 {
		logger.Info("seen titles preseeded from history", "count", hist.Len())
	}

	f := fetcher.New(source, fetcher.Config{
		ErrorPolicy:  cfg.EffectiveErrorPolicy(),
		IndustryMode: cfg.IndustryMode,
		SeenTitles:   hist.Titles(),
		Metrics:      m,
	})

	var articles []article.Article
	switch {
	case cfg.TopHeadlines:
		logger.Info("fetching top headlines", "backend", cfg.Backend, "max", cfg.MaxArticles)
		articles, err = f.FetchTop(ctx, cfg.MaxArticles)
	case cfg.Grouped:
		logger.Info("fetching grouped terms", "backend", cfg.Backend,
			"groups", len(terms.Groups), "per_industry", cfg.MaxPerIndustry)
		articles, err = f.FetchGrouped(ctx, toGroups(terms.Groups), cfg.MaxPerIndustry)
	default:
		logger.Info("fetching flat terms", "backend", cfg.Backend,
			"terms", len(terms.Flat), "max", cfg.MaxArticles)
		articles, err = f.FetchFlat(ctx, terms.Flat, cfg.MaxArticles)
	}

	if err != nil {
		m.SetLastError(err.Error())
	}
	m.LogSummary()
	if err != nil {
		return nil, err
	}

	return articles, nil
}

func newSource(cfg *config.Config, m *metrics.Metrics) (feed.Source, error) {
	opts := feed.Options{
		BaseURL:    cfg.BaseURL,
		Language:   cfg.Language,
		Country:    cfg.Country,
		Period:     cfg.Period,
		Timeout:    cfg.RequestTimeout,
		MaxResults: cfg.MaxResults,
		Retry: retry.Config{
			MaxAttempts: cfg.RetryAttempts,
			Delay:       cfg.RetryDelay,
			Backoff:     true,
		},
		Limiter: ratelimit.New(cfg.RequestInterval, cfg.MaxRequests),
		Metrics: m,
	}

	switch cfg.Backend {
	case config.BackendGNews:
		return feed.NewGNewsSource(opts), nil
	case config.BackendRSS:
		return feed.NewRSSSource(opts), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

func toGroups(groups []config.TermGroup) []fetcher.TermGroup {
	out := make([]fetcher.TermGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, fetcher.TermGroup{Industry: g.Industry, Terms: g.Terms})
	}
	return out
}
