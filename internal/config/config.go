// Package config loads run configuration from environment variables,
// with CLI flags layered on top by the caller.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Backends.
const (
	BackendRSS   = "rss"
	BackendGNews = "gnews"
)

// Fetch error policies: what a failed term query does to the run.
const (
	PolicySkip = "skip"
	PolicyFail = "fail"
)

// Industry stamping modes for grouped runs.
const (
	IndustryFromGroup = "group"
	IndustryFromScore = "score"
)

type Config struct {
	// Source settings
	Backend        string // rss | gnews
	BaseURL        string // endpoint override, empty = Google News
	Language       string
	Country        string
	Period         string // recency window for queries, e.g. "7d"
	RequestTimeout time.Duration
	MaxResults     int // per-query item cap

	// Run shape
	Grouped        bool   // run industry-grouped terms instead of the flat list
	TopHeadlines   bool   // fetch top headlines instead of term queries
	MaxArticles    int    // global cap (flat and top modes)
	MaxPerIndustry int    // per-industry cap (grouped mode)
	ErrorPolicy    string // skip | fail, empty = backend default
	IndustryMode   string // group | score

	// Files
	TermsPath   string // optional YAML search-term config
	HistoryPath string // optional JSON article history for dedupe preseed

	// Transport settings
	RetryAttempts   int
	RetryDelay      time.Duration
	RequestInterval time.Duration // minimum pause between remote requests
	MaxRequests     int           // per-run request budget, 0 = unlimited

	// App settings
	Debug bool
}

func Load() (*Config, error) {
	cfg := &Config{
		// Default values
		Backend:        BackendRSS,
		Language:       "en",
		Country:        "US",
		Period:         "7d",
		RequestTimeout: 10 * time.Second,
		MaxResults:     20,
		MaxArticles:    30,
		MaxPerIndustry: 10,
		IndustryMode:   IndustryFromGroup,
		RetryAttempts:  2,
		RetryDelay:     1 * time.Second,
	}

	// Load from environment
	cfg.Backend = getEnvOrDefault("NEWS_BACKEND", cfg.Backend)
	cfg.BaseURL = getEnvOrDefault("NEWS_BASE_URL", cfg.BaseURL)
	cfg.Language = getEnvOrDefault("NEWS_LANGUAGE", cfg.Language)
	cfg.Country = getEnvOrDefault("NEWS_COUNTRY", cfg.Country)
	cfg.Period = getEnvOrDefault("NEWS_PERIOD", cfg.Period)
	cfg.ErrorPolicy = getEnvOrDefault("FETCH_ERROR_POLICY", cfg.ErrorPolicy)
	cfg.IndustryMode = getEnvOrDefault("INDUSTRY_MODE", cfg.IndustryMode)
	cfg.TermsPath = getEnvOrDefault("TERMS_CONFIG_PATH", cfg.TermsPath)
	cfg.HistoryPath = getEnvOrDefault("HISTORY_FILE_PATH", cfg.HistoryPath)

	cfg.MaxResults = getEnvIntOrDefault("MAX_RESULTS_PER_QUERY", cfg.MaxResults)
	cfg.MaxArticles = getEnvIntOrDefault("MAX_ARTICLES", cfg.MaxArticles)
	cfg.MaxPerIndustry = getEnvIntOrDefault("MAX_PER_INDUSTRY", cfg.MaxPerIndustry)
	cfg.RetryAttempts = getEnvIntOrDefault("RETRY_ATTEMPTS", cfg.RetryAttempts)
	cfg.MaxRequests = getEnvIntOrDefault("MAX_REQUESTS", cfg.MaxRequests)

	if v := getEnvIntOrDefault("REQUEST_TIMEOUT_SECONDS", 0); v > 0 {
		cfg.RequestTimeout = time.Duration(v) * time.Second
	}
	if v := getEnvIntOrDefault("RETRY_DELAY_MS", 0); v > 0 {
		cfg.RetryDelay = time.Duration(v) * time.Millisecond
	}
	if v := getEnvIntOrDefault("REQUEST_INTERVAL_MS", 0); v > 0 {
		cfg.RequestInterval = time.Duration(v) * time.Millisecond
	}

	if debug := os.Getenv("DEBUG"); debug == "true" {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func (c *Config) Validate() error {
	if c.Backend != BackendRSS && c.Backend != BackendGNews {
		return fmt.Errorf("backend must be %q or %q, got %q", BackendRSS, BackendGNews, c.Backend)
	}
	if c.MaxArticles <= 0 {
		return fmt.Errorf("article cap must be positive, got %d", c.MaxArticles)
	}
	if c.MaxPerIndustry <= 0 {
		return fmt.Errorf("per-industry cap must be positive, got %d", c.MaxPerIndustry)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.ErrorPolicy != "" && c.ErrorPolicy != PolicySkip && c.ErrorPolicy != PolicyFail {
		return fmt.Errorf("fetch error policy must be %q or %q, got %q", PolicySkip, PolicyFail, c.ErrorPolicy)
	}
	if c.IndustryMode != IndustryFromGroup && c.IndustryMode != IndustryFromScore {
		return fmt.Errorf("industry mode must be %q or %q, got %q", IndustryFromGroup, IndustryFromScore, c.IndustryMode)
	}
	if c.TopHeadlines && c.Grouped {
		return fmt.Errorf("top headlines mode and grouped mode are mutually exclusive")
	}
	return nil
}

// EffectiveErrorPolicy resolves the configured policy against the backend
// default: the RSS backend skips failed terms, the gnews backend treats
// any remote error as fatal.
func (c *Config) EffectiveErrorPolicy() string {
	if c.ErrorPolicy != "" {
		return c.ErrorPolicy
	}
	if c.Backend == BackendGNews {
		return PolicyFail
	}
	return PolicySkip
}
