package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/hvacintel/newsfetch/internal/app"
	"github.com/hvacintel/newsfetch/internal/config"
	"github.com/hvacintel/newsfetch/internal/logger"
)

func main() {
	_ = godotenv.Load()
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}

	var outFile string
	flag.StringVar(&cfg.Backend, "backend", cfg.Backend, "news backend: rss or gnews")
	flag.BoolVar(&cfg.Grouped, "grouped", cfg.Grouped, "run industry-grouped terms with a per-industry cap")
	flag.BoolVar(&cfg.TopHeadlines, "top", cfg.TopHeadlines, "fetch top headlines instead of term queries")
	flag.IntVar(&cfg.MaxArticles, "max", cfg.MaxArticles, "overall article cap")
	flag.IntVar(&cfg.MaxPerIndustry, "per-industry", cfg.MaxPerIndustry, "per-industry article cap (grouped mode)")
	flag.StringVar(&cfg.TermsPath, "terms", cfg.TermsPath, "optional: YAML file with search terms (empty = built-in list)")
	flag.StringVar(&cfg.HistoryPath, "history", cfg.HistoryPath, "optional: JSON article history to preseed dedupe")
	flag.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "per-request timeout")
	flag.StringVar(&outFile, "out", "", "optional: write output JSON to this path (default: stdout)")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	articles, err := app.Run(context.Background(), cfg)
	if err != nil {
		fatal(err)
	}

	if outFile != "" {
		err = writeJSONFile(outFile, articles)
	} else {
		err = writeJSONToStdout(articles)
	}
	if err != nil {
		fatal(err)
	}
}

func writeJSONToStdout(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeJSONFile(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// fatal emits the structured error object on stdout, so a downstream
// parser always receives valid JSON, and exits non-zero. The readable
// diagnostic goes to stderr via the logger.
func fatal(err error) {
	logger.Error("run failed", "error", err)
	_ = json.NewEncoder(os.Stdout).Encode(map[string]string{"error": err.Error()})
	os.Exit(1)
}
