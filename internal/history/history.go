// Package history reads the article output of an earlier run so the
// current run can skip titles it has already emitted.
package history

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/hvacintel/newsfetch/internal/logger"
)

// History is a read-only set of previously emitted article titles. The
// run consults it once at startup and never writes it back.
type History struct {
	titles map[string]struct{}
}

// Load reads a JSON array of article records and collects their trimmed
// titles. Loading is best-effort: a missing, unreadable or corrupt file
// yields an empty history, never an error that stops the run.
func Load(path string) *History {
	h := &History{titles: make(map[string]struct{})}

	if path == "" {
		return h
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("history file unreadable, starting empty", "path", path, "error", err)
		}
		return h
	}
	if len(data) == 0 {
		return h
	}

	var records []struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Warn("history file corrupt, starting empty", "path", path, "error", err)
		return h
	}

	for _, record := range records {
		if title := strings.TrimSpace(record.Title); title != "" {
			h.titles[title] = struct{}{}
		}
	}

	logger.Debug("history loaded", "path", path, "titles", len(h.titles))
	return h
}

// Contains reports whether a title was emitted by an earlier run.
func (h *History) Contains(title string) bool {
	_, ok := h.titles[strings.TrimSpace(title)]
	return ok
}

func (h *History) Len() int {
	return len(h.titles)
}

// Titles returns the stored titles for preseeding a seen-set.
func (h *History) Titles() []string {
	titles := make([]string, 0, len(h.titles))
	for title := range h.titles {
		titles = append(titles, title)
	}
	return titles
}
