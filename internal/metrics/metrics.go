// Package metrics collects counters for a single fetch run.
package metrics

import (
	"sync"
	"time"

	"github.com/hvacintel/newsfetch/internal/logger"
)

type Metrics struct {
	mu sync.RWMutex

	TermsQueried      int64
	FetchFailures     int64
	RequestsMade      int64
	ItemsFetched      int64
	DuplicatesSkipped int64
	ItemsDropped      int64
	ArticlesEmitted   int64

	startedAt time.Time
	lastError string
}

func New() *Metrics {
	return &Metrics{startedAt: time.Now()}
}

func (m *Metrics) IncrementTermsQueried() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TermsQueried++
}

func (m *Metrics) IncrementFetchFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchFailures++
}

func (m *Metrics) IncrementRequestsMade() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestsMade++
}

func (m *Metrics) AddItemsFetched(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ItemsFetched += int64(n)
}

func (m *Metrics) IncrementDuplicatesSkipped() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DuplicatesSkipped++
}

func (m *Metrics) IncrementItemsDropped() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ItemsDropped++
}

func (m *Metrics) IncrementArticlesEmitted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesEmitted++
}

func (m *Metrics) SetLastError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastError = err
}

func (m *Metrics) Snapshot() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"terms_queried":      m.TermsQueried,
		"fetch_failures":     m.FetchFailures,
		"requests_made":      m.RequestsMade,
		"items_fetched":      m.ItemsFetched,
		"duplicates_skipped": m.DuplicatesSkipped,
		"items_dropped":      m.ItemsDropped,
		"articles_emitted":   m.ArticlesEmitted,
		"elapsed_ms":         time.Since(m.startedAt).Milliseconds(),
		"last_error":         m.lastError,
	}
}

// LogSummary writes the end-of-run counters to the diagnostic log.
func (m *Metrics) LogSummary() {
	m.mu.RLock()
	defer m.mu.RUnlock()

	logger.Info("run summary",
		"terms_queried", m.TermsQueried,
		"fetch_failures", m.FetchFailures,
		"requests_made", m.RequestsMade,
		"items_fetched", m.ItemsFetched,
		"duplicates_skipped", m.DuplicatesSkipped,
		"items_dropped", m.ItemsDropped,
		"articles_emitted", m.ArticlesEmitted,
		"elapsed_ms", time.Since(m.startedAt).Milliseconds(),
	)
}
