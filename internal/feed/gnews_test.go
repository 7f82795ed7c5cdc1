package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const gnewsFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Search results</title>
<link>https://news.example</link>
<description>Fixture feed</description>
<item>
<title>Heat pump sales surge across Europe - HVAC Weekly</title>
<link>https://news.example/heat-pumps</link>
<pubDate>Mon, 02 Jan 2006 15:04:05 GMT</pubDate>
<description>&lt;p&gt;Sales grew 20% this quarter.&lt;/p&gt;</description>
<source url="https://hvacweekly.example">HVAC Weekly</source>
</item>
<item>
<title>Quarterly market notes</title>
<link>https://news.example/notes</link>
<pubDate>Tue, 03 Jan 2006 10:00:00 GMT</pubDate>
<description>A roundup.</description>
<source url="https://marketdesk.example">Market Desk</source>
</item>
<item>
<title>Grid roundup</title>
<link>https://news.example/grid</link>
<pubDate>Wed, 04 Jan 2006 09:30:00 GMT</pubDate>
<description>Transmission news.</description>
<source url="https://gridwire.example/feeds"></source>
</item>
</channel>
</rss>`

// gnewsServer serves the fixture and counts requests.
func gnewsServer(t *testing.T) (*httptest.Server, *int) {
	t.Helper()

	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(gnewsFeedXML))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestGNewsSource_Search(t *testing.T) {
	srv, _ := gnewsServer(t)
	src := NewGNewsSource(Options{BaseURL: srv.URL, Language: "en", Country: "US"})

	items, err := src.Search(context.Background(), "heat pump")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}

	if got := items[0].Source; got != "HVAC Weekly" {
		t.Errorf("Source = %q, want HVAC Weekly", got)
	}
	// Publisher comes from the source element, not the headline.
	if got := items[1].Source; got != "Market Desk" {
		t.Errorf("Source = %q, want Market Desk", got)
	}
	// Empty source text falls back to the source URL host.
	if got := items[2].Source; got != "gridwire.example" {
		t.Errorf("Source = %q, want host fallback", got)
	}

	if got := items[0].Description; got != "<p>Sales grew 20% this quarter.</p>" {
		t.Errorf("Description = %q, want decoded markup", got)
	}
	if got := items[0].Published; got != "Mon, 02 Jan 2006 15:04:05 GMT" {
		t.Errorf("Published = %q, want raw pubDate", got)
	}
}

func TestGNewsSource_CachesResponses(t *testing.T) {
	srv, hits := gnewsServer(t)
	src := NewGNewsSource(Options{BaseURL: srv.URL})

	first, err := src.Search(context.Background(), "hvac")
	if err != nil {
		t.Fatalf("first Search: %v", err)
	}
	second, err := src.Search(context.Background(), "hvac")
	if err != nil {
		t.Fatalf("second Search: %v", err)
	}

	if *hits != 1 {
		t.Errorf("server hit %d times, want 1 (second call cached)", *hits)
	}
	if len(first) != len(second) {
		t.Errorf("cached result differs: %d vs %d items", len(first), len(second))
	}

	if _, err := src.Search(context.Background(), "battery"); err != nil {
		t.Fatalf("third Search: %v", err)
	}
	if *hits != 2 {
		t.Errorf("server hit %d times, want 2 (new term misses cache)", *hits)
	}
}

func TestGNewsSource_MaxResults(t *testing.T) {
	srv, _ := gnewsServer(t)
	src := NewGNewsSource(Options{BaseURL: srv.URL, MaxResults: 2})

	items, err := src.Search(context.Background(), "hvac")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("got %d items, want cap of 2", len(items))
	}
}

func TestGNewsSource_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	src := NewGNewsSource(Options{BaseURL: srv.URL})
	_, err := src.Search(context.Background(), "hvac")
	if !errors.Is(err, ErrBadStatus) {
		t.Fatalf("err = %v, want ErrBadStatus", err)
	}
}

func TestGNewsSource_TopItems(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Write([]byte(gnewsFeedXML))
	}))
	t.Cleanup(srv.Close)

	src := NewGNewsSource(Options{BaseURL: srv.URL, Language: "en", Country: "US"})
	items, err := src.TopItems(context.Background())
	if err != nil {
		t.Fatalf("TopItems: %v", err)
	}
	if len(items) != 3 {
		t.Errorf("got %d items, want 3", len(items))
	}
	if path != "/" {
		t.Errorf("requested path = %q, want /", path)
	}
}
