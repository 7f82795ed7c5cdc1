package history

import (
	"os"
	"path/filepath"
	"testing"
)

func writeHistory(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "news.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeHistory(t, `[
  {"title": "Heat pump sales surge", "summary": "ignored", "industry": "HVAC"},
  {"title": "  Padded headline  "},
  {"title": ""},
  {"summary": "record with no title"}
]`)

	h := Load(path)

	if h.Len() != 2 {
		t.Fatalf("Len = %d, want 2", h.Len())
	}
	if !h.Contains("Heat pump sales surge") {
		t.Error("want stored title to be found")
	}
	if !h.Contains("Padded headline") {
		t.Error("want titles trimmed on load")
	}
	if !h.Contains("  Heat pump sales surge  ") {
		t.Error("want lookup input trimmed")
	}
	if h.Contains("Never emitted") {
		t.Error("unknown title reported as contained")
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	h := Load("")
	if h.Len() != 0 {
		t.Errorf("Len = %d, want 0", h.Len())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	h := Load(filepath.Join(t.TempDir(), "nope.json"))
	if h.Len() != 0 {
		t.Errorf("Len = %d, want empty history for missing file", h.Len())
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	h := Load(writeHistory(t, `{"title": "not an array"`))
	if h.Len() != 0 {
		t.Errorf("Len = %d, want corrupt file treated as empty", h.Len())
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	h := Load(writeHistory(t, ""))
	if h.Len() != 0 {
		t.Errorf("Len = %d, want 0", h.Len())
	}
}

func TestTitles(t *testing.T) {
	path := writeHistory(t, `[{"title": "One"}, {"title": "Two"}]`)

	titles := Load(path).Titles()
	if len(titles) != 2 {
		t.Fatalf("got %d titles, want 2", len(titles))
	}

	found := map[string]bool{}
	for _, title := range titles {
		found[title] = true
	}
	if !found["One"] || !found["Two"] {
		t.Errorf("Titles = %v, want One and Two", titles)
	}
}
