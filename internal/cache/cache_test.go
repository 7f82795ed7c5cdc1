package cache

import (
	"testing"
	"time"
)

func TestSetGet(t *testing.T) {
	c := New()
	c.Set("key", "value", time.Minute)

	got, ok := c.Get("key")
	if !ok {
		t.Fatal("want cache hit")
	}
	if got.(string) != "value" {
		t.Errorf("got %v, want value", got)
	}
}

func TestGetMissing(t *testing.T) {
	c := New()
	if _, ok := c.Get("absent"); ok {
		t.Error("want miss for unknown key")
	}
}

func TestExpiry(t *testing.T) {
	c := New()
	c.Set("key", "value", time.Millisecond)

	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get("key"); ok {
		t.Error("want expired entry to miss")
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d, want lazy delete on expired read", c.Len())
	}
}

func TestOverwrite(t *testing.T) {
	c := New()
	c.Set("key", "old", time.Minute)
	c.Set("key", "new", time.Minute)

	got, ok := c.Get("key")
	if !ok || got.(string) != "new" {
		t.Errorf("got %v/%v, want new value", got, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestKey(t *testing.T) {
	a := Key("search", "heat pump", "en", "US")
	b := Key("search", "heat pump", "en", "US")
	c := Key("search", "heat pump", "en", "GB")

	if a != b {
		t.Errorf("same parts gave different keys: %q vs %q", a, b)
	}
	if a == c {
		t.Error("different parts gave the same key")
	}
	if len(a) != 16 {
		t.Errorf("key length = %d, want 16", len(a))
	}
}
