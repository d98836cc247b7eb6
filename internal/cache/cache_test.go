package cache

import (
	"testing"
	"time"

	"github.com/matheuskafuri/techtell/internal/article"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func testCache(t *testing.T, d time.Duration) (*Cache, *fakeClock) {
	t.Helper()
	clk := &fakeClock{t: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)}
	return New(d, WithClock(clk.Now)), clk
}

func sampleArticles() []article.Article {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	return []article.Article{
		{Source: "techcrunch", Title: "Post A", Link: "https://a.com", Description: "Desc A", Published: now.Add(-1 * time.Hour)},
		{Source: "techcrunch", Title: "Post B", Link: "https://b.com", Description: "Desc B", Published: now.Add(-2 * time.Hour)},
	}
}

func TestLookupMiss(t *testing.T) {
	c, _ := testCache(t, time.Hour)
	if _, ok := c.Lookup("techcrunch"); ok {
		t.Error("expected miss on empty cache")
	}
}

func TestStoreAndLookup(t *testing.T) {
	c, clk := testCache(t, time.Hour)
	c.Store("techcrunch", sampleArticles())

	clk.Advance(59 * time.Minute)
	got, ok := c.Lookup("techcrunch")
	if !ok {
		t.Fatal("expected hit within cache window")
	}
	if len(got) != 2 || got[0].Title != "Post A" {
		t.Errorf("unexpected cached articles: %+v", got)
	}
}

func TestLookupExpired(t *testing.T) {
	c, clk := testCache(t, time.Hour)
	c.Store("techcrunch", sampleArticles())

	// Exactly the duration is already stale.
	clk.Advance(time.Hour)
	if _, ok := c.Lookup("techcrunch"); ok {
		t.Error("expected miss once the duration has elapsed")
	}
	if len(c.entries) != 1 {
		t.Errorf("stale entry should not be evicted, got %d entries", len(c.entries))
	}
}

func TestStoreOverwritesTimestamp(t *testing.T) {
	c, clk := testCache(t, time.Hour)
	c.Store("techcrunch", sampleArticles())

	clk.Advance(2 * time.Hour)
	c.Store("techcrunch", sampleArticles()[:1])

	got, ok := c.Lookup("techcrunch")
	if !ok {
		t.Fatal("expected hit after re-store")
	}
	if len(got) != 1 {
		t.Errorf("expected overwritten entry with 1 article, got %d", len(got))
	}
	if at := c.entries["techcrunch"].fetchedAt; !at.Equal(clk.Now()) {
		t.Errorf("expected timestamp reset to %v, got %v", clk.Now(), at)
	}
}

func TestStoreCopiesInput(t *testing.T) {
	c, _ := testCache(t, time.Hour)
	articles := sampleArticles()
	c.Store("techcrunch", articles)
	articles[0].Title = "mutated"

	got, _ := c.Lookup("techcrunch")
	if got[0].Title != "Post A" {
		t.Errorf("cache aliased caller slice: %q", got[0].Title)
	}
}

func TestStoreEmpty(t *testing.T) {
	c, _ := testCache(t, time.Hour)
	c.Store("wired", nil)

	got, ok := c.Lookup("wired")
	if !ok {
		t.Fatal("empty result is still a valid entry")
	}
	if len(got) != 0 {
		t.Errorf("expected no articles, got %d", len(got))
	}
}

func TestKeysAreIndependent(t *testing.T) {
	c, clk := testCache(t, time.Hour)
	c.Store("a", sampleArticles())
	clk.Advance(30 * time.Minute)
	c.Store("b", sampleArticles())
	clk.Advance(45 * time.Minute)

	if _, ok := c.Lookup("a"); ok {
		t.Error("expected a to be stale")
	}
	if _, ok := c.Lookup("b"); !ok {
		t.Error("expected b to still be valid")
	}
}

func TestDefaultDuration(t *testing.T) {
	c := New(0)
	if c.duration != DefaultDuration {
		t.Errorf("expected default duration %v, got %v", DefaultDuration, c.duration)
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	c, _ := testCache(t, time.Hour)
	c.Store("techcrunch", sampleArticles())

	hit, _ := c.Lookup("techcrunch")
	hit[0], hit[1] = hit[1], hit[0]
	hit[1].Title = "mutated"

	again, ok := c.Lookup("techcrunch")
	if !ok {
		t.Fatal("expected hit")
	}
	if again[0].Title != "Post A" || again[1].Title != "Post B" {
		t.Errorf("cached entry changed through a previous hit: %q, %q", again[0].Title, again[1].Title)
	}
}
