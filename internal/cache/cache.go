package cache

import (
	"sync"
	"time"

	"github.com/matheuskafuri/techtell/internal/article"
)

// DefaultDuration is how long a stored fetch result stays valid.
const DefaultDuration = time.Hour

type entry struct {
	articles  []article.Article
	fetchedAt time.Time
}

// Cache keeps the last fetch result per source for the lifetime of the
// process. Entries are never evicted; a stale entry is bypassed on lookup and
// overwritten by the next Store.
type Cache struct {
	mu       sync.RWMutex
	entries  map[string]entry
	duration time.Duration
	now      func() time.Time
}

type Option func(*Cache)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

func New(duration time.Duration, opts ...Option) *Cache {
	if duration <= 0 {
		duration = DefaultDuration
	}
	c := &Cache{
		entries:  make(map[string]entry),
		duration: duration,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup returns a copy of the stored articles for name if the entry is
// younger than the cache duration.
func (c *Cache) Lookup(name string) ([]article.Article, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[name]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.fetchedAt) >= c.duration {
		return nil, false
	}
	out := make([]article.Article, len(e.articles))
	copy(out, e.articles)
	return out, true
}

func (c *Cache) Store(name string, articles []article.Article) {
	stored := make([]article.Article, len(articles))
	copy(stored, articles)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[name] = entry{articles: stored, fetchedAt: c.now()}
}
