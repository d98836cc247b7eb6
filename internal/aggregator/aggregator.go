package aggregator

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/matheuskafuri/techtell/internal/article"
	"github.com/matheuskafuri/techtell/internal/cache"
	"github.com/matheuskafuri/techtell/internal/feed"
	"github.com/matheuskafuri/techtell/internal/fixture"
	"github.com/matheuskafuri/techtell/internal/registry"
	"github.com/samber/lo"
)

// DefaultLimit is the number of articles FetchAll returns when the caller
// has no preference.
const DefaultLimit = 10

// Aggregator runs the fetch, cache, merge pipeline over one registry.
// Sources are fetched one after another.
type Aggregator struct {
	registry *registry.Registry
	fetcher  feed.Fetcher
	cache    *cache.Cache
	fixtures fixture.Provider
	log      io.Writer
	now      func() time.Time
}

type Option func(*Aggregator)

func WithFetcher(f feed.Fetcher) Option {
	return func(a *Aggregator) { a.fetcher = f }
}

func WithCache(c *cache.Cache) Option {
	return func(a *Aggregator) { a.cache = c }
}

func WithFixtures(p fixture.Provider) Option {
	return func(a *Aggregator) { a.fixtures = p }
}

// WithLogger sets where progress and warnings are written.
func WithLogger(w io.Writer) Option {
	return func(a *Aggregator) { a.log = w }
}

// WithClock sets the clock used to default missing publish dates.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) { a.now = now }
}

func New(reg *registry.Registry, opts ...Option) *Aggregator {
	a := &Aggregator{
		registry: reg,
		fixtures: fixture.None,
		log:      io.Discard,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.fetcher == nil {
		a.fetcher = feed.NewRSSFetcher(feed.DefaultTimeout)
	}
	if a.cache == nil {
		a.cache = cache.New(cache.DefaultDuration)
	}
	return a
}

func (a *Aggregator) Registry() *registry.Registry { return a.registry }

// FetchOne returns the articles for one source, from cache when fresh.
// The only error it returns is *registry.UnknownSourceError; fetch and parse
// failures are logged and turned into fixture data or an empty result.
func (a *Aggregator) FetchOne(ctx context.Context, name string, testMode bool) ([]article.Article, error) {
	url, err := a.registry.Get(name)
	if err != nil {
		return nil, err
	}

	if articles, ok := a.cache.Lookup(name); ok {
		return articles, nil
	}

	if testMode {
		if articles, ok := a.fixtures.Articles(name); ok {
			a.cache.Store(name, articles)
			return articles, nil
		}
	}

	fmt.Fprintf(a.log, "Fetching news from %s...\n", name)
	entries, err := a.fetcher.Fetch(ctx, url)
	if err != nil {
		fmt.Fprintf(a.log, "[warn] error fetching news from %s: %v\n", name, err)
		// Fallback data is not cached so the next call retries the feed.
		if articles, ok := a.fixtures.Articles(name); ok {
			fmt.Fprintf(a.log, "[info] using sample data for %s\n", name)
			return articles, nil
		}
		return []article.Article{}, nil
	}

	articles := make([]article.Article, 0, len(entries))
	for _, e := range entries {
		articles = append(articles, article.Normalize(e, name, a.now))
	}
	a.cache.Store(name, articles)
	return articles, nil
}

// FetchAll merges every registered source, newest first, and keeps at most
// limit articles. Articles with equal publish times keep registry order.
func (a *Aggregator) FetchAll(ctx context.Context, limit int, testMode bool) ([]article.Article, error) {
	if limit <= 0 {
		return []article.Article{}, nil
	}

	var parts [][]article.Article
	for _, name := range a.registry.Names() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		articles, err := a.FetchOne(ctx, name, testMode)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", name, err)
		}
		parts = append(parts, articles)
	}

	all := lo.Flatten(parts)
	SortNewestFirst(all)

	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// SortNewestFirst orders articles by publish time descending, in place and
// stable.
func SortNewestFirst(articles []article.Article) {
	slices.SortStableFunc(articles, func(x, y article.Article) int {
		return y.Published.Compare(x.Published)
	})
}
