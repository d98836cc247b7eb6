package feed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// DefaultTimeout bounds a single feed retrieval.
const DefaultTimeout = 10 * time.Second

const userAgent = "techtell/1.0 (+https://github.com/matheuskafuri/techtell)"

// Entry is a raw feed item. Every field is resolved at parse time, so a
// missing value in the document shows up as the documented default.
type Entry struct {
	Title     string // "No title" when absent
	Link      string
	Summary   string
	Published string // raw date string, unparsed
}

const defaultTitle = "No title"

// FetchError wraps a network, HTTP or parse failure for one feed URL.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]Entry, error)
}

type RSSFetcher struct {
	parser  *gofeed.Parser
	timeout time.Duration
}

// NewRSSFetcher returns a fetcher for RSS 2.0 and Atom documents. A timeout
// of zero or less uses DefaultTimeout.
func NewRSSFetcher(timeout time.Duration) *RSSFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	p := gofeed.NewParser()
	p.Client = &http.Client{Timeout: timeout}
	p.UserAgent = userAgent
	return &RSSFetcher{parser: p, timeout: timeout}
}

func (f *RSSFetcher) Fetch(ctx context.Context, url string) ([]Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	feed, err := f.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	entries := make([]Entry, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		entries = append(entries, entryFromItem(item))
	}
	return entries, nil
}

func entryFromItem(item *gofeed.Item) Entry {
	e := Entry{
		Title:     item.Title,
		Link:      item.Link,
		Summary:   item.Description,
		Published: item.Published,
	}
	if e.Title == "" {
		e.Title = defaultTitle
	}
	return e
}
