// Package article holds the canonical article record and the normalization
// that turns raw feed entries into it.
package article

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/matheuskafuri/techtell/internal/feed"
)

type Article struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
	Published   time.Time `json:"published"`
	Source      string    `json:"source"`
}

var tagPattern = regexp.MustCompile(`<.*?>`)

// Normalize converts a raw entry into an Article. Title and description are
// kept whole; display truncation happens at render time.
func Normalize(e feed.Entry, source string, now func() time.Time) Article {
	return Article{
		Title:       e.Title,
		Link:        e.Link,
		Description: CleanDescription(e.Summary),
		Published:   ParseDate(e.Published, now),
		Source:      source,
	}
}

// CleanDescription strips markup tags and collapses whitespace runs to a
// single space.
func CleanDescription(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}

// ParseDate parses s permissively. Timestamps without a zone are read as UTC.
// Empty or unparseable input yields now() in UTC.
func ParseDate(s string, now func() time.Time) time.Time {
	if now == nil {
		now = time.Now
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return now().UTC()
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return now().UTC()
	}
	return t
}
