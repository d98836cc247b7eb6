// Package fixture supplies pre-built articles used for demos, test mode and
// as a fallback when a live fetch fails.
package fixture

import (
	"time"

	"github.com/matheuskafuri/techtell/internal/article"
)

type Provider interface {
	// Articles returns the fixture set for source, if there is one.
	Articles(source string) ([]article.Article, bool)
}

// Static is a Provider backed by a fixed map. The zero value has no data.
type Static map[string][]article.Article

func (s Static) Articles(source string) ([]article.Article, bool) {
	a, ok := s[source]
	if !ok {
		return nil, false
	}
	out := make([]article.Article, len(a))
	copy(out, a)
	return out, true
}

// None is the empty provider.
var None Provider = Static(nil)

func at(hour, min int) time.Time {
	return time.Date(2024, 1, 15, hour, min, 0, 0, time.UTC)
}

// Sample returns the built-in sample set.
func Sample() Static {
	return Static{
		"techcrunch": {
			{
				Title:       "AI Startup Raises $100M Series A",
				Link:        "https://techcrunch.com/ai-startup-funding",
				Description: "A revolutionary AI startup focused on natural language processing has raised $100 million in Series A funding.",
				Published:   at(10, 30),
				Source:      "techcrunch",
			},
			{
				Title:       "New iPhone Features Leaked",
				Link:        "https://techcrunch.com/iphone-leak",
				Description: "Latest leaks reveal exciting new features coming to the next iPhone release.",
				Published:   at(9, 15),
				Source:      "techcrunch",
			},
		},
		"hacker_news": {
			{
				Title:       "Show HN: I built a news aggregator",
				Link:        "https://news.ycombinator.com/item?id=123456",
				Description: "After being frustrated with existing news apps, I decided to build my own.",
				Published:   at(11, 0),
				Source:      "hacker_news",
			},
			{
				Title:       "The Future of Programming Languages",
				Link:        "https://news.ycombinator.com/item?id=123457",
				Description: "A deep dive into emerging programming languages and their potential impact.",
				Published:   at(8, 45),
				Source:      "hacker_news",
			},
		},
		"the_verge": {
			{
				Title:       "Electric Vehicle Sales Surge",
				Link:        "https://theverge.com/ev-sales",
				Description: "Electric vehicle sales have reached an all-time high this quarter.",
				Published:   at(10, 0),
				Source:      "the_verge",
			},
		},
	}
}
