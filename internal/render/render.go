package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/techtell/internal/article"
	"github.com/matheuskafuri/techtell/internal/registry"
	"github.com/muesli/termenv"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

const (
	DefaultTitleMax       = 80
	DefaultDescriptionMax = 200

	ruleWidth       = 80
	publishedLayout = "2006-01-02 15:04:05-07:00"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (valid: text, json)", s)
	}
}

type Options struct {
	TitleMax       int
	DescriptionMax int
	NoColor        bool
	// Now stamps the JSON envelope; defaults to time.Now.
	Now func() time.Time
}

type Renderer struct {
	w      io.Writer
	opts   Options
	styles styles
}

// New returns a Renderer writing to w. Colors are only emitted when w is a
// terminal and NoColor is unset.
func New(w io.Writer, opts Options) *Renderer {
	if opts.TitleMax <= 0 {
		opts.TitleMax = DefaultTitleMax
	}
	if opts.DescriptionMax <= 0 {
		opts.DescriptionMax = DefaultDescriptionMax
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	lr := lipgloss.NewRenderer(w)
	if opts.NoColor {
		lr.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{w: w, opts: opts, styles: newStyles(lr)}
}

func (r *Renderer) Render(articles []article.Article, format Format) error {
	switch format {
	case FormatText:
		return r.Text(articles)
	case FormatJSON:
		return r.JSON(articles)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func (r *Renderer) Text(articles []article.Article) error {
	var b strings.Builder
	if len(articles) == 0 {
		b.WriteString(r.styles.notice.Render("No articles found."))
		b.WriteString("\n")
		_, err := io.WriteString(r.w, b.String())
		return err
	}

	rule := strings.Repeat("=", ruleWidth)
	b.WriteString("\n")
	b.WriteString(r.styles.banner.Render(rule) + "\n")
	b.WriteString(r.styles.banner.Render(fmt.Sprintf("TechTell News Agent - %d Latest Articles", len(articles))) + "\n")
	b.WriteString(r.styles.banner.Render(rule) + "\n\n")

	sep := strings.Repeat("-", ruleWidth)
	for i, a := range articles {
		b.WriteString(paint(r.styles.title, fmt.Sprintf("[%d] %s", i+1, truncate(a.Title, r.opts.TitleMax))) + "\n")
		b.WriteString(paint(r.styles.meta, fmt.Sprintf("Source: %s | Published: %s", a.Source, a.Published.Format(publishedLayout))) + "\n")
		b.WriteString(paint(r.styles.body, truncate(a.Description, r.opts.DescriptionMax)) + "\n")
		b.WriteString(paint(r.styles.link, "Link: "+a.Link) + "\n")
		b.WriteString(sep + "\n\n")
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

type envelope struct {
	Timestamp    string            `json:"timestamp"`
	ArticleCount int               `json:"article_count"`
	Articles     []article.Article `json:"articles"`
}

// JSON writes the full, untruncated articles inside a timestamped envelope.
func (r *Renderer) JSON(articles []article.Article) error {
	if articles == nil {
		articles = []article.Article{}
	}
	env := envelope{
		Timestamp:    r.opts.Now().UTC().Format(time.RFC3339),
		ArticleCount: len(articles),
		Articles:     articles,
	}
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("encoding articles: %w", err)
	}
	return nil
}

func (r *Renderer) Sources(sources []registry.Source) error {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(r.styles.banner.Render("Available News Sources:") + "\n")
	for _, s := range sources {
		b.WriteString(paint(r.styles.source, fmt.Sprintf("• %s: %s", s.Name, s.URL)) + "\n")
	}
	b.WriteString("\n")
	_, err := io.WriteString(r.w, b.String())
	return err
}

// truncate cuts s to at most n characters. It is not word aware and adds no
// ellipsis.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
