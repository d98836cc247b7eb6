package cmd

import (
	"fmt"

	"github.com/matheuskafuri/techtell/internal/aggregator"
	"github.com/matheuskafuri/techtell/internal/article"
	"github.com/matheuskafuri/techtell/internal/render"
	"github.com/spf13/cobra"
)

func newFetchCmd(opts *rootOptions) *cobra.Command {
	var (
		limit    int
		format   string
		source   string
		testMode bool
	)

	c := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch and display the latest technology news",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}

			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.GetArticleLimit()
			}

			var articles []article.Article
			if source != "" {
				if !a.agg.Registry().Has(source) {
					// Reported, but not a failing exit.
					fmt.Fprintf(a.out, "Error: Unknown source '%s'\n", source)
					fmt.Fprintln(a.out, "Use 'techtell sources' to see available sources.")
					return nil
				}
				articles, err = a.agg.FetchOne(cmd.Context(), source, testMode)
				if err != nil {
					return err
				}
				articles = firstN(articles, limit)
			} else {
				articles, err = a.agg.FetchAll(cmd.Context(), limit, testMode)
				if err != nil {
					return err
				}
			}

			return a.renderer.Render(articles, f)
		},
	}

	c.Flags().IntVarP(&limit, "limit", "l", aggregator.DefaultLimit, "number of articles to fetch")
	c.Flags().StringVarP(&format, "format", "f", string(render.FormatText), "output format (text, json)")
	c.Flags().StringVarP(&source, "source", "s", "", "fetch from a single source only")
	c.Flags().BoolVar(&testMode, "test", false, "use built-in sample data where available")
	return c
}

func firstN(articles []article.Article, n int) []article.Article {
	if n <= 0 {
		return []article.Article{}
	}
	if len(articles) > n {
		return articles[:n]
	}
	return articles
}
