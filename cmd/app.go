package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/matheuskafuri/techtell/internal/aggregator"
	"github.com/matheuskafuri/techtell/internal/cache"
	"github.com/matheuskafuri/techtell/internal/config"
	"github.com/matheuskafuri/techtell/internal/feed"
	"github.com/matheuskafuri/techtell/internal/fixture"
	"github.com/matheuskafuri/techtell/internal/render"
	"github.com/spf13/cobra"
)

// newFetcher is swapped out in tests to keep them off the network.
var newFetcher = func(timeout time.Duration) feed.Fetcher {
	return feed.NewRSSFetcher(timeout)
}

type app struct {
	cfg      *config.Config
	agg      *aggregator.Aggregator
	renderer *render.Renderer
	out      io.Writer
}

func newApp(cmd *cobra.Command, opts *rootOptions) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	out := cmd.OutOrStdout()
	agg := aggregator.New(cfg.Registry(),
		aggregator.WithFetcher(newFetcher(cfg.FetchTimeoutDuration())),
		aggregator.WithCache(cache.New(cfg.CacheTTL())),
		aggregator.WithFixtures(fixture.Sample()),
		aggregator.WithLogger(cmd.ErrOrStderr()),
	)
	r := render.New(out, render.Options{
		TitleMax:       cfg.GetTitleMax(),
		DescriptionMax: cfg.GetDescriptionMax(),
		NoColor:        opts.noColor,
	})
	return &app{cfg: cfg, agg: agg, renderer: r, out: out}, nil
}
