package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/matheuskafuri/techtell/internal/update"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type rootOptions struct {
	configPath string
	noColor    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "techtell",
		Short:         "Technology news aggregator",
		Long:          "techtell fetches technology news from RSS and Atom feeds, merges them newest first and prints them as text or JSON.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newFetchCmd(opts))
	root.AddCommand(newSourcesCmd(opts))
	root.AddCommand(newAddSourceCmd(opts))
	root.AddCommand(newDemoCmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	var check bool
	c := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "techtell %s (commit: %s, built: %s)\n", version, commit, date)
			if !check {
				return
			}
			res := update.NewChecker(releasesURL).Check(cmd.Context(), version)
			switch {
			case res == nil:
				fmt.Fprintln(out, "Could not check for updates.")
			case res.Current:
				fmt.Fprintln(out, "You are running the latest version.")
			default:
				fmt.Fprintf(out, "A newer version is available: %s\n", res.LatestVersion)
			}
		},
	}
	c.Flags().BoolVar(&check, "check", false, "check GitHub for a newer release")
	return c
}

// releasesURL is empty in production so the checker uses its default.
var releasesURL string

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
