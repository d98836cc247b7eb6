package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSourcesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List all available news sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			return a.renderer.Sources(a.agg.Registry().List())
		},
	}
}

func newAddSourceCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add-source <name> <url>",
		Short: "Add a news source for the current session",
		Long:  "Register a feed for this run only. The change is not written to the config file.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			name, url := args[0], args[1]
			a.agg.Registry().Add(name, url)
			fmt.Fprintf(a.out, "Added source '%s': %s\n", name, url)
			fmt.Fprintln(a.out, "Note: This change is temporary and will not persist between sessions.")
			return nil
		},
	}
}

func newDemoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a quick demo with sample data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Running TechTell News Agent demo...")
			if err := a.renderer.Sources(a.agg.Registry().List()); err != nil {
				return err
			}

			fmt.Fprintln(a.out, "Fetching 3 latest articles...")
			articles, err := a.agg.FetchAll(cmd.Context(), 3, true)
			if err != nil {
				return err
			}
			return a.renderer.Text(articles)
		},
	}
}
