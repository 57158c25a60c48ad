package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mariotti/bookmark/internal/bookmark"
	"github.com/mariotti/bookmark/internal/query"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show URL",
		Short: "Show the tags for a single URL",
		Long: `Prints the tags recorded for one bookmark, one per line. Fails
when the URL is not in the database. Equivalent to running
"bookmark URL" without a subcommand.

  bookmark show https://go.dev
  bookmark show -w https://go.dev   # open in a browser`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			url := substPath(args[0])
			if Web() {
				tags, ok := bookmark.Tags(db, url)
				if !ok {
					return PrintJSONError(fmt.Errorf("no such bookmark: %s", url))
				}
				return openWeb(tags, []query.Entry{{URL: url, Tags: tags}})
			}
			return lookup(url)
		},
	}
}

func init() {
	rootCmd.AddCommand(newShowCmd())
}
