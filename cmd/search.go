package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mariotti/bookmark/internal/log"
	"github.com/mariotti/bookmark/internal/query"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search PATTERN",
		Short: "Search tags by regular expression",
		Long: `Lists tags matching the given regular expression with their usage
counts, least used first. The pattern is unanchored; use ^ and $
to anchor it.

  bookmark search '^go'
  bookmark search 'docs?'`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ev := log.Event("search", "search").Detail("pattern", args[0])
			counts, err := query.Search(db, args[0])
			if err != nil {
				ev.Write(err)
				return PrintJSONError(err)
			}
			query.SortCounts(counts)
			ev.Detail("matches", len(counts)).Write(nil)

			if JSON() {
				return PrintJSON(counts)
			}
			for _, c := range counts {
				fmt.Fprintf(Out(), "%6d  %s\n", c.Count, c.Tag)
			}
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newSearchCmd())
}
