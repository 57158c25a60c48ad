package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mariotti/bookmark/internal/log"
	"github.com/mariotti/bookmark/internal/query"
)

func newTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "Show tag usage counts",
		Long: `Lists every tag with the number of bookmarks carrying it, least
used first. Useful for spotting typos and near-duplicate tags.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			counts := query.Frequency(db)
			query.SortCounts(counts)
			log.Event("tags", "list").Detail("tags", len(counts)).Write(nil)

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
	rootCmd.AddCommand(newTagsCmd())
}
