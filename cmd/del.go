package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mariotti/bookmark/internal/bookmark"
	"github.com/mariotti/bookmark/internal/log"
)

func newDelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "del URL [URL...]",
		Short: "Delete bookmarks entirely",
		Long: `Deletes bookmarks regardless of their tags. Unknown URLs are
ignored. All deletions are persisted in a single write.

  bookmark del https://go.dev https://old.example.com`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			for _, raw := range args {
				url := substPath(raw)
				bookmark.Delete(db, url)
				log.Event("del", "delete").URL(raw).Resolved(url).Write(nil)
			}
			if err := save(); err != nil {
				return PrintJSONError(err)
			}
			if JSON() {
				return PrintJSON(map[string]any{"deleted": args})
			}
			fmt.Fprintf(Out(), "Deleted %d bookmark(s)\n", len(args))
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newDelCmd())
}
