package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mariotti/bookmark/internal/bookmark"
	"github.com/mariotti/bookmark/internal/log"
)

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm URL TAG [TAG...]",
		Short: "Detach tags from a URL",
		Long: `Removes tags from a bookmark. Tags not present are ignored, as is
an unknown URL. A bookmark whose last tag is removed is deleted.

  bookmark rm https://go.dev docs`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			url := substPath(args[0])
			tags := args[1:]
			ev := log.Event("rm", "remove").URL(args[0]).Resolved(url).Detail("tags", strings.Join(tags, " "))

			bookmark.Remove(db, url, tags)
			if err := save(); err != nil {
				ev.Write(err)
				return PrintJSONError(err)
			}
			ev.Write(nil)

			if JSON() {
				stored, ok := bookmark.Tags(db, url)
				return PrintJSON(map[string]any{"url": url, "tags": stored, "present": ok})
			}
			fmt.Fprintf(Out(), "Removed tags from %s\n", url)
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newRmCmd())
}
