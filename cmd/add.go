package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mariotti/bookmark/internal/bookmark"
	"github.com/mariotti/bookmark/internal/log"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add URL TAG [TAG...]",
		Short: "Attach tags to a URL",
		Long: `Adds tags to a bookmark, creating the bookmark if it is new.

Tags already present are ignored; the stored tag set stays sorted
and free of duplicates.

  bookmark add https://go.dev golang docs
  bookmark add ./notes.txt todo       # stored under its absolute path`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			url := substPath(args[0])
			tags := args[1:]
			ev := log.Event("add", "add").URL(args[0]).Resolved(url).Detail("tags", strings.Join(tags, " "))

			bookmark.Add(db, url, tags)
			if err := save(); err != nil {
				ev.Write(err)
				return PrintJSONError(err)
			}
			ev.Write(nil)

			if JSON() {
				stored, _ := bookmark.Tags(db, url)
				return PrintJSON(map[string]any{"url": url, "tags": stored})
			}
			fmt.Fprintf(Out(), "Added %s\n", url)
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newAddCmd())
}
