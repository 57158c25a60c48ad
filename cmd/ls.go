package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mariotti/bookmark/internal/log"
	"github.com/mariotti/bookmark/internal/query"
	"github.com/mariotti/bookmark/internal/webview"
)

func newLsCmd() *cobra.Command {
	var every bool

	c := &cobra.Command{
		Use:   "ls [TAG...]",
		Short: "List bookmarks by tag",
		Long: `Lists bookmarks carrying any of the given tags. With --every, only
bookmarks carrying all of them. No tags lists everything. The tag
"all" expands to every tag in the database.

  bookmark ls                  # everything
  bookmark ls golang docs      # either tag
  bookmark ls -e golang docs   # both tags
  bookmark ls -v golang        # include tag sets
  bookmark ls -w golang        # open in a browser`,
		Args: cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			tags := expandTags(args)
			var entries []query.Entry
			if every {
				entries = query.ListEvery(db, tags)
			} else {
				entries = query.ListAny(db, tags)
			}
			query.SortEntries(entries)
			log.Event("ls", "list").
				Detail("tags", strings.Join(args, " ")).
				Detail("every", every).
				Detail("matches", len(entries)).
				Write(nil)

			if Web() {
				return openWeb(args, entries)
			}
			if JSON() {
				return PrintJSON(entries)
			}
			printEntries(entries)
			return nil
		},
	}

	c.Flags().BoolVarP(&every, "every", "e", false, "Match bookmarks carrying every tag")
	return c
}

// printEntries writes one URL per line, with tags appended in verbose mode.
func printEntries(entries []query.Entry) {
	for _, e := range entries {
		if Verbose() {
			fmt.Fprintf(Out(), "%s\t%s\n", e.URL, strings.Join(e.Tags, " "))
			continue
		}
		fmt.Fprintln(Out(), e.URL)
	}
}

// openWeb renders entries to a temporary HTML page and opens it in the
// configured browser.
func openWeb(tags []string, entries []query.Entry) error {
	if err := webview.Open(Browser(), tags, entries); err != nil {
		return PrintJSONError(err)
	}
	fmt.Fprintf(Out(), "Opened %s\n", webview.Path())
	return nil
}

func init() {
	rootCmd.AddCommand(newLsCmd())
}
