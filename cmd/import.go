package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mariotti/bookmark/internal/bookmark"
	"github.com/mariotti/bookmark/internal/diff"
	"github.com/mariotti/bookmark/internal/log"
	"github.com/mariotti/bookmark/internal/store"
)

func newImportCmd() *cobra.Command {
	var dryRun bool

	c := &cobra.Command{
		Use:   "import SOURCE [SOURCE...]",
		Short: "Merge other bookmark databases into this one",
		Long: `Merges one or more bookmark databases into the active one. Sources
may be local files or http(s):// locators. Merging is additive: tags
from the sources are unioned with existing tags, nothing is removed.
Unreadable sources contribute nothing and are reported on stderr.

  bookmark import ~/old-bookmarks.yaml
  bookmark import https://example.com/shared.yaml --dry-run`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev := log.Event("import", "import").
				Detail("sources", strings.Join(args, " ")).
				Detail("dry_run", dryRun)

			if dryRun {
				err := previewMerge(cmd, args)
				ev.Write(err)
				return err
			}

			if err := st.Merge(cmd.Context(), db, args); err != nil {
				ev.Write(err)
				return PrintJSONError(err)
			}
			if err := save(); err != nil {
				ev.Write(err)
				return PrintJSONError(err)
			}
			ev.Write(nil)

			if JSON() {
				return PrintJSON(map[string]any{"sources": args, "bookmarks": len(db)})
			}
			fmt.Fprintf(Out(), "Imported %d source(s), %d bookmark(s) total\n", len(args), len(db))
			return nil
		},
	}

	c.Flags().BoolVar(&dryRun, "dry-run", false, "Show the resulting changes without saving")
	return c
}

// previewMerge merges into a copy of the database and prints what would
// change, without touching the stored file.
func previewMerge(cmd *cobra.Command, sources []string) error {
	merged := make(bookmark.Database, len(db))
	for url, tags := range db {
		bookmark.Add(merged, url, tags)
	}
	if err := st.Merge(cmd.Context(), merged, sources); err != nil {
		return PrintJSONError(err)
	}

	before, err := store.Canonical(db)
	if err != nil {
		return PrintJSONError(err)
	}
	after, err := store.Canonical(merged)
	if err != nil {
		return PrintJSONError(err)
	}

	d := diff.Compute(string(before), string(after), "current", "merged")
	if d.Empty() {
		if JSON() {
			return PrintJSON(map[string]any{"changed": false})
		}
		fmt.Fprintln(Out(), "No changes")
		return nil
	}
	if JSON() {
		return PrintJSON(map[string]any{"changed": true, "diff": d.Diff})
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprint(Out(), diff.Colourise(d.Diff))
		return nil
	}
	fmt.Fprint(Out(), d.Diff)
	return nil
}

func init() {
	rootCmd.AddCommand(newImportCmd())
}
