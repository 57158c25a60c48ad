package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mariotti/bookmark/internal/diff"
	"github.com/mariotti/bookmark/internal/store"
)

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff SOURCE",
		Short: "Compare the database against another source",
		Long: `Shows the differences between the active database and another
bookmark database, in canonical form. The source may be a local
file or an http(s):// locator.

  bookmark diff ~/backup.yaml
  bookmark diff https://example.com/shared.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			other, err := st.LoadSource(cmd.Context(), args[0])
			if err != nil {
				return PrintJSONError(err)
			}

			ours, err := store.Canonical(db)
			if err != nil {
				return PrintJSONError(err)
			}
			theirs, err := store.Canonical(other)
			if err != nil {
				return PrintJSONError(err)
			}

			d := diff.Compute(string(ours), string(theirs), st.Path(), args[0])
			if d.Empty() {
				if JSON() {
					return PrintJSON(map[string]any{"changed": false})
				}
				fmt.Fprintln(Out(), "No differences")
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
		},
	}
}

func init() {
	rootCmd.AddCommand(newDiffCmd())
}
