package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the bookmark version",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if JSON() {
				return PrintJSON(map[string]string{"version": Version})
			}
			fmt.Fprintf(Out(), "bookmark %s\n", Version)
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}
