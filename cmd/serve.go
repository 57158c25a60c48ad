package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mariotti/bookmark/internal/config"
	"github.com/mariotti/bookmark/internal/log"
	"github.com/mariotti/bookmark/internal/mcp"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdio",
		Long: `Runs a Model Context Protocol server over stdio, exposing the
bookmark database as tools for LLM clients. Each tool invocation
loads the database fresh, so the server can run alongside normal
CLI use.

Register with an MCP client as:

  command: bookmark
  args: [serve]

Add -f to serve a specific database file.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			path := dbFile
			if path == "" {
				path = cfg.DatabasePath()
			}
			log.SetDatabase(path)
			return mcp.Serve(path, cfg.FetchTimeout())
		},
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
}
