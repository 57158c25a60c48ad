// config.go implements the "bookmark config" command.
//
// Config follows a cascade model similar to git: local config
// (.bookmark/config.yaml) takes precedence over global
// (~/.bookmark/config.yaml). The --local flag forces the local scope
// even when the file does not exist yet.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mariotti/bookmark/internal/config"
	"github.com/mariotti/bookmark/internal/log"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  bookmark config                      # show config
  bookmark config database             # show database path
  bookmark config database ~/work.yml  # set database path

Keys: database, browser

Configuration locations:
  Global: ~/.bookmark/config.yaml
  Local:  .bookmark/config.yaml

Uses local config if it exists, otherwise global.
Writes go to the same place reads come from.
Use --local to use local config instead.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}
	c.Flags().Bool("local", false, "Use local config (.bookmark/config.yaml)")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	forceLocal, _ := c.Flags().GetBool("local")

	var loaded *config.Config
	var err error
	if forceLocal {
		loaded, err = config.LoadScope(config.ScopeLocal)
	} else {
		loaded, err = config.Load()
	}
	if err != nil {
		return PrintJSONError(fmt.Errorf("config load: %w", err))
	}

	scopeName := "global"
	if loaded.Scope() == config.ScopeLocal {
		scopeName = "local"
	}

	switch len(args) {
	case 0:
		if JSON() {
			return PrintJSON(map[string]any{
				"database": loaded.DatabasePath(),
				"browser":  loaded.Browser,
				"scope":    scopeName,
			})
		}
		fmt.Fprintf(Out(), "database: %s\n", loaded.DatabasePath())
		fmt.Fprintf(Out(), "browser: %s\n", loaded.Browser)
		log.Event("config", "list").Write(nil)

	case 1:
		v, err := loaded.Get(args[0])
		log.Event("config", "get").Detail("key", args[0]).Write(err)
		if err != nil {
			return PrintJSONError(fmt.Errorf("config get %q: %w", args[0], err))
		}
		if JSON() {
			return PrintJSON(map[string]string{args[0]: v})
		}
		fmt.Fprintln(Out(), v)

	case 2:
		if err := loaded.Set(args[0], args[1]); err != nil {
			log.Event("config", "set").Detail("key", args[0]).Write(err)
			return PrintJSONError(fmt.Errorf("config set %q: %w", args[0], err))
		}

		saveErr := loaded.Save()
		log.Event("config", "set").Detail("key", args[0]).Detail("scope", scopeName).Write(saveErr)
		if saveErr != nil {
			return PrintJSONError(fmt.Errorf("config save: %w", saveErr))
		}
		fmt.Fprintf(Out(), "%s = %s (%s)\n", args[0], args[1], scopeName)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(newConfigCmd())
}
