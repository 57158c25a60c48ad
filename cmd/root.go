// Package cmd wires the bookmark commands together.
//
// The root command loads the database once in PersistentPreRunE, hands the
// in-memory bookmark.Database to subcommands, and expects mutating commands
// to persist through save(). Commands listed in noStoreCommands run without
// a database (config inspection, guides, the MCP server).
//
// A bare, non-command argument is treated as a URL lookup: the tags for
// that URL are printed, or the command fails when the URL is unknown.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mariotti/bookmark/internal/bookmark"
	"github.com/mariotti/bookmark/internal/config"
	"github.com/mariotti/bookmark/internal/log"
	"github.com/mariotti/bookmark/internal/store"
)

// Version is the release version, overridden at build time via
// -ldflags "-X github.com/mariotti/bookmark/cmd.Version=...".
var Version = "dev"

// Shared state established by PersistentPreRunE for commands that
// operate on the database.
var (
	cfg *config.Config
	st  *store.Store
	db  bookmark.Database
)

// noStoreCommands run without loading the database.
var noStoreCommands = map[string]bool{
	"config":     true,
	"guide":      true,
	"version":    true,
	"serve":      true,
	"help":       true,
	"completion": true,
}

var rootCmd = &cobra.Command{
	Use:   "bookmark [URL]",
	Short: "Keep track of URLs and the tags attached to them",
	Long: `bookmark maintains a small database mapping URLs to tag sets.

Add, remove and search bookmarks by tag, import other databases,
and serve the collection to MCP clients. Run "bookmark guide" for
a walkthrough.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format %q (valid: %s)", output, strings.Join(validOutputFormats, ", "))
		}
		if noStoreCommands[cmd.Name()] {
			return nil
		}
		// Bare root invocation with no arguments only prints help;
		// no database needed.
		if cmd == cmd.Root() && len(args) == 0 {
			return nil
		}
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		path := dbFile
		if path == "" {
			path = cfg.DatabasePath()
		}
		st = store.New(path,
			store.WithTransport(store.NewHTTPTransport(cfg.FetchTimeout())),
			store.WithDiagnostics(cmd.ErrOrStderr()))
		log.SetDatabase(path)
		db, err = st.Load(cmd.Context())
		if err != nil {
			return err
		}
		if clean {
			// Normalizes the in-memory copy only. The cleaned form
			// reaches disk through a mutating command's save; listing
			// commands never write the file.
			bookmark.Clean(db)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		if len(args) > 1 {
			return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
		}
		return lookup(substPath(args[0]))
	},
}

// lookup prints the tags recorded for a single URL.
func lookup(url string) error {
	ev := log.Event("show", "list").URL(url)
	tags, ok := bookmark.Tags(db, url)
	if !ok {
		err := fmt.Errorf("no such bookmark: %s", url)
		ev.Write(err)
		return PrintJSONError(err)
	}
	ev.Detail("tags", len(tags)).Write(nil)
	if JSON() {
		return PrintJSON(map[string]any{"url": url, "tags": tags})
	}
	for _, t := range tags {
		fmt.Fprintln(Out(), t)
	}
	return nil
}

// save persists the in-memory database through the active store.
// Mutating commands call this exactly once, after all changes.
func save() error {
	return st.Save(db)
}

// substPath replaces arguments naming existing files with their absolute
// paths, so that bookmarks to local files resolve regardless of the
// working directory. Disabled with --no-path-subs.
func substPath(arg string) string {
	if noPathSubs || store.IsRemote(arg) {
		return arg
	}
	if _, err := os.Stat(arg); err != nil {
		return arg
	}
	abs, err := filepath.Abs(arg)
	if err != nil {
		return arg
	}
	return abs
}

// expandTags replaces the case-insensitive pseudo-tag "all" with every
// tag present in the database.
func expandTags(tags []string) []string {
	expanded := make([]string, 0, len(tags))
	for _, t := range tags {
		if strings.EqualFold(t, "all") {
			expanded = append(expanded, bookmark.AllTags(db)...)
			continue
		}
		expanded = append(expanded, t)
	}
	return expanded
}

// Execute runs the root command.
func Execute() {
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "bookmark: audit log unavailable: %v\n", err)
	}
	defer log.Close()

	if err := rootCmd.Execute(); err != nil {
		var reported *jsonReportedError
		if !errors.As(err, &reported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		log.Close()
		os.Exit(1)
	}
}
