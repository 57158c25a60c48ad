// flags.go defines global CLI flags and accessors for shared state.
//
// Separated from root.go to isolate flag definitions from command logic.
// Command files read these via accessor functions rather than touching the
// variables directly. The JSON() helper simplifies output format detection
// across all commands.
//
// Environment lookups (BROWSER) happen only here, at the CLI edge; the
// internal packages take everything as explicit arguments.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var validOutputFormats = []string{"json"}

var (
	output     string
	dbFile     string
	verbose    bool
	web        bool
	noPathSubs bool
	clean      bool
)

// out is the output writer for commands. Defaults to os.Stdout.
// Tests can replace this to capture output.
var out io.Writer = os.Stdout

// Out returns the output writer. Stdout carries result rows only;
// diagnostics go to stderr.
func Out() io.Writer { return out }

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// Verbose returns true when listings should include tag sets.
func Verbose() bool { return verbose }

// Web returns true when results should open in a browser.
func Web() bool { return web }

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// Browser returns the configured browser command, falling back to $BROWSER.
func Browser() string {
	if cfg != nil && cfg.Browser != "" {
		return cfg.Browser
	}
	return os.Getenv("BROWSER")
}

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// jsonReportedError marks an error already emitted as a JSON payload.
// It keeps the original error for logging and unwrapping; Execute
// skips the plain-text stderr line for it but still exits non-zero.
type jsonReportedError struct{ err error }

func (e *jsonReportedError) Error() string { return e.err.Error() }
func (e *jsonReportedError) Unwrap() error { return e.err }

// PrintJSONError prints an error in JSON format if output is JSON.
// The command still fails either way: in JSON mode the returned error is
// wrapped so the message is not printed a second time on stderr.
func PrintJSONError(err error) error {
	if output != "json" || err == nil {
		return err
	}
	_ = PrintJSON(map[string]string{"error": err.Error()})
	return &jsonReportedError{err: err}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: json")
	rootCmd.PersistentFlags().StringVarP(&dbFile, "file", "f", "", "Database file or http(s):// locator")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Include tag sets in listings")
	rootCmd.PersistentFlags().BoolVarP(&web, "web", "w", false, "Open results in a browser")
	rootCmd.PersistentFlags().BoolVar(&noPathSubs, "no-path-subs", false, "Disable file path substitution")
	rootCmd.PersistentFlags().BoolVar(&clean, "clean", false, "Deduplicate tag lists after load")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
}
