package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// testEnv runs commands in-process against a throwaway database, with
// HOME and the working directory pointed at temp dirs so config and the
// audit log never touch the real user environment.
type testEnv struct {
	t      *testing.T
	dbPath string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return &testEnv{t: t, dbPath: filepath.Join(home, "bookmarks.yaml")}
}

// run executes a command and fails the test if it errors.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.exec(args...)
	require.NoError(e.t, err, "command %v failed: %s", args, out)
	return out
}

// runErr executes a command expected to fail and returns its error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()
	return e.exec(args...)
}

func (e *testEnv) exec(args ...string) (string, error) {
	e.t.Helper()
	return e.execNoFile(append([]string{"-f", e.dbPath}, args...)...)
}

// execNoFile runs without the implicit -f flag, exercising the configured
// database path resolution.
func (e *testEnv) execNoFile(args ...string) (string, error) {
	e.t.Helper()
	resetFlags(rootCmd)

	var buf bytes.Buffer
	SetOut(&buf)
	defer SetOut(os.Stdout)

	rootCmd.SetArgs(args)
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag to its default so values from a previous
// in-process invocation do not leak into the next one.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}
