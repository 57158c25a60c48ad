package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	t.Run("creates bookmark", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("add", "https://go.dev", "golang", "docs")

		out := env.run("https://go.dev")
		assert.Equal(t, "docs\ngolang\n", out)
	})

	t.Run("tags accumulate across adds", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("add", "https://go.dev", "golang")
		env.run("add", "https://go.dev", "docs", "golang")

		out := env.run("https://go.dev")
		assert.Equal(t, "docs\ngolang\n", out, "duplicates folded, tags sorted")
	})

	t.Run("JSON output", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("add", "https://go.dev", "golang", "-o", "json")
		assert.Contains(t, out, `"url":"https://go.dev"`)
		assert.Contains(t, out, `"golang"`)
	})
}

func TestAdd_PathSubstitution(t *testing.T) {
	t.Run("existing file stored under absolute path", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, os.WriteFile("notes.txt", []byte("x"), 0o644))

		env.run("add", "notes.txt", "todo")

		wd, err := os.Getwd()
		require.NoError(t, err)
		out := env.run("ls")
		assert.Contains(t, out, filepath.Join(wd, "notes.txt"))
		assert.NotContains(t, strings.Split(out, "\n"), "notes.txt")
	})

	t.Run("disabled with --no-path-subs", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, os.WriteFile("notes.txt", []byte("x"), 0o644))

		env.run("add", "notes.txt", "todo", "--no-path-subs")

		out := env.run("ls")
		assert.Equal(t, "notes.txt\n", out)
	})

	t.Run("missing file left as given", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("add", "nowhere.txt", "todo")

		out := env.run("ls")
		assert.Equal(t, "nowhere.txt\n", out)
	})
}
