package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLookup(t *testing.T) {
	t.Run("bare url prints its tags", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("add", "https://go.dev", "golang", "docs")

		out := env.run("https://go.dev")
		assert.Equal(t, "docs\ngolang\n", out)
	})

	t.Run("unknown url fails", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("add", "https://go.dev", "golang")

		_, err := env.runErr("https://unknown.example")
		assert.ErrorContains(t, err, "no such bookmark")
	})

	t.Run("show is equivalent", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("add", "https://go.dev", "golang")

		assert.Equal(t, env.run("https://go.dev"), env.run("show", "https://go.dev"))
	})

	t.Run("JSON output", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("add", "https://go.dev", "golang")

		out := env.run("https://go.dev", "-o", "json")
		assert.Contains(t, out, `"url":"https://go.dev"`)
		assert.Contains(t, out, `"tags":["golang"]`)
	})

	t.Run("JSON error payload still fails the command", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("add", "https://go.dev", "golang")

		out, err := env.runErr("https://unknown.example", "-o", "json")
		assert.ErrorContains(t, err, "no such bookmark")
		assert.Contains(t, out, `"error"`)
		assert.Contains(t, out, "no such bookmark")
	})
}

func TestClean(t *testing.T) {
	// A database written by hand, with duplicated and unsorted tags.
	raw := []byte("https://go.dev:\n  - golang\n  - docs\n  - golang\n")

	t.Run("listing with --clean never writes the file", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, os.WriteFile(env.dbPath, raw, 0o644))

		out := env.run("https://go.dev", "--clean")
		assert.Equal(t, "docs\ngolang\n", out)

		out = env.run("ls", "--clean", "-v")
		assert.Equal(t, "https://go.dev\tdocs golang\n", out)

		// Only the in-memory copy was normalized.
		data, err := os.ReadFile(env.dbPath)
		require.NoError(t, err)
		assert.Equal(t, raw, data)
	})

	t.Run("mutating command persists the cleaned form", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, os.WriteFile(env.dbPath, raw, 0o644))

		env.run("add", "https://pkg.go.dev", "reference", "--clean")

		data, err := os.ReadFile(env.dbPath)
		require.NoError(t, err)
		var onDisk map[string][]string
		require.NoError(t, yaml.Unmarshal(data, &onDisk))
		assert.Equal(t, map[string][]string{
			"https://go.dev":     {"docs", "golang"},
			"https://pkg.go.dev": {"reference"},
		}, onDisk)
	})
}

func TestInvalidOutputFormat(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.runErr("ls", "-o", "xml")
	assert.ErrorContains(t, err, "invalid output format")
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)
	out := env.run("version")
	assert.Contains(t, out, "bookmark")
	assert.Contains(t, out, Version)
}
