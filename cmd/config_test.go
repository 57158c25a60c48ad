package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig(t *testing.T) {
	t.Run("set then get", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("config", "browser", "firefox")

		out := env.run("config", "browser")
		assert.Equal(t, "firefox\n", out)
	})

	t.Run("list shows defaults", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("config")
		assert.Contains(t, out, "database:")
		assert.Contains(t, out, filepath.Join(".bookmarks"))
	})

	t.Run("unknown key fails", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.runErr("config", "nope")
		assert.ErrorContains(t, err, "unknown config key")
	})

	t.Run("configured database is used", func(t *testing.T) {
		env := newTestEnv(t)
		dbPath := filepath.Join(t.TempDir(), "work.yaml")
		env.run("config", "database", dbPath)

		// Without -f, commands go through the configured path.
		out, err := env.execNoFile("add", "https://go.dev", "golang")
		assert.NoError(t, err, out)
		assert.FileExists(t, dbPath)
	})
}
