package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRm(t *testing.T) {
	t.Run("removes listed tags", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("add", "https://go.dev", "golang", "docs", "todo")
		env.run("rm", "https://go.dev", "todo", "docs")

		out := env.run("https://go.dev")
		assert.Equal(t, "golang\n", out)
	})

	t.Run("removing the last tag deletes the bookmark", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("add", "https://go.dev", "golang")
		env.run("rm", "https://go.dev", "golang")

		_, err := env.runErr("https://go.dev")
		assert.ErrorContains(t, err, "no such bookmark")
	})

	t.Run("absent tags and unknown urls are ignored", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("add", "https://go.dev", "golang")

		env.run("rm", "https://go.dev", "missing")
		env.run("rm", "https://unknown.example", "golang")

		out := env.run("https://go.dev")
		assert.Equal(t, "golang\n", out)
	})
}

func TestDel(t *testing.T) {
	t.Run("deletes regardless of tags", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("add", "https://go.dev", "golang", "docs")
		env.run("add", "https://pkg.go.dev", "golang")
		env.run("del", "https://go.dev")

		out := env.run("ls")
		assert.Equal(t, "https://pkg.go.dev\n", out)
	})

	t.Run("multiple urls in one invocation", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("add", "https://a.example", "x")
		env.run("add", "https://b.example", "y")
		env.run("del", "https://a.example", "https://b.example", "https://unknown.example")

		out := env.run("ls")
		assert.Empty(t, out)
	})
}
