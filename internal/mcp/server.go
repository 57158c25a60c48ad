// Package mcp implements the Model Context Protocol server, exposing the
// bookmark database to LLMs. This enables AI assistants to add, remove and
// query bookmarks through a standardised protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mariotti/bookmark/internal/bookmark"
	"github.com/mariotti/bookmark/internal/store"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio.
// Uses stdio transport for compatibility with Claude Desktop and other
// MCP clients.
//
// Each tool call loads the database fresh and mutating tools save before
// returning, so the server never holds a stale snapshot while the CLI is
// used alongside it.
func Serve(db string, fetchTimeout time.Duration) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	h := &handlers{
		store: store.New(db,
			store.WithTransport(store.NewHTTPTransport(fetchTimeout)),
			store.WithDiagnostics(os.Stderr)),
	}

	s := server.NewMCPServer(
		"bookmark",
		Version,
		server.WithToolCapabilities(true),
	)

	registerTools(s, h)

	slog.Info("bookmark MCP server ready", "version", Version, "transport", "stdio", "database", db)

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// handlers provides MCP request handlers with access to the bookmark store.
type handlers struct {
	store *store.Store
}

// load reads the current database state for one tool call.
func (h *handlers) load(ctx context.Context) (bookmark.Database, error) {
	return h.store.Load(ctx)
}

// registerTools exposes bookmark operations as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("bookmark_add",
			mcp.WithDescription("Attach tags to a URL, creating the bookmark if it is new. Existing tags are kept."),
			mcp.WithString("url", mcp.Required(), mcp.Description("URL to bookmark")),
			mcp.WithArray("tags", mcp.Required(), mcp.Description("Tags to attach")),
		),
		h.addBookmark,
	)

	s.AddTool(
		mcp.NewTool("bookmark_remove",
			mcp.WithDescription("Detach tags from a URL. A bookmark whose last tag is removed is deleted. Unknown URLs and absent tags are ignored."),
			mcp.WithString("url", mcp.Required(), mcp.Description("URL to modify")),
			mcp.WithArray("tags", mcp.Required(), mcp.Description("Tags to detach")),
		),
		h.removeBookmark,
	)

	s.AddTool(
		mcp.NewTool("bookmark_delete",
			mcp.WithDescription("Delete a bookmark entirely, regardless of its tags. Unknown URLs are ignored."),
			mcp.WithString("url", mcp.Required(), mcp.Description("URL to delete")),
		),
		h.deleteBookmark,
	)

	s.AddTool(
		mcp.NewTool("bookmark_list",
			mcp.WithDescription("List bookmarks by tag. With no tags, lists every bookmark. Returns URLs with their tag sets."),
			mcp.WithArray("tags", mcp.Description("Tags to filter by")),
			mcp.WithBoolean("every", mcp.Description("Require every tag rather than any")),
		),
		h.listBookmarks,
	)

	s.AddTool(
		mcp.NewTool("bookmark_tags",
			mcp.WithDescription("List every tag in the database with its usage count, least used first."),
		),
		h.listTags,
	)

	s.AddTool(
		mcp.NewTool("bookmark_search",
			mcp.WithDescription("Search tags with an unanchored regular expression, returning matching tags with usage counts."),
			mcp.WithString("pattern", mcp.Required(), mcp.Description("Go regular expression matched against tags")),
		),
		h.searchTags,
	)
}
