// tools.go implements the MCP tool handlers.
//
// Design: extraction of optional parameters is permissive (return default
// on error) rather than strict, because an LLM omitting an optional
// parameter shouldn't cause cryptic type errors. Results are returned as
// pretty-printed JSON for reliable LLM parsing.

package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mariotti/bookmark/internal/bookmark"
	"github.com/mariotti/bookmark/internal/log"
	"github.com/mariotti/bookmark/internal/query"
)

// addBookmark handles bookmark_add tool calls.
func (h *handlers) addBookmark(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := req.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError("url is required"), nil //nolint:nilerr
	}
	tags := getStrings(req, "tags")
	if len(tags) == 0 {
		return mcp.NewToolResultError("tags is required"), nil
	}

	db, err := h.load(ctx)
	if err == nil {
		bookmark.Add(db, url, tags)
		err = h.store.Save(db)
	}
	log.Event("mcp:bookmark_add", "add").URL(url).Detail("tags", len(tags)).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	stored, _ := bookmark.Tags(db, url)
	return jsonResult(query.Entry{URL: url, Tags: stored})
}

// removeBookmark handles bookmark_remove tool calls.
func (h *handlers) removeBookmark(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := req.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError("url is required"), nil //nolint:nilerr
	}
	tags := getStrings(req, "tags")
	if len(tags) == 0 {
		return mcp.NewToolResultError("tags is required"), nil
	}

	db, err := h.load(ctx)
	if err == nil {
		bookmark.Remove(db, url, tags)
		err = h.store.Save(db)
	}
	log.Event("mcp:bookmark_remove", "remove").URL(url).Detail("tags", len(tags)).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	stored, present := bookmark.Tags(db, url)
	return jsonResult(map[string]any{"url": url, "tags": stored, "present": present})
}

// deleteBookmark handles bookmark_delete tool calls.
func (h *handlers) deleteBookmark(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := req.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError("url is required"), nil //nolint:nilerr
	}

	db, err := h.load(ctx)
	if err == nil {
		bookmark.Delete(db, url)
		err = h.store.Save(db)
	}
	log.Event("mcp:bookmark_delete", "delete").URL(url).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]string{"deleted": url})
}

// listBookmarks handles bookmark_list tool calls.
func (h *handlers) listBookmarks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tags := getStrings(req, "tags")
	every := getBool(req, "every", false)

	db, err := h.load(ctx)
	if err != nil {
		log.Event("mcp:bookmark_list", "list").Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	var entries []query.Entry
	if every {
		entries = query.ListEvery(db, tags)
	} else {
		entries = query.ListAny(db, tags)
	}
	query.SortEntries(entries)

	log.Event("mcp:bookmark_list", "list").Detail("tags", len(tags)).Detail("count", len(entries)).Write(nil)
	return jsonResult(entries)
}

// listTags handles bookmark_tags tool calls.
func (h *handlers) listTags(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	db, err := h.load(ctx)
	if err != nil {
		log.Event("mcp:bookmark_tags", "list").Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	counts := query.Frequency(db)
	query.SortCounts(counts)

	log.Event("mcp:bookmark_tags", "list").Detail("count", len(counts)).Write(nil)
	return jsonResult(counts)
}

// searchTags handles bookmark_search tool calls.
func (h *handlers) searchTags(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pattern, err := req.RequireString("pattern")
	if err != nil {
		return mcp.NewToolResultError("pattern is required"), nil //nolint:nilerr
	}

	db, err := h.load(ctx)
	var counts []query.TagCount
	if err == nil {
		counts, err = query.Search(db, pattern)
	}
	log.Event("mcp:bookmark_search", "search").Detail("pattern", pattern).Detail("count", len(counts)).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	query.SortCounts(counts)
	return jsonResult(counts)
}

// getBool extracts a boolean parameter from the MCP request arguments.
// JSON booleans decode as Go bool values, so a type assertion suffices.
// Returns the default if the parameter is missing or not a boolean.
func getBool(req mcp.CallToolRequest, name string, def bool) bool { //nolint:unparam
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// getStrings extracts a string array parameter from the MCP request
// arguments. JSON arrays decode as []any, so each element is asserted
// individually; non-string elements are skipped. Returns nil when the
// parameter is absent.
func getStrings(req mcp.CallToolRequest, name string) []string {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return nil
	}
	arr, ok := args[name].([]any)
	if !ok {
		return nil
	}
	result := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

// jsonResult serialises a value as pretty-printed JSON and wraps it in an
// MCP text result. Marshalling failures become MCP error results rather
// than Go errors, keeping all failures on the tool result channel.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
