// Package log provides centralised audit logging for bookmark operations.
// Logs are stored in ~/.bookmark/log/bookmark-log.db and track CLI commands
// and MCP tool invocations across databases.
//
// This is observability only: entries cannot be replayed to reconstruct a
// database, and logging failures never affect the command being run.
//
// # Fluent API
//
//	log.Event("tag:add", "add").
//		URL(u).
//		Detail("tags", len(tags)).
//		Write(err)
//
// The source parameter follows the format "{command}" for CLI commands or
// "mcp:{tool}" for MCP tools.
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g., "ls", "mcp:bookmark_add"
	Action string // verb: add, remove, delete, list, search, import
	URL    string // input: URL argument, if any

	// ResolvedURL is the URL after path substitution, when it differs
	// from the input.
	ResolvedURL string

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call
// [Builder.Write] to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// URL sets the URL argument this operation affects.
func (b *Builder) URL(url string) *Builder {
	b.entry.URL = url
	return b
}

// Resolved sets the URL after path substitution (output).
func (b *Builder) Resolved(url string) *Builder {
	b.entry.ResolvedURL = url
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
// Can be called multiple times.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry, deriving success/failure from err.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them
// (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetDatabase records which bookmark database subsequent entries belong to.
// The path is hashed so logs can be grouped without recording the path.
func SetDatabase(path string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.database = hash(path)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
