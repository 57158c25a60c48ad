// Package store persists a bookmark database to a single serialized file.
//
// The database is one YAML document mapping each URL to its tag list, read
// in full and rewritten in full; there is no incremental write. A source
// containing a scheme separator ("://") is fetched over HTTP into a
// temporary file and loaded from there.
//
// Recovery policy: a missing file, an undecodable payload, or a failed
// fetch all degrade to an empty database with a diagnostic on the store's
// diagnostic writer. Only permission failures are surfaced as errors;
// callers treat those as fatal.
package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"

	"github.com/mariotti/bookmark/internal/bookmark"
)

// Error taxonomy for database access. ErrDecode and ErrNetwork are
// recovered internally (empty database plus diagnostic); they appear in
// diagnostics and tests. ErrNotFound is also used by the command layer for
// the bare-URL lookup failure.
var (
	ErrNotFound = errors.New("not found")
	ErrDecode   = errors.New("cannot decode database")
	ErrNetwork  = errors.New("cannot fetch database")
)

// DefaultFetchTimeout bounds remote database fetches. The command layer can
// override it from configuration.
const DefaultFetchTimeout = 30 * time.Second

// Store reads and writes one bookmark database file.
type Store struct {
	path      string
	transport Transport
	diag      io.Writer
}

// Option configures a Store.
type Option func(*Store)

// WithTransport injects the transport used for remote sources.
// Tests substitute a fake to avoid real network access.
func WithTransport(t Transport) Option {
	return func(s *Store) { s.transport = t }
}

// WithDiagnostics redirects warnings away from stderr.
func WithDiagnostics(w io.Writer) Option {
	return func(s *Store) { s.diag = w }
}

// New creates a store for the database at path, which may be a local file
// path or a remote locator.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:      path,
		transport: NewHTTPTransport(DefaultFetchTimeout),
		diag:      os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the locator this store reads from and writes to.
func (s *Store) Path() string { return s.path }

// IsRemote reports whether a source names a network locator rather than a
// local file.
func IsRemote(src string) bool {
	return strings.Contains(src, "://")
}

// Load reads the store's own database.
func (s *Store) Load(ctx context.Context) (bookmark.Database, error) {
	return s.LoadSource(ctx, s.path)
}

// LoadSource reads a database from any locator, applying the recovery
// policy described in the package comment.
func (s *Store) LoadSource(ctx context.Context, src string) (bookmark.Database, error) {
	if IsRemote(src) {
		return s.loadRemote(ctx, src)
	}
	return s.loadLocal(src)
}

func (s *Store) loadLocal(path string) (bookmark.Database, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.reportf("database %q does not exist: starting empty, it will be created on first save", path)
		return bookmark.New(), nil
	}
	if err != nil {
		// Permission and other filesystem failures are fatal upstream.
		return nil, fmt.Errorf("reading database %s: %w", path, err)
	}
	return s.decode(path, data), nil
}

// loadRemote fetches src into a temporary file and loads from it. The
// temporary file is removed on every exit path, including fetch and decode
// failure.
func (s *Store) loadRemote(ctx context.Context, src string) (bookmark.Database, error) {
	body, err := s.transport.Fetch(ctx, src)
	if err != nil {
		s.reportf("%v %s: %v", ErrNetwork, src, err)
		return bookmark.New(), nil
	}
	defer body.Close()

	tmp, err := os.CreateTemp("", "bookmark-remote-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	_, copyErr := io.Copy(tmp, body)
	closeErr := tmp.Close()
	if copyErr != nil {
		s.reportf("%v %s: %v", ErrNetwork, src, copyErr)
		return bookmark.New(), nil
	}
	if closeErr != nil {
		return nil, fmt.Errorf("writing temporary file: %w", closeErr)
	}

	data, err := os.ReadFile(tmp.Name())
	if err != nil {
		return nil, fmt.Errorf("reading temporary file: %w", err)
	}
	// A "page not found" style payload is just an undecodable document.
	return s.decode(src, data), nil
}

// decode deserializes a database payload. Corrupt or unexpected structure
// degrades to an empty database.
func (s *Store) decode(src string, data []byte) bookmark.Database {
	var db bookmark.Database
	if err := yaml.Unmarshal(data, &db); err != nil {
		s.reportf("%v %s: %v", ErrDecode, src, err)
		return bookmark.New()
	}
	if db == nil {
		db = bookmark.New()
	}
	return db
}

// Save serializes the full database and overwrites the store's file using
// an atomic whole-file rewrite. A missing parent directory is reported and
// skipped without failing the command, since nothing was written.
func (s *Store) Save(db bookmark.Database) error {
	if IsRemote(s.path) {
		s.reportf("database %q is remote: changes are not written back", s.path)
		return nil
	}

	data, err := Canonical(db)
	if err != nil {
		return fmt.Errorf("encoding database: %w", err)
	}

	dir := filepath.Dir(s.path)
	if _, err := os.Stat(dir); err != nil {
		s.reportf("cannot save database: directory %q: %v", dir, err)
		return nil
	}

	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing database %s: %w", s.path, err)
	}
	return nil
}

// Merge loads every source and unions its entries into db. Existing tags
// are never overwritten or removed; merging only adds.
func (s *Store) Merge(ctx context.Context, db bookmark.Database, sources []string) error {
	for _, src := range sources {
		other, err := s.LoadSource(ctx, src)
		if err != nil {
			return err
		}
		for url, tags := range other {
			bookmark.Add(db, url, tags)
		}
	}
	return nil
}

// Canonical returns the deterministic serialized form of a database:
// URLs in sorted order, each with its sorted tag list. Save writes exactly
// this form, so save-then-load round-trips the database.
func Canonical(db bookmark.Database) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, url := range bookmark.URLs(db) {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: url}
		val := &yaml.Node{Kind: yaml.SequenceNode}
		for _, t := range db[url] {
			val.Content = append(val.Content, &yaml.Node{
				Kind: yaml.ScalarNode, Tag: "!!str", Value: t,
			})
		}
		doc.Content = append(doc.Content, key, val)
	}
	return yaml.Marshal(doc)
}

func (s *Store) reportf(format string, args ...any) {
	fmt.Fprintf(s.diag, "bookmark: "+format+"\n", args...)
}
