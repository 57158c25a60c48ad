// Package config provides reading and writing of bookmark configuration.
// Supports both global (~/.bookmark/config.yaml) and local
// (.bookmark/config.yaml). Reading: uses local if it exists, otherwise
// global. Writing: saves back to the scope the config was loaded from.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.bookmark/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .bookmark/config.yaml
	ScopeLocal
)

// Fetch holds remote database fetch options.
type Fetch struct {
	TimeoutSeconds *int `yaml:"timeout_seconds,omitempty"`
}

// DefaultFetchTimeoutSeconds bounds remote fetches when not configured.
const DefaultFetchTimeoutSeconds = 30

// Config contains configuration for the bookmark tool.
type Config struct {
	// Database is the default database path. Empty means ~/.bookmarks.
	Database string `yaml:"database,omitempty"`
	// Browser is the command used to open the web view.
	Browser string `yaml:"browser,omitempty"`
	Fetch   Fetch  `yaml:"fetch,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// DatabasePath returns the configured database path, falling back to
// .bookmarks under the user's home directory.
func (c *Config) DatabasePath() string {
	if c.Database != "" {
		return c.Database
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bookmarks"
	}
	return filepath.Join(home, ".bookmarks")
}

// FetchTimeout returns the remote fetch timeout (defaults to 30s).
func (c *Config) FetchTimeout() time.Duration {
	if c.Fetch.TimeoutSeconds == nil {
		return DefaultFetchTimeoutSeconds * time.Second
	}
	return time.Duration(*c.Fetch.TimeoutSeconds) * time.Second
}

// LocalPath returns the path to the local (directory) config file.
func LocalPath() string {
	return filepath.Join(".bookmark", "config.yaml")
}

// GlobalPath returns the path to the global config file: ~/.bookmark/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bookmark", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Get returns the value for a config key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "database":
		return c.Database, nil
	case "browser":
		return c.Browser, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set updates a config key in memory; call Save to persist.
func (c *Config) Set(key, value string) error {
	switch key {
	case "database":
		c.Database = value
	case "browser":
		c.Browser = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
