package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// Config holds application configuration.
type Config struct {
	// ProjectRoot is the directory snippet paths are relativized against.
	// Defaults to the working directory at load time.
	ProjectRoot string `json:"project_root,omitempty"`

	// DisplayTimezone is the IANA zone name used when rendering timestamps
	// for humans (e.g. "Asia/Taipei"). Storage is always UTC. Empty means
	// the process-local zone.
	DisplayTimezone string `json:"display_timezone,omitempty"`

	// DBMaxOpenConns limits the maximum number of open database connections.
	// 0 means use sql.DB default. Only set if you experience contention.
	DBMaxOpenConns int `json:"db_max_open_conns,omitempty"`

	// DBMaxIdleConns limits the maximum number of idle database connections.
	// 0 means use sql.DB default. Typically set equal to DBMaxOpenConns.
	DBMaxIdleConns int `json:"db_max_idle_conns,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	root, err := os.Getwd()
	if err != nil {
		root = ""
	}
	return &Config{
		ProjectRoot: root,
	}
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.toolshed.
func Load(baseDir string) (*Config, error) {
	overlay, err := loadFileRaw(filepath.Join(baseDir, "config.json"))
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), overlay), nil
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Merge combines base and overlay configs. Overlay values win when set.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.ProjectRoot = overlay.ProjectRoot
	if result.ProjectRoot == "" {
		result.ProjectRoot = base.ProjectRoot
	}

	result.DisplayTimezone = overlay.DisplayTimezone
	if result.DisplayTimezone == "" {
		result.DisplayTimezone = base.DisplayTimezone
	}

	result.DBMaxOpenConns = overlay.DBMaxOpenConns
	if result.DBMaxOpenConns == 0 {
		result.DBMaxOpenConns = base.DBMaxOpenConns
	}

	result.DBMaxIdleConns = overlay.DBMaxIdleConns
	if result.DBMaxIdleConns == 0 {
		result.DBMaxIdleConns = base.DBMaxIdleConns
	}

	return result
}

// Location resolves DisplayTimezone to a *time.Location, falling back to
// the local zone when unset or unknown.
func (c *Config) Location() *time.Location {
	if c == nil || c.DisplayTimezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.DisplayTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}
