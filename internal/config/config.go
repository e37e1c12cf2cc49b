// Package config provides configuration loading for tenantd.
//
// Configuration is loaded from an optional YAML file, then overridden by
// environment variables. See Load for the variable mapping.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/hashicorp/go-version"
)

// ErrInvalidConfig indicates configuration that fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the complete tenantd configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Search    SearchConfig    `koanf:"search"`
	Dashboard DashboardConfig `koanf:"dashboard"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            int      `koanf:"port"`
	ShutdownTimeout Duration `koanf:"shutdown_timeout"`
}

// SearchConfig holds search backend client configuration.
type SearchConfig struct {
	URL     string   `koanf:"url"`
	Timeout Duration `koanf:"timeout"`
}

// DashboardConfig holds the naming and version settings of the fronted
// dashboard software.
type DashboardConfig struct {
	// IndexPrefix is the prefix of per-tenant dashboard indices.
	IndexPrefix string `koanf:"index_prefix"`

	// ProjectPrefix is the prefix of plugin-generated index patterns.
	// May be empty.
	ProjectPrefix string `koanf:"project_prefix"`

	// Version is the running dashboard version, used for exact-match
	// precedence when resolving the default index pattern.
	Version string `koanf:"version"`

	// DefaultIndex is the fallback default index pattern.
	DefaultIndex string `koanf:"default_index"`
}

// LoggingConfig holds logger configuration.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// applyDefaults fills in defaults for unset values.
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 9600
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = Duration(10 * time.Second)
	}
	if cfg.Search.URL == "" {
		cfg.Search.URL = "http://localhost:9200"
	}
	if cfg.Search.Timeout == 0 {
		cfg.Search.Timeout = Duration(10 * time.Second)
	}
	if cfg.Dashboard.IndexPrefix == "" {
		cfg.Dashboard.IndexPrefix = ".kibana"
	}
	if cfg.Dashboard.Version == "" {
		cfg.Dashboard.Version = "5.6.13"
	}
	if cfg.Dashboard.DefaultIndex == "" {
		cfg.Dashboard.DefaultIndex = ".all"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server port %d out of range", ErrInvalidConfig, c.Server.Port)
	}
	if c.Search.URL == "" {
		return fmt.Errorf("%w: search URL required", ErrInvalidConfig)
	}
	if _, err := url.Parse(c.Search.URL); err != nil {
		return fmt.Errorf("%w: search URL: %v", ErrInvalidConfig, err)
	}
	if c.Dashboard.IndexPrefix == "" {
		return fmt.Errorf("%w: dashboard index prefix required", ErrInvalidConfig)
	}
	if _, err := version.NewVersion(c.Dashboard.Version); err != nil {
		return fmt.Errorf("%w: dashboard version %q: %v", ErrInvalidConfig, c.Dashboard.Version, err)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: logging format %q (want json or console)", ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}
