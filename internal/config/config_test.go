package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9600, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout.Duration())
	assert.Equal(t, "http://localhost:9200", cfg.Search.URL)
	assert.Equal(t, ".kibana", cfg.Dashboard.IndexPrefix)
	assert.Equal(t, "", cfg.Dashboard.ProjectPrefix)
	assert.Equal(t, "5.6.13", cfg.Dashboard.Version)
	assert.Equal(t, ".all", cfg.Dashboard.DefaultIndex)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 8080
search:
  url: http://search:9200
  timeout: 5s
dashboard:
  project_prefix: cdm
  version: 6.8.1
logging:
  level: debug
  format: console
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "http://search:9200", cfg.Search.URL)
	assert.Equal(t, 5*time.Second, cfg.Search.Timeout.Duration())
	assert.Equal(t, "cdm", cfg.Dashboard.ProjectPrefix)
	assert.Equal(t, "6.8.1", cfg.Dashboard.Version)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)

	// Unset values still take defaults.
	assert.Equal(t, ".kibana", cfg.Dashboard.IndexPrefix)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 8080\n"), 0o600))

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("DASHBOARD_PROJECT_PREFIX", "cdm")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "cdm", cfg.Dashboard.ProjectPrefix)
}

func TestLoadMissingFileIsIgnored(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 9600, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{
			name:   "port out of range",
			mutate: func(c *Config) { c.Server.Port = -1 },
		},
		{
			name:   "missing search URL",
			mutate: func(c *Config) { c.Search.URL = "" },
		},
		{
			name:   "missing index prefix",
			mutate: func(c *Config) { c.Dashboard.IndexPrefix = "" },
		},
		{
			name:   "bad dashboard version",
			mutate: func(c *Config) { c.Dashboard.Version = "not-a-version" },
		},
		{
			name:   "bad logging format",
			mutate: func(c *Config) { c.Logging.Format = "xml" },
		},
	}

	require.NoError(t, valid().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestDurationUnmarshalText(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("90s")))
	assert.Equal(t, 90*time.Second, d.Duration())

	assert.Error(t, d.UnmarshalText([]byte("-1s")))
	assert.Error(t, d.UnmarshalText([]byte("forever")))
}
