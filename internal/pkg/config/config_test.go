package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, ":8080", cfg.Server.Address())
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout.Std())
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 100, cfg.RateLimit.Limit)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9090
  request_timeout: 5s
rate_limit:
  enabled: true
  limit: 10
  window: 30s
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout.Std())
	assert.Equal(t, 10, cfg.RateLimit.Limit)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window.Std())
	// Fields absent from the file keep their defaults.
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout.Std())
}

func TestLoad_ExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("KB_PORT", "7070")
	path := writeConfigFile(t, "server:\n  port: ${KB_PORT}\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "server: [not a map\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidDuration(t *testing.T) {
	path := writeConfigFile(t, "server:\n  request_timeout: soon\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestServerConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ServerConfig)
		wantErr bool
	}{
		{"defaults are valid", func(*ServerConfig) {}, false},
		{"zero port", func(c *ServerConfig) { c.Port = 0 }, true},
		{"port too large", func(c *ServerConfig) { c.Port = 70000 }, true},
		{"zero body limit", func(c *ServerConfig) { c.MaxBodyBytes = 0 }, true},
		{"negative timeout", func(c *ServerConfig) { c.RequestTimeout = Duration(-time.Second) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default().Server
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRateLimitConfigValidate(t *testing.T) {
	t.Run("disabled skips validation", func(t *testing.T) {
		cfg := RateLimitConfig{Enabled: false}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("enabled requires limit", func(t *testing.T) {
		cfg := RateLimitConfig{Enabled: true, Limit: 0, Window: Duration(time.Minute)}
		assert.Error(t, cfg.Validate())
	})

	t.Run("enabled requires window", func(t *testing.T) {
		cfg := RateLimitConfig{Enabled: true, Limit: 5}
		assert.Error(t, cfg.Validate())
	})
}
