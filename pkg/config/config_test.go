package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configPath := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s
  base_url: https://dash.example.com

backend:
  url: https://pricing.example.com
  email: ops@example.com
  password: secret
  timeout: 10s
  proxy: true

console:
  resolve_note: fixed by ops
  journal_limit: 50
  journal_keep: 500
  refresh_interval: 2m
`)

		cfg, err := Load(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "https://dash.example.com", cfg.Server.BaseURL)

		assert.Equal(t, "https://pricing.example.com", cfg.Backend.URL)
		assert.Equal(t, "ops@example.com", cfg.Backend.Email)
		assert.Equal(t, "secret", cfg.Backend.Password)
		assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)
		assert.True(t, cfg.Backend.Proxy)

		assert.Equal(t, "fixed by ops", cfg.Console.ResolveNote)
		assert.Equal(t, "Ignored from dashboard", cfg.Console.IgnoreNote)
		assert.Equal(t, 50, cfg.Console.JournalLimit)
		assert.Equal(t, 500, cfg.Console.JournalKeep)
		assert.Equal(t, 2*time.Minute, cfg.Console.RefreshInterval)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "backend:\n  url: http://localhost:8000\n"))
		require.NoError(t, err)

		assert.Equal(t, ":3000", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "http://localhost:3000", cfg.Server.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.Backend.Timeout)
		assert.False(t, cfg.Backend.Proxy)
		assert.Equal(t, "file:dashboard.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, 3600, cfg.Database.ConnMaxLifetime)
		assert.Equal(t, "Manually resolved from dashboard", cfg.Console.ResolveNote)
		assert.Equal(t, "Ignored from dashboard", cfg.Console.IgnoreNote)
		assert.Equal(t, 20, cfg.Console.JournalLimit)
		assert.Equal(t, 1000, cfg.Console.JournalKeep)
		assert.Equal(t, 5*time.Minute, cfg.Console.RefreshInterval)
	})

	t.Run("environment expansion", func(t *testing.T) {
		t.Setenv("PRICING_TEST_PASSWORD", "from-env")
		t.Setenv("PRICING_TEST_URL", "https://env.example.com")
		cfg, err := Load(writeConfig(t, `
backend:
  url: ${PRICING_TEST_URL}
  password: $PRICING_TEST_PASSWORD
`))
		require.NoError(t, err)
		assert.Equal(t, "https://env.example.com", cfg.Backend.URL)
		assert.Equal(t, "from-env", cfg.Backend.Password)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, `
invalid yaml content
  with bad indentation
    and no structure
`))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("validation errors", func(t *testing.T) {
		tests := []struct {
			name    string
			content string
			errMsg  string
		}{
			{name: "missing backend url", content: "server:\n  listen: \":3000\"\n", errMsg: "backend.url is required"},
			{name: "relative backend url", content: "backend:\n  url: /api\n", errMsg: "absolute http(s) url"},
			{name: "unsupported scheme", content: "backend:\n  url: ftp://example.com\n", errMsg: "absolute http(s) url"},
			{name: "short backend timeout", content: "backend:\n  url: http://x.example.com\n  timeout: 100ms\n",
				errMsg: "backend timeout must be at least 1 second"},
			{name: "short server timeout", content: "backend:\n  url: http://x.example.com\nserver:\n  timeout: 10ms\n",
				errMsg: "server timeout must be at least 1 second"},
			{name: "negative journal limit", content: "backend:\n  url: http://x.example.com\nconsole:\n  journal_limit: -1\n",
				errMsg: "journal_limit must be at least 1"},
			{name: "keep below limit", content: "backend:\n  url: http://x.example.com\nconsole:\n  journal_limit: 50\n  journal_keep: 10\n",
				errMsg: "journal_keep must not be below"},
			{name: "short refresh interval", content: "backend:\n  url: http://x.example.com\nconsole:\n  refresh_interval: 1s\n",
				errMsg: "refresh_interval must be at least 10 seconds"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				cfg, err := Load(writeConfig(t, tt.content))
				require.Error(t, err)
				assert.Nil(t, cfg)
				assert.Contains(t, err.Error(), "validate config")
				assert.Contains(t, err.Error(), tt.errMsg)
			})
		}
	})
}

func TestConfig_Accessors(t *testing.T) {
	cfg := &Config{
		Server:  ServerConfig{Listen: ":9090", Timeout: 45 * time.Second},
		Backend: BackendConfig{URL: "https://pricing.example.com", Email: "a@example.com", Proxy: true},
		Console: ConsoleConfig{ResolveNote: "done", JournalLimit: 5},
	}

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":9090", listen)
	assert.Equal(t, 45*time.Second, timeout)

	assert.Equal(t, cfg.Backend, cfg.GetBackendConfig())
	assert.Equal(t, cfg.Console, cfg.GetConsoleConfig())
	assert.Same(t, cfg, cfg.GetFullConfig())
}
