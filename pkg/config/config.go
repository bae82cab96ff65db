package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Backend  BackendConfig  `yaml:"backend" json:"backend" jsonschema:"description=Pricing backend connection"`
	Database DatabaseConfig `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Console  ConsoleConfig  `yaml:"console" json:"console" jsonschema:"description=Error console settings"`
}

// ServerConfig holds dashboard http server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:3000,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:3000,description=Base URL for RSS feeds and external links"`
}

// BackendConfig holds the pricing backend address and credentials
type BackendConfig struct {
	URL      string        `yaml:"url" json:"url" jsonschema:"required,description=Pricing backend base URL"`
	Email    string        `yaml:"email" json:"email" jsonschema:"description=Login email (can use environment variable)"`
	Password string        `yaml:"password" json:"password" jsonschema:"description=Login password (can use environment variable)"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Backend request timeout"`
	Proxy    bool          `yaml:"proxy" json:"proxy" jsonschema:"default=false,description=Forward /api/ requests to the backend"`
}

// DatabaseConfig holds the local sqlite settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:dashboard.db?cache=shared&mode=rwc&_txlock=immediate,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// ConsoleConfig holds error console settings
type ConsoleConfig struct {
	ResolveNote  string `yaml:"resolve_note" json:"resolve_note" jsonschema:"default=Manually resolved from dashboard,description=Note sent with resolve when none is given"`
	IgnoreNote   string `yaml:"ignore_note" json:"ignore_note" jsonschema:"default=Ignored from dashboard,description=Note sent with ignore when none is given"`
	JournalLimit int    `yaml:"journal_limit" json:"journal_limit" jsonschema:"default=20,minimum=1,description=Recent commands shown on the console page"`
	JournalKeep  int    `yaml:"journal_keep" json:"journal_keep" jsonschema:"default=1000,minimum=1,description=Commands kept in the journal by the daily prune"`

	RefreshInterval time.Duration `yaml:"refresh_interval" json:"refresh_interval" jsonschema:"default=5m,description=Background reload interval of the console snapshot"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// schema validation is supplementary, mismatches are reported only
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		log.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":3000"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = "http://localhost:3000"
	}

	if cfg.Backend.Timeout == 0 {
		cfg.Backend.Timeout = 30 * time.Second
	}

	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:dashboard.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	if cfg.Console.ResolveNote == "" {
		cfg.Console.ResolveNote = "Manually resolved from dashboard"
	}
	if cfg.Console.IgnoreNote == "" {
		cfg.Console.IgnoreNote = "Ignored from dashboard"
	}
	if cfg.Console.JournalLimit == 0 {
		cfg.Console.JournalLimit = 20
	}
	if cfg.Console.JournalKeep == 0 {
		cfg.Console.JournalKeep = 1000
	}
	if cfg.Console.RefreshInterval == 0 {
		cfg.Console.RefreshInterval = 5 * time.Minute
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Backend.URL == "" {
		return fmt.Errorf("backend.url is required")
	}
	u, err := url.Parse(cfg.Backend.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("backend.url must be an absolute http(s) url, got %q", cfg.Backend.URL)
	}
	if cfg.Backend.Timeout < time.Second {
		return fmt.Errorf("backend timeout must be at least 1 second")
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if cfg.Console.JournalLimit < 1 {
		return fmt.Errorf("console.journal_limit must be at least 1")
	}
	if cfg.Console.JournalKeep < cfg.Console.JournalLimit {
		return fmt.Errorf("console.journal_keep must not be below console.journal_limit")
	}
	if cfg.Console.RefreshInterval < 10*time.Second {
		return fmt.Errorf("console.refresh_interval must be at least 10 seconds")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetBackendConfig returns pricing backend configuration
func (c *Config) GetBackendConfig() BackendConfig {
	return c.Backend
}

// GetConsoleConfig returns error console configuration
func (c *Config) GetConsoleConfig() ConsoleConfig {
	return c.Console
}

// GetFullConfig returns the full configuration
func (c *Config) GetFullConfig() *Config {
	return c
}
