package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/qrcontacts/internal/logging"
)

// MemoryDB selects the in-memory credential store.
const MemoryDB = ":memory:"

const DefaultServerURL = "https://rupse_crm_backend.poudelanish17.com.np/api"

// Config holds runtime settings for the qrcontacts CLI.
type Config struct {
	ServerURL      string
	DBPath         string
	RequestTimeout time.Duration
	LogLevel       string
	LogBackend     string
	Color          bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = DefaultServerURL
	c.DBPath = defaultDBPath()
	c.RequestTimeout = 15 * time.Second
	c.LogLevel = "warn"
	c.LogBackend = logging.BackendSlog
	c.Color = true
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "qrcontacts.db"
	}
	return filepath.Join(dir, "qrcontacts", "credentials.db")
}

// Validate reports settings that cannot work.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ServerURL) == "" {
		return fmt.Errorf("server url must not be empty")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative, got %s", c.RequestTimeout)
	}
	switch c.LogBackend {
	case logging.BackendSlog, logging.BackendZap:
	default:
		return fmt.Errorf("unknown log backend %q", c.LogBackend)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// Load builds a Config by applying defaults, then the config file named by
// flags (if any), then every flag the user set explicitly. Later sources take
// precedence over earlier ones.
func Load(flags *Flags) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if flags != nil && flags.ConfigFile != "" {
		if err := parseFile(cfg, flags.ConfigFile); err != nil {
			return nil, err
		}
	}
	applyFlags(cfg, flags)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
