package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flags holds the raw flag values and remembers which of them were set.
type Flags struct {
	ConfigFile string

	fs         *pflag.FlagSet
	serverURL  string
	dbPath     string
	timeout    time.Duration
	logLevel   string
	logBackend string
	noColor    bool
}

// BindFlags registers the configuration flags on fs. Defaults shown in help
// are the built-in ones; a config file may still change them.
func BindFlags(fs *pflag.FlagSet) *Flags {
	var d Config
	d.LoadDefaults()

	f := &Flags{fs: fs}
	fs.StringVarP(&f.ConfigFile, "config", "c", "", "path to a JSON or YAML config file")
	fs.StringVarP(&f.serverURL, "server", "a", d.ServerURL, "base URL of the remote service")
	fs.StringVar(&f.dbPath, "db", d.DBPath, `credential database path (":memory:" keeps nothing on disk)`)
	fs.DurationVar(&f.timeout, "timeout", d.RequestTimeout, "per-request timeout")
	fs.StringVar(&f.logLevel, "log-level", d.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&f.logBackend, "log-backend", d.LogBackend, "log backend: slog or zap")
	fs.BoolVar(&f.noColor, "no-color", false, "disable group colors")
	return f
}

// applyFlags copies the flags the user set explicitly into cfg.
func applyFlags(cfg *Config, f *Flags) {
	if f == nil || f.fs == nil {
		return
	}
	if f.fs.Changed("server") {
		cfg.ServerURL = f.serverURL
	}
	if f.fs.Changed("db") {
		cfg.DBPath = f.dbPath
	}
	if f.fs.Changed("timeout") {
		cfg.RequestTimeout = f.timeout
	}
	if f.fs.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if f.fs.Changed("log-backend") {
		cfg.LogBackend = f.logBackend
	}
	if f.fs.Changed("no-color") {
		cfg.Color = !f.noColor
	}
}
