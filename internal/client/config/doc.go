// Package config loads runtime configuration for the qrcontacts CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c/--config. Files ending in .yaml
//     or .yml are read as YAML, anything else as JSON.
//  3. Command-line flags that were set explicitly, which override earlier
//     values.
//
// Supported flags
//
//	-c, --config string        path to a JSON or YAML config file
//	-a, --server string        base URL of the remote service
//	    --db string            credential database path (":memory:" keeps nothing on disk)
//	    --timeout duration     per-request timeout
//	    --log-level string     debug, info, warn or error
//	    --log-backend string   slog or zap
//	    --no-color             disable group colors
//
// # File schema
//
// Durations use timex.Duration, so values can be either strings like "10s"
// or integer nanoseconds:
//
//	{
//	  "server_url": "https://example.org/api",
//	  "db_path": "/home/me/.config/qrcontacts/credentials.db",
//	  "request_timeout": "10s",
//	  "log_level": "info",
//	  "log_backend": "slog",
//	  "color": true
//	}
//
// Primary API
//
//   - type Config: resolved settings
//   - func BindFlags(*pflag.FlagSet) *Flags: registers the flags above
//   - func Load(*Flags) (*Config, error): defaults, file, then flags
package config
